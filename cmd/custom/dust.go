package custom

import (
	"fmt"

	"github.com/picogrid/polaris-tools/pkg/logger"
	"github.com/picogrid/polaris-tools/pkg/polaris"
	"github.com/picogrid/polaris-tools/pkg/registry"
)

// UpdateDustRegistry adds the custom dust to r, replacing any existing
// "custom" entry.
func UpdateDustRegistry(r *registry.Registry[polaris.DustFactory]) {
	r.Set("custom", NewDust)
}

// Dust is the dust component you want to use
type Dust struct {
	*polaris.Dust
	chooser *polaris.Chooser
}

// NewDust creates the custom dust. chooser resolves the components it mixes.
func NewDust(fileIO *polaris.FileIO, args *polaris.Args, chooser *polaris.Chooser) polaris.DustComponent {
	d := &Dust{
		Dust:    polaris.NewDust(fileIO, args),
		chooser: chooser,
	}

	// Dust catalog in POLARIS format, relative to the POLARIS input directory
	d.Params.CatalogFile = "custom.dat"
	// Relative fraction when mixing several compositions
	d.Params.Fraction = 1.0
	// Material density [kg/m^3]
	d.Params.MaterialDensity = 2500
	// Minimum and maximum grain size [m]
	d.Params.AMin = 5e-9
	d.Params.AMax = 250e-9
	// Size distribution: plaw, plaw-ed or logn
	d.Params.SizeKeyword = polaris.SizePowerLaw
	// Size distribution parameters (plaw: exponent)
	d.Params.SizeParameter = []float64{-3.5}

	return d
}

// Command mixes oblate silicate and graphite grains into one dust.
// To use the parameters above instead, return d.CommandLine().
func (d *Dust) Command() (string, error) {
	var command string

	dust, err := d.chooser.ModuleFromName("silicate_oblate")
	if err != nil {
		return "", fmt.Errorf("custom dust: %w", err)
	}
	dust.Parameters().Fraction = 0.625
	line, err := dust.CommandLine()
	if err != nil {
		return "", err
	}
	command += line

	dust, err = d.chooser.ModuleFromName("graphite_oblate")
	if err != nil {
		return "", fmt.Errorf("custom dust: %w", err)
	}
	dust.Parameters().Fraction = 0.375
	line, err = dust.CommandLine()
	if err != nil {
		return "", err
	}
	command += line

	return command, nil
}

func init() {
	UpdateDustRegistry(polaris.DefaultRegistries.Dusts)
	logger.Debug("Registered custom dust")
}
