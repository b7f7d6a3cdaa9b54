package builtin

import (
	"fmt"

	"github.com/picogrid/polaris-tools/pkg/polaris"
)

var dusts = map[string]polaris.DustFactory{
	"mrn":             NewMRN,
	"silicate":        NewSilicate,
	"graphite":        NewGraphite,
	"silicate_oblate": NewSilicateOblate,
	"graphite_oblate": NewGraphiteOblate,
}

// NewSilicate returns spherical astronomical silicate grains
func NewSilicate(fileIO *polaris.FileIO, args *polaris.Args, _ *polaris.Chooser) polaris.DustComponent {
	return polaris.NewDust(fileIO, args)
}

// NewGraphite returns spherical graphite grains
func NewGraphite(fileIO *polaris.FileIO, args *polaris.Args, _ *polaris.Chooser) polaris.DustComponent {
	d := polaris.NewDust(fileIO, args)
	d.Params.CatalogFile = "dust/graphite_mean.dat"
	d.Params.MaterialDensity = 2250
	return d
}

// NewSilicateOblate returns oblate silicate grains (aspect ratio 0.5)
func NewSilicateOblate(fileIO *polaris.FileIO, args *polaris.Args, _ *polaris.Chooser) polaris.DustComponent {
	d := polaris.NewDust(fileIO, args)
	d.Params.CatalogFile = "dust/silicate_oblate.dat"
	return d
}

// NewGraphiteOblate returns oblate graphite grains (aspect ratio 0.5)
func NewGraphiteOblate(fileIO *polaris.FileIO, args *polaris.Args, _ *polaris.Chooser) polaris.DustComponent {
	d := polaris.NewDust(fileIO, args)
	d.Params.CatalogFile = "dust/graphite_oblate.dat"
	d.Params.MaterialDensity = 2250
	return d
}

// MRN mixes silicate and graphite following Mathis, Rumpl & Nordsieck (1977)
type MRN struct {
	*polaris.Dust
	chooser *polaris.Chooser
}

// NewMRN returns the MRN mixture
func NewMRN(fileIO *polaris.FileIO, args *polaris.Args, chooser *polaris.Chooser) polaris.DustComponent {
	return &MRN{
		Dust:    polaris.NewDust(fileIO, args),
		chooser: chooser,
	}
}

// Command renders silicate (62.5%) and graphite (37.5%) components
func (m *MRN) Command() (string, error) {
	var command string
	for _, part := range []struct {
		name     string
		fraction float64
	}{
		{"silicate", 0.625},
		{"graphite", 0.375},
	} {
		dust, err := m.chooser.ModuleFromName(part.name)
		if err != nil {
			return "", fmt.Errorf("mrn: %w", err)
		}
		dust.Parameters().Fraction = part.fraction
		line, err := dust.CommandLine()
		if err != nil {
			return "", err
		}
		command += line
	}
	return command, nil
}
