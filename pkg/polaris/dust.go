package polaris

import (
	"path/filepath"
)

// Size distribution keywords understood by POLARIS
const (
	SizePowerLaw         = "plaw"
	SizePowerLawExpDecay = "plaw-ed"
	SizeLogNormal        = "logn"
)

// DustParams holds the composition of one dust component
type DustParams struct {
	// CatalogFile is the dust catalog in POLARIS format, relative to the input directory
	CatalogFile     string    `yaml:"dust_cat_file"`
	Fraction        float64   `yaml:"fraction"`
	MaterialDensity float64   `yaml:"material_density"` // kg/m^3
	AMin            float64   `yaml:"amin"`             // m
	AMax            float64   `yaml:"amax"`             // m
	SizeKeyword     string    `yaml:"size_keyword"`
	SizeParameter   []float64 `yaml:"size_parameter"`
}

// DefaultDustParams returns an MRN-like silicate composition
func DefaultDustParams() DustParams {
	return DustParams{
		CatalogFile:     "dust/silicate.dat",
		Fraction:        1.0,
		MaterialDensity: 3500,
		AMin:            5e-9,
		AMax:            250e-9,
		SizeKeyword:     SizePowerLaw,
		SizeParameter:   []float64{-3.5},
	}
}

// Dust renders a dust component into a <dust_component> line
type Dust struct {
	Params DustParams
	fileIO *FileIO
	args   *Args
}

// NewDust creates a dust component with the base parameters
func NewDust(fileIO *FileIO, args *Args) *Dust {
	return &Dust{
		Params: DefaultDustParams(),
		fileIO: orFileIO(fileIO),
		args:   orArgs(args),
	}
}

// Parameters returns the mutable parameter set
func (d *Dust) Parameters() *DustParams {
	return &d.Params
}

// Command renders the component for the .cmd file
func (d *Dust) Command() (string, error) {
	return d.CommandLine()
}

// CommandLine renders exactly this component, ignoring any mixing a variant does in Command
func (d *Dust) CommandLine() (string, error) {
	p := d.Params
	fields := []string{
		Quote(d.CatalogPath()),
		Quote(p.SizeKeyword),
		FormatFloat(p.Fraction),
		FormatFloat(p.MaterialDensity),
		FormatFloat(p.AMin),
		FormatFloat(p.AMax),
	}
	for _, v := range p.SizeParameter {
		fields = append(fields, FormatFloat(v))
	}
	return CommandLine("<dust_component>", fields...), nil
}

// CatalogPath resolves the catalog file against the POLARIS input directory
func (d *Dust) CatalogPath() string {
	if filepath.IsAbs(d.Params.CatalogFile) || d.fileIO.InputDir == "" {
		return d.Params.CatalogFile
	}
	return filepath.Join(d.fileIO.InputDir, d.Params.CatalogFile)
}
