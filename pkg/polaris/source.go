package polaris

import (
	"fmt"
	"strings"
)

// StarParams holds the configuration of a stellar radiation source
type StarParams struct {
	Position     Vector  `yaml:"position"`    // m
	Temperature  float64 `yaml:"temperature"` // K
	Radius       float64 `yaml:"radius"`      // R_sun
	NrPhotons    float64 `yaml:"nr_photons"`
	KeplerUsable bool    `yaml:"kepler_usable"`
	Mass         float64 `yaml:"mass"` // M_sun
}

// DefaultStarParams returns a solar-type star in the model center
func DefaultStarParams() StarParams {
	return StarParams{
		Temperature: 5778,
		Radius:      1.0,
		NrPhotons:   1e6,
		Mass:        1.0,
	}
}

// StarOverride changes source parameters for one rendered fragment
type StarOverride func(*StarParams)

// StellarSource renders a star into a <source_star> line
type StellarSource struct {
	Params StarParams
	fileIO *FileIO
	args   *Args
}

// NewStellarSource creates a star with the base parameters
func NewStellarSource(fileIO *FileIO, args *Args) *StellarSource {
	return &StellarSource{
		Params: DefaultStarParams(),
		fileIO: orFileIO(fileIO),
		args:   orArgs(args),
	}
}

// Parameters returns the mutable parameter set
func (s *StellarSource) Parameters() *StarParams {
	return &s.Params
}

// Command renders the source for the .cmd file
func (s *StellarSource) Command() (string, error) {
	return s.CommandLine()
}

// Commands renders one star per override
func (s *StellarSource) Commands(overrides ...StarOverride) (string, error) {
	return RenderSources(s, s.Command, overrides...)
}

// CommandLine renders the current parameters as a single star
func (s *StellarSource) CommandLine() (string, error) {
	p := s.Params
	fields := formatVector(p.Position)
	fields = append(fields, FormatFloat(p.Radius), FormatFloat(p.Temperature))

	attr := "nr_photons = " + Quote(FormatFloat(s.Photons()))
	return CommandLine(fmt.Sprintf("<source_star %s>", attr), fields...), nil
}

// Photons returns the photon count, preferring the command line value
func (s *StellarSource) Photons() float64 {
	if s.args.Photons > 0 {
		return s.args.Photons
	}
	return s.Params.NrPhotons
}

// KeplerStarMass returns the stellar mass and whether the velocity field of
// the model may be derived from this star alone.
func (s *StellarSource) KeplerStarMass() (float64, bool) {
	return s.Params.Mass, s.Params.KeplerUsable
}

// RenderSources is the source counterpart of RenderDetectors
func RenderSources(b SourceBuilder, render func() (string, error), overrides ...StarOverride) (string, error) {
	if len(overrides) == 0 {
		return render()
	}

	params := b.Parameters()
	saved := *params
	defer func() { *params = saved }()

	var sb strings.Builder
	for i, override := range overrides {
		*params = saved
		override(params)
		line, err := render()
		if err != nil {
			return "", fmt.Errorf("source %d: %w", i+1, err)
		}
		sb.WriteString(line)
	}
	return sb.String(), nil
}
