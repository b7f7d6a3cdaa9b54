package custom

import (
	"github.com/picogrid/polaris-tools/pkg/logger"
	"github.com/picogrid/polaris-tools/pkg/polaris"
	"github.com/picogrid/polaris-tools/pkg/registry"
)

// UpdateSourceRegistry adds the custom star to r, replacing any existing
// "custom" entry.
func UpdateSourceRegistry(r *registry.Registry[polaris.SourceFactory]) {
	r.Set("custom", NewStar)
}

// Star is the star you want to use
type Star struct {
	*polaris.StellarSource
}

// NewStar creates the custom star
func NewStar(fileIO *polaris.FileIO, args *polaris.Args) polaris.SourceBuilder {
	s := &Star{StellarSource: polaris.NewStellarSource(fileIO, args)}

	// Position of the star [m]
	s.Params.Position = polaris.Vector{0, 0, 0}
	// Effective temperature [K]
	s.Params.Temperature = 4000
	// Radius [R_sun]
	s.Params.Radius = 2.0
	// Number of photons if none is chosen via --photons
	s.Params.NrPhotons = 1e6
	// Whether this star alone defines the Keplerian velocity field
	s.Params.KeplerUsable = true
	// Mass [M_sun], used for Keplerian rotation
	s.Params.Mass = 0.7

	return s
}

// Command renders the star.
//
// For several stars, render once per parameter set:
//
//	return s.Commands(
//		func(p *polaris.StarParams) { p.Temperature, p.Radius = 8000, 4.0 },
//		func(p *polaris.StarParams) { p.Temperature, p.Radius = 5000, 3.0 },
//	)
func (s *Star) Command() (string, error) {
	return s.CommandLine()
}

func init() {
	UpdateSourceRegistry(polaris.DefaultRegistries.Sources)
	logger.Debug("Registered custom source")
}
