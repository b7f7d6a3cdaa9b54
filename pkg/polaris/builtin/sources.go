package builtin

import "github.com/picogrid/polaris-tools/pkg/polaris"

var sources = map[string]polaris.SourceFactory{
	"sun":     NewSun,
	"t_tauri": NewTTauri,
}

// NewSun returns a solar-type star in the model center
func NewSun(fileIO *polaris.FileIO, args *polaris.Args) polaris.SourceBuilder {
	s := polaris.NewStellarSource(fileIO, args)
	s.Params.KeplerUsable = true
	return s
}

// NewTTauri returns a typical T Tauri star
func NewTTauri(fileIO *polaris.FileIO, args *polaris.Args) polaris.SourceBuilder {
	s := polaris.NewStellarSource(fileIO, args)
	s.Params.Temperature = 4000
	s.Params.Radius = 2.0
	s.Params.Mass = 0.7
	s.Params.KeplerUsable = true
	return s
}
