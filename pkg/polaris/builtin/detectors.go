package builtin

import "github.com/picogrid/polaris-tools/pkg/polaris"

var detectors = map[string]polaris.DetectorFactory{
	"cartesian": NewCartesianDetector,
	"polar":     NewPolarDetector,
}

// NewCartesianDetector returns the base 256x256 cartesian detector
func NewCartesianDetector(model *polaris.Model, args *polaris.Args) polaris.DetectorBuilder {
	return polaris.NewDetector(model, args)
}

// NewPolarDetector returns a polar detector for raytrace and line simulations.
// nr_pixel_x counts rings, nr_pixel_y the pixels of the outermost ring.
func NewPolarDetector(model *polaris.Model, args *polaris.Args) polaris.DetectorBuilder {
	d := polaris.NewDetector(model, args)
	d.Params.Shape = polaris.ShapePolar
	d.Params.NrPixelX = 100
	d.Params.NrPixelY = 4
	return d
}
