// Package custom holds the user-editable detector, dust and source templates.
// Change the parameters below and select the variants by the name "custom".
package custom

import (
	"github.com/picogrid/polaris-tools/pkg/logger"
	"github.com/picogrid/polaris-tools/pkg/polaris"
	"github.com/picogrid/polaris-tools/pkg/registry"
)

// UpdateDetectorRegistry adds the custom detector to r, replacing any
// existing "custom" entry.
func UpdateDetectorRegistry(r *registry.Registry[polaris.DetectorFactory]) {
	r.Set("custom", NewDetector)
}

// Detector is the detector you want to use
type Detector struct {
	*polaris.Detector
}

// NewDetector creates the custom detector
func NewDetector(model *polaris.Model, args *polaris.Args) polaris.DetectorBuilder {
	d := &Detector{Detector: polaris.NewDetector(model, args)}

	// First and last wavelength of the observing wavelengths [m]
	d.Params.WavelengthMin = 1e-6
	d.Params.WavelengthMax = 1e-6
	// Number of logarithmically distributed wavelengths between min and max
	d.Params.NrOfWavelength = 1
	// Rotation angles around the first and second rotation axis [deg]
	d.Params.RotAngle1 = 0
	d.Params.RotAngle2 = 0
	// Number of pixels per axis
	d.Params.NrPixelX = 256
	d.Params.NrPixelY = 256
	// Index of the related background source (dust/line simulations)
	d.Params.SourceID = 1
	// Index of the gas species and transition (line simulations)
	d.Params.GasSpeciesID = 1
	d.Params.TransitionID = 1
	// Zoom onto the observed object
	d.Params.SidelengthZoomX = 1
	d.Params.SidelengthZoomY = 1
	// Detector offset in x and y [m]
	d.Params.MapShiftX = 0
	d.Params.MapShiftY = 0
	// Acceptance angle for Monte-Carlo simulations without peel-off [deg]
	d.Params.AcceptanceAngle = 1.0
	// Background grid for raytrace simulations
	d.Params.Shape = polaris.ShapeCartesian

	return d
}

// ScatteringCommand renders the detector for Monte-Carlo simulations.
//
// For several detectors, render once per rotation angle:
//
//	return d.ScatteringCommands(polaris.RotationAngles(0, 90)...)
func (d *Detector) ScatteringCommand() (string, error) {
	return d.ScatteringCommandLine()
}

// EmissionCommand renders the detector for raytrace simulations.
//
// For several detectors:
//
//	return d.EmissionCommands(polaris.RotationAngles(0, 90)...)
func (d *Detector) EmissionCommand() (string, error) {
	return d.EmissionCommandLine()
}

// LineCommand renders the detector for spectral line simulations.
//
// For several detectors:
//
//	return d.LineCommands(polaris.RotationAngles(0, 90)...)
func (d *Detector) LineCommand() (string, error) {
	return d.LineCommandLine()
}

func init() {
	UpdateDetectorRegistry(polaris.DefaultRegistries.Detectors)
	logger.Debug("Registered custom detector")
}
