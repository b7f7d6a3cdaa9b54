package polaris

import (
	"fmt"
	"strings"
)

// Detector shapes
const (
	ShapeCartesian = "cartesian"
	ShapePolar     = "polar"
)

// DetectorParams holds the configuration of one detector
type DetectorParams struct {
	WavelengthMin      float64 `yaml:"wavelength_min"`
	WavelengthMax      float64 `yaml:"wavelength_max"`
	NrOfWavelength     int     `yaml:"nr_of_wavelength"`
	RotAxis1           Vector  `yaml:"rot_axis_1"`
	RotAxis2           Vector  `yaml:"rot_axis_2"`
	RotAngle1          float64 `yaml:"rot_angle_1"`
	RotAngle2          float64 `yaml:"rot_angle_2"`
	NrPixelX           int     `yaml:"nr_pixel_x"`
	NrPixelY           int     `yaml:"nr_pixel_y"`
	SourceID           int     `yaml:"source_id"`
	GasSpeciesID       int     `yaml:"gas_species_id"`
	TransitionID       int     `yaml:"transition_id"`
	NrVelocityChannels int     `yaml:"nr_velocity_channels"`
	MaxVelocity        float64 `yaml:"max_velocity"` // m/s
	SidelengthZoomX    float64 `yaml:"sidelength_zoom_x"`
	SidelengthZoomY    float64 `yaml:"sidelength_zoom_y"`
	MapShiftX          float64 `yaml:"map_shift_x"`
	MapShiftY          float64 `yaml:"map_shift_y"`
	AcceptanceAngle    float64 `yaml:"acceptance_angle"` // degrees
	Shape              string  `yaml:"shape"`
}

// DefaultDetectorParams returns the base detector configuration
func DefaultDetectorParams() DetectorParams {
	return DetectorParams{
		WavelengthMin:      1e-6,
		WavelengthMax:      1e-6,
		NrOfWavelength:     1,
		RotAxis1:           Vector{1, 0, 0},
		RotAxis2:           Vector{0, 1, 0},
		NrPixelX:           256,
		NrPixelY:           256,
		SourceID:           1,
		GasSpeciesID:       1,
		TransitionID:       1,
		NrVelocityChannels: 35,
		MaxVelocity:        3000,
		SidelengthZoomX:    1,
		SidelengthZoomY:    1,
		AcceptanceAngle:    1.0,
		Shape:              ShapeCartesian,
	}
}

// DetectorOverride changes detector parameters for one rendered fragment
type DetectorOverride func(*DetectorParams)

// RotationAngles returns one override per angle around the first rotation axis
func RotationAngles(angles ...float64) []DetectorOverride {
	overrides := make([]DetectorOverride, 0, len(angles))
	for _, angle := range angles {
		angle := angle
		overrides = append(overrides, func(p *DetectorParams) {
			p.RotAngle1 = angle
		})
	}
	return overrides
}

// Detector renders detector parameters into POLARIS command lines
type Detector struct {
	Params DetectorParams
	model  *Model
	args   *Args
}

// NewDetector creates a detector with the base parameters
func NewDetector(model *Model, args *Args) *Detector {
	return &Detector{
		Params: DefaultDetectorParams(),
		model:  orModel(model),
		args:   orArgs(args),
	}
}

// Parameters returns the mutable parameter set
func (d *Detector) Parameters() *DetectorParams {
	return &d.Params
}

// Model returns the model space the detector observes
func (d *Detector) Model() *Model {
	return d.model
}

// ScatteringCommand renders the detector for Monte-Carlo simulations
func (d *Detector) ScatteringCommand() (string, error) {
	return d.ScatteringCommandLine()
}

// EmissionCommand renders the detector for raytrace simulations
func (d *Detector) EmissionCommand() (string, error) {
	return d.EmissionCommandLine()
}

// LineCommand renders the detector for spectral line simulations
func (d *Detector) LineCommand() (string, error) {
	return d.LineCommandLine()
}

// ScatteringCommands renders one Monte-Carlo detector per override
func (d *Detector) ScatteringCommands(overrides ...DetectorOverride) (string, error) {
	return RenderDetectors(d, d.ScatteringCommand, overrides...)
}

// EmissionCommands renders one raytrace detector per override
func (d *Detector) EmissionCommands(overrides ...DetectorOverride) (string, error) {
	return RenderDetectors(d, d.EmissionCommand, overrides...)
}

// LineCommands renders one line detector per override
func (d *Detector) LineCommands(overrides ...DetectorOverride) (string, error) {
	return RenderDetectors(d, d.LineCommand, overrides...)
}

// ScatteringCommandLine renders a <detector_dust_mc> line. Only cartesian
// detectors exist for Monte-Carlo simulations.
func (d *Detector) ScatteringCommandLine() (string, error) {
	p := d.Params
	if p.Shape != ShapeCartesian {
		return "", fmt.Errorf("dust scattering detector with shape %q: %w", p.Shape, ErrUnsupportedShape)
	}

	fields := d.wavelengthFields()
	fields = append(fields,
		FormatFloat(p.RotAngle1),
		FormatFloat(p.RotAngle2),
	)
	fields = append(fields, d.mapFields()...)
	if d.args.NoPeelOff {
		fields = append(fields, FormatFloat(p.AcceptanceAngle))
	}

	return CommandLine(fmt.Sprintf("<detector_dust_mc %s>", d.pixelAttr()), fields...), nil
}

// EmissionCommandLine renders a <detector_dust> or <detector_dust_polar> line
func (d *Detector) EmissionCommandLine() (string, error) {
	tag, err := d.tag("detector_dust")
	if err != nil {
		return "", err
	}

	fields := d.wavelengthFields()
	fields = append(fields, formatInt(d.Params.SourceID))
	fields = append(fields, d.rotationFields()...)
	fields = append(fields, d.mapFields()...)

	return CommandLine(fmt.Sprintf("<%s %s>", tag, d.pixelAttr()), fields...), nil
}

// LineCommandLine renders a <detector_line> or <detector_line_polar> line
func (d *Detector) LineCommandLine() (string, error) {
	tag, err := d.tag("detector_line")
	if err != nil {
		return "", err
	}

	p := d.Params
	fields := []string{
		formatInt(p.GasSpeciesID),
		formatInt(p.TransitionID),
		formatInt(p.SourceID),
		FormatFloat(p.MaxVelocity),
	}
	fields = append(fields, d.rotationFields()...)
	fields = append(fields, d.mapFields()...)

	attr := fmt.Sprintf("%s vel_channels = %s", d.pixelAttr(), Quote(formatInt(p.NrVelocityChannels)))
	return CommandLine(fmt.Sprintf("<%s %s>", tag, attr), fields...), nil
}

// Distance returns the observer distance, preferring the command line value
func (d *Detector) Distance() float64 {
	if d.args.Distance > 0 {
		return d.args.Distance
	}
	return d.model.Distance
}

func (d *Detector) tag(base string) (string, error) {
	switch d.Params.Shape {
	case ShapeCartesian:
		return base, nil
	case ShapePolar:
		return base + "_polar", nil
	default:
		return "", fmt.Errorf("%s with shape %q: %w", base, d.Params.Shape, ErrUnsupportedShape)
	}
}

func (d *Detector) pixelAttr() string {
	return "nr_pixel = " + Quote(formatInt(d.Params.NrPixelX)+"*"+formatInt(d.Params.NrPixelY))
}

func (d *Detector) wavelengthFields() []string {
	p := d.Params
	wlMin, wlMax, nr := p.WavelengthMin, p.WavelengthMax, p.NrOfWavelength
	if d.args.Wavelength > 0 {
		wlMin, wlMax, nr = d.args.Wavelength, d.args.Wavelength, 1
	}
	return []string{FormatFloat(wlMin), FormatFloat(wlMax), formatInt(nr)}
}

func (d *Detector) rotationFields() []string {
	p := d.Params
	fields := formatVector(p.RotAxis1)
	fields = append(fields, FormatFloat(p.RotAngle1))
	fields = append(fields, formatVector(p.RotAxis2)...)
	fields = append(fields, FormatFloat(p.RotAngle2))
	return fields
}

func (d *Detector) mapFields() []string {
	p := d.Params
	return []string{
		FormatFloat(d.Distance()),
		FormatFloat(p.SidelengthZoomX),
		FormatFloat(p.SidelengthZoomY),
		FormatFloat(p.MapShiftX),
		FormatFloat(p.MapShiftY),
	}
}

// RenderDetectors calls render once per override and concatenates the
// fragments. Each override is applied on top of the parameters the builder
// had before the call; those parameters are restored afterwards. Without
// overrides a single fragment is rendered.
func RenderDetectors(b DetectorBuilder, render func() (string, error), overrides ...DetectorOverride) (string, error) {
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
			return "", fmt.Errorf("detector %d: %w", i+1, err)
		}
		sb.WriteString(line)
	}
	return sb.String(), nil
}
