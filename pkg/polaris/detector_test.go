package polaris

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testDistance = 3.086e18

func newTestDetector(args *Args) *Detector {
	return NewDetector(&Model{Name: "disk", Distance: testDistance}, args)
}

func TestDetectorScatteringCommandLine(t *testing.T) {
	d := newTestDetector(nil)

	line, err := d.ScatteringCommand()
	require.NoError(t, err)
	assert.Equal(t, "\t<detector_dust_mc nr_pixel = \"256*256\">\t1e-06\t1e-06\t1\t0\t0\t3.086e+18\t1\t1\t0\t0\n", line)
}

func TestDetectorScatteringNoPeelOff(t *testing.T) {
	d := newTestDetector(&Args{NoPeelOff: true})
	d.Params.AcceptanceAngle = 2.5

	line, err := d.ScatteringCommand()
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(line, "\t0\t0\t2.5\n"), line)
}

func TestDetectorScatteringRequiresCartesian(t *testing.T) {
	d := newTestDetector(nil)
	d.Params.Shape = ShapePolar

	_, err := d.ScatteringCommand()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnsupportedShape))
}

func TestDetectorEmissionCommandLine(t *testing.T) {
	d := newTestDetector(nil)

	line, err := d.EmissionCommand()
	require.NoError(t, err)
	assert.Equal(t, "\t<detector_dust nr_pixel = \"256*256\">\t1e-06\t1e-06\t1\t1\t1\t0\t0\t0\t0\t1\t0\t0\t3.086e+18\t1\t1\t0\t0\n", line)

	d.Params.Shape = ShapePolar
	line, err = d.EmissionCommand()
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(line, "\t<detector_dust_polar nr_pixel = \"256*256\">"), line)
}

func TestDetectorLineCommandLine(t *testing.T) {
	d := newTestDetector(nil)

	line, err := d.LineCommand()
	require.NoError(t, err)
	assert.Equal(t, "\t<detector_line nr_pixel = \"256*256\" vel_channels = \"35\">\t1\t1\t1\t3000\t1\t0\t0\t0\t0\t1\t0\t0\t3.086e+18\t1\t1\t0\t0\n", line)
}

func TestDetectorUnknownShape(t *testing.T) {
	d := newTestDetector(nil)
	d.Params.Shape = "hexagonal"

	_, err := d.EmissionCommand()
	assert.True(t, errors.Is(err, ErrUnsupportedShape))
	_, err = d.LineCommand()
	assert.True(t, errors.Is(err, ErrUnsupportedShape))
}

func TestDetectorArgsOverrides(t *testing.T) {
	d := newTestDetector(&Args{Wavelength: 8.5e-7, Distance: 1e17})
	d.Params.WavelengthMax = 2e-6
	d.Params.NrOfWavelength = 10

	line, err := d.ScatteringCommand()
	require.NoError(t, err)
	assert.Equal(t, "\t<detector_dust_mc nr_pixel = \"256*256\">\t8.5e-07\t8.5e-07\t1\t0\t0\t1e+17\t1\t1\t0\t0\n", line)
	assert.Equal(t, 1e17, d.Distance())
}

func TestDetectorRenderIsIdempotent(t *testing.T) {
	d := newTestDetector(nil)

	first, err := d.EmissionCommand()
	require.NoError(t, err)
	second, err := d.EmissionCommand()
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestDetectorMultipleRotations(t *testing.T) {
	d := newTestDetector(nil)
	d.Params.RotAngle1 = 45

	out, err := d.ScatteringCommands(RotationAngles(0, 90)...)
	require.NoError(t, err)

	lines := strings.SplitAfter(out, "\n")
	require.Len(t, lines, 3) // trailing empty element
	assert.Contains(t, lines[0], "\t1\t0\t0\t")
	assert.Contains(t, lines[1], "\t1\t90\t0\t")
	assert.Equal(t, 45.0, d.Params.RotAngle1, "parameters must be restored")
}

func TestDetectorMultipleWithoutOverrides(t *testing.T) {
	d := newTestDetector(nil)

	single, err := d.LineCommand()
	require.NoError(t, err)
	multi, err := d.LineCommands()
	require.NoError(t, err)
	assert.Equal(t, single, multi)
}

func TestDetectorMultipleStopsOnError(t *testing.T) {
	d := newTestDetector(nil)

	_, err := d.ScatteringCommands(
		func(p *DetectorParams) { p.RotAngle1 = 10 },
		func(p *DetectorParams) { p.Shape = ShapePolar },
	)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnsupportedShape))
	assert.Contains(t, err.Error(), "detector 2")
	assert.Equal(t, ShapeCartesian, d.Params.Shape)
}

func TestNilContexts(t *testing.T) {
	d := NewDetector(nil, nil)

	line, err := d.EmissionCommand()
	require.NoError(t, err)
	assert.NotEmpty(t, line)
	assert.Equal(t, 0.0, d.Distance())
}
