package cmdfile

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/picogrid/polaris-tools/pkg/polaris"
	"github.com/picogrid/polaris-tools/pkg/polaris/builtin"
)

type fixture struct {
	fileIO   *polaris.FileIO
	args     *polaris.Args
	dust     polaris.DustComponent
	source   polaris.SourceBuilder
	detector polaris.DetectorBuilder
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	fio := &polaris.FileIO{InputDir: "/polaris/input", OutputDir: "/polaris/output", GridFile: "/polaris/grid.dat"}
	args := &polaris.Args{Threads: 8}

	return fixture{
		fileIO:   fio,
		args:     args,
		dust:     polaris.NewDust(fio, args),
		source:   builtin.NewTTauri(fio, args),
		detector: polaris.NewDetector(&polaris.Model{Distance: 1e18}, args),
	}
}

func (f fixture) options(sim string) Options {
	return Options{
		Simulation: sim,
		Dust:       f.dust,
		Source:     f.source,
		Detector:   f.detector,
		FileIO:     f.fileIO,
		Args:       f.args,
	}
}

func TestBuildTemp(t *testing.T) {
	f := newFixture(t)
	b, err := NewBuilder(f.options("temp"))
	require.NoError(t, err)

	out, err := b.Build()
	require.NoError(t, err)

	expected := "# polaris-tools run " + b.RunID().String() + "\n" +
		"<common>\n" +
		"\t<dust_component>\t\"/polaris/input/dust/silicate.dat\"\t\"plaw\"\t1\t3500\t5e-09\t2.5e-07\t-3.5\n" +
		"\t<axis1>\t1\t0\t0\n" +
		"\t<axis2>\t0\t1\t0\n" +
		"\t<nr_threads>\t8\n" +
		"</common>\n\n" +
		"<task> 1\n" +
		"\t<source_star nr_photons = \"1e+06\">\t0\t0\t0\t2\t4000\n" +
		"\t<cmd>\tCMD_TEMP\n" +
		"\t<path_grid>\t\"/polaris/grid.dat\"\n" +
		"\t<path_out>\t\"/polaris/output/temp/\"\n" +
		"\t<conv_dens>\t1\n" +
		"\t<conv_len>\t1\n" +
		"\t<conv_mag>\t1\n" +
		"\t<conv_vel>\t1\n" +
		"\t<mass_fraction>\t0.01\n" +
		"</task>\n"
	assert.Equal(t, expected, out)
}

func TestBuildCommandPerSimulation(t *testing.T) {
	tests := []struct {
		sim      string
		command  string
		detector string
	}{
		{sim: "rat", command: "CMD_RAT"},
		{sim: "temp_rat", command: "CMD_TEMP_RAT"},
		{sim: "dust_mc", command: "CMD_DUST_SCATTERING", detector: "<detector_dust_mc "},
		{sim: "dust", command: "CMD_DUST_EMISSION", detector: "<detector_dust "},
		{sim: "line", command: "CMD_LINE_EMISSION", detector: "<detector_line "},
	}

	for _, tt := range tests {
		t.Run(tt.sim, func(t *testing.T) {
			b, err := NewBuilder(newFixture(t).options(tt.sim))
			require.NoError(t, err)

			out, err := b.Build()
			require.NoError(t, err)
			assert.Contains(t, out, "\t<cmd>\t"+tt.command+"\n")
			if tt.detector != "" {
				assert.Contains(t, out, tt.detector)
			} else {
				assert.NotContains(t, out, "<detector")
			}
		})
	}
}

func TestBuildLine(t *testing.T) {
	b, err := NewBuilder(newFixture(t).options("line"))
	require.NoError(t, err)

	out, err := b.Build()
	require.NoError(t, err)
	assert.Contains(t, out, "\t<gas_species>\t\"/polaris/input/gas/co.dat\"\t1\t0.0001\n")
	assert.Contains(t, out, "\t<kepler_star_mass>\t0.7\n")
	assert.Less(t, strings.Index(out, "<gas_species>"), strings.Index(out, "<detector_line"))
}

func TestBuildLineWithoutKepler(t *testing.T) {
	f := newFixture(t)
	f.source.Parameters().KeplerUsable = false

	b, err := NewBuilder(f.options("line"))
	require.NoError(t, err)

	out, err := b.Build()
	require.NoError(t, err)
	assert.NotContains(t, out, "<kepler_star_mass>")
}

func TestBuildMultipleDetectors(t *testing.T) {
	opts := newFixture(t).options("dust")
	opts.Detectors = polaris.RotationAngles(0, 45, 90)

	b, err := NewBuilder(opts)
	require.NoError(t, err)

	out, err := b.Build()
	require.NoError(t, err)
	assert.Equal(t, 3, strings.Count(out, "<detector_dust "))
}

func TestBuildDefaultsThreads(t *testing.T) {
	opts := newFixture(t).options("temp")
	opts.Args = nil

	b, err := NewBuilder(opts)
	require.NoError(t, err)

	out, err := b.Build()
	require.NoError(t, err)
	assert.Contains(t, out, "\t<nr_threads>\t-1\n")
}

func TestNewBuilderValidation(t *testing.T) {
	f := newFixture(t)

	_, err := NewBuilder(f.options("monte_carlo"))
	assert.True(t, errors.Is(err, polaris.ErrUnknownSimulation))

	opts := f.options("temp")
	opts.Dust = nil
	_, err = NewBuilder(opts)
	assert.True(t, errors.Is(err, ErrMissingComponent))

	opts = f.options("dust_mc")
	opts.Source = nil
	_, err = NewBuilder(opts)
	assert.True(t, errors.Is(err, ErrMissingComponent))

	opts = f.options("line")
	opts.Detector = nil
	_, err = NewBuilder(opts)
	assert.True(t, errors.Is(err, ErrMissingComponent))

	opts = f.options("dust")
	opts.Source = nil
	_, err = NewBuilder(opts)
	assert.NoError(t, err, "raytrace simulations run without a source")
}

func TestBuildPropagatesRenderErrors(t *testing.T) {
	f := newFixture(t)
	f.detector.Parameters().Shape = polaris.ShapePolar

	b, err := NewBuilder(f.options("dust_mc"))
	require.NoError(t, err)

	_, err = b.Build()
	assert.True(t, errors.Is(err, polaris.ErrUnsupportedShape))
}

func TestWriteFile(t *testing.T) {
	b, err := NewBuilder(newFixture(t).options("temp"))
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "runs", "temp.cmd")
	require.NoError(t, b.WriteFile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "# polaris-tools run "+b.RunID().String()))
}

func TestSimulations(t *testing.T) {
	assert.Equal(t, []string{"dust", "dust_mc", "line", "rat", "temp", "temp_rat"}, Simulations())
	assert.True(t, NeedsDetector("line"))
	assert.False(t, NeedsDetector("temp"))
	assert.True(t, UsesSource("temp"))
	assert.True(t, UsesSource("line"))
	assert.False(t, UsesSource("dust"))
}
