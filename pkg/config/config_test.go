package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/picogrid/polaris-tools/pkg/polaris"
)

func TestLoadWorkspacesMissingFileReturnsDefault(t *testing.T) {
	ws, err := LoadWorkspacesFromFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	current, err := ws.Current()
	require.NoError(t, err)
	assert.Equal(t, "Local", current.Name)
	assert.Equal(t, "input", current.InputDir)
}

func TestWorkspacesRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "workspaces.yaml")
	ws := &Workspaces{
		Workspaces: []Workspace{
			{Name: "Cluster", InputDir: "/scratch/polaris/input", OutputDir: "/scratch/out"},
			{Name: "Laptop", InputDir: "/home/me/polaris/input", OutputDir: "/home/me/out"},
		},
		Selected: "Laptop",
	}

	require.NoError(t, SaveWorkspacesToFile(ws, path))

	loaded, err := LoadWorkspacesFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, ws, loaded)

	current, err := loaded.Current()
	require.NoError(t, err)
	assert.Equal(t, "/home/me/polaris/input", current.FileIO("grid.dat").InputDir)
	assert.Equal(t, "grid.dat", current.FileIO("grid.dat").GridFile)

	_, err = loaded.Find("Nowhere")
	assert.Error(t, err)
}

func TestLoadWorkspacesInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "workspaces.yaml")
	require.NoError(t, os.WriteFile(path, []byte("workspaces: [name"), 0644))

	_, err := LoadWorkspacesFromFile(path)
	assert.Error(t, err)
}

func TestCurrentWithoutWorkspaces(t *testing.T) {
	_, err := (&Workspaces{}).Current()
	assert.Error(t, err)
}

func TestApplyOverridesDetector(t *testing.T) {
	params := polaris.DefaultDetectorParams()

	err := ApplyOverrides(&params, map[string]interface{}{
		"rot_angle_1":    90,
		"wavelength_min": 5e-7,
		"nr_pixel_x":     512,
		"rot_axis_2":     []interface{}{0, 0, 1},
		"shape":          "polar",
	})
	require.NoError(t, err)

	assert.Equal(t, 90.0, params.RotAngle1)
	assert.Equal(t, 5e-7, params.WavelengthMin)
	assert.Equal(t, 512, params.NrPixelX)
	assert.Equal(t, polaris.Vector{0, 0, 1}, params.RotAxis2)
	assert.Equal(t, polaris.ShapePolar, params.Shape)

	// untouched
	assert.Equal(t, 256, params.NrPixelY)
	assert.Equal(t, polaris.Vector{1, 0, 0}, params.RotAxis1)
}

func TestApplyOverridesUnknownKey(t *testing.T) {
	params := polaris.DefaultStarParams()

	err := ApplyOverrides(&params, map[string]interface{}{"luminosity": 3})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "luminosity")
}

func TestApplyOverridesWrongType(t *testing.T) {
	params := polaris.DefaultDustParams()

	err := ApplyOverrides(&params, map[string]interface{}{"size_parameter": "steep"})
	assert.Error(t, err)
}

func TestApplyOverridesReplacesLists(t *testing.T) {
	params := polaris.DefaultDustParams()

	require.NoError(t, ApplyOverrides(&params, map[string]interface{}{
		"size_keyword":   "logn",
		"size_parameter": []interface{}{1e-7, 0.2},
	}))
	assert.Equal(t, []float64{1e-7, 0.2}, params.SizeParameter)
	assert.Equal(t, "logn", params.SizeKeyword)
}

func TestParseSetFlags(t *testing.T) {
	values, err := ParseSetFlags([]string{
		"wavelength_min=1e-6",
		"nr_pixel_x=128",
		"kepler_usable=false",
		"position=[1.5e11, 0, 0]",
		"dust_cat_file=my dust.dat",
	})
	require.NoError(t, err)

	assert.Equal(t, 1e-6, values["wavelength_min"])
	assert.Equal(t, 128, values["nr_pixel_x"])
	assert.Equal(t, false, values["kepler_usable"])
	assert.Equal(t, []interface{}{1.5e11, 0, 0}, values["position"])
	assert.Equal(t, "my dust.dat", values["dust_cat_file"])

	star := polaris.DefaultStarParams()
	require.NoError(t, ApplyOverrides(&star, map[string]interface{}{"position": values["position"]}))
	assert.Equal(t, polaris.Vector{1.5e11, 0, 0}, star.Position)
}

func TestParseSetFlagsInvalid(t *testing.T) {
	_, err := ParseSetFlags([]string{"no-equals-sign"})
	assert.Error(t, err)

	_, err = ParseSetFlags([]string{"=3"})
	assert.Error(t, err)
}

func TestLoadOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "overrides.yaml")
	content := `detector:
  rot_angle_1: 45
  nr_pixel_x: 128
dust:
  fraction: 0.5
source:
  temperature: 6000
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	o, err := LoadOverrides(path)
	require.NoError(t, err)
	assert.Equal(t, 45, o.Detector["rot_angle_1"])
	assert.Equal(t, 0.5, o.Dust["fraction"])
	assert.Equal(t, 6000, o.Source["temperature"])

	require.NoError(t, os.WriteFile(path, []byte("detectors:\n  x: 1\n"), 0644))
	_, err = LoadOverrides(path)
	assert.Error(t, err, "unknown top-level keys are rejected")
}
