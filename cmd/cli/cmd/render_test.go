package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/picogrid/polaris-tools/pkg/config"
	"github.com/picogrid/polaris-tools/pkg/polaris"
)

func TestDetectorRenderer(t *testing.T) {
	d := polaris.NewDetector(&polaris.Model{Distance: 1}, nil)

	for _, tc := range []struct {
		mode   string
		prefix string
	}{
		{modeScattering, "\t<detector_dust_mc "},
		{modeEmission, "\t<detector_dust "},
		{modeLine, "\t<detector_line "},
	} {
		t.Run(tc.mode, func(t *testing.T) {
			render, err := detectorRenderer(d, tc.mode)
			require.NoError(t, err)

			out, err := render()
			require.NoError(t, err)
			assert.Contains(t, out, tc.prefix)
		})
	}

	_, err := detectorRenderer(d, "thermal")
	assert.Error(t, err)
}

func TestMergeOverrides(t *testing.T) {
	merged := mergeOverrides(
		map[string]interface{}{"amin": 1e-9, "fraction": 0.5},
		nil,
		map[string]interface{}{"fraction": 0.25},
	)

	assert.Equal(t, map[string]interface{}{"amin": 1e-9, "fraction": 0.25}, merged)
}

func TestCommandOverridesSetWinsOverFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "overrides.yaml")
	content := "detector:\n  rot_angle_1: 30\n  nr_pixel_x: 128\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cmd := &cobra.Command{}
	cmd.Flags().String("overrides", path, "")
	cmd.Flags().StringArray("set", nil, "")
	require.NoError(t, cmd.Flags().Set("set", "rot_angle_1=45"))

	overrides, err := commandOverrides(cmd, func(o *config.Overrides) map[string]interface{} { return o.Detector })
	require.NoError(t, err)

	d := polaris.NewDetector(nil, nil)
	require.NoError(t, config.ApplyOverrides(d.Parameters(), overrides))
	assert.Equal(t, 45.0, d.Params.RotAngle1)
	assert.Equal(t, 128, d.Params.NrPixelX)
}

func TestRenderDetectorCommand(t *testing.T) {
	var out bytes.Buffer
	renderDetectorCmd.SetOut(&out)
	t.Cleanup(func() { renderDetectorCmd.SetOut(nil) })

	require.NoError(t, renderDetectorCmd.Flags().Set("variant", "cartesian"))
	require.NoError(t, renderDetectorCmd.Flags().Set("mode", modeEmission))
	require.NoError(t, renderDetectorCmd.Flags().Set("rot-angle-1", "0,90"))

	require.NoError(t, renderDetector(renderDetectorCmd, nil))
	assert.Equal(t, 2, bytes.Count(out.Bytes(), []byte("<detector_dust ")))
}

func TestRendersOwnParameters(t *testing.T) {
	r := polaris.DefaultRegistries

	mixture, err := r.NewDust("custom", nil, nil)
	require.NoError(t, err)
	out, err := mixture.Command()
	require.NoError(t, err)
	assert.False(t, rendersOwnParameters(mixture, out))

	single, err := r.NewDust("silicate", nil, nil)
	require.NoError(t, err)
	out, err = single.Command()
	require.NoError(t, err)
	assert.True(t, rendersOwnParameters(single, out))
}
