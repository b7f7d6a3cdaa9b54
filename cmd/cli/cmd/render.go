package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/picogrid/polaris-tools/pkg/config"
	"github.com/picogrid/polaris-tools/pkg/logger"
	"github.com/picogrid/polaris-tools/pkg/polaris"
	"github.com/picogrid/polaris-tools/pkg/utils"
)

// Detector render modes
const (
	modeScattering = "scattering"
	modeEmission   = "emission"
	modeLine       = "line"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render a single component",
	Long:  `Render the POLARIS command fragment of one detector, dust or source variant`,
}

var renderDetectorCmd = &cobra.Command{
	Use:   "detector",
	Short: "Render a detector",
	RunE:  renderDetector,
}

var renderDustCmd = &cobra.Command{
	Use:   "dust",
	Short: "Render a dust component",
	RunE:  renderDust,
}

var renderSourceCmd = &cobra.Command{
	Use:   "source",
	Short: "Render a radiation source",
	RunE:  renderSource,
}

func init() {
	for _, c := range []*cobra.Command{renderDetectorCmd, renderDustCmd, renderSourceCmd} {
		setHelp := "parameter override as key=value (repeatable)"
		if c == renderDustCmd {
			setHelp += "; mixtures such as custom render their components and ignore their own parameters"
		}
		c.Flags().String("variant", "custom", "registered variant name")
		c.Flags().StringArray("set", nil, setHelp)
		c.Flags().String("overrides", "", "overrides file (YAML)")
		c.Flags().BoolP("interactive", "i", false, "prompt for every parameter")
		renderCmd.AddCommand(c)
	}

	renderDetectorCmd.Flags().StringP("mode", "m", modeEmission, "detector mode (scattering, emission, line)")
	renderDetectorCmd.Flags().Float64Slice("rot-angle-1", nil, "render one detector per angle around the first axis")
	renderDustCmd.Flags().String("grid", "", "grid file the dust is rendered for")
}

func renderDetector(cmd *cobra.Command, _ []string) error {
	variant, _ := cmd.Flags().GetString("variant")
	mode, _ := cmd.Flags().GetString("mode")
	angles, _ := cmd.Flags().GetFloat64Slice("rot-angle-1")

	d, err := polaris.DefaultRegistries.NewDetector(variant, modelFromConfig(), argsFromConfig())
	if err != nil {
		return err
	}

	overrides, err := commandOverrides(cmd, func(o *config.Overrides) map[string]interface{} { return o.Detector })
	if err != nil {
		return err
	}
	if err := config.ApplyOverrides(d.Parameters(), overrides); err != nil {
		return err
	}
	if err := promptOverrides(cmd, d.Parameters(), polaris.DetectorSchema(*d.Parameters())); err != nil {
		return err
	}

	render, err := detectorRenderer(d, mode)
	if err != nil {
		return err
	}

	out, err := polaris.RenderDetectors(d, render, polaris.RotationAngles(angles...)...)
	if err != nil {
		return err
	}
	return writeFragment(cmd.OutOrStdout(), out)
}

func renderDust(cmd *cobra.Command, _ []string) error {
	variant, _ := cmd.Flags().GetString("variant")
	grid, _ := cmd.Flags().GetString("grid")

	ws, err := currentWorkspace()
	if err != nil {
		return err
	}

	d, err := polaris.DefaultRegistries.NewDust(variant, ws.FileIO(grid), argsFromConfig())
	if err != nil {
		return err
	}

	overrides, err := commandOverrides(cmd, func(o *config.Overrides) map[string]interface{} { return o.Dust })
	if err != nil {
		return err
	}
	if err := config.ApplyOverrides(d.Parameters(), overrides); err != nil {
		return err
	}
	if err := promptOverrides(cmd, d.Parameters(), polaris.DustSchema(*d.Parameters())); err != nil {
		return err
	}

	out, err := d.Command()
	if err != nil {
		return err
	}

	interactive, _ := cmd.Flags().GetBool("interactive")
	if (len(overrides) > 0 || interactive) && !rendersOwnParameters(d, out) {
		logger.Warnf("Dust %s is a mixture; parameter overrides do not change its output", variant)
	}
	return writeFragment(cmd.OutOrStdout(), out)
}

func renderSource(cmd *cobra.Command, _ []string) error {
	variant, _ := cmd.Flags().GetString("variant")

	ws, err := currentWorkspace()
	if err != nil {
		return err
	}

	s, err := polaris.DefaultRegistries.NewSource(variant, ws.FileIO(""), argsFromConfig())
	if err != nil {
		return err
	}

	overrides, err := commandOverrides(cmd, func(o *config.Overrides) map[string]interface{} { return o.Source })
	if err != nil {
		return err
	}
	if err := config.ApplyOverrides(s.Parameters(), overrides); err != nil {
		return err
	}
	if err := promptOverrides(cmd, s.Parameters(), polaris.StarSchema(*s.Parameters())); err != nil {
		return err
	}

	out, err := s.Command()
	if err != nil {
		return err
	}
	return writeFragment(cmd.OutOrStdout(), out)
}

// rendersOwnParameters reports whether out contains the component's own
// dust line. Mixtures render other components instead.
func rendersOwnParameters(d polaris.DustComponent, out string) bool {
	own, err := d.CommandLine()
	return err == nil && strings.Contains(out, own)
}

// detectorRenderer picks the render method for mode
func detectorRenderer(d polaris.DetectorBuilder, mode string) (func() (string, error), error) {
	switch mode {
	case modeScattering:
		return d.ScatteringCommand, nil
	case modeEmission:
		return d.EmissionCommand, nil
	case modeLine:
		return d.LineCommand, nil
	default:
		return nil, fmt.Errorf("unknown detector mode %q (use %s, %s or %s)", mode, modeScattering, modeEmission, modeLine)
	}
}

// commandOverrides merges the overrides file with --set values. Values from
// --set win.
func commandOverrides(cmd *cobra.Command, kind func(*config.Overrides) map[string]interface{}) (map[string]interface{}, error) {
	path, _ := cmd.Flags().GetString("overrides")
	sets, _ := cmd.Flags().GetStringArray("set")

	var fromFile map[string]interface{}
	if path != "" {
		o, err := config.LoadOverrides(path)
		if err != nil {
			return nil, err
		}
		fromFile = kind(o)
	}

	fromFlags, err := config.ParseSetFlags(sets)
	if err != nil {
		return nil, err
	}

	return mergeOverrides(fromFile, fromFlags), nil
}

func mergeOverrides(layers ...map[string]interface{}) map[string]interface{} {
	merged := make(map[string]interface{})
	for _, layer := range layers {
		for k, v := range layer {
			merged[k] = v
		}
	}
	return merged
}

func promptOverrides(cmd *cobra.Command, dst interface{}, schema []polaris.Parameter) error {
	interactive, _ := cmd.Flags().GetBool("interactive")
	if !interactive {
		return nil
	}
	if !utils.PromptsAllowed() {
		logger.Warn("Prompts are disabled, using the current parameters")
		return nil
	}

	values, err := utils.PromptForParameters(schema)
	if err != nil {
		return fmt.Errorf("failed to get parameters: %w", err)
	}
	return config.ApplyOverrides(dst, values)
}

func writeFragment(w io.Writer, fragment string) error {
	_, err := io.WriteString(w, fragment)
	return err
}
