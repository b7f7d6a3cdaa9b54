package cmd

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"

	"github.com/picogrid/polaris-tools/pkg/cmdfile"
	"github.com/picogrid/polaris-tools/pkg/config"
	"github.com/picogrid/polaris-tools/pkg/logger"
	"github.com/picogrid/polaris-tools/pkg/polaris"
	"github.com/picogrid/polaris-tools/pkg/registry"
	"github.com/picogrid/polaris-tools/pkg/utils"
)

const defaultVariant = "custom"

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a POLARIS command file",
	Long:  `Generate a POLARIS command file interactively or with specified variants`,
	RunE:  generateCommandFile,
}

func init() {
	generateCmd.Flags().StringP("simulation", "s", "", "simulation kind ("+strings.Join(cmdfile.Simulations(), ", ")+")")
	generateCmd.Flags().String("detector", "", "detector variant")
	generateCmd.Flags().String("dust", "", "dust variant")
	generateCmd.Flags().String("source", "", "source variant")
	generateCmd.Flags().String("grid", "grid.dat", "grid file")
	generateCmd.Flags().StringP("output", "o", "", "output file (default is <output_dir>/<simulation>.cmd)")
	generateCmd.Flags().String("overrides", "", "overrides file (YAML)")
	generateCmd.Flags().Float64Slice("rot-angle-1", nil, "render one detector per angle around the first axis")
}

func generateCommandFile(cmd *cobra.Command, _ []string) error {
	simName, err := selectSimulation(cmd)
	if err != nil {
		return fmt.Errorf("failed to select simulation: %w", err)
	}

	ws, err := currentWorkspace()
	if err != nil {
		return fmt.Errorf("failed to select workspace: %w", err)
	}

	grid, _ := cmd.Flags().GetString("grid")
	fileIO := ws.FileIO(grid)
	args := argsFromConfig()
	r := polaris.DefaultRegistries

	overrides := &config.Overrides{}
	if path, _ := cmd.Flags().GetString("overrides"); path != "" {
		if overrides, err = config.LoadOverrides(path); err != nil {
			return err
		}
	}

	opts := cmdfile.Options{
		Simulation: simName,
		FileIO:     fileIO,
		Args:       args,
	}

	dustName, err := selectVariant(cmd, r.Dusts)
	if err != nil {
		return err
	}
	if opts.Dust, err = r.NewDust(dustName, fileIO, args); err != nil {
		return err
	}
	components := []string{"dust: " + dustName}
	if err := config.ApplyOverrides(opts.Dust.Parameters(), overrides.Dust); err != nil {
		return err
	}

	if cmdfile.UsesSource(simName) {
		sourceName, err := selectVariant(cmd, r.Sources)
		if err != nil {
			return err
		}
		if opts.Source, err = r.NewSource(sourceName, fileIO, args); err != nil {
			return err
		}
		components = append(components, "source: "+sourceName)
		if err := config.ApplyOverrides(opts.Source.Parameters(), overrides.Source); err != nil {
			return err
		}
	}

	if cmdfile.NeedsDetector(simName) {
		detectorName, err := selectVariant(cmd, r.Detectors)
		if err != nil {
			return err
		}
		if opts.Detector, err = r.NewDetector(detectorName, modelFromConfig(), args); err != nil {
			return err
		}
		components = append(components, "detector: "+detectorName)
		if err := config.ApplyOverrides(opts.Detector.Parameters(), overrides.Detector); err != nil {
			return err
		}
		angles, _ := cmd.Flags().GetFloat64Slice("rot-angle-1")
		opts.Detectors = polaris.RotationAngles(angles...)
	}

	builder, err := cmdfile.NewBuilder(opts)
	if err != nil {
		return err
	}

	output, _ := cmd.Flags().GetString("output")
	if output == "" {
		output = filepath.Join(ws.OutputDir, simName+".cmd")
	}

	logger.LogSection(cmd.ErrOrStderr(), fmt.Sprintf("Generating %s", simName))
	logger.LogKeyValue(cmd.ErrOrStderr(), "Workspace", ws.Name)
	logger.LogKeyValue(cmd.ErrOrStderr(), "Run", builder.RunID())
	logger.LogList(cmd.ErrOrStderr(), "Components:", components)

	logger.Progressf("Rendering %s", output)

	if err := builder.WriteFile(output); err != nil {
		return fmt.Errorf("failed to write command file: %w", err)
	}

	logger.Successf("Command file written to %s", output)
	return nil
}

func selectSimulation(cmd *cobra.Command) (string, error) {
	simName, _ := cmd.Flags().GetString("simulation")
	if simName != "" {
		if !slices.Contains(cmdfile.Simulations(), simName) {
			return "", fmt.Errorf("%q (use %s): %w", simName, strings.Join(cmdfile.Simulations(), ", "), polaris.ErrUnknownSimulation)
		}
		return simName, nil
	}

	if !utils.PromptsAllowed() {
		return "", fmt.Errorf("--simulation is required when prompts are disabled")
	}

	prompt := &survey.Select{
		Message: "Select simulation:",
		Options: cmdfile.Simulations(),
	}
	if err := survey.AskOne(prompt, &simName); err != nil {
		return "", err
	}
	return simName, nil
}

// selectVariant returns the variant named by the flag of the registry's
// kind, prompting when the flag is empty and falling back to "custom" otherwise
func selectVariant[F any](cmd *cobra.Command, r *registry.Registry[F]) (string, error) {
	kind := r.Kind()
	name, _ := cmd.Flags().GetString(kind)
	if name != "" {
		return name, nil
	}

	if !utils.PromptsAllowed() {
		return defaultVariant, nil
	}
	return utils.SelectVariant(kind, r.List(), defaultVariant)
}
