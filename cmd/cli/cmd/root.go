package cmd

import (
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/picogrid/polaris-tools/pkg/config"
	"github.com/picogrid/polaris-tools/pkg/logger"
	"github.com/picogrid/polaris-tools/pkg/polaris"

	// Import variants to register them
	_ "github.com/picogrid/polaris-tools/cmd/custom"
	_ "github.com/picogrid/polaris-tools/pkg/polaris/builtin"
)

// Distance of the model when neither config nor flags set one: 140 pc
const defaultDistance = 4.3204e18

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "polaris-tools",
	Short: "POLARIS command file generator",
	Long: `polaris-tools renders detector, dust and radiation source definitions
into POLARIS command files. Edit the templates in cmd/custom and select
them by the variant name "custom".`,
	SilenceUsage: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (default is $HOME/.polaris-tools/config.yaml)")
	pf.String("workspace", "", "workspace name to use")
	pf.String("log-level", "info", "log level (debug, info, warn, error)")
	pf.Bool("no-color", false, "disable colored output")
	pf.Float64("photons", 0, "number of photons per source (overrides nr_photons)")
	pf.Float64("wavelength", 0, "single observing wavelength in m (overrides the detector range)")
	pf.Float64("distance", 0, "observer distance in m (overrides the model distance)")
	pf.Bool("no-peel-off", false, "use the acceptance angle for Monte-Carlo detectors")
	pf.Int("threads", 0, "number of POLARIS threads (0 uses all cores)")

	for _, name := range []string{
		"workspace", "log-level", "no-color", "photons", "wavelength", "distance", "no-peel-off", "threads",
	} {
		_ = viper.BindPFlag(name, pf.Lookup(name))
	}

	viper.SetDefault("model.name", "model")
	viper.SetDefault("model.distance", defaultDistance)
	viper.SetDefault("model.extent", 0)

	// Add commands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(workspaceCmd)
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// initConfig reads in config file and ENV variables if set
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Search for config in home directory
		viper.AddConfigPath("$HOME/.polaris-tools")
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	// POLARIS_PHOTONS, POLARIS_NO_PEEL_OFF, ...
	viper.SetEnvPrefix("POLARIS")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	viper.AutomaticEnv()

	// If a config file is found, read it in
	_ = viper.ReadInConfig()

	// Configure logger based on flags
	logger.SetLevel(logger.ParseLevel(viper.GetString("log-level")))
	logger.SetNoColor(viper.GetBool("no-color") || !logger.IsTerminal(os.Stderr))

	if used := viper.ConfigFileUsed(); used != "" {
		logger.Debugf("Using config file %s", used)
	}
}

// argsFromConfig collects the arguments shared by all builders
func argsFromConfig() *polaris.Args {
	return &polaris.Args{
		Photons:    viper.GetFloat64("photons"),
		Wavelength: viper.GetFloat64("wavelength"),
		Distance:   viper.GetFloat64("distance"),
		NoPeelOff:  viper.GetBool("no-peel-off"),
		Threads:    viper.GetInt("threads"),
	}
}

// modelFromConfig returns the model space described in the config file
func modelFromConfig() *polaris.Model {
	return &polaris.Model{
		Name:     viper.GetString("model.name"),
		Distance: viper.GetFloat64("model.distance"),
		Extent:   viper.GetFloat64("model.extent"),
	}
}

// currentWorkspace returns the workspace chosen by --workspace or the selected one
func currentWorkspace() (*config.Workspace, error) {
	ws, err := config.LoadWorkspaces()
	if err != nil {
		return nil, err
	}

	if name := viper.GetString("workspace"); name != "" {
		return ws.Find(name)
	}
	return ws.Current()
}
