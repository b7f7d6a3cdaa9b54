package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/picogrid/polaris-tools/pkg/cmdfile"
	"github.com/picogrid/polaris-tools/pkg/logger"
	"github.com/picogrid/polaris-tools/pkg/polaris"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List available variants and simulations",
	Long:  `List all registered detector, dust and source variants and the supported simulation kinds`,
	RunE:  listVariants,
}

func listVariants(cmd *cobra.Command, _ []string) error {
	r := polaris.DefaultRegistries

	table := logger.NewTable("KIND", "VARIANTS")
	table.AddRow("detector", strings.Join(r.Detectors.List(), ", "))
	table.AddRow("dust", strings.Join(r.Dusts.List(), ", "))
	table.AddRow("source", strings.Join(r.Sources.List(), ", "))
	table.AddRow("simulation", strings.Join(cmdfile.Simulations(), ", "))
	table.Fprint(cmd.OutOrStdout())

	return nil
}
