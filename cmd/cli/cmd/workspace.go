package cmd

import (
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"

	"github.com/picogrid/polaris-tools/pkg/config"
	"github.com/picogrid/polaris-tools/pkg/logger"
)

var workspaceCmd = &cobra.Command{
	Use:   "workspace",
	Short: "Manage POLARIS workspaces",
	Long:  `Manage the POLARIS input and output directories command files are generated for`,
}

var workspaceListCmd = &cobra.Command{
	Use:   "list",
	Short: "List configured workspaces",
	RunE:  listWorkspaces,
}

var workspaceAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a new workspace",
	RunE:  addWorkspace,
}

var workspaceRemoveCmd = &cobra.Command{
	Use:   "remove",
	Short: "Remove a workspace",
	RunE:  removeWorkspace,
}

var workspaceSelectCmd = &cobra.Command{
	Use:   "select [name]",
	Short: "Select the default workspace",
	Args:  cobra.MaximumNArgs(1),
	RunE:  selectWorkspace,
}

func init() {
	workspaceCmd.AddCommand(workspaceListCmd)
	workspaceCmd.AddCommand(workspaceAddCmd)
	workspaceCmd.AddCommand(workspaceRemoveCmd)
	workspaceCmd.AddCommand(workspaceSelectCmd)
}

func listWorkspaces(cmd *cobra.Command, _ []string) error {
	ws, err := config.LoadWorkspaces()
	if err != nil {
		return fmt.Errorf("failed to load workspaces: %w", err)
	}

	if len(ws.Workspaces) == 0 {
		logger.Info("No workspaces configured")
		return nil
	}

	current, _ := ws.Current()
	table := logger.NewTable("", "NAME", "INPUT", "OUTPUT")
	for _, w := range ws.Workspaces {
		marker := ""
		if current != nil && current.Name == w.Name {
			marker = "*"
		}
		table.AddRow(marker, w.Name, w.InputDir, w.OutputDir)
	}
	table.Fprint(cmd.OutOrStdout())

	return nil
}

func addWorkspace(_ *cobra.Command, _ []string) error {
	ws, err := config.LoadWorkspaces()
	if err != nil {
		return fmt.Errorf("failed to load workspaces: %w", err)
	}

	var w config.Workspace

	namePrompt := &survey.Input{
		Message: "Workspace name:",
	}
	if err := survey.AskOne(namePrompt, &w.Name, survey.WithValidator(survey.Required)); err != nil {
		return err
	}

	if _, err := ws.Find(w.Name); err == nil {
		return fmt.Errorf("workspace %s already exists", w.Name)
	}

	inputPrompt := &survey.Input{
		Message: "POLARIS input directory:",
		Help:    "Directory holding grids, dust catalogs and gas files",
		Default: "input",
	}
	if err := survey.AskOne(inputPrompt, &w.InputDir, survey.WithValidator(survey.Required)); err != nil {
		return err
	}

	outputPrompt := &survey.Input{
		Message: "POLARIS output directory:",
		Default: "output",
	}
	if err := survey.AskOne(outputPrompt, &w.OutputDir, survey.WithValidator(survey.Required)); err != nil {
		return err
	}

	ws.Workspaces = append(ws.Workspaces, w)

	if err := config.SaveWorkspaces(ws); err != nil {
		return fmt.Errorf("failed to save workspaces: %w", err)
	}

	logger.Successf("Workspace %s added", w.Name)
	return nil
}

func removeWorkspace(_ *cobra.Command, _ []string) error {
	ws, err := config.LoadWorkspaces()
	if err != nil {
		return fmt.Errorf("failed to load workspaces: %w", err)
	}

	if len(ws.Workspaces) == 0 {
		logger.Info("No workspaces to remove")
		return nil
	}

	var selected string
	prompt := &survey.Select{
		Message: "Select workspace to remove:",
		Options: workspaceNames(ws),
	}
	if err := survey.AskOne(prompt, &selected); err != nil {
		return err
	}

	var confirm bool
	confirmPrompt := &survey.Confirm{
		Message: fmt.Sprintf("Are you sure you want to remove %s?", selected),
		Default: false,
	}
	if err := survey.AskOne(confirmPrompt, &confirm); err != nil {
		return err
	}

	if !confirm {
		logger.Info("Removal cancelled")
		return nil
	}

	kept := make([]config.Workspace, 0, len(ws.Workspaces)-1)
	for _, w := range ws.Workspaces {
		if w.Name != selected {
			kept = append(kept, w)
		}
	}
	ws.Workspaces = kept
	if ws.Selected == selected {
		ws.Selected = ""
	}

	if err := config.SaveWorkspaces(ws); err != nil {
		return fmt.Errorf("failed to save workspaces: %w", err)
	}

	logger.Successf("Workspace %s removed", selected)
	return nil
}

func selectWorkspace(_ *cobra.Command, args []string) error {
	ws, err := config.LoadWorkspaces()
	if err != nil {
		return fmt.Errorf("failed to load workspaces: %w", err)
	}

	var selected string
	if len(args) == 1 {
		selected = args[0]
	} else {
		prompt := &survey.Select{
			Message: "Select workspace:",
			Options: workspaceNames(ws),
		}
		if err := survey.AskOne(prompt, &selected); err != nil {
			return err
		}
	}

	if _, err := ws.Find(selected); err != nil {
		return err
	}
	ws.Selected = selected

	if err := config.SaveWorkspaces(ws); err != nil {
		return fmt.Errorf("failed to save workspaces: %w", err)
	}

	logger.Successf("Using workspace %s", selected)
	return nil
}

func workspaceNames(ws *config.Workspaces) []string {
	names := make([]string, len(ws.Workspaces))
	for i, w := range ws.Workspaces {
		names[i] = w.Name
	}
	return names
}
