package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/picogrid/polaris-tools/pkg/polaris"
)

// Workspace is a POLARIS installation to generate command files for
type Workspace struct {
	Name      string `yaml:"name"`
	InputDir  string `yaml:"input_dir"`
	OutputDir string `yaml:"output_dir"`
}

// FileIO returns the file context handed to dust and source builders
func (w Workspace) FileIO(gridFile string) *polaris.FileIO {
	return &polaris.FileIO{
		InputDir:  w.InputDir,
		OutputDir: w.OutputDir,
		GridFile:  gridFile,
	}
}

// Workspaces holds the configured workspaces
type Workspaces struct {
	Workspaces []Workspace `yaml:"workspaces"`
	Selected   string      `yaml:"selected,omitempty"`
}

// Find returns the workspace with the given name
func (c *Workspaces) Find(name string) (*Workspace, error) {
	for i := range c.Workspaces {
		if c.Workspaces[i].Name == name {
			return &c.Workspaces[i], nil
		}
	}
	return nil, fmt.Errorf("workspace %s not found", name)
}

// Current returns the selected workspace, or the first one if none is selected
func (c *Workspaces) Current() (*Workspace, error) {
	if c.Selected != "" {
		return c.Find(c.Selected)
	}
	if len(c.Workspaces) == 0 {
		return nil, fmt.Errorf("no workspaces configured")
	}
	return &c.Workspaces[0], nil
}

// Dir returns the polaris-tools configuration directory
func Dir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".polaris-tools"), nil
}

// LoadWorkspaces loads workspace configurations from the default location
func LoadWorkspaces() (*Workspaces, error) {
	dir, err := Dir()
	if err != nil {
		return nil, err
	}
	return LoadWorkspacesFromFile(filepath.Join(dir, "workspaces.yaml"))
}

// LoadWorkspacesFromFile loads workspace configurations from a specific file
func LoadWorkspacesFromFile(path string) (*Workspaces, error) {
	// If file doesn't exist, return default config
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return getDefaultWorkspaces(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read workspaces file: %w", err)
	}

	var ws Workspaces
	if err := yaml.Unmarshal(data, &ws); err != nil {
		return nil, fmt.Errorf("failed to parse workspaces file: %w", err)
	}

	return &ws, nil
}

// SaveWorkspaces saves the workspace configuration to the default location
func SaveWorkspaces(ws *Workspaces) error {
	dir, err := Dir()
	if err != nil {
		return err
	}
	return SaveWorkspacesToFile(ws, filepath.Join(dir, "workspaces.yaml"))
}

// SaveWorkspacesToFile saves the workspace configuration to path
func SaveWorkspacesToFile(ws *Workspaces, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(ws)
	if err != nil {
		return fmt.Errorf("failed to marshal workspaces: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write workspaces file: %w", err)
	}

	return nil
}

// getDefaultWorkspaces returns a workspace rooted in the working directory
func getDefaultWorkspaces() *Workspaces {
	return &Workspaces{
		Workspaces: []Workspace{
			{
				Name:      "Local",
				InputDir:  "input",
				OutputDir: "output",
			},
		},
	}
}
