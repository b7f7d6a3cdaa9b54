// Package builtin provides the named detector, dust and source variants that
// ship with polaris-tools.
package builtin

import (
	"fmt"

	"github.com/picogrid/polaris-tools/pkg/logger"
	"github.com/picogrid/polaris-tools/pkg/polaris"
)

// Register installs all built-in variants into r. It fails if any name is
// already taken.
func Register(r *polaris.Registries) error {
	for name, factory := range detectors {
		if err := r.Detectors.Register(name, factory); err != nil {
			return fmt.Errorf("failed to register built-in detector: %w", err)
		}
	}
	for name, factory := range dusts {
		if err := r.Dusts.Register(name, factory); err != nil {
			return fmt.Errorf("failed to register built-in dust: %w", err)
		}
	}
	for name, factory := range sources {
		if err := r.Sources.Register(name, factory); err != nil {
			return fmt.Errorf("failed to register built-in source: %w", err)
		}
	}
	return nil
}

func init() {
	if err := Register(polaris.DefaultRegistries); err != nil {
		logger.Errorf("Failed to register built-in variants: %v", err)
	}
}
