package polaris

import (
	"errors"

	"github.com/picogrid/polaris-tools/pkg/registry"
)

var (
	// ErrNotFound is returned when a variant name is not registered
	ErrNotFound = registry.ErrNotFound

	// ErrUnsupportedShape is returned when a detector shape cannot be used for a simulation
	ErrUnsupportedShape = errors.New("unsupported detector shape")

	// ErrUnknownSimulation is returned for simulation kinds POLARIS does not offer
	ErrUnknownSimulation = errors.New("unknown simulation")
)
