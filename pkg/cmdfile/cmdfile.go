// Package cmdfile assembles complete POLARIS command files from the fragments
// rendered by detector, dust and source builders.
package cmdfile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/picogrid/polaris-tools/pkg/logger"
	"github.com/picogrid/polaris-tools/pkg/polaris"
)

// ErrMissingComponent is returned when a simulation lacks a component it needs
var ErrMissingComponent = errors.New("missing component")

type detectorMode int

const (
	noDetector detectorMode = iota
	scatteringDetector
	emissionDetector
	lineDetector
)

type simulation struct {
	command     string
	needsSource bool
	detector    detectorMode
}

var simulations = map[string]simulation{
	"temp":     {command: "CMD_TEMP", needsSource: true},
	"rat":      {command: "CMD_RAT", needsSource: true},
	"temp_rat": {command: "CMD_TEMP_RAT", needsSource: true},
	"dust_mc":  {command: "CMD_DUST_SCATTERING", needsSource: true, detector: scatteringDetector},
	"dust":     {command: "CMD_DUST_EMISSION", detector: emissionDetector},
	"line":     {command: "CMD_LINE_EMISSION", detector: lineDetector},
}

// Simulations returns the supported simulation kinds
func Simulations() []string {
	names := make([]string, 0, len(simulations))
	for name := range simulations {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NeedsDetector reports whether the simulation kind renders a detector
func NeedsDetector(kind string) bool {
	return simulations[kind].detector != noDetector
}

// UsesSource reports whether the simulation kind renders a radiation source.
// Line simulations take the Keplerian star mass from it.
func UsesSource(kind string) bool {
	sim := simulations[kind]
	return sim.needsSource || sim.detector == lineDetector
}

// Gas is the gas species of a line simulation
type Gas struct {
	// CatalogFile is relative to the POLARIS input directory
	CatalogFile     string
	LevelPopulation int
	Abundance       float64
}

// DefaultGas returns CO in LTE with an abundance of 1e-4
func DefaultGas() *Gas {
	return &Gas{
		CatalogFile:     "gas/co.dat",
		LevelPopulation: 1,
		Abundance:       1e-4,
	}
}

// Conversion holds the unit conversion factors of the grid
type Conversion struct {
	Density      float64
	Length       float64
	Magnetic     float64
	Velocity     float64
	MassFraction float64
}

// DefaultConversion returns SI grids with a dust-to-gas mass ratio of 0.01
func DefaultConversion() Conversion {
	return Conversion{
		Density:      1,
		Length:       1,
		Magnetic:     1,
		Velocity:     1,
		MassFraction: 0.01,
	}
}

// Options describes one POLARIS run
type Options struct {
	Simulation string
	Dust       polaris.DustComponent
	Source     polaris.SourceBuilder
	Detector   polaris.DetectorBuilder
	// Detectors renders one detector per override instead of one
	Detectors  []polaris.DetectorOverride
	Gas        *Gas
	FileIO     *polaris.FileIO
	Args       *polaris.Args
	Conversion *Conversion
}

// Builder renders a command file for one run
type Builder struct {
	opts  Options
	sim   simulation
	runID uuid.UUID
	log   logger.Logger
}

// NewBuilder validates opts and returns a builder
func NewBuilder(opts Options) (*Builder, error) {
	sim, ok := simulations[opts.Simulation]
	if !ok {
		return nil, fmt.Errorf("%q: %w", opts.Simulation, polaris.ErrUnknownSimulation)
	}

	if opts.Dust == nil {
		return nil, fmt.Errorf("%s needs a dust component: %w", opts.Simulation, ErrMissingComponent)
	}
	if sim.needsSource && opts.Source == nil {
		return nil, fmt.Errorf("%s needs a radiation source: %w", opts.Simulation, ErrMissingComponent)
	}
	if sim.detector != noDetector && opts.Detector == nil {
		return nil, fmt.Errorf("%s needs a detector: %w", opts.Simulation, ErrMissingComponent)
	}

	if opts.FileIO == nil {
		opts.FileIO = &polaris.FileIO{}
	}
	if opts.Args == nil {
		opts.Args = &polaris.Args{}
	}
	if opts.Conversion == nil {
		c := DefaultConversion()
		opts.Conversion = &c
	}
	if sim.detector == lineDetector && opts.Gas == nil {
		opts.Gas = DefaultGas()
	}

	runID := uuid.New()
	return &Builder{
		opts:  opts,
		sim:   sim,
		runID: runID,
		log:   logger.WithPrefix("cmdfile").WithField("run", runID.String()[:8]),
	}, nil
}

// RunID identifies the generated file
func (b *Builder) RunID() uuid.UUID {
	return b.runID
}

// Build renders the complete command file
func (b *Builder) Build() (string, error) {
	var sb strings.Builder

	sb.WriteString("# polaris-tools run " + b.runID.String() + "\n")

	dust, err := b.opts.Dust.Command()
	if err != nil {
		return "", fmt.Errorf("failed to render dust: %w", err)
	}

	sb.WriteString("<common>\n")
	sb.WriteString(dust)
	sb.WriteString(polaris.CommandLine("<axis1>", "1", "0", "0"))
	sb.WriteString(polaris.CommandLine("<axis2>", "0", "1", "0"))
	sb.WriteString(polaris.CommandLine("<nr_threads>", fmt.Sprint(b.threads())))
	sb.WriteString("</common>\n\n")

	sb.WriteString("<task> 1\n")

	if b.opts.Source != nil {
		source, err := b.opts.Source.Command()
		if err != nil {
			return "", fmt.Errorf("failed to render source: %w", err)
		}
		sb.WriteString(source)
	}

	if b.sim.detector == lineDetector {
		gas := b.opts.Gas
		sb.WriteString(polaris.CommandLine("<gas_species>",
			polaris.Quote(b.inputPath(gas.CatalogFile)),
			fmt.Sprint(gas.LevelPopulation),
			polaris.FormatFloat(gas.Abundance),
		))
	}

	if b.sim.detector != noDetector {
		detector, err := b.renderDetector()
		if err != nil {
			return "", fmt.Errorf("failed to render detector: %w", err)
		}
		sb.WriteString(detector)
	}

	if b.sim.detector == lineDetector {
		if mass, ok := b.keplerStarMass(); ok {
			sb.WriteString(polaris.CommandLine("<kepler_star_mass>", polaris.FormatFloat(mass)))
		}
	}

	conv := b.opts.Conversion
	sb.WriteString(polaris.CommandLine("<cmd>", b.sim.command))
	sb.WriteString(polaris.CommandLine("<path_grid>", polaris.Quote(b.opts.FileIO.GridFile)))
	sb.WriteString(polaris.CommandLine("<path_out>", polaris.Quote(b.outputPath())))
	sb.WriteString(polaris.CommandLine("<conv_dens>", polaris.FormatFloat(conv.Density)))
	sb.WriteString(polaris.CommandLine("<conv_len>", polaris.FormatFloat(conv.Length)))
	sb.WriteString(polaris.CommandLine("<conv_mag>", polaris.FormatFloat(conv.Magnetic)))
	sb.WriteString(polaris.CommandLine("<conv_vel>", polaris.FormatFloat(conv.Velocity)))
	sb.WriteString(polaris.CommandLine("<mass_fraction>", polaris.FormatFloat(conv.MassFraction)))
	sb.WriteString("</task>\n")

	b.log.Debugf("Rendered %s command file", b.opts.Simulation)
	return sb.String(), nil
}

// WriteFile renders the command file and writes it to path
func (b *Builder) WriteFile(path string) error {
	content, err := b.Build()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("error creating directory: %w", err)
	}

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("error writing command file: %w", err)
	}

	b.log.Infof("Wrote %s", path)
	return nil
}

func (b *Builder) renderDetector() (string, error) {
	d := b.opts.Detector

	var render func() (string, error)
	switch b.sim.detector {
	case scatteringDetector:
		render = d.ScatteringCommand
	case emissionDetector:
		render = d.EmissionCommand
	case lineDetector:
		render = d.LineCommand
	}

	return polaris.RenderDetectors(d, render, b.opts.Detectors...)
}

func (b *Builder) keplerStarMass() (float64, bool) {
	type keplerSource interface {
		KeplerStarMass() (float64, bool)
	}
	if s, ok := b.opts.Source.(keplerSource); ok {
		return s.KeplerStarMass()
	}
	return 0, false
}

func (b *Builder) threads() int {
	if b.opts.Args.Threads == 0 {
		return -1
	}
	return b.opts.Args.Threads
}

func (b *Builder) inputPath(file string) string {
	if filepath.IsAbs(file) || b.opts.FileIO.InputDir == "" {
		return file
	}
	return filepath.Join(b.opts.FileIO.InputDir, file)
}

// outputPath is the per-simulation results directory. POLARIS expects the
// trailing separator.
func (b *Builder) outputPath() string {
	return filepath.Join(b.opts.FileIO.OutputDir, b.opts.Simulation) + string(filepath.Separator)
}
