package polaris

import (
	"github.com/picogrid/polaris-tools/pkg/registry"
)

// DetectorBuilder is implemented by every detector variant
type DetectorBuilder interface {
	Parameters() *DetectorParams
	ScatteringCommand() (string, error)
	EmissionCommand() (string, error)
	LineCommand() (string, error)
}

// DustComponent is implemented by every dust variant
type DustComponent interface {
	Parameters() *DustParams
	// Command renders what the variant contributes to the .cmd file
	Command() (string, error)
	// CommandLine renders only this component's own parameters
	CommandLine() (string, error)
}

// SourceBuilder is implemented by every radiation source variant
type SourceBuilder interface {
	Parameters() *StarParams
	Command() (string, error)
}

// Factories stored in the registries
type (
	DetectorFactory func(model *Model, args *Args) DetectorBuilder
	DustFactory     func(fileIO *FileIO, args *Args, chooser *Chooser) DustComponent
	SourceFactory   func(fileIO *FileIO, args *Args) SourceBuilder
)

// Registries groups the variant registries of all component kinds
type Registries struct {
	Detectors *registry.Registry[DetectorFactory]
	Dusts     *registry.Registry[DustFactory]
	Sources   *registry.Registry[SourceFactory]
}

// NewRegistries creates empty registries
func NewRegistries() *Registries {
	return &Registries{
		Detectors: registry.New[DetectorFactory]("detector"),
		Dusts:     registry.New[DustFactory]("dust"),
		Sources:   registry.New[SourceFactory]("source"),
	}
}

// DefaultRegistries is populated by the init functions of variant packages
var DefaultRegistries = NewRegistries()

// NewDetector builds the named detector variant
func (r *Registries) NewDetector(name string, model *Model, args *Args) (DetectorBuilder, error) {
	factory, err := r.Detectors.Lookup(name)
	if err != nil {
		return nil, err
	}
	return factory(orModel(model), orArgs(args)), nil
}

// NewDust builds the named dust variant with a chooser over r.Dusts
func (r *Registries) NewDust(name string, fileIO *FileIO, args *Args) (DustComponent, error) {
	return r.Chooser(fileIO, args).ModuleFromName(name)
}

// NewSource builds the named source variant
func (r *Registries) NewSource(name string, fileIO *FileIO, args *Args) (SourceBuilder, error) {
	factory, err := r.Sources.Lookup(name)
	if err != nil {
		return nil, err
	}
	return factory(orFileIO(fileIO), orArgs(args)), nil
}

// Chooser returns a dust chooser bound to the given contexts
func (r *Registries) Chooser(fileIO *FileIO, args *Args) *Chooser {
	return NewChooser(r.Dusts, fileIO, args)
}
