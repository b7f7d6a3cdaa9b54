package polaris

import (
	"fmt"

	"github.com/picogrid/polaris-tools/pkg/registry"
)

// Chooser looks up dust components by name so a variant can mix others into
// its own command. Every lookup builds a fresh component.
type Chooser struct {
	dusts  *registry.Registry[DustFactory]
	fileIO *FileIO
	args   *Args
}

// NewChooser creates a chooser over the given dust registry
func NewChooser(dusts *registry.Registry[DustFactory], fileIO *FileIO, args *Args) *Chooser {
	return &Chooser{
		dusts:  dusts,
		fileIO: orFileIO(fileIO),
		args:   orArgs(args),
	}
}

// ModuleFromName returns a new instance of the named dust component. Unknown
// names fail with an error wrapping ErrNotFound, as does every lookup on a
// nil chooser or one without a registry.
func (c *Chooser) ModuleFromName(name string) (DustComponent, error) {
	if c == nil || c.dusts == nil {
		return nil, fmt.Errorf("dust %s: %w", name, ErrNotFound)
	}
	factory, err := c.dusts.Lookup(name)
	if err != nil {
		return nil, err
	}
	return factory(c.fileIO, c.args, c), nil
}
