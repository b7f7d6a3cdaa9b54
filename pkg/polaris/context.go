// Package polaris holds the component contracts used to build POLARIS command
// files: the shared contexts, typed parameter sets for detectors, dust
// components and stellar sources, their base command line renderers and the
// name-keyed registries used to select variants.
package polaris

// Model describes the model space a detector observes.
type Model struct {
	Name string
	// Distance between observer and model center [m]
	Distance float64
	// Extent is half the side length of the model space [m]
	Extent float64
}

// FileIO carries the paths of a POLARIS installation.
type FileIO struct {
	// InputDir is the POLARIS input/ directory; dust catalog files are relative to it
	InputDir string
	// OutputDir receives simulation results
	OutputDir string
	// GridFile is the model grid handed to POLARIS
	GridFile string
}

// Args are the parsed command line arguments shared by every builder.
// Zero values mean "not set".
type Args struct {
	// Photons overrides the nr_photons of every stellar source
	Photons float64
	// Wavelength replaces the detector wavelength range with a single wavelength [m]
	Wavelength float64
	// Distance overrides the model distance [m]
	Distance float64
	// NoPeelOff makes Monte-Carlo detectors use the acceptance angle
	NoPeelOff bool
	// Threads is the number of POLARIS threads (-1 uses all cores)
	Threads int
}

func orModel(m *Model) *Model {
	if m == nil {
		return &Model{}
	}
	return m
}

func orFileIO(f *FileIO) *FileIO {
	if f == nil {
		return &FileIO{}
	}
	return f
}

func orArgs(a *Args) *Args {
	if a == nil {
		return &Args{}
	}
	return a
}
