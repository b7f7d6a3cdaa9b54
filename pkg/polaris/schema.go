package polaris

// Parameter types
const (
	TypeInteger   = "integer"
	TypeFloat     = "float"
	TypeString    = "string"
	TypeBoolean   = "boolean"
	TypeVector    = "vector"     // three floats
	TypeFloatList = "float_list" // any number of floats
)

// Parameter describes one configurable value of a component
type Parameter struct {
	Name        string      `yaml:"name"`
	Type        string      `yaml:"type"`
	Description string      `yaml:"description"`
	Default     interface{} `yaml:"default"`
	Options     []string    `yaml:"options,omitempty"` // For string enums
}

// DetectorSchema describes the detector parameters, using p for the defaults
func DetectorSchema(p DetectorParams) []Parameter {
	return []Parameter{
		{Name: "wavelength_min", Type: TypeFloat, Description: "First observing wavelength [m]", Default: p.WavelengthMin},
		{Name: "wavelength_max", Type: TypeFloat, Description: "Last observing wavelength [m]", Default: p.WavelengthMax},
		{Name: "nr_of_wavelength", Type: TypeInteger, Description: "Number of logarithmically distributed wavelengths", Default: p.NrOfWavelength},
		{Name: "rot_axis_1", Type: TypeVector, Description: "First rotation axis", Default: p.RotAxis1[:]},
		{Name: "rot_axis_2", Type: TypeVector, Description: "Second rotation axis", Default: p.RotAxis2[:]},
		{Name: "rot_angle_1", Type: TypeFloat, Description: "Rotation angle around the first axis [deg]", Default: p.RotAngle1},
		{Name: "rot_angle_2", Type: TypeFloat, Description: "Rotation angle around the second axis [deg]", Default: p.RotAngle2},
		{Name: "nr_pixel_x", Type: TypeInteger, Description: "Number of pixels along x", Default: p.NrPixelX},
		{Name: "nr_pixel_y", Type: TypeInteger, Description: "Number of pixels along y", Default: p.NrPixelY},
		{Name: "source_id", Type: TypeInteger, Description: "Index of the background source", Default: p.SourceID},
		{Name: "gas_species_id", Type: TypeInteger, Description: "Index of the gas species (line simulations)", Default: p.GasSpeciesID},
		{Name: "transition_id", Type: TypeInteger, Description: "Index of the transition (line simulations)", Default: p.TransitionID},
		{Name: "nr_velocity_channels", Type: TypeInteger, Description: "Number of velocity channels (line simulations)", Default: p.NrVelocityChannels},
		{Name: "max_velocity", Type: TypeFloat, Description: "Maximum velocity of the channels [m/s]", Default: p.MaxVelocity},
		{Name: "sidelength_zoom_x", Type: TypeFloat, Description: "Zoom factor along x", Default: p.SidelengthZoomX},
		{Name: "sidelength_zoom_y", Type: TypeFloat, Description: "Zoom factor along y", Default: p.SidelengthZoomY},
		{Name: "map_shift_x", Type: TypeFloat, Description: "Detector offset along x [m]", Default: p.MapShiftX},
		{Name: "map_shift_y", Type: TypeFloat, Description: "Detector offset along y [m]", Default: p.MapShiftY},
		{Name: "acceptance_angle", Type: TypeFloat, Description: "Acceptance angle without peel-off [deg]", Default: p.AcceptanceAngle},
		{Name: "shape", Type: TypeString, Description: "Detector shape", Default: p.Shape, Options: []string{ShapeCartesian, ShapePolar}},
	}
}

// DustSchema describes the dust parameters, using p for the defaults
func DustSchema(p DustParams) []Parameter {
	return []Parameter{
		{Name: "dust_cat_file", Type: TypeString, Description: "Dust catalog file relative to the POLARIS input directory", Default: p.CatalogFile},
		{Name: "fraction", Type: TypeFloat, Description: "Relative fraction when mixing components", Default: p.Fraction},
		{Name: "material_density", Type: TypeFloat, Description: "Material density [kg/m^3]", Default: p.MaterialDensity},
		{Name: "amin", Type: TypeFloat, Description: "Minimum grain size [m]", Default: p.AMin},
		{Name: "amax", Type: TypeFloat, Description: "Maximum grain size [m]", Default: p.AMax},
		{Name: "size_keyword", Type: TypeString, Description: "Size distribution", Default: p.SizeKeyword,
			Options: []string{SizePowerLaw, SizePowerLawExpDecay, SizeLogNormal}},
		{Name: "size_parameter", Type: TypeFloatList, Description: "Size distribution parameters", Default: p.SizeParameter},
	}
}

// StarSchema describes the stellar source parameters, using p for the defaults
func StarSchema(p StarParams) []Parameter {
	return []Parameter{
		{Name: "position", Type: TypeVector, Description: "Position of the star [m]", Default: p.Position[:]},
		{Name: "temperature", Type: TypeFloat, Description: "Effective temperature [K]", Default: p.Temperature},
		{Name: "radius", Type: TypeFloat, Description: "Radius [R_sun]", Default: p.Radius},
		{Name: "nr_photons", Type: TypeFloat, Description: "Number of photons if --photons is not set", Default: p.NrPhotons},
		{Name: "kepler_usable", Type: TypeBoolean, Description: "Derive the Keplerian velocity field from this star", Default: p.KeplerUsable},
		{Name: "mass", Type: TypeFloat, Description: "Mass [M_sun]", Default: p.Mass},
	}
}
