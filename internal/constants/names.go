package constants

// File names used by the eye storage
const (
	// EyeInfoFileName is the snapshot file holding tips and layers.
	EyeInfoFileName = "info.dat"

	// EyeMapObjectsFileName is the append only map object event journal.
	EyeMapObjectsFileName = "mapobjects.dat"
)
