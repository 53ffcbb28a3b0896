package pokedb

var (
	// Version is the version of PokeDB, set by ldflags during the build.
	Version = "v0.1.0"

	// Build is a timestamp of the build, set by ldflags.
	Build = "n/a"
)
