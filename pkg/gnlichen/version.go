package gnlichen

var (
	// Version is set by the build via ldflags.
	Version = "v0.1.0"
	// Build timestamp, set by the build via ldflags.
	Build = "n/a"
)
