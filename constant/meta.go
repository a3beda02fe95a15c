// Package constant defines immutable application-level identifiers and configuration defaults.
package constant

const (
	// Kaltdl is the canonical application identifier used for filesystem paths and CLI branding.
	Kaltdl = "kaltdl"

	// Version is the current application semantic version string.
	Version = "0.3.1"

	// UserAgent is sent with the release check request.
	UserAgent = "kaltdl/" + Version
)

// Build metadata, overridden through -ldflags at release time.
var (
	BuiltAt  = "unknown"
	BuiltBy  = "unknown"
	Revision = "unknown"
)
