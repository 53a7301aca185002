// Package version provides information about the build version of the service.
package version

// APIVersion is the version of the HTTP contract, independent of the build
const APIVersion = "1.0.0"

// BuildInfo holds version information about the service build.
type BuildInfo struct {
	Service    string `json:"service"`
	Version    string `json:"version"`
	APIVersion string `json:"apiVersion"`
	Commit     string `json:"commit"`
	Date       string `json:"date"`
}

// Info returns the build information. The version, commit, and date variables
// are intended to be set at build time using -ldflags.
func Info() BuildInfo {
	// Set via -ldflags "-X 'genailab/internal/core/version.version=v0.0.1'
	// -X 'genailab/internal/core/version.commit=abcd' -X 'genailab/internal/core/version.date=2026-10-01'"
	return BuildInfo{
		Service:    "genailab-api",
		Version:    version,
		APIVersion: APIVersion,
		Commit:     commit,
		Date:       date,
	}
}

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)
