// Package version holds build metadata, overridable with -ldflags -X.
package version

var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)
