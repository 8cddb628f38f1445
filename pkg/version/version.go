// Package version contains build information for termsuggest.
package version

var (
	// Version is the current version of termsuggest.
	Version = "dev"
	// BuildTime is the time when the binary was built.
	BuildTime = "unknown"
	// GitCommit is the git commit hash of the build.
	GitCommit = "unknown"
)

// String returns a one-line build summary.
func String() string {
	return Version + " (" + GitCommit + ", built " + BuildTime + ")"
}
