// Package version provides version information for navstack.
package version

// Version is the navstack version. Overridable at build time via ldflags.
var Version = "development"

// Commit is the git commit hash. Overridable at build time via ldflags.
var Commit = "unknown"

// String returns the full version string including the commit hash if
// available.
func String() string {
	if Commit != "unknown" {
		return Version + "+" + Commit
	}
	return Version
}
