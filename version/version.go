// Package version holds build-time version information.
package version

import "runtime"

// These are injected at build time via -ldflags.
var (
	// GitRelease is the release tag or "dev" for local builds.
	GitRelease = "dev"

	// GitCommit is the short commit hash.
	GitCommit = "unknown"

	// GitCommitDate is the commit date.
	GitCommitDate = "unknown"
)

// GoInfo is the Go toolchain version this binary was built with.
var GoInfo = runtime.Version()
