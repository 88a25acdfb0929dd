// Package version exposes the build version of bumpkind.
package version

import "runtime/debug"

// version is set via: -X github.com/indaco/bumpkind/internal/version.version=$(git describe --tags)
var version = ""

var readBuildInfoFn = debug.ReadBuildInfo

// GetVersion returns the ldflags version, the module version recorded by
// `go install`, or "dev".
func GetVersion() string {
	if version != "" {
		return version
	}
	if info, ok := readBuildInfoFn(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return "dev"
}
