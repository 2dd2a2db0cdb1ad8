// Package version carries the build version, set via -ldflags on release
// builds and recovered from the embedded build info under `go install`.
package version

import "runtime/debug"

// Version is the application version. "devel" unless overridden at build
// time.
var Version = "devel"

func init() {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}
	if v := info.Main.Version; v != "" && v != "(devel)" {
		Version = v
	}
}
