package utils

import (
	"runtime/debug"
)

const unknownVersion = "unknown"

// ApplicationVersion can be injected at link time:
//
//	go build -ldflags "-X github.com/promptpack/promptpack/internal/utils.ApplicationVersion=v1.2.3"
var ApplicationVersion string

// GetApplicationVersion determines the application version. The link-time
// value wins; otherwise the module version recorded in the build info is
// used when one is available.
func GetApplicationVersion() string {
	if ApplicationVersion != "" {
		return ApplicationVersion
	}
	buildInfo, buildInfoAvailable := debug.ReadBuildInfo()
	if buildInfoAvailable && buildInfo.Main.Version != "" && buildInfo.Main.Version != "(devel)" {
		return buildInfo.Main.Version
	}
	return unknownVersion
}
