package buildinfo

import "runtime/debug"

const devVersion = "dev"

var version = devVersion

// SetVersion lets the binary override the version injected at link time,
// e.g. -ldflags "-X main.version=v1.2.0".
func SetVersion(v string) {
	if v == "" {
		return
	}
	version = v
}

// Version returns the semantic version or module version of the build.
func Version() string {
	if version != devVersion {
		return version
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return devVersion
}
