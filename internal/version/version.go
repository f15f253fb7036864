// Package version exposes the build version of appgate-conf.
package version

// Version is overridden at build time via
// -ldflags "-X github.com/hostbridge/appgate/internal/version.Version=...".
var Version = "dev"

func Get() string {
	return "appgate-conf " + Version
}
