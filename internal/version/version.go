// internal/version/version.go
package version

// Version is the released version string, overridable at build time via
// -ldflags "-X .../internal/version.Version=...".
var Version = "0.1.0"
