// ABOUTME: Version constants for the module
// ABOUTME: Reported by the CLIs and embedded in diagnostics
package version

const (
	// Version is the module release, bumped on tagged builds.
	Version = "0.1.0"
	// Product is the public name of the codec suite.
	Product = "lpcvox"
)
