package coinswap

import "github.com/citadel-tech/coinswap-ffi/pkg/coinswap/internal/backend"

var (
	// Version is the binding version, populated at build time via ldflags.
	Version = "v0.0.0-dev"
)

// BindingVersion returns the version of this Go binding.
func BindingVersion() string {
	return Version
}

// EngineVersion returns the version string reported by the native engine,
// or empty when the engine is not linked in.
func EngineVersion() string {
	return backend.Version()
}
