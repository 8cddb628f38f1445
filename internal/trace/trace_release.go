//go:build !dev

// Package trace wraps runtime/trace for development builds.
// Release builds compile to no-ops.
package trace

import "context"

// EnvVar names the trace output file
const EnvVar = "TERMSUGGEST_TRACE"

// Init is a no-op in release builds
func Init() func() {
	return func() {}
}

// Region is a no-op in release builds
func Region(_ context.Context, _ string) func() {
	return func() {}
}

// WithRegion just calls f in release builds
func WithRegion(_ context.Context, _ string, f func()) {
	f()
}

// IsEnabled always returns false in release builds
func IsEnabled() bool {
	return false
}
