//go:build dev

// Package trace records runtime/trace data in dev builds.
//
//	go build -tags dev ./cmd/termsuggest
//	TERMSUGGEST_TRACE=trace.out termsuggest complete code --uninstall-extension ''
//	go tool trace trace.out
package trace

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime/trace"
)

// EnvVar names the trace output file
const EnvVar = "TERMSUGGEST_TRACE"

// Init starts a trace into the file named by TERMSUGGEST_TRACE, if any.
// The returned stop function flushes and closes it.
func Init() func() {
	path := os.Getenv(EnvVar)
	if path == "" {
		return func() {}
	}

	stop, err := start(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "termsuggest: trace disabled: %v\n", err)
		return func() {}
	}
	return stop
}

func start(path string) (func(), error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", path, err)
	}
	if err := trace.Start(f); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("start: %w", err)
	}
	return stopper(f), nil
}

func stopper(f io.Closer) func() {
	done := false
	return func() {
		if done {
			return
		}
		done = true
		trace.Stop()
		_ = f.Close()
	}
}

// Region opens a trace region; call the result to close it
func Region(ctx context.Context, regionType string) func() {
	if !trace.IsEnabled() {
		return func() {}
	}
	return trace.StartRegion(ctx, regionType).End
}

// WithRegion runs f inside a trace region
func WithRegion(ctx context.Context, regionType string, f func()) {
	trace.WithRegion(ctx, regionType, f)
}

// IsEnabled reports whether a trace is being recorded
func IsEnabled() bool {
	return trace.IsEnabled()
}
