package completion

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"time"
)

const (
	// DefaultCommandTimeout is the default timeout for generator commands
	DefaultCommandTimeout = 3 * time.Second
	// MaxOutputSize is the default cap on captured stdout (1MB)
	MaxOutputSize = 1024 * 1024
	// waitDelay bounds how long we wait for a killed command's pipes to close
	waitDelay = 100 * time.Millisecond
)

// errEmptyCommand is returned for a generator without a program name
var errEmptyCommand = errors.New("empty command")

// execWithTimeout runs argv without a shell and returns its stdout.
// A timeout <= 0 uses DefaultCommandTimeout; a maxOutput <= 0 uses MaxOutputSize.
func execWithTimeout(ctx context.Context, timeout time.Duration, maxOutput int, argv []string) ([]byte, error) {
	if len(argv) == 0 || argv[0] == "" {
		return nil, errEmptyCommand
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if timeout <= 0 {
		timeout = DefaultCommandTimeout
	}
	if maxOutput <= 0 {
		maxOutput = MaxOutputSize
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.WaitDelay = waitDelay

	output, err := cmd.Output()
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, fmt.Errorf("command timeout after %v: %w", timeout, err)
		}
		return nil, err
	}

	return truncateOutput(output, maxOutput), nil
}

// truncateOutput caps output at max bytes, cutting back to the last full line
// so a half-written line never becomes a suggestion.
func truncateOutput(output []byte, max int) []byte {
	if len(output) <= max {
		return output
	}
	output = output[:max]
	if i := bytes.LastIndexByte(output, '\n'); i >= 0 {
		return output[:i+1]
	}
	return output
}
