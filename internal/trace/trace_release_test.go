//go:build !dev

package trace

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReleaseTrace(t *testing.T) {
	t.Setenv(EnvVar, t.TempDir()+"/trace.out")

	stop := Init()
	defer stop()
	assert.False(t, IsEnabled())

	Region(context.Background(), "noop")()

	called := false
	WithRegion(context.Background(), "noop", func() { called = true })
	assert.True(t, called)
}
