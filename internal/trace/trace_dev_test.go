//go:build dev

package trace

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDevTrace_RecordsRegions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trace.out")
	t.Setenv(EnvVar, path)

	stop := Init()
	require.True(t, IsEnabled())

	Region(context.Background(), "resolve")()
	called := false
	WithRegion(context.Background(), "collect", func() { called = true })
	assert.True(t, called)

	stop()
	stop()
	assert.False(t, IsEnabled())

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

func TestDevTrace_UnwritablePath(t *testing.T) {
	t.Setenv(EnvVar, filepath.Join(t.TempDir(), "missing", "trace.out"))

	stop := Init()
	defer stop()
	assert.False(t, IsEnabled())
}
