package status

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/NikitaCOEUR/termsuggest/internal/completion"
	"github.com/NikitaCOEUR/termsuggest/internal/specs/code"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectAll_Defaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	cacheHome := t.TempDir()
	t.Setenv("XDG_CACHE_HOME", cacheHome)

	data, err := CollectAll("")
	require.NoError(t, err)

	assert.Equal(t, "code", data.Program)
	assert.Equal(t, "code", data.SpecName)
	assert.Empty(t, data.ConfigPath)
	assert.False(t, data.CacheEnabled)
	assert.Equal(t, filepath.Join(cacheHome, "termsuggest", completion.OutputCacheFile), data.CachePath)
	assert.Nil(t, data.Cache)
	assert.Equal(t, []string{"--install-extension", "--uninstall-extension", "--disable-extension"}, data.GeneratorSites)
	assert.Equal(t, len(code.NewSpec("code").Options), data.OptionCount)
	assert.Greater(t, data.TokenCount, data.OptionCount)
}

func TestCollectAll_WithConfigAndCache(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	dir := t.TempDir()
	program := filepath.Join(dir, "code")
	require.NoError(t, os.WriteFile(program, []byte("#!/bin/sh\n"), 0755))

	cacheDir := filepath.Join(dir, "cache")
	configPath := filepath.Join(dir, "config.yml")
	require.NoError(t, os.WriteFile(configPath, []byte(
		"program: "+program+"\ncache:\n  ttl: 1h\n  dir: "+cacheDir+"\n"), 0644))

	cache, err := completion.NewOutputCache(filepath.Join(cacheDir, completion.OutputCacheFile), time.Hour)
	require.NoError(t, err)
	cache.Set([]string{program, "--list-extensions", "--show-versions"}, "a@1\n")
	require.NoError(t, cache.Save())

	data, err := CollectAll(configPath)
	require.NoError(t, err)

	assert.True(t, data.ConfigExplicit)
	assert.Equal(t, configPath, data.ConfigPath)
	assert.True(t, data.ProgramFound)
	assert.Equal(t, program, data.ProgramPath)
	assert.True(t, data.CacheEnabled)
	require.NotNil(t, data.Cache)
	assert.Equal(t, []string{program + " --list-extensions --show-versions"}, data.Cache.Commands)
}

func TestCollectAll_MissingConfig(t *testing.T) {
	_, err := CollectAll(filepath.Join(t.TempDir(), "missing.yml"))
	assert.Error(t, err)
}
