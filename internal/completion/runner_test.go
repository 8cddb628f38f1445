package completion

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/NikitaCOEUR/termsuggest/internal/derrors"
	"github.com/NikitaCOEUR/termsuggest/internal/logger"
	"github.com/NikitaCOEUR/termsuggest/internal/spec"
	"github.com/NikitaCOEUR/termsuggest/internal/specs/code"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunner_Run_ExtensionsGenerator(t *testing.T) {
	dir := t.TempDir()
	program := writeScript(t, dir, "code", `printf 'ms-python.python@2024.1.0\n\nesbenp.prettier-vscode@10.1.0\n'`)

	runner := NewRunner(RunnerOptions{})
	result := runner.Run(context.Background(), code.NewExtensionsGenerator(program), "")

	assert.Equal(t, []spec.Suggestion{
		{Name: "ms-python.python", Type: spec.TypeOption, Description: "Version: 2024.1.0"},
		{Name: "esbenp.prettier-vscode", Type: spec.TypeOption, Description: "Version: 10.1.0"},
	}, result)
}

func TestRunner_Run_PassesArgvVerbatim(t *testing.T) {
	dir := t.TempDir()
	program := writeScript(t, dir, "echo-args", `for a in "$@"; do echo "$a"; done`)

	runner := NewRunner(RunnerOptions{})
	g := spec.Generator{
		Script:      []string{program, "--list-extensions", "$(touch pwned)", "a b"},
		PostProcess: linesAsArgs,
	}

	result := runner.Run(context.Background(), g, "")
	assert.Equal(t, []string{"--list-extensions", "$(touch pwned)", "a b"}, names(result))

	_, err := os.Stat(filepath.Join(dir, "pwned"))
	assert.True(t, os.IsNotExist(err))
}

func TestRunner_Run_Failures(t *testing.T) {
	dir := t.TempDir()
	failing := writeScript(t, dir, "failing", `echo partial; exit 3`)
	slow := writeScript(t, dir, "slow", `sleep 5; echo late`)

	tests := []struct {
		name string
		gen  spec.Generator
	}{
		{"missing program", code.NewExtensionsGenerator(filepath.Join(dir, "does-not-exist"))},
		{"non-zero exit", spec.Generator{Script: []string{failing}, PostProcess: linesAsArgs}},
		{"timeout", spec.Generator{Script: []string{slow}, PostProcess: linesAsArgs}},
		{"no post-process", spec.Generator{Script: []string{"echo", "x"}}},
		{"empty generator", spec.Generator{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			runner := NewRunner(RunnerOptions{
				Timeout: 200 * time.Millisecond,
				Logger:  logger.New("debug", buf),
			})

			start := time.Now()
			assert.Nil(t, runner.Run(context.Background(), tt.gen, ""))
			assert.Less(t, time.Since(start), 3*time.Second)
		})
	}
}

func TestRunner_Run_FailureIsLoggedAtDebug(t *testing.T) {
	buf := &bytes.Buffer{}
	runner := NewRunner(RunnerOptions{Logger: logger.New("debug", buf)})

	runner.Run(context.Background(), spec.Generator{Script: []string{"false"}, PostProcess: linesAsArgs}, "")
	assert.Contains(t, buf.String(), "Generator failed")

	buf.Reset()
	quiet := NewRunner(RunnerOptions{Logger: logger.New("info", buf)})
	quiet.Run(context.Background(), spec.Generator{Script: []string{"false"}, PostProcess: linesAsArgs}, "")
	assert.Empty(t, buf.String())
}

func TestRunner_Capture_ExecutionError(t *testing.T) {
	runner := NewRunner(RunnerOptions{})

	_, err := runner.Capture(context.Background(), []string{"false", "--flag"})
	require.Error(t, err)
	assert.Equal(t, "EXEC_ERROR", derrors.CodeOf(err))

	var execErr *derrors.ExecutionError
	require.ErrorAs(t, err, &execErr)
	assert.Equal(t, []string{"false", "--flag"}, execErr.Argv)
}

func TestRunner_Cache(t *testing.T) {
	dir := t.TempDir()
	counter := filepath.Join(dir, "calls")
	program := writeScript(t, dir, "code", `echo call >> '`+counter+`'; echo 'a.b@1.0.0'`)

	cache, err := NewOutputCache(filepath.Join(dir, "cache", OutputCacheFile), time.Hour)
	require.NoError(t, err)

	runner := NewRunner(RunnerOptions{Cache: cache})
	gen := code.NewExtensionsGenerator(program)

	first := runner.Run(context.Background(), gen, "")
	second := runner.Run(context.Background(), gen, "")

	assert.Equal(t, first, second)
	require.Len(t, second, 1)
	assert.Equal(t, "Version: 1.0.0", second[0].Description)

	// records are rebuilt from text, not shared between calls
	second[0].Name = "mutated"
	third := runner.Run(context.Background(), gen, "")
	assert.Equal(t, "a.b", third[0].Name)

	calls, err := os.ReadFile(counter)
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(string(calls), "call"))

	require.NoError(t, runner.SaveCache())
	_, err = os.Stat(filepath.Join(dir, "cache", OutputCacheFile))
	assert.NoError(t, err)
}

func TestRunner_SaveCache_Disabled(t *testing.T) {
	assert.NoError(t, NewRunner(RunnerOptions{}).SaveCache())
}

func TestRunner_RunAll_KeepsDeclarationOrder(t *testing.T) {
	dir := t.TempDir()
	slow := writeScript(t, dir, "slow", `sleep 0.3; echo slow`)
	fast := writeScript(t, dir, "fast", `echo fast`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "pkg.vsix"), nil, 0644))

	runner := NewRunner(RunnerOptions{Paths: NewPathCompleter(dir)})
	result := runner.RunAll(context.Background(), []spec.Generator{
		{Script: []string{slow}, PostProcess: linesAsArgs},
		{Script: []string{"false"}, PostProcess: linesAsArgs},
		{Script: []string{fast}, PostProcess: linesAsArgs},
		spec.Filepaths(spec.FilepathsOptions{Extensions: []string{"vsix"}}),
	}, "")

	assert.Equal(t, []string{"slow", "fast", "pkg.vsix"}, names(result))
}

func TestRunner_RunAll_Empty(t *testing.T) {
	assert.Nil(t, NewRunner(RunnerOptions{}).RunAll(context.Background(), nil, ""))
}
