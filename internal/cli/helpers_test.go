package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// isolate points config and cache discovery at empty temp dirs
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
}

// fakeProgram writes a stand-in for the editor CLI that lists two extensions
// and records each invocation in the returned log file
func fakeProgram(t *testing.T) (program, calls string) {
	t.Helper()
	dir := t.TempDir()
	program = filepath.Join(dir, "code")
	calls = filepath.Join(dir, "calls")
	script := "#!/bin/sh\necho \"$@\" >> '" + calls + "'\nprintf 'ms-python.python@2024.1.0\\nvscodevim.vim@1.27.0\\n'\n"
	require.NoError(t, os.WriteFile(program, []byte(script), 0755))
	return program, calls
}

func common(program string) (CommonParams, *bytes.Buffer, *bytes.Buffer) {
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}
	return CommonParams{Program: program, Out: out, Err: errOut}, out, errOut
}
