package completion

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/NikitaCOEUR/termsuggest/internal/spec"
	"github.com/stretchr/testify/require"
)

// writeScript creates an executable shell script standing in for a real program
func writeScript(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0755))
	return path
}

// linesAsArgs is a post-process function that turns every line into an arg suggestion
func linesAsArgs(out string) []spec.Suggestion {
	var suggestions []spec.Suggestion
	for _, line := range strings.Split(out, "\n") {
		if line != "" {
			suggestions = append(suggestions, spec.Suggestion{Name: line, Type: spec.TypeArg})
		}
	}
	return suggestions
}

func names(suggestions []spec.Suggestion) []string {
	out := make([]string, 0, len(suggestions))
	for _, s := range suggestions {
		out = append(out, s.Name)
	}
	return out
}
