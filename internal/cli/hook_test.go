package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHook(t *testing.T) {
	isolate(t)

	t.Run("bash for configured program", func(t *testing.T) {
		params, out, _ := common("")
		require.NoError(t, Hook(HookParams{CommonParams: params, Shell: "bash", Binary: "ts"}))
		assert.Contains(t, out.String(), "# Add this to your bash configuration:")
		assert.Contains(t, out.String(), "-F __termsuggest_complete code")
		assert.Contains(t, out.String(), "ts complete --format plain")
	})

	t.Run("program path is reduced to its name", func(t *testing.T) {
		params, out, _ := common("/opt/vscode/bin/code-insiders")
		require.NoError(t, Hook(HookParams{CommonParams: params, Shell: "zsh", Binary: "ts"}))
		assert.Contains(t, out.String(), "compdef _termsuggest_code_insiders code-insiders")
	})

	t.Run("auto detection", func(t *testing.T) {
		t.Setenv("SHELL", "/usr/bin/fish")
		params, out, _ := common("")
		require.NoError(t, Hook(HookParams{CommonParams: params, Shell: "auto", Binary: "ts"}))
		assert.Contains(t, out.String(), "complete -c code")
	})

	t.Run("unsupported shell", func(t *testing.T) {
		params, _, _ := common("")
		assert.Error(t, Hook(HookParams{CommonParams: params, Shell: "tcsh"}))
	})
}
