package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/NikitaCOEUR/termsuggest/internal/config"
	"github.com/NikitaCOEUR/termsuggest/internal/shell"
)

// HookParams contains parameters for the Hook command
type HookParams struct {
	CommonParams
	Shell  string // bash, zsh, fish or auto
	Binary string // how the shell should invoke termsuggest, "" for this executable
}

// Hook prints shell code that routes completion for the program through termsuggest
func Hook(params HookParams) error {
	gen, err := shell.NewCompletionGenerator(shell.DetectShell(params.Shell))
	if err != nil {
		return err
	}

	program := params.Program
	if program == "" {
		cfg, _, err := config.Resolve(params.ConfigPath)
		if err != nil {
			return err
		}
		program = cfg.Program
	}

	binary := params.Binary
	if binary == "" {
		binary = "termsuggest"
		if exe, err := os.Executable(); err == nil {
			binary = exe
		}
	}

	out := params.stdout()
	_, _ = fmt.Fprintf(out, "# Add this to your %s configuration:\n", gen.Name())
	_, err = fmt.Fprintln(out, gen.GenerateCompletion(binary, filepath.Base(program)))
	return err
}
