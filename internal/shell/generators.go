// Package shell generates the shell glue that routes a shell's completion
// requests for a program through termsuggest.
package shell

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

const (
	shellBash = "bash"
	shellZsh  = "zsh"
	shellFish = "fish"
)

// Shells lists the supported shells
var Shells = []string{shellBash, shellZsh, shellFish}

// CodeGenerator generates shell-specific completion registration code
type CodeGenerator interface {
	// GenerateCompletion returns code registering completion for program
	GenerateCompletion(binary, program string) string
	// Name returns the shell name (bash, zsh, etc.)
	Name() string
}

// BashCodeGenerator generates bash-specific shell completion code
type BashCodeGenerator struct{}

// Name returns the shell name for bash
func (b *BashCodeGenerator) Name() string {
	return shellBash
}

// GenerateCompletion generates a bash completion function for program
func (b *BashCodeGenerator) GenerateCompletion(binary, program string) string {
	return fmt.Sprintf(bashTemplate, binary, program)
}

// ZshCodeGenerator generates zsh-specific shell completion code
type ZshCodeGenerator struct{}

// Name returns the shell name for zsh
func (z *ZshCodeGenerator) Name() string {
	return shellZsh
}

// GenerateCompletion generates a zsh completion function for program
func (z *ZshCodeGenerator) GenerateCompletion(binary, program string) string {
	return fmt.Sprintf(zshTemplate, binary, program, functionName(program))
}

// FishCodeGenerator generates fish completion code
type FishCodeGenerator struct{}

// Name returns the shell name for fish
func (f *FishCodeGenerator) Name() string {
	return shellFish
}

// GenerateCompletion generates a fish completion for program
func (f *FishCodeGenerator) GenerateCompletion(binary, program string) string {
	return fmt.Sprintf(fishTemplate, binary, program)
}

// NewCompletionGenerator creates the code generator for shell
func NewCompletionGenerator(shell string) (CodeGenerator, error) {
	switch shell {
	case shellBash:
		return &BashCodeGenerator{}, nil
	case shellZsh:
		return &ZshCodeGenerator{}, nil
	case shellFish:
		return &FishCodeGenerator{}, nil
	default:
		return nil, fmt.Errorf("unsupported shell %q (expected one of %s)", shell, strings.Join(Shells, ", "))
	}
}

var unsafeChars = regexp.MustCompile(`[^A-Za-z0-9_]`)

// functionName turns a program name such as "code-insiders" into "code_insiders"
func functionName(program string) string {
	return unsafeChars.ReplaceAllString(filepath.Base(program), "_")
}

// DetectShell resolves "auto" from $SHELL, defaulting to bash
func DetectShell(flag string) string {
	if flag != "" && flag != "auto" {
		return flag
	}
	switch filepath.Base(os.Getenv("SHELL")) {
	case shellZsh:
		return shellZsh
	case shellFish:
		return shellFish
	default:
		return shellBash
	}
}
