package shell

import _ "embed"

// Embedded shell completion templates.
// Each is a fmt format: %[1]s is the termsuggest binary, %[2]s the program name
// and %[3]s a function-safe form of the program name.

//go:embed templates/completion/bash.tmpl
var bashTemplate string

//go:embed templates/completion/zsh.tmpl
var zshTemplate string

//go:embed templates/completion/fish.tmpl
var fishTemplate string
