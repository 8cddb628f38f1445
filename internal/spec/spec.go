// Package spec describes a program's completion surface: its options, their
// arguments and where suggestions for each argument slot come from.
//
// Everything here is plain data. The only behaviour attached to a spec is the
// PostProcess function of a Generator, which turns captured command output into
// suggestions.
package spec

// SuggestionType tags what kind of token a suggestion inserts
type SuggestionType string

// Suggestion kinds understood by completion hosts
const (
	TypeOption     SuggestionType = "option"
	TypeArg        SuggestionType = "arg"
	TypeFile       SuggestionType = "file"
	TypeFolder     SuggestionType = "folder"
	TypeSubcommand SuggestionType = "subcommand"
)

// Suggestion is one selectable completion.
// Suggestions are built fresh for every request and never mutated afterwards.
type Suggestion struct {
	Name        string         `json:"name" yaml:"name"`
	Type        SuggestionType `json:"type,omitempty" yaml:"type,omitempty"`
	Description string         `json:"description,omitempty" yaml:"description,omitempty"`
	Icon        string         `json:"icon,omitempty" yaml:"icon,omitempty"`
}

// Template names a filesystem suggestion source
type Template string

// Filesystem templates
const (
	TemplateFilepaths Template = "filepaths"
	TemplateFolders   Template = "folders"
)

// PostProcessFunc maps captured stdout to suggestions. A nil result means "no data".
type PostProcessFunc func(out string) []Suggestion

// Generator is a dynamic suggestion source.
//
// A script generator runs Script as an argument vector (never through a shell)
// and hands stdout to PostProcess. A filesystem generator sets Template instead
// and may restrict files to Extensions.
type Generator struct {
	Script      []string        `json:"script,omitempty" yaml:"script,omitempty"`
	PostProcess PostProcessFunc `json:"-" yaml:"-"`
	Template    []Template      `json:"template,omitempty" yaml:"template,omitempty"`
	Extensions  []string        `json:"extensions,omitempty" yaml:"extensions,omitempty"`
}

// IsScript reports whether the generator runs an external command
func (g Generator) IsScript() bool {
	return len(g.Script) > 0
}

// Arg describes one argument slot
type Arg struct {
	Name        string       `json:"name,omitempty" yaml:"name,omitempty"`
	Description string       `json:"description,omitempty" yaml:"description,omitempty"`
	IsOptional  bool         `json:"isOptional,omitempty" yaml:"isOptional,omitempty"`
	IsVariadic  bool         `json:"isVariadic,omitempty" yaml:"isVariadic,omitempty"`
	Default     string       `json:"default,omitempty" yaml:"default,omitempty"`
	Suggestions []Suggestion `json:"suggestions,omitempty" yaml:"suggestions,omitempty"`
	Template    []Template   `json:"template,omitempty" yaml:"template,omitempty"`
	Generators  []Generator  `json:"generators,omitempty" yaml:"generators,omitempty"`
}

// Sources lists the suggestion source kinds an arg exposes, in the order a host consults them
func (a Arg) Sources() []string {
	var sources []string
	if len(a.Suggestions) > 0 {
		sources = append(sources, "enum")
	}
	if len(a.Template) > 0 {
		sources = append(sources, "path")
	}
	if len(a.Generators) > 0 {
		sources = append(sources, "generator")
	}
	return sources
}

// Option is a flag with one or more invocation tokens
type Option struct {
	Names       []string `json:"name" yaml:"name"`
	Description string   `json:"description" yaml:"description"`
	Args        []Arg    `json:"args,omitempty" yaml:"args,omitempty"`
}

// TakesArgs reports whether the option consumes values
func (o Option) TakesArgs() bool {
	return len(o.Args) > 0
}

// Spec is the completion spec of one program
type Spec struct {
	Name        string   `json:"name" yaml:"name"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
	Args        []Arg    `json:"args,omitempty" yaml:"args,omitempty"`
	Options     []Option `json:"options,omitempty" yaml:"options,omitempty"`
}

// Names builds an option token list, keeping call sites short
func Names(tokens ...string) []string {
	return tokens
}

// Strings turns literal values into arg suggestions
func Strings(values ...string) []Suggestion {
	suggestions := make([]Suggestion, 0, len(values))
	for _, v := range values {
		suggestions = append(suggestions, Suggestion{Name: v, Type: TypeArg})
	}
	return suggestions
}

// FilepathsOptions restricts a filesystem generator
type FilepathsOptions struct {
	// Extensions without the leading dot, e.g. "vsix"
	Extensions []string
}

// Filepaths returns a generator that suggests files, optionally filtered by extension
func Filepaths(opts FilepathsOptions) Generator {
	return Generator{
		Template:   []Template{TemplateFilepaths},
		Extensions: opts.Extensions,
	}
}
