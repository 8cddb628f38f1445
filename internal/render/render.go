// Package render writes suggestions and specs for humans and for other programs.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/NikitaCOEUR/termsuggest/internal/spec"
	"github.com/samber/lo"
	"gopkg.in/yaml.v3"
)

// Output formats
const (
	FormatPlain    = "plain"
	FormatJSON     = "json"
	FormatYAML     = "yaml"
	FormatTemplate = "template"
	FormatText     = "text"
)

// Formats lists the suggestion output formats
var Formats = []string{FormatPlain, FormatJSON, FormatYAML, FormatTemplate}

// SpecFormats lists the formats a spec can be described in
var SpecFormats = []string{FormatText, FormatYAML, FormatJSON}

// IsFormat reports whether format is a known suggestion output format
func IsFormat(format string) bool {
	return lo.Contains(Formats, format)
}

// Printer writes suggestion lists in one format
type Printer struct {
	format string
	tmpl   *template.Template
}

// NewPrinter creates a printer. templateText is only used by the template format.
func NewPrinter(format, templateText string) (*Printer, error) {
	if format == "" {
		format = FormatPlain
	}
	if !IsFormat(format) {
		return nil, fmt.Errorf("unknown output format %q (expected one of %s)", format, strings.Join(Formats, ", "))
	}

	p := &Printer{format: format}
	if format == FormatTemplate {
		if strings.TrimSpace(templateText) == "" {
			return nil, fmt.Errorf("output format %q needs a template", format)
		}
		tmpl, err := NewTemplate(templateText)
		if err != nil {
			return nil, err
		}
		p.tmpl = tmpl
	}
	return p, nil
}

// Print writes suggestions to w
func (p *Printer) Print(w io.Writer, suggestions []spec.Suggestion) error {
	if suggestions == nil {
		suggestions = []spec.Suggestion{}
	}

	switch p.format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(suggestions)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(suggestions); err != nil {
			return err
		}
		return enc.Close()
	case FormatTemplate:
		return p.printTemplate(w, suggestions)
	default:
		return printPlain(w, suggestions)
	}
}

// printPlain writes "name<TAB>description", or the bare name, one per line
func printPlain(w io.Writer, suggestions []spec.Suggestion) error {
	for _, s := range suggestions {
		line := s.Name
		if s.Description != "" {
			line += "\t" + s.Description
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func (p *Printer) printTemplate(w io.Writer, suggestions []spec.Suggestion) error {
	var b strings.Builder
	for i, s := range suggestions {
		b.Reset()
		if err := p.tmpl.Execute(&b, s); err != nil {
			return fmt.Errorf("failed to render suggestion %d: %w", i, err)
		}
		out := b.String()
		if !strings.HasSuffix(out, "\n") {
			out += "\n"
		}
		if _, err := io.WriteString(w, out); err != nil {
			return err
		}
	}
	return nil
}
