package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/NikitaCOEUR/termsuggest/internal/spec"
	"github.com/charmbracelet/lipgloss"
	"github.com/samber/lo"
	"gopkg.in/yaml.v3"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("12"))

	optionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("14"))

	argStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11"))

	subtleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	descStyle = lipgloss.NewStyle().
			PaddingLeft(6).
			Width(88)
)

// Spec writes s in format (text, yaml or json). Options keep their declaration order.
func Spec(w io.Writer, s *spec.Spec, format string) error {
	switch format {
	case "", FormatText:
		_, err := io.WriteString(w, SpecText(s))
		return err
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(s); err != nil {
			return err
		}
		return enc.Close()
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(s)
	default:
		return fmt.Errorf("unknown spec format %q (expected one of %s)", format, strings.Join(SpecFormats, ", "))
	}
}

// SpecText renders s as a styled option listing
func SpecText(s *spec.Spec) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(s.Name))
	if s.Description != "" {
		b.WriteString(" " + subtleStyle.Render("- "+s.Description))
	}
	b.WriteString("\n")

	for _, arg := range s.Args {
		b.WriteString("   " + argStyle.Render(argLabel(arg)) + sourcesLabel(arg) + "\n")
	}

	table := s.Table()
	b.WriteString("\n" + titleStyle.Render(fmt.Sprintf("Options (%d):", len(table.Options()))) + "\n")

	for _, opt := range table.Options() {
		line := "   " + optionStyle.Render(strings.Join(opt.Names, ", "))
		for _, arg := range opt.Args {
			line += " " + argStyle.Render(argLabel(arg))
		}
		b.WriteString(line + "\n")

		if opt.Description != "" {
			b.WriteString(descStyle.Render(opt.Description) + "\n")
		}
		for _, arg := range opt.Args {
			if detail := argDetail(arg); detail != "" {
				b.WriteString(subtleStyle.Render("      "+detail) + "\n")
			}
		}
	}

	return b.String()
}

func argLabel(arg spec.Arg) string {
	name := arg.Name
	if name == "" {
		name = strings.Join(lo.Map(arg.Template, func(t spec.Template, _ int) string { return string(t) }), "|")
	}
	if arg.IsVariadic {
		name += "..."
	}
	if arg.IsOptional {
		return "[" + name + "]"
	}
	return "<" + name + ">"
}

func sourcesLabel(arg spec.Arg) string {
	sources := arg.Sources()
	if len(sources) == 0 {
		return ""
	}
	return " " + subtleStyle.Render("("+strings.Join(sources, ", ")+")")
}

// argDetail summarises where an arg's values come from
func argDetail(arg spec.Arg) string {
	var parts []string
	if len(arg.Suggestions) > 0 {
		values := lo.Map(arg.Suggestions, func(s spec.Suggestion, _ int) string { return s.Name })
		parts = append(parts, "values: "+strings.Join(values, ", "))
	}
	if arg.Default != "" {
		parts = append(parts, "default: "+arg.Default)
	}
	for _, g := range arg.Generators {
		if g.IsScript() {
			parts = append(parts, "runs: "+strings.Join(g.Script, " "))
			continue
		}
		label := "paths"
		if len(g.Extensions) > 0 {
			label += " (" + strings.Join(g.Extensions, ", ") + ")"
		}
		parts = append(parts, label)
	}
	return strings.Join(parts, "; ")
}
