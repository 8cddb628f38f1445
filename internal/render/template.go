package render

import (
	"fmt"
	"text/template"

	"github.com/Masterminds/sprig/v3"
)

// NewTemplate parses an output template. The sprig function set is available,
// e.g. `{{ .Name | upper }}{{ if .Description }} ({{ .Description | trunc 40 }}){{ end }}`.
func NewTemplate(text string) (*template.Template, error) {
	tmpl, err := template.New("output").Funcs(sprig.TxtFuncMap()).Option("missingkey=error").Parse(text)
	if err != nil {
		return nil, fmt.Errorf("invalid output template: %w", err)
	}
	return tmpl, nil
}
