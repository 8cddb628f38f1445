package spec

import (
	"errors"
	"testing"

	"github.com/NikitaCOEUR/termsuggest/internal/derrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noopPostProcess(string) []Suggestion { return nil }

func TestStrings(t *testing.T) {
	got := Strings("on", "off")

	assert.Equal(t, []Suggestion{
		{Name: "on", Type: TypeArg},
		{Name: "off", Type: TypeArg},
	}, got)
	assert.Empty(t, Strings())
}

func TestFilepaths(t *testing.T) {
	g := Filepaths(FilepathsOptions{Extensions: []string{"vsix"}})

	assert.False(t, g.IsScript())
	assert.Equal(t, []Template{TemplateFilepaths}, g.Template)
	assert.Equal(t, []string{"vsix"}, g.Extensions)
}

func TestArg_Sources(t *testing.T) {
	tests := []struct {
		name string
		arg  Arg
		want []string
	}{
		{"none", Arg{Name: "port"}, nil},
		{"enum", Arg{Suggestions: Strings("a")}, []string{"enum"}},
		{"path", Arg{Template: []Template{TemplateFolders}}, []string{"path"}},
		{
			"all",
			Arg{
				Suggestions: Strings("a"),
				Template:    []Template{TemplateFilepaths},
				Generators:  []Generator{{Script: []string{"x"}, PostProcess: noopPostProcess}},
			},
			[]string{"enum", "path", "generator"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.arg.Sources())
		})
	}
}

func TestOptionTable_LookupAndOrder(t *testing.T) {
	common := []Option{
		{Names: Names("-h", "--help"), Description: "Print usage"},
		{Names: Names("--locale"), Description: "Locale", Args: []Arg{{Name: "locale"}}},
	}
	diagnostics := []Option{
		{Names: Names("-v", "--version"), Description: "Print version"},
	}

	table := NewOptionTable(common, diagnostics)

	opt, ok := table.Lookup("--version")
	require.True(t, ok)
	assert.Equal(t, "Print version", opt.Description)

	opt, ok = table.Lookup("-h")
	require.True(t, ok)
	assert.Equal(t, "Print usage", opt.Description)
	assert.False(t, opt.TakesArgs())

	_, ok = table.Lookup("--vers")
	assert.False(t, ok, "lookup is by exact token")

	assert.Equal(t, []string{"-h", "--help", "--locale", "-v", "--version"}, table.Tokens())
	assert.Equal(t, 5, table.Len())
	require.Len(t, table.Options(), 3)
	assert.Equal(t, "Locale", table.Options()[1].Description)
}

func TestOptionTable_FirstDeclarationWins(t *testing.T) {
	table := NewOptionTable(
		[]Option{{Names: Names("-x"), Description: "first"}},
		[]Option{{Names: Names("-x"), Description: "second"}},
	)

	opt, ok := table.Lookup("-x")
	require.True(t, ok)
	assert.Equal(t, "first", opt.Description)
	assert.Len(t, table.Options(), 2)
	assert.Equal(t, 1, table.Len())
}

func TestSpec_Validate(t *testing.T) {
	valid := &Spec{
		Name: "tool",
		Args: []Arg{{Template: []Template{TemplateFilepaths}, IsVariadic: true}},
		Options: []Option{
			{Names: Names("-a", "--all"), Description: "All"},
			{
				Names:       Names("--install"),
				Description: "Install",
				Args: []Arg{{
					Name: "id",
					Generators: []Generator{
						{Script: []string{"tool", "--list"}, PostProcess: noopPostProcess},
						Filepaths(FilepathsOptions{Extensions: []string{"pkg"}}),
					},
				}},
			},
		},
	}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name  string
		spec  *Spec
		field string
	}{
		{"empty name", &Spec{}, "name"},
		{
			"no tokens",
			&Spec{Name: "t", Options: []Option{{Description: "d"}}},
			"options[0].name",
		},
		{
			"empty token",
			&Spec{Name: "t", Options: []Option{{Names: Names(""), Description: "d"}}},
			"options[0].name",
		},
		{
			"missing description",
			&Spec{Name: "t", Options: []Option{{Names: Names("-x"), Description: "  "}}},
			"options[0].description",
		},
		{
			"duplicate token",
			&Spec{Name: "t", Options: []Option{
				{Names: Names("-x"), Description: "d"},
				{Names: Names("-y", "-x"), Description: "d"},
			}},
			"options[1].name",
		},
		{
			"script without post-process",
			&Spec{Name: "t", Options: []Option{{Names: Names("-x"), Description: "d", Args: []Arg{{
				Generators: []Generator{{Script: []string{"t"}}},
			}}}}},
			"options[0].args[0].generators[0]",
		},
		{
			"empty program",
			&Spec{Name: "t", Options: []Option{{Names: Names("-x"), Description: "d", Args: []Arg{{
				Generators: []Generator{{Script: []string{""}, PostProcess: noopPostProcess}},
			}}}}},
			"options[0].args[0].generators[0].script",
		},
		{
			"script and template",
			&Spec{Name: "t", Args: []Arg{{
				Generators: []Generator{{Script: []string{"t"}, PostProcess: noopPostProcess, Template: []Template{TemplateFolders}}},
			}}},
			"args[0].generators[0]",
		},
		{
			"empty generator",
			&Spec{Name: "t", Args: []Arg{{Generators: []Generator{{}}}}},
			"args[0].generators[0]",
		},
		{
			"empty suggestion",
			&Spec{Name: "t", Args: []Arg{{Suggestions: []Suggestion{{Name: ""}}}}},
			"args[0].suggestions[0]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.spec.Validate()
			require.Error(t, err)

			var verr *derrors.ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, tt.field, verr.Field)
			assert.Equal(t, "VALIDATION_ERROR", verr.Code())
		})
	}
}

func TestSpec_Table(t *testing.T) {
	s := &Spec{Name: "t", Options: []Option{{Names: Names("--a"), Description: "A"}}}
	_, ok := s.Table().Lookup("--a")
	assert.True(t, ok)
}
