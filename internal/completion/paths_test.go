package completion

import (
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/NikitaCOEUR/termsuggest/internal/spec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTree(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	for _, f := range []string{"main.go", "README.md", "ext.VSIX", "other.vsix", ".hidden", "src/app.go"} {
		path := filepath.Join(dir, f)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, nil, 0644))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, ".git"), 0755))
	require.NoError(t, os.Symlink(filepath.Join(dir, "src"), filepath.Join(dir, "link")))
	return dir
}

func sortedNames(s []spec.Suggestion) []string {
	n := names(s)
	sort.Strings(n)
	return n
}

func TestPathCompleter_Complete(t *testing.T) {
	dir := setupTree(t)
	p := NewPathCompleter(dir)

	files := []spec.Template{spec.TemplateFilepaths}
	folders := []spec.Template{spec.TemplateFolders}

	tests := []struct {
		name       string
		templates  []spec.Template
		extensions []string
		current    string
		want       []string
	}{
		{"files and folders", files, nil, "", []string{"README.md", "ext.VSIX", "link/", "main.go", "other.vsix", "src/"}},
		{"folders only", folders, nil, "", []string{"link/", "src/"}},
		{"extension filter keeps folders", files, []string{"vsix"}, "", []string{"ext.VSIX", "link/", "other.vsix", "src/"}},
		{"extension with dot", files, []string{".md"}, "", []string{"README.md", "link/", "src/"}},
		{"prefix", files, nil, "ma", []string{"main.go"}},
		{"hidden with dot prefix", files, nil, ".", []string{".git/", ".hidden"}},
		{"nested directory", files, nil, "src/", []string{"src/app.go"}},
		{"missing directory", files, nil, "nope/", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := p.Complete(tt.templates, tt.extensions, tt.current)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			assert.Equal(t, tt.want, sortedNames(got))
		})
	}
}

func TestPathCompleter_Types(t *testing.T) {
	dir := setupTree(t)
	got := NewPathCompleter(dir).Complete([]spec.Template{spec.TemplateFilepaths}, nil, "s")
	require.Len(t, got, 1)
	assert.Equal(t, spec.Suggestion{Name: "src/", Type: spec.TypeFolder}, got[0])

	got = NewPathCompleter(dir).Complete([]spec.Template{spec.TemplateFilepaths}, nil, "main")
	require.Len(t, got, 1)
	assert.Equal(t, spec.TypeFile, got[0].Type)
}

func TestPathCompleter_AbsolutePath(t *testing.T) {
	dir := setupTree(t)
	got := NewPathCompleter("/somewhere/else").Complete([]spec.Template{spec.TemplateFolders}, nil, dir+"/s")
	assert.Equal(t, []string{dir + "/src/"}, names(got))
}

func TestPathCompleter_EmptyDirectory(t *testing.T) {
	got := NewPathCompleter(t.TempDir()).Complete([]spec.Template{spec.TemplateFilepaths}, nil, "")
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestSplitPathWord(t *testing.T) {
	tests := []struct {
		word, dir, prefix string
	}{
		{"", "", ""},
		{"main", "", "main"},
		{"src/", "src/", ""},
		{"src/ma", "src/", "ma"},
		{"/abs/path/x", "/abs/path/", "x"},
	}
	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			dir, prefix := splitPathWord(tt.word)
			assert.Equal(t, tt.dir, dir)
			assert.Equal(t, tt.prefix, prefix)
		})
	}
}
