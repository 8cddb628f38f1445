package completion

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/NikitaCOEUR/termsuggest/internal/spec"
	"github.com/samber/lo"
)

// PathCompleter lists filesystem entries for template arguments
type PathCompleter struct {
	// Dir is the directory relative words are resolved against; "" means the working directory
	Dir string
}

// NewPathCompleter creates a path completer rooted at dir
func NewPathCompleter(dir string) *PathCompleter {
	return &PathCompleter{Dir: dir}
}

// Complete lists entries matching current.
// Directories are always offered so the user can navigate. Files are offered only
// for the filepaths template and, when extensions is non-empty, only with one of
// those extensions. Hidden entries are skipped unless current's last segment
// starts with a dot. Errors reading the directory yield no suggestions.
func (p *PathCompleter) Complete(templates []spec.Template, extensions []string, current string) []spec.Suggestion {
	wantFiles := lo.Contains(templates, spec.TemplateFilepaths)

	typedDir, prefix := splitPathWord(current)

	searchDir := typedDir
	if searchDir == "" {
		searchDir = "."
	}
	if !filepath.IsAbs(searchDir) && p.Dir != "" {
		searchDir = filepath.Join(p.Dir, searchDir)
	}

	entries, err := os.ReadDir(searchDir)
	if err != nil {
		return nil
	}

	suggestions := []spec.Suggestion{}
	for _, entry := range entries {
		name := entry.Name()

		if !strings.HasPrefix(name, prefix) {
			continue
		}
		if strings.HasPrefix(name, ".") && !strings.HasPrefix(prefix, ".") {
			continue
		}

		if isDirEntry(searchDir, entry) {
			suggestions = append(suggestions, spec.Suggestion{
				Name: typedDir + name + "/",
				Type: spec.TypeFolder,
			})
			continue
		}

		if wantFiles && matchesExtension(name, extensions) {
			suggestions = append(suggestions, spec.Suggestion{
				Name: typedDir + name,
				Type: spec.TypeFile,
			})
		}
	}

	return suggestions
}

// splitPathWord splits "src/ma" into "src/" and "ma"
func splitPathWord(word string) (dir, prefix string) {
	i := strings.LastIndexAny(word, "/"+string(filepath.Separator))
	if i < 0 {
		return "", word
	}
	return word[:i+1], word[i+1:]
}

func isDirEntry(dir string, entry os.DirEntry) bool {
	if entry.IsDir() {
		return true
	}
	if entry.Type()&os.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(filepath.Join(dir, entry.Name()))
	return err == nil && info.IsDir()
}

// matchesExtension accepts extensions with or without the leading dot
func matchesExtension(name string, extensions []string) bool {
	if len(extensions) == 0 {
		return true
	}
	ext := strings.ToLower(filepath.Ext(name))
	return lo.ContainsBy(extensions, func(allowed string) bool {
		return ext == "."+strings.ToLower(strings.TrimPrefix(allowed, "."))
	})
}
