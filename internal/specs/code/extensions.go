package code

import (
	"strings"

	"github.com/NikitaCOEUR/termsuggest/internal/spec"
)

// versionPlaceholder is what a listing line without "@" reports as its version.
// Kept literal so hosts render the same text the target program's users already know.
const versionPlaceholder = "undefined"

// NewExtensionsGenerator returns a generator listing the extensions installed for cliName.
// The script is an argument vector, so cliName is never interpreted by a shell.
func NewExtensionsGenerator(cliName string) spec.Generator {
	return spec.Generator{
		Script:      []string{cliName, "--list-extensions", "--show-versions"},
		PostProcess: ParseInstalledExtensions,
	}
}

// ParseInstalledExtensions turns `--list-extensions --show-versions` output into suggestions.
//
// Each non-blank line is either "publisher.name" or "publisher.name@version" and
// yields one option suggestion, in input order. A line without "@" keeps the whole
// line as its name and is described as "Version: undefined". Empty output yields an
// empty, non-nil slice.
func ParseInstalledExtensions(out string) []spec.Suggestion {
	suggestions := []spec.Suggestion{}

	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		// everything after the first "@" is the version, so "a@1@beta" keeps
		// "1@beta"; a plain split would keep only the second segment
		id, version, found := strings.Cut(line, "@")
		if !found {
			version = versionPlaceholder
		}

		suggestions = append(suggestions, spec.Suggestion{
			Name:        id,
			Type:        spec.TypeOption,
			Description: "Version: " + version,
		})
	}

	return suggestions
}
