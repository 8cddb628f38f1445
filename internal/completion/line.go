package completion

import (
	"fmt"
	"strings"

	"github.com/google/shlex"
)

// SplitLine tokenizes a typed command line into words and the index of the word
// being completed. A trailing unescaped space starts a new empty word. An
// unterminated quote is closed so the word being typed still completes.
func SplitLine(line string) ([]string, int, error) {
	words, quoted, err := splitClosingQuotes(line)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to tokenize command line: %w", err)
	}

	// inside an open quote a trailing space belongs to the current word
	if len(words) == 0 || (!quoted && endsWithSeparator(line)) {
		words = append(words, "")
	}

	return words, len(words) - 1, nil
}

// splitClosingQuotes splits line, retrying with a closing quote appended.
// quoted reports whether a quote had to be closed.
func splitClosingQuotes(line string) (words []string, quoted bool, err error) {
	words, err = shlex.Split(line)
	if err == nil {
		return words, false, nil
	}
	for _, quote := range []string{`"`, `'`} {
		if retried, retryErr := shlex.Split(line + quote); retryErr == nil {
			return retried, true, nil
		}
	}
	return nil, false, err
}

func endsWithSeparator(line string) bool {
	if !strings.HasSuffix(line, " ") && !strings.HasSuffix(line, "\t") {
		return false
	}
	trimmed := line[:len(line)-1]
	// count trailing backslashes: an odd count escapes the separator
	n := len(trimmed) - len(strings.TrimRight(trimmed, `\`))
	return n%2 == 0
}
