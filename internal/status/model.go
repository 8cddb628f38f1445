package status

import (
	"time"

	"github.com/NikitaCOEUR/termsuggest/internal/completion"
)

// Data contains all the information to display in status
type Data struct {
	// Header
	Version string

	// Program
	Program      string
	ProgramPath  string // resolved through PATH, "" when not found
	ProgramFound bool

	// Configuration
	ConfigPath     string // "" when running on defaults
	ConfigExplicit bool
	ConfigSearched []string
	LogLevel       string
	OutputFormat   string
	Timeout        time.Duration
	MaxOutput      int

	// Spec
	SpecName       string
	OptionCount    int
	TokenCount     int
	GeneratorSites []string // options whose values come from running the program

	// Cache
	CacheEnabled bool
	CacheTTL     time.Duration
	CachePath    string
	Cache        *completion.OutputCacheInfo
}
