// Package config handles loading and parsing of termsuggest configuration files.
package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/NikitaCOEUR/termsuggest/internal/derrors"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
	"github.com/tidwall/jsonc"
)

// AppName names the config and cache directories
const AppName = "termsuggest"

// SupportedConfigNames contains supported configuration file names (in order of preference)
var SupportedConfigNames = []string{
	"config.yml",
	"config.yaml",
	"config.toml",
	"config.json",
}

//go:embed defaults.yml
var defaultsYAML []byte

// GeneratorConfig bounds generator commands
type GeneratorConfig struct {
	Timeout   time.Duration `koanf:"timeout"`
	MaxOutput int           `koanf:"max_output"`
}

// CacheConfig controls the captured-output cache
type CacheConfig struct {
	// TTL of cached command output; 0 disables the cache
	TTL time.Duration `koanf:"ttl"`
	// Dir overrides the cache directory
	Dir string `koanf:"dir"`
}

// OutputConfig selects how suggestions are printed
type OutputConfig struct {
	Format   string `koanf:"format"`
	Template string `koanf:"template"`
}

// Config represents a termsuggest configuration
type Config struct {
	Program   string          `koanf:"program"`
	LogLevel  string          `koanf:"log_level"`
	LogFormat string          `koanf:"log_format"`
	Generator GeneratorConfig `koanf:"generator"`
	Cache     CacheConfig     `koanf:"cache"`
	Output    OutputConfig    `koanf:"output"`
}

// Loader handles loading and parsing configuration files
type Loader struct {
	k *koanf.Koanf
}

// New creates a new config loader
func New() *Loader {
	return &Loader{k: koanf.New(".")}
}

// Defaults returns the built-in configuration
func Defaults() *Config {
	cfg, err := New().Load("")
	if err != nil {
		// defaults.yml is embedded at build time
		panic(fmt.Sprintf("invalid embedded defaults: %v", err))
	}
	return cfg
}

// Load reads the embedded defaults and overlays the file at path.
// An empty path loads the defaults only.
func (l *Loader) Load(path string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(rawbytes.Provider(defaultsYAML), yaml.Parser()); err != nil {
		return nil, derrors.NewConfigurationError("defaults", "failed to load defaults", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, derrors.NewConfigurationError(path, "failed to read config", err)
		}

		parser, data, err := parserFor(path, data)
		if err != nil {
			return nil, derrors.NewConfigurationError(path, "unsupported config", err)
		}

		if err := k.Load(rawbytes.Provider(data), parser); err != nil {
			return nil, derrors.NewConfigurationError(path, "failed to load config", err)
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, derrors.NewConfigurationError(path, "failed to unmarshal config", err)
	}

	l.k = k
	return cfg, nil
}

// Keys returns the flattened keys of the last loaded configuration
func (l *Loader) Keys() []string {
	return l.k.Keys()
}

// parserFor picks the koanf parser from the file extension. JSON files may
// carry comments and trailing commas, which are stripped first.
func parserFor(path string, data []byte) (koanf.Parser, []byte, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yml", ".yaml":
		return yaml.Parser(), data, nil
	case ".toml":
		return toml.Parser(), data, nil
	case ".json":
		return json.Parser(), jsonc.ToJSON(data), nil
	default:
		return nil, nil, fmt.Errorf("unsupported config format: %s", ext)
	}
}

// decodeDocument parses raw file content into a generic map
func decodeDocument(path string, data []byte) (map[string]interface{}, error) {
	parser, data, err := parserFor(path, data)
	if err != nil {
		return nil, err
	}
	return parser.Unmarshal(data)
}

// ConfigHome returns $XDG_CONFIG_HOME/termsuggest
func ConfigHome() (string, error) {
	return xdgDir("XDG_CONFIG_HOME", ".config")
}

// CacheHome returns $XDG_CACHE_HOME/termsuggest
func CacheHome() (string, error) {
	return xdgDir("XDG_CACHE_HOME", ".cache")
}

func xdgDir(env, fallback string) (string, error) {
	base := os.Getenv(env)
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		base = filepath.Join(home, fallback)
	}
	return filepath.Join(base, AppName), nil
}

// FindConfigFile returns the first supported config file in the config home,
// or "" when there is none
func FindConfigFile() (string, error) {
	dir, err := ConfigHome()
	if err != nil {
		return "", err
	}
	for _, name := range SupportedConfigNames {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	return "", nil
}

// Resolve loads explicit when set, otherwise the discovered config file,
// otherwise the defaults. It returns the file actually used ("" for defaults).
func Resolve(explicit string) (*Config, string, error) {
	return resolveWith(New(), explicit)
}

func resolveWith(l *Loader, explicit string) (*Config, string, error) {
	path := explicit
	if path == "" {
		found, err := FindConfigFile()
		if err != nil {
			return nil, "", err
		}
		path = found
	} else if _, err := os.Stat(path); err != nil {
		return nil, path, derrors.NewNotFoundError(path, "config file not found: "+path)
	}

	cfg, err := l.Load(path)
	if err != nil {
		return nil, path, err
	}
	return cfg, path, nil
}

// CacheDir returns the directory for cache files, honouring cache.dir
func (c *Config) CacheDir() (string, error) {
	if c.Cache.Dir != "" {
		return c.Cache.Dir, nil
	}
	return CacheHome()
}
