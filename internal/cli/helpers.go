// Package cli implements the termsuggest commands. Each command takes a Params
// struct built by the urfave/cli actions in cmd/termsuggest.
package cli

import (
	"io"
	"os"
	"path/filepath"

	"github.com/NikitaCOEUR/termsuggest/internal/completion"
	"github.com/NikitaCOEUR/termsuggest/internal/config"
	"github.com/NikitaCOEUR/termsuggest/internal/logger"
	"github.com/NikitaCOEUR/termsuggest/internal/spec"
	"github.com/NikitaCOEUR/termsuggest/internal/specs/code"
)

// CommonParams are shared by every command that loads the configuration
type CommonParams struct {
	ConfigPath string // --config, "" to discover
	LogLevel   string // --log-level, "" to use the configured level
	Program    string // --program, "" to use the configured program
	Out        io.Writer
	Err        io.Writer
}

func (p CommonParams) stdout() io.Writer {
	if p.Out == nil {
		return os.Stdout
	}
	return p.Out
}

func (p CommonParams) stderr() io.Writer {
	if p.Err == nil {
		return os.Stderr
	}
	return p.Err
}

// components holds initialized termsuggest components
type components struct {
	cfg        *config.Config
	configPath string
	log        *logger.Logger
	runner     *completion.Runner
	spec       *spec.Spec
}

// initializeComponents loads configuration and wires the logger, cache and runner
func initializeComponents(params CommonParams) (*components, error) {
	cfg, path, err := config.Resolve(params.ConfigPath)
	if err != nil {
		return nil, err
	}

	if params.Program != "" {
		cfg.Program = params.Program
	}

	level := cfg.LogLevel
	if params.LogLevel != "" {
		level = params.LogLevel
	}
	log := logger.NewWithFormat(level, cfg.LogFormat, params.stderr())

	log.Debug().
		Str("config", path).
		Str("program", cfg.Program).
		Msg("Configuration loaded")

	return &components{
		cfg:        cfg,
		configPath: path,
		log:        log,
		runner: completion.NewRunner(completion.RunnerOptions{
			Timeout:   cfg.Generator.Timeout,
			MaxOutput: cfg.Generator.MaxOutput,
			Cache:     openCache(cfg, log),
			Logger:    log,
		}),
		spec: code.NewSpec(cfg.Program),
	}, nil
}

// openCache returns nil when caching is disabled or the cache cannot be opened.
// A broken cache file never blocks completion.
func openCache(cfg *config.Config, log *logger.Logger) *completion.OutputCache {
	if cfg.Cache.TTL <= 0 {
		return nil
	}

	dir, err := cfg.CacheDir()
	if err != nil {
		log.Warn().Err(err).Msg("Cache directory unavailable, caching disabled")
		return nil
	}

	cache, err := completion.NewOutputCache(filepath.Join(dir, completion.OutputCacheFile), cfg.Cache.TTL)
	if err != nil {
		log.Warn().Err(err).Msg("Failed to open output cache, caching disabled")
		return nil
	}
	return cache
}

// saveCache persists captured output; failures are only logged
func (c *components) saveCache() {
	if err := c.runner.SaveCache(); err != nil {
		c.log.Warn().Err(err).Msg("Failed to save output cache")
	}
}
