// Package status provides status information collection and display for termsuggest.
package status

import (
	"fmt"
	"os/exec"
	"path/filepath"

	"github.com/NikitaCOEUR/termsuggest/internal/completion"
	"github.com/NikitaCOEUR/termsuggest/internal/config"
	"github.com/NikitaCOEUR/termsuggest/internal/spec"
	"github.com/NikitaCOEUR/termsuggest/internal/specs/code"
	"github.com/NikitaCOEUR/termsuggest/pkg/version"
	"github.com/samber/lo"
)

// CollectAll gathers status information for the configuration at configPath
// ("" for the discovered one)
func CollectAll(configPath string) (*Data, error) {
	info, err := config.GetInfo(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	cfg := info.Config

	data := &Data{
		Version:        version.Version,
		Program:        cfg.Program,
		ConfigPath:     info.Path,
		ConfigExplicit: info.Explicit,
		ConfigSearched: info.Searched,
		LogLevel:       cfg.LogLevel,
		OutputFormat:   cfg.Output.Format,
		Timeout:        cfg.Generator.Timeout,
		MaxOutput:      cfg.Generator.MaxOutput,
		CacheEnabled:   cfg.Cache.TTL > 0,
		CacheTTL:       cfg.Cache.TTL,
	}

	collectProgramInfo(data)
	collectSpecInfo(data, code.NewSpec(cfg.Program))

	cacheDir, err := cfg.CacheDir()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve cache directory: %w", err)
	}
	data.CachePath = filepath.Join(cacheDir, completion.OutputCacheFile)

	cacheInfo, err := completion.GetOutputCacheInfo(data.CachePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read cache info: %w", err)
	}
	data.Cache = cacheInfo

	return data, nil
}

// collectProgramInfo resolves the target program the way exec does
func collectProgramInfo(data *Data) {
	path, err := exec.LookPath(data.Program)
	if err != nil {
		return
	}
	data.ProgramPath = path
	data.ProgramFound = true
}

func collectSpecInfo(data *Data, s *spec.Spec) {
	table := s.Table()
	data.SpecName = s.Name
	data.OptionCount = len(table.Options())
	data.TokenCount = len(table.Tokens())

	data.GeneratorSites = lo.FilterMap(table.Options(), func(opt *spec.Option, _ int) (string, bool) {
		hasScript := lo.SomeBy(opt.Args, func(arg spec.Arg) bool {
			return lo.SomeBy(arg.Generators, spec.Generator.IsScript)
		})
		return opt.Names[len(opt.Names)-1], hasScript
	})
}
