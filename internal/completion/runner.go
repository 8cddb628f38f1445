package completion

import (
	"context"
	"sync"
	"time"

	"github.com/NikitaCOEUR/termsuggest/internal/derrors"
	"github.com/NikitaCOEUR/termsuggest/internal/logger"
	"github.com/NikitaCOEUR/termsuggest/internal/spec"
	"github.com/samber/lo"
)

// RunnerOptions configures a Runner
type RunnerOptions struct {
	Timeout   time.Duration
	MaxOutput int
	// Cache stores captured text between invocations; nil disables caching
	Cache *OutputCache
	// Paths serves template generators; nil uses the working directory
	Paths  *PathCompleter
	Logger *logger.Logger
}

// Runner executes generators. A generator that cannot run yields no suggestions;
// the failure is only visible in debug logs.
type Runner struct {
	timeout   time.Duration
	maxOutput int
	cache     *OutputCache
	paths     *PathCompleter
	log       *logger.Logger
}

// NewRunner creates a generator runner
func NewRunner(opts RunnerOptions) *Runner {
	if opts.Logger == nil {
		opts.Logger = logger.Discard()
	}
	if opts.Paths == nil {
		opts.Paths = NewPathCompleter("")
	}
	return &Runner{
		timeout:   opts.Timeout,
		maxOutput: opts.MaxOutput,
		cache:     opts.Cache,
		paths:     opts.Paths,
		log:       opts.Logger,
	}
}

// Capture runs the argument vector and returns its stdout as text
func (r *Runner) Capture(ctx context.Context, argv []string) (string, error) {
	if r.cache != nil {
		if out, ok := r.cache.Get(argv); ok {
			r.log.Debug().Strs("argv", argv).Msg("Captured output served from cache")
			return out, nil
		}
	}

	output, err := execWithTimeout(ctx, r.timeout, r.maxOutput, argv)
	if err != nil {
		return "", derrors.NewExecutionError(argv, "generator command failed", err)
	}

	if r.cache != nil {
		r.cache.Set(argv, string(output))
	}
	return string(output), nil
}

// Run executes one generator. current is the word being completed; it only
// matters for filesystem generators.
func (r *Runner) Run(ctx context.Context, g spec.Generator, current string) []spec.Suggestion {
	if !g.IsScript() {
		if len(g.Template) == 0 {
			return nil
		}
		return r.paths.Complete(g.Template, g.Extensions, current)
	}

	if g.PostProcess == nil {
		r.log.Debug().Strs("argv", g.Script).Msg("Generator has no post-process function")
		return nil
	}

	start := time.Now()
	out, err := r.Capture(ctx, g.Script)
	if err != nil {
		r.log.Debug().Err(err).Strs("argv", g.Script).Dur("elapsed", time.Since(start)).Msg("Generator failed, no suggestions")
		return nil
	}

	suggestions := g.PostProcess(out)
	r.log.Debug().
		Strs("argv", g.Script).
		Int("bytes", len(out)).
		Int("suggestions", len(suggestions)).
		Dur("elapsed", time.Since(start)).
		Msg("Generator finished")

	return suggestions
}

// RunAll executes generators concurrently and concatenates their results in
// declaration order.
func (r *Runner) RunAll(ctx context.Context, generators []spec.Generator, current string) []spec.Suggestion {
	switch len(generators) {
	case 0:
		return nil
	case 1:
		return r.Run(ctx, generators[0], current)
	}

	results := make([][]spec.Suggestion, len(generators))
	var wg sync.WaitGroup
	for i, g := range generators {
		wg.Add(1)
		go func(i int, g spec.Generator) {
			defer wg.Done()
			results[i] = r.Run(ctx, g, current)
		}(i, g)
	}
	wg.Wait()

	return lo.Flatten(results)
}

// SaveCache persists the captured-output cache, if any
func (r *Runner) SaveCache() error {
	if r.cache == nil {
		return nil
	}
	return r.cache.Save()
}
