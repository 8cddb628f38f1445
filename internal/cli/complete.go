package cli

import (
	"context"

	"github.com/NikitaCOEUR/termsuggest/internal/completion"
	"github.com/NikitaCOEUR/termsuggest/internal/render"
	"github.com/NikitaCOEUR/termsuggest/internal/timing"
	"github.com/NikitaCOEUR/termsuggest/internal/trace"
)

// CompleteParams contains parameters for the Complete command
type CompleteParams struct {
	CommonParams
	Words   []string // command line words, the program name first (COMP_WORDS)
	CWord   int      // index of the word being completed (COMP_CWORD), <= 0 for the last word
	Line    string   // whole typed line, used instead of Words when set
	Format  string   // overrides output.format
	Timings bool
}

// Complete prints suggestions for the word under the cursor.
// Generator failures never fail the command; they only reduce the suggestions.
func Complete(ctx context.Context, params CompleteParams) error {
	defer trace.Region(ctx, "cli.Complete")()

	c, err := initializeComponents(params.CommonParams)
	if err != nil {
		return err
	}

	words, cword := params.Words, params.CWord
	if params.Line != "" {
		words, cword, err = completion.SplitLine(params.Line)
		if err != nil {
			return err
		}
	}
	if len(words) == 0 {
		return nil
	}

	c.log.Debug().
		Strs("words", words).
		Int("cword", cword).
		Msg("Received completion request")

	format := c.cfg.Output.Format
	if params.Format != "" {
		format = params.Format
	}
	printer, err := render.NewPrinter(format, c.cfg.Output.Template)
	if err != nil {
		return err
	}

	engine := completion.NewEngine(c.spec, c.runner, c.log)
	if params.Timings {
		engine.Timer = timing.NewTimer()
	}

	var result *completion.Result
	trace.WithRegion(ctx, "engine.Complete", func() {
		result, err = engine.Complete(ctx, words, cword)
	})
	if err != nil {
		c.log.Debug().Err(err).Msg("Completion failed")
		return nil
	}
	c.saveCache()

	c.log.Debug().
		Int("suggestions", len(result.Suggestions)).
		Str("source", result.Source()).
		Msg("Got completions")

	if params.Timings {
		c.log.Info().Str("timings", engine.Timer.Summary()).Msg("Completion timings")
	}

	return printer.Print(params.stdout(), result.Suggestions)
}
