package cli

import (
	"context"

	"github.com/NikitaCOEUR/termsuggest/internal/render"
	"github.com/NikitaCOEUR/termsuggest/internal/specs/code"
)

// ExtensionsParams contains parameters for the Extensions command
type ExtensionsParams struct {
	CommonParams
	Format string
}

// Extensions runs the installed-extensions generator once and prints its records
func Extensions(ctx context.Context, params ExtensionsParams) error {
	c, err := initializeComponents(params.CommonParams)
	if err != nil {
		return err
	}

	format := c.cfg.Output.Format
	if params.Format != "" {
		format = params.Format
	}
	printer, err := render.NewPrinter(format, c.cfg.Output.Template)
	if err != nil {
		return err
	}

	suggestions := c.runner.Run(ctx, code.NewExtensionsGenerator(c.cfg.Program), "")
	if suggestions == nil {
		c.log.Info().Str("program", c.cfg.Program).Msg("No extension data, run with --log-level debug for details")
	}
	c.saveCache()

	return printer.Print(params.stdout(), suggestions)
}
