// Package main is the entry point for the termsuggest CLI application.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	tscli "github.com/NikitaCOEUR/termsuggest/internal/cli"
	"github.com/NikitaCOEUR/termsuggest/internal/render"
	"github.com/NikitaCOEUR/termsuggest/internal/trace"
	"github.com/NikitaCOEUR/termsuggest/pkg/version"
	"github.com/urfave/cli/v3"
)

func main() {
	os.Exit(run(context.Background(), os.Args, os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	defer trace.Init()()

	if err := newApp(stdout, stderr).Run(ctx, args); err != nil {
		_, _ = fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// common builds the parameters every command shares from global and local flags
func common(cmd *cli.Command, stdout, stderr io.Writer) tscli.CommonParams {
	return tscli.CommonParams{
		ConfigPath: cmd.String("config"),
		LogLevel:   cmd.String("log-level"),
		Program:    cmd.String("program"),
		Out:        stdout,
		Err:        stderr,
	}
}

func programFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "program",
		Aliases: []string{"p"},
		Usage:   "Name or path the editor CLI is invoked under (overrides config)",
		Sources: cli.EnvVars("TERMSUGGEST_PROGRAM"),
	}
}

func newApp(stdout, stderr io.Writer) *cli.Command {
	return &cli.Command{
		Name:                  "termsuggest",
		Usage:                 "Completion suggestions for the Visual Studio Code CLI",
		Version:               version.String(),
		EnableShellCompletion: true,
		Writer:                stdout,
		ErrWriter:             stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "Log level (debug, info, warn, error); defaults to log_level from config",
				Sources: cli.EnvVars("TERMSUGGEST_LOG_LEVEL"),
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Configuration file (default: $XDG_CONFIG_HOME/termsuggest/config.{yml,yaml,toml,json})",
				Sources: cli.EnvVars("TERMSUGGEST_CONFIG"),
			},
		},
		Commands: []*cli.Command{
			{
				Name:      "complete",
				Usage:     "Print suggestions for the word being completed",
				ArgsUsage: "[--] <program> [words...]",
				Flags: []cli.Flag{
					programFlag(),
					&cli.StringFlag{
						Name:  "line",
						Usage: "Whole typed line; the last word is completed",
					},
					&cli.IntFlag{
						Name:    "cword",
						Usage:   "Index of the word being completed (COMP_CWORD); last word when unset",
						Sources: cli.EnvVars("TERMSUGGEST_COMP_CWORD"),
					},
					&cli.StringFlag{
						Name:    "format",
						Aliases: []string{"f"},
						Usage:   "Output format: " + strings.Join(render.Formats, ", "),
					},
					&cli.BoolFlag{
						Name:  "timings",
						Usage: "Log per-stage timings at info level",
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return tscli.Complete(ctx, tscli.CompleteParams{
						CommonParams: common(cmd, stdout, stderr),
						Words:        cmd.Args().Slice(),
						CWord:        cmd.Int("cword"),
						Line:         cmd.String("line"),
						Format:       cmd.String("format"),
						Timings:      cmd.Bool("timings"),
					})
				},
			},
			{
				Name:  "extensions",
				Usage: "List installed extensions as suggestion records",
				Flags: []cli.Flag{
					programFlag(),
					&cli.StringFlag{
						Name:    "format",
						Aliases: []string{"f"},
						Usage:   "Output format: " + strings.Join(render.Formats, ", "),
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return tscli.Extensions(ctx, tscli.ExtensionsParams{
						CommonParams: common(cmd, stdout, stderr),
						Format:       cmd.String("format"),
					})
				},
			},
			{
				Name:  "describe",
				Usage: "Show the completion spec",
				Flags: []cli.Flag{
					programFlag(),
					&cli.StringFlag{
						Name:    "format",
						Aliases: []string{"f"},
						Value:   render.FormatText,
						Usage:   "Output format: " + strings.Join(render.SpecFormats, ", "),
					},
				},
				Action: func(_ context.Context, cmd *cli.Command) error {
					return tscli.Describe(tscli.DescribeParams{
						CommonParams: common(cmd, stdout, stderr),
						Format:       cmd.String("format"),
					})
				},
			},
			{
				Name:      "validate",
				Usage:     "Validate a termsuggest configuration file and the spec it produces",
				ArgsUsage: "[config-file]",
				Flags:     []cli.Flag{programFlag()},
				Action: func(_ context.Context, cmd *cli.Command) error {
					params := common(cmd, stdout, stderr)
					if cmd.Args().Len() > 0 {
						params.ConfigPath = cmd.Args().Get(0)
					}
					return tscli.Validate(tscli.ValidateParams{CommonParams: params})
				},
			},
			{
				Name:      "schema",
				Usage:     "Display or export the JSON Schema for termsuggest configuration files",
				ArgsUsage: "[output-file]",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Output file path (prints to stdout if not specified)",
					},
				},
				Action: func(_ context.Context, cmd *cli.Command) error {
					outputPath := cmd.String("output")
					if outputPath == "" && cmd.Args().Len() > 0 {
						outputPath = cmd.Args().Get(0)
					}
					return tscli.Schema(outputPath, stdout)
				},
			},
			{
				Name:  "hook",
				Usage: "Print shell code that routes completion for the program through termsuggest",
				Flags: []cli.Flag{
					programFlag(),
					&cli.StringFlag{
						Name:    "shell",
						Value:   "auto",
						Usage:   "Shell type: bash, zsh, fish, or auto",
						Sources: cli.EnvVars("TERMSUGGEST_SHELL"),
					},
				},
				Action: func(_ context.Context, cmd *cli.Command) error {
					return tscli.Hook(tscli.HookParams{
						CommonParams: common(cmd, stdout, stderr),
						Shell:        cmd.String("shell"),
					})
				},
			},
			{
				Name:  "status",
				Usage: "Show effective configuration, program and cache state",
				Action: func(_ context.Context, cmd *cli.Command) error {
					return tscli.Status(tscli.StatusParams{CommonParams: common(cmd, stdout, stderr)})
				},
			},
		},
	}
}
