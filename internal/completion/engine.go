package completion

import (
	"context"
	"strings"

	"github.com/NikitaCOEUR/termsuggest/internal/logger"
	"github.com/NikitaCOEUR/termsuggest/internal/spec"
	"github.com/NikitaCOEUR/termsuggest/internal/timing"
	"github.com/samber/lo"
)

// Engine answers completion requests for one spec
type Engine struct {
	spec   *spec.Spec
	table  *spec.OptionTable
	runner *Runner
	paths  *PathCompleter
	log    *logger.Logger
	// Timer collects stage durations when set
	Timer *timing.Timer
}

// NewEngine creates a completion engine for s. runner may be nil for a default one.
func NewEngine(s *spec.Spec, runner *Runner, log *logger.Logger) *Engine {
	if log == nil {
		log = logger.Discard()
	}
	if runner == nil {
		runner = NewRunner(RunnerOptions{Logger: log})
	}
	return &Engine{
		spec:   s,
		table:  s.Table(),
		runner: runner,
		paths:  runner.paths,
		log:    log,
	}
}

// Complete returns suggestions for words[cword]. words[0] is the program name.
// A cword past the end of words completes a new, empty word.
func (e *Engine) Complete(ctx context.Context, words []string, cword int) (*Result, error) {
	if len(words) == 0 {
		return &Result{Suggestions: []spec.Suggestion{}, Slot: Slot{Kind: SlotNone}}, nil
	}
	if cword < 1 {
		cword = len(words) - 1
		if cword < 1 {
			cword = 1
		}
	}

	current := ""
	if cword < len(words) {
		current = words[cword]
	}
	preceding := words[1:min(cword, len(words))]

	stop := e.Timer.Stage("resolve")
	slot := e.Resolve(preceding, current)
	stop()

	e.log.Debug().
		Str("current", current).
		Int("cword", cword).
		Str("slot", string(slot.Kind)).
		Msg("Resolved completion slot")

	stop = e.Timer.Stage("collect")
	suggestions := e.collect(ctx, slot)
	stop()

	stop = e.Timer.Stage("filter")
	filtered := e.Filter(suggestions, slot.Prefix)
	if slot.InsertPrefix != "" {
		filtered = lo.Map(filtered, func(s spec.Suggestion, _ int) spec.Suggestion {
			s.Name = slot.InsertPrefix + s.Name
			return s
		})
	}
	stop()

	return &Result{Suggestions: filtered, Slot: slot}, nil
}

// Resolve works out what the current word is expected to be, given the words
// typed before it (program name excluded).
func (e *Engine) Resolve(preceding []string, current string) Slot {
	var (
		pending    []spec.Arg
		owner      *spec.Option
		positional int
		dashdash   bool
	)

	for _, tok := range preceding {
		if dashdash {
			positional++
			continue
		}
		if tok == "--" {
			dashdash = true
			pending = nil
			continue
		}

		if len(pending) > 0 && canSkip(pending[0]) && looksLikeOption(tok) {
			pending = nil
		}
		if len(pending) > 0 {
			if !pending[0].IsVariadic {
				pending = pending[1:]
			}
			continue
		}

		if opt, ok := e.table.Lookup(tok); ok {
			pending = opt.Args
			owner = opt
			continue
		}
		if name, _, inline := strings.Cut(tok, "="); inline && strings.HasPrefix(tok, "--") {
			if opt, ok := e.table.Lookup(name); ok && opt.TakesArgs() {
				pending = opt.Args[1:]
				owner = opt
			}
			continue
		}
		if looksLikeOption(tok) {
			// unknown flag
			continue
		}
		positional++
	}

	if len(pending) > 0 && !(canSkip(pending[0]) && looksLikeOption(current)) {
		return Slot{Kind: SlotOptionArg, Option: owner, Arg: &pending[0], Prefix: current}
	}

	if !dashdash && looksLikeOption(current) {
		if name, value, inline := strings.Cut(current, "="); inline && strings.HasPrefix(current, "--") {
			if opt, ok := e.table.Lookup(name); ok && opt.TakesArgs() {
				return Slot{Kind: SlotOptionArg, Option: opt, Arg: &opt.Args[0], Prefix: value, InsertPrefix: name + "="}
			}
			return Slot{Kind: SlotNone, Prefix: current}
		}
		return Slot{Kind: SlotOptionName, Prefix: current}
	}

	if arg := e.positionalArg(positional); arg != nil {
		return Slot{Kind: SlotPositional, Arg: arg, Prefix: current}
	}
	return Slot{Kind: SlotNone, Prefix: current}
}

func (e *Engine) positionalArg(index int) *spec.Arg {
	args := e.spec.Args
	if len(args) == 0 {
		return nil
	}
	if index < len(args) {
		return &args[index]
	}
	if last := &args[len(args)-1]; last.IsVariadic {
		return last
	}
	return nil
}

// collect gathers suggestions for a slot: fixed values, then filesystem entries,
// then generator output, each in declaration order.
func (e *Engine) collect(ctx context.Context, slot Slot) []spec.Suggestion {
	switch slot.Kind {
	case SlotOptionName:
		return e.optionSuggestions()
	case SlotOptionArg, SlotPositional:
		return e.argSuggestions(ctx, slot.Arg, slot.Prefix)
	default:
		return nil
	}
}

func (e *Engine) optionSuggestions() []spec.Suggestion {
	return lo.FlatMap(e.table.Options(), func(opt *spec.Option, _ int) []spec.Suggestion {
		return lo.Map(opt.Names, func(name string, _ int) spec.Suggestion {
			return spec.Suggestion{Name: name, Type: spec.TypeOption, Description: opt.Description}
		})
	})
}

func (e *Engine) argSuggestions(ctx context.Context, arg *spec.Arg, current string) []spec.Suggestion {
	if arg == nil {
		return nil
	}

	suggestions := append([]spec.Suggestion(nil), arg.Suggestions...)

	if len(arg.Template) > 0 {
		suggestions = append(suggestions, e.paths.Complete(arg.Template, nil, current)...)
	}

	if len(arg.Generators) > 0 {
		stop := e.Timer.Stage("generators")
		suggestions = append(suggestions, e.runner.RunAll(ctx, arg.Generators, current)...)
		stop()
	}

	return suggestions
}

// Filter keeps suggestions whose name starts with prefix
func (e *Engine) Filter(suggestions []spec.Suggestion, prefix string) []spec.Suggestion {
	return lo.Filter(suggestions, func(s spec.Suggestion, _ int) bool {
		return strings.HasPrefix(s.Name, prefix)
	})
}

func looksLikeOption(tok string) bool {
	return strings.HasPrefix(tok, "-")
}

// canSkip reports whether a pending arg gives way to a following flag
func canSkip(arg spec.Arg) bool {
	return arg.IsOptional || arg.IsVariadic
}
