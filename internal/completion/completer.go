// Package completion resolves a typed command line against a spec and collects
// suggestions for the word under the cursor: fixed enumerations, filesystem
// entries and the output of generator commands.
package completion

import (
	"github.com/NikitaCOEUR/termsuggest/internal/spec"
)

// SlotKind says what the word under the cursor is expected to be
type SlotKind string

// Slot kinds
const (
	SlotNone       SlotKind = "none"
	SlotOptionName SlotKind = "option"
	SlotOptionArg  SlotKind = "option-arg"
	SlotPositional SlotKind = "positional"
)

// Slot is the resolved position of the word being completed
type Slot struct {
	Kind   SlotKind
	Option *spec.Option // owning option for SlotOptionArg
	Arg    *spec.Arg    // nil for SlotOptionName and SlotNone
	// Prefix is the text the suggestions must start with
	Prefix string
	// InsertPrefix is prepended to every suggestion name, e.g. "--locale=" for inline values
	InsertPrefix string
}

// Result represents the result of a completion attempt
type Result struct {
	Suggestions []spec.Suggestion
	Slot        Slot
}

// Source describes which slot produced the suggestions, for logs and status output
func (r *Result) Source() string {
	switch r.Slot.Kind {
	case SlotOptionArg:
		name := ""
		if r.Slot.Option != nil && len(r.Slot.Option.Names) > 0 {
			name = r.Slot.Option.Names[len(r.Slot.Option.Names)-1]
		}
		return "arg of " + name
	case SlotPositional:
		return "positional"
	case SlotOptionName:
		return "options"
	default:
		return "none"
	}
}
