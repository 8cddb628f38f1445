package spec

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// OptionTable indexes options by exact token while remembering declaration order.
// Declaration order is display order only; lookups never depend on position.
type OptionTable struct {
	byToken *orderedmap.OrderedMap[string, *Option]
	options []*Option
}

// NewOptionTable concatenates option groups into one table.
// When a token is declared twice the first declaration wins.
func NewOptionTable(groups ...[]Option) *OptionTable {
	t := &OptionTable{byToken: orderedmap.New[string, *Option]()}
	for _, group := range groups {
		for i := range group {
			opt := &group[i]
			t.options = append(t.options, opt)
			for _, name := range opt.Names {
				if _, exists := t.byToken.Get(name); !exists {
					t.byToken.Set(name, opt)
				}
			}
		}
	}
	return t
}

// Table builds the option table of a spec
func (s *Spec) Table() *OptionTable {
	return NewOptionTable(s.Options)
}

// Lookup finds the option declaring token
func (t *OptionTable) Lookup(token string) (*Option, bool) {
	return t.byToken.Get(token)
}

// Options returns options in display order
func (t *OptionTable) Options() []*Option {
	return t.options
}

// Tokens returns every token in display order
func (t *OptionTable) Tokens() []string {
	tokens := make([]string, 0, t.byToken.Len())
	for pair := t.byToken.Oldest(); pair != nil; pair = pair.Next() {
		tokens = append(tokens, pair.Key)
	}
	return tokens
}

// Len returns the number of distinct tokens
func (t *OptionTable) Len() int {
	return t.byToken.Len()
}
