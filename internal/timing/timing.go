// Package timing measures how long each stage of a completion request takes.
package timing

import (
	"fmt"
	"strings"
	"sync"
	"time"
)

// Timer records named stage durations. A nil *Timer is valid and records nothing,
// so callers never need to check whether timings were requested.
type Timer struct {
	mu     sync.Mutex
	start  time.Time
	stages map[string]time.Duration
	order  []string
}

// NewTimer creates a new timer
func NewTimer() *Timer {
	return &Timer{
		start:  time.Now(),
		stages: make(map[string]time.Duration),
	}
}

// Stage starts timing label and returns the function that stops it.
// Repeated stages accumulate.
func (t *Timer) Stage(label string) func() {
	if t == nil {
		return func() {}
	}
	began := time.Now()
	return func() {
		t.add(label, time.Since(began))
	}
}

func (t *Timer) add(label string, d time.Duration) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, seen := t.stages[label]; !seen {
		t.order = append(t.order, label)
	}
	t.stages[label] += d
}

// Elapsed returns total elapsed time since timer creation
func (t *Timer) Elapsed() time.Duration {
	if t == nil {
		return 0
	}
	return time.Since(t.start)
}

// Get returns the accumulated duration of a stage
func (t *Timer) Get(label string) (time.Duration, bool) {
	if t == nil {
		return 0, false
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	d, ok := t.stages[label]
	return d, ok
}

// Summary formats the total and every stage in first-seen order
func (t *Timer) Summary() string {
	if t == nil {
		return ""
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	var b strings.Builder
	fmt.Fprintf(&b, "Total: %.3fms", ms(time.Since(t.start)))

	if len(t.order) > 0 {
		b.WriteString(" (")
		for i, label := range t.order {
			if i > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%s: %.3fms", label, ms(t.stages[label]))
		}
		b.WriteString(")")
	}

	return b.String()
}

func ms(d time.Duration) float64 {
	return float64(d.Microseconds()) / 1000.0
}
