package lint

import (
	"errors"

	"github.com/leapstack-labs/lintpass/pkg/core"
	"github.com/leapstack-labs/lintpass/pkg/token"
)

// Renderer receives the final ordered diagnostics of a run. Formatting,
// colors and the destination stream are its business.
type Renderer interface {
	Render(diags []Diagnostic) error
}

// RendererFunc adapts a function to Renderer.
type RendererFunc func(diags []Diagnostic) error

// Render implements Renderer.
func (f RendererFunc) Render(diags []Diagnostic) error { return f(diags) }

// ErrNoRenderer is returned by Drain when it is given a nil Renderer.
var ErrNoRenderer = errors.New("drain: no renderer")

// Sink accumulates diagnostics in emission order.
// It does not deduplicate: identical diagnostics are each recorded.
type Sink struct {
	items []Diagnostic
	next  int
}

// NewSink creates an empty sink. The first diagnostic gets Seq 1.
func NewSink() *Sink {
	return &Sink{next: 1}
}

// Report records a diagnostic and returns it with its sequence number.
func (s *Sink) Report(ruleID string, severity core.Severity, message string, span token.Span) Diagnostic {
	d := Diagnostic{
		Seq:      s.next,
		RuleID:   ruleID,
		Severity: severity,
		Message:  message,
		Span:     span,
	}
	s.next++
	s.items = append(s.items, d)
	return d
}

// Len returns the number of recorded diagnostics.
func (s *Sink) Len() int {
	return len(s.items)
}

// Diagnostics returns a copy of the recorded diagnostics in emission order.
func (s *Sink) Diagnostics() []Diagnostic {
	out := make([]Diagnostic, len(s.items))
	copy(out, s.items)
	return out
}

// HasErrors returns true if any diagnostic has SeverityError.
func (s *Sink) HasErrors() bool {
	for i := range s.items {
		if s.items[i].Severity == core.SeverityError {
			return true
		}
	}
	return false
}

// Counts returns the number of diagnostics per severity.
func (s *Sink) Counts() map[core.Severity]int {
	counts := make(map[core.Severity]int)
	for i := range s.items {
		counts[s.items[i].Severity]++
	}
	return counts
}

// Drain hands every recorded diagnostic to r in emission order and empties
// the sink. Sequence numbering continues, so a drained sink never reuses a
// number. The sink is emptied even if r fails. With a nil r nothing is
// drained and ErrNoRenderer is returned.
func (s *Sink) Drain(r Renderer) error {
	if r == nil {
		return ErrNoRenderer
	}
	items := s.items
	s.items = nil
	return r.Render(items)
}
