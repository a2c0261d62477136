package lint

import "github.com/leapstack-labs/lintpass/pkg/token"

// FromExpansion reports whether span was synthesized by macro or template
// expansion. It only reads the marker the host frontend put on the span.
func FromExpansion(span token.Span) bool {
	return span.Expanded
}

// eligible reports whether rule may see a node with the given expansion
// status.
func eligible(rule Rule, expanded bool) bool {
	return !expanded || rule.ExaminesExpanded()
}
