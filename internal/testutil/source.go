package testutil

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/lintpass/internal/frontend"
	"github.com/leapstack-labs/lintpass/pkg/syntax"
	"github.com/leapstack-labs/lintpass/pkg/token"
)

// ParseGo type-checks and lowers a single Go file, failing the test on any
// host error.
func ParseGo(t testing.TB, src string) *syntax.File {
	t.Helper()
	f, err := frontend.ParseSource("input.go", src)
	require.NoError(t, err)
	return f
}

// SpanOf returns the span of the first node whose source text equals text.
// src must be the source ParseGo was given.
func SpanOf(t testing.TB, root syntax.Node, src, text string) token.Span {
	t.Helper()
	var found token.Span
	syntax.Inspect(root, func(n syntax.Node) bool {
		if found.IsValid() {
			return false
		}
		sp := n.Span()
		if sp.Start.Offset < sp.End.Offset && sp.End.Offset <= len(src) &&
			src[sp.Start.Offset:sp.End.Offset] == text {
			found = sp
			return false
		}
		return true
	})
	require.Truef(t, found.IsValid(), "no node spans %q", text)
	return found
}

// Text returns the source text covered by span.
func Text(src string, span token.Span) string {
	if span.Start.Offset < 0 || span.End.Offset > len(src) || span.Start.Offset > span.End.Offset {
		return ""
	}
	return strings.Clone(src[span.Start.Offset:span.End.Offset])
}
