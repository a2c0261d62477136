package lint_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/lintpass/pkg/lint"
	"github.com/leapstack-labs/lintpass/pkg/token"
)

func sp(line, col, endLine, endCol int) token.Span {
	return token.Span{
		File:  "input.go",
		Start: token.Position{Line: line, Column: col, Offset: (line-1)*100 + col - 1},
		End:   token.Position{Line: endLine, Column: endCol, Offset: (endLine-1)*100 + endCol - 1},
	}
}

func TestSink_ReportNumbersInOrder(t *testing.T) {
	s := lint.NewSink()

	d1 := s.Report("A", lint.SeverityWarning, "first", sp(1, 1, 1, 5))
	d2 := s.Report("B", lint.SeverityError, "second", sp(2, 1, 2, 5))

	assert.Equal(t, 1, d1.Seq)
	assert.Equal(t, 2, d2.Seq)
	assert.Equal(t, 2, s.Len())

	got := s.Diagnostics()
	require.Len(t, got, 2)
	assert.Equal(t, d1, got[0])
	assert.Equal(t, d2, got[1])

	got[0].Message = "mutated"
	assert.Equal(t, "first", s.Diagnostics()[0].Message, "Diagnostics returns a copy")
}

func TestSink_SeverityQueries(t *testing.T) {
	s := lint.NewSink()
	assert.False(t, s.HasErrors())

	s.Report("A", lint.SeverityWarning, "w", sp(1, 1, 1, 2))
	s.Report("A", lint.SeverityWarning, "w", sp(2, 1, 2, 2))
	assert.False(t, s.HasErrors())

	s.Report("B", lint.SeverityError, "e", sp(3, 1, 3, 2))
	assert.True(t, s.HasErrors())

	counts := s.Counts()
	assert.Equal(t, 2, counts[lint.SeverityWarning])
	assert.Equal(t, 1, counts[lint.SeverityError])
}

func TestSink_Drain(t *testing.T) {
	s := lint.NewSink()
	s.Report("A", lint.SeverityWarning, "one", sp(1, 1, 1, 2))
	s.Report("B", lint.SeverityWarning, "two", sp(2, 1, 2, 2))

	var rendered []lint.Diagnostic
	err := s.Drain(lint.RendererFunc(func(diags []lint.Diagnostic) error {
		rendered = append(rendered, diags...)
		return nil
	}))
	require.NoError(t, err)
	require.Len(t, rendered, 2)
	assert.Equal(t, "one", rendered[0].Message)
	assert.Equal(t, "two", rendered[1].Message)
	assert.Zero(t, s.Len())

	d := s.Report("C", lint.SeverityWarning, "three", sp(3, 1, 3, 2))
	assert.Equal(t, 3, d.Seq, "numbering continues after a drain")
}

func TestSink_DrainErrors(t *testing.T) {
	s := lint.NewSink()
	s.Report("A", lint.SeverityWarning, "one", sp(1, 1, 1, 2))

	boom := errors.New("boom")
	err := s.Drain(lint.RendererFunc(func([]lint.Diagnostic) error { return boom }))
	assert.ErrorIs(t, err, boom)
	assert.Zero(t, s.Len())
}

func TestSink_DrainNilRendererKeepsDiagnostics(t *testing.T) {
	s := lint.NewSink()
	s.Report("A", lint.SeverityWarning, "one", sp(1, 1, 1, 2))

	err := s.Drain(nil)
	require.ErrorIs(t, err, lint.ErrNoRenderer)
	assert.Equal(t, 1, s.Len())

	var rendered []lint.Diagnostic
	require.NoError(t, s.Drain(lint.RendererFunc(func(diags []lint.Diagnostic) error {
		rendered = diags
		return nil
	})))
	require.Len(t, rendered, 1)
	assert.Equal(t, "one", rendered[0].Message)
}
