package lint_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/lintpass/pkg/lint"
	"github.com/leapstack-labs/lintpass/pkg/syntax"
)

func stubRule(id string, sev lint.Severity) lint.Rule {
	return lint.Define(lint.RuleDef{
		ID:       id,
		Name:     "test." + id,
		Group:    "test",
		Severity: sev,
		Message:  id + " fired",
		Check:    func(syntax.Node, *lint.Context) []lint.Finding { return nil },
	})
}

func TestNewRegistry_PreservesOrder(t *testing.T) {
	reg, err := lint.NewRegistry(
		stubRule("B", lint.SeverityWarning),
		stubRule("A", lint.SeverityError),
		stubRule("C", lint.SeverityWarning),
	)
	require.NoError(t, err)

	var ids []string
	for _, r := range reg.Rules() {
		ids = append(ids, r.ID())
	}
	assert.Equal(t, []string{"B", "A", "C"}, ids)
	assert.Equal(t, 3, reg.Len())
}

func TestNewRegistry_Conflicts(t *testing.T) {
	tests := []struct {
		name   string
		rules  []lint.Rule
		wantID string
	}{
		{
			name:   "duplicate identifier",
			rules:  []lint.Rule{stubRule("AR01", lint.SeverityWarning), stubRule("CL01", lint.SeverityWarning), stubRule("AR01", lint.SeverityError)},
			wantID: "AR01",
		},
		{
			name:  "empty identifier",
			rules: []lint.Rule{stubRule("", lint.SeverityWarning)},
		},
		{
			name:  "nil rule",
			rules: []lint.Rule{stubRule("AR01", lint.SeverityWarning), nil},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg, err := lint.NewRegistry(tt.rules...)
			require.Error(t, err)
			assert.Nil(t, reg)

			assert.True(t, errors.Is(err, lint.ErrRegistryConflict))

			var conflict *lint.RegistryConflictError
			require.True(t, errors.As(err, &conflict))
			assert.Equal(t, tt.wantID, conflict.ID)
			if tt.wantID != "" {
				assert.Contains(t, err.Error(), tt.wantID)
			}
		})
	}
}

func TestNewRegistry_DuplicateProducesNoDiagnostics(t *testing.T) {
	fired := false
	rule := lint.Define(lint.RuleDef{
		ID:       "X",
		Severity: lint.SeverityWarning,
		Check: func(_ syntax.Node, ctx *lint.Context) []lint.Finding {
			fired = true
			return []lint.Finding{ctx.Report("")}
		},
	})

	reg, err := lint.NewRegistry(rule, rule)
	require.Error(t, err)

	// A failed registry is nil; an engine built from it has no rules.
	result := lint.NewEngine(lint.Config{Rules: reg}).Run(&syntax.Ident{Name: "x", Loc: sp(1, 1, 1, 2)})
	assert.Empty(t, result.Diagnostics)
	assert.False(t, fired)
}

func TestMustNewRegistry_Panics(t *testing.T) {
	assert.Panics(t, func() {
		lint.MustNewRegistry(stubRule("A", lint.SeverityWarning), stubRule("A", lint.SeverityWarning))
	})
	assert.NotPanics(t, func() {
		lint.MustNewRegistry(stubRule("A", lint.SeverityWarning))
	})
}

func TestRegistry_Accessors(t *testing.T) {
	reg := lint.MustNewRegistry(
		stubRule("A", lint.SeverityWarning),
		stubRule("B", lint.SeverityAllow),
		stubRule("C", lint.SeverityError),
	)

	t.Run("lookup", func(t *testing.T) {
		r, ok := reg.Lookup("C")
		require.True(t, ok)
		assert.Equal(t, lint.SeverityError, r.DefaultSeverity())

		_, ok = reg.Lookup("Z")
		assert.False(t, ok)
	})

	t.Run("active excludes allow", func(t *testing.T) {
		var ids []string
		for _, r := range reg.Active() {
			ids = append(ids, r.ID())
		}
		assert.Equal(t, []string{"A", "C"}, ids)
	})

	t.Run("rules returns a copy", func(t *testing.T) {
		rules := reg.Rules()
		rules[0] = nil
		assert.NotNil(t, reg.Rules()[0])
	})

	t.Run("infos", func(t *testing.T) {
		infos := reg.Infos()
		require.Len(t, infos, 3)
		assert.Equal(t, "A", infos[0].ID)
		assert.Equal(t, "test.A", infos[0].Name)
		assert.Equal(t, "A fired", infos[0].Message)
		assert.Equal(t, lint.SeverityAllow, infos[1].DefaultSeverity)
	})

	t.Run("nil registry", func(t *testing.T) {
		var empty *lint.Registry
		assert.Zero(t, empty.Len())
		assert.Nil(t, empty.Rules())
		assert.Nil(t, empty.Active())
		assert.Empty(t, empty.Infos())
		_, ok := empty.Lookup("A")
		assert.False(t, ok)
	})
}
