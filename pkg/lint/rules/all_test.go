package rules_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/lintpass/pkg/lint"
	"github.com/leapstack-labs/lintpass/pkg/lint/rules"
	"github.com/leapstack-labs/lintpass/pkg/lint/rules/arithmetic"
	"github.com/leapstack-labs/lintpass/pkg/syntax"
)

func TestAll_Order(t *testing.T) {
	var ids []string
	for _, r := range rules.All() {
		ids = append(ids, r.ID())
	}
	assert.Equal(t, []string{"AR01", "CL01"}, ids)
}

func TestNewRegistry(t *testing.T) {
	extra := lint.Define(lint.RuleDef{
		ID:       "EX01",
		Severity: lint.SeverityWarning,
		Check:    func(syntax.Node, *lint.Context) []lint.Finding { return nil },
	})

	reg, err := rules.NewRegistry(extra)
	require.NoError(t, err)
	require.Equal(t, 3, reg.Len())
	assert.Equal(t, "EX01", reg.Rules()[2].ID())

	_, err = rules.NewRegistry(arithmetic.AddZero)
	assert.True(t, errors.Is(err, lint.ErrRegistryConflict))
}

func TestBuiltinsHaveDocumentation(t *testing.T) {
	names := make(map[string]bool)
	for _, r := range rules.All() {
		info := lint.GetRuleInfo(r)
		assert.NotEmpty(t, info.Name, r.ID())
		assert.NotEmpty(t, info.Group, r.ID())
		assert.NotEmpty(t, info.Description, r.ID())
		assert.NotEmpty(t, info.Message, r.ID())
		assert.False(t, names[info.Name], "duplicate name %s", info.Name)
		names[info.Name] = true
	}
}
