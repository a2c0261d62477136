package rules

import (
	"github.com/leapstack-labs/lintpass/pkg/lint"
	"github.com/leapstack-labs/lintpass/pkg/lint/rules/arithmetic"
	"github.com/leapstack-labs/lintpass/pkg/lint/rules/calls"
)

// All returns the built-in rules in registry order.
func All() []lint.Rule {
	return []lint.Rule{
		arithmetic.AddZero,
		calls.UnwrapUsed,
	}
}

// NewRegistry builds a registry holding the built-in rules followed by
// extra, in that order.
func NewRegistry(extra ...lint.Rule) (*lint.Registry, error) {
	return lint.NewRegistry(append(All(), extra...)...)
}
