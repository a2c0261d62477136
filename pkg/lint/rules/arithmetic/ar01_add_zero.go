package arithmetic

import (
	"github.com/leapstack-labs/lintpass/pkg/lint"
	"github.com/leapstack-labs/lintpass/pkg/lint/match"
	"github.com/leapstack-labs/lintpass/pkg/syntax"
)

// AddZero flags additions where one operand is the integer literal 0.
var AddZero = lint.Define(lint.RuleDef{
	ID:          "AR01",
	Name:        "arithmetic.add_zero",
	Group:       "arithmetic",
	Description: "Adding the literal 0 has no effect.",
	Severity:    lint.SeverityWarning,
	Message:     "Ineffective operation",
	Check:       checkAddZero,

	Rationale: `x + 0 evaluates to x. The addition is usually left over from an
edit, or a sign that a different operand was intended. Only a literal 0 is
flagged; a variable or constant that happens to be zero is not.`,

	BadExample: `total := price + 0`,

	GoodExample: `total := price`,
})

func checkAddZero(node syntax.Node, ctx *lint.Context) []lint.Finding {
	if !match.EitherOperand(node, "+", match.IsLitZero) {
		return nil
	}
	return []lint.Finding{ctx.Report("")}
}
