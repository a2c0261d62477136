package calls

import (
	"github.com/leapstack-labs/lintpass/pkg/lint"
	"github.com/leapstack-labs/lintpass/pkg/lint/match"
	"github.com/leapstack-labs/lintpass/pkg/syntax"
)

// unwrapMethod is the method name UnwrapUsed looks for.
const unwrapMethod = "unwrap"

// UnwrapUsed flags calls to a method named unwrap, whatever the receiver.
var UnwrapUsed = lint.Define(lint.RuleDef{
	ID:          "CL01",
	Name:        "calls.unwrap_used",
	Group:       "calls",
	Description: "A method named unwrap is called.",
	Severity:    lint.SeverityWarning,
	Message:     "`unwrap` is used here",
	Check:       checkUnwrapUsed,

	Rationale: `unwrap-style accessors usually panic or return a zero value when
the wrapped value is absent. Handle the empty case explicitly instead.`,

	BadExample: `v := opt.unwrap()`,

	GoodExample: `v, ok := opt.get()
if !ok {
	return errMissing
}`,
})

func checkUnwrapUsed(node syntax.Node, ctx *lint.Context) []lint.Finding {
	if !match.IsMethodCall(node, unwrapMethod) {
		return nil
	}
	return []lint.Finding{ctx.Report("")}
}
