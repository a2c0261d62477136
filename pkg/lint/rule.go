package lint

import (
	"github.com/leapstack-labs/lintpass/pkg/core"
	"github.com/leapstack-labs/lintpass/pkg/syntax"
)

// Rule is the interface all lint rules implement.
type Rule interface {
	// ID returns the unique identifier, e.g., "AR01"
	ID() string

	// Name returns the human-readable name, e.g., "arithmetic.add_zero"
	Name() string

	// Group returns the category, e.g., "arithmetic", "calls"
	Group() string

	// Description returns a human-readable description
	Description() string

	// DefaultSeverity returns the severity every diagnostic of this rule carries.
	// Rules at SeverityAllow are registered but not run.
	DefaultSeverity() core.Severity

	// Message returns the default diagnostic message.
	Message() string

	// ExaminesExpanded reports whether the rule wants nodes that came from
	// macro/template expansion. Most rules return false.
	ExaminesExpanded() bool

	// Check inspects one node and returns zero or more findings.
	// It must not fail: a node shape the rule does not expect is "no match".
	Check(node syntax.Node, ctx *Context) []Finding

	// Documentation methods for richer rule documentation
	Rationale() string   // Why this rule exists, what problems it prevents
	BadExample() string  // Code showing the anti-pattern
	GoodExample() string // Code showing the correct pattern
}

// CheckFunc is the check operation of a RuleDef.
type CheckFunc func(node syntax.Node, ctx *Context) []Finding

// RuleDef is a data-driven rule definition.
// Rules are stateless - all context comes via the Check function parameters.
type RuleDef struct {
	ID               string        // Unique identifier, e.g., "AR01"
	Name             string        // Human-readable name, e.g., "arithmetic.add_zero"
	Group            string        // Category, e.g., "arithmetic"
	Description      string        // Human-readable description
	Severity         core.Severity // Default severity
	Message          string        // Default diagnostic message
	ExaminesExpanded bool          // Also run on expansion-derived nodes
	Check            CheckFunc     // The check function

	// Documentation fields for richer rule documentation
	Rationale   string
	BadExample  string
	GoodExample string
}

// GetRuleInfo extracts metadata from a Rule for documentation/tooling.
func GetRuleInfo(r Rule) core.RuleInfo {
	return core.RuleInfo{
		ID:               r.ID(),
		Name:             r.Name(),
		Group:            r.Group(),
		Description:      r.Description(),
		DefaultSeverity:  r.DefaultSeverity(),
		Message:          r.Message(),
		ExaminesExpanded: r.ExaminesExpanded(),
		Rationale:        r.Rationale(),
		BadExample:       r.BadExample(),
		GoodExample:      r.GoodExample(),
	}
}

// =============================================================================
// Wrapped RuleDef
// =============================================================================

// definedRule wraps a RuleDef to implement Rule.
type definedRule struct {
	def RuleDef
}

// Define wraps a RuleDef to implement the Rule interface.
func Define(def RuleDef) Rule {
	return &definedRule{def: def}
}

func (r *definedRule) ID() string                     { return r.def.ID }
func (r *definedRule) Name() string                   { return r.def.Name }
func (r *definedRule) Group() string                  { return r.def.Group }
func (r *definedRule) Description() string            { return r.def.Description }
func (r *definedRule) DefaultSeverity() core.Severity { return r.def.Severity }
func (r *definedRule) Message() string                { return r.def.Message }
func (r *definedRule) ExaminesExpanded() bool         { return r.def.ExaminesExpanded }

// Documentation methods
func (r *definedRule) Rationale() string   { return r.def.Rationale }
func (r *definedRule) BadExample() string  { return r.def.BadExample }
func (r *definedRule) GoodExample() string { return r.def.GoodExample }

func (r *definedRule) Check(node syntax.Node, ctx *Context) []Finding {
	if r.def.Check == nil {
		return nil
	}
	return r.def.Check(node, ctx)
}

// Unwrap returns the underlying RuleDef.
func (r *definedRule) Unwrap() RuleDef {
	return r.def
}
