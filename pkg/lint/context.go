package lint

import (
	"fmt"

	"github.com/leapstack-labs/lintpass/pkg/syntax"
	"github.com/leapstack-labs/lintpass/pkg/token"
)

// Context is the read-only view a rule receives with each node.
type Context struct {
	node     syntax.Node
	expanded bool
	rule     Rule
}

// Node returns the node being checked.
func (c *Context) Node() syntax.Node { return c.node }

// Expanded reports whether the node's span is expansion-derived. Only rules
// with ExaminesExpanded ever see true here.
func (c *Context) Expanded() bool { return c.expanded }

// RuleID returns the identifier the findings will be reported under.
func (c *Context) RuleID() string { return c.rule.ID() }

// Report returns a finding at the current node's span. An empty message
// reports the rule's default message.
func (c *Context) Report(message string) Finding {
	return Finding{Message: message, Span: c.node.Span()}
}

// Reportf is Report with fmt formatting.
func (c *Context) Reportf(format string, args ...any) Finding {
	return c.Report(fmt.Sprintf(format, args...))
}

// ReportAt returns a finding at an explicit span.
func (c *Context) ReportAt(span token.Span, message string) Finding {
	return Finding{Message: message, Span: span}
}
