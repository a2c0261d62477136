package lint

import (
	"github.com/leapstack-labs/lintpass/pkg/core"
	"github.com/leapstack-labs/lintpass/pkg/token"
)

// Severity is re-exported from core for rule authors.
type Severity = core.Severity

// Severity levels, re-exported from core.
const (
	SeverityError   = core.SeverityError
	SeverityWarning = core.SeverityWarning
	SeverityAllow   = core.SeverityAllow
)

// ParseSeverity is re-exported from core.
var ParseSeverity = core.ParseSeverity

// =============================================================================
// Diagnostics
// =============================================================================

// Diagnostic is one emitted lint finding. Diagnostics are created only by
// the Sink and never change after creation.
type Diagnostic struct {
	Seq      int           `json:"seq" yaml:"seq"` // 1-based emission order within a run
	RuleID   string        `json:"rule_id" yaml:"rule_id"`
	Severity core.Severity `json:"severity" yaml:"severity"`
	Message  string        `json:"message" yaml:"message"`
	Span     token.Span    `json:"span" yaml:"span"`
}

// Finding is what a rule check returns: a message at a span. The engine
// attaches the reporting rule's own identifier and severity when it forwards
// the finding to the sink.
type Finding struct {
	Message string     // empty means the rule's default message
	Span    token.Span // zero means the span of the node being checked
}
