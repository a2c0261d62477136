package lint

import (
	"log/slog"

	"github.com/leapstack-labs/lintpass/pkg/syntax"
	"github.com/leapstack-labs/lintpass/pkg/token"
)

// Config parameterizes an Engine.
type Config struct {
	// Rules is the active rule set. Nil means no rules.
	Rules *Registry

	// Logger receives debug output about each run. Nil discards it.
	Logger *slog.Logger
}

// Engine walks syntax trees and applies every registered rule to every node.
// It is single-threaded: one Run drives all rule checks synchronously.
type Engine struct {
	rules  []Rule
	logger *slog.Logger
}

// Stats describes one run.
type Stats struct {
	Nodes         int // nodes visited
	ExpandedNodes int // visited nodes whose span is expansion-derived
	Checks        int // rule invocations
	Skipped       int // rule invocations withheld by the expansion filter
}

// Result is the outcome of Run.
type Result struct {
	Diagnostics []Diagnostic
	Stats       Stats
}

// HasErrors returns true if any diagnostic has SeverityError.
func (r *Result) HasErrors() bool {
	for i := range r.Diagnostics {
		if r.Diagnostics[i].Severity == SeverityError {
			return true
		}
	}
	return false
}

// NewEngine creates an engine for the given configuration. The rule set is
// captured once; later registries do not affect this engine.
func NewEngine(cfg Config) *Engine {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Engine{
		rules:  cfg.Rules.Active(),
		logger: logger,
	}
}

// Rules returns the rules this engine runs, in order.
func (e *Engine) Rules() []Rule {
	out := make([]Rule, len(e.rules))
	copy(out, e.rules)
	return out
}

// Run traverses roots in order with a fresh sink and returns its diagnostics.
func (e *Engine) Run(roots ...syntax.Node) *Result {
	sink := NewSink()
	stats := e.RunInto(sink, roots...)
	return &Result{
		Diagnostics: sink.Diagnostics(),
		Stats:       stats,
	}
}

// RunInto traverses roots in order, reporting into sink.
func (e *Engine) RunInto(sink *Sink, roots ...syntax.Node) Stats {
	w := &walker{rules: e.rules, sink: sink}
	for _, root := range roots {
		w.visit(root)
	}

	e.logger.Debug("lint run complete",
		slog.Int("roots", len(roots)),
		slog.Int("rules", len(e.rules)),
		slog.Int("nodes", w.stats.Nodes),
		slog.Int("expanded_nodes", w.stats.ExpandedNodes),
		slog.Int("checks", w.stats.Checks),
		slog.Int("skipped", w.stats.Skipped),
		slog.Int("diagnostics", sink.Len()),
	)
	return w.stats
}

// walker holds the state of one traversal.
type walker struct {
	rules []Rule
	sink  *Sink
	stats Stats
}

// visit checks node with every eligible rule, then recurses into its
// children. Rule outcomes never influence which nodes are visited.
func (w *walker) visit(node syntax.Node) {
	if node == nil {
		return
	}
	w.stats.Nodes++

	span := node.Span()
	expanded := FromExpansion(span)
	if expanded {
		w.stats.ExpandedNodes++
	}

	for _, rule := range w.rules {
		if !eligible(rule, expanded) {
			w.stats.Skipped++
			continue
		}
		w.stats.Checks++
		ctx := &Context{node: node, expanded: expanded, rule: rule}
		for _, f := range rule.Check(node, ctx) {
			w.emit(rule, span, f)
		}
	}

	for _, child := range syntax.Children(node) {
		w.visit(child)
	}
}

// emit forwards a finding under the reporting rule's own identifier.
func (w *walker) emit(rule Rule, nodeSpan token.Span, f Finding) {
	msg := f.Message
	if msg == "" {
		msg = rule.Message()
	}
	span := f.Span
	if span == (token.Span{}) {
		span = nodeSpan
	}
	w.sink.Report(rule.ID(), rule.DefaultSeverity(), msg, span)
}
