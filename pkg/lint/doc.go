// Package lint is the lint-pass engine: it holds an ordered set of rules,
// walks a typed syntax tree exactly once, runs every active rule on every
// eligible node and collects the findings as an ordered, deterministic stream
// of diagnostics.
//
// # Architecture
//
//  1. Rule (rule.go): the unit of analysis. Implement the interface directly
//     or describe the rule with a RuleDef and wrap it with Define.
//  2. Registry (registry.go): the ordered rule set for a run, built once.
//     Duplicate identifiers are rejected before any traversal happens.
//  3. Expansion filter (expansion.go): hides nodes synthesized by macro or
//     template expansion from rules that did not opt in.
//  4. Engine (engine.go): pre-order traversal; per node, rules run in
//     registry order.
//  5. Sink (sink.go): numbers and stores diagnostics, then hands them to a
//     Renderer.
//
// # Usage
//
//	reg, err := lint.NewRegistry(rules.All()...)
//	if err != nil {
//		return err // *lint.RegistryConflictError
//	}
//	eng := lint.NewEngine(lint.Config{Rules: reg, Logger: logger})
//	result := eng.Run(files...)
//	for _, d := range result.Diagnostics {
//		fmt.Println(d.Span, d.RuleID, d.Message)
//	}
//
// # Creating Custom Rules
//
//	var NoNilCompare = lint.Define(lint.RuleDef{
//		ID:       "CU01",
//		Name:     "custom.no_nil_compare",
//		Group:    "custom",
//		Severity: core.SeverityWarning,
//		Message:  "comparison with nil",
//		Check:    checkNoNilCompare,
//	})
//
// Rules are registered explicitly by passing them to NewRegistry; there is
// no process-wide registration state.
package lint
