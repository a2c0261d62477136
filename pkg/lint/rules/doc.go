// Package rules provides the built-in lint rules of lintpass.
//
// Rules are organized by category:
//   - arithmetic: Rules about ineffective or suspicious arithmetic (AR01)
//   - calls: Rules about call sites (CL01)
//
// All returns the built-in set in its fixed order; pass it to
// lint.NewRegistry:
//
//	reg, err := lint.NewRegistry(rules.All()...)
//
// Individual categories can also be used directly:
//
//	reg, err := lint.NewRegistry(arithmetic.AddZero)
package rules
