// Package syntax defines the typed tree handed to the lint engine by a host
// frontend.
//
// The tree is host-neutral: the Go frontend (internal/frontend) lowers
// go/ast + go/types into it, and tests build it by hand. Every node carries a
// token.Span whose Expanded flag records whether the node came from macro or
// template expansion. The engine only reads the tree; it is immutable for
// the duration of a run.
//
// The concrete node type is the discriminant. Rules switch on it:
//
//	switch n := node.(type) {
//	case *syntax.BinaryExpr:
//	    ...
//	case *syntax.MethodCall:
//	    ...
//	}
package syntax
