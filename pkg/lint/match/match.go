// Package match provides small, reusable boolean tests over syntax nodes for
// lint rules. Every predicate is total: a nil node or an unexpected shape
// simply does not match.
package match

import (
	"go/constant"
	"go/token"

	"github.com/leapstack-labs/lintpass/pkg/syntax"
)

// Unparen strips any number of enclosing parentheses.
func Unparen(node syntax.Node) syntax.Node {
	for {
		p, ok := node.(*syntax.ParenExpr)
		if !ok || p == nil {
			return node
		}
		node = p.X
	}
}

// IsIntLit reports whether node is an integer literal, ignoring parentheses.
func IsIntLit(node syntax.Node) bool {
	lit, ok := Unparen(node).(*syntax.BasicLit)
	return ok && lit != nil && lit.Kind == syntax.LiteralInt
}

// IntLitValue returns the value of an integer literal. ok is false when node
// is not an integer literal or its text does not parse.
func IntLitValue(node syntax.Node) (v constant.Value, ok bool) {
	lit, isLit := Unparen(node).(*syntax.BasicLit)
	if !isLit || lit == nil || lit.Kind != syntax.LiteralInt {
		return nil, false
	}
	v = constant.MakeFromLiteral(lit.Value, token.INT, 0)
	if v.Kind() != constant.Int {
		return nil, false
	}
	return v, true
}

// IsIntLitEqual reports whether node is an integer literal whose value is n.
// Any spelling counts: 0, 00, 0x0, 0b0, 0o0, 0_0.
func IsIntLitEqual(node syntax.Node, n int64) bool {
	v, ok := IntLitValue(node)
	if !ok {
		return false
	}
	return constant.Compare(v, token.EQL, constant.MakeInt64(n))
}

// IsLitZero reports whether node is the integer literal 0.
// An expression that merely evaluates to zero does not match.
func IsLitZero(node syntax.Node) bool {
	return IsIntLitEqual(node, 0)
}

// IsBinaryOp reports whether node is a binary expression with operator op.
func IsBinaryOp(node syntax.Node, op string) bool {
	b, ok := node.(*syntax.BinaryExpr)
	return ok && b != nil && b.Op == op
}

// Operands returns the operands of a binary expression.
func Operands(node syntax.Node) (left, right syntax.Expr, ok bool) {
	b, isBinary := node.(*syntax.BinaryExpr)
	if !isBinary || b == nil {
		return nil, nil, false
	}
	return b.Left, b.Right, true
}

// EitherOperand reports whether node is a binary expression with operator op
// where pred holds for the left or the right operand.
func EitherOperand(node syntax.Node, op string, pred func(syntax.Node) bool) bool {
	if !IsBinaryOp(node, op) {
		return false
	}
	left, right, _ := Operands(node)
	return pred(left) || pred(right)
}

// IsMethodCall reports whether node is a method call named method,
// whatever its receiver or arguments.
func IsMethodCall(node syntax.Node, method string) bool {
	c, ok := node.(*syntax.MethodCall)
	return ok && c != nil && c.Method == method
}

// IsCallTo reports whether node is a plain call whose callee is the
// identifier name.
func IsCallTo(node syntax.Node, name string) bool {
	c, ok := node.(*syntax.CallExpr)
	if !ok || c == nil {
		return false
	}
	id, ok := Unparen(c.Fun).(*syntax.Ident)
	return ok && id != nil && id.Name == name
}

// IsIdent reports whether node is an identifier named name.
func IsIdent(node syntax.Node, name string) bool {
	id, ok := node.(*syntax.Ident)
	return ok && id != nil && id.Name == name
}

// And combines predicates; it matches when all of them do.
func And(preds ...func(syntax.Node) bool) func(syntax.Node) bool {
	return func(n syntax.Node) bool {
		for _, p := range preds {
			if !p(n) {
				return false
			}
		}
		return true
	}
}

// Or combines predicates; it matches when any of them does.
func Or(preds ...func(syntax.Node) bool) func(syntax.Node) bool {
	return func(n syntax.Node) bool {
		for _, p := range preds {
			if p(n) {
				return true
			}
		}
		return false
	}
}
