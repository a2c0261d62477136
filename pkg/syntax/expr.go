package syntax

import "github.com/leapstack-labs/lintpass/pkg/token"

// LiteralKind classifies a BasicLit.
type LiteralKind int

// LiteralKind constants.
const (
	LiteralInt LiteralKind = iota
	LiteralFloat
	LiteralImag
	LiteralChar
	LiteralString
)

// String returns the literal kind's name.
func (k LiteralKind) String() string {
	switch k {
	case LiteralInt:
		return "int"
	case LiteralFloat:
		return "float"
	case LiteralImag:
		return "imag"
	case LiteralChar:
		return "char"
	case LiteralString:
		return "string"
	default:
		return "unknown"
	}
}

// BasicLit is a literal constant as written in source.
type BasicLit struct {
	Kind  LiteralKind
	Value string // source text, e.g. "0x0" or `"hi"`
	Type  string // type assigned by the type checker, if known
	Loc   token.Span
}

func (*BasicLit) exprNode() {}

// Span implements Node.
func (l *BasicLit) Span() token.Span { return l.Loc }

// Ident is a name reference.
type Ident struct {
	Name string
	Type string
	Loc  token.Span
}

func (*Ident) exprNode() {}

// Span implements Node.
func (i *Ident) Span() token.Span { return i.Loc }

// BinaryExpr is `Left Op Right`.
type BinaryExpr struct {
	Op    string // operator token, e.g. "+"
	Left  Expr
	Right Expr
	Type  string
	Loc   token.Span
}

func (*BinaryExpr) exprNode() {}

// Span implements Node.
func (b *BinaryExpr) Span() token.Span { return b.Loc }

// UnaryExpr is `Op X`.
type UnaryExpr struct {
	Op  string
	X   Expr
	Loc token.Span
}

func (*UnaryExpr) exprNode() {}

// Span implements Node.
func (u *UnaryExpr) Span() token.Span { return u.Loc }

// ParenExpr is a parenthesized expression.
type ParenExpr struct {
	X   Expr
	Loc token.Span
}

func (*ParenExpr) exprNode() {}

// Span implements Node.
func (p *ParenExpr) Span() token.Span { return p.Loc }

// SelectorExpr is `X.Sel` when it is not the callee of a method call.
type SelectorExpr struct {
	X   Expr
	Sel string
	Loc token.Span
}

func (*SelectorExpr) exprNode() {}

// Span implements Node.
func (s *SelectorExpr) Span() token.Span { return s.Loc }

// MethodCall is `Receiver.Method(Args...)` where Method resolves to a method
// (not a package-qualified function).
type MethodCall struct {
	Receiver Expr
	Method   string
	Args     []Expr
	Type     string // result type
	Loc      token.Span
}

func (*MethodCall) exprNode() {}

// Span implements Node.
func (c *MethodCall) Span() token.Span { return c.Loc }

// CallExpr is any other call: functions, conversions, builtins.
type CallExpr struct {
	Fun  Expr
	Args []Expr
	Type string
	Loc  token.Span
}

func (*CallExpr) exprNode() {}

// Span implements Node.
func (c *CallExpr) Span() token.Span { return c.Loc }

// CompositeLit is `T{Elts...}`. Key/value elements lower to an Opaque
// labelled "KeyValueExpr".
type CompositeLit struct {
	Type string
	Elts []Expr
	Loc  token.Span
}

func (*CompositeLit) exprNode() {}

// Span implements Node.
func (c *CompositeLit) Span() token.Span { return c.Loc }

// FuncLit is an anonymous function.
type FuncLit struct {
	Body *BlockStmt
	Loc  token.Span
}

func (*FuncLit) exprNode() {}

// Span implements Node.
func (f *FuncLit) Span() token.Span { return f.Loc }

// Opaque stands in for a host construct with no dedicated node kind. Its
// children are still traversed so rules see the expressions inside it.
type Opaque struct {
	Label string // host construct name, e.g. "SwitchStmt"
	Nodes []Node
	Loc   token.Span
}

func (*Opaque) exprNode() {}
func (*Opaque) stmtNode() {}
func (*Opaque) declNode() {}

// Span implements Node.
func (o *Opaque) Span() token.Span { return o.Loc }
