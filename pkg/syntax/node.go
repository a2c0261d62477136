package syntax

import "github.com/leapstack-labs/lintpass/pkg/token"

// Node is the base interface for all tree nodes.
type Node interface {
	// Span returns the source range covered by the node.
	Span() token.Span
}

// Expr is a marker interface for expression nodes.
type Expr interface {
	Node
	exprNode()
}

// Stmt is a marker interface for statement nodes.
type Stmt interface {
	Node
	stmtNode()
}

// Decl is a marker interface for top-level declarations.
type Decl interface {
	Node
	declNode()
}

// ---------- Files and declarations ----------

// File is the root of one source file.
type File struct {
	Name    string // file path as reported by the host
	Package string
	Decls   []Decl
	Loc     token.Span
}

// Span implements Node.
func (f *File) Span() token.Span { return f.Loc }

// FuncDecl is a function or method declaration.
type FuncDecl struct {
	Name string
	Recv string // receiver type name; empty for plain functions
	Body *BlockStmt
	Loc  token.Span
}

func (*FuncDecl) declNode() {}

// Span implements Node.
func (d *FuncDecl) Span() token.Span { return d.Loc }

// ValueSpec binds names to values: `let`, `var` and `const` all lower to it.
// It is also a statement when it appears inside a block.
type ValueSpec struct {
	Keyword string // "var", "const", ...
	Names   []string
	Values  []Expr
	Loc     token.Span
}

func (*ValueSpec) declNode() {}
func (*ValueSpec) stmtNode() {}

// Span implements Node.
func (v *ValueSpec) Span() token.Span { return v.Loc }

// ---------- Statements ----------

// BlockStmt is a braced statement list.
type BlockStmt struct {
	List []Stmt
	Loc  token.Span
}

func (*BlockStmt) stmtNode() {}

// Span implements Node.
func (b *BlockStmt) Span() token.Span { return b.Loc }

// ExprStmt is an expression evaluated for its side effects.
type ExprStmt struct {
	X   Expr
	Loc token.Span
}

func (*ExprStmt) stmtNode() {}

// Span implements Node.
func (s *ExprStmt) Span() token.Span { return s.Loc }

// AssignStmt is an assignment or short variable declaration.
type AssignStmt struct {
	Op  string // "=", ":=", "+=", ...
	LHS []Expr
	RHS []Expr
	Loc token.Span
}

func (*AssignStmt) stmtNode() {}

// Span implements Node.
func (s *AssignStmt) Span() token.Span { return s.Loc }

// ReturnStmt is a return statement.
type ReturnStmt struct {
	Results []Expr
	Loc     token.Span
}

func (*ReturnStmt) stmtNode() {}

// Span implements Node.
func (s *ReturnStmt) Span() token.Span { return s.Loc }

// IfStmt is a conditional. Else is nil, a *BlockStmt or another *IfStmt.
type IfStmt struct {
	Init Stmt
	Cond Expr
	Then *BlockStmt
	Else Stmt
	Loc  token.Span
}

func (*IfStmt) stmtNode() {}

// Span implements Node.
func (s *IfStmt) Span() token.Span { return s.Loc }

// ForStmt is a loop of any shape; absent clauses are nil.
type ForStmt struct {
	Init Stmt
	Cond Expr
	Post Stmt
	Body *BlockStmt
	Loc  token.Span
}

func (*ForStmt) stmtNode() {}

// Span implements Node.
func (s *ForStmt) Span() token.Span { return s.Loc }
