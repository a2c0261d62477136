package frontend

import (
	"go/ast"
	gotoken "go/token"
	"go/types"
	"sort"

	"github.com/leapstack-labs/lintpass/pkg/syntax"
	"github.com/leapstack-labs/lintpass/pkg/token"
)

// Lower converts type-checked Go files into syntax trees, one per file,
// sorted by file name. info may be nil, in which case type strings are left
// empty and every selector call is treated as a method call.
func Lower(fset *gotoken.FileSet, files []*ast.File, pkg *types.Package, info *types.Info) []*syntax.File {
	sorted := make([]*ast.File, len(files))
	copy(sorted, files)
	sort.SliceStable(sorted, func(i, j int) bool {
		return fset.Position(sorted[i].Package).Filename < fset.Position(sorted[j].Package).Filename
	})

	out := make([]*syntax.File, 0, len(sorted))
	for _, f := range sorted {
		out = append(out, LowerFile(fset, f, pkg, info))
	}
	return out
}

// LowerFile converts one Go file. Every span in a file carrying the standard
// generated-code header is marked expanded; in other files only code under a
// //line directive is.
func LowerFile(fset *gotoken.FileSet, file *ast.File, pkg *types.Package, info *types.Info) *syntax.File {
	l := &lowerer{
		fset:      fset,
		info:      info,
		generated: ast.IsGenerated(file),
	}
	if pkg != nil {
		l.qual = types.RelativeTo(pkg)
	}

	out := &syntax.File{
		Name:    fset.Position(file.Package).Filename,
		Package: file.Name.Name,
		Loc:     l.span(file),
	}
	for _, d := range file.Decls {
		out.Decls = append(out.Decls, l.decls(d)...)
	}
	return out
}

// lowerer holds per-file lowering state.
type lowerer struct {
	fset      *gotoken.FileSet
	info      *types.Info
	qual      types.Qualifier
	generated bool
}

func (l *lowerer) span(n ast.Node) token.Span {
	return l.spanOf(n.Pos(), n.End())
}

func (l *lowerer) spanOf(pos, end gotoken.Pos) token.Span {
	start := l.fset.PositionFor(pos, true)
	stop := l.fset.PositionFor(end, true)
	raw := l.fset.PositionFor(pos, false)

	remapped := start.Filename != raw.Filename || start.Line != raw.Line
	return token.Span{
		File:     start.Filename,
		Start:    token.Position{Line: start.Line, Column: start.Column, Offset: start.Offset},
		End:      token.Position{Line: stop.Line, Column: stop.Column, Offset: stop.Offset},
		Expanded: l.generated || remapped,
	}
}

func (l *lowerer) typeOf(e ast.Expr) string {
	if l.info == nil {
		return ""
	}
	t := l.info.TypeOf(e)
	if t == nil {
		return ""
	}
	return types.TypeString(t, l.qual)
}

// ---------- Declarations ----------

func (l *lowerer) decls(d ast.Decl) []syntax.Decl {
	switch d := d.(type) {
	case *ast.FuncDecl:
		fn := &syntax.FuncDecl{
			Name: d.Name.Name,
			Recv: recvTypeName(d.Recv),
			Loc:  l.span(d),
		}
		if d.Body != nil {
			fn.Body = l.block(d.Body)
		}
		return []syntax.Decl{fn}

	case *ast.GenDecl:
		if d.Tok != gotoken.VAR && d.Tok != gotoken.CONST {
			return nil
		}
		var out []syntax.Decl
		for _, s := range d.Specs {
			if vs, ok := s.(*ast.ValueSpec); ok {
				out = append(out, l.valueSpec(d.Tok, vs))
			}
		}
		return out
	}
	return nil
}

func (l *lowerer) valueSpec(tok gotoken.Token, vs *ast.ValueSpec) *syntax.ValueSpec {
	spec := &syntax.ValueSpec{
		Keyword: tok.String(),
		Loc:     l.span(vs),
	}
	for _, n := range vs.Names {
		spec.Names = append(spec.Names, n.Name)
	}
	spec.Values = l.exprs(vs.Values)
	return spec
}

func recvTypeName(recv *ast.FieldList) string {
	if recv == nil || len(recv.List) == 0 {
		return ""
	}
	t := recv.List[0].Type
	for {
		switch x := t.(type) {
		case *ast.StarExpr:
			t = x.X
		case *ast.IndexExpr:
			t = x.X
		case *ast.IndexListExpr:
			t = x.X
		case *ast.ParenExpr:
			t = x.X
		case *ast.Ident:
			return x.Name
		default:
			return ""
		}
	}
}

// ---------- Statements ----------

func (l *lowerer) block(b *ast.BlockStmt) *syntax.BlockStmt {
	out := &syntax.BlockStmt{Loc: l.span(b)}
	for _, s := range b.List {
		if st := l.stmt(s); st != nil {
			out.List = append(out.List, st)
		}
	}
	return out
}

// stmt lowers a statement. It returns a nil interface, never a typed nil,
// when there is nothing to lower.
func (l *lowerer) stmt(s ast.Stmt) syntax.Stmt {
	if s == nil {
		return nil
	}
	switch s := s.(type) {
	case *ast.BlockStmt:
		return l.block(s)

	case *ast.ExprStmt:
		return &syntax.ExprStmt{X: l.expr(s.X), Loc: l.span(s)}

	case *ast.AssignStmt:
		return &syntax.AssignStmt{
			Op:  s.Tok.String(),
			LHS: l.exprs(s.Lhs),
			RHS: l.exprs(s.Rhs),
			Loc: l.span(s),
		}

	case *ast.ReturnStmt:
		return &syntax.ReturnStmt{Results: l.exprs(s.Results), Loc: l.span(s)}

	case *ast.IfStmt:
		out := &syntax.IfStmt{
			Init: l.stmt(s.Init),
			Cond: l.expr(s.Cond),
			Then: l.block(s.Body),
			Loc:  l.span(s),
		}
		out.Else = l.stmt(s.Else)
		return out

	case *ast.ForStmt:
		out := &syntax.ForStmt{
			Init: l.stmt(s.Init),
			Cond: l.expr(s.Cond),
			Post: l.stmt(s.Post),
			Loc:  l.span(s),
		}
		if s.Body != nil {
			out.Body = l.block(s.Body)
		}
		return out

	case *ast.DeclStmt:
		gd, ok := s.Decl.(*ast.GenDecl)
		if !ok || (gd.Tok != gotoken.VAR && gd.Tok != gotoken.CONST) {
			return nil
		}
		var specs []syntax.Node
		for _, sp := range gd.Specs {
			if vs, ok := sp.(*ast.ValueSpec); ok {
				specs = append(specs, l.valueSpec(gd.Tok, vs))
			}
		}
		if len(specs) == 1 {
			return specs[0].(*syntax.ValueSpec)
		}
		return l.opaque("DeclStmt", s, specs...)

	case *ast.RangeStmt:
		return l.opaque("RangeStmt", s, l.node(s.Key), l.node(s.Value), l.node(s.X), l.blockNode(s.Body))

	case *ast.SwitchStmt:
		return l.opaque("SwitchStmt", s, l.stmtNode(s.Init), l.node(s.Tag), l.blockNode(s.Body))

	case *ast.TypeSwitchStmt:
		return l.opaque("TypeSwitchStmt", s, l.stmtNode(s.Init), l.stmtNode(s.Assign), l.blockNode(s.Body))

	case *ast.SelectStmt:
		return l.opaque("SelectStmt", s, l.blockNode(s.Body))

	case *ast.CaseClause:
		nodes := make([]syntax.Node, 0, len(s.List)+len(s.Body))
		for _, e := range s.List {
			nodes = append(nodes, l.node(e))
		}
		for _, b := range s.Body {
			nodes = append(nodes, l.stmtNode(b))
		}
		return l.opaque("CaseClause", s, nodes...)

	case *ast.CommClause:
		nodes := []syntax.Node{l.stmtNode(s.Comm)}
		for _, b := range s.Body {
			nodes = append(nodes, l.stmtNode(b))
		}
		return l.opaque("CommClause", s, nodes...)

	case *ast.IncDecStmt:
		return l.opaque("IncDecStmt", s, l.node(s.X))

	case *ast.SendStmt:
		return l.opaque("SendStmt", s, l.node(s.Chan), l.node(s.Value))

	case *ast.GoStmt:
		return l.opaque("GoStmt", s, l.node(s.Call))

	case *ast.DeferStmt:
		return l.opaque("DeferStmt", s, l.node(s.Call))

	case *ast.LabeledStmt:
		return l.opaque("LabeledStmt", s, l.stmtNode(s.Stmt))

	case *ast.BranchStmt:
		return l.opaque("BranchStmt", s)

	case *ast.EmptyStmt, *ast.BadStmt:
		return nil
	}
	return l.opaque("Stmt", s)
}

// ---------- Expressions ----------

func (l *lowerer) exprs(list []ast.Expr) []syntax.Expr {
	if len(list) == 0 {
		return nil
	}
	out := make([]syntax.Expr, 0, len(list))
	for _, e := range list {
		if x := l.expr(e); x != nil {
			out = append(out, x)
		}
	}
	return out
}

// expr lowers an expression. It returns a nil interface for a nil input.
func (l *lowerer) expr(e ast.Expr) syntax.Expr {
	if e == nil {
		return nil
	}
	switch e := e.(type) {
	case *ast.BasicLit:
		return &syntax.BasicLit{
			Kind:  literalKind(e.Kind),
			Value: e.Value,
			Type:  l.typeOf(e),
			Loc:   l.span(e),
		}

	case *ast.Ident:
		return &syntax.Ident{Name: e.Name, Type: l.typeOf(e), Loc: l.span(e)}

	case *ast.BinaryExpr:
		return &syntax.BinaryExpr{
			Op:    e.Op.String(),
			Left:  l.expr(e.X),
			Right: l.expr(e.Y),
			Type:  l.typeOf(e),
			Loc:   l.span(e),
		}

	case *ast.UnaryExpr:
		return &syntax.UnaryExpr{Op: e.Op.String(), X: l.expr(e.X), Loc: l.span(e)}

	case *ast.ParenExpr:
		return &syntax.ParenExpr{X: l.expr(e.X), Loc: l.span(e)}

	case *ast.SelectorExpr:
		return &syntax.SelectorExpr{X: l.expr(e.X), Sel: e.Sel.Name, Loc: l.span(e)}

	case *ast.CallExpr:
		if sel, ok := ast.Unparen(e.Fun).(*ast.SelectorExpr); ok && l.isMethod(sel) {
			return &syntax.MethodCall{
				Receiver: l.expr(sel.X),
				Method:   sel.Sel.Name,
				Args:     l.exprs(e.Args),
				Type:     l.typeOf(e),
				Loc:      l.span(e),
			}
		}
		return &syntax.CallExpr{
			Fun:  l.expr(e.Fun),
			Args: l.exprs(e.Args),
			Type: l.typeOf(e),
			Loc:  l.span(e),
		}

	case *ast.CompositeLit:
		return &syntax.CompositeLit{Type: l.typeOf(e), Elts: l.exprs(e.Elts), Loc: l.span(e)}

	case *ast.FuncLit:
		return &syntax.FuncLit{Body: l.block(e.Body), Loc: l.span(e)}

	case *ast.KeyValueExpr:
		return l.opaque("KeyValueExpr", e, l.node(e.Key), l.node(e.Value))

	case *ast.IndexExpr:
		return l.opaque("IndexExpr", e, l.node(e.X), l.node(e.Index))

	case *ast.IndexListExpr:
		nodes := []syntax.Node{l.node(e.X)}
		for _, x := range e.Indices {
			nodes = append(nodes, l.node(x))
		}
		return l.opaque("IndexListExpr", e, nodes...)

	case *ast.SliceExpr:
		return l.opaque("SliceExpr", e, l.node(e.X), l.node(e.Low), l.node(e.High), l.node(e.Max))

	case *ast.StarExpr:
		return l.opaque("StarExpr", e, l.node(e.X))

	case *ast.TypeAssertExpr:
		return l.opaque("TypeAssertExpr", e, l.node(e.X))
	}
	// Type expressions (array, map, func, struct types...) have no
	// expressions rules care about.
	return l.opaque("TypeExpr", e)
}

// isMethod reports whether sel, used as a callee, resolves to a method.
func (l *lowerer) isMethod(sel *ast.SelectorExpr) bool {
	if l.info == nil {
		return true
	}
	s, ok := l.info.Selections[sel]
	return ok && s.Kind() == types.MethodVal
}

func (l *lowerer) opaque(label string, n ast.Node, children ...syntax.Node) *syntax.Opaque {
	out := &syntax.Opaque{Label: label, Loc: l.span(n)}
	for _, c := range children {
		if c != nil {
			out.Nodes = append(out.Nodes, c)
		}
	}
	return out
}

// node, stmtNode and blockNode lower optional children to a nil interface
// when absent so that opaque() can drop them.
func (l *lowerer) node(e ast.Expr) syntax.Node {
	if x := l.expr(e); x != nil {
		return x
	}
	return nil
}

func (l *lowerer) stmtNode(s ast.Stmt) syntax.Node {
	if st := l.stmt(s); st != nil {
		return st
	}
	return nil
}

func (l *lowerer) blockNode(b *ast.BlockStmt) syntax.Node {
	if b == nil {
		return nil
	}
	return l.block(b)
}

func literalKind(k gotoken.Token) syntax.LiteralKind {
	switch k {
	case gotoken.INT:
		return syntax.LiteralInt
	case gotoken.FLOAT:
		return syntax.LiteralFloat
	case gotoken.IMAG:
		return syntax.LiteralImag
	case gotoken.CHAR:
		return syntax.LiteralChar
	default:
		return syntax.LiteralString
	}
}
