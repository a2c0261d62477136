package syntax

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intLit(v string) *BasicLit { return &BasicLit{Kind: LiteralInt, Value: v} }

func TestChildren_BinaryExprOrder(t *testing.T) {
	left := &Ident{Name: "x"}
	right := intLit("0")
	bin := &BinaryExpr{Op: "+", Left: left, Right: right}

	children := Children(bin)
	require.Len(t, children, 2)
	assert.Same(t, left, children[0])
	assert.Same(t, right, children[1])
}

func TestChildren_SkipsAbsent(t *testing.T) {
	ifStmt := &IfStmt{Cond: &Ident{Name: "ok"}, Then: &BlockStmt{}}
	children := Children(ifStmt)
	require.Len(t, children, 2)

	assert.Empty(t, Children(&FuncDecl{Name: "f"}))
	assert.Empty(t, Children(intLit("1")))
	assert.Empty(t, Children(&Ident{Name: "x"}))
}

func TestChildren_MethodCall(t *testing.T) {
	recv := &Ident{Name: "opt"}
	arg := intLit("1")
	call := &MethodCall{Receiver: recv, Method: "unwrap", Args: []Expr{arg}}

	children := Children(call)
	require.Len(t, children, 2)
	assert.Same(t, recv, children[0])
	assert.Same(t, arg, children[1])
}

func TestInspect_PreOrder(t *testing.T) {
	// var a = (1 + 0) + b.unwrap()
	one, zero := intLit("1"), intLit("0")
	inner := &BinaryExpr{Op: "+", Left: one, Right: zero}
	paren := &ParenExpr{X: inner}
	recv := &Ident{Name: "b"}
	call := &MethodCall{Receiver: recv, Method: "unwrap"}
	outer := &BinaryExpr{Op: "+", Left: paren, Right: call}
	spec := &ValueSpec{Keyword: "var", Names: []string{"a"}, Values: []Expr{outer}}
	file := &File{Name: "a.go", Decls: []Decl{spec}}

	var visited []Node
	Inspect(file, func(n Node) bool {
		visited = append(visited, n)
		return true
	})

	want := []Node{file, spec, outer, paren, inner, one, zero, call, recv}
	require.Len(t, visited, len(want))
	for i := range want {
		assert.Same(t, want[i], visited[i], "position %d", i)
	}
	assert.Equal(t, len(want), Count(file))
}

func TestInspect_Prune(t *testing.T) {
	inner := &BinaryExpr{Op: "+", Left: intLit("1"), Right: intLit("2")}
	outer := &UnaryExpr{Op: "-", X: inner}

	var visited int
	Inspect(outer, func(n Node) bool {
		visited++
		_, isBinary := n.(*BinaryExpr)
		return !isBinary
	})
	assert.Equal(t, 2, visited)
}

func TestLiteralKind_String(t *testing.T) {
	assert.Equal(t, "int", LiteralInt.String())
	assert.Equal(t, "string", LiteralString.String())
	assert.Equal(t, "unknown", LiteralKind(99).String())
}
