package syntax

// Children returns the direct children of node in natural left-to-right
// source order (for a binary expression: left operand, then right operand).
// Absent optional children are omitted.
func Children(node Node) []Node {
	var out []Node
	add := func(n Node) {
		if n != nil {
			out = append(out, n)
		}
	}

	switch n := node.(type) {
	case *File:
		for _, d := range n.Decls {
			add(d)
		}

	case *FuncDecl:
		if n.Body != nil {
			add(n.Body)
		}

	case *ValueSpec:
		for _, v := range n.Values {
			add(v)
		}

	case *BlockStmt:
		for _, s := range n.List {
			add(s)
		}

	case *ExprStmt:
		add(n.X)

	case *AssignStmt:
		for _, e := range n.LHS {
			add(e)
		}
		for _, e := range n.RHS {
			add(e)
		}

	case *ReturnStmt:
		for _, e := range n.Results {
			add(e)
		}

	case *IfStmt:
		add(n.Init)
		add(n.Cond)
		if n.Then != nil {
			add(n.Then)
		}
		add(n.Else)

	case *ForStmt:
		add(n.Init)
		add(n.Cond)
		add(n.Post)
		if n.Body != nil {
			add(n.Body)
		}

	case *BinaryExpr:
		add(n.Left)
		add(n.Right)

	case *UnaryExpr:
		add(n.X)

	case *ParenExpr:
		add(n.X)

	case *SelectorExpr:
		add(n.X)

	case *MethodCall:
		add(n.Receiver)
		for _, a := range n.Args {
			add(a)
		}

	case *CallExpr:
		add(n.Fun)
		for _, a := range n.Args {
			add(a)
		}

	case *CompositeLit:
		for _, e := range n.Elts {
			add(e)
		}

	case *FuncLit:
		if n.Body != nil {
			add(n.Body)
		}

	case *Opaque:
		for _, c := range n.Nodes {
			add(c)
		}

	case *BasicLit, *Ident:
		// Leaf nodes
	}

	return out
}

// Inspect traverses the tree rooted at node in pre-order, calling fn for each
// node. If fn returns false, the children of that node are skipped.
func Inspect(node Node, fn func(Node) bool) {
	if node == nil {
		return
	}
	if !fn(node) {
		return
	}
	for _, c := range Children(node) {
		Inspect(c, fn)
	}
}

// Count returns the number of nodes in the tree rooted at node.
func Count(node Node) int {
	n := 0
	Inspect(node, func(Node) bool {
		n++
		return true
	})
	return n
}
