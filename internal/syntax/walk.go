package syntax

// Visitor is called for each node during Walk.
// If it returns false, the children of the node are not visited.
type Visitor func(node Node) bool

// Walk traverses an AST in depth-first order.
// If visitor returns false, children are not visited.
func Walk(node Node, v Visitor) {
	if node == nil || !v(node) {
		return
	}

	switch n := node.(type) {
	case *Program:
		Walk(n.Body, v)

	case *BlockStmt:
		for _, s := range n.Stmts {
			Walk(s, v)
		}

	case *AssignStmt:
		Walk(n.Name, v)
		Walk(n.X, v)

	case *ReturnStmt:
		Walk(n.X, v)

	case *ExprStmt:
		Walk(n.X, v)

	case *IfStmt:
		for _, br := range n.Branches {
			Walk(br, v)
		}

	case *IfBranch:
		if n.Cond != nil {
			Walk(n.Cond, v)
		}
		Walk(n.Then, v)

	case *CallStmt:
		Walk(n.Fun, v)
		for _, a := range n.Args {
			Walk(a, v)
		}

	case *FuncDecl:
		for _, p := range n.Params {
			Walk(p, v)
		}
		Walk(n.Body, v)

	case *Expr:
		for _, t := range n.Terms {
			Walk(t, v)
		}

	case *Term:
		for _, f := range n.Factors {
			Walk(f, v)
		}

	case *StmtFactor:
		Walk(n.S, v)

	// Leaf nodes: Name, IntLit, StringLit, BoolLit
	// No children to visit
	}
}

// Inspect traverses an AST and calls f for each node.
// Convenience wrapper around Walk.
func Inspect(node Node, f func(Node) bool) {
	Walk(node, Visitor(f))
}

// CountNodes returns the number of nodes in the tree rooted at node.
func CountNodes(node Node) int {
	n := 0
	Inspect(node, func(Node) bool {
		n++
		return true
	})
	return n
}
