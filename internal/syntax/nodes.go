package syntax

// ----------------------------------------------------------------------------
// Interfaces
//
// The grammar treats statements, blocks and calls as interchangeable with
// expressions: a Factor may wrap any Stmt, and a Stmt may hold an additive
// Expr chain. Stmt and Factor are closed sets, enforced by marker methods.

// Node is the interface implemented by all AST nodes.
type Node interface {
	Pos() Pos // position of first character belonging to the node
	aNode()   // marker method to restrict implementations to this package
}

// Stmt is the interface for all statement nodes.
type Stmt interface {
	Node
	aStmt()
}

// Factor is the interface for the operands of a multiplicative chain.
type Factor interface {
	Node
	aFactor()
}

// ----------------------------------------------------------------------------
// Base node types

// node is the base struct embedded in all AST nodes.
type node struct {
	pos Pos
}

func (n *node) Pos() Pos { return n.pos }
func (n *node) aNode()   {}

// stmt is embedded in all statement nodes.
type stmt struct{ node }

func (*stmt) aStmt() {}

// factor is embedded in all factor nodes.
type factor struct{ node }

func (*factor) aFactor() {}

// ----------------------------------------------------------------------------
// Program

// Program is the root of the tree. Body is conventionally a *BlockStmt.
type Program struct {
	node
	Body Stmt
}

// ----------------------------------------------------------------------------
// Statements

// AssignStmt represents "set Name to X" or, with Change set, "change Name to X".
type AssignStmt struct {
	stmt
	Name   *Name
	X      *Expr
	Change bool // reassignment of an existing binding
}

// FuncDecl represents a function literal: func takes (a, b) Body
type FuncDecl struct {
	stmt
	Params []*Name
	Body   Stmt
}

// ReturnStmt represents: return X
type ReturnStmt struct {
	stmt
	X Stmt
}

// ExprStmt represents an additive expression used as a statement.
type ExprStmt struct {
	stmt
	X *Expr
}

// BlockStmt represents a block: { Stmt; ... }
type BlockStmt struct {
	stmt
	Stmts  []Stmt
	Rbrace Pos // position of closing brace
}

// IfStmt represents an if/else-if/else chain.
type IfStmt struct {
	stmt
	Branches []*IfBranch
}

// IfBranch is one arm of an IfStmt. Cond is nil for the final else.
type IfBranch struct {
	node
	Cond Stmt
	Then Stmt
}

// CallStmt represents "call Fun with (Args...)" or "Fun(Args...)".
type CallStmt struct {
	stmt
	Fun  Stmt
	Args []Stmt
}

// ----------------------------------------------------------------------------
// Expression chains

// Expr is an additive chain: Terms[0] Ops[0] Terms[1] ...
// len(Ops) == len(Terms)-1; OpPos holds the operator positions.
type Expr struct {
	node
	Terms []*Term
	Ops   []Token // Add or Sub
	OpPos []Pos
}

// Term is a multiplicative chain: Factors[0] Ops[0] Factors[1] ...
type Term struct {
	node
	Factors []Factor
	Ops     []Token // Mul or Div
	OpPos   []Pos
}

// ----------------------------------------------------------------------------
// Factors

// IntLit represents an integer literal.
type IntLit struct {
	factor
	Value int32
}

// StringLit represents a string literal with its quotes removed.
type StringLit struct {
	factor
	Value string
}

// BoolLit represents true or false.
type BoolLit struct {
	factor
	Value bool
}

// Name represents an identifier.
type Name struct {
	factor
	Value string
}

// StmtFactor wraps a statement used as an operand: a parenthesized
// statement, a block, a call or a function literal.
type StmtFactor struct {
	factor
	S Stmt
}
