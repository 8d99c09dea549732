package syntax

import (
	"fmt"
	"io"
	"strings"
)

// Fprint writes a textual representation of the AST to w.
// Chains holding a single operand are printed as that operand.
func Fprint(w io.Writer, node Node) {
	p := &printer{w: w}
	p.print(node)
}

type printer struct {
	w      io.Writer
	indent int
}

func (p *printer) printf(format string, args ...interface{}) {
	fmt.Fprintf(p.w, "%s%s", strings.Repeat("  ", p.indent), fmt.Sprintf(format, args...))
}

// field prints a labelled child one level deeper.
func (p *printer) field(label string, n Node) {
	p.printf("%s:\n", label)
	p.indent++
	p.print(n)
	p.indent--
}

func (p *printer) print(node Node) {
	if node == nil {
		return
	}

	switch n := node.(type) {
	case *Program:
		p.printf("Program %s\n", n.pos)
		p.indent++
		p.print(n.Body)
		p.indent--

	case *BlockStmt:
		p.printf("BlockStmt %s\n", n.pos)
		p.indent++
		for _, s := range n.Stmts {
			p.print(s)
		}
		p.indent--

	case *AssignStmt:
		kind := "set"
		if n.Change {
			kind = "change"
		}
		p.printf("AssignStmt %s\n", n.pos)
		p.indent++
		p.printf("Kind: %s\n", kind)
		p.printf("Name: %s\n", n.Name.Value)
		p.field("Value", n.X)
		p.indent--

	case *ReturnStmt:
		p.printf("ReturnStmt %s\n", n.pos)
		p.indent++
		p.print(n.X)
		p.indent--

	case *ExprStmt:
		p.print(n.X)

	case *IfStmt:
		p.printf("IfStmt %s\n", n.pos)
		p.indent++
		for _, br := range n.Branches {
			p.print(br)
		}
		p.indent--

	case *IfBranch:
		if n.Cond == nil {
			p.field("Else", n.Then)
			return
		}
		p.field("Cond", n.Cond)
		p.field("Then", n.Then)

	case *CallStmt:
		p.printf("CallStmt %s\n", n.pos)
		p.indent++
		p.field("Fun", n.Fun)
		if len(n.Args) > 0 {
			p.printf("Args:\n")
			p.indent++
			for _, a := range n.Args {
				p.print(a)
			}
			p.indent--
		}
		p.indent--

	case *FuncDecl:
		p.printf("FuncDecl %s\n", n.pos)
		p.indent++
		if len(n.Params) > 0 {
			names := make([]string, len(n.Params))
			for i, param := range n.Params {
				names[i] = param.Value
			}
			p.printf("Params: %s\n", strings.Join(names, ", "))
		}
		p.field("Body", n.Body)
		p.indent--

	case *Expr:
		if len(n.Terms) == 1 {
			p.print(n.Terms[0])
			return
		}
		p.printf("Expr %s\n", n.pos)
		p.indent++
		p.print(n.Terms[0])
		for i, op := range n.Ops {
			p.printf("Op: %s\n", op)
			p.print(n.Terms[i+1])
		}
		p.indent--

	case *Term:
		if len(n.Factors) == 1 {
			p.print(n.Factors[0])
			return
		}
		p.printf("Term %s\n", n.pos)
		p.indent++
		p.print(n.Factors[0])
		for i, op := range n.Ops {
			p.printf("Op: %s\n", op)
			p.print(n.Factors[i+1])
		}
		p.indent--

	case *StmtFactor:
		p.print(n.S)

	case *Name:
		p.printf("Name %s %s\n", n.Value, n.pos)

	case *IntLit:
		p.printf("IntLit %d %s\n", n.Value, n.pos)

	case *StringLit:
		p.printf("StringLit %q %s\n", n.Value, n.pos)

	case *BoolLit:
		p.printf("BoolLit %t %s\n", n.Value, n.pos)

	default:
		p.printf("Unknown node %T\n", n)
	}
}
