package syntax

import (
	"encoding/json"
	"io"
)

// FprintJSON writes a JSON representation of the AST to w.
// Unlike Fprint, every chain node is kept so the output mirrors the tree.
func FprintJSON(w io.Writer, node Node) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(toJSON(node))
}

func toJSON(node Node) interface{} {
	if node == nil {
		return nil
	}

	switch n := node.(type) {
	case *Program:
		return map[string]interface{}{
			"type": "Program",
			"pos":  n.pos.String(),
			"body": toJSON(n.Body),
		}

	case *BlockStmt:
		return map[string]interface{}{
			"type":  "BlockStmt",
			"pos":   n.pos.String(),
			"stmts": mapSlice(n.Stmts, stmtJSON),
		}

	case *AssignStmt:
		return map[string]interface{}{
			"type":   "AssignStmt",
			"pos":    n.pos.String(),
			"change": n.Change,
			"name":   n.Name.Value,
			"value":  toJSON(n.X),
		}

	case *ReturnStmt:
		return map[string]interface{}{
			"type":  "ReturnStmt",
			"pos":   n.pos.String(),
			"value": toJSON(n.X),
		}

	case *ExprStmt:
		return map[string]interface{}{
			"type": "ExprStmt",
			"pos":  n.pos.String(),
			"x":    toJSON(n.X),
		}

	case *IfStmt:
		return map[string]interface{}{
			"type": "IfStmt",
			"pos":  n.pos.String(),
			"branches": mapSlice(n.Branches, func(br *IfBranch) interface{} {
				return toJSON(br)
			}),
		}

	case *IfBranch:
		m := map[string]interface{}{
			"type": "IfBranch",
			"pos":  n.pos.String(),
			"then": toJSON(n.Then),
		}
		if n.Cond != nil {
			m["cond"] = toJSON(n.Cond)
		}
		return m

	case *CallStmt:
		return map[string]interface{}{
			"type": "CallStmt",
			"pos":  n.pos.String(),
			"fun":  toJSON(n.Fun),
			"args": mapSlice(n.Args, stmtJSON),
		}

	case *FuncDecl:
		return map[string]interface{}{
			"type":   "FuncDecl",
			"pos":    n.pos.String(),
			"params": mapSlice(n.Params, func(p *Name) interface{} { return p.Value }),
			"body":   toJSON(n.Body),
		}

	case *Expr:
		return map[string]interface{}{
			"type":  "Expr",
			"pos":   n.pos.String(),
			"terms": mapSlice(n.Terms, func(t *Term) interface{} { return toJSON(t) }),
			"ops":   mapSlice(n.Ops, opJSON),
		}

	case *Term:
		return map[string]interface{}{
			"type":    "Term",
			"pos":     n.pos.String(),
			"factors": mapSlice(n.Factors, func(f Factor) interface{} { return toJSON(f) }),
			"ops":     mapSlice(n.Ops, opJSON),
		}

	case *StmtFactor:
		return toJSON(n.S)

	case *Name:
		return map[string]interface{}{
			"type":  "Name",
			"pos":   n.pos.String(),
			"value": n.Value,
		}

	case *IntLit:
		return map[string]interface{}{
			"type":  "IntLit",
			"pos":   n.pos.String(),
			"value": n.Value,
		}

	case *StringLit:
		return map[string]interface{}{
			"type":  "StringLit",
			"pos":   n.pos.String(),
			"value": n.Value,
		}

	case *BoolLit:
		return map[string]interface{}{
			"type":  "BoolLit",
			"pos":   n.pos.String(),
			"value": n.Value,
		}

	default:
		return map[string]interface{}{
			"type": "Unknown",
		}
	}
}

func stmtJSON(s Stmt) interface{} { return toJSON(s) }

func opJSON(op Token) interface{} { return op.String() }

func mapSlice[T any](s []T, f func(T) interface{}) []interface{} {
	result := make([]interface{}, len(s))
	for i, v := range s {
		result[i] = f(v)
	}
	return result
}
