package interp

import (
	"fmt"

	"github.com/you-not-fish/suro/internal/object"
	"github.com/you-not-fish/suro/internal/syntax"
)

// stmt evaluates a statement.
func (in *Interpreter) stmt(s syntax.Stmt) (object.Value, error) {
	switch s := s.(type) {
	case *syntax.BlockStmt:
		return in.block(s)

	case *syntax.AssignStmt:
		return in.assign(s)

	case *syntax.ReturnStmt:
		v, err := in.stmt(s.X)
		if err != nil {
			return nil, err
		}
		return nil, returnSignal{value: v}

	case *syntax.ExprStmt:
		return in.expr(s.X)

	case *syntax.FuncDecl:
		params := make([]string, len(s.Params))
		for i, p := range s.Params {
			params[i] = p.Value
		}
		return &object.Function{Params: params, Body: s.Body}, nil

	case *syntax.CallStmt:
		return in.call(s)

	case *syntax.IfStmt:
		return in.ifStmt(s)

	default:
		return nil, fmt.Errorf("%s: unexpected statement %T", s.Pos(), s)
	}
}

// block evaluates statements in a new frame. A return inside the block
// ends it with the returned value; otherwise the block yields Null.
// The frame is popped on every exit path.
func (in *Interpreter) block(b *syntax.BlockStmt) (_ object.Value, err error) {
	if err := in.push(b.Pos()); err != nil {
		return nil, err
	}
	defer in.pop(&err)

	for _, s := range b.Stmts {
		if _, err := in.stmt(s); err != nil {
			if rs, ok := err.(returnSignal); ok {
				return rs.value, nil
			}
			return nil, err
		}
	}
	return object.NullValue, nil
}

// assign evaluates set and change.
func (in *Interpreter) assign(s *syntax.AssignStmt) (object.Value, error) {
	v, err := in.expr(s.X)
	if err != nil {
		return nil, err
	}

	name := s.Name.Value
	if !s.Change {
		in.scope.Define(name, v)
		return object.NullValue, nil
	}
	if !in.scope.Reassign(name, v) {
		return nil, errorAt(s.Name.Pos(), object.ErrReassign, "cannot change %s: not defined", name)
	}
	return object.NullValue, nil
}

// ifStmt evaluates the first branch whose condition holds, or the final
// else. It yields Null when no branch is taken.
func (in *Interpreter) ifStmt(s *syntax.IfStmt) (object.Value, error) {
	for _, br := range s.Branches {
		if br.Cond != nil {
			c, err := in.stmt(br.Cond)
			if err != nil {
				return nil, err
			}
			ok, err := object.Truthy(c)
			if err != nil {
				return nil, at(br.Cond.Pos(), err)
			}
			if !ok {
				continue
			}
		}
		return in.stmt(br.Then)
	}
	return object.NullValue, nil
}
