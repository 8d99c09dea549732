package interp

import (
	"fmt"
	"strings"

	"github.com/you-not-fish/suro/internal/object"
	"github.com/you-not-fish/suro/internal/syntax"
)

// maxStringLen bounds the result of string repetition.
const maxStringLen = 1 << 28

// expr folds an additive chain left to right.
func (in *Interpreter) expr(x *syntax.Expr) (object.Value, error) {
	acc, err := in.term(x.Terms[0])
	if err != nil {
		return nil, err
	}
	for i, op := range x.Ops {
		rhs, err := in.term(x.Terms[i+1])
		if err != nil {
			return nil, err
		}
		if acc, err = binary(op, acc, rhs); err != nil {
			return nil, at(x.OpPos[i], err)
		}
	}
	return acc, nil
}

// term folds a multiplicative chain left to right.
func (in *Interpreter) term(t *syntax.Term) (object.Value, error) {
	acc, err := in.factor(t.Factors[0])
	if err != nil {
		return nil, err
	}
	for i, op := range t.Ops {
		rhs, err := in.factor(t.Factors[i+1])
		if err != nil {
			return nil, err
		}
		if acc, err = binary(op, acc, rhs); err != nil {
			return nil, at(t.OpPos[i], err)
		}
	}
	return acc, nil
}

// factor evaluates a single operand.
func (in *Interpreter) factor(f syntax.Factor) (object.Value, error) {
	switch f := f.(type) {
	case *syntax.IntLit:
		return object.Integer(f.Value), nil

	case *syntax.StringLit:
		return object.String(f.Value), nil

	case *syntax.BoolLit:
		return object.Boolean(f.Value), nil

	case *syntax.Name:
		v, ok := in.scope.Lookup(f.Value)
		if !ok {
			return nil, errorAt(f.Pos(), object.ErrUnresolved, "%s is not defined", f.Value)
		}
		return v, nil

	case *syntax.StmtFactor:
		return in.stmt(f.S)

	default:
		return nil, fmt.Errorf("%s: unexpected operand %T", f.Pos(), f)
	}
}

// binary applies a chain operator.
//
//	Integer op Integer  32-bit arithmetic, wrapping; / truncates
//	String + String     concatenation
//	String * Integer    repetition
//
// Every other combination is a type mismatch.
func binary(op syntax.Token, x, y object.Value) (object.Value, error) {
	switch x := x.(type) {
	case object.Integer:
		if y, ok := y.(object.Integer); ok {
			return intOp(op, x, y)
		}

	case object.String:
		switch y := y.(type) {
		case object.String:
			if op == syntax.Add {
				return x + y, nil
			}
		case object.Integer:
			if op == syntax.Mul {
				return repeat(x, y)
			}
		}
	}
	return nil, object.Errorf(object.ErrType, "unsupported operation %s %s %s", kindName(x), op, kindName(y))
}

func intOp(op syntax.Token, x, y object.Integer) (object.Value, error) {
	switch op {
	case syntax.Add:
		return x + y, nil
	case syntax.Sub:
		return x - y, nil
	case syntax.Mul:
		return x * y, nil
	case syntax.Div:
		if y == 0 {
			return nil, object.Errorf(object.ErrArithmetic, "division by zero")
		}
		return x / y, nil
	}
	return nil, object.Errorf(object.ErrType, "unsupported operation Integer %s Integer", op)
}

func repeat(s object.String, n object.Integer) (object.Value, error) {
	if n < 0 {
		return nil, object.Errorf(object.ErrArithmetic, "cannot repeat a string %d times", n)
	}
	if len(s) > 0 && int(n) > maxStringLen/len(s) {
		return nil, object.Errorf(object.ErrArithmetic, "repeated string exceeds %d bytes", maxStringLen)
	}
	return object.String(strings.Repeat(string(s), int(n))), nil
}

func kindName(v object.Value) string {
	if v == nil {
		return "<nil>"
	}
	return v.Kind().String()
}
