package interp

import (
	"github.com/you-not-fish/suro/internal/object"
	"github.com/you-not-fish/suro/internal/syntax"
)

// call evaluates the callee, then the arguments left to right, then
// invokes the callee.
func (in *Interpreter) call(c *syntax.CallStmt) (object.Value, error) {
	callee, err := in.stmt(c.Fun)
	if err != nil {
		return nil, err
	}

	switch fn := callee.(type) {
	case *object.NativeFunction:
		args, err := in.args(c.Args)
		if err != nil {
			return nil, err
		}
		v, err := fn.Proc(in.ctx, args)
		if err != nil {
			return nil, at(c.Pos(), err)
		}
		return v, nil

	case *object.Function:
		args, err := in.args(c.Args)
		if err != nil {
			return nil, err
		}
		if len(args) != len(fn.Params) {
			return nil, errorAt(c.Pos(), object.ErrType, "%s takes %d arguments, got %d",
				fn.Inspect(), len(fn.Params), len(args))
		}
		return in.apply(c.Pos(), fn, args)

	default:
		return nil, errorAt(c.Pos(), object.ErrNotCallable, "cannot call %s", kindName(callee))
	}
}

func (in *Interpreter) args(list []syntax.Stmt) ([]object.Value, error) {
	args := make([]object.Value, 0, len(list))
	for _, a := range list {
		v, err := in.stmt(a)
		if err != nil {
			return nil, err
		}
		args = append(args, v)
	}
	return args, nil
}

// apply runs a user function. Parameters are bound in one new frame on top
// of the caller's frames, so names the body does not bind resolve in the
// caller's scope. A return anywhere outside a nested block ends the call.
func (in *Interpreter) apply(pos syntax.Pos, fn *object.Function, args []object.Value) (_ object.Value, err error) {
	if err := in.push(pos); err != nil {
		return nil, err
	}
	defer in.pop(&err)

	for i, name := range fn.Params {
		in.scope.Define(name, args[i])
	}
	v, err := in.stmt(fn.Body)
	if rs, ok := err.(returnSignal); ok {
		return rs.value, nil
	}
	return v, err
}
