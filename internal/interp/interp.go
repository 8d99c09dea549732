// Package interp evaluates suro programs by walking their syntax tree.
package interp

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/you-not-fish/suro/internal/object"
	"github.com/you-not-fish/suro/internal/syntax"
)

// DefaultMaxDepth is the frame limit used when Config.MaxDepth is zero.
const DefaultMaxDepth = 10000

// Config specifies the configuration for evaluation.
type Config struct {
	// Stdout receives the output of print.
	// If nil, os.Stdout is used.
	Stdout io.Writer

	// Natives seeds the root frame.
	// If nil, object.DefaultNatives() is used.
	Natives *object.Natives

	// MaxDepth bounds the number of live frames, which bounds recursion.
	// Zero means DefaultMaxDepth; a negative value disables the limit.
	MaxDepth int
}

// Interpreter evaluates programs against a scope chain. The root frame
// survives between calls to Eval, so definitions made by one program are
// visible to the next.
type Interpreter struct {
	conf  Config
	scope *object.Scope
	ctx   *object.CallContext
}

// New creates an Interpreter. conf may be nil.
func New(conf *Config) *Interpreter {
	var c Config
	if conf != nil {
		c = *conf
	}
	if c.Stdout == nil {
		c.Stdout = os.Stdout
	}
	if c.Natives == nil {
		c.Natives = object.DefaultNatives()
	}
	if c.MaxDepth == 0 {
		c.MaxDepth = DefaultMaxDepth
	}
	return &Interpreter{
		conf:  c,
		scope: object.NewRootScope(c.Natives),
		ctx:   &object.CallContext{Stdout: c.Stdout},
	}
}

// Scope returns the interpreter's scope chain.
func (in *Interpreter) Scope() *object.Scope {
	return in.scope
}

// Eval evaluates prog and returns its value. A return that no block
// consumes makes the returned value the program's value.
func (in *Interpreter) Eval(prog *syntax.Program) (object.Value, error) {
	v, err := in.stmt(prog.Body)
	if rs, ok := err.(returnSignal); ok {
		v, err = rs.value, nil
	}
	if err != nil {
		return nil, err
	}
	if d := in.scope.Depth(); d != 1 {
		return nil, object.Errorf(object.ErrScope, "%d frames left on the stack after evaluation", d-1)
	}
	return v, nil
}

// Evaluate evaluates prog in a fresh interpreter.
func Evaluate(prog *syntax.Program, conf *Config) (object.Value, error) {
	return New(conf).Eval(prog)
}

// Run tokenizes, parses and evaluates src.
func Run(filename, src string, conf *Config) (object.Value, error) {
	prog, err := syntax.Parse(filename, src)
	if err != nil {
		return nil, err
	}
	return Evaluate(prog, conf)
}

// returnSignal carries the value of a return statement up to the block,
// function call or program that consumes it.
type returnSignal struct {
	value object.Value
}

func (r returnSignal) Error() string {
	return "return"
}

// push enters a new frame, enforcing the depth limit.
func (in *Interpreter) push(pos syntax.Pos) error {
	if in.conf.MaxDepth > 0 && in.scope.Depth() >= in.conf.MaxDepth {
		return errorAt(pos, object.ErrScope, "frame limit of %d exceeded", in.conf.MaxDepth)
	}
	in.scope.Push()
	return nil
}

// pop leaves the current frame. It is deferred by every push site, so err
// is only replaced when evaluation itself succeeded.
func (in *Interpreter) pop(err *error) {
	if perr := in.scope.Pop(); perr != nil && *err == nil {
		*err = perr
	}
}

// errorAt returns a RuntimeError at pos.
func errorAt(pos syntax.Pos, kind object.ErrorKind, format string, args ...interface{}) error {
	return &object.RuntimeError{Kind: kind, Pos: pos, Msg: fmt.Sprintf(format, args...)}
}

// at attaches pos to err if it is a RuntimeError without a position.
func at(pos syntax.Pos, err error) error {
	var rerr *object.RuntimeError
	if errors.As(err, &rerr) && !rerr.Pos.IsValid() {
		rerr.Pos = pos
	}
	return err
}
