package object

import (
	"fmt"
	"io"
	"sort"
)

// CallContext carries the host resources a native procedure may use.
type CallContext struct {
	Stdout io.Writer
}

// NativeProc implements a native function. Errors it returns abort the
// evaluation; a *RuntimeError is given the position of the call.
type NativeProc func(ctx *CallContext, args []Value) (Value, error)

// Natives is a table of native functions used to seed the root frame.
// A table is never modified once built; With returns an extended copy.
type Natives struct {
	procs map[string]*NativeFunction
}

var defaultNatives = (&Natives{}).
	With("print", nativePrint).
	With("to_bool", nativeToBool)

// DefaultNatives returns the table every interpreter starts with:
// print and to_bool.
func DefaultNatives() *Natives {
	return defaultNatives
}

// With returns a copy of n with name bound to proc, replacing any
// existing entry of that name.
func (n *Natives) With(name string, proc NativeProc) *Natives {
	procs := make(map[string]*NativeFunction, len(n.procs)+1)
	for k, v := range n.procs {
		procs[k] = v
	}
	procs[name] = &NativeFunction{Name: name, Proc: proc}
	return &Natives{procs: procs}
}

// Lookup returns the native function bound to name.
func (n *Natives) Lookup(name string) (*NativeFunction, bool) {
	f, ok := n.procs[name]
	return f, ok
}

// Names returns the names in the table, sorted.
func (n *Natives) Names() []string {
	names := make([]string, 0, len(n.procs))
	for name := range n.procs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of entries.
func (n *Natives) Len() int {
	return len(n.procs)
}

// nativePrint writes the text form of each argument on its own line.
func nativePrint(ctx *CallContext, args []Value) (Value, error) {
	for _, arg := range args {
		text, ok := Text(arg)
		if !ok {
			return nil, Errorf(ErrType, "print: cannot print %s", kindOf(arg))
		}
		if _, err := fmt.Fprintln(ctx.Stdout, text); err != nil {
			return nil, fmt.Errorf("print: %w", err)
		}
	}
	return NullValue, nil
}

// nativeToBool converts its single argument to a Boolean.
func nativeToBool(_ *CallContext, args []Value) (Value, error) {
	if len(args) != 1 {
		return nil, Errorf(ErrType, "to_bool: want 1 argument, got %d", len(args))
	}
	b, err := Truthy(args[0])
	if err != nil {
		return nil, err
	}
	return Boolean(b), nil
}
