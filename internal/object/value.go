// Package object defines the runtime values of suro programs, the native
// function table and the scope chain the interpreter evaluates against.
package object

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/you-not-fish/suro/internal/syntax"
)

// Kind identifies the variant of a Value.
type Kind int

const (
	IntegerKind Kind = iota
	StringKind
	BooleanKind
	NullKind
	NativeKind
	FunctionKind
)

var kindNames = [...]string{
	IntegerKind:  "Integer",
	StringKind:   "String",
	BooleanKind:  "Boolean",
	NullKind:     "Null",
	NativeKind:   "NativeFunction",
	FunctionKind: "Function",
}

func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Value is a runtime value. The set of implementations is closed.
type Value interface {
	Kind() Kind
	Inspect() string // debugging representation, e.g. "ab" with quotes
	aValue()
}

// Integer is a 32-bit signed integer value.
type Integer int32

// String is a text value.
type String string

// Boolean is a truth value.
type Boolean bool

// Null is the value of statements that produce nothing.
type Null struct{}

// NativeFunction is a procedure provided by the host.
type NativeFunction struct {
	Name string
	Proc NativeProc
}

// Function is a user-defined function. It holds no environment: free names
// in Body resolve against the scope chain at the point of the call.
type Function struct {
	Params []string
	Body   syntax.Stmt
}

// NullValue is the single Null value.
var NullValue Value = Null{}

func (Integer) Kind() Kind         { return IntegerKind }
func (String) Kind() Kind          { return StringKind }
func (Boolean) Kind() Kind         { return BooleanKind }
func (Null) Kind() Kind            { return NullKind }
func (*NativeFunction) Kind() Kind { return NativeKind }
func (*Function) Kind() Kind       { return FunctionKind }

func (Integer) aValue()         {}
func (String) aValue()          {}
func (Boolean) aValue()         {}
func (Null) aValue()            {}
func (*NativeFunction) aValue() {}
func (*Function) aValue()       {}

func (v Integer) Inspect() string { return strconv.FormatInt(int64(v), 10) }
func (v String) Inspect() string  { return strconv.Quote(string(v)) }
func (v Boolean) Inspect() string { return strconv.FormatBool(bool(v)) }
func (Null) Inspect() string      { return "null" }

func (f *NativeFunction) Inspect() string { return "<native " + f.Name + ">" }

func (f *Function) Inspect() string {
	return "<func(" + strings.Join(f.Params, ", ") + ")>"
}

// Text returns the form print writes for v. Only integers, strings and
// booleans have one.
func Text(v Value) (string, bool) {
	switch v := v.(type) {
	case Integer:
		return v.Inspect(), true
	case String:
		return string(v), true
	case Boolean:
		return v.Inspect(), true
	}
	return "", false
}

// Truthy converts v to a boolean: booleans pass through, integers are true
// when non-zero and strings when non-empty. Other kinds cannot be converted.
func Truthy(v Value) (bool, error) {
	switch v := v.(type) {
	case Boolean:
		return bool(v), nil
	case Integer:
		return v != 0, nil
	case String:
		return v != "", nil
	}
	return false, Errorf(ErrType, "cannot convert %s to Boolean", kindOf(v))
}

// kindOf names the kind of v, tolerating a nil Value.
func kindOf(v Value) string {
	if v == nil {
		return "<nil>"
	}
	return v.Kind().String()
}
