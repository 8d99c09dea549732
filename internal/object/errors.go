package object

import (
	"errors"
	"fmt"

	"github.com/you-not-fish/suro/internal/syntax"
)

// ErrorKind classifies runtime errors.
type ErrorKind int

const (
	ErrUnresolved  ErrorKind = iota + 1 // name not bound in any frame
	ErrReassign                         // change of a name no frame defines
	ErrType                             // operand, argument or conversion of the wrong kind
	ErrArithmetic                       // division by zero, negative repeat count
	ErrNotCallable                      // call target is not a function
	ErrScope                            // unbalanced frame handling
)

var errorKindNames = [...]string{
	ErrUnresolved:  "unresolved identifier",
	ErrReassign:    "reassignment of undefined",
	ErrType:        "type mismatch",
	ErrArithmetic:  "arithmetic error",
	ErrNotCallable: "not callable",
	ErrScope:       "scope error",
}

func (k ErrorKind) String() string {
	if k > 0 && int(k) < len(errorKindNames) {
		return errorKindNames[k]
	}
	return fmt.Sprintf("error kind(%d)", int(k))
}

// RuntimeError is an error raised while evaluating a program.
// Every runtime error aborts the evaluation.
type RuntimeError struct {
	Kind ErrorKind
	Pos  syntax.Pos // zero if unknown
	Msg  string
}

// Error implements the error interface.
func (e *RuntimeError) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s: %s: %s", e.Pos, e.Kind, e.Msg)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

// Errorf returns a RuntimeError of the given kind without a position.
// The interpreter attaches the position of the node being evaluated.
func Errorf(kind ErrorKind, format string, args ...interface{}) *RuntimeError {
	return &RuntimeError{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// IsKind reports whether err is a RuntimeError of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var rerr *RuntimeError
	return errors.As(err, &rerr) && rerr.Kind == kind
}
