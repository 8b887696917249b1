package fishrambeta

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import "fmt"

// --- A general purpose error type ------------------------------------------

// ErrorKind is a category for errors. Every error returned by an operation of
// this module carries one of these kinds.
type ErrorKind int8

// Error categories. None of them is retryable: every operation is deterministic,
// so repeating a call with identical input yields the identical error.
const (
	NoError               ErrorKind = iota
	MalformedInput                  // unbalanced brackets, empty operands, bad literals
	Unsupported                     // recognized but unimplemented construct, e.g. \int
	UnboundVariable                 // evaluation met a name without a value
	InvalidOperation                // e.g., numerically evaluating an equation
	PreconditionViolation           // e.g., removing a factor which is not a factor
)

func (k ErrorKind) String() string {
	switch k {
	case MalformedInput:
		return "malformed input"
	case Unsupported:
		return "unsupported construct"
	case UnboundVariable:
		return "unbound variable"
	case InvalidOperation:
		return "invalid operation"
	case PreconditionViolation:
		return "precondition violation"
	}
	return "no error"
}

// Error is the error type of this module. Clients may test for a category with
// errors.Is, using one of the sentinel errors:
//
//    _, err := latex.Parse(`\int_0^1 x`, true)
//    if errors.Is(err, fishrambeta.ErrUnsupported) { … }
//
type Error struct {
	Kind ErrorKind
	Msg  string
}

// Sentinel errors, one for each error kind.
var (
	ErrMalformedInput        = &Error{Kind: MalformedInput}
	ErrUnsupported           = &Error{Kind: Unsupported}
	ErrUnboundVariable       = &Error{Kind: UnboundVariable}
	ErrInvalidOperation      = &Error{Kind: InvalidOperation}
	ErrPreconditionViolation = &Error{Kind: PreconditionViolation}
)

// Errorf creates an error of a given kind, with a formatted message.
func Errorf(kind ErrorKind, format string, args ...interface{}) error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

func (e *Error) Error() string {
	if e.Msg == "" {
		return e.Kind.String()
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

// Is matches errors of the same kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// KindOf returns the error kind of err, or NoError if err is not
// (and does not wrap) an *Error.
func KindOf(err error) ErrorKind {
	for err != nil {
		if e, ok := err.(*Error); ok {
			return e.Kind
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			break
		}
		err = u.Unwrap()
	}
	return NoError
}
