// Package apperr carries the closed set of error kinds the domain can
// raise. The HTTP layer maps kinds to status codes; everything below it
// works with kinds only.
package apperr

import "errors"

type Kind int

const (
	AccountNotFound Kind = iota + 1
	MovementNotFound
	InvalidAmount
	InsufficientFunds
	ValidationFailed
	PersistenceFailure
)

func (k Kind) String() string {
	switch k {
	case AccountNotFound:
		return "account not found"
	case MovementNotFound:
		return "movement not found"
	case InvalidAmount:
		return "invalid amount"
	case InsufficientFunds:
		return "insufficient funds"
	case ValidationFailed:
		return "validation failed"
	case PersistenceFailure:
		return "persistence failure"
	default:
		return "unknown"
	}
}

type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

func New(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Msg: msg}
}

func Wrap(kind Kind, msg string, err error) *Error {
	return &Error{Kind: kind, Msg: msg, Err: err}
}

// KindOf reports the kind of err, or 0 when err carries no kind.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}
