package domain

import "fmt"

type ErrorCode uint

const (
	ErrUnknown ErrorCode = iota
	ErrInternalServerError
	ErrNotFound
	ErrConflict
	ErrBadParamInput
	ErrUnauthorized
	ErrUpstream
)

const (
	MessageInternalServerError = "internal server error"
	MessageBadRequest          = "bad request"
	MessageUnauthorized        = "unauthorized"
	MessagePanelUnreachable    = "1panel api unreachable"
)

// Error carries a machine-usable code next to the wrapped cause so the
// router and the command handlers can decide how to render it.
type Error struct {
	orig error
	code ErrorCode
	msg  string
}

func (e *Error) Error() string {
	if e.orig != nil {
		return fmt.Sprintf("%s: %v", e.msg, e.orig)
	}
	return e.msg
}

func (e *Error) Code() ErrorCode {
	return e.code
}

func (e *Error) Unwrap() error {
	return e.orig
}

func WrapErrorf(orig error, code ErrorCode, format string, a ...interface{}) error {
	return &Error{
		orig: orig,
		code: code,
		msg:  fmt.Sprintf(format, a...),
	}
}

func NewErrorf(code ErrorCode, format string, a ...interface{}) error {
	return WrapErrorf(nil, code, format, a...)
}
