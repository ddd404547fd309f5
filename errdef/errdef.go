// Package errdef provides the base type for the module's sentinel errors.
package errdef

import (
	"fmt"
)

// Error is a sentinel error that concrete failures can be attached to.
type Error struct {
	msg string
}

// New creates a new sentinel error.
func New(msg string) *Error {
	return &Error{msg: msg}
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.msg
}

// Wrap attaches err under this sentinel. The result renders as
// "sentinel: err" and matches both through errors.Is.
func (e *Error) Wrap(err error) error {
	return &chain{
		sentinel: e,
		cause:    err,
	}
}

// Wrapf is a shortcut for Wrap(fmt.Errorf("...", ...)).
func (e *Error) Wrapf(msg string, args ...any) error {
	return &chain{
		sentinel: e,
		cause:    fmt.Errorf(msg, args...), //nolint:goerr113
	}
}

type chain struct {
	sentinel *Error
	cause    error
}

func (c *chain) Error() string {
	return c.sentinel.Error() + ": " + c.cause.Error()
}

func (c *chain) Is(err error) bool {
	if err == nil {
		return false
	}
	return error(c.sentinel) == err //nolint:goerr113
}

func (c *chain) Unwrap() error {
	return c.cause
}
