// Package exitcode maps command errors to process exit codes and prints
// them the same way for every binary.
package exitcode

import (
	"errors"
	"io"
	"strings"
)

const (
	// Success is the exit code of a run without error.
	Success = 0
	// Failure is the exit code of validation errors and of any error that
	// carries no code of its own.
	Failure = 1
)

type exitCoder interface {
	ExitCode() int
}

// Error carries an exit code and an optional hint line printed after the
// message.
type Error struct {
	Code int
	Err  error
	Hint string
}

// New wraps err with Failure as its exit code.
func New(err error) *Error {
	return &Error{Code: Failure, Err: err}
}

func (e *Error) Error() string { return e.Err.Error() }
func (e *Error) Unwrap() error { return e.Err }
func (e *Error) ExitCode() int { return e.Code }

// WithHint sets the hint line.
func (e *Error) WithHint(hint string) *Error {
	e.Hint = hint
	return e
}

// UsageError is printed verbatim, keeping its line breaks.
type UsageError struct {
	Text string
}

func (e *UsageError) Error() string { return e.Text }
func (e *UsageError) ExitCode() int { return Failure }

// Report writes err to w and returns the exit code to use. A nil error
// writes nothing and returns Success.
func Report(w io.Writer, err error) int {
	if err == nil {
		return Success
	}
	var ue *UsageError
	if errors.As(err, &ue) {
		_, _ = io.WriteString(w, strings.TrimRight(ue.Text, "\n")+"\n")
		return codeOf(err)
	}
	// Short single-line message; no usage or stack traces.
	msg := strings.Join(strings.Fields(err.Error()), " ")
	if msg == "" {
		msg = "error"
	}
	_, _ = io.WriteString(w, "Error: "+msg+"\n")
	var ee *Error
	if errors.As(err, &ee) && ee.Hint != "" {
		_, _ = io.WriteString(w, ee.Hint+"\n")
	}
	return codeOf(err)
}

func codeOf(err error) int {
	var ec exitCoder
	if errors.As(err, &ec) {
		if c := ec.ExitCode(); c != 0 {
			return c
		}
	}
	return Failure
}
