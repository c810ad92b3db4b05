package apperrors

import (
	"errors"
	"strings"
)

// appError is the concrete Error implementation. Derivation methods never
// mutate the receiver; each returns a new value so sentinels stay immutable.
type appError struct {
	msg         string
	base        error   // template error, drives errors.Is
	causes      []error // attached causes
	statuscode  int
	expandError bool
}

func (e *appError) Error() string {
	return e.msg
}

// ErrorAll returns the message followed by all attached causes when
// expansion is enabled, otherwise just the message.
func (e *appError) ErrorAll() string {
	if !e.expandError {
		return e.Error()
	}
	var b strings.Builder
	b.WriteString(e.msg)
	for _, err := range e.causes {
		if err == e.base {
			// the template is kept in causes for errors.Is; don't repeat it
			continue
		}
		b.WriteString("; ")
		b.WriteString(err.Error())
	}
	return b.String()
}

func (e *appError) Unwrap() error {
	return e.base
}

func (e *appError) UnwrapAll() []error {
	return e.causes
}

// New derives a fresh error from the receiver. The result matches the
// receiver under errors.Is and inherits its status code.
func (e *appError) New(msg string) Error {
	return &appError{
		msg:        msg,
		base:       e,
		statuscode: e.statuscode,
	}
}

// Msg derives an error with a replacement message, wrapping the receiver.
func (e *appError) Msg(msg string) Error {
	return &appError{
		msg:         msg,
		base:        e,
		causes:      append([]error{e}, e.causes...),
		statuscode:  e.statuscode,
		expandError: e.expandError,
	}
}

// MsgErr derives an error with a replacement message and extra causes.
func (e *appError) MsgErr(msg string, errs ...error) Error {
	return &appError{
		msg:         msg,
		base:        e,
		causes:      append([]error{e}, errs...),
		statuscode:  e.statuscode,
		expandError: e.expandError,
	}
}

// Err attaches causes to the receiver without changing its message.
func (e *appError) Err(errs ...error) Error {
	return &appError{
		msg:         e.msg,
		base:        e,
		causes:      append([]error{e}, errs...),
		statuscode:  e.statuscode,
		expandError: e.expandError,
	}
}

func (e *appError) SetExpandError(flag bool) Error {
	cp := *e
	cp.expandError = flag
	return &cp
}

func (e *appError) SetStatusCode(code int) Error {
	cp := *e
	cp.statuscode = code
	return &cp
}

func (e *appError) StatusCode() int {
	return e.statuscode
}

// Is reports whether target appears anywhere in the template chain or the
// attached causes.
func (e *appError) Is(target error) bool {
	if target == nil {
		return false
	}
	if errors.Is(e.base, target) {
		return true
	}
	for _, err := range e.causes {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// New creates a root-level error with the given message.
func New(msg string) Error {
	return &appError{msg: msg}
}
