// Package apperr carries the error taxonomy surfaced over HTTP. Every
// service error is one of a closed set of kinds so handlers can switch
// exhaustively instead of matching message strings.
package apperr

import "errors"

type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindUnauthorized
	KindForbidden
	KindNotFound
	KindConflict
)

type Error struct {
	Kind    Kind
	Message string
	// Issues holds field-level validation messages when available
	Issues map[string]string
	Err    error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func Validation(message string, issues map[string]string) *Error {
	return &Error{Kind: KindValidation, Message: message, Issues: issues}
}

func Unauthorized(message string) *Error {
	return &Error{Kind: KindUnauthorized, Message: message}
}

func Forbidden(message string) *Error {
	return &Error{Kind: KindForbidden, Message: message}
}

func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

func Conflict(message string) *Error {
	return &Error{Kind: KindConflict, Message: message}
}

func Internal(message string, err error) *Error {
	return &Error{Kind: KindInternal, Message: message, Err: err}
}

// KindOf extracts the kind from an error chain, KindInternal when the
// error carries no taxonomy.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// IssuesOf returns field-level issues from an error chain, nil when absent.
func IssuesOf(err error) map[string]string {
	var e *Error
	if errors.As(err, &e) {
		return e.Issues
	}
	return nil
}
