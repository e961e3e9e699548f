package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
)

// Code identifies a class of parse failure. Codes are stable.
type Code string

const (
	CodeMalformed    Code = "MKT-VAL-001" // Syntax error, wrong root type, I/O
	CodeMissingField Code = "MKT-VAL-002" // Required field absent
	CodeInvalidValue Code = "MKT-VAL-003" // Wrong type, range, enum or pattern
)

// Error is a parse failure with location and remediation hint.
type Error struct {
	Code    Code
	Message string
	File    string // Source file, empty for in-memory input
	Field   string // Dotted document path, e.g. campaigns[0].plan_id
	Line    int    // 1-based, 0 when unknown
	Column  int    // 1-based, 0 when unknown
	Fix     string
	Context string // Surrounding source lines

	// Details holds every shape violation when more than one was found.
	// The receiver describes the first of them.
	Details []*Error

	cause error
}

// New creates an error with the given code and message.
func New(code Code, message, fix string) *Error {
	return &Error{Code: code, Message: message, Fix: fix}
}

// Wrap creates an error that unwraps to cause.
func Wrap(cause error, code Code, message, fix string) *Error {
	return &Error{Code: code, Message: message, Fix: fix, cause: cause}
}

// Error implements the error interface.
func (e *Error) Error() string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("[%s] %s\n", e.Code, e.Message))

	if loc := e.Location(); loc != "" {
		sb.WriteString(fmt.Sprintf("  --> %s\n", loc))
	}

	if e.Context != "" {
		sb.WriteString("  |\n")
		sb.WriteString(e.Context)
		sb.WriteString("  |\n")
	}

	if e.Fix != "" {
		sb.WriteString(fmt.Sprintf("  = fix: %s\n", e.Fix))
	}

	if n := len(e.Details); n > 1 {
		sb.WriteString(fmt.Sprintf("  = %d more problem(s) found\n", n-1))
	}

	return sb.String()
}

// Unwrap returns the underlying cause, if any.
func (e *Error) Unwrap() error {
	return e.cause
}

// Location formats file, line and column as "file:line:col". Missing parts
// are omitted; the result is empty when nothing is known.
func (e *Error) Location() string {
	var parts []string
	if e.File != "" {
		parts = append(parts, e.File)
	}
	if e.Line > 0 {
		parts = append(parts, fmt.Sprintf("%d", e.Line))
		if e.Column > 0 {
			parts = append(parts, fmt.Sprintf("%d", e.Column))
		}
	}
	if len(parts) == 0 && e.Field != "" {
		return e.Field
	}
	return strings.Join(parts, ":")
}

// Is reports whether target is an *Error with the same code. This lets
// callers match with errors.Is(err, errors.New(CodeMissingField, "", "")).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Code == e.Code && (t.Message == "" || t.Message == e.Message)
}

// CodeOf returns the code of the first *Error in err's chain, or "" when
// err is not a parse error.
func CodeOf(err error) Code {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Code
	}
	return ""
}
