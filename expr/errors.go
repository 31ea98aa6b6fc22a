// SPDX-License-Identifier: MIT

package expr

import (
	"errors"
	"fmt"
)

var (
	// ErrParse marks malformed expression text (bad token, unbalanced
	// parentheses, wrong arity, trailing input).
	ErrParse = errors.New("expr: parse error")

	// ErrUnsafe marks a reference to a name outside the allow-list.
	ErrUnsafe = errors.New("expr: disallowed identifier")
)

// ParseError reports malformed text together with the 1-based column where
// the problem was detected.
type ParseError struct {
	Column int
	Msg    string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("expr: parse error at column %d: %s", e.Column, e.Msg)
}

// Unwrap lets errors.Is(err, ErrParse) match.
func (e *ParseError) Unwrap() error { return ErrParse }

// UnsafeExpressionError reports an identifier that is not the variable x, an
// allow-listed function or an allow-listed constant.
type UnsafeExpressionError struct {
	Name   string
	Column int
}

func (e *UnsafeExpressionError) Error() string {
	return fmt.Sprintf("expr: identifier %q at column %d is not allowed", e.Name, e.Column)
}

// Unwrap lets errors.Is(err, ErrUnsafe) match.
func (e *UnsafeExpressionError) Unwrap() error { return ErrUnsafe }

// parseErrorf builds a *ParseError at the given 0-based byte offset.
func parseErrorf(offset int, format string, args ...any) error {
	return &ParseError{Column: offset + 1, Msg: fmt.Sprintf(format, args...)}
}
