// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package rjson

import (
	"errors"
	"fmt"

	"github.com/creachadair/rjson/ast"
)

// ErrBadOptions is reported when parser options have an unsupported type or
// content.
var ErrBadOptions = errors.New("invalid options")

// LexError is the concrete type of errors reported when input cannot be
// split into tokens. Lexical errors are never recovered, even by a tolerant
// parser.
type LexError struct {
	Line   int // the 1-based line where tokenization failed
	Offset int // the byte offset where tokenization failed

	err error
}

// Error satisfies the error interface.
func (e *LexError) Error() string {
	if e.err != nil {
		return fmt.Sprintf("cannot tokenize on line %d: %v", e.Line, e.err)
	}
	return fmt.Sprintf("cannot tokenize on line %d", e.Line)
}

// Unwrap supports error wrapping.
func (e *LexError) Unwrap() error { return e.err }

// SyntaxError is the concrete type of errors reported by a parser that is not
// in tolerant mode. It describes the first violation of the grammar found in
// the input.
type SyntaxError struct {
	Message string
	Line    int
}

// Error satisfies the error interface.
func (s *SyntaxError) Error() string {
	return fmt.Sprintf("%s on line %d", s.Message, s.Line)
}

// A Warning records a grammar violation recovered by a tolerant parser.
type Warning struct {
	Message string `json:"message"`
	Line    int    `json:"line"`
}

func (w Warning) String() string { return fmt.Sprintf("%d: %s", w.Line, w.Message) }

// ToleranceError is the concrete type of errors reported by a tolerant parser
// that recovered from one or more violations. The best-effort value built
// despite the violations is carried in Value.
type ToleranceError struct {
	Message  string    // the only warning's message, or a count of warnings
	Line     int       // the line of the first warning
	Warnings []Warning // all the warnings, in order of discovery
	Value    ast.Value // the value recovered from the input
}

// Error satisfies the error interface.
func (t *ToleranceError) Error() string {
	return fmt.Sprintf("%s on line %d", t.Message, t.Line)
}

func newToleranceError(ws []Warning, v ast.Value) *ToleranceError {
	msg := ws[0].Message
	if len(ws) > 1 {
		msg = fmt.Sprintf("%d parse warnings", len(ws))
	}
	return &ToleranceError{Message: msg, Line: ws[0].Line, Warnings: ws, Value: v}
}
