// Package errors provides sentinel errors and error types for the SAN
// translation pipeline. It defines common error conditions and structured
// error types that preserve context while allowing error inspection with
// errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrLex indicates input that could not be tokenized.
	ErrLex = errors.New("lex error")

	// ErrSyntax indicates a token sequence that does not form a SAN move.
	ErrSyntax = errors.New("syntax error")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrEmptyInput indicates a move string with nothing to translate.
	ErrEmptyInput = errors.New("enter a chess notation")
)

// LexError reports a malformed lexeme found while scanning a move string.
type LexError struct {
	Offset int    // Byte offset of the lexeme in the input
	Lexeme string // The malformed text
	Msg    string // What went wrong
}

// Error returns a formatted error message with the offset and lexeme.
func (e *LexError) Error() string {
	msg := e.Msg
	if msg == "" {
		msg = "malformed lexeme"
	}
	return fmt.Sprintf("position %d: %s %q", e.Offset, msg, e.Lexeme)
}

// Unwrap returns ErrLex so callers can test with errors.Is().
func (e *LexError) Unwrap() error {
	return ErrLex
}

// SyntaxError represents a grammar violation found by the parser.
type SyntaxError struct {
	Msg    string // What was expected or what went wrong
	Kind   string // Kind of the offending token
	Lexeme string // Lexeme of the offending token
	Index  int    // Index of the offending token in the sequence
	Offset int    // Byte offset of the offending token in the input
}

// Error returns a formatted error message with location and context.
func (e *SyntaxError) Error() string {
	got := e.Kind
	if e.Lexeme != "" {
		got = fmt.Sprintf("%s %q", e.Kind, e.Lexeme)
	}
	if got == "" {
		return fmt.Sprintf("token %d: %s", e.Index, e.Msg)
	}
	return fmt.Sprintf("token %d (position %d): %s, got %s", e.Index, e.Offset, e.Msg, got)
}

// Unwrap returns ErrSyntax so callers can test with errors.Is().
func (e *SyntaxError) Unwrap() error {
	return ErrSyntax
}

// MoveError wraps errors with the context of a move inside a game, including
// the ply and move text. It supports unwrapping via errors.Is() and
// errors.As().
type MoveError struct {
	Err      error  // The underlying error
	Ply      int    // 1-based ply number (0 if not applicable)
	MoveText string // The move text that caused the error
	File     string // Source file name (if known)
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	var parts []string

	if e.File != "" {
		parts = append(parts, e.File)
	}
	if e.Ply > 0 {
		parts = append(parts, fmt.Sprintf("ply %d", e.Ply))
	}
	if e.MoveText != "" {
		parts = append(parts, fmt.Sprintf("move %q", e.MoveText))
	}

	context := strings.Join(parts, ", ")
	switch {
	case context == "" && e.Err != nil:
		return e.Err.Error()
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", context, e.Err)
	case context == "":
		return "move error"
	}
	return context
}

// Unwrap returns the underlying error.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
