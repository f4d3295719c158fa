package fieverrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
// These allow quick checks without type assertions.
var (
	// ErrMalformedExpression indicates an invalid transformation expression.
	ErrMalformedExpression = errors.New("malformed expression")

	// ErrConfig indicates an invalid configuration.
	ErrConfig = errors.New("configuration error")

	// ErrGenerate indicates a code generation failure.
	ErrGenerate = errors.New("generation error")
)

// ExpressionError represents a malformed transformation expression.
// Expressions are fixed at definition time, so this error is deterministic:
// the same expression always fails the same way. Callers should surface it
// as a definition-time diagnostic rather than retry.
type ExpressionError struct {
	// Expr is the full expression text that failed to parse
	Expr string
	// Token is the offending token, if one was isolated
	Token string
	// Position is the rune offset of the offending character within Expr
	// (-1 if unknown)
	Position int
	// Message describes the parse failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ExpressionError) Error() string {
	msg := "malformed expression"
	if e.Expr != "" {
		msg += fmt.Sprintf(" %q", e.Expr)
	}
	if e.Token != "" {
		msg += fmt.Sprintf(": invalid token %q", e.Token)
	}
	if e.Position >= 0 {
		msg += fmt.Sprintf(" at offset %d", e.Position)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ExpressionError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ExpressionError) Is(target error) bool {
	return target == ErrMalformedExpression
}

// ConfigError represents an invalid configuration value, either from a
// manifest file or from programmatic options.
type ConfigError struct {
	// Field is the configuration field with the issue
	Field string
	// Value is the problematic value (may be nil)
	Value any
	// Message describes the configuration failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ConfigError) Error() string {
	msg := "configuration error"
	if e.Field != "" {
		msg += " in " + e.Field
	}
	if e.Value != nil {
		msg += fmt.Sprintf(" (value %v)", e.Value)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}

// GenerateError represents a code generation failure. This covers package
// loading problems, requested types that cannot be found, and members whose
// annotations prevent generation.
type GenerateError struct {
	// Package is the package path or directory being generated
	Package string
	// Type is the type whose accessor was being generated, if known
	Type string
	// Member is the field or variant being rendered, if known
	Member string
	// Message describes the generation failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *GenerateError) Error() string {
	msg := "generation error"
	if e.Package != "" {
		msg += " in " + e.Package
	}
	if e.Type != "" {
		msg += " for type " + e.Type
		if e.Member != "" {
			msg += "." + e.Member
		}
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *GenerateError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *GenerateError) Is(target error) bool {
	return target == ErrGenerate
}
