// Package fieverrors provides structured error types for the fievar library.
//
// Import path: github.com/erraggy/fievar/fieverrors
//
// This package enables programmatic error handling via [errors.Is] and
// [errors.As], allowing callers to distinguish between different categories
// of errors and surface the right diagnostics.
//
// # Error Types
//
// The package provides three core error types:
//
//   - [ExpressionError]: malformed transformation expressions
//   - [ConfigError]: invalid generator configuration or manifest values
//   - [GenerateError]: code generation failures (package loading, missing
//     types, unformattable output)
//
// # Sentinel Errors
//
// Each error type has a corresponding sentinel error for use with errors.Is():
//
//   - [ErrMalformedExpression]: matches any [ExpressionError]
//   - [ErrConfig]: matches any [ConfigError]
//   - [ErrGenerate]: matches any [GenerateError]
//
// # Usage Examples
//
// Check error category with errors.Is():
//
//	name, err := transform.RenderName("AccessToken",
//		transform.WithExpression("c Qc"))
//	if errors.Is(err, fieverrors.ErrMalformedExpression) {
//	    // Surface as a definition-time diagnostic
//	}
//
// Extract error details with errors.As():
//
//	var exprErr *fieverrors.ExpressionError
//	if errors.As(err, &exprErr) {
//	    fmt.Printf("invalid token %q in %q\n", exprErr.Token, exprErr.Expr)
//	}
//
// All error types support error chaining via the Cause field and Unwrap().
package fieverrors
