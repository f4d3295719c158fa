// Package transform implements the fievar identifier transformation engine.
//
// Import path: github.com/erraggy/fievar/transform
//
// The engine turns a raw identifier (a struct field or enum variant name)
// and a transformation expression into a rendered string. Rendering is a
// pure four-stage pipeline:
//
//   - [Split] decomposes the identifier into words at CamelCase, digit, and
//     explicit separator boundaries.
//   - [Parse] parses the transformation expression into a [Spec].
//   - [Render] applies the spec's case rules and numeral alignment to each
//     word.
//   - [Join] concatenates the rendered units with the spec's separator.
//
// [RenderName] orchestrates the pipeline and handles the no-expression and
// override-name shortcuts. Callers that apply one expression to many
// identifiers should [Parse] once and use [Apply].
//
// All operations are synchronous pure functions over their inputs and are
// safe for concurrent use. Case mapping is ASCII-only; characters outside
// ASCII letters and digits are treated as explicit separators.
package transform
