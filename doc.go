// Package fievar provides tools for rendering struct field and enum variant
// names through a small transformation expression language, plus a code
// generator that emits static Fields()/Variants() accessors for Go types.
//
// The library consists of two primary packages:
//
//   - transform: the identifier transformation engine. It splits an
//     identifier into words, parses a transformation expression, and renders
//     the words with per-word and per-character case rules, numeral
//     alignment, and a custom separator.
//   - generator: a build-time code generator that walks the fields of a
//     struct type (or the constants of an enum-like type), renders each name
//     through the engine, and emits accessor functions returning static
//     string slices.
//
// # Quick Start
//
// Render a single identifier:
//
//	import "github.com/erraggy/fievar/transform"
//
//	name, err := transform.RenderName("AccessToken",
//		transform.WithExpression("c Cc"))
//	// name == "accessToken"
//
// Generate accessors for a package:
//
//	import "github.com/erraggy/fievar/generator"
//
//	result, err := generator.GenerateWithOptions(
//		generator.WithDir("./models"),
//		generator.WithType("Token", generator.KindFields),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	if err := result.WriteFiles("./models"); err != nil {
//		log.Fatal(err)
//	}
//
// # Expression Language
//
// An expression has the form "transform|separator". The transform portion
// holds one to three space-separated word rules, applied to the first,
// middle, and last words, optionally followed by a numeral alignment
// literal. Each word rule holds one to three characters drawn from 'c'
// (lowercase), 'C' (uppercase), and '*' (keep), applied to the first,
// middle, and last characters of the word. Alignment literals are "1__"
// (digit runs merge onto the preceding word), "__1" (merge onto the
// following word), and "_1_" (digit runs stand alone).
//
// Examples:
//
//	"c"       AVeryLong0Variant -> averylong0variant
//	"C"       AVeryLong1Variant -> AVERYLONG1VARIANT
//	"1__|_"   AVeryLong2Variant -> A_Very_Long2_Variant
//	"c Cc"    AVeryLong5Variant -> aVeryLong5Variant
//
// The command line tool under cmd/fievar exposes both the engine and the
// generator, and can serve them over the Model Context Protocol.
package fievar
