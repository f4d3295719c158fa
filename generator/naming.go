package generator

import (
	"strings"

	"github.com/erraggy/fievar/internal/naming"
)

// goReservedWords contains Go reserved keywords that cannot be used as
// identifiers. Only actual keywords are listed, not predeclared identifiers,
// because those can be shadowed.
var goReservedWords = map[string]bool{
	"break": true, "case": true, "chan": true, "const": true, "continue": true,
	"default": true, "defer": true, "else": true, "fallthrough": true, "for": true,
	"func": true, "go": true, "goto": true, "if": true, "import": true,
	"interface": true, "map": true, "package": true, "range": true, "return": true,
	"select": true, "struct": true, "switch": true, "type": true, "var": true,
}

// escapeReservedWord appends an underscore to names that collide with a Go
// keyword. The check is case-insensitive so normalized names like "Range"
// are still escaped.
func escapeReservedWord(name string) string {
	if goReservedWords[strings.ToLower(name)] {
		return name + "_"
	}
	return name
}

// accessorName resolves the generated method name for a type spec. A custom
// accessor value is normalized to an exported Go identifier; otherwise the
// name follows the kind.
func accessorName(spec TypeSpec) string {
	if spec.Accessor != "" {
		return escapeReservedWord(naming.ExportedIdent(spec.Accessor))
	}
	if spec.Kind == KindVariants {
		return "Variants"
	}
	return "Fields"
}
