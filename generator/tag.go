package generator

import (
	"go/ast"
	"reflect"
	"strconv"
	"strings"
)

// tagKey is the struct tag key and comment directive name for member
// annotations.
const tagKey = "fievar"

// transMarker introduces the transformation expression inside a tag value.
// Everything after it belongs to the expression verbatim, so expressions
// may contain commas, spaces, and '|'.
const transMarker = "trans="

// annotation is the parsed value of a fievar tag or directive.
type annotation struct {
	Name    string
	HasName bool
	Expr    string
	HasExpr bool
	Skip    bool
}

// parseAnnotation parses the tag value grammar "[name][,trans=EXPR]".
// A value of "-" skips the member entirely.
func parseAnnotation(v string) annotation {
	if v == "" {
		return annotation{}
	}
	if v == "-" {
		return annotation{Skip: true}
	}
	if strings.HasPrefix(v, transMarker) {
		return annotation{Expr: v[len(transMarker):], HasExpr: true}
	}
	if i := strings.Index(v, ","+transMarker); i >= 0 {
		a := annotation{Expr: v[i+1+len(transMarker):], HasExpr: true}
		if name := v[:i]; name != "" {
			a.Name = name
			a.HasName = true
		}
		return a
	}
	return annotation{Name: v, HasName: true}
}

// parseFieldTag extracts and parses the fievar key of a struct field tag.
// The second return is false when the field carries no fievar tag.
func parseFieldTag(tag *ast.BasicLit) (annotation, bool) {
	if tag == nil {
		return annotation{}, false
	}
	unquoted, err := strconv.Unquote(tag.Value)
	if err != nil {
		return annotation{}, false
	}
	v, ok := reflect.StructTag(unquoted).Lookup(tagKey)
	if !ok {
		return annotation{}, false
	}
	return parseAnnotation(v), true
}

// parseCommentAnnotation scans comment groups for a fievar:"..." directive
// and parses its value with the tag grammar. Constants use this in a
// trailing line comment the way struct fields use tags.
func parseCommentAnnotation(groups ...*ast.CommentGroup) (annotation, bool) {
	const prefix = tagKey + `:"`
	for _, cg := range groups {
		if cg == nil {
			continue
		}
		for _, c := range cg.List {
			text := strings.TrimPrefix(c.Text, "//")
			text = strings.TrimSpace(text)
			if !strings.HasPrefix(text, prefix) {
				continue
			}
			rest := text[len(prefix):]
			// The separator may itself contain '"'; the directive value
			// runs to the last quote on the line.
			end := strings.LastIndexByte(rest, '"')
			if end < 0 {
				continue
			}
			return parseAnnotation(rest[:end]), true
		}
	}
	return annotation{}, false
}
