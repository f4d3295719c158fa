package transform

import (
	"fmt"
	"strings"

	"github.com/erraggy/fievar/fieverrors"
)

// alignLiterals are the exact numeral alignment tokens. These literals are
// embedded in user annotations and must stay byte-compatible.
var alignLiterals = map[string]NumAlign{
	"1__": AlignLeft,
	"__1": AlignRight,
	"_1_": AlignMiddle,
}

// token is a whitespace-delimited atom together with its rune offset in the
// original expression, kept for diagnostics.
type token struct {
	text string
	pos  int
}

// splitTokens splits the transform portion of an expression on whitespace,
// preserving each token's rune offset.
func splitTokens(s string) []token {
	rs := []rune(s)
	var toks []token
	start := -1
	for i := 0; i <= len(rs); i++ {
		if i < len(rs) && rs[i] != ' ' && rs[i] != '\t' {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			toks = append(toks, token{text: string(rs[start:i]), pos: start})
			start = -1
		}
	}
	return toks
}

// Parse parses a transformation expression into a Spec.
//
// The expression splits on the first '|': everything after it is the
// separator, verbatim (the empty separator is valid). The transform portion
// holds up to three whitespace-separated word rules, optionally followed by
// one of the alignment literals "1__", "__1", or "_1_". Each word rule
// holds one to three case characters: 'c' (lowercase), 'C' (uppercase), or
// '*' (keep).
//
// An empty expression is valid and yields the zero Spec. Any unknown
// character, a fourth word rule, or a fourth case character fails with a
// [fieverrors.ExpressionError] carrying the offending token.
func Parse(expr string) (*Spec, error) {
	spec := &Spec{}

	left := expr
	if i := strings.IndexByte(expr, '|'); i >= 0 {
		left = expr[:i]
		spec.Separator = expr[i+1:]
	}

	toks := splitTokens(left)
	if n := len(toks); n > 0 {
		if align, ok := alignLiterals[toks[n-1].text]; ok {
			spec.Align = align
			toks = toks[:n-1]
		}
	}

	if len(toks) > 3 {
		return nil, &fieverrors.ExpressionError{
			Expr:     expr,
			Token:    toks[3].text,
			Position: toks[3].pos,
			Message:  "a case spec holds at most 3 word rules",
		}
	}

	rules := make([]CharRule, len(toks))
	for i, tok := range toks {
		rule, err := parseWordRule(expr, tok)
		if err != nil {
			return nil, err
		}
		rules[i] = rule
	}

	switch len(rules) {
	case 1:
		spec.Cases = &CaseSpec{Kind: RuleUniform, First: rules[0], Middle: rules[0], Last: rules[0]}
	case 2:
		spec.Cases = &CaseSpec{Kind: RuleFirstRest, First: rules[0], Middle: rules[1], Last: rules[1]}
	case 3:
		spec.Cases = &CaseSpec{Kind: RuleFirstMiddleLast, First: rules[0], Middle: rules[1], Last: rules[2]}
	}
	return spec, nil
}

// parseWordRule parses a single word rule token into a CharRule.
func parseWordRule(expr string, tok token) (CharRule, error) {
	rs := []rune(tok.text)
	if len(rs) > 3 {
		return CharRule{}, &fieverrors.ExpressionError{
			Expr:     expr,
			Token:    tok.text,
			Position: tok.pos + 3,
			Message:  "a word rule holds at most 3 case characters",
		}
	}

	cases := make([]Case, len(rs))
	for i, r := range rs {
		switch r {
		case 'c':
			cases[i] = CaseLower
		case 'C':
			cases[i] = CaseUpper
		case '*':
			cases[i] = CaseKeep
		default:
			return CharRule{}, &fieverrors.ExpressionError{
				Expr:     expr,
				Token:    tok.text,
				Position: tok.pos + i,
				Message:  fmt.Sprintf("invalid case character %q", r),
			}
		}
	}

	switch len(cases) {
	case 2:
		return FirstRest(cases[0], cases[1]), nil
	case 3:
		return FirstMiddleLast(cases[0], cases[1], cases[2]), nil
	default:
		return Uniform(cases[0]), nil
	}
}
