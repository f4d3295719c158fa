package transform

// Case is a rendering instruction for a single character.
type Case int

const (
	// CaseKeep leaves the character unchanged.
	CaseKeep Case = iota
	// CaseLower lowercases the character. ASCII only.
	CaseLower
	// CaseUpper uppercases the character. ASCII only.
	CaseUpper
)

// String returns the string representation of the case instruction.
func (c Case) String() string {
	switch c {
	case CaseKeep:
		return "keep"
	case CaseLower:
		return "lower"
	case CaseUpper:
		return "upper"
	default:
		return "unknown"
	}
}

// char returns the expression character for the case instruction.
func (c Case) char() byte {
	switch c {
	case CaseLower:
		return 'c'
	case CaseUpper:
		return 'C'
	default:
		return '*'
	}
}

// RuleKind discriminates the arity of a positional rule. The same three
// arities exist at both levels of the spec: a word rule resolves characters
// within a word, and a case spec resolves word rules within an identifier.
type RuleKind int

const (
	// RuleUniform applies one rule to every position.
	RuleUniform RuleKind = iota
	// RuleFirstRest applies one rule to the first position and another to
	// every remaining position.
	RuleFirstRest
	// RuleFirstMiddleLast applies independent rules to the first position,
	// the middle span, and the last position.
	RuleFirstMiddleLast
)

// CharRule governs character casing within a single word.
//
// The zero value keeps every character unchanged. Construct values with
// [Uniform], [FirstRest], or [FirstMiddleLast]; the constructors normalize
// the degenerate arities so that position resolution is a plain
// first/middle/last lookup with no index arithmetic.
type CharRule struct {
	Kind  RuleKind
	First Case
	// Middle applies to characters between the first and the last.
	Middle Case
	// Last applies to the final character. For FirstRest rules it equals
	// Middle.
	Last Case
}

// Uniform returns a rule applying c to every character of a word.
func Uniform(c Case) CharRule {
	return CharRule{Kind: RuleUniform, First: c, Middle: c, Last: c}
}

// FirstRest returns a rule applying first to the first character and rest to
// every remaining character.
func FirstRest(first, rest Case) CharRule {
	return CharRule{Kind: RuleFirstRest, First: first, Middle: rest, Last: rest}
}

// FirstMiddleLast returns a rule with independent first, middle, and last
// character cases.
func FirstMiddleLast(first, middle, last Case) CharRule {
	return CharRule{Kind: RuleFirstMiddleLast, First: first, Middle: middle, Last: last}
}

// at resolves the case for character index i of a word with n characters.
// A single-character word resolves to the first rule.
func (r CharRule) at(i, n int) Case {
	switch {
	case i == 0:
		return r.First
	case i == n-1:
		return r.Last
	default:
		return r.Middle
	}
}

// String returns the expression literal for the rule, e.g. "c", "Cc", "cCc".
func (r CharRule) String() string {
	switch r.Kind {
	case RuleFirstRest:
		return string([]byte{r.First.char(), r.Middle.char()})
	case RuleFirstMiddleLast:
		return string([]byte{r.First.char(), r.Middle.char(), r.Last.char()})
	default:
		return string(r.First.char())
	}
}

// CaseSpec resolves a CharRule per word position. It mirrors CharRule's
// first/middle/last structure one level up, at word granularity.
type CaseSpec struct {
	Kind   RuleKind
	First  CharRule
	Middle CharRule
	Last   CharRule
}

// at resolves the rule for word index i of an identifier with n words.
// A single-word identifier resolves to the first rule.
func (s CaseSpec) at(i, n int) CharRule {
	switch {
	case i == 0:
		return s.First
	case i == n-1:
		return s.Last
	default:
		return s.Middle
	}
}

// Rules returns the word rules in positional order, one per arity slot.
func (s CaseSpec) Rules() []CharRule {
	switch s.Kind {
	case RuleFirstRest:
		return []CharRule{s.First, s.Middle}
	case RuleFirstMiddleLast:
		return []CharRule{s.First, s.Middle, s.Last}
	default:
		return []CharRule{s.First}
	}
}

// NumAlign governs how a digit run attaches to its neighboring words.
type NumAlign int

const (
	// AlignNone applies no special digit handling: digit runs behave as
	// ordinary standalone words.
	AlignNone NumAlign = iota
	// AlignLeft merges a digit run onto the preceding word with no
	// separator.
	AlignLeft
	// AlignRight merges a digit run onto the following word with no
	// separator.
	AlignRight
	// AlignMiddle keeps a digit run standalone, with separators applied on
	// both sides at join time.
	AlignMiddle
)

// String returns the string representation of the alignment.
func (a NumAlign) String() string {
	switch a {
	case AlignNone:
		return "none"
	case AlignLeft:
		return "left"
	case AlignRight:
		return "right"
	case AlignMiddle:
		return "middle"
	default:
		return "unknown"
	}
}

// Spec is a parsed transformation expression.
//
// The zero value renders identifiers unchanged apart from word splitting:
// no case coercion, no digit-run adjustment, words joined with the empty
// string.
type Spec struct {
	// Cases is the case spec, or nil for no case coercion.
	Cases *CaseSpec
	// Align is the numeral alignment. AlignNone means digit runs behave as
	// ordinary words.
	Align NumAlign
	// Separator is inserted between adjacent rendered units at join time.
	Separator string
}
