package transform

import "strings"

// Render applies spec's case rules and numeral alignment to the words of
// id, returning the rendered units in order. Digit runs merged left or
// right by the alignment are pre-concatenated onto their neighbor, so one
// unit may cover more than one word.
//
// Word position (first, middle, last) is resolved by index within id
// before any merging; a single-word identifier uses the first-word rule.
// Render never fails: an empty identifier yields no units.
func Render(id Identifier, spec *Spec) []string {
	n := len(id)
	if n == 0 {
		return nil
	}

	out := make([]string, 0, n)
	pending := "" // digit runs awaiting a right merge
	for i, w := range id {
		text := w.Text
		if spec.Cases != nil && w.Kind == WordAlpha {
			text = applyCharRule(spec.Cases.at(i, n), text)
		}

		if w.Kind == WordDigits {
			switch spec.Align {
			case AlignLeft:
				// Merge onto the previous unit. A digit run with nothing
				// before it stays standalone.
				if len(out) > 0 {
					out[len(out)-1] += text
					continue
				}
			case AlignRight:
				// Hold until the next word. A digit run at the end stays
				// standalone.
				if i < n-1 {
					pending += text
					continue
				}
			}
		}

		out = append(out, pending+text)
		pending = ""
	}
	return out
}

// applyCharRule renders one word under a character rule. Character position
// is resolved first/middle/last; a single-character word uses the first
// rule. Case mapping is ASCII-only and never changes the word length.
func applyCharRule(rule CharRule, s string) string {
	rs := []rune(s)
	for i := range rs {
		switch rule.at(i, len(rs)) {
		case CaseLower:
			rs[i] = toLower(rs[i])
		case CaseUpper:
			rs[i] = toUpper(rs[i])
		}
	}
	return string(rs)
}

// Join concatenates rendered units with sep between every adjacent pair.
// Units merged by numeral alignment arrive pre-concatenated, so they never
// gain an internal separator.
func Join(units []string, sep string) string {
	return strings.Join(units, sep)
}
