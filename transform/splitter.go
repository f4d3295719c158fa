package transform

// WordKind tags a Word as an alphabetic run or a digit run.
type WordKind int

const (
	// WordAlpha is a run of ASCII letters.
	WordAlpha WordKind = iota
	// WordDigits is a run of ASCII digits.
	WordDigits
)

// String returns the string representation of the word kind.
func (k WordKind) String() string {
	switch k {
	case WordAlpha:
		return "alpha"
	case WordDigits:
		return "digits"
	default:
		return "unknown"
	}
}

// Word is a maximal homogeneous run of characters within an identifier.
// A Word is never empty: either all characters are letters or all are
// digits.
type Word struct {
	Text string
	Kind WordKind
}

// Identifier is the ordered word decomposition of an identifier. Splitting
// is lossless: concatenating the words' characters in order reproduces the
// original identifier with its explicit separator characters removed.
type Identifier []Word

// Split decomposes an identifier into words. A new word starts at a
// lowercase-to-uppercase transition, at a letter/digit transition, and
// after an explicit separator character. Separators (any character outside
// ASCII letters and digits, underscores included) are discarded. A run of
// uppercase letters followed by a lowercase letter splits before its final
// letter, so "ABCd" becomes "AB" + "Cd": an acronym followed by a new
// capitalized word.
//
// The empty string yields an empty Identifier. An identifier with no
// boundaries yields exactly one word.
func Split(s string) Identifier {
	rs := []rune(s)
	var id Identifier
	i := 0
	for i < len(rs) {
		switch r := rs[i]; {
		case isDigit(r):
			j := i + 1
			for j < len(rs) && isDigit(rs[j]) {
				j++
			}
			id = append(id, Word{Text: string(rs[i:j]), Kind: WordDigits})
			i = j
		case isLower(r):
			j := i + 1
			for j < len(rs) && isLower(rs[j]) {
				j++
			}
			id = append(id, Word{Text: string(rs[i:j]), Kind: WordAlpha})
			i = j
		case isUpper(r):
			j := i + 1
			for j < len(rs) && isUpper(rs[j]) {
				j++
			}
			if j-i > 1 && j < len(rs) && isLower(rs[j]) {
				// Acronym directly followed by a capitalized word: the
				// final uppercase letter belongs to the next word.
				id = append(id, Word{Text: string(rs[i : j-1]), Kind: WordAlpha})
				i = j - 1
				continue
			}
			for j < len(rs) && isLower(rs[j]) {
				j++
			}
			id = append(id, Word{Text: string(rs[i:j]), Kind: WordAlpha})
			i = j
		default:
			// Explicit separator: delimits words, never kept.
			i++
		}
	}
	return id
}

func isLower(r rune) bool { return 'a' <= r && r <= 'z' }
func isUpper(r rune) bool { return 'A' <= r && r <= 'Z' }
func isDigit(r rune) bool { return '0' <= r && r <= '9' }

func toLower(r rune) rune {
	if isUpper(r) {
		return r + ('a' - 'A')
	}
	return r
}

func toUpper(r rune) rune {
	if isLower(r) {
		return r - ('a' - 'A')
	}
	return r
}
