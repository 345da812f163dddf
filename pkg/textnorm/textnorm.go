// Package textnorm normalises Vietnamese text for matching: NFC
// composition, lowercasing, accent folding and word tokenisation.
package textnorm

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalize returns s in NFC form, lowercased and with runs of whitespace
// collapsed to one space.
func Normalize(s string) string {
	s = norm.NFC.String(strings.ToLower(s))
	return strings.Join(strings.Fields(s), " ")
}

// Fold strips diacritics from s and maps đ to d. The result is lowercase.
// "Đà Lạt" becomes "da lat".
func Fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, strings.ToLower(s))
	if err != nil {
		out = strings.ToLower(s)
	}
	out = strings.NewReplacer("đ", "d", "Đ", "d").Replace(out)
	return strings.Join(strings.Fields(out), " ")
}

// Tokens splits s into lowercase words, dropping punctuation. Digits are
// kept as part of words.
func Tokens(s string) []string {
	return strings.FieldsFunc(Normalize(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && !unicode.Is(unicode.Mn, r)
	})
}

// ContainsWord reports whether phrase occurs in text on word boundaries.
// Both arguments are expected to be normalised already.
func ContainsWord(text, phrase string) bool {
	if phrase == "" {
		return false
	}
	start := 0
	for {
		idx := strings.Index(text[start:], phrase)
		if idx < 0 {
			return false
		}
		idx += start
		end := idx + len(phrase)
		if isBoundary(text, idx, true) && isBoundary(text, end, false) {
			return true
		}
		start = idx + 1
		if start >= len(text) {
			return false
		}
	}
}

// isBoundary reports whether the rune before (before=true) or at pos is
// absent or not a word character.
func isBoundary(text string, pos int, before bool) bool {
	if before {
		if pos == 0 {
			return true
		}
		r, _ := utf8.DecodeLastRuneInString(text[:pos])
		return !isWordRune(r)
	}
	if pos >= len(text) {
		return true
	}
	r, _ := utf8.DecodeRuneInString(text[pos:])
	return !isWordRune(r)
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.Is(unicode.Mn, r)
}

// Title capitalises the first letter of every word using Vietnamese casing
// rules. "hồ chí minh" becomes "Hồ Chí Minh".
func Title(s string) string {
	return cases.Title(language.Vietnamese).String(s)
}
