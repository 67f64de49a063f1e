package kwf

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/unicode/norm"
)

var combiningMark = runes.In(unicode.Mn)

// Normalized pairs the diacritic-free form of a word with the word itself.
// Original is NFC-composed; Text has exactly the same number of runes, so
// rune i of Text is the base form of rune i of Original.
type Normalized struct {
	Text     string
	Original string
}

// Normalize replaces accented letters with their base letters and maps the
// apostrophe family to a plain apostrophe. Case is left untouched.
func Normalize(word string) Normalized {
	original := norm.NFC.String(word)

	var b strings.Builder
	b.Grow(len(original))
	for _, r := range original {
		b.WriteRune(baseRune(r))
	}

	return Normalized{Text: b.String(), Original: original}
}

// Key returns the lowercase normalized text used for dictionary lookups.
func (n Normalized) Key() string {
	return lowerRunes(n.Text)
}

// NormalizeKey is shorthand for Normalize(word).Key().
func NormalizeKey(word string) string {
	return Normalize(word).Key()
}

// baseRune strips combining marks from a single rune. Runes that do not
// decompose into exactly one base rune are returned unchanged so the
// rune-for-rune alignment with the original always holds.
func baseRune(r rune) rune {
	if isApostrophe(r) {
		return glottalMark
	}
	if r < utf8.RuneSelf {
		return r
	}

	base := rune(-1)
	for _, d := range norm.NFD.String(string(r)) {
		if combiningMark.Contains(d) {
			continue
		}
		if base >= 0 {
			return r
		}
		base = d
	}
	if base < 0 {
		return r
	}
	return base
}

// fold maps a rune to its comparison form: base letter, lowercase.
func fold(r rune) rune {
	return unicode.ToLower(baseRune(r))
}

// lowerRunes lowercases rune by rune. strings.ToLower may change the rune
// count for a few code points, which would break alignment.
func lowerRunes(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}
