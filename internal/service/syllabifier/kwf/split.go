// Package kwf syllabifies Filipino words following the orthographic
// syllabication conventions of the Komisyon sa Wikang Filipino.
//
// Split applies the rule engine alone. A Dictionary layers hand-verified
// entries and a word-list cache on top of it.
//
// Both are pure string processing and safe for concurrent use.
package kwf

import (
	"strings"
	"unicode/utf8"
)

// Split divides word into syllables. The result is never empty: blank input
// yields [""], and anything that cannot be segmented comes back whole.
// Concatenating the result gives back the trimmed input, minus any
// whitespace-only parts between hyphens, which are dropped.
func Split(word string) (out []string) {
	defer func() {
		if r := recover(); r != nil {
			out = []string{word}
		}
	}()

	trimmed := strings.TrimSpace(word)
	if trimmed == "" {
		return []string{""}
	}
	if utf8.RuneCountInString(trimmed) == 1 {
		return []string{trimmed}
	}

	body, punct := stripTrailingPunct(trimmed)
	if body == "" {
		return []string{trimmed}
	}

	return attachPunct(segment(Normalize(body)), punct)
}

// segment dispatches a punctuation-free word to the matching handler.
func segment(n Normalized) []string {
	switch {
	case strings.ContainsRune(n.Text, '-'):
		return splitCompound(n)
	case strings.ContainsRune(n.Text, glottalMark):
		return splitContraction(n)
	default:
		return core(n)
	}
}

// stripTrailingPunct separates trailing punctuation from the word body.
func stripTrailingPunct(s string) (body, punct string) {
	end := len(s)
	for end > 0 {
		r, size := utf8.DecodeLastRuneInString(s[:end])
		if !trailingPunct[r] {
			break
		}
		end -= size
	}
	return s[:end], s[end:]
}

func attachPunct(syllables []string, punct string) []string {
	if punct == "" || len(syllables) == 0 {
		return syllables
	}
	syllables[len(syllables)-1] += punct
	return syllables
}
