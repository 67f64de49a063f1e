package kwf

import (
	"errors"
	"strings"
)

var errMisaligned = errors.New("kwf: syllables do not align with word")

// alignCase copies the characters of original into the shape of syllables.
// It walks both in parallel and requires every syllable rune to match the
// next original rune after folding (lowercase, no diacritics, canonical
// apostrophe). The syllables must consume original exactly.
func alignCase(original string, syllables []string) ([]string, error) {
	orig := []rune(original)
	out := make([]string, len(syllables))

	p := 0
	for i, syl := range syllables {
		var b strings.Builder
		b.Grow(len(syl))
		for _, r := range syl {
			if p >= len(orig) || fold(orig[p]) != fold(r) {
				return nil, errMisaligned
			}
			b.WriteRune(orig[p])
			p++
		}
		out[i] = b.String()
	}

	if p != len(orig) {
		return nil, errMisaligned
	}
	return out, nil
}

// MapToOriginal re-applies the casing and diacritics of original to
// syllables computed from its normalized form. When the two cannot be
// aligned a copy of syllables is returned unchanged. The input slice is
// never modified.
func MapToOriginal(original string, syllables []string) []string {
	mapped, err := alignCase(original, syllables)
	if err != nil {
		return append([]string(nil), syllables...)
	}
	return mapped
}

// LookupKey returns the key word is filed under: trimmed, without trailing
// punctuation, diacritic-free and lowercase.
func LookupKey(word string) string {
	body, _ := stripTrailingPunct(strings.TrimSpace(word))
	return NormalizeKey(body)
}

// Recase projects syllables stored under LookupKey(word) back onto word,
// restoring its casing and diacritics and re-attaching trailing punctuation.
func Recase(word string, syllables []string) []string {
	body, punct := stripTrailingPunct(strings.TrimSpace(word))
	return attachPunct(MapToOriginal(Normalize(body).Original, syllables), punct)
}
