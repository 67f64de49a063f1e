package domain

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// CleanWord prepares user-entered text for syllabification:
//   - trims leading/trailing whitespace
//   - composes to NFC so accented vowels are single runes
//   - compresses runs of whitespace into one space
//
// Case, diacritics, hyphens, and apostrophes are preserved.
func CleanWord(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}
	text = norm.NFC.String(text)

	var b strings.Builder
	b.Grow(len(text))
	prevSpace := false
	for _, r := range text {
		if r == ' ' || r == '\t' || r == '\n' {
			if prevSpace {
				continue
			}
			prevSpace = true
			r = ' '
		} else {
			prevSpace = false
		}
		b.WriteRune(r)
	}
	return b.String()
}
