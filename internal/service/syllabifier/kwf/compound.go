package kwf

import "strings"

// core runs the rule engine on one hyphen- and apostrophe-free part.
func core(n Normalized) []string {
	return MapToOriginal(n.Original, applyCoreRules(lowerRunes(n.Text)))
}

// splitCompound syllabifies each hyphen-separated part on its own. A hyphen
// stays with the last syllable before it; a leading hyphen is prefixed to
// the first syllable. Whitespace-only parts are dropped.
func splitCompound(n Normalized) []string {
	textParts := strings.Split(n.Text, "-")
	origParts := strings.Split(n.Original, "-")
	if len(textParts) != len(origParts) {
		return []string{n.Original}
	}

	var out []string
	pending := ""
	for i := range textParts {
		if i > 0 {
			if len(out) > 0 {
				out[len(out)-1] += "-"
			} else {
				pending += "-"
			}
		}
		if strings.TrimSpace(textParts[i]) == "" {
			continue
		}

		syllables := core(Normalized{Text: textParts[i], Original: origParts[i]})
		if pending != "" {
			syllables[0] = pending + syllables[0]
			pending = ""
		}
		out = append(out, syllables...)
	}

	if len(out) == 0 {
		return []string{n.Original}
	}
	return out
}

// splitContraction handles a word with exactly one glottal mark, such as
// "ako't". The mark closes the last syllable of the first part and the
// second part's syllables follow.
func splitContraction(n Normalized) []string {
	text := []rune(n.Text)
	orig := []rune(n.Original)

	idx, count := -1, 0
	for i, r := range text {
		if r == glottalMark {
			idx = i
			count++
		}
	}
	if count != 1 || idx == 0 || idx == len(text)-1 || len(text) != len(orig) {
		return []string{n.Original}
	}

	first := core(Normalized{Text: string(text[:idx]), Original: string(orig[:idx])})
	second := Normalized{Text: string(text[idx+1:]), Original: string(orig[idx+1:])}

	first[len(first)-1] += string(orig[idx])
	return append(first, core(second)...)
}
