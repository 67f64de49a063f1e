package kwf

// maxSyllables bounds the scan in applyCoreRules. Filipino words rarely
// exceed ten syllables; anything past twenty is not a word.
const maxSyllables = 20

// maxDictionaryWordLen is the longest word (in runes) admitted into the
// generated dictionary tier.
const maxDictionaryWordLen = 30

// glottalMark is the canonical apostrophe used after normalization.
const glottalMark = '\''

// onsetCandidates lists valid multi-consonant syllable onsets, longest first.
// Order matters: "str" must be tried before "tr" before "r".
var onsetCandidates = []string{
	"str", "thr", "spr", "skr",
	"bl", "br", "dr", "gr", "gl", "kl", "kr", "pl", "pr", "tr",
	"fl", "fr", "sk", "sp", "st", "sl", "sw", "kw", "gw",
	"ng", "ny", "ts", "ch", "sh", "th",
}

// diphthongs are the true diphthongs, longest first.
var diphthongs = []string{"ai", "ay", "aw", "ey", "oy", "uy", "iw", "iu"}

// vowelPairDiphthongs are diphthongs made of two vowel letters. They only
// hold word-finally; elsewhere the pair is two syllables (ka-in, ba-it).
var vowelPairDiphthongs = map[string]bool{
	"ai": true,
	"iu": true,
}

// glideCompat maps a vowel to the following vowel it absorbs as an offglide.
var glideCompat = map[rune]rune{
	'a': 'u',
	'e': 'i',
	'o': 'i',
	'u': 'i',
}

// apostrophes is the apostrophe family canonicalized to glottalMark.
var apostrophes = map[rune]bool{
	'\'':     true,
	'`':      true,
	'\u2019': true,
	'\u2018': true,
	'\u00b4': true,
	'\u02bc': true,
}

// trailingPunct is stripped from the end of a word before segmentation and
// re-appended to the last syllable afterwards.
var trailingPunct = map[rune]bool{
	'.': true, ',': true, '!': true, '?': true, ';': true, ':': true,
	'"': true, '\'': true, '\u201c': true, '\u201d': true, '\u2019': true,
	')': true, ']': true, '}': true, '\u00bb': true, '\u2026': true,
}

func isVowel(r rune) bool {
	switch r {
	case 'a', 'e', 'i', 'o', 'u':
		return true
	}
	return false
}

func isApostrophe(r rune) bool {
	return apostrophes[r]
}

// isFilipinoRune reports whether r (already lowercased) belongs to the
// alphabet admitted into the generated dictionary tier.
func isFilipinoRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z':
		return true
	case r == 'ñ', r == '-':
		return true
	case isApostrophe(r):
		return true
	}
	switch r {
	case 'á', 'à', 'â', 'é', 'è', 'ê', 'í', 'ì', 'î', 'ó', 'ò', 'ô', 'ú', 'ù', 'û':
		return true
	}
	return false
}
