package domain

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

// Limits on syllable data accepted from clients.
const (
	MaxWordLength    = 64
	MaxSyllableCount = 21
	MaxNoteLength    = 500
)

// Syllabification is the syllable split of one word.
type Syllabification struct {
	Word       string
	Normalized string
	Syllables  []string
	Source     SyllableSource
}

// SyllableCount returns the number of syllables.
func (s Syllabification) SyllableCount() int { return len(s.Syllables) }

// SyllableOverride is an admin-maintained correction. It takes precedence
// over every built-in tier.
type SyllableOverride struct {
	ID         uuid.UUID
	Word       string
	Normalized string
	Syllables  []string
	Note       *string
	CreatedBy  string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// CatalogEntry is a precomputed syllabification imported from a word list.
type CatalogEntry struct {
	ID            uuid.UUID
	Word          string
	Normalized    string
	Syllables     []string
	SyllableCount int
	Source        SyllableSource
	WordListSlug  string
	CreatedAt     time.Time
}

// WordList records an imported dataset.
type WordList struct {
	Slug        string
	Fingerprint string
	WordCount   int
	ImportedAt  time.Time
}

// SyllableQuestion is the payload stored in a quiz question's syllableParts.
type SyllableQuestion struct {
	Word          string
	SyllableParts []string
	SyllableCount int
	Source        SyllableSource
}

// CatalogFilter contains filtering/pagination parameters for catalog searches.
type CatalogFilter struct {
	Prefix        *string
	SyllableCount *int
	Source        *SyllableSource
	Limit         int
	Offset        int
}

// ValidateSyllables checks that syllables form a usable split of word:
// non-empty parts that concatenate back to word exactly.
func ValidateSyllables(word string, syllables []string) []FieldError {
	var errs []FieldError

	if len(syllables) == 0 {
		return append(errs, FieldError{Field: "syllables", Message: "required"})
	}
	if len(syllables) > MaxSyllableCount {
		errs = append(errs, FieldError{Field: "syllables", Message: "too many syllables"})
	}
	for _, s := range syllables {
		if strings.TrimSpace(s) == "" {
			errs = append(errs, FieldError{Field: "syllables", Message: "syllables must not be blank"})
			break
		}
	}
	if strings.Join(syllables, "") != word {
		errs = append(errs, FieldError{Field: "syllables", Message: "syllables must concatenate to the word"})
	}
	return errs
}

// ValidateWord checks a single word accepted from a client.
func ValidateWord(field, word string) []FieldError {
	switch {
	case word == "":
		return []FieldError{{Field: field, Message: "required"}}
	case utf8.RuneCountInString(word) > MaxWordLength:
		return []FieldError{{Field: field, Message: "too long"}}
	case strings.ContainsAny(word, " \t\n"):
		return []FieldError{{Field: field, Message: "must be a single word"}}
	}
	return nil
}
