package syllabifier

import (
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/pantig-backend/internal/domain"
	"github.com/heartmarshall/pantig-backend/internal/service/syllabifier/kwf"
)

// SearchCatalogInput holds catalog search parameters. Limit is clamped by
// the service rather than rejected.
type SearchCatalogInput struct {
	Prefix        string
	SyllableCount *int
	Source        *domain.SyllableSource
	Limit         int
	Offset        int
}

// Validate checks all fields and collects all errors.
func (i SearchCatalogInput) Validate() error {
	var errs []domain.FieldError

	if utf8.RuneCountInString(i.Prefix) > domain.MaxWordLength {
		errs = append(errs, domain.FieldError{Field: "prefix", Message: "too long"})
	}
	if i.SyllableCount != nil && (*i.SyllableCount < 1 || *i.SyllableCount > domain.MaxSyllableCount) {
		errs = append(errs, domain.FieldError{Field: "syllables", Message: "out of range"})
	}
	if i.Source != nil && !i.Source.IsValid() {
		errs = append(errs, domain.FieldError{Field: "source", Message: "invalid value"})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must not be negative"})
	}

	return domain.JoinFieldErrors(errs)
}

// CreateOverrideInput holds the parameters for creating an override.
// Syllables must concatenate to Word exactly; case and diacritics may
// differ from later lookups since overrides are stored normalized.
type CreateOverrideInput struct {
	Word      string
	Syllables []string
	Note      *string
}

// Validate checks all fields and collects all errors.
func (i CreateOverrideInput) Validate() error {
	word := domain.CleanWord(i.Word)

	errs := domain.ValidateWord("word", word)
	if len(errs) == 0 {
		if kwf.LookupKey(word) != kwf.NormalizeKey(word) {
			errs = append(errs, domain.FieldError{Field: "word", Message: "must not end with punctuation"})
		}
		errs = append(errs, domain.ValidateSyllables(word, cleanSyllables(i.Syllables))...)
	}
	errs = append(errs, validateNote(i.Note)...)

	return domain.JoinFieldErrors(errs)
}

// UpdateOverrideInput holds the parameters for updating an override.
// The word itself is immutable; delete and recreate to change it.
type UpdateOverrideInput struct {
	ID        uuid.UUID
	Syllables []string
	Note      *string // nil = don't change; ptr("") = clear
}

// Validate checks the fields that do not depend on the stored override.
func (i UpdateOverrideInput) Validate() error {
	var errs []domain.FieldError

	if i.ID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	if len(i.Syllables) == 0 {
		errs = append(errs, domain.FieldError{Field: "syllables", Message: "required"})
	}
	errs = append(errs, validateNote(i.Note)...)

	return domain.JoinFieldErrors(errs)
}

// ListOverridesInput holds override listing parameters.
type ListOverridesInput struct {
	Prefix string
	Limit  int
	Offset int
}

// Validate checks all fields and collects all errors.
func (i ListOverridesInput) Validate() error {
	var errs []domain.FieldError

	if utf8.RuneCountInString(i.Prefix) > domain.MaxWordLength {
		errs = append(errs, domain.FieldError{Field: "prefix", Message: "too long"})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must not be negative"})
	}

	return domain.JoinFieldErrors(errs)
}

func validateNote(note *string) []domain.FieldError {
	if note != nil && utf8.RuneCountInString(strings.TrimSpace(*note)) > domain.MaxNoteLength {
		return []domain.FieldError{{Field: "note", Message: "max 500 characters"}}
	}
	return nil
}

// cleanSyllables NFC-composes each syllable so they compare equal to a
// cleaned word. Whitespace is kept so blank syllables are still caught.
func cleanSyllables(syllables []string) []string {
	out := make([]string, len(syllables))
	for i, s := range syllables {
		if strings.TrimSpace(s) == "" {
			out[i] = s
			continue
		}
		out[i] = domain.CleanWord(s)
	}
	return out
}

// normalizeSyllables converts validated syllables into the lowercase,
// diacritic-free form overrides are stored in.
func normalizeSyllables(syllables []string) []string {
	out := make([]string, len(syllables))
	for i, s := range syllables {
		out[i] = kwf.NormalizeKey(s)
	}
	return out
}
