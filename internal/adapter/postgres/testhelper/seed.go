package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/pantig-backend/internal/domain"
)

// UniqueSuffix returns a short unique lowercase string for generating
// non-conflicting test data.
func UniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedWordList creates a word_lists row with a unique slug.
func SeedWordList(t *testing.T, pool *pgxpool.Pool) domain.WordList {
	t.Helper()

	wl := domain.WordList{
		Slug:        "list-" + UniqueSuffix(),
		Fingerprint: "fp-" + UniqueSuffix(),
		WordCount:   0,
		ImportedAt:  time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO word_lists (slug, fingerprint, word_count, imported_at) VALUES ($1, $2, $3, $4)`,
		wl.Slug, wl.Fingerprint, wl.WordCount, wl.ImportedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: seed word list: %v", err)
	}
	return wl
}

// SeedOverride creates a syllable override for a unique word built from
// the given syllables plus a random tail syllable.
func SeedOverride(t *testing.T, pool *pgxpool.Pool, syllables ...string) domain.SyllableOverride {
	t.Helper()

	syllables = append(syllables, "x"+UniqueSuffix())
	word := ""
	for _, s := range syllables {
		word += s
	}
	now := time.Now().UTC().Truncate(time.Microsecond)

	o := domain.SyllableOverride{
		ID:         uuid.New(),
		Word:       word,
		Normalized: word,
		Syllables:  syllables,
		CreatedBy:  "seed",
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO syllable_overrides (id, word, normalized, syllables, note, created_by, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		o.ID, o.Word, o.Normalized, o.Syllables, o.Note, o.CreatedBy, o.CreatedAt, o.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: seed override: %v", err)
	}
	return o
}
