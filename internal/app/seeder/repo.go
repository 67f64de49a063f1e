// Package seeder imports Filipino word lists into the syllable catalog.
package seeder

import (
	"context"

	"github.com/heartmarshall/pantig-backend/internal/domain"
	"github.com/heartmarshall/pantig-backend/internal/service/syllabifier/kwf"
)

// CatalogBulkRepo defines the batch repository contract consumed by the seeder pipeline.
// All methods use only domain types; no adapter imports.
// Implemented by catalog.Repo.
type CatalogBulkRepo interface {
	// Serializes imports until the surrounding transaction ends.
	LockCatalog(ctx context.Context) error

	GetWordList(ctx context.Context, slug string) (domain.WordList, error)
	UpsertWordList(ctx context.Context, wl domain.WordList) error
	ReplaceWordListWords(ctx context.Context, slug string, normalized []string) error

	// Inserts new words and refreshes words owned by the same list;
	// returns rows written.
	BulkInsertEntries(ctx context.Context, entries []domain.CatalogEntry) (int, error)

	// Moves or deletes entries the list no longer contains; returns deletions.
	ReleaseEntries(ctx context.Context, slug string) (int, error)
}

// TxRunner runs fn inside a database transaction.
type TxRunner interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Resolver syllabifies one word and reports which tier answered.
// Implemented by *kwf.Dictionary.
type Resolver interface {
	Resolve(word string) kwf.Result
}
