// Package catalog implements the syllable catalog repository using
// PostgreSQL: precomputed syllabifications imported from word lists and the
// word-list fingerprints that make re-imports idempotent.
package catalog

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/pantig-backend/internal/adapter/postgres"
	"github.com/heartmarshall/pantig-backend/internal/domain"
)

var entryColumns = []string{"id", "word", "normalized", "syllables", "syllable_count", "source", "word_list_slug", "created_at"}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// catalogLockKey is the advisory lock key held while a word list is written.
const catalogLockKey int64 = 0x70616e746967

// Repo provides catalog persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new catalog repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type entryRow struct {
	ID            uuid.UUID `db:"id"`
	Word          string    `db:"word"`
	Normalized    string    `db:"normalized"`
	Syllables     []string  `db:"syllables"`
	SyllableCount int       `db:"syllable_count"`
	Source        string    `db:"source"`
	WordListSlug  string    `db:"word_list_slug"`
	CreatedAt     time.Time `db:"created_at"`
}

func (r entryRow) toDomain() domain.CatalogEntry {
	return domain.CatalogEntry{
		ID:            r.ID,
		Word:          r.Word,
		Normalized:    r.Normalized,
		Syllables:     r.Syllables,
		SyllableCount: r.SyllableCount,
		Source:        domain.SyllableSource(r.Source),
		WordListSlug:  r.WordListSlug,
		CreatedAt:     r.CreatedAt,
	}
}

type wordListRow struct {
	Slug        string    `db:"slug"`
	Fingerprint string    `db:"fingerprint"`
	WordCount   int       `db:"word_count"`
	ImportedAt  time.Time `db:"imported_at"`
}

func (r wordListRow) toDomain() domain.WordList {
	return domain.WordList{
		Slug:        r.Slug,
		Fingerprint: r.Fingerprint,
		WordCount:   r.WordCount,
		ImportedAt:  r.ImportedAt,
	}
}

// ---------------------------------------------------------------------------
// Catalog entries
// ---------------------------------------------------------------------------

// GetByNormalized returns the catalog entry for a normalized word.
func (r *Repo) GetByNormalized(ctx context.Context, normalized string) (domain.CatalogEntry, error) {
	query, args, err := psql.Select(entryColumns...).
		From("syllable_catalog").
		Where(sq.Eq{"normalized": normalized}).
		ToSql()
	if err != nil {
		return domain.CatalogEntry{}, fmt.Errorf("build get catalog entry query: %w", err)
	}

	var row entryRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return domain.CatalogEntry{}, postgres.MapError(err, "catalog_entry", normalized)
	}
	return row.toDomain(), nil
}

// Search returns catalog entries matching filter, ordered by normalized
// word, plus the total number of matches.
func (r *Repo) Search(ctx context.Context, filter domain.CatalogFilter) ([]domain.CatalogEntry, int, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	where := sq.And{}
	if filter.Prefix != nil && *filter.Prefix != "" {
		where = append(where, sq.Like{"normalized": postgres.EscapeLike(*filter.Prefix) + "%"})
	}
	if filter.SyllableCount != nil {
		where = append(where, sq.Eq{"syllable_count": *filter.SyllableCount})
	}
	if filter.Source != nil {
		where = append(where, sq.Eq{"source": string(*filter.Source)})
	}

	countQuery, countArgs, err := psql.Select("count(*)").From("syllable_catalog").Where(where).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count catalog query: %w", err)
	}

	var total int
	if err := q.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count catalog entries: %w", err)
	}

	query, args, err := psql.Select(entryColumns...).
		From("syllable_catalog").
		Where(where).
		OrderBy("normalized ASC").
		Limit(uint64(filter.Limit)).
		Offset(uint64(filter.Offset)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build search catalog query: %w", err)
	}

	var rows []entryRow
	if err := pgxscan.Select(ctx, q, &rows, query, args...); err != nil {
		return nil, 0, fmt.Errorf("search catalog: %w", err)
	}

	out := make([]domain.CatalogEntry, len(rows))
	for i, row := range rows {
		out[i] = row.toDomain()
	}
	return out, total, nil
}

// CountEntries returns the number of catalog entries.
func (r *Repo) CountEntries(ctx context.Context) (int, error) {
	var n int
	err := postgres.QuerierFromCtx(ctx, r.db).
		QueryRow(ctx, `SELECT count(*) FROM syllable_catalog`).
		Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count catalog entries: %w", err)
	}
	return n, nil
}

// BulkInsertEntries writes catalog entries using pgx.Batch. A word already
// in the catalog is refreshed when it belongs to the same word list and
// left alone otherwise. Returns the number of rows inserted or refreshed.
func (r *Repo) BulkInsertEntries(ctx context.Context, entries []domain.CatalogEntry) (int, error) {
	if len(entries) == 0 {
		return 0, nil
	}

	batch := &pgx.Batch{}
	for _, e := range entries {
		batch.Queue(
			`INSERT INTO syllable_catalog (id, word, normalized, syllables, syllable_count, source, word_list_slug, created_at)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			 ON CONFLICT (normalized) DO UPDATE
			 SET word           = EXCLUDED.word,
			     syllables      = EXCLUDED.syllables,
			     syllable_count = EXCLUDED.syllable_count,
			     source         = EXCLUDED.source
			 WHERE syllable_catalog.word_list_slug = EXCLUDED.word_list_slug`,
			e.ID, e.Word, e.Normalized, e.Syllables, e.SyllableCount, string(e.Source), e.WordListSlug, e.CreatedAt,
		)
	}

	return r.sendBatchExec(ctx, batch)
}

// ReleaseEntries hands over the entries owned by slug that slug no longer
// lists. An entry another list still contains moves to that list; the rest
// are deleted. Returns the number of deleted entries.
func (r *Repo) ReleaseEntries(ctx context.Context, slug string) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	_, err := q.Exec(ctx,
		`UPDATE syllable_catalog c
		 SET word_list_slug = m.slug
		 FROM (SELECT normalized, min(word_list_slug) AS slug FROM word_list_words GROUP BY normalized) m
		 WHERE c.normalized = m.normalized
		   AND c.word_list_slug = $1
		   AND NOT EXISTS (SELECT 1 FROM word_list_words w WHERE w.word_list_slug = $1 AND w.normalized = c.normalized)`,
		slug,
	)
	if err != nil {
		return 0, postgres.MapError(err, "word_list", slug)
	}

	tag, err := q.Exec(ctx,
		`DELETE FROM syllable_catalog c
		 WHERE c.word_list_slug = $1
		   AND NOT EXISTS (SELECT 1 FROM word_list_words w WHERE w.word_list_slug = $1 AND w.normalized = c.normalized)`,
		slug,
	)
	if err != nil {
		return 0, postgres.MapError(err, "word_list", slug)
	}
	return int(tag.RowsAffected()), nil
}

// LockCatalog takes the transaction-scoped lock that serializes word-list
// imports. It must run inside a transaction.
func (r *Repo) LockCatalog(ctx context.Context) error {
	_, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, `SELECT pg_advisory_xact_lock($1)`, catalogLockKey)
	if err != nil {
		return fmt.Errorf("lock catalog: %w", err)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Word lists
// ---------------------------------------------------------------------------

// GetWordList returns the import record for slug.
func (r *Repo) GetWordList(ctx context.Context, slug string) (domain.WordList, error) {
	var row wordListRow
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row,
		`SELECT slug, fingerprint, word_count, imported_at FROM word_lists WHERE slug = $1`, slug)
	if err != nil {
		return domain.WordList{}, postgres.MapError(err, "word_list", slug)
	}
	return row.toDomain(), nil
}

// ListWordLists returns every import record ordered by slug.
func (r *Repo) ListWordLists(ctx context.Context) ([]domain.WordList, error) {
	var rows []wordListRow
	err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows,
		`SELECT slug, fingerprint, word_count, imported_at FROM word_lists ORDER BY slug`)
	if err != nil {
		return nil, fmt.Errorf("list word lists: %w", err)
	}

	out := make([]domain.WordList, len(rows))
	for i, row := range rows {
		out[i] = row.toDomain()
	}
	return out, nil
}

// ReplaceWordListWords sets the normalized words slug contains.
func (r *Repo) ReplaceWordListWords(ctx context.Context, slug string, normalized []string) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	if _, err := q.Exec(ctx, `DELETE FROM word_list_words WHERE word_list_slug = $1`, slug); err != nil {
		return postgres.MapError(err, "word_list", slug)
	}
	if len(normalized) == 0 {
		return nil
	}

	_, err := q.Exec(ctx,
		`INSERT INTO word_list_words (word_list_slug, normalized)
		 SELECT $1, unnest($2::text[])
		 ON CONFLICT DO NOTHING`,
		slug, normalized,
	)
	if err != nil {
		return postgres.MapError(err, "word_list", slug)
	}
	return nil
}

// UpsertWordList records an import, replacing the fingerprint of an earlier
// import of the same slug.
func (r *Repo) UpsertWordList(ctx context.Context, wl domain.WordList) error {
	_, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx,
		`INSERT INTO word_lists (slug, fingerprint, word_count, imported_at)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (slug) DO UPDATE
		 SET fingerprint = EXCLUDED.fingerprint,
		     word_count  = EXCLUDED.word_count,
		     imported_at = EXCLUDED.imported_at`,
		wl.Slug, wl.Fingerprint, wl.WordCount, wl.ImportedAt,
	)
	if err != nil {
		return postgres.MapError(err, "word_list", wl.Slug)
	}
	return nil
}

func (r *Repo) sendBatchExec(ctx context.Context, batch *pgx.Batch) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)
	results := q.SendBatch(ctx, batch)
	defer results.Close()

	var inserted int
	for range batch.Len() {
		tag, err := results.Exec()
		if err != nil {
			return inserted, fmt.Errorf("batch exec: %w", err)
		}
		inserted += int(tag.RowsAffected())
	}

	return inserted, nil
}
