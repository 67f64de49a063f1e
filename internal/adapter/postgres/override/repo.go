// Package override implements the syllable override repository using
// PostgreSQL. Overrides are keyed by the normalized word.
package override

import (
	"context"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/pantig-backend/internal/adapter/postgres"
	"github.com/heartmarshall/pantig-backend/internal/domain"
)

const (
	tableName = "syllable_overrides"
	entity    = "syllable_override"
)

var columns = []string{"id", "word", "normalized", "syllables", "note", "created_by", "created_at", "updated_at"}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Repo provides syllable override persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new override repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type overrideRow struct {
	ID         uuid.UUID `db:"id"`
	Word       string    `db:"word"`
	Normalized string    `db:"normalized"`
	Syllables  []string  `db:"syllables"`
	Note       *string   `db:"note"`
	CreatedBy  string    `db:"created_by"`
	CreatedAt  time.Time `db:"created_at"`
	UpdatedAt  time.Time `db:"updated_at"`
}

func (r overrideRow) toDomain() domain.SyllableOverride {
	return domain.SyllableOverride{
		ID:         r.ID,
		Word:       r.Word,
		Normalized: r.Normalized,
		Syllables:  r.Syllables,
		Note:       r.Note,
		CreatedBy:  r.CreatedBy,
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByNormalized returns the override for a normalized word.
func (r *Repo) GetByNormalized(ctx context.Context, normalized string) (domain.SyllableOverride, error) {
	query, args, err := psql.Select(columns...).
		From(tableName).
		Where(sq.Eq{"normalized": normalized}).
		ToSql()
	if err != nil {
		return domain.SyllableOverride{}, fmt.Errorf("build get override query: %w", err)
	}

	var row overrideRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return domain.SyllableOverride{}, postgres.MapError(err, entity, normalized)
	}
	return row.toDomain(), nil
}

// GetByID returns the override with the given ID.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (domain.SyllableOverride, error) {
	query, args, err := psql.Select(columns...).
		From(tableName).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return domain.SyllableOverride{}, fmt.Errorf("build get override query: %w", err)
	}

	var row overrideRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return domain.SyllableOverride{}, postgres.MapError(err, entity, id)
	}
	return row.toDomain(), nil
}

// List returns overrides ordered by normalized word, plus the total count.
// A non-empty prefix restricts both to words starting with it.
func (r *Repo) List(ctx context.Context, prefix string, limit, offset int) ([]domain.SyllableOverride, int, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	where := sq.And{}
	if prefix != "" {
		where = append(where, sq.Like{"normalized": postgres.EscapeLike(prefix) + "%"})
	}

	countQuery, countArgs, err := psql.Select("count(*)").From(tableName).Where(where).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count overrides query: %w", err)
	}

	var total int
	if err := q.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count overrides: %w", err)
	}

	query, args, err := psql.Select(columns...).
		From(tableName).
		Where(where).
		OrderBy("normalized ASC").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list overrides query: %w", err)
	}

	var rows []overrideRow
	if err := pgxscan.Select(ctx, q, &rows, query, args...); err != nil {
		return nil, 0, fmt.Errorf("list overrides: %w", err)
	}

	out := make([]domain.SyllableOverride, len(rows))
	for i, row := range rows {
		out[i] = row.toDomain()
	}
	return out, total, nil
}

// Count returns the number of stored overrides.
func (r *Repo) Count(ctx context.Context) (int, error) {
	var n int
	err := postgres.QuerierFromCtx(ctx, r.db).
		QueryRow(ctx, `SELECT count(*) FROM syllable_overrides`).
		Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count overrides: %w", err)
	}
	return n, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new override. A second override for the same normalized
// word fails with domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, o domain.SyllableOverride) (domain.SyllableOverride, error) {
	query, args, err := psql.Insert(tableName).
		Columns(columns...).
		Values(o.ID, o.Word, o.Normalized, o.Syllables, o.Note, o.CreatedBy, o.CreatedAt, o.UpdatedAt).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return domain.SyllableOverride{}, fmt.Errorf("build insert override query: %w", err)
	}

	var row overrideRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return domain.SyllableOverride{}, postgres.MapError(err, entity, o.Normalized)
	}
	return row.toDomain(), nil
}

// Update replaces the syllables and note of an existing override.
func (r *Repo) Update(ctx context.Context, o domain.SyllableOverride) (domain.SyllableOverride, error) {
	query, args, err := psql.Update(tableName).
		Set("syllables", o.Syllables).
		Set("note", o.Note).
		Set("updated_at", o.UpdatedAt).
		Where(sq.Eq{"id": o.ID}).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return domain.SyllableOverride{}, fmt.Errorf("build update override query: %w", err)
	}

	var row overrideRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return domain.SyllableOverride{}, postgres.MapError(err, entity, o.ID)
	}
	return row.toDomain(), nil
}

// Delete removes an override by ID.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	query, args, err := psql.Delete(tableName).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("build delete override query: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, entity, id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
	}
	return nil
}
