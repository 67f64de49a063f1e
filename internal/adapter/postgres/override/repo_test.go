package override_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	pgxmock "github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/pantig-backend/internal/adapter/postgres/override"
	"github.com/heartmarshall/pantig-backend/internal/domain"
)

var overrideColumns = []string{"id", "word", "normalized", "syllables", "note", "created_by", "created_at", "updated_at"}

func newRepo(t *testing.T) (*override.Repo, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return override.New(mock), mock
}

func sampleOverride() domain.SyllableOverride {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	note := "reviewer request"
	return domain.SyllableOverride{
		ID:         uuid.New(),
		Word:       "Ekstra",
		Normalized: "ekstra",
		Syllables:  []string{"eks", "tra"},
		Note:       &note,
		CreatedBy:  "admin-1",
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func overrideRows(o domain.SyllableOverride) *pgxmock.Rows {
	return pgxmock.NewRows(overrideColumns).
		AddRow(o.ID, o.Word, o.Normalized, o.Syllables, o.Note, o.CreatedBy, o.CreatedAt, o.UpdatedAt)
}

func TestRepo_GetByNormalized(t *testing.T) {
	t.Parallel()

	o := sampleOverride()

	tests := []struct {
		name    string
		setup   func(mock pgxmock.PgxPoolIface)
		wantErr error
	}{
		{
			name: "found",
			setup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(`SELECT .+ FROM syllable_overrides WHERE normalized = \$1`).
					WithArgs("ekstra").
					WillReturnRows(overrideRows(o))
			},
		},
		{
			name: "not found",
			setup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(`SELECT .+ FROM syllable_overrides`).
					WithArgs("ekstra").
					WillReturnError(pgx.ErrNoRows)
			},
			wantErr: domain.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			repo, mock := newRepo(t)
			tt.setup(mock)

			got, err := repo.GetByNormalized(context.Background(), "ekstra")
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, o, got)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepo_GetByID(t *testing.T) {
	t.Parallel()

	repo, mock := newRepo(t)
	o := sampleOverride()

	mock.ExpectQuery(`SELECT .+ FROM syllable_overrides WHERE id = \$1`).
		WithArgs(o.ID.String()).
		WillReturnRows(overrideRows(o))

	got, err := repo.GetByID(context.Background(), o.ID)
	require.NoError(t, err)
	assert.Equal(t, o.Syllables, got.Syllables)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepo_Create(t *testing.T) {
	t.Parallel()

	t.Run("inserted", func(t *testing.T) {
		t.Parallel()

		repo, mock := newRepo(t)
		o := sampleOverride()

		mock.ExpectQuery(`INSERT INTO syllable_overrides .+ RETURNING`).
			WithArgs(o.ID, o.Word, o.Normalized, o.Syllables, o.Note, o.CreatedBy, o.CreatedAt, o.UpdatedAt).
			WillReturnRows(overrideRows(o))

		got, err := repo.Create(context.Background(), o)
		require.NoError(t, err)
		assert.Equal(t, o, got)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("duplicate word", func(t *testing.T) {
		t.Parallel()

		repo, mock := newRepo(t)
		o := sampleOverride()

		mock.ExpectQuery(`INSERT INTO syllable_overrides`).
			WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(),
				pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
			WillReturnError(&pgconn.PgError{Code: "23505"})

		_, err := repo.Create(context.Background(), o)
		require.ErrorIs(t, err, domain.ErrAlreadyExists)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepo_Update(t *testing.T) {
	t.Parallel()

	repo, mock := newRepo(t)
	o := sampleOverride()
	o.Syllables = []string{"ek", "stra"}

	mock.ExpectQuery(`UPDATE syllable_overrides SET syllables = \$1, note = \$2, updated_at = \$3 WHERE id = \$4 RETURNING`).
		WithArgs(o.Syllables, o.Note, o.UpdatedAt, o.ID.String()).
		WillReturnRows(overrideRows(o))

	got, err := repo.Update(context.Background(), o)
	require.NoError(t, err)
	assert.Equal(t, []string{"ek", "stra"}, got.Syllables)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepo_Delete(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		setup   func(mock pgxmock.PgxPoolIface, id uuid.UUID)
		wantErr error
	}{
		{
			name: "deleted",
			setup: func(mock pgxmock.PgxPoolIface, id uuid.UUID) {
				mock.ExpectExec(`DELETE FROM syllable_overrides WHERE id = \$1`).
					WithArgs(id.String()).
					WillReturnResult(pgxmock.NewResult("DELETE", 1))
			},
		},
		{
			name: "missing",
			setup: func(mock pgxmock.PgxPoolIface, id uuid.UUID) {
				mock.ExpectExec(`DELETE FROM syllable_overrides`).
					WithArgs(id.String()).
					WillReturnResult(pgxmock.NewResult("DELETE", 0))
			},
			wantErr: domain.ErrNotFound,
		},
		{
			name: "database error",
			setup: func(mock pgxmock.PgxPoolIface, id uuid.UUID) {
				mock.ExpectExec(`DELETE FROM syllable_overrides`).
					WithArgs(id.String()).
					WillReturnError(errors.New("connection reset"))
			},
			wantErr: errors.New("connection reset"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			repo, mock := newRepo(t)
			id := uuid.New()
			tt.setup(mock, id)

			err := repo.Delete(context.Background(), id)
			switch {
			case tt.wantErr == nil:
				require.NoError(t, err)
			case errors.Is(tt.wantErr, domain.ErrNotFound):
				require.ErrorIs(t, err, domain.ErrNotFound)
			default:
				require.ErrorContains(t, err, tt.wantErr.Error())
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepo_List(t *testing.T) {
	t.Parallel()

	repo, mock := newRepo(t)
	o := sampleOverride()

	mock.ExpectQuery(`SELECT count\(\*\) FROM syllable_overrides WHERE \(normalized LIKE \$1\)`).
		WithArgs("ek%").
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(`SELECT .+ FROM syllable_overrides WHERE \(normalized LIKE \$1\) ORDER BY normalized ASC LIMIT 10 OFFSET 0`).
		WithArgs("ek%").
		WillReturnRows(overrideRows(o))

	got, total, err := repo.List(context.Background(), "ek", 10, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, got, 1)
	assert.Equal(t, "ekstra", got[0].Normalized)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepo_Count(t *testing.T) {
	t.Parallel()

	repo, mock := newRepo(t)
	mock.ExpectQuery(`SELECT count\(\*\) FROM syllable_overrides`).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(7))

	n, err := repo.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 7, n)
	assert.NoError(t, mock.ExpectationsWereMet())
}
