package syllabifier

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/google/uuid"

	"github.com/heartmarshall/pantig-backend/internal/domain"
	"github.com/heartmarshall/pantig-backend/internal/service/syllabifier/kwf"
	"github.com/heartmarshall/pantig-backend/pkg/ctxutil"
)

// requireAdmin returns the caller's subject if the context carries an admin.
func requireAdmin(ctx context.Context) (string, error) {
	subject, ok := ctxutil.SubjectFromCtx(ctx)
	if !ok {
		return "", domain.ErrUnauthorized
	}
	if !ctxutil.UserRoleFromCtx(ctx).IsAdmin() {
		return "", domain.ErrForbidden
	}
	return subject, nil
}

// CreateOverride stores an admin correction for a word. A word can have at
// most one override; a second one fails with domain.ErrAlreadyExists.
func (s *Service) CreateOverride(ctx context.Context, input CreateOverrideInput) (domain.SyllableOverride, error) {
	actor, err := requireAdmin(ctx)
	if err != nil {
		return domain.SyllableOverride{}, err
	}

	if err := input.Validate(); err != nil {
		return domain.SyllableOverride{}, err
	}

	word := domain.CleanWord(input.Word)
	now := s.now()
	override := domain.SyllableOverride{
		ID:         uuid.New(),
		Word:       word,
		Normalized: kwf.LookupKey(word),
		Syllables:  normalizeSyllables(cleanSyllables(input.Syllables)),
		Note:       trimOrNil(input.Note),
		CreatedBy:  actor,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	var created domain.SyllableOverride
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var createErr error
		created, createErr = s.overrides.Create(txCtx, override)
		if createErr != nil {
			return fmt.Errorf("create override: %w", createErr)
		}

		auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			Actor:      actor,
			EntityType: domain.EntityTypeOverride,
			EntityID:   &created.ID,
			Action:     domain.AuditActionCreate,
			Changes: map[string]any{
				"word":      map[string]any{"new": created.Word},
				"syllables": map[string]any{"new": created.Syllables},
			},
		})
		if auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}

		return nil
	})
	if err != nil {
		return domain.SyllableOverride{}, err
	}

	s.forget(created.Normalized)
	s.log.InfoContext(ctx, "override created",
		slog.String("actor", actor),
		slog.String("override_id", created.ID.String()),
		slog.String("word", created.Word),
	)

	return created, nil
}

// UpdateOverride replaces the syllables of an existing override and
// optionally its note.
func (s *Service) UpdateOverride(ctx context.Context, input UpdateOverrideInput) (domain.SyllableOverride, error) {
	actor, err := requireAdmin(ctx)
	if err != nil {
		return domain.SyllableOverride{}, err
	}

	if err := input.Validate(); err != nil {
		return domain.SyllableOverride{}, err
	}

	var updated domain.SyllableOverride
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		old, getErr := s.overrides.GetByID(txCtx, input.ID)
		if getErr != nil {
			return fmt.Errorf("get override: %w", getErr)
		}

		syllables := cleanSyllables(input.Syllables)
		if errs := domain.ValidateSyllables(old.Word, syllables); len(errs) > 0 {
			return &domain.ValidationError{Errors: errs}
		}

		next := old
		next.Syllables = normalizeSyllables(syllables)
		if input.Note != nil {
			next.Note = trimOrNil(input.Note)
		}
		next.UpdatedAt = s.now()

		var updateErr error
		updated, updateErr = s.overrides.Update(txCtx, next)
		if updateErr != nil {
			return fmt.Errorf("update override: %w", updateErr)
		}

		changes := map[string]any{}
		if !slices.Equal(old.Syllables, updated.Syllables) {
			changes["syllables"] = map[string]any{"old": old.Syllables, "new": updated.Syllables}
		}
		if !equalNote(old.Note, updated.Note) {
			changes["note"] = map[string]any{"old": old.Note, "new": updated.Note}
		}

		auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			Actor:      actor,
			EntityType: domain.EntityTypeOverride,
			EntityID:   &updated.ID,
			Action:     domain.AuditActionUpdate,
			Changes:    changes,
		})
		if auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}

		return nil
	})
	if err != nil {
		return domain.SyllableOverride{}, err
	}

	s.forget(updated.Normalized)
	s.log.InfoContext(ctx, "override updated",
		slog.String("actor", actor),
		slog.String("override_id", updated.ID.String()),
	)

	return updated, nil
}

// DeleteOverride removes an override; the word falls back to the built-in
// tiers.
func (s *Service) DeleteOverride(ctx context.Context, id uuid.UUID) error {
	actor, err := requireAdmin(ctx)
	if err != nil {
		return err
	}

	if id == uuid.Nil {
		return domain.NewValidationError("id", "required")
	}

	var deleted domain.SyllableOverride
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var getErr error
		deleted, getErr = s.overrides.GetByID(txCtx, id)
		if getErr != nil {
			return fmt.Errorf("get override: %w", getErr)
		}

		if delErr := s.overrides.Delete(txCtx, id); delErr != nil {
			return fmt.Errorf("delete override: %w", delErr)
		}

		auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			Actor:      actor,
			EntityType: domain.EntityTypeOverride,
			EntityID:   &id,
			Action:     domain.AuditActionDelete,
			Changes: map[string]any{
				"word":      map[string]any{"old": deleted.Word},
				"syllables": map[string]any{"old": deleted.Syllables},
			},
		})
		if auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}

		return nil
	})
	if err != nil {
		return err
	}

	s.forget(deleted.Normalized)
	s.log.InfoContext(ctx, "override deleted",
		slog.String("actor", actor),
		slog.String("override_id", id.String()),
		slog.String("word", deleted.Word),
	)

	return nil
}

// ListOverrides pages through overrides ordered by normalized word.
func (s *Service) ListOverrides(ctx context.Context, input ListOverridesInput) ([]domain.SyllableOverride, int, error) {
	if _, err := requireAdmin(ctx); err != nil {
		return nil, 0, err
	}

	if err := input.Validate(); err != nil {
		return nil, 0, err
	}

	prefix := ""
	if input.Prefix != "" {
		prefix = kwf.LookupKey(input.Prefix)
	}
	limit := clampLimit(input.Limit, defaultOverrideLimit, s.cfg.CatalogMaxLimit)

	overrides, total, err := s.overrides.List(ctx, prefix, limit, input.Offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list overrides: %w", err)
	}
	return overrides, total, nil
}

// forget drops an in-flight lookup so the next Split sees the change.
func (s *Service) forget(normalized string) {
	s.group.Forget(normalized)
}

func equalNote(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
