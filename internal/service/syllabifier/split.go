package syllabifier

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/pantig-backend/internal/domain"
	"github.com/heartmarshall/pantig-backend/internal/service/syllabifier/kwf"
)

// Split syllabifies a single word. The word is cleaned first; blank,
// multi-word and overlong input is rejected with a validation error.
func (s *Service) Split(ctx context.Context, word string) (domain.Syllabification, error) {
	cleaned := domain.CleanWord(word)
	if errs := domain.ValidateWord("word", cleaned); len(errs) > 0 {
		return domain.Syllabification{}, &domain.ValidationError{Errors: errs}
	}
	if err := ctx.Err(); err != nil {
		return domain.Syllabification{}, err
	}

	return s.resolve(ctx, cleaned), nil
}

// SplitBatch syllabifies up to Config.BatchLimit words, preserving order.
// Every word is validated before any is resolved.
func (s *Service) SplitBatch(ctx context.Context, words []string) ([]domain.Syllabification, error) {
	var errs []domain.FieldError
	switch {
	case len(words) == 0:
		errs = append(errs, domain.FieldError{Field: "words", Message: "required"})
	case len(words) > s.cfg.BatchLimit:
		errs = append(errs, domain.FieldError{
			Field:   "words",
			Message: fmt.Sprintf("max %d words per batch", s.cfg.BatchLimit),
		})
	}

	cleaned := make([]string, len(words))
	for i, w := range words {
		cleaned[i] = domain.CleanWord(w)
		errs = append(errs, domain.ValidateWord(fmt.Sprintf("words[%d]", i), cleaned[i])...)
	}
	if len(errs) > 0 {
		return nil, &domain.ValidationError{Errors: errs}
	}

	out := make([]domain.Syllabification, len(cleaned))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(batchConcurrency)
	for i, w := range cleaned {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			out[i] = s.resolve(gctx, w)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}

// resolve runs the tiers in order: override, dictionary, rule engine.
func (s *Service) resolve(ctx context.Context, word string) domain.Syllabification {
	key := kwf.LookupKey(word)
	result := domain.Syllabification{Word: word, Normalized: key}

	if ov, ok := s.findOverride(ctx, key); ok {
		result.Syllables = kwf.Recase(word, ov.Syllables)
		result.Source = domain.SyllableSourceOverride
		return result
	}

	if r, ok := s.dict.Find(word); ok {
		result.Syllables = r.Syllables
		result.Source = toDomainSource(r.Source)
		return result
	}

	result.Syllables = s.splitRules(word)
	result.Source = domain.SyllableSourceRules
	return result
}

func (s *Service) splitRules(word string) []string {
	if s.memo != nil {
		if cached, ok := s.memo.Get(word); ok {
			return append([]string(nil), cached...)
		}
	}

	syllables := s.split(word)
	if s.memo != nil {
		s.memo.Add(word, append([]string(nil), syllables...))
	}
	return syllables
}

// findOverride looks up an admin override. Concurrent lookups of the same
// key share one query. Store failures are logged and treated as a miss so
// the built-in tiers still answer.
func (s *Service) findOverride(ctx context.Context, key string) (domain.SyllableOverride, bool) {
	if s.overrides == nil || key == "" {
		return domain.SyllableOverride{}, false
	}

	v, err, _ := s.group.Do(key, func() (any, error) {
		// Detached from the caller so one cancelled request does not fail
		// the lookup for everyone sharing it.
		lookupCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.cfg.OverrideTimeout)
		defer cancel()
		return s.overrides.GetByNormalized(lookupCtx, key)
	})
	switch {
	case err == nil:
		return v.(domain.SyllableOverride), true
	case errors.Is(err, domain.ErrNotFound):
		return domain.SyllableOverride{}, false
	default:
		s.log.WarnContext(ctx, "override lookup failed, using built-in tiers",
			slog.String("normalized", key),
			slog.String("error", err.Error()),
		)
		return domain.SyllableOverride{}, false
	}
}
