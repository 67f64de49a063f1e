package syllabifier

import (
	"context"
	"fmt"
	"time"

	"github.com/heartmarshall/pantig-backend/internal/domain"
	"github.com/heartmarshall/pantig-backend/internal/service/syllabifier/kwf"
)

// SearchCatalog pages through imported syllabifications. The prefix is
// matched against the normalized word, so "kuma" also finds "kumaín".
func (s *Service) SearchCatalog(ctx context.Context, input SearchCatalogInput) ([]domain.CatalogEntry, int, error) {
	if err := input.Validate(); err != nil {
		return nil, 0, err
	}

	filter := domain.CatalogFilter{
		SyllableCount: input.SyllableCount,
		Source:        input.Source,
		Limit:         clampLimit(input.Limit, defaultCatalogLimit, s.cfg.CatalogMaxLimit),
		Offset:        input.Offset,
	}
	if input.Prefix != "" {
		prefix := kwf.LookupKey(input.Prefix)
		filter.Prefix = &prefix
	}

	entries, total, err := s.catalog.Search(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("search catalog: %w", err)
	}
	return entries, total, nil
}

// DictionaryStats summarises every tier the service draws on.
type DictionaryStats struct {
	Entries        int
	Curated        int
	Generated      int
	Duplicates     int
	Skipped        int
	Failures       []kwf.BuildFailure
	BuildDuration  time.Duration
	MemoEntries    int
	Overrides      int
	CatalogEntries int
	WordLists      []domain.WordList
}

// DictionaryStats reports the in-memory dictionary build together with the
// override and catalog counts.
func (s *Service) DictionaryStats(ctx context.Context) (DictionaryStats, error) {
	report := s.dict.Report()

	stats := DictionaryStats{
		Entries:       s.dict.Len(),
		Curated:       report.Curated,
		Generated:     report.Generated,
		Duplicates:    report.Duplicates,
		Skipped:       report.Skipped,
		Failures:      report.Failures,
		BuildDuration: report.Duration,
	}
	if s.memo != nil {
		stats.MemoEntries = s.memo.Len()
	}

	var err error
	if stats.Overrides, err = s.overrides.Count(ctx); err != nil {
		return DictionaryStats{}, fmt.Errorf("count overrides: %w", err)
	}
	if stats.CatalogEntries, err = s.catalog.CountEntries(ctx); err != nil {
		return DictionaryStats{}, fmt.Errorf("count catalog entries: %w", err)
	}
	if stats.WordLists, err = s.catalog.ListWordLists(ctx); err != nil {
		return DictionaryStats{}, fmt.Errorf("list word lists: %w", err)
	}

	return stats, nil
}

func clampLimit(limit, def, maxLimit int) int {
	switch {
	case limit <= 0:
		return min(def, maxLimit)
	case limit > maxLimit:
		return maxLimit
	default:
		return limit
	}
}
