package seeder

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/pantig-backend/internal/app/seeder/wordlist"
	"github.com/heartmarshall/pantig-backend/internal/domain"
	"github.com/heartmarshall/pantig-backend/internal/service/syllabifier/kwf"
)

// ImportResult holds the outcome of importing a single word list.
type ImportResult struct {
	Slug         string
	Words        int
	Inserted     int // new or refreshed entries
	Removed      int
	Duplicates   int // words already in the catalog from another list
	Inadmissible int
	Unchanged    bool // fingerprint matched the previous import
	Duration     time.Duration
	Err          error
}

// Pipeline parses word lists, syllabifies them and writes the catalog.
// Lists are parsed and syllabified concurrently; each list is written in its
// own transaction under the catalog lock, so writes happen one list at a
// time.
type Pipeline struct {
	log      *slog.Logger
	repo     CatalogBulkRepo
	tx       TxRunner
	resolver Resolver
	cfg      Config

	mu      sync.Mutex
	results map[string]ImportResult
}

// NewPipeline creates a new Pipeline.
func NewPipeline(log *slog.Logger, repo CatalogBulkRepo, tx TxRunner, resolver Resolver, cfg Config) *Pipeline {
	return &Pipeline{
		log:      log,
		repo:     repo,
		tx:       tx,
		resolver: resolver,
		cfg:      cfg,
		results:  make(map[string]ImportResult),
	}
}

// Results returns per-list results keyed by slug after Run completes.
func (p *Pipeline) Results() map[string]ImportResult {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.results
}

// HasErrors returns true if any list failed.
func (p *Pipeline) HasErrors() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, r := range p.results {
		if r.Err != nil {
			return true
		}
	}
	return false
}

// Run imports the given lists, or Config.Lists when paths is empty.
// A failing list is recorded in Results and does not stop the others.
func (p *Pipeline) Run(ctx context.Context, paths []string) error {
	if len(paths) == 0 {
		paths = p.cfg.Lists
	}
	if len(paths) == 0 {
		return errors.New("no word lists configured")
	}

	slugs := make(map[string]string, len(paths))
	for _, path := range paths {
		slug := wordlist.Slug(path)
		if prev, ok := slugs[slug]; ok {
			return fmt.Errorf("lists %s and %s share slug %q", prev, path, slug)
		}
		slugs[slug] = path
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(p.cfg.Concurrency, 1))

	for _, path := range paths {
		g.Go(func() error {
			start := time.Now()
			result := p.importList(gctx, path)
			result.Duration = time.Since(start)
			p.record(result)
			return gctx.Err()
		})
	}
	if err := g.Wait(); err != nil {
		return fmt.Errorf("import word lists: %w", err)
	}

	p.log.Info("pipeline completed", slog.Int("lists", len(paths)))
	return nil
}

func (p *Pipeline) record(result ImportResult) {
	p.mu.Lock()
	p.results[result.Slug] = result
	p.mu.Unlock()

	switch {
	case result.Err != nil:
		p.log.Warn("word list failed",
			slog.String("list", result.Slug),
			slog.String("error", result.Err.Error()),
			slog.Duration("duration", result.Duration),
		)
	case result.Unchanged:
		p.log.Info("word list unchanged, skipped", slog.String("list", result.Slug))
	default:
		p.log.Info("word list imported",
			slog.String("list", result.Slug),
			slog.Int("words", result.Words),
			slog.Int("inserted", result.Inserted),
			slog.Int("removed", result.Removed),
			slog.Int("duplicates", result.Duplicates),
			slog.Int("inadmissible", result.Inadmissible),
			slog.Duration("duration", result.Duration),
		)
	}
}

func (p *Pipeline) importList(ctx context.Context, path string) ImportResult {
	result := ImportResult{Slug: wordlist.Slug(path)}

	parsed, err := wordlist.Parse(path)
	if err != nil {
		result.Err = fmt.Errorf("parse %s: %w", path, err)
		return result
	}
	result.Words = len(parsed.Words)
	result.Inadmissible = parsed.Stats.Inadmissible

	entries := p.buildEntries(result.Slug, parsed.Words)

	if p.cfg.DryRun {
		return result
	}

	err = p.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := p.repo.LockCatalog(txCtx); err != nil {
			return err
		}

		prev, getErr := p.repo.GetWordList(txCtx, result.Slug)
		switch {
		case getErr == nil:
			if prev.Fingerprint == parsed.Fingerprint && !p.cfg.Replace {
				result.Unchanged = true
				return nil
			}
		case !errors.Is(getErr, domain.ErrNotFound):
			return fmt.Errorf("get word list: %w", getErr)
		}

		err := p.repo.UpsertWordList(txCtx, domain.WordList{
			Slug:        result.Slug,
			Fingerprint: parsed.Fingerprint,
			WordCount:   len(entries),
			ImportedAt:  time.Now(),
		})
		if err != nil {
			return fmt.Errorf("upsert word list: %w", err)
		}

		normalized := make([]string, len(entries))
		for i, e := range entries {
			normalized[i] = e.Normalized
		}
		if err := p.repo.ReplaceWordListWords(txCtx, result.Slug, normalized); err != nil {
			return fmt.Errorf("replace word list words: %w", err)
		}

		inserted, err := batchProcess(entries, p.cfg.BatchSize, func(batch []domain.CatalogEntry) (int, error) {
			return p.repo.BulkInsertEntries(txCtx, batch)
		})
		if err != nil {
			return fmt.Errorf("insert entries: %w", err)
		}
		result.Inserted = inserted
		result.Duplicates = len(entries) - inserted

		removed, err := p.repo.ReleaseEntries(txCtx, result.Slug)
		if err != nil {
			return fmt.Errorf("release entries: %w", err)
		}
		result.Removed = removed
		return nil
	})
	if err != nil {
		result.Err = err
	}
	return result
}

// buildEntries syllabifies words into catalog entries ordered by normalized
// form, so concurrent writers take row locks in the same order.
func (p *Pipeline) buildEntries(slug string, words []wordlist.Word) []domain.CatalogEntry {
	now := time.Now()
	entries := make([]domain.CatalogEntry, len(words))
	for i, w := range words {
		r := p.resolver.Resolve(w.Text)

		source := domain.SyllableSourceWordList
		if r.Source == kwf.SourceCurated {
			source = domain.SyllableSourceCurated
		}

		entries[i] = domain.CatalogEntry{
			ID:            uuid.New(),
			Word:          w.Text,
			Normalized:    w.Normalized,
			Syllables:     r.Syllables,
			SyllableCount: len(r.Syllables),
			Source:        source,
			WordListSlug:  slug,
			CreatedAt:     now,
		}
	}
	slices.SortFunc(entries, func(a, b domain.CatalogEntry) int {
		return strings.Compare(a.Normalized, b.Normalized)
	})
	return entries
}

// batchProcess splits items into batches and processes each via fn.
func batchProcess[T any](items []T, batchSize int, fn func([]T) (int, error)) (int, error) {
	if len(items) == 0 {
		return 0, nil
	}
	if batchSize <= 0 {
		batchSize = 500
	}

	total := 0
	for i := 0; i < len(items); i += batchSize {
		end := min(i+batchSize, len(items))
		n, err := fn(items[i:end])
		if err != nil {
			return total, err
		}
		total += n
	}
	return total, nil
}
