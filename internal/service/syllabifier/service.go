// Package syllabifier serves Filipino syllabification on top of the kwf
// engine: admin overrides stored in PostgreSQL take precedence over the
// built-in dictionary, which takes precedence over the rule engine.
package syllabifier

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/sync/singleflight"

	"github.com/heartmarshall/pantig-backend/internal/domain"
	"github.com/heartmarshall/pantig-backend/internal/service/syllabifier/kwf"
)

type overrideRepo interface {
	GetByNormalized(ctx context.Context, normalized string) (domain.SyllableOverride, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.SyllableOverride, error)
	List(ctx context.Context, prefix string, limit, offset int) ([]domain.SyllableOverride, int, error)
	Count(ctx context.Context) (int, error)
	Create(ctx context.Context, o domain.SyllableOverride) (domain.SyllableOverride, error)
	Update(ctx context.Context, o domain.SyllableOverride) (domain.SyllableOverride, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type catalogRepo interface {
	Search(ctx context.Context, filter domain.CatalogFilter) ([]domain.CatalogEntry, int, error)
	CountEntries(ctx context.Context) (int, error)
	ListWordLists(ctx context.Context) ([]domain.WordList, error)
}

type auditLogger interface {
	Log(ctx context.Context, record domain.AuditRecord) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type dictionary interface {
	Find(word string) (kwf.Result, bool)
	Report() kwf.BuildReport
	Len() int
}

// Config tunes the service. Zero values fall back to defaults.
type Config struct {
	MemoSize        int
	BatchLimit      int
	OverrideTimeout time.Duration
	CatalogMaxLimit int
}

const (
	defaultBatchLimit      = 100
	defaultOverrideTimeout = 500 * time.Millisecond
	defaultCatalogLimit    = 50
	defaultCatalogMaxLimit = 200
	defaultOverrideLimit   = 50
	batchConcurrency       = 8
)

func (c Config) withDefaults() Config {
	if c.BatchLimit <= 0 {
		c.BatchLimit = defaultBatchLimit
	}
	if c.OverrideTimeout <= 0 {
		c.OverrideTimeout = defaultOverrideTimeout
	}
	if c.CatalogMaxLimit <= 0 {
		c.CatalogMaxLimit = defaultCatalogMaxLimit
	}
	return c
}

// Service provides syllabification and override management.
type Service struct {
	dict      dictionary
	overrides overrideRepo
	catalog   catalogRepo
	audit     auditLogger
	tx        txManager
	log       *slog.Logger
	cfg       Config

	// memo caches rule-engine results keyed by the cleaned input word.
	// Nil when MemoSize is zero.
	memo  *lru.Cache[string, []string]
	group singleflight.Group
	split func(string) []string
	now   func() time.Time
}

// NewService creates a new syllabifier service.
func NewService(
	log *slog.Logger,
	dict dictionary,
	overrides overrideRepo,
	catalog catalogRepo,
	audit auditLogger,
	tx txManager,
	cfg Config,
) (*Service, error) {
	cfg = cfg.withDefaults()

	s := &Service{
		dict:      dict,
		overrides: overrides,
		catalog:   catalog,
		audit:     audit,
		tx:        tx,
		log:       log.With("service", "syllabifier"),
		cfg:       cfg,
		split:     kwf.Split,
		now:       time.Now,
	}

	if cfg.MemoSize > 0 {
		memo, err := lru.New[string, []string](cfg.MemoSize)
		if err != nil {
			return nil, fmt.Errorf("create memo: %w", err)
		}
		s.memo = memo
	}

	return s, nil
}

func toDomainSource(src kwf.Source) domain.SyllableSource {
	switch src {
	case kwf.SourceCurated:
		return domain.SyllableSourceCurated
	case kwf.SourceWordList:
		return domain.SyllableSourceWordList
	default:
		return domain.SyllableSourceRules
	}
}

// trimOrNil trims whitespace. Returns nil if result is empty.
func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
