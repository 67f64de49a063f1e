package app

import (
	"log/slog"

	"github.com/heartmarshall/pantig-backend/internal/config"
	"github.com/heartmarshall/pantig-backend/internal/service/syllabifier/kwf"
)

// NewDictionary creates the syllable dictionary described by cfg. The
// bundled word list is used unless cfg names a replacement file. The
// dictionary is built lazily; call Warm to build it up front.
func NewDictionary(cfg config.SyllabifierConfig, logger *slog.Logger) *kwf.Dictionary {
	opts := []kwf.Option{kwf.WithLogger(logger.With("component", "dictionary"))}
	if cfg.WordListPath != "" {
		opts = append(opts, kwf.WithWordListFile(cfg.WordListPath))
	}
	return kwf.NewDictionary(opts...)
}
