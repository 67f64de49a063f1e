package kwf

import (
	_ "embed"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
	"gopkg.in/yaml.v3"
)

//go:embed data/curated.yaml
var curatedYAML []byte

//go:embed data/wordlist.txt
var bundledWordList string

// Source names the tier that produced a syllabification.
type Source string

const (
	SourceCurated  Source = "curated"
	SourceWordList Source = "wordlist"
	SourceRules    Source = "rules"
)

// Result is a syllabification together with the tier that produced it.
type Result struct {
	Syllables []string
	Source    Source
}

// BuildFailure records a word left out of the dictionary and why.
type BuildFailure struct {
	Word   string
	Reason string
}

// BuildReport summarizes a dictionary build.
type BuildReport struct {
	Curated    int
	Generated  int
	Duplicates int
	Skipped    int
	Failures   []BuildFailure
	Duration   time.Duration
}

type entry struct {
	syllables []string
	source    Source
}

// Dictionary overlays hand-verified syllabifications and a cache derived
// from a word list on top of the rule engine. It is built once, on the first
// lookup or on Warm, and is read-only afterwards.
type Dictionary struct {
	log        *slog.Logger
	curatedSrc []byte
	curated    map[string][]string
	loadWords  func() ([]string, error)

	once    sync.Once
	entries map[string]entry
	report  BuildReport
}

// Option configures a Dictionary.
type Option func(*Dictionary)

// WithLogger sets the logger used to report the build.
func WithLogger(logger *slog.Logger) Option {
	return func(d *Dictionary) {
		d.log = logger
	}
}

// WithCurated replaces the embedded hand-verified table.
func WithCurated(entries map[string][]string) Option {
	return func(d *Dictionary) {
		d.curated = entries
		d.curatedSrc = nil
	}
}

// WithWordList replaces the bundled word list.
func WithWordList(words []string) Option {
	return func(d *Dictionary) {
		d.loadWords = func() ([]string, error) { return words, nil }
	}
}

// WithWordListLoader replaces the bundled word list with words read by
// load at build time. A load error leaves only the curated tier.
func WithWordListLoader(load func() ([]string, error)) Option {
	return func(d *Dictionary) {
		d.loadWords = load
	}
}

// WithWordListFile replaces the bundled word list with the file at path,
// one word per line.
func WithWordListFile(path string) Option {
	return WithWordListLoader(func() ([]string, error) {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		return strings.Split(string(data), "\n"), nil
	})
}

// NewDictionary creates a Dictionary backed by the embedded curated table
// and the bundled word list unless options say otherwise.
func NewDictionary(opts ...Option) *Dictionary {
	d := &Dictionary{
		log:        slog.New(slog.DiscardHandler),
		curatedSrc: curatedYAML,
		loadWords: func() ([]string, error) {
			return strings.Split(bundledWordList, "\n"), nil
		},
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Warm builds the dictionary now instead of on the first lookup.
func (d *Dictionary) Warm() BuildReport {
	d.once.Do(d.build)
	return d.report
}

// Report returns the build summary, building first if needed.
func (d *Dictionary) Report() BuildReport {
	return d.Warm()
}

// Len returns the number of entries across both tiers.
func (d *Dictionary) Len() int {
	d.once.Do(d.build)
	return len(d.entries)
}

// Find returns the dictionary entry for word re-cased onto word, with the
// tier it came from. Trailing punctuation is ignored for the lookup and kept
// in the result.
func (d *Dictionary) Find(word string) (Result, bool) {
	d.once.Do(d.build)

	key := LookupKey(word)
	if key == "" {
		return Result{}, false
	}

	e, ok := d.entries[key]
	if !ok {
		return Result{}, false
	}
	return Result{Syllables: Recase(word, e.syllables), Source: e.source}, true
}

// Lookup is Find without the source.
func (d *Dictionary) Lookup(word string) ([]string, bool) {
	r, ok := d.Find(word)
	return r.Syllables, ok
}

// Resolve syllabifies word from the dictionary, falling back to Split.
func (d *Dictionary) Resolve(word string) Result {
	if r, ok := d.Find(word); ok {
		return r
	}
	return Result{Syllables: Split(word), Source: SourceRules}
}

// Split is Resolve without the source.
func (d *Dictionary) Split(word string) []string {
	return d.Resolve(word).Syllables
}

func (d *Dictionary) build() {
	start := time.Now()
	d.entries = make(map[string]entry)

	curated := d.curated
	if d.curatedSrc != nil {
		parsed, err := parseCurated(d.curatedSrc)
		if err != nil {
			d.report.Failures = append(d.report.Failures, BuildFailure{Reason: err.Error()})
		}
		curated = parsed
	}

	for key, syllables := range curated {
		if NormalizeKey(key) != key || strings.Join(syllables, "") != key {
			d.report.Failures = append(d.report.Failures, BuildFailure{
				Word:   key,
				Reason: "curated syllables do not reproduce the key",
			})
			continue
		}
		d.entries[key] = entry{syllables: syllables, source: SourceCurated}
		d.report.Curated++
	}

	words, err := d.loadWords()
	if err != nil {
		d.report.Failures = append(d.report.Failures, BuildFailure{Reason: fmt.Sprintf("load word list: %v", err)})
	}

	for _, w := range words {
		w = strings.TrimSpace(w)
		if w == "" || strings.HasPrefix(w, "#") {
			continue
		}
		if !Admissible(w) {
			d.report.Skipped++
			continue
		}

		key := NormalizeKey(w)
		if _, ok := d.entries[key]; ok {
			d.report.Duplicates++
			continue
		}

		syllables, err := safeSplit(key)
		if err != nil {
			d.report.Failures = append(d.report.Failures, BuildFailure{Word: w, Reason: err.Error()})
			continue
		}
		d.entries[key] = entry{syllables: syllables, source: SourceWordList}
		d.report.Generated++
	}

	d.report.Duration = time.Since(start)

	d.log.Info("syllable dictionary built",
		slog.Int("curated", d.report.Curated),
		slog.Int("generated", d.report.Generated),
		slog.Int("duplicates", d.report.Duplicates),
		slog.Int("skipped", d.report.Skipped),
		slog.Duration("duration", d.report.Duration),
	)
	if n := len(d.report.Failures); n > 0 {
		sample := d.report.Failures[:min(n, 5)]
		d.log.Warn("syllable dictionary omitted words",
			slog.Int("failures", n),
			slog.Any("sample", sample),
		)
	}
}

// Admissible reports whether w may enter the generated tier: at most 30
// runes, all from the Filipino alphabet.
func Admissible(w string) bool {
	lower := lowerRunes(norm.NFC.String(w))
	if utf8.RuneCountInString(lower) > maxDictionaryWordLen {
		return false
	}
	for _, r := range lower {
		if !isFilipinoRune(r) {
			return false
		}
	}
	return true
}

// safeSplit runs Split on a dictionary key and verifies the result.
func safeSplit(key string) (syllables []string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("split panicked: %v", r)
		}
	}()

	syllables = Split(key)
	if strings.Join(syllables, "") != key {
		return nil, fmt.Errorf("syllables %q do not reproduce %q", syllables, key)
	}
	return syllables, nil
}

func parseCurated(data []byte) (map[string][]string, error) {
	var table map[string][]string
	if err := yaml.Unmarshal(data, &table); err != nil {
		return nil, fmt.Errorf("parse curated table: %w", err)
	}
	return table, nil
}
