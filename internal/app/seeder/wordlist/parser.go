// Package wordlist parses Filipino word lists for catalog import.
// Pure function: file path in, words out. No database dependencies.
//
// A list holds one word per line. Blank lines and lines starting with '#'
// are ignored. Files ending in .gz or .xz are decompressed transparently.
package wordlist

import (
	"bufio"
	"compress/gzip"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ulikunitz/xz"
	"github.com/zeebo/blake3"

	"github.com/heartmarshall/pantig-backend/internal/domain"
	"github.com/heartmarshall/pantig-backend/internal/service/syllabifier/kwf"
)

// Word is one admissible entry of a list.
type Word struct {
	Text       string // as written, NFC-composed
	Normalized string
}

// Stats holds parser statistics for logging.
type Stats struct {
	TotalLines   int
	Comments     int
	Duplicates   int
	Inadmissible int
}

// ParseResult holds the words of a list and its content fingerprint.
type ParseResult struct {
	Words []Word
	// Fingerprint is the hex BLAKE3 digest of the decompressed content, so
	// a list re-imported in another compression format is recognised.
	Fingerprint string
	Stats       Stats
}

var errSkipLine = errors.New("skip line")

// Slug derives a word-list identifier from a file name:
// "data/KWF-Basic.txt.xz" becomes "kwf-basic".
func Slug(path string) string {
	name := filepath.Base(path)
	for _, ext := range []string{".gz", ".xz", ".txt"} {
		name = strings.TrimSuffix(name, ext)
	}
	return strings.ToLower(name)
}

// Parse reads the word list at path.
func Parse(path string) (ParseResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return ParseResult{}, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	r, closeFn, err := decompress(f, path)
	if err != nil {
		return ParseResult{}, err
	}
	defer closeFn()

	return parse(r)
}

func decompress(f io.Reader, path string) (io.Reader, func(), error) {
	switch {
	case strings.HasSuffix(path, ".gz"):
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, nil, fmt.Errorf("open gzip stream: %w", err)
		}
		return gz, func() { gz.Close() }, nil
	case strings.HasSuffix(path, ".xz"):
		xr, err := xz.NewReader(f)
		if err != nil {
			return nil, nil, fmt.Errorf("open xz stream: %w", err)
		}
		return xr, func() {}, nil
	default:
		return f, func() {}, nil
	}
}

func parse(r io.Reader) (ParseResult, error) {
	hasher := blake3.New()
	scanner := bufio.NewScanner(io.TeeReader(r, hasher))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var (
		result ParseResult
		seen   = make(map[string]bool)
	)

	for scanner.Scan() {
		result.Stats.TotalLines++

		w, err := parseLine(scanner.Text(), &result.Stats)
		if errors.Is(err, errSkipLine) {
			continue
		}

		if seen[w.Normalized] {
			result.Stats.Duplicates++
			continue
		}
		seen[w.Normalized] = true
		result.Words = append(result.Words, w)
	}

	if err := scanner.Err(); err != nil {
		return ParseResult{}, fmt.Errorf("scanner error: %w", err)
	}

	result.Fingerprint = hex.EncodeToString(hasher.Sum(nil))
	return result, nil
}

func parseLine(line string, stats *Stats) (Word, error) {
	text := strings.TrimSpace(strings.TrimPrefix(line, "\ufeff"))
	if text == "" {
		return Word{}, errSkipLine
	}
	if strings.HasPrefix(text, "#") {
		stats.Comments++
		return Word{}, errSkipLine
	}

	text = domain.CleanWord(text)
	if strings.ContainsRune(text, ' ') || !kwf.Admissible(text) {
		stats.Inadmissible++
		return Word{}, errSkipLine
	}

	return Word{Text: text, Normalized: kwf.NormalizeKey(text)}, nil
}
