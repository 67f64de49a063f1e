package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/heartmarshall/pantig-backend/internal/domain"
	"github.com/heartmarshall/pantig-backend/internal/service/syllabifier"
)

type syllableService interface {
	Split(ctx context.Context, word string) (domain.Syllabification, error)
	SplitBatch(ctx context.Context, words []string) ([]domain.Syllabification, error)
	BuildQuestion(ctx context.Context, word string) (domain.SyllableQuestion, error)
	SearchCatalog(ctx context.Context, input syllabifier.SearchCatalogInput) ([]domain.CatalogEntry, int, error)
}

// SyllableHandler serves the public syllabification endpoints.
type SyllableHandler struct {
	svc syllableService
	log *slog.Logger
}

// NewSyllableHandler creates a SyllableHandler.
func NewSyllableHandler(svc syllableService, logger *slog.Logger) *SyllableHandler {
	return &SyllableHandler{
		svc: svc,
		log: logger.With("handler", "syllables"),
	}
}

type syllabificationResponse struct {
	Word          string   `json:"word"`
	Normalized    string   `json:"normalized"`
	Syllables     []string `json:"syllables"`
	SyllableCount int      `json:"syllableCount"`
	Source        string   `json:"source"`
}

func toSyllabificationResponse(s domain.Syllabification) syllabificationResponse {
	return syllabificationResponse{
		Word:          s.Word,
		Normalized:    s.Normalized,
		Syllables:     s.Syllables,
		SyllableCount: s.SyllableCount(),
		Source:        s.Source.String(),
	}
}

type batchRequest struct {
	Words []string `json:"words"`
}

type batchResponse struct {
	Items []syllabificationResponse `json:"items"`
}

type questionRequest struct {
	Word string `json:"word"`
}

type questionResponse struct {
	Word          string   `json:"word"`
	SyllableParts []string `json:"syllableParts"`
	SyllableCount int      `json:"syllableCount"`
	Source        string   `json:"source"`
}

type catalogEntryResponse struct {
	ID            string    `json:"id"`
	Word          string    `json:"word"`
	Normalized    string    `json:"normalized"`
	Syllables     []string  `json:"syllables"`
	SyllableCount int       `json:"syllableCount"`
	Source        string    `json:"source"`
	WordList      string    `json:"wordList"`
	CreatedAt     time.Time `json:"createdAt"`
}

type catalogResponse struct {
	Items  []catalogEntryResponse `json:"items"`
	Total  int                    `json:"total"`
	Offset int                    `json:"offset"`
}

// Split handles GET /api/v1/syllables?word=bahay.
func (h *SyllableHandler) Split(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.Split(r.Context(), r.URL.Query().Get("word"))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toSyllabificationResponse(result))
}

// Batch handles POST /api/v1/syllables/batch.
func (h *SyllableHandler) Batch(w http.ResponseWriter, r *http.Request) {
	var req batchRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	results, err := h.svc.SplitBatch(r.Context(), req.Words)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	resp := batchResponse{Items: make([]syllabificationResponse, len(results))}
	for i, res := range results {
		resp.Items[i] = toSyllabificationResponse(res)
	}
	writeJSON(w, http.StatusOK, resp)
}

// Question handles POST /api/v1/questions/syllable.
func (h *SyllableHandler) Question(w http.ResponseWriter, r *http.Request) {
	var req questionRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	q, err := h.svc.BuildQuestion(r.Context(), req.Word)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, questionResponse{
		Word:          q.Word,
		SyllableParts: q.SyllableParts,
		SyllableCount: q.SyllableCount,
		Source:        q.Source.String(),
	})
}

// Catalog handles GET /api/v1/catalog?prefix=&syllables=&source=&limit=&offset=.
func (h *SyllableHandler) Catalog(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	input := syllabifier.SearchCatalogInput{Prefix: q.Get("prefix")}

	var ok bool
	if input.Limit, ok = queryInt(w, r, "limit", 0); !ok {
		return
	}
	if input.Offset, ok = queryInt(w, r, "offset", 0); !ok {
		return
	}
	if raw := q.Get("syllables"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			handleError(w, r, h.log, domain.NewValidationError("syllables", "must be an integer"))
			return
		}
		input.SyllableCount = &n
	}
	if raw := q.Get("source"); raw != "" {
		src := domain.SyllableSource(raw)
		input.Source = &src
	}

	entries, total, err := h.svc.SearchCatalog(r.Context(), input)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	resp := catalogResponse{
		Items:  make([]catalogEntryResponse, len(entries)),
		Total:  total,
		Offset: input.Offset,
	}
	for i, e := range entries {
		resp.Items[i] = catalogEntryResponse{
			ID:            e.ID.String(),
			Word:          e.Word,
			Normalized:    e.Normalized,
			Syllables:     e.Syllables,
			SyllableCount: e.SyllableCount,
			Source:        e.Source.String(),
			WordList:      e.WordListSlug,
			CreatedAt:     e.CreatedAt,
		}
	}
	writeJSON(w, http.StatusOK, resp)
}
