package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/pantig-backend/internal/domain"
	"github.com/heartmarshall/pantig-backend/internal/service/syllabifier"
)

type adminService interface {
	ListOverrides(ctx context.Context, input syllabifier.ListOverridesInput) ([]domain.SyllableOverride, int, error)
	CreateOverride(ctx context.Context, input syllabifier.CreateOverrideInput) (domain.SyllableOverride, error)
	UpdateOverride(ctx context.Context, input syllabifier.UpdateOverrideInput) (domain.SyllableOverride, error)
	DeleteOverride(ctx context.Context, id uuid.UUID) error
	DictionaryStats(ctx context.Context) (syllabifier.DictionaryStats, error)
}

// AdminHandler serves admin REST endpoints. Routes must be wrapped in
// middleware.RequireAdmin; the service checks the role again.
type AdminHandler struct {
	svc adminService
	log *slog.Logger
}

// NewAdminHandler creates an AdminHandler.
func NewAdminHandler(svc adminService, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		svc: svc,
		log: logger.With("handler", "admin"),
	}
}

type overrideRequest struct {
	Word      string   `json:"word"`
	Syllables []string `json:"syllables"`
	Note      *string  `json:"note,omitempty"`
}

type overrideResponse struct {
	ID         string    `json:"id"`
	Word       string    `json:"word"`
	Normalized string    `json:"normalized"`
	Syllables  []string  `json:"syllables"`
	Note       *string   `json:"note,omitempty"`
	CreatedBy  string    `json:"createdBy"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

type overrideListResponse struct {
	Items []overrideResponse `json:"items"`
	Total int                `json:"total"`
}

type wordListResponse struct {
	Slug        string    `json:"slug"`
	Fingerprint string    `json:"fingerprint"`
	WordCount   int       `json:"wordCount"`
	ImportedAt  time.Time `json:"importedAt"`
}

type buildFailureResponse struct {
	Word   string `json:"word"`
	Reason string `json:"reason"`
}

type dictionaryResponse struct {
	Entries        int                    `json:"entries"`
	Curated        int                    `json:"curated"`
	Generated      int                    `json:"generated"`
	Duplicates     int                    `json:"duplicates"`
	Skipped        int                    `json:"skipped"`
	Failures       []buildFailureResponse `json:"failures"`
	BuildDuration  string                 `json:"buildDuration"`
	MemoEntries    int                    `json:"memoEntries"`
	Overrides      int                    `json:"overrides"`
	CatalogEntries int                    `json:"catalogEntries"`
	WordLists      []wordListResponse     `json:"wordLists"`
}

func toOverrideResponse(o domain.SyllableOverride) overrideResponse {
	return overrideResponse{
		ID:         o.ID.String(),
		Word:       o.Word,
		Normalized: o.Normalized,
		Syllables:  o.Syllables,
		Note:       o.Note,
		CreatedBy:  o.CreatedBy,
		CreatedAt:  o.CreatedAt,
		UpdatedAt:  o.UpdatedAt,
	}
}

// ListOverrides handles GET /api/v1/admin/overrides?prefix=&limit=&offset=.
func (h *AdminHandler) ListOverrides(w http.ResponseWriter, r *http.Request) {
	input := syllabifier.ListOverridesInput{Prefix: r.URL.Query().Get("prefix")}

	var ok bool
	if input.Limit, ok = queryInt(w, r, "limit", 0); !ok {
		return
	}
	if input.Offset, ok = queryInt(w, r, "offset", 0); !ok {
		return
	}

	items, total, err := h.svc.ListOverrides(r.Context(), input)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	resp := overrideListResponse{Items: make([]overrideResponse, len(items)), Total: total}
	for i, o := range items {
		resp.Items[i] = toOverrideResponse(o)
	}
	writeJSON(w, http.StatusOK, resp)
}

// CreateOverride handles POST /api/v1/admin/overrides.
func (h *AdminHandler) CreateOverride(w http.ResponseWriter, r *http.Request) {
	var req overrideRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	o, err := h.svc.CreateOverride(r.Context(), syllabifier.CreateOverrideInput{
		Word:      req.Word,
		Syllables: req.Syllables,
		Note:      req.Note,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toOverrideResponse(o))
}

// UpdateOverride handles PUT /api/v1/admin/overrides/{id}.
func (h *AdminHandler) UpdateOverride(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req overrideRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	o, err := h.svc.UpdateOverride(r.Context(), syllabifier.UpdateOverrideInput{
		ID:        id,
		Syllables: req.Syllables,
		Note:      req.Note,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toOverrideResponse(o))
}

// DeleteOverride handles DELETE /api/v1/admin/overrides/{id}.
func (h *AdminHandler) DeleteOverride(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.svc.DeleteOverride(r.Context(), id); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Dictionary handles GET /api/v1/admin/dictionary.
func (h *AdminHandler) Dictionary(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.DictionaryStats(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	resp := dictionaryResponse{
		Entries:        stats.Entries,
		Curated:        stats.Curated,
		Generated:      stats.Generated,
		Duplicates:     stats.Duplicates,
		Skipped:        stats.Skipped,
		Failures:       make([]buildFailureResponse, len(stats.Failures)),
		BuildDuration:  stats.BuildDuration.String(),
		MemoEntries:    stats.MemoEntries,
		Overrides:      stats.Overrides,
		CatalogEntries: stats.CatalogEntries,
		WordLists:      make([]wordListResponse, len(stats.WordLists)),
	}
	for i, f := range stats.Failures {
		resp.Failures[i] = buildFailureResponse{Word: f.Word, Reason: f.Reason}
	}
	for i, wl := range stats.WordLists {
		resp.WordLists[i] = wordListResponse{
			Slug:        wl.Slug,
			Fingerprint: wl.Fingerprint,
			WordCount:   wl.WordCount,
			ImportedAt:  wl.ImportedAt,
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

func pathID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{
			Error:  "validation failed",
			Fields: []fieldError{{Field: "id", Message: "must be a UUID"}},
		})
		return uuid.Nil, false
	}
	return id, true
}
