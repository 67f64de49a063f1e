package rest

import (
	"net/http"

	"github.com/heartmarshall/pantig-backend/internal/transport/middleware"
)

// RouterDeps holds everything NewRouter wires into the mux.
type RouterDeps struct {
	Health    *HealthHandler
	Syllables *SyllableHandler
	Admin     *AdminHandler

	// Middleware applied to every route, outermost first.
	Middleware []middleware.Middleware
}

// NewRouter registers all routes. Health checks bypass the middleware chain.
func NewRouter(d RouterDeps) http.Handler {
	api := http.NewServeMux()

	api.HandleFunc("GET /api/v1/syllables", d.Syllables.Split)
	api.HandleFunc("POST /api/v1/syllables/batch", d.Syllables.Batch)
	api.HandleFunc("POST /api/v1/questions/syllable", d.Syllables.Question)
	api.HandleFunc("GET /api/v1/catalog", d.Syllables.Catalog)

	admin := func(h http.HandlerFunc) http.Handler { return middleware.RequireAdmin(h) }
	api.Handle("GET /api/v1/admin/overrides", admin(d.Admin.ListOverrides))
	api.Handle("POST /api/v1/admin/overrides", admin(d.Admin.CreateOverride))
	api.Handle("PUT /api/v1/admin/overrides/{id}", admin(d.Admin.UpdateOverride))
	api.Handle("DELETE /api/v1/admin/overrides/{id}", admin(d.Admin.DeleteOverride))
	api.Handle("GET /api/v1/admin/dictionary", admin(d.Admin.Dictionary))

	root := http.NewServeMux()
	root.HandleFunc("GET /live", d.Health.Live)
	root.HandleFunc("GET /ready", d.Health.Ready)
	root.HandleFunc("GET /health", d.Health.Health)
	root.Handle("/", middleware.Chain(d.Middleware...)(api))

	return root
}
