package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/shipshapehq/shipshape/core"
	"github.com/shipshapehq/shipshape/internal/contract"
)

// NewRouter builds the API router over the analyzer and its backing store.
func NewRouter(analyzer *core.Analyzer, store contract.UserStore) chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Logger, middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
		ExposedHeaders: []string{"Content-Length"},
		MaxAge:         300,
	}))

	r.Get("/healthz", HealthHandler(store))

	r.Route("/api/v1", func(ar chi.Router) {
		ar.Get("/clusters", GetClustersHandler(analyzer))
		ar.Post("/classifications", PostClassificationsHandler(analyzer))
		ar.Get("/users/{userID}/classification", GetUserClassificationHandler(analyzer))
		ar.Get("/users/{userID}/progress", GetUserProgressHandler(analyzer))
		ar.Get("/hours/classification", GetHourClassificationHandler(analyzer))
	})

	return r
}

// NewServer wraps the router in an http.Server with sane timeouts.
func NewServer(addr string, analyzer *core.Analyzer, store contract.UserStore) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           NewRouter(analyzer, store),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
}
