package main

import (
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"holdem-resolver/internal/app/results"
	"holdem-resolver/internal/store"
)

func newRouter(svc *results.Service, st *store.Store) *chi.Mux {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(chimw.RealIP)

	r.With(apiLogMiddleware()).Get("/healthz", healthHandler(st))

	r.Route("/api", func(r chi.Router) {
		r.Use(apiLogMiddleware())
		r.Post("/resolve", resolveHandler(svc))
		r.Get("/results", resultsHandler(svc))
		r.Get("/results/{result_id}", resultHandler(svc))
	})
	return r
}
