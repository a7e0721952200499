// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/quickly-review/cliparse"
	"github.com/danielhkuo/quickly-review/handlers"
	"github.com/danielhkuo/quickly-review/metrics"
	"github.com/danielhkuo/quickly-review/middleware"
	"github.com/danielhkuo/quickly-review/models"
	"github.com/danielhkuo/quickly-review/reviews"
	"github.com/danielhkuo/quickly-review/views"
)

func NewRouter(store reviews.Store, cfg cliparse.Config) (http.Handler, error) {
	mux := http.NewServeMux()

	pages, err := views.New(cfg.LandingPath)
	if err != nil {
		return nil, err
	}

	// Initialize handlers
	reviewHandler := handlers.NewReviewHandler(reviews.NewService(store), pages, cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		middleware.JSONResponse(w, http.StatusOK, models.HealthResponse{Status: "OK"})
	})

	// Landing page and its assets
	landing := cfg.LandingPath
	if landing == "/" {
		landing = "/{$}"
	}
	mux.HandleFunc("GET "+landing, middleware.WithLogging(reviewHandler.Landing))
	mux.Handle("GET /static/", views.Static())

	// Reviews
	mux.HandleFunc("POST /reviews", middleware.WithLogging(reviewHandler.SubmitReview))
	mux.HandleFunc("GET /reviews", middleware.WithLogging(reviewHandler.ListReviews))

	mux.Handle("GET /metrics", metrics.Handler())

	// Everything else
	mux.HandleFunc("/", middleware.WithLogging(handlers.NotFound))

	return metrics.InstrumentHandler(middleware.CORS(middleware.Recover(mux))), nil
}
