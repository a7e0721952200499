// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"mime"
	"net/http"

	"github.com/danielhkuo/quickly-review/cliparse"
	"github.com/danielhkuo/quickly-review/metrics"
	"github.com/danielhkuo/quickly-review/middleware"
	"github.com/danielhkuo/quickly-review/models"
	"github.com/danielhkuo/quickly-review/reviews"
	"github.com/danielhkuo/quickly-review/views"
)

// Fixed client-facing messages
const (
	MsgSubmitted      = "Review submitted successfully!"
	MsgInvalidBody    = "Invalid request body"
	MsgSaveFailed     = "Error saving review"
	MsgRetrieveFailed = "Error retrieving reviews"
	MsgRouteNotFound  = "Route not found"
)

const maxBodyBytes = 1 << 20

type ReviewHandler struct {
	svc   *reviews.Service
	views *views.Renderer
	cfg   cliparse.Config
}

func NewReviewHandler(svc *reviews.Service, v *views.Renderer, cfg cliparse.Config) *ReviewHandler {
	return &ReviewHandler{svc: svc, views: v, cfg: cfg}
}

// SubmitReview handles POST /reviews
// Accepts JSON or an HTML form post
func (h *ReviewHandler) SubmitReview(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	req, err := decodeSubmission(r)
	if err != nil {
		metrics.RecordSubmission(metrics.OutcomeInvalid)
		middleware.ErrorResponse(w, http.StatusBadRequest, MsgInvalidBody)
		return
	}

	review, err := h.svc.Submit(r.Context(), req)
	if err != nil {
		var verr *reviews.ValidationError
		var perr *reviews.PersistenceError
		switch {
		case errors.As(err, &verr):
			metrics.RecordSubmission(metrics.OutcomeInvalid)
			middleware.ValidationErrorResponse(w, verr.Message, verr.Fields)
		case errors.As(err, &perr):
			metrics.RecordSubmission(metrics.OutcomeFailed)
			slog.Error("failed to save review", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, MsgSaveFailed)
		default:
			metrics.RecordSubmission(metrics.OutcomeFailed)
			slog.Error("unhandled error", "path", r.URL.Path, "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, middleware.MsgInternalError)
		}
		return
	}

	metrics.RecordSubmission(metrics.OutcomeCreated)

	middleware.JSONResponse(w, http.StatusCreated, models.SubmitReviewResponse{
		Success: true,
		Message: MsgSubmitted,
		Review:  &review,
	})
}

// ListReviews handles GET /reviews
// Renders JSON or an HTML page depending on cfg.RenderMode
func (h *ReviewHandler) ListReviews(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.ListAll(r.Context())
	if err != nil {
		slog.Error("failed to retrieve reviews", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, MsgRetrieveFailed)
		return
	}

	slog.Debug("reviews retrieved", "count", len(list))

	if h.cfg.RenderMode == cliparse.RenderHTML {
		if err := h.views.RenderReviews(w, list); err != nil {
			slog.Error("unhandled error", "path", r.URL.Path, "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, middleware.MsgInternalError)
		}
		return
	}

	middleware.JSONResponse(w, http.StatusOK, list)
}

// Landing handles GET / or GET /home
func (h *ReviewHandler) Landing(w http.ResponseWriter, r *http.Request) {
	h.views.ServeLanding(w, r)
}

// NotFound answers every unmatched route
func NotFound(w http.ResponseWriter, r *http.Request) {
	middleware.ErrorResponse(w, http.StatusNotFound, MsgRouteNotFound)
}

func decodeSubmission(r *http.Request) (models.SubmitReviewRequest, error) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))

	if mediaType == "application/x-www-form-urlencoded" {
		if err := r.ParseForm(); err != nil {
			return models.SubmitReviewRequest{}, err
		}
		return models.SubmitReviewRequest{
			Name:     r.PostForm.Get("name"),
			Rating:   json.Number(r.PostForm.Get("rating")),
			Review:   r.PostForm.Get("review"),
			ImageURL: r.PostForm.Get("imageUrl"),
		}, nil
	}

	var req models.SubmitReviewRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		return models.SubmitReviewRequest{}, err
	}
	return req, nil
}
