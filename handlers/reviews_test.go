// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/danielhkuo/quickly-review/cliparse"
	"github.com/danielhkuo/quickly-review/models"
	"github.com/danielhkuo/quickly-review/reviews"
	"github.com/danielhkuo/quickly-review/testutil"
	"github.com/danielhkuo/quickly-review/views"
)

func newTestHandler(t *testing.T, store reviews.Store, cfg cliparse.Config) *ReviewHandler {
	t.Helper()

	pages, err := views.New(cfg.LandingPath)
	if err != nil {
		t.Fatalf("Failed to load views: %v", err)
	}
	return NewReviewHandler(reviews.NewService(store), pages, cfg)
}

func TestSubmitReview(t *testing.T) {
	store := testutil.SetupTestStore(t)
	handler := newTestHandler(t, store, testutil.GetTestConfig())

	tests := []struct {
		name           string
		body           interface{}
		expectedStatus int
		expectedMsg    string
	}{
		{
			name:           "valid review",
			body:           map[string]interface{}{"name": "Alice", "rating": 5, "review": "Great!"},
			expectedStatus: http.StatusCreated,
			expectedMsg:    MsgSubmitted,
		},
		{
			name:           "rating as string",
			body:           map[string]interface{}{"name": "Bob", "rating": "4", "review": "Good", "imageUrl": "https://example.com/b.png"},
			expectedStatus: http.StatusCreated,
			expectedMsg:    MsgSubmitted,
		},
		{
			name:           "rating lower bound",
			body:           map[string]interface{}{"name": "Carol", "rating": 1, "review": "Bad"},
			expectedStatus: http.StatusCreated,
			expectedMsg:    MsgSubmitted,
		},
		{
			name:           "empty name",
			body:           map[string]interface{}{"name": "", "rating": 3, "review": "ok"},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    reviews.MsgMissingFields,
		},
		{
			name:           "missing rating",
			body:           map[string]interface{}{"name": "Dan", "review": "ok"},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    reviews.MsgMissingFields,
		},
		{
			name:           "null rating",
			body:           map[string]interface{}{"name": "Dan", "rating": nil, "review": "ok"},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    reviews.MsgMissingFields,
		},
		{
			name:           "empty string rating",
			body:           map[string]interface{}{"name": "Dan", "rating": "", "review": "ok"},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    reviews.MsgMissingFields,
		},
		{
			name:           "missing review",
			body:           map[string]interface{}{"name": "Dan", "rating": 2},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    reviews.MsgMissingFields,
		},
		{
			name:           "rating out of range",
			body:           map[string]interface{}{"name": "Eve", "rating": 6, "review": "ok"},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    reviews.MsgRatingRange,
		},
		{
			name:           "fractional rating",
			body:           map[string]interface{}{"name": "Eve", "rating": 3.5, "review": "ok"},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    reviews.MsgRatingNotWhole,
		},
		{
			name:           "rating of wrong type",
			body:           map[string]interface{}{"name": "Eve", "rating": true, "review": "ok"},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    MsgInvalidBody,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.MakeRequest("POST", "/reviews", tt.body, nil)
			w := httptest.NewRecorder()

			handler.SubmitReview(w, req)

			testutil.AssertStatus(t, w, tt.expectedStatus)

			if tt.expectedStatus == http.StatusCreated {
				var resp models.SubmitReviewResponse
				testutil.AssertJSON(t, w, &resp)
				if !resp.Success {
					t.Error("Expected success to be true")
				}
				if resp.Message != tt.expectedMsg {
					t.Errorf("Expected message '%s', got '%s'", tt.expectedMsg, resp.Message)
				}
				if resp.Review == nil || resp.Review.ID == "" {
					t.Error("Expected created review with an ID")
				}
				return
			}

			var resp models.ErrorResponse
			testutil.AssertJSON(t, w, &resp)
			if resp.Success {
				t.Error("Expected success to be false")
			}
			if resp.Message != tt.expectedMsg {
				t.Errorf("Expected message '%s', got '%s'", tt.expectedMsg, resp.Message)
			}
		})
	}

	// Only the three valid submissions were stored
	stored, err := store.FindAll(context.Background())
	if err != nil {
		t.Fatalf("FindAll failed: %v", err)
	}
	if len(stored) != 3 {
		t.Errorf("Expected 3 stored reviews, got %d", len(stored))
	}
}

func TestSubmitReview_InvalidJSON(t *testing.T) {
	handler := newTestHandler(t, testutil.SetupTestStore(t), testutil.GetTestConfig())

	req := httptest.NewRequest("POST", "/reviews", strings.NewReader(`{"name":`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	handler.SubmitReview(w, req)

	testutil.AssertStatus(t, w, http.StatusBadRequest)

	var resp models.ErrorResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Message != MsgInvalidBody {
		t.Errorf("Expected message '%s', got '%s'", MsgInvalidBody, resp.Message)
	}
}

func TestSubmitReview_FormPost(t *testing.T) {
	store := testutil.SetupTestStore(t)
	handler := newTestHandler(t, store, testutil.GetTestConfig())

	req := testutil.MakeFormRequest("/reviews", "Alice", 4, "Nice place", "https://example.com/a.jpg")
	w := httptest.NewRecorder()

	handler.SubmitReview(w, req)

	testutil.AssertStatus(t, w, http.StatusCreated)

	stored, err := store.FindAll(context.Background())
	if err != nil {
		t.Fatalf("FindAll failed: %v", err)
	}
	if len(stored) != 1 {
		t.Fatalf("Expected 1 stored review, got %d", len(stored))
	}
	if stored[0].Rating != 4 || stored[0].ImageURL != "https://example.com/a.jpg" {
		t.Errorf("Unexpected stored review: %+v", stored[0])
	}
}

func TestSubmitReview_FormPostMissingField(t *testing.T) {
	store := testutil.SetupTestStore(t)
	handler := newTestHandler(t, store, testutil.GetTestConfig())

	req := testutil.MakeFormRequest("/reviews", "", 4, "Nice place", "")
	w := httptest.NewRecorder()

	handler.SubmitReview(w, req)

	testutil.AssertStatus(t, w, http.StatusBadRequest)
}

func TestSubmitReview_PersistenceFailure(t *testing.T) {
	store := &testutil.FailingStore{Err: errors.New("dial tcp 10.0.0.5:5432: connection refused")}
	handler := newTestHandler(t, store, testutil.GetTestConfig())

	req := testutil.MakeRequest("POST", "/reviews", map[string]interface{}{"name": "Alice", "rating": 5, "review": "Great!"}, nil)
	w := httptest.NewRecorder()

	handler.SubmitReview(w, req)

	testutil.AssertStatus(t, w, http.StatusInternalServerError)

	body := w.Body.String()
	if strings.Contains(body, "connection refused") {
		t.Errorf("Store error leaked to client: %s", body)
	}

	var resp models.ErrorResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Message != MsgSaveFailed {
		t.Errorf("Expected message '%s', got '%s'", MsgSaveFailed, resp.Message)
	}
	if store.Inserts != 1 {
		t.Errorf("Expected exactly one insert attempt, got %d", store.Inserts)
	}
}

func TestSubmitReview_ValidationSkipsStore(t *testing.T) {
	store := &testutil.FailingStore{Err: errors.New("should not be called")}
	handler := newTestHandler(t, store, testutil.GetTestConfig())

	req := testutil.MakeRequest("POST", "/reviews", map[string]interface{}{"name": "", "rating": 3, "review": "ok"}, nil)
	w := httptest.NewRecorder()

	handler.SubmitReview(w, req)

	testutil.AssertStatus(t, w, http.StatusBadRequest)
	if store.Inserts != 0 {
		t.Errorf("Expected no insert attempt, got %d", store.Inserts)
	}
}

func TestListReviews(t *testing.T) {
	store := testutil.SetupTestStore(t)
	handler := newTestHandler(t, store, testutil.GetTestConfig())

	testutil.CreateTestReview(t, store, "Alice", 5)
	testutil.CreateTestReview(t, store, "Bob", 2)

	w := httptest.NewRecorder()
	handler.ListReviews(w, httptest.NewRequest("GET", "/reviews", nil))

	testutil.AssertStatus(t, w, http.StatusOK)

	var list []models.Review
	testutil.AssertJSON(t, w, &list)
	if len(list) != 2 {
		t.Fatalf("Expected 2 reviews, got %d", len(list))
	}

	names := map[string]bool{}
	for _, r := range list {
		names[r.Name] = true
	}
	if !names["Alice"] || !names["Bob"] {
		t.Errorf("Expected Alice and Bob, got %+v", list)
	}
}

func TestListReviews_Empty(t *testing.T) {
	handler := newTestHandler(t, testutil.SetupTestStore(t), testutil.GetTestConfig())

	w := httptest.NewRecorder()
	handler.ListReviews(w, httptest.NewRequest("GET", "/reviews", nil))

	testutil.AssertStatus(t, w, http.StatusOK)
	if strings.TrimSpace(w.Body.String()) != "[]" {
		t.Errorf("Expected empty JSON array, got %s", w.Body.String())
	}
}

func TestListReviews_HTML(t *testing.T) {
	store := testutil.SetupTestStore(t)
	cfg := testutil.GetTestConfig()
	cfg.RenderMode = cliparse.RenderHTML
	handler := newTestHandler(t, store, cfg)

	testutil.CreateTestReview(t, store, "Alice", 5)

	w := httptest.NewRecorder()
	handler.ListReviews(w, httptest.NewRequest("GET", "/reviews", nil))

	testutil.AssertStatus(t, w, http.StatusOK)
	if !strings.HasPrefix(w.Header().Get("Content-Type"), "text/html") {
		t.Errorf("Expected HTML, got %s", w.Header().Get("Content-Type"))
	}
	if !strings.Contains(w.Body.String(), "Alice") {
		t.Error("Expected review in rendered page")
	}
}

func TestListReviews_PersistenceFailure(t *testing.T) {
	for _, mode := range []string{cliparse.RenderJSON, cliparse.RenderHTML} {
		t.Run(mode, func(t *testing.T) {
			cfg := testutil.GetTestConfig()
			cfg.RenderMode = mode
			handler := newTestHandler(t, &testutil.FailingStore{Err: errors.New("server selection timeout")}, cfg)

			w := httptest.NewRecorder()
			handler.ListReviews(w, httptest.NewRequest("GET", "/reviews", nil))

			testutil.AssertStatus(t, w, http.StatusInternalServerError)

			var resp models.ErrorResponse
			testutil.AssertJSON(t, w, &resp)
			if resp.Message != MsgRetrieveFailed {
				t.Errorf("Expected message '%s', got '%s'", MsgRetrieveFailed, resp.Message)
			}
		})
	}
}

func TestNotFound(t *testing.T) {
	w := httptest.NewRecorder()
	NotFound(w, httptest.NewRequest("GET", "/unknown-route", nil))

	testutil.AssertStatus(t, w, http.StatusNotFound)

	var resp models.ErrorResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Success || resp.Message != MsgRouteNotFound {
		t.Errorf("Unexpected 404 body: %+v", resp)
	}
}

func TestLanding(t *testing.T) {
	handler := newTestHandler(t, testutil.SetupTestStore(t), testutil.GetTestConfig())

	w := httptest.NewRecorder()
	handler.Landing(w, httptest.NewRequest("GET", "/", nil))

	testutil.AssertStatus(t, w, http.StatusOK)
	if !strings.Contains(w.Body.String(), "<form") {
		t.Error("Expected landing page form")
	}
}
