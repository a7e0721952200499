// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"

	"github.com/danielhkuo/quickly-review/cliparse"
	"github.com/danielhkuo/quickly-review/db"
	"github.com/danielhkuo/quickly-review/models"
)

// TestDBURL keeps every test store in memory
const TestDBURL = ":memory:"

// SetupTestStore creates a fresh in-memory SQLite store with the full schema.
// The store is closed when the test ends.
func SetupTestStore(t *testing.T) *db.SQLStore {
	t.Helper()

	store, err := db.OpenSQL(context.Background(), "sqlite", TestDBURL)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	return store
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         5000,
		DatabaseURL:  TestDBURL,
		DatabaseType: cliparse.DatabaseSQLite,
		DatabaseName: "review",
		RenderMode:   cliparse.RenderJSON,
		LandingPath:  "/",
		LogLevel:     slog.LevelInfo,
	}
}

// CreateTestReview stores a review directly and returns it
func CreateTestReview(t *testing.T, store db.Store, name string, rating int) models.Review {
	t.Helper()

	review, err := store.Insert(context.Background(), models.ReviewDraft{
		Name:   name,
		Rating: rating,
		Review: "Review by " + name,
	})
	if err != nil {
		t.Fatalf("Failed to create test review: %v", err)
	}

	return review
}

// FailingStore is a store whose every call returns Err
type FailingStore struct {
	Err     error
	Inserts int
}

func (f *FailingStore) Insert(ctx context.Context, draft models.ReviewDraft) (models.Review, error) {
	f.Inserts++
	return models.Review{}, f.Err
}

func (f *FailingStore) FindAll(ctx context.Context) ([]models.Review, error) {
	return nil, f.Err
}

func (f *FailingStore) Ping(ctx context.Context) error {
	return f.Err
}

func (f *FailingStore) Close() error {
	return nil
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// MakeFormRequest creates a form-encoded POST like the landing page sends
func MakeFormRequest(path, name string, rating int, review, imageURL string) *http.Request {
	form := url.Values{}
	form.Set("name", name)
	form.Set("rating", strconv.Itoa(rating))
	form.Set("review", review)
	if imageURL != "" {
		form.Set("imageUrl", imageURL)
	}

	req := httptest.NewRequest("POST", path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
