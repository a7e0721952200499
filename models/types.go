package models

import (
	"bytes"
	"encoding/json"
	"time"
)

// Rating bounds
const (
	MinRating = 1
	MaxRating = 5
)

// Request types

// rating accepts a JSON number or a numeric string
type SubmitReviewRequest struct {
	Name     string      `json:"name"`
	Rating   json.Number `json:"rating"`
	Review   string      `json:"review"`
	ImageURL string      `json:"imageUrl"`
}

// UnmarshalJSON treats a rating of "" or null as absent
func (r *SubmitReviewRequest) UnmarshalJSON(data []byte) error {
	type plain SubmitReviewRequest
	aux := struct {
		*plain
		Rating json.RawMessage `json:"rating"`
	}{plain: (*plain)(r)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	r.Rating = ""
	raw := bytes.TrimSpace(aux.Rating)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) || bytes.Equal(raw, []byte(`""`)) {
		return nil
	}
	return json.Unmarshal(raw, &r.Rating)
}

// Response types

type SubmitReviewResponse struct {
	Success bool    `json:"success"`
	Message string  `json:"message"`
	Review  *Review `json:"review,omitempty"`
}

type HealthResponse struct {
	Status string `json:"status"`
}

// Domain types

type Review struct {
	ID        string    `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Rating    int       `json:"rating" db:"rating"`
	Review    string    `json:"review" db:"review"`
	ImageURL  string    `json:"imageUrl" db:"image_url"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// ReviewDraft is a validated review that has not been stored yet
type ReviewDraft struct {
	Name     string
	Rating   int
	Review   string
	ImageURL string
}

// Error response

type ErrorResponse struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors,omitempty"`
}
