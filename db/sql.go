// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/danielhkuo/quickly-review/models"
)

const insertReview = `
	INSERT INTO review (id, name, rating, review, image_url, created_at)
	VALUES (?, ?, ?, ?, ?, ?)
`

const selectReviews = `
	SELECT id, name, rating, review, image_url, created_at
	FROM review
	ORDER BY created_at, id
`

// SQLStore keeps reviews in PostgreSQL or SQLite
type SQLStore struct {
	db *sqlx.DB
}

func NewSQLStore(db *sqlx.DB) *SQLStore {
	return &SQLStore{db: db}
}

func (s *SQLStore) Insert(ctx context.Context, draft models.ReviewDraft) (models.Review, error) {
	// PostgreSQL keeps microseconds
	review := models.Review{
		ID:        uuid.NewString(),
		Name:      draft.Name,
		Rating:    draft.Rating,
		Review:    draft.Review,
		ImageURL:  draft.ImageURL,
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := s.db.ExecContext(ctx, s.db.Rebind(insertReview),
		review.ID, review.Name, review.Rating, review.Review, review.ImageURL, review.CreatedAt)
	if err != nil {
		return models.Review{}, fmt.Errorf("failed to insert review: %w", err)
	}

	return review, nil
}

func (s *SQLStore) FindAll(ctx context.Context) ([]models.Review, error) {
	reviews := []models.Review{}
	if err := s.db.SelectContext(ctx, &reviews, selectReviews); err != nil {
		return nil, fmt.Errorf("failed to query reviews: %w", err)
	}

	return reviews, nil
}

func (s *SQLStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *SQLStore) Close() error {
	return s.db.Close()
}
