// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package reviews

import (
	"context"
	"log/slog"

	"github.com/danielhkuo/quickly-review/models"
)

// Store is the persistence the service needs; db.Store satisfies it
type Store interface {
	Insert(ctx context.Context, draft models.ReviewDraft) (models.Review, error)
	FindAll(ctx context.Context) ([]models.Review, error)
}

// Service validates and stores reviews. It holds no state besides the store
// and is safe for concurrent use.
type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

// Submit validates the request and stores it. Invalid requests never reach the store.
func (s *Service) Submit(ctx context.Context, req models.SubmitReviewRequest) (models.Review, error) {
	draft, err := Validate(req)
	if err != nil {
		return models.Review{}, err
	}

	review, err := s.store.Insert(ctx, draft)
	if err != nil {
		return models.Review{}, &PersistenceError{Op: "insert", Err: err}
	}

	slog.Info("review submitted", "review_id", review.ID, "rating", review.Rating)

	return review, nil
}

// ListAll returns every stored review in store order
func (s *Service) ListAll(ctx context.Context) ([]models.Review, error) {
	reviews, err := s.store.FindAll(ctx)
	if err != nil {
		return nil, &PersistenceError{Op: "find", Err: err}
	}
	if reviews == nil {
		reviews = []models.Review{}
	}

	return reviews, nil
}
