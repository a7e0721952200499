// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"

	"github.com/danielhkuo/quickly-review/models"
)

// Store persists reviews. Implementations are safe for concurrent use.
type Store interface {
	// Insert stores the draft and returns it with its assigned id and creation time
	Insert(ctx context.Context, draft models.ReviewDraft) (models.Review, error)
	// FindAll returns every stored review, oldest first
	FindAll(ctx context.Context) ([]models.Review, error)
	Ping(ctx context.Context) error
	Close() error
}
