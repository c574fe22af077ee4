package repository

import (
	"context"

	"linkscan/internal/domain/entity"
)

// FeedbackRepository defines the interface for append-only feedback storage.
type FeedbackRepository interface {
	// AppendMessage stores one free-text feedback row.
	AppendMessage(ctx context.Context, msg *entity.FeedbackMessage) error

	// AppendRating stores one star-rating row.
	AppendRating(ctx context.Context, rating *entity.FeedbackRating) error
}
