package domain

import (
	"context"
	"time"
)

// Comment is attached to exactly one card, ordered by creation time
type Comment struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	CardID    string    `json:"card_id"`
	AuthorID  string    `json:"author_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CommentRepository defines the interface for comment persistence operations
type CommentRepository interface {
	Create(ctx context.Context, comment *Comment) error
	ListByCard(ctx context.Context, cardID string) ([]*Comment, error)
}
