package domain

import (
	"context"
	"time"
)

// List is a board column. BoardID is immutable after creation; ascending
// position order is the canonical render order within a board.
type List struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	BoardID   string    `json:"board_id"`
	Position  float64   `json:"position"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ListRepository defines the interface for list persistence operations
type ListRepository interface {
	Create(ctx context.Context, list *List) error
	GetByID(ctx context.Context, id string) (*List, error)
	ListByBoard(ctx context.Context, boardID string) ([]*List, error)
	MaxPositionInBoard(ctx context.Context, boardID string) (*float64, error)
}
