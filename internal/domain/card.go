package domain

import (
	"context"
	"time"
)

// Card is a kanban card. A card belongs to exactly one list at a time;
// moving it between lists reassigns ListID. Ascending position order is
// the canonical render order within a list.
type Card struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description *string    `json:"description"`
	ListID      string     `json:"list_id"`
	Position    float64    `json:"position"`
	Labels      []string   `json:"labels"`
	Assignees   []string   `json:"assignees"`
	DueDate     *time.Time `json:"due_date"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// CardPatch is a partial card update. A nil field is left untouched; only
// present fields are applied, so "not supplied" is never conflated with
// "explicitly cleared".
type CardPatch struct {
	Title       *string
	Description *string
	ListID      *string
	Position    *float64
	Labels      *[]string
	Assignees   *[]string
	DueDate     *time.Time
}

// IsZero reports whether the patch carries no fields
func (p CardPatch) IsZero() bool {
	return p.Title == nil && p.Description == nil && p.ListID == nil &&
		p.Position == nil && p.Labels == nil && p.Assignees == nil && p.DueDate == nil
}

// CardFilter narrows a card search. Text matches title or description
// case-insensitively; Labels and Assignees match by set intersection.
type CardFilter struct {
	ListIDs   []string
	Text      string
	Labels    []string
	Assignees []string
}

// CardRepository defines the interface for card persistence operations
type CardRepository interface {
	Create(ctx context.Context, card *Card) error
	GetByID(ctx context.Context, id string) (*Card, error)
	ListByListIDs(ctx context.Context, listIDs []string) ([]*Card, error)
	MaxPositionInList(ctx context.Context, listID string) (*float64, error)
	Update(ctx context.Context, id string, patch CardPatch) (*Card, error)
	Search(ctx context.Context, filter CardFilter) ([]*Card, error)
}
