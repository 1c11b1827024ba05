package domain

import (
	"context"
	"time"
)

// BoardVisibility controls who can discover a board
type BoardVisibility string

const (
	VisibilityPrivate   BoardVisibility = "private"
	VisibilityWorkspace BoardVisibility = "workspace"
)

// Board roles. Stored for forward compatibility; membership alone grants
// full access today, only the owner role is assigned automatically.
const (
	BoardRoleOwner     = "owner"
	BoardRoleAdmin     = "admin"
	BoardRoleEditor    = "editor"
	BoardRoleCommenter = "commenter"
	BoardRoleViewer    = "viewer"
)

// Board is a kanban board. A nil WorkspaceID means a personal board.
type Board struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	WorkspaceID *string         `json:"workspace_id"`
	Visibility  BoardVisibility `json:"visibility"`
	OwnerID     string          `json:"owner_id"`
	Members     []Member        `json:"members"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// BoardRepository defines the interface for board persistence operations.
// GetForMember returns ErrBoardNotFound both when the board does not exist
// and when the user is not in its member set, so existence is never leaked
// to unauthorized callers.
type BoardRepository interface {
	Create(ctx context.Context, board *Board) error
	GetForMember(ctx context.Context, id, userID string) (*Board, error)
	ListForMember(ctx context.Context, userID string) ([]*Board, error)
}
