package domain

import (
	"context"
	"time"
)

// ActivityType is the closed set of logged mutations
type ActivityType string

const (
	ActivityCardCreated   ActivityType = "card_created"
	ActivityCardMoved     ActivityType = "card_moved"
	ActivityCardUpdated   ActivityType = "card_updated"
	ActivityCardDeleted   ActivityType = "card_deleted"
	ActivityCommentAdded  ActivityType = "comment_added"
	ActivityListCreated   ActivityType = "list_created"
	ActivityListUpdated   ActivityType = "list_updated"
	ActivityListDeleted   ActivityType = "list_deleted"
	ActivityMemberAdded   ActivityType = "member_added"
	ActivityMemberRemoved ActivityType = "member_removed"
)

// ActivityLog is an append-only audit record of a board mutation. It is
// never updated or deleted and is not authoritative state.
type ActivityLog struct {
	ID           string         `json:"id"`
	BoardID      string         `json:"board_id"`
	UserID       string         `json:"user_id"`
	ActivityType ActivityType   `json:"activity_type"`
	Details      map[string]any `json:"details"`
	CreatedAt    time.Time      `json:"created_at"`
}

// ActivityRepository defines the interface for activity log persistence.
// ListByBoard returns entries newest first.
type ActivityRepository interface {
	Create(ctx context.Context, activity *ActivityLog) error
	ListByBoard(ctx context.Context, boardID string, limit int) ([]*ActivityLog, error)
}
