package domain

import (
	"context"
	"time"
)

// Workspace roles
const (
	WorkspaceRoleAdmin  = "admin"
	WorkspaceRoleMember = "member"
)

// Member is a {user, role} pair granted access to a workspace or board
type Member struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
}

// Workspace groups boards shared by a set of members
type Workspace struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	OwnerID     string    `json:"owner_id"`
	Members     []Member  `json:"members"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// WorkspaceRepository defines the interface for workspace persistence operations
type WorkspaceRepository interface {
	Create(ctx context.Context, workspace *Workspace) error
	ListForMember(ctx context.Context, userID string) ([]*Workspace, error)
}
