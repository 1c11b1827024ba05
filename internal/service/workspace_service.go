package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mlovre/kanbo/kanbo-backend/internal/domain"
)

// WorkspaceService handles workspace business logic
type WorkspaceService struct {
	workspaceRepo domain.WorkspaceRepository
}

// NewWorkspaceService creates a new WorkspaceService
func NewWorkspaceService(workspaceRepo domain.WorkspaceRepository) *WorkspaceService {
	return &WorkspaceService{workspaceRepo: workspaceRepo}
}

// CreateWorkspace creates a workspace with the owner as its sole member,
// holding the admin role.
func (s *WorkspaceService) CreateWorkspace(ctx context.Context, ownerID, name string, description *string) (*domain.Workspace, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domain.ErrNameRequired
	}

	now := time.Now().UTC()
	workspace := &domain.Workspace{
		ID:          uuid.New().String(),
		Name:        name,
		Description: description,
		OwnerID:     ownerID,
		Members:     []domain.Member{{UserID: ownerID, Role: domain.WorkspaceRoleAdmin}},
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.workspaceRepo.Create(ctx, workspace); err != nil {
		return nil, err
	}
	return workspace, nil
}

// GetWorkspaces retrieves all workspaces the user is a member of
func (s *WorkspaceService) GetWorkspaces(ctx context.Context, userID string) ([]*domain.Workspace, error) {
	return s.workspaceRepo.ListForMember(ctx, userID)
}
