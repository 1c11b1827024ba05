package service

import (
	"context"
	"errors"
	"testing"

	"github.com/mlovre/kanbo/kanbo-backend/internal/domain"
	"github.com/mlovre/kanbo/kanbo-backend/internal/testutil"
)

func TestCreateWorkspace_OwnerIsAdmin(t *testing.T) {
	workspaceRepo := testutil.NewMockWorkspaceRepository()
	svc := NewWorkspaceService(workspaceRepo)

	ws, err := svc.CreateWorkspace(context.Background(), "user-1", "Engineering", nil)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if ws.OwnerID != "user-1" {
		t.Errorf("Expected owner user-1, got %s", ws.OwnerID)
	}
	if len(ws.Members) != 1 {
		t.Fatalf("Expected 1 member, got %d", len(ws.Members))
	}
	if ws.Members[0].Role != domain.WorkspaceRoleAdmin {
		t.Errorf("Expected admin role, got %s", ws.Members[0].Role)
	}
}

func TestCreateWorkspace_NameRequired(t *testing.T) {
	svc := NewWorkspaceService(testutil.NewMockWorkspaceRepository())

	_, err := svc.CreateWorkspace(context.Background(), "user-1", "  ", nil)
	if !errors.Is(err, domain.ErrNameRequired) {
		t.Errorf("Expected ErrNameRequired, got %v", err)
	}
}

func TestGetWorkspaces_OnlyMemberWorkspaces(t *testing.T) {
	workspaceRepo := testutil.NewMockWorkspaceRepository()
	svc := NewWorkspaceService(workspaceRepo)

	if _, err := svc.CreateWorkspace(context.Background(), "user-1", "Mine", nil); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if _, err := svc.CreateWorkspace(context.Background(), "user-2", "Theirs", nil); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	workspaces, err := svc.GetWorkspaces(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(workspaces) != 1 {
		t.Fatalf("Expected 1 workspace, got %d", len(workspaces))
	}
	if workspaces[0].Name != "Mine" {
		t.Errorf("Expected workspace 'Mine', got %s", workspaces[0].Name)
	}
}
