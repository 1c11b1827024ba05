package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mlovre/kanbo/kanbo-backend/internal/domain"
)

// BoardService handles board business logic and acts as the access guard
// for board-scoped operations.
type BoardService struct {
	boardRepo domain.BoardRepository
}

// NewBoardService creates a new BoardService
func NewBoardService(boardRepo domain.BoardRepository) *BoardService {
	return &BoardService{boardRepo: boardRepo}
}

// CreateBoard creates a board with the owner as its sole member, holding
// the owner role. Visibility defaults to private.
func (s *BoardService) CreateBoard(ctx context.Context, ownerID, title string, workspaceID *string, visibility domain.BoardVisibility) (*domain.Board, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, domain.ErrTitleRequired
	}
	if visibility == "" {
		visibility = domain.VisibilityPrivate
	}

	now := time.Now().UTC()
	board := &domain.Board{
		ID:          uuid.New().String(),
		Title:       title,
		WorkspaceID: workspaceID,
		Visibility:  visibility,
		OwnerID:     ownerID,
		Members:     []domain.Member{{UserID: ownerID, Role: domain.BoardRoleOwner}},
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.boardRepo.Create(ctx, board); err != nil {
		return nil, err
	}
	return board, nil
}

// GetBoards retrieves all boards the user is a member of
func (s *BoardService) GetBoards(ctx context.Context, userID string) ([]*domain.Board, error) {
	return s.boardRepo.ListForMember(ctx, userID)
}

// Authorize returns the board when the user is in its member set. An
// absent board and a non-member caller both yield ErrBoardNotFound; roles
// are not consulted, membership alone grants access.
func (s *BoardService) Authorize(ctx context.Context, userID, boardID string) (*domain.Board, error) {
	return s.boardRepo.GetForMember(ctx, boardID, userID)
}
