package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mlovre/kanbo/kanbo-backend/internal/domain"
)

// ListService handles board-column business logic
type ListService struct {
	listRepo  domain.ListRepository
	boardRepo domain.BoardRepository
	activity  *ActivityService
}

// NewListService creates a new ListService
func NewListService(listRepo domain.ListRepository, boardRepo domain.BoardRepository, activity *ActivityService) *ListService {
	return &ListService{
		listRepo:  listRepo,
		boardRepo: boardRepo,
		activity:  activity,
	}
}

// CreateList creates a list on a board. When the caller supplies no
// position the list is appended after the board's current last list.
// No lock is held between reading the max position and the insert, so
// concurrent appends to one board can race.
func (s *ListService) CreateList(ctx context.Context, userID, boardID, title string, position *float64) (*domain.List, error) {
	if _, err := s.boardRepo.GetForMember(ctx, boardID, userID); err != nil {
		return nil, err
	}

	title = strings.TrimSpace(title)
	if title == "" {
		return nil, domain.ErrTitleRequired
	}

	pos, err := s.resolvePosition(ctx, boardID, position)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	list := &domain.List{
		ID:        uuid.New().String(),
		Title:     title,
		BoardID:   boardID,
		Position:  pos,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.listRepo.Create(ctx, list); err != nil {
		return nil, err
	}

	if _, err := s.activity.Record(ctx, boardID, userID, domain.ActivityListCreated, map[string]any{
		"list_id":    list.ID,
		"list_title": list.Title,
	}); err != nil {
		return nil, err
	}

	return list, nil
}

// GetLists retrieves a board's lists in ascending position order
func (s *ListService) GetLists(ctx context.Context, userID, boardID string) ([]*domain.List, error) {
	if _, err := s.boardRepo.GetForMember(ctx, boardID, userID); err != nil {
		return nil, err
	}
	return s.listRepo.ListByBoard(ctx, boardID)
}

func (s *ListService) resolvePosition(ctx context.Context, boardID string, supplied *float64) (float64, error) {
	if supplied != nil {
		return *supplied, nil
	}
	max, err := s.listRepo.MaxPositionInBoard(ctx, boardID)
	if err != nil {
		return 0, err
	}
	return domain.NextPosition(max), nil
}
