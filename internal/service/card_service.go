package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mlovre/kanbo/kanbo-backend/internal/domain"
)

// CardService handles card business logic
type CardService struct {
	cardRepo  domain.CardRepository
	listRepo  domain.ListRepository
	boardRepo domain.BoardRepository
	activity  *ActivityService
}

// NewCardService creates a new CardService
func NewCardService(cardRepo domain.CardRepository, listRepo domain.ListRepository, boardRepo domain.BoardRepository, activity *ActivityService) *CardService {
	return &CardService{
		cardRepo:  cardRepo,
		listRepo:  listRepo,
		boardRepo: boardRepo,
		activity:  activity,
	}
}

// CreateCardInput holds the input for creating a card
type CreateCardInput struct {
	Title       string
	Description *string
	Position    *float64
	Labels      []string
	Assignees   []string
	DueDate     *time.Time
}

// CreateCard creates a card in a list. The list must exist and its board
// must admit the caller. Without a supplied position the card is appended
// after the list's current last card; concurrent appends to one list can
// race on that read-then-insert.
func (s *CardService) CreateCard(ctx context.Context, userID, listID string, input CreateCardInput) (*domain.Card, error) {
	list, err := s.listRepo.GetByID(ctx, listID)
	if err != nil {
		return nil, err
	}
	if _, err := s.boardRepo.GetForMember(ctx, list.BoardID, userID); err != nil {
		return nil, err
	}

	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, domain.ErrTitleRequired
	}

	pos := input.Position
	if pos == nil {
		max, err := s.cardRepo.MaxPositionInList(ctx, listID)
		if err != nil {
			return nil, err
		}
		next := domain.NextPosition(max)
		pos = &next
	}

	labels := input.Labels
	if labels == nil {
		labels = []string{}
	}
	assignees := input.Assignees
	if assignees == nil {
		assignees = []string{}
	}

	now := time.Now().UTC()
	card := &domain.Card{
		ID:          uuid.New().String(),
		Title:       title,
		Description: input.Description,
		ListID:      listID,
		Position:    *pos,
		Labels:      labels,
		Assignees:   assignees,
		DueDate:     input.DueDate,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.cardRepo.Create(ctx, card); err != nil {
		return nil, err
	}

	if _, err := s.activity.Record(ctx, list.BoardID, userID, domain.ActivityCardCreated, map[string]any{
		"card_id":    card.ID,
		"card_title": card.Title,
		"list_id":    listID,
	}); err != nil {
		return nil, err
	}

	return card, nil
}

// GetCards retrieves all cards on a board in ascending position order
func (s *CardService) GetCards(ctx context.Context, userID, boardID string) ([]*domain.Card, error) {
	if _, err := s.boardRepo.GetForMember(ctx, boardID, userID); err != nil {
		return nil, err
	}
	ids, err := s.listIDs(ctx, boardID)
	if err != nil {
		return nil, err
	}
	return s.cardRepo.ListByListIDs(ctx, ids)
}

// UpdateCard applies a partial patch to a card. Access is checked against
// the card's current list's board before the patch is applied, so moving
// a card requires membership of the source board. A patch that changes
// list_id is logged as card_moved, anything else as card_updated.
func (s *CardService) UpdateCard(ctx context.Context, userID, cardID string, patch domain.CardPatch) (*domain.Card, error) {
	card, err := s.cardRepo.GetByID(ctx, cardID)
	if err != nil {
		return nil, err
	}
	list, err := s.listRepo.GetByID(ctx, card.ListID)
	if err != nil {
		return nil, err
	}
	if _, err := s.boardRepo.GetForMember(ctx, list.BoardID, userID); err != nil {
		return nil, err
	}

	updated, err := s.cardRepo.Update(ctx, cardID, patch)
	if err != nil {
		return nil, err
	}

	activityType := domain.ActivityCardUpdated
	if patch.ListID != nil {
		activityType = domain.ActivityCardMoved
	}

	if _, err := s.activity.Record(ctx, list.BoardID, userID, activityType, map[string]any{
		"card_id":    cardID,
		"card_title": updated.Title,
		"changes":    patchChanges(patch),
	}); err != nil {
		return nil, err
	}

	return updated, nil
}

// SearchInput narrows a board-scoped card search. Labels and Assignees
// match by set intersection; Query matches title or description
// case-insensitively.
type SearchInput struct {
	Query     string
	Labels    []string
	Assignees []string
}

// SearchCards searches cards across all lists of one board, sorted
// ascending by position.
func (s *CardService) SearchCards(ctx context.Context, userID, boardID string, input SearchInput) ([]*domain.Card, error) {
	if _, err := s.boardRepo.GetForMember(ctx, boardID, userID); err != nil {
		return nil, err
	}
	ids, err := s.listIDs(ctx, boardID)
	if err != nil {
		return nil, err
	}
	return s.cardRepo.Search(ctx, domain.CardFilter{
		ListIDs:   ids,
		Text:      input.Query,
		Labels:    input.Labels,
		Assignees: input.Assignees,
	})
}

func (s *CardService) listIDs(ctx context.Context, boardID string) ([]string, error) {
	lists, err := s.listRepo.ListByBoard(ctx, boardID)
	if err != nil {
		return nil, err
	}
	ids := make([]string, len(lists))
	for i, l := range lists {
		ids[i] = l.ID
	}
	return ids, nil
}

// patchChanges reports the supplied patch fields for the activity payload
func patchChanges(patch domain.CardPatch) map[string]any {
	changes := map[string]any{}
	if patch.Title != nil {
		changes["title"] = *patch.Title
	}
	if patch.Description != nil {
		changes["description"] = *patch.Description
	}
	if patch.ListID != nil {
		changes["list_id"] = *patch.ListID
	}
	if patch.Position != nil {
		changes["position"] = *patch.Position
	}
	if patch.Labels != nil {
		changes["labels"] = *patch.Labels
	}
	if patch.Assignees != nil {
		changes["assignees"] = *patch.Assignees
	}
	if patch.DueDate != nil {
		changes["due_date"] = patch.DueDate.UTC().Format(time.RFC3339)
	}
	return changes
}
