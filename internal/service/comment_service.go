package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mlovre/kanbo/kanbo-backend/internal/domain"
)

// commentPreviewLen caps comment text in activity details
const commentPreviewLen = 100

// CommentService handles comment business logic
type CommentService struct {
	commentRepo domain.CommentRepository
	cardRepo    domain.CardRepository
	listRepo    domain.ListRepository
	boardRepo   domain.BoardRepository
	activity    *ActivityService
}

// NewCommentService creates a new CommentService
func NewCommentService(commentRepo domain.CommentRepository, cardRepo domain.CardRepository, listRepo domain.ListRepository, boardRepo domain.BoardRepository, activity *ActivityService) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		cardRepo:    cardRepo,
		listRepo:    listRepo,
		boardRepo:   boardRepo,
		activity:    activity,
	}
}

// CreateComment attaches a comment to a card, authored by the calling
// user. The owning board is resolved through the card's list.
func (s *CommentService) CreateComment(ctx context.Context, userID, cardID, text string) (*domain.Comment, error) {
	if strings.TrimSpace(text) == "" {
		return nil, domain.ErrTextRequired
	}

	boardID, err := s.boardIDForCard(ctx, cardID)
	if err != nil {
		return nil, err
	}
	if _, err := s.boardRepo.GetForMember(ctx, boardID, userID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	comment := &domain.Comment{
		ID:        uuid.New().String(),
		Text:      text,
		CardID:    cardID,
		AuthorID:  userID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}

	if _, err := s.activity.Record(ctx, boardID, userID, domain.ActivityCommentAdded, map[string]any{
		"card_id":      cardID,
		"comment_id":   comment.ID,
		"comment_text": previewText(comment.Text),
	}); err != nil {
		return nil, err
	}

	return comment, nil
}

// GetComments retrieves a card's comments oldest first
func (s *CommentService) GetComments(ctx context.Context, userID, cardID string) ([]*domain.Comment, error) {
	boardID, err := s.boardIDForCard(ctx, cardID)
	if err != nil {
		return nil, err
	}
	if _, err := s.boardRepo.GetForMember(ctx, boardID, userID); err != nil {
		return nil, err
	}
	return s.commentRepo.ListByCard(ctx, cardID)
}

func (s *CommentService) boardIDForCard(ctx context.Context, cardID string) (string, error) {
	card, err := s.cardRepo.GetByID(ctx, cardID)
	if err != nil {
		return "", err
	}
	list, err := s.listRepo.GetByID(ctx, card.ListID)
	if err != nil {
		return "", err
	}
	return list.BoardID, nil
}

// previewText truncates comment text past 100 characters, appending an
// ellipsis; shorter text is carried unmodified.
func previewText(text string) string {
	runes := []rune(text)
	if len(runes) <= commentPreviewLen {
		return text
	}
	return string(runes[:commentPreviewLen]) + "..."
}
