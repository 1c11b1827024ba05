package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/mlovre/kanbo/kanbo-backend/internal/domain"
	"github.com/mlovre/kanbo/kanbo-backend/internal/websocket"
	"github.com/rs/zerolog/log"
)

// DefaultActivityLimit caps a board activity listing when the caller does
// not supply a limit.
const DefaultActivityLimit = 20

// ActivityService records board activity and fans it out to live
// subscribers. Persistence always happens first; broadcast is best-effort
// and never fails the caller.
type ActivityService struct {
	activityRepo domain.ActivityRepository
	boardRepo    domain.BoardRepository
	publisher    websocket.EventPublisher
}

// NewActivityService creates a new ActivityService
func NewActivityService(activityRepo domain.ActivityRepository, boardRepo domain.BoardRepository, publisher websocket.EventPublisher) *ActivityService {
	return &ActivityService{
		activityRepo: activityRepo,
		boardRepo:    boardRepo,
		publisher:    publisher,
	}
}

// Record appends an activity entry and broadcasts it to the board's live
// subscribers. Callers have already authorized the actor against the board.
func (s *ActivityService) Record(ctx context.Context, boardID, actorID string, activityType domain.ActivityType, details map[string]any) (*domain.ActivityLog, error) {
	activity := &domain.ActivityLog{
		ID:           uuid.New().String(),
		BoardID:      boardID,
		UserID:       actorID,
		ActivityType: activityType,
		Details:      details,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.activityRepo.Create(ctx, activity); err != nil {
		return nil, err
	}

	s.publisher.Publish(boardID, websocket.NewActivityEvent(activity))

	log.Debug().
		Str("board_id", boardID).
		Str("activity_type", string(activityType)).
		Msg("Activity recorded")

	return activity, nil
}

// ListByBoard retrieves recent board activity, newest first. A limit of
// zero or less falls back to DefaultActivityLimit.
func (s *ActivityService) ListByBoard(ctx context.Context, userID, boardID string, limit int) ([]*domain.ActivityLog, error) {
	if _, err := s.boardRepo.GetForMember(ctx, boardID, userID); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = DefaultActivityLimit
	}
	return s.activityRepo.ListByBoard(ctx, boardID, limit)
}
