package service

import (
	"context"
	"errors"
	"testing"

	"github.com/mlovre/kanbo/kanbo-backend/internal/domain"
	"github.com/mlovre/kanbo/kanbo-backend/internal/testutil"
	"github.com/mlovre/kanbo/kanbo-backend/internal/websocket"
)

// TestBoardFlow exercises the full write path: board setup, access
// control, list ordering, card movement and the resulting broadcasts.
func TestBoardFlow(t *testing.T) {
	ctx := context.Background()

	boardRepo := testutil.NewMockBoardRepository()
	listRepo := testutil.NewMockListRepository()
	cardRepo := testutil.NewMockCardRepository()
	activityRepo := testutil.NewMockActivityRepository()
	publisher := &recordingPublisher{}

	boardService := NewBoardService(boardRepo)
	activityService := NewActivityService(activityRepo, boardRepo, publisher)
	listService := NewListService(listRepo, boardRepo, activityService)
	cardService := NewCardService(cardRepo, listRepo, boardRepo, activityService)

	// Owner creates a board
	board, err := boardService.CreateBoard(ctx, "user-1", "Sprint", nil, "")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	// A stranger cannot even see it
	if _, err := boardService.Authorize(ctx, "user-2", board.ID); !errors.Is(err, domain.ErrBoardNotFound) {
		t.Fatalf("Expected ErrBoardNotFound for stranger, got %v", err)
	}
	if _, err := listService.CreateList(ctx, "user-2", board.ID, "Hijack", nil); !errors.Is(err, domain.ErrBoardNotFound) {
		t.Fatalf("Expected ErrBoardNotFound for stranger list create, got %v", err)
	}

	// Lists append at 1000, 2000
	todo, err := listService.CreateList(ctx, "user-1", board.ID, "Todo", nil)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	doing, err := listService.CreateList(ctx, "user-1", board.ID, "Doing", nil)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if todo.Position != 1000 || doing.Position != 2000 {
		t.Fatalf("Expected list positions 1000/2000, got %f/%f", todo.Position, doing.Position)
	}

	// Card lands in Todo, then moves to Doing
	card, err := cardService.CreateCard(ctx, "user-1", todo.ID, CreateCardInput{Title: "Ship it"})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	moved, err := cardService.UpdateCard(ctx, "user-1", card.ID, domain.CardPatch{ListID: &doing.ID})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if moved.ListID != doing.ID {
		t.Fatalf("Expected card in list %s, got %s", doing.ID, moved.ListID)
	}

	// Every write was broadcast to the board's subscribers
	if len(publisher.events) != 4 {
		t.Fatalf("Expected 4 broadcasts, got %d", len(publisher.events))
	}
	for _, id := range publisher.boardIDs {
		if id != board.ID {
			t.Errorf("Expected broadcasts on board %s, got %s", board.ID, id)
		}
	}

	lastEvent := publisher.events[len(publisher.events)-1]
	activity, ok := lastEvent.Activity.(*domain.ActivityLog)
	if !ok {
		t.Fatalf("Expected activity payload, got %T", lastEvent.Activity)
	}
	if activity.ActivityType != domain.ActivityCardMoved {
		t.Errorf("Expected card_moved broadcast, got %s", activity.ActivityType)
	}

	// The activity feed reads newest first
	feed, err := activityService.ListByBoard(ctx, "user-1", board.ID, 0)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(feed) != 4 {
		t.Fatalf("Expected 4 activity entries, got %d", len(feed))
	}
	if feed[0].ActivityType != domain.ActivityCardMoved {
		t.Errorf("Expected newest entry card_moved, got %s", feed[0].ActivityType)
	}

	// Stranger cannot read the feed either
	if _, err := activityService.ListByBoard(ctx, "user-2", board.ID, 0); !errors.Is(err, domain.ErrBoardNotFound) {
		t.Errorf("Expected ErrBoardNotFound for stranger feed read, got %v", err)
	}

	// Hub broadcast shape matches the envelope subscribers receive
	data, err := websocket.NewActivityEvent(activity).ToJSON()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(data) == 0 {
		t.Error("Expected serialized event payload")
	}
}
