package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/mlovre/kanbo/kanbo-backend/internal/domain"
	"github.com/mlovre/kanbo/kanbo-backend/internal/service"
	"github.com/mlovre/kanbo/kanbo-backend/internal/testutil"
	"github.com/mlovre/kanbo/kanbo-backend/internal/websocket"
)

type cardHandlerFixture struct {
	handler  *CardHandler
	cardRepo *testutil.MockCardRepository
	user     *domain.User
	board    *domain.Board
	list     *domain.List
}

func newCardHandlerFixture(t *testing.T) *cardHandlerFixture {
	t.Helper()

	cardRepo := testutil.NewMockCardRepository()
	listRepo := testutil.NewMockListRepository()
	boardRepo := testutil.NewMockBoardRepository()
	activityRepo := testutil.NewMockActivityRepository()
	activity := service.NewActivityService(activityRepo, boardRepo, &websocket.NoOpPublisher{})
	cardService := service.NewCardService(cardRepo, listRepo, boardRepo, activity)

	user := testUser("alice")
	board := memberBoard(user)
	boardRepo.AddBoard(board)
	list := &domain.List{ID: "list-1", BoardID: board.ID, Title: "Todo", Position: 1000}
	listRepo.AddList(list)

	return &cardHandlerFixture{
		handler:  NewCardHandler(cardService),
		cardRepo: cardRepo,
		user:     user,
		board:    board,
		list:     list,
	}
}

func TestCreateCard_Created(t *testing.T) {
	e := echo.New()
	f := newCardHandlerFixture(t)

	reqBody := `{"title": "Ship it", "labels": ["release"], "due_date": "2026-10-01T12:00:00Z"}`
	req := httptest.NewRequest(http.MethodPost, "/api/lists/"+f.list.ID+"/cards", strings.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(f.list.ID)
	setAuthContext(c, f.user)

	if err := f.handler.CreateCard(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("Expected status 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var card domain.Card
	if err := json.Unmarshal(rec.Body.Bytes(), &card); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if card.Position != 1000 {
		t.Errorf("Expected position 1000, got %f", card.Position)
	}
	if card.DueDate == nil {
		t.Fatal("Expected due date to be parsed")
	}
	want := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)
	if !card.DueDate.Equal(want) {
		t.Errorf("Expected due date %v, got %v", want, card.DueDate)
	}
}

func TestCreateCard_UnparsableDueDateIgnored(t *testing.T) {
	e := echo.New()
	f := newCardHandlerFixture(t)

	reqBody := `{"title": "Ship it", "due_date": "next tuesday"}`
	req := httptest.NewRequest(http.MethodPost, "/api/lists/"+f.list.ID+"/cards", strings.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(f.list.ID)
	setAuthContext(c, f.user)

	if err := f.handler.CreateCard(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("Expected status 201, got %d", rec.Code)
	}

	var card domain.Card
	if err := json.Unmarshal(rec.Body.Bytes(), &card); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if card.DueDate != nil {
		t.Errorf("Expected unparsable due date to be dropped, got %v", card.DueDate)
	}
}

func TestUpdateCard_PartialPatch(t *testing.T) {
	e := echo.New()
	f := newCardHandlerFixture(t)

	desc := "original"
	f.cardRepo.AddCard(&domain.Card{
		ID: "card-1", ListID: f.list.ID, Title: "Card A",
		Description: &desc, Position: 1000,
	})

	req := httptest.NewRequest(http.MethodPut, "/api/cards/card-1", strings.NewReader(`{"title": "Renamed"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("card-1")
	setAuthContext(c, f.user)

	if err := f.handler.UpdateCard(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var card domain.Card
	if err := json.Unmarshal(rec.Body.Bytes(), &card); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if card.Title != "Renamed" {
		t.Errorf("Expected title Renamed, got %s", card.Title)
	}
	if card.Description == nil || *card.Description != "original" {
		t.Error("Expected description untouched by partial patch")
	}
}

func TestUpdateCard_NonMemberNotFound(t *testing.T) {
	e := echo.New()
	f := newCardHandlerFixture(t)

	f.cardRepo.AddCard(&domain.Card{ID: "card-1", ListID: f.list.ID, Title: "Card A", Position: 1000})

	req := httptest.NewRequest(http.MethodPut, "/api/cards/card-1", strings.NewReader(`{"title": "Hijacked"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("card-1")
	setAuthContext(c, testUser("bob"))

	if err := f.handler.UpdateCard(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Errorf("Expected status 404 for non-member, got %d", rec.Code)
	}
}

func TestSearchCards_QueryParams(t *testing.T) {
	e := echo.New()
	f := newCardHandlerFixture(t)

	f.cardRepo.AddCard(&domain.Card{ID: "c1", ListID: f.list.ID, Title: "Fix login bug", Labels: []string{"bug"}, Position: 1000})
	f.cardRepo.AddCard(&domain.Card{ID: "c2", ListID: f.list.ID, Title: "Fix logout bug", Labels: []string{"docs"}, Position: 2000})

	req := httptest.NewRequest(http.MethodGet, "/api/boards/"+f.board.ID+"/search?q=fix&labels=bug,infra", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(f.board.ID)
	setAuthContext(c, f.user)

	if err := f.handler.SearchCards(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rec.Code)
	}

	var cards []domain.Card
	if err := json.Unmarshal(rec.Body.Bytes(), &cards); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if len(cards) != 1 || cards[0].ID != "c1" {
		t.Errorf("Expected only c1 to match, got %v", cards)
	}
}
