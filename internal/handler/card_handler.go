package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/mlovre/kanbo/kanbo-backend/internal/domain"
	"github.com/mlovre/kanbo/kanbo-backend/internal/middleware"
	"github.com/mlovre/kanbo/kanbo-backend/internal/service"
	"github.com/rs/zerolog/log"
)

// CardHandler handles card HTTP requests
type CardHandler struct {
	cardService *service.CardService
}

// NewCardHandler creates a new CardHandler
func NewCardHandler(cardService *service.CardService) *CardHandler {
	return &CardHandler{cardService: cardService}
}

// CreateCardRequest represents the create card request body
type CreateCardRequest struct {
	Title       string   `json:"title"`
	Description *string  `json:"description"`
	Position    *float64 `json:"position"`
	Labels      []string `json:"labels"`
	Assignees   []string `json:"assignees"`
	DueDate     *string  `json:"due_date"`
}

// UpdateCardRequest represents the partial update request body. Absent
// fields leave the stored values untouched.
type UpdateCardRequest struct {
	Title       *string   `json:"title"`
	Description *string   `json:"description"`
	ListID      *string   `json:"list_id"`
	Position    *float64  `json:"position"`
	Labels      *[]string `json:"labels"`
	Assignees   *[]string `json:"assignees"`
	DueDate     *string   `json:"due_date"`
}

// CreateCard handles POST /api/lists/:id/cards
func (h *CardHandler) CreateCard(c echo.Context) error {
	userID := middleware.GetUserID(c)
	if userID == "" {
		return NewUnauthorizedError(c, "Authentication required")
	}

	listID := c.Param("id")

	var req CreateCardRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	card, err := h.cardService.CreateCard(c.Request().Context(), userID, listID, service.CreateCardInput{
		Title:       req.Title,
		Description: req.Description,
		Position:    req.Position,
		Labels:      req.Labels,
		Assignees:   req.Assignees,
		DueDate:     parseDueDate(req.DueDate),
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrListNotFound):
			return NewNotFoundError(c, "List not found")
		case errors.Is(err, domain.ErrBoardNotFound):
			return NewNotFoundError(c, "Board not found")
		case errors.Is(err, domain.ErrTitleRequired):
			return NewValidationError(c, "Validation failed", []ValidationError{{Field: "title", Message: "Title is required"}})
		}
		log.Error().Err(err).Str("list_id", listID).Msg("Failed to create card")
		return NewInternalError(c, "Failed to create card")
	}

	return c.JSON(http.StatusCreated, card)
}

// GetCards handles GET /api/boards/:id/cards
func (h *CardHandler) GetCards(c echo.Context) error {
	userID := middleware.GetUserID(c)
	if userID == "" {
		return NewUnauthorizedError(c, "Authentication required")
	}

	boardID := c.Param("id")
	cards, err := h.cardService.GetCards(c.Request().Context(), userID, boardID)
	if err != nil {
		if errors.Is(err, domain.ErrBoardNotFound) {
			return NewNotFoundError(c, "Board not found")
		}
		log.Error().Err(err).Str("board_id", boardID).Msg("Failed to get cards")
		return NewInternalError(c, "Failed to get cards")
	}
	if cards == nil {
		cards = []*domain.Card{}
	}

	return c.JSON(http.StatusOK, cards)
}

// UpdateCard handles PUT /api/cards/:id
func (h *CardHandler) UpdateCard(c echo.Context) error {
	userID := middleware.GetUserID(c)
	if userID == "" {
		return NewUnauthorizedError(c, "Authentication required")
	}

	cardID := c.Param("id")

	var req UpdateCardRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	patch := domain.CardPatch{
		Title:       req.Title,
		Description: req.Description,
		ListID:      req.ListID,
		Position:    req.Position,
		Labels:      req.Labels,
		Assignees:   req.Assignees,
	}
	if req.DueDate != nil {
		patch.DueDate = parseDueDate(req.DueDate)
	}

	card, err := h.cardService.UpdateCard(c.Request().Context(), userID, cardID, patch)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrCardNotFound):
			return NewNotFoundError(c, "Card not found")
		case errors.Is(err, domain.ErrListNotFound):
			return NewNotFoundError(c, "List not found")
		case errors.Is(err, domain.ErrBoardNotFound):
			return NewNotFoundError(c, "Board not found")
		}
		log.Error().Err(err).Str("card_id", cardID).Msg("Failed to update card")
		return NewInternalError(c, "Failed to update card")
	}

	return c.JSON(http.StatusOK, card)
}

// SearchCards handles GET /api/boards/:id/search
func (h *CardHandler) SearchCards(c echo.Context) error {
	userID := middleware.GetUserID(c)
	if userID == "" {
		return NewUnauthorizedError(c, "Authentication required")
	}

	boardID := c.Param("id")
	input := service.SearchInput{
		Query:     c.QueryParam("q"),
		Labels:    splitCSV(c.QueryParam("labels")),
		Assignees: splitCSV(c.QueryParam("assignees")),
	}

	cards, err := h.cardService.SearchCards(c.Request().Context(), userID, boardID, input)
	if err != nil {
		if errors.Is(err, domain.ErrBoardNotFound) {
			return NewNotFoundError(c, "Board not found")
		}
		log.Error().Err(err).Str("board_id", boardID).Msg("Failed to search cards")
		return NewInternalError(c, "Failed to search cards")
	}
	if cards == nil {
		cards = []*domain.Card{}
	}

	return c.JSON(http.StatusOK, cards)
}

// parseDueDate parses an RFC 3339 due date, tolerating absent or
// unparsable values as no due date.
func parseDueDate(raw *string) *time.Time {
	if raw == nil || *raw == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339, *raw)
	if err != nil {
		return nil
	}
	return &t
}

func splitCSV(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
