package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/mlovre/kanbo/kanbo-backend/internal/domain"
	"github.com/mlovre/kanbo/kanbo-backend/internal/middleware"
	"github.com/mlovre/kanbo/kanbo-backend/internal/service"
	"github.com/rs/zerolog/log"
)

// ListHandler handles list HTTP requests
type ListHandler struct {
	listService *service.ListService
}

// NewListHandler creates a new ListHandler
func NewListHandler(listService *service.ListService) *ListHandler {
	return &ListHandler{listService: listService}
}

// CreateListRequest represents the create list request body
type CreateListRequest struct {
	Title    string   `json:"title"`
	Position *float64 `json:"position"`
}

// CreateList handles POST /api/boards/:id/lists
func (h *ListHandler) CreateList(c echo.Context) error {
	userID := middleware.GetUserID(c)
	if userID == "" {
		return NewUnauthorizedError(c, "Authentication required")
	}

	boardID := c.Param("id")

	var req CreateListRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	list, err := h.listService.CreateList(c.Request().Context(), userID, boardID, req.Title, req.Position)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrBoardNotFound):
			return NewNotFoundError(c, "Board not found")
		case errors.Is(err, domain.ErrTitleRequired):
			return NewValidationError(c, "Validation failed", []ValidationError{{Field: "title", Message: "Title is required"}})
		}
		log.Error().Err(err).Str("board_id", boardID).Msg("Failed to create list")
		return NewInternalError(c, "Failed to create list")
	}

	return c.JSON(http.StatusCreated, list)
}

// GetLists handles GET /api/boards/:id/lists
func (h *ListHandler) GetLists(c echo.Context) error {
	userID := middleware.GetUserID(c)
	if userID == "" {
		return NewUnauthorizedError(c, "Authentication required")
	}

	boardID := c.Param("id")
	lists, err := h.listService.GetLists(c.Request().Context(), userID, boardID)
	if err != nil {
		if errors.Is(err, domain.ErrBoardNotFound) {
			return NewNotFoundError(c, "Board not found")
		}
		log.Error().Err(err).Str("board_id", boardID).Msg("Failed to get lists")
		return NewInternalError(c, "Failed to get lists")
	}
	if lists == nil {
		lists = []*domain.List{}
	}

	return c.JSON(http.StatusOK, lists)
}
