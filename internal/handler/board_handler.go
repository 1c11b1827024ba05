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

// BoardHandler handles board HTTP requests
type BoardHandler struct {
	boardService *service.BoardService
}

// NewBoardHandler creates a new BoardHandler
func NewBoardHandler(boardService *service.BoardService) *BoardHandler {
	return &BoardHandler{boardService: boardService}
}

// CreateBoardRequest represents the create board request body
type CreateBoardRequest struct {
	Title       string  `json:"title"`
	WorkspaceID *string `json:"workspace_id"`
	Visibility  string  `json:"visibility"`
}

// CreateBoard handles POST /api/boards
func (h *BoardHandler) CreateBoard(c echo.Context) error {
	userID := middleware.GetUserID(c)
	if userID == "" {
		return NewUnauthorizedError(c, "Authentication required")
	}

	var req CreateBoardRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	board, err := h.boardService.CreateBoard(c.Request().Context(), userID, req.Title, req.WorkspaceID, domain.BoardVisibility(req.Visibility))
	if err != nil {
		if errors.Is(err, domain.ErrTitleRequired) {
			return NewValidationError(c, "Validation failed", []ValidationError{{Field: "title", Message: "Title is required"}})
		}
		log.Error().Err(err).Str("user_id", userID).Msg("Failed to create board")
		return NewInternalError(c, "Failed to create board")
	}

	return c.JSON(http.StatusCreated, board)
}

// GetBoards handles GET /api/boards
func (h *BoardHandler) GetBoards(c echo.Context) error {
	userID := middleware.GetUserID(c)
	if userID == "" {
		return NewUnauthorizedError(c, "Authentication required")
	}

	boards, err := h.boardService.GetBoards(c.Request().Context(), userID)
	if err != nil {
		log.Error().Err(err).Str("user_id", userID).Msg("Failed to get boards")
		return NewInternalError(c, "Failed to get boards")
	}
	if boards == nil {
		boards = []*domain.Board{}
	}

	return c.JSON(http.StatusOK, boards)
}

// GetBoard handles GET /api/boards/:id
func (h *BoardHandler) GetBoard(c echo.Context) error {
	userID := middleware.GetUserID(c)
	if userID == "" {
		return NewUnauthorizedError(c, "Authentication required")
	}

	boardID := c.Param("id")
	board, err := h.boardService.Authorize(c.Request().Context(), userID, boardID)
	if err != nil {
		if errors.Is(err, domain.ErrBoardNotFound) {
			return NewNotFoundError(c, "Board not found")
		}
		log.Error().Err(err).Str("board_id", boardID).Msg("Failed to get board")
		return NewInternalError(c, "Failed to get board")
	}

	return c.JSON(http.StatusOK, board)
}
