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

// CommentHandler handles comment HTTP requests
type CommentHandler struct {
	commentService *service.CommentService
}

// NewCommentHandler creates a new CommentHandler
func NewCommentHandler(commentService *service.CommentService) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

// CreateCommentRequest represents the create comment request body
type CreateCommentRequest struct {
	Text string `json:"text"`
}

// CreateComment handles POST /api/cards/:id/comments
func (h *CommentHandler) CreateComment(c echo.Context) error {
	userID := middleware.GetUserID(c)
	if userID == "" {
		return NewUnauthorizedError(c, "Authentication required")
	}

	cardID := c.Param("id")

	var req CreateCommentRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	comment, err := h.commentService.CreateComment(c.Request().Context(), userID, cardID, req.Text)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrTextRequired):
			return NewValidationError(c, "Validation failed", []ValidationError{{Field: "text", Message: "Text is required"}})
		case errors.Is(err, domain.ErrCardNotFound):
			return NewNotFoundError(c, "Card not found")
		case errors.Is(err, domain.ErrListNotFound):
			return NewNotFoundError(c, "List not found")
		case errors.Is(err, domain.ErrBoardNotFound):
			return NewNotFoundError(c, "Board not found")
		}
		log.Error().Err(err).Str("card_id", cardID).Msg("Failed to create comment")
		return NewInternalError(c, "Failed to create comment")
	}

	return c.JSON(http.StatusCreated, comment)
}

// GetComments handles GET /api/cards/:id/comments
func (h *CommentHandler) GetComments(c echo.Context) error {
	userID := middleware.GetUserID(c)
	if userID == "" {
		return NewUnauthorizedError(c, "Authentication required")
	}

	cardID := c.Param("id")
	comments, err := h.commentService.GetComments(c.Request().Context(), userID, cardID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrCardNotFound):
			return NewNotFoundError(c, "Card not found")
		case errors.Is(err, domain.ErrBoardNotFound):
			return NewNotFoundError(c, "Board not found")
		}
		log.Error().Err(err).Str("card_id", cardID).Msg("Failed to get comments")
		return NewInternalError(c, "Failed to get comments")
	}
	if comments == nil {
		comments = []*domain.Comment{}
	}

	return c.JSON(http.StatusOK, comments)
}
