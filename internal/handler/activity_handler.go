package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/mlovre/kanbo/kanbo-backend/internal/domain"
	"github.com/mlovre/kanbo/kanbo-backend/internal/middleware"
	"github.com/mlovre/kanbo/kanbo-backend/internal/service"
	"github.com/rs/zerolog/log"
)

// ActivityHandler handles activity log HTTP requests
type ActivityHandler struct {
	activityService *service.ActivityService
}

// NewActivityHandler creates a new ActivityHandler
func NewActivityHandler(activityService *service.ActivityService) *ActivityHandler {
	return &ActivityHandler{activityService: activityService}
}

// GetActivities handles GET /api/boards/:id/activities. An absent or
// explicit zero limit both fall back to the default of 20; there is no
// way to request an unbounded feed.
func (h *ActivityHandler) GetActivities(c echo.Context) error {
	userID := middleware.GetUserID(c)
	if userID == "" {
		return NewUnauthorizedError(c, "Authentication required")
	}

	boardID := c.Param("id")

	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			return NewValidationError(c, "Validation failed", []ValidationError{{Field: "limit", Message: "Limit must be a non-negative integer"}})
		}
		limit = parsed
	}

	activities, err := h.activityService.ListByBoard(c.Request().Context(), userID, boardID, limit)
	if err != nil {
		if errors.Is(err, domain.ErrBoardNotFound) {
			return NewNotFoundError(c, "Board not found")
		}
		log.Error().Err(err).Str("board_id", boardID).Msg("Failed to get activities")
		return NewInternalError(c, "Failed to get activities")
	}
	if activities == nil {
		activities = []*domain.ActivityLog{}
	}

	return c.JSON(http.StatusOK, activities)
}
