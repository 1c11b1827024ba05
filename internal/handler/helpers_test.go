package handler

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/mlovre/kanbo/kanbo-backend/internal/domain"
	"github.com/mlovre/kanbo/kanbo-backend/internal/middleware"
)

// setAuthContext places an authenticated user on the request context the
// way the auth middleware does.
func setAuthContext(c echo.Context, user *domain.User) {
	ctx := context.WithValue(c.Request().Context(), middleware.UserIDKey, user.ID)
	ctx = context.WithValue(ctx, middleware.UserKey, user)
	c.SetRequest(c.Request().WithContext(ctx))
}

func testUser(name string) *domain.User {
	now := time.Now().UTC()
	return &domain.User{
		ID:        uuid.New().String(),
		Email:     name + "@example.com",
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func memberBoard(owner *domain.User) *domain.Board {
	now := time.Now().UTC()
	return &domain.Board{
		ID:         uuid.New().String(),
		Title:      "Test Board",
		Visibility: domain.VisibilityPrivate,
		OwnerID:    owner.ID,
		Members:    []domain.Member{{UserID: owner.ID, Role: domain.BoardRoleOwner}},
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}
