package handler

import (
	"github.com/labstack/echo/v4"

	appmiddleware "github.com/mlovre/kanbo/kanbo-backend/internal/middleware"
)

// Handlers aggregates the HTTP handlers for route registration
type Handlers struct {
	Auth      *AuthHandler
	Workspace *WorkspaceHandler
	Board     *BoardHandler
	List      *ListHandler
	Card      *CardHandler
	Comment   *CommentHandler
	Activity  *ActivityHandler
	WebSocket *WebSocketHandler
}

// RegisterRoutes registers all API routes on the Echo instance
func RegisterRoutes(e *echo.Echo, h Handlers, authMW *appmiddleware.AuthMiddleware, rateLimiter *appmiddleware.RateLimiter) {
	api := e.Group("/api")

	// Public routes
	authGroup := api.Group("/auth")
	authGroup.POST("/register", h.Auth.Register, appmiddleware.RateLimitMiddleware(rateLimiter))
	authGroup.POST("/login", h.Auth.Login, appmiddleware.RateLimitMiddleware(rateLimiter))

	// Board subscriptions carry no credentials
	api.GET("/ws/:boardId", h.WebSocket.Subscribe)

	// Authenticated routes
	protected := api.Group("", authMW.Authenticate())
	protected.GET("/auth/me", h.Auth.Me)

	protected.POST("/workspaces", h.Workspace.CreateWorkspace)
	protected.GET("/workspaces", h.Workspace.GetWorkspaces)

	protected.POST("/boards", h.Board.CreateBoard)
	protected.GET("/boards", h.Board.GetBoards)
	protected.GET("/boards/:id", h.Board.GetBoard)

	protected.POST("/boards/:id/lists", h.List.CreateList)
	protected.GET("/boards/:id/lists", h.List.GetLists)

	protected.POST("/lists/:id/cards", h.Card.CreateCard)
	protected.GET("/boards/:id/cards", h.Card.GetCards)
	protected.PUT("/cards/:id", h.Card.UpdateCard)
	protected.GET("/boards/:id/search", h.Card.SearchCards)

	protected.POST("/cards/:id/comments", h.Comment.CreateComment)
	protected.GET("/cards/:id/comments", h.Comment.GetComments)

	protected.GET("/boards/:id/activities", h.Activity.GetActivities)
}
