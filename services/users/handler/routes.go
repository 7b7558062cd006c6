package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/rickeev/RideShareTahoe-sub001/internal/pkg/models"
	"github.com/rickeev/RideShareTahoe-sub001/services/users"
	httpHandler "github.com/rickeev/RideShareTahoe-sub001/services/users/handler/http"
)

// Handler combines all handlers for the users service
type Handler struct {
	usersHTTP *httpHandler.UsersHandler
	cfg       *models.Config
}

// NewHandler creates a new combined handler
func NewHandler(userUC users.UserUC, cfg *models.Config) *Handler {
	return &Handler{
		usersHTTP: httpHandler.NewUsersHandler(userUC),
		cfg:       cfg,
	}
}

// RegisterPublicRoutes registers the unauthenticated auth endpoints
func (h *Handler) RegisterPublicRoutes(g *echo.Group) {
	g.POST("/auth/register", h.usersHTTP.Register)
	g.POST("/auth/login", h.usersHTTP.Login)
}

// RegisterRoutes registers the HTTP routes that require authentication
func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.GET("/profile", h.usersHTTP.GetProfile)
	g.PUT("/profile", h.usersHTTP.UpdateProfile)
	g.POST("/blocks", h.usersHTTP.BlockUser)
	g.DELETE("/blocks/:userID", h.usersHTTP.UnblockUser)
	g.GET("/blocks", h.usersHTTP.ListBlocks)
	g.POST("/reviews", h.usersHTTP.CreateReview)
	g.GET("/users/:userID/reviews", h.usersHTTP.ListReviews)
}
