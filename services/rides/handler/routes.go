package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/rickeev/RideShareTahoe-sub001/internal/pkg/models"
	"github.com/rickeev/RideShareTahoe-sub001/services/rides"
	httpHandler "github.com/rickeev/RideShareTahoe-sub001/services/rides/handler/http"
)

// Handler combines all handlers for the rides service
type Handler struct {
	ridesHTTP *httpHandler.RidesHandler
	cfg       *models.Config
}

// NewHandler creates a new combined handler
func NewHandler(rideUC rides.RideUC, cfg *models.Config) *Handler {
	return &Handler{
		ridesHTTP: httpHandler.NewRidesHandler(rideUC),
		cfg:       cfg,
	}
}

// RegisterRoutes registers all HTTP routes on the authenticated group
func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.POST("/rides", h.ridesHTTP.CreateRide)
	g.GET("/rides", h.ridesHTTP.SearchRides)
	g.GET("/rides/:rideID", h.ridesHTTP.GetRide)
	g.PATCH("/rides/:rideID/cancel", h.ridesHTTP.CancelRide)
	g.POST("/rides/:rideID/complete", h.ridesHTTP.CompleteRide)
}
