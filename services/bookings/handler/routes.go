package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/rickeev/RideShareTahoe-sub001/internal/pkg/models"
	"github.com/rickeev/RideShareTahoe-sub001/services/bookings"
	httpHandler "github.com/rickeev/RideShareTahoe-sub001/services/bookings/handler/http"
)

// Handler combines all handlers for the bookings service
type Handler struct {
	bookingsHTTP *httpHandler.BookingsHandler
	cfg          *models.Config
}

// NewHandler creates a new combined handler
func NewHandler(bookingUC bookings.BookingUC, cfg *models.Config) *Handler {
	return &Handler{
		bookingsHTTP: httpHandler.NewBookingsHandler(bookingUC),
		cfg:          cfg,
	}
}

// RegisterRoutes registers all HTTP routes on the authenticated group
func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.POST("/bookings", h.bookingsHTTP.RequestBooking)
	g.GET("/bookings", h.bookingsHTTP.ListBookings)
	g.PATCH("/bookings/:bookingID", h.bookingsHTTP.ResolveAction)
	g.POST("/invitations", h.bookingsHTTP.InvitePassenger)
}
