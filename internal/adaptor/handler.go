package adaptor

import (
	"github.com/vimukthi1406/Bus-Seat-Booking-application/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Auth    *AuthHandler
	Route   *RouteHandler
	Booking *BookingHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:    NewAuthHandler(service.Auth, log),
		Route:   NewRouteHandler(service.Route, log),
		Booking: NewBookingHandler(service.Booking, log),
	}
}
