package usecase

import (
	"github.com/vimukthi1406/Bus-Seat-Booking-application/internal/data/repository"
	"github.com/vimukthi1406/Bus-Seat-Booking-application/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth    AuthService
	Route   RouteService
	Booking BookingService
}

func NewService(repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Auth:    NewAuthService(repo, log),
		Route:   NewRouteService(repo, log),
		Booking: NewBookingService(repo, log),
	}
}
