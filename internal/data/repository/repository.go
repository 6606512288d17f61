package repository

import (
	"github.com/vimukthi1406/Bus-Seat-Booking-application/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User    UserRepository
	Route   RouteRepository
	Booking BookingRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:    NewUserRepository(db, log),
		Route:   NewRouteRepository(db, log),
		Booking: NewBookingRepository(db, log),
	}
}
