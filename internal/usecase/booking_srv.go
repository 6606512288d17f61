package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/vimukthi1406/Bus-Seat-Booking-application/internal/data/entity"
	"github.com/vimukthi1406/Bus-Seat-Booking-application/internal/data/repository"
	"github.com/vimukthi1406/Bus-Seat-Booking-application/internal/dto/request"
	"github.com/vimukthi1406/Bus-Seat-Booking-application/internal/dto/response"

	"go.uber.org/zap"
)

type BookingService interface {
	// BookedSeats returns the seat numbers currently reserved on the
	// route, for graying out the seat map and for edit-flow
	// availability checks.
	BookedSeats(ctx context.Context, routeID int64) ([]int, error)

	ListAll(ctx context.Context) ([]response.BookingViewResponse, error)
	Create(ctx context.Context, req *request.CreateBookingRequest) (int64, error)
	Update(ctx context.Context, id int64, req *request.UpdateBookingRequest) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

type bookingService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewBookingService(repo *repository.Repository, log *zap.Logger) BookingService {
	return &bookingService{
		repo: repo,
		log:  log.With(zap.String("service", "booking")),
	}
}

func (s *bookingService) BookedSeats(ctx context.Context, routeID int64) ([]int, error) {
	seats, err := s.repo.Booking.SeatNumbers(ctx, routeID)
	if err != nil {
		return nil, fmt.Errorf("booked seats for route %d: %w", routeID, err)
	}

	return seats, nil
}

func (s *bookingService) ListAll(ctx context.Context) ([]response.BookingViewResponse, error) {
	views, err := s.repo.Booking.ListWithRoutes(ctx)
	if err != nil {
		return nil, fmt.Errorf("list all bookings: %w", err)
	}

	return response.BookingViewsToResponse(views), nil
}

// Create relies on the storage constraint for conflict detection;
// there is no check-then-insert window.
func (s *bookingService) Create(ctx context.Context, req *request.CreateBookingRequest) (int64, error) {
	booking := &entity.Booking{
		RouteID:        *req.RouteID,
		SeatNumber:     *req.SeatNumber,
		PassengerName:  req.PassengerName,
		PassengerPhone: req.PassengerPhone,
	}

	id, err := s.repo.Booking.Create(ctx, booking)
	if err != nil {
		if errors.Is(err, repository.ErrSeatTaken) {
			s.log.Warn("Seat conflict on create",
				zap.Int64("route_id", booking.RouteID),
				zap.Int("seat_number", booking.SeatNumber),
			)
		}
		return 0, err
	}

	s.log.Info("Booking created",
		zap.Int64("booking_id", id),
		zap.Int64("route_id", booking.RouteID),
		zap.Int("seat_number", booking.SeatNumber),
	)

	return id, nil
}

func (s *bookingService) Update(ctx context.Context, id int64, req *request.UpdateBookingRequest) (int64, error) {
	changes, err := s.repo.Booking.Update(ctx, id, req.SeatNumber, req.PassengerName, req.PassengerPhone)
	if err != nil {
		if errors.Is(err, repository.ErrSeatTaken) {
			s.log.Warn("Seat conflict on update", zap.Int64("booking_id", id))
		}
		return 0, err
	}

	s.log.Info("Booking updated",
		zap.Int64("booking_id", id),
		zap.Int64("changes", changes),
	)

	return changes, nil
}

func (s *bookingService) Delete(ctx context.Context, id int64) (int64, error) {
	changes, err := s.repo.Booking.Delete(ctx, id)
	if err != nil {
		return 0, err
	}

	return changes, nil
}
