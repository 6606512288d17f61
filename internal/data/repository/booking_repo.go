package repository

import (
	"context"
	"fmt"

	"github.com/vimukthi1406/Bus-Seat-Booking-application/internal/data/entity"
	"github.com/vimukthi1406/Bus-Seat-Booking-application/pkg/database"

	"go.uber.org/zap"
)

type BookingRepository interface {
	Create(ctx context.Context, booking *entity.Booking) (int64, error)
	SeatNumbers(ctx context.Context, routeID int64) ([]int, error)
	ListWithRoutes(ctx context.Context) ([]entity.BookingView, error)
	Update(ctx context.Context, id int64, seatNumber *int, passengerName, passengerPhone *string) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

type bookingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingRepository(db database.PgxIface, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

// Create inserts the booking in a single atomic statement. Seat
// availability is never pre-checked: the UNIQUE (route_id, seat_number)
// constraint decides, so two concurrent requests for the same seat get
// exactly one success under any interleaving.
func (r *bookingRepository) Create(ctx context.Context, booking *entity.Booking) (int64, error) {
	query := `
		INSERT INTO bookings (route_id, seat_number, passenger_name, passenger_phone)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	var id int64
	err := r.db.QueryRow(ctx, query,
		booking.RouteID,
		booking.SeatNumber,
		booking.PassengerName,
		booking.PassengerPhone,
	).Scan(&id)

	if err != nil {
		if database.IsUniqueViolation(err) {
			return 0, fmt.Errorf("create booking for route %d seat %d: %w",
				booking.RouteID, booking.SeatNumber, ErrSeatTaken)
		}
		r.log.Error("Failed to create booking",
			zap.Error(err),
			zap.Int64("route_id", booking.RouteID),
			zap.Int("seat_number", booking.SeatNumber),
		)
		return 0, fmt.Errorf("create booking: %w", err)
	}

	return id, nil
}

func (r *bookingRepository) SeatNumbers(ctx context.Context, routeID int64) ([]int, error) {
	query := `SELECT seat_number FROM bookings WHERE route_id = $1`

	rows, err := r.db.Query(ctx, query, routeID)
	if err != nil {
		r.log.Error("Failed to list seat numbers",
			zap.Error(err),
			zap.Int64("route_id", routeID),
		)
		return nil, fmt.Errorf("list seat numbers for route %d: %w", routeID, err)
	}
	defer rows.Close()

	seats := make([]int, 0)
	for rows.Next() {
		var seat int
		if err := rows.Scan(&seat); err != nil {
			r.log.Error("Failed to scan seat number", zap.Error(err))
			return nil, fmt.Errorf("scan seat number: %w", err)
		}
		seats = append(seats, seat)
	}

	return seats, rows.Err()
}

func (r *bookingRepository) ListWithRoutes(ctx context.Context) ([]entity.BookingView, error) {
	query := `
		SELECT bookings.id, bookings.route_id, bookings.seat_number,
		       bookings.passenger_name, bookings.passenger_phone, bookings.booking_date,
		       routes.origin, routes.destination, routes.date, routes.departure_time
		FROM bookings
		JOIN routes ON bookings.route_id = routes.id
		ORDER BY bookings.booking_date DESC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to list bookings with routes", zap.Error(err))
		return nil, fmt.Errorf("list bookings with routes: %w", err)
	}
	defer rows.Close()

	views := make([]entity.BookingView, 0)
	for rows.Next() {
		var view entity.BookingView
		err := rows.Scan(
			&view.ID,
			&view.RouteID,
			&view.SeatNumber,
			&view.PassengerName,
			&view.PassengerPhone,
			&view.BookingDate,
			&view.Origin,
			&view.Destination,
			&view.Date,
			&view.DepartureTime,
		)
		if err != nil {
			r.log.Error("Failed to scan booking view row", zap.Error(err))
			return nil, fmt.Errorf("scan booking view row: %w", err)
		}
		views = append(views, view)
	}

	return views, rows.Err()
}

// Update patches the booking in one statement. Nil arguments pass SQL
// NULL into COALESCE so the stored value survives; a seat change
// re-triggers the unique constraint against the booking's own route.
func (r *bookingRepository) Update(ctx context.Context, id int64, seatNumber *int, passengerName, passengerPhone *string) (int64, error) {
	query := `
		UPDATE bookings
		SET seat_number = COALESCE($2, seat_number),
		    passenger_name = COALESCE($3, passenger_name),
		    passenger_phone = COALESCE($4, passenger_phone)
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query, id, seatNumber, passengerName, passengerPhone)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return 0, fmt.Errorf("update booking %d: %w", id, ErrSeatTaken)
		}
		r.log.Error("Failed to update booking",
			zap.Error(err),
			zap.Int64("booking_id", id),
		)
		return 0, fmt.Errorf("update booking %d: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return 0, fmt.Errorf("update booking %d: %w", id, ErrNotFound)
	}

	return result.RowsAffected(), nil
}

func (r *bookingRepository) Delete(ctx context.Context, id int64) (int64, error) {
	query := `DELETE FROM bookings WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete booking",
			zap.Error(err),
			zap.Int64("booking_id", id),
		)
		return 0, fmt.Errorf("delete booking %d: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return 0, fmt.Errorf("delete booking %d: %w", id, ErrNotFound)
	}

	r.log.Info("Booking deleted", zap.Int64("booking_id", id))
	return result.RowsAffected(), nil
}
