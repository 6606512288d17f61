package entity

import "time"

// Booking reserves one seat on one route for one passenger. Seat
// exclusivity is enforced by the UNIQUE (route_id, seat_number)
// constraint, not by application checks.
type Booking struct {
	ID             int64     `db:"id"`
	RouteID        int64     `db:"route_id"`
	SeatNumber     int       `db:"seat_number"`
	PassengerName  string    `db:"passenger_name"`
	PassengerPhone string    `db:"passenger_phone"`
	BookingDate    time.Time `db:"booking_date"`
}

// BookingView is a booking joined with its route for the admin list.
// RouteID is included so the admin edit flow can compute seat
// availability for the booking's own route.
type BookingView struct {
	Booking
	Origin        string `db:"origin"`
	Destination   string `db:"destination"`
	Date          string `db:"date"`
	DepartureTime string `db:"departure_time"`
}
