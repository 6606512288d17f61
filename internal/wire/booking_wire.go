package wire

import (
	"github.com/vimukthi1406/Bus-Seat-Booking-application/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireBooking(r chi.Router, bookingHandler *adaptor.BookingHandler) {
	// GET /api/bookings - every booking joined with its route (admin console)
	r.Get("/api/bookings", bookingHandler.ListAll)

	// GET /api/bookings/{route_id} - seat numbers already reserved on a route
	r.Get("/api/bookings/{route_id}", bookingHandler.BookedSeats)

	// POST /api/bookings - reserve a seat
	r.Post("/api/bookings", bookingHandler.Create)

	// PUT /api/bookings/{id} - partial update (admin console)
	r.Put("/api/bookings/{id}", bookingHandler.Update)

	// DELETE /api/bookings/{id} - remove a booking (admin console)
	r.Delete("/api/bookings/{id}", bookingHandler.Delete)
}
