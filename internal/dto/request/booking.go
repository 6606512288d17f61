package request

type CreateBookingRequest struct {
	RouteID        *int64 `json:"route_id" validate:"required"`
	SeatNumber     *int   `json:"seat_number" validate:"required"`
	PassengerName  string `json:"passenger_name" validate:"required"`
	PassengerPhone string `json:"passenger_phone" validate:"required"`
}

// UpdateBookingRequest is a partial update: nil fields leave the
// stored values unchanged.
type UpdateBookingRequest struct {
	SeatNumber     *int    `json:"seat_number"`
	PassengerName  *string `json:"passenger_name"`
	PassengerPhone *string `json:"passenger_phone"`
}
