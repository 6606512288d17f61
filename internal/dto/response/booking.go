package response

import (
	"github.com/vimukthi1406/Bus-Seat-Booking-application/internal/data/entity"
)

const bookingDateLayout = "2006-01-02 15:04:05"

type BookingCreatedResponse struct {
	Message   string `json:"message"`
	BookingID int64  `json:"booking_id"`
}

// BookingViewResponse is the admin list row: the booking joined with
// its route. route_id is part of the contract so the edit flow can
// look up seat availability.
type BookingViewResponse struct {
	ID             int64  `json:"id"`
	RouteID        int64  `json:"route_id"`
	SeatNumber     int    `json:"seat_number"`
	PassengerName  string `json:"passenger_name"`
	PassengerPhone string `json:"passenger_phone"`
	BookingDate    string `json:"booking_date"`
	Origin         string `json:"origin"`
	Destination    string `json:"destination"`
	Date           string `json:"date"`
	DepartureTime  string `json:"departure_time"`
}

func BookingViewToResponse(view *entity.BookingView) BookingViewResponse {
	return BookingViewResponse{
		ID:             view.ID,
		RouteID:        view.RouteID,
		SeatNumber:     view.SeatNumber,
		PassengerName:  view.PassengerName,
		PassengerPhone: view.PassengerPhone,
		BookingDate:    view.BookingDate.Format(bookingDateLayout),
		Origin:         view.Origin,
		Destination:    view.Destination,
		Date:           view.Date,
		DepartureTime:  view.DepartureTime,
	}
}

func BookingViewsToResponse(views []entity.BookingView) []BookingViewResponse {
	out := make([]BookingViewResponse, len(views))
	for i := range views {
		out[i] = BookingViewToResponse(&views[i])
	}
	return out
}
