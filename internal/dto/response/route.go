package response

import (
	"github.com/vimukthi1406/Bus-Seat-Booking-application/internal/data/entity"
)

type RouteResponse struct {
	ID            int64              `json:"id"`
	Origin        string             `json:"origin"`
	Destination   string             `json:"destination"`
	Date          string             `json:"date"`
	DepartureTime string             `json:"departure_time"`
	ArrivalTime   string             `json:"arrival_time"`
	Price         float64            `json:"price"`
	Status        entity.RouteStatus `json:"status"`
}

func RouteToResponse(route *entity.Route) RouteResponse {
	return RouteResponse{
		ID:            route.ID,
		Origin:        route.Origin,
		Destination:   route.Destination,
		Date:          route.Date,
		DepartureTime: route.DepartureTime,
		ArrivalTime:   route.ArrivalTime,
		Price:         route.Price,
		Status:        route.Status,
	}
}

func RoutesToResponse(routes []entity.Route) []RouteResponse {
	out := make([]RouteResponse, len(routes))
	for i := range routes {
		out[i] = RouteToResponse(&routes[i])
	}
	return out
}
