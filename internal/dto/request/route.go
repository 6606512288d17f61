package request

type CreateRouteRequest struct {
	Origin        string   `json:"origin" validate:"required"`
	Destination   string   `json:"destination" validate:"required"`
	Date          string   `json:"date" validate:"required"`
	DepartureTime string   `json:"departure_time" validate:"required"`
	ArrivalTime   string   `json:"arrival_time" validate:"required"`
	Price         *float64 `json:"price" validate:"required"`
}

type UpdateRouteStatusRequest struct {
	Status string `json:"status" validate:"required"`
}
