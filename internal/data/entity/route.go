package entity

type RouteStatus string

const (
	RouteStatusScheduled RouteStatus = "scheduled"
	RouteStatusCancelled RouteStatus = "cancelled"
)

// Route is a scheduled bus journey. Date and times are kept as the
// plain strings the clients exchange ("2026-05-01", "08:00").
type Route struct {
	ID            int64       `db:"id"`
	Origin        string      `db:"origin"`
	Destination   string      `db:"destination"`
	Date          string      `db:"date"`
	DepartureTime string      `db:"departure_time"`
	ArrivalTime   string      `db:"arrival_time"`
	Price         float64     `db:"price"`
	Status        RouteStatus `db:"status"`
}
