package wire

import (
	"github.com/vimukthi1406/Bus-Seat-Booking-application/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireRoute(r chi.Router, routeHandler *adaptor.RouteHandler) {
	// GET /api/routes - all routes, date then departure order
	r.Get("/api/routes", routeHandler.List)

	// GET /api/routes/{id} - single route
	r.Get("/api/routes/{id}", routeHandler.Get)

	// POST /api/routes - create route (admin console)
	r.Post("/api/routes", routeHandler.Create)

	// PUT /api/routes/{id}/status - schedule/cancel toggle (admin console)
	r.Put("/api/routes/{id}/status", routeHandler.SetStatus)
}
