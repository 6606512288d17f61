package wire

import (
	"github.com/vimukthi1406/Bus-Seat-Booking-application/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireAuth(r chi.Router, authHandler *adaptor.AuthHandler) {
	// POST /api/register - create a new account
	r.Post("/api/register", authHandler.Register)

	// POST /api/login - exchange credentials for an identity record
	r.Post("/api/login", authHandler.Login)
}
