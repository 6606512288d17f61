package adaptor

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/vimukthi1406/Bus-Seat-Booking-application/internal/data/repository"
	"github.com/vimukthi1406/Bus-Seat-Booking-application/internal/dto/request"
	"github.com/vimukthi1406/Bus-Seat-Booking-application/internal/dto/response"
	"github.com/vimukthi1406/Bus-Seat-Booking-application/internal/usecase"
	"github.com/vimukthi1406/Bus-Seat-Booking-application/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type BookingHandler struct {
	service usecase.BookingService
	log     *zap.Logger
}

func NewBookingHandler(service usecase.BookingService, log *zap.Logger) *BookingHandler {
	return &BookingHandler{
		service: service,
		log:     log.With(zap.String("handler", "booking")),
	}
}

// BookedSeats handles GET /api/bookings/{route_id}
func (h *BookingHandler) BookedSeats(w http.ResponseWriter, r *http.Request) {
	routeID, err := strconv.ParseInt(chi.URLParam(r, "route_id"), 10, 64)
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid route ID")
		return
	}

	seats, err := h.service.BookedSeats(r.Context(), routeID)
	if err != nil {
		h.log.Error("Failed to get booked seats", zap.Error(err), zap.Int64("route_id", routeID))
		utils.ResponseBadRequest(w, err.Error())
		return
	}

	utils.ResponseJSON(w, http.StatusOK, response.Success(seats))
}

// ListAll handles GET /api/bookings
func (h *BookingHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	bookings, err := h.service.ListAll(r.Context())
	if err != nil {
		h.log.Error("Failed to list bookings", zap.Error(err))
		utils.ResponseBadRequest(w, err.Error())
		return
	}

	utils.ResponseJSON(w, http.StatusOK, response.Success(bookings))
}

// Create handles POST /api/bookings
func (h *BookingHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body")
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, utils.FormatValidationErrors(validationErrors))
		return
	}

	bookingID, err := h.service.Create(r.Context(), &req)
	if err != nil {
		if errors.Is(err, repository.ErrSeatTaken) {
			utils.ResponseConflict(w, "Seat already booked")
			return
		}
		h.log.Error("Failed to create booking", zap.Error(err))
		utils.ResponseBadRequest(w, err.Error())
		return
	}

	utils.ResponseJSON(w, http.StatusOK, response.BookingCreatedResponse{
		Message:   "success",
		BookingID: bookingID,
	})
}

// Update handles PUT /api/bookings/{id}. Absent fields leave the
// stored values unchanged.
func (h *BookingHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid booking ID")
		return
	}

	var req request.UpdateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body")
		return
	}

	changes, err := h.service.Update(r.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrSeatTaken):
			utils.ResponseConflict(w, "Seat already booked for this route.")
		case errors.Is(err, repository.ErrNotFound):
			utils.ResponseNotFound(w, "Booking not found")
		default:
			h.log.Error("Failed to update booking", zap.Error(err), zap.Int64("booking_id", id))
			utils.ResponseBadRequest(w, err.Error())
		}
		return
	}

	utils.ResponseJSON(w, http.StatusOK, response.ChangesResponse{
		Message: "success",
		Changes: changes,
	})
}

// Delete handles DELETE /api/bookings/{id}
func (h *BookingHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid booking ID")
		return
	}

	changes, err := h.service.Delete(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.ResponseNotFound(w, "Booking not found")
			return
		}
		h.log.Error("Failed to delete booking", zap.Error(err), zap.Int64("booking_id", id))
		utils.ResponseBadRequest(w, err.Error())
		return
	}

	utils.ResponseJSON(w, http.StatusOK, response.ChangesResponse{
		Message: "deleted",
		Changes: changes,
	})
}
