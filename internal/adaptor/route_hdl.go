package adaptor

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/vimukthi1406/Bus-Seat-Booking-application/internal/dto/request"
	"github.com/vimukthi1406/Bus-Seat-Booking-application/internal/dto/response"
	"github.com/vimukthi1406/Bus-Seat-Booking-application/internal/usecase"
	"github.com/vimukthi1406/Bus-Seat-Booking-application/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type RouteHandler struct {
	service usecase.RouteService
	log     *zap.Logger
}

func NewRouteHandler(service usecase.RouteService, log *zap.Logger) *RouteHandler {
	return &RouteHandler{
		service: service,
		log:     log.With(zap.String("handler", "route")),
	}
}

// List handles GET /api/routes
func (h *RouteHandler) List(w http.ResponseWriter, r *http.Request) {
	routes, err := h.service.List(r.Context())
	if err != nil {
		h.log.Error("Failed to list routes", zap.Error(err))
		utils.ResponseBadRequest(w, err.Error())
		return
	}

	utils.ResponseJSON(w, http.StatusOK, response.Success(routes))
}

// Get handles GET /api/routes/{id}. An unknown id answers 200 with a
// null data payload, matching the contract this service replaces.
func (h *RouteHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid route ID")
		return
	}

	route, err := h.service.Get(r.Context(), id)
	if err != nil {
		h.log.Error("Failed to get route", zap.Error(err), zap.Int64("route_id", id))
		utils.ResponseBadRequest(w, err.Error())
		return
	}

	if route == nil {
		utils.ResponseJSON(w, http.StatusOK, response.Envelope{Message: "success", Data: nil})
		return
	}

	utils.ResponseJSON(w, http.StatusOK, response.Success(route))
}

// Create handles POST /api/routes
func (h *RouteHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateRouteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body")
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, utils.FormatValidationErrors(validationErrors))
		return
	}

	id, err := h.service.Create(r.Context(), &req)
	if err != nil {
		h.log.Error("Failed to create route", zap.Error(err))
		utils.ResponseBadRequest(w, err.Error())
		return
	}

	utils.ResponseJSON(w, http.StatusOK, response.Success(response.IDData{ID: id}))
}

// SetStatus handles PUT /api/routes/{id}/status. The update is
// unconditional; changes reports 0 when the route does not exist.
func (h *RouteHandler) SetStatus(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid route ID")
		return
	}

	var req request.UpdateRouteStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body")
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, utils.FormatValidationErrors(validationErrors))
		return
	}

	changes, err := h.service.SetStatus(r.Context(), id, req.Status)
	if err != nil {
		h.log.Error("Failed to set route status", zap.Error(err), zap.Int64("route_id", id))
		utils.ResponseBadRequest(w, err.Error())
		return
	}

	utils.ResponseJSON(w, http.StatusOK, response.ChangesResponse{
		Message: "success",
		Changes: changes,
	})
}
