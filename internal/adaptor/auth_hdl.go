package adaptor

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/vimukthi1406/Bus-Seat-Booking-application/internal/data/repository"
	"github.com/vimukthi1406/Bus-Seat-Booking-application/internal/dto/request"
	"github.com/vimukthi1406/Bus-Seat-Booking-application/internal/dto/response"
	"github.com/vimukthi1406/Bus-Seat-Booking-application/internal/usecase"
	"github.com/vimukthi1406/Bus-Seat-Booking-application/pkg/utils"

	"go.uber.org/zap"
)

type AuthHandler struct {
	service usecase.AuthService
	log     *zap.Logger
}

func NewAuthHandler(service usecase.AuthService, log *zap.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		log:     log.With(zap.String("handler", "auth")),
	}
}

// Register handles POST /api/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req request.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body")
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Username and password required")
		return
	}

	userID, err := h.service.Register(r.Context(), &req)
	if err != nil {
		if errors.Is(err, repository.ErrUsernameTaken) {
			h.log.Warn("Register failed - username taken", zap.String("username", req.Username))
			utils.ResponseConflict(w, "Username already exists")
			return
		}
		h.log.Error("Failed to register", zap.Error(err))
		utils.ResponseBadRequest(w, err.Error())
		return
	}

	utils.ResponseJSON(w, http.StatusOK, response.RegisterResponse{
		Message: "User registered successfully",
		UserID:  userID,
	})
}

// Login handles POST /api/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req request.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body")
		return
	}

	identity, err := h.service.Login(r.Context(), &req)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			utils.ResponseUnauthorized(w, "Invalid username or password")
			return
		}
		h.log.Error("Failed to login", zap.Error(err))
		utils.ResponseInternalError(w, err.Error())
		return
	}

	utils.ResponseJSON(w, http.StatusOK, response.LoginResponse{
		Message: "Login successful",
		User:    *identity,
	})
}
