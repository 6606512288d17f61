package adaptor

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/vimukthi1406/Bus-Seat-Booking-application/internal/data/repository"
	"github.com/vimukthi1406/Bus-Seat-Booking-application/internal/dto/request"
	"github.com/vimukthi1406/Bus-Seat-Booking-application/internal/dto/response"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

// --- Mock BookingService ---

type mockBookingService struct {
	bookedSeatsFn func(ctx context.Context, routeID int64) ([]int, error)
	listAllFn     func(ctx context.Context) ([]response.BookingViewResponse, error)
	createFn      func(ctx context.Context, req *request.CreateBookingRequest) (int64, error)
	updateFn      func(ctx context.Context, id int64, req *request.UpdateBookingRequest) (int64, error)
	deleteFn      func(ctx context.Context, id int64) (int64, error)
}

func (m *mockBookingService) BookedSeats(ctx context.Context, routeID int64) ([]int, error) {
	return m.bookedSeatsFn(ctx, routeID)
}
func (m *mockBookingService) ListAll(ctx context.Context) ([]response.BookingViewResponse, error) {
	return m.listAllFn(ctx)
}
func (m *mockBookingService) Create(ctx context.Context, req *request.CreateBookingRequest) (int64, error) {
	return m.createFn(ctx, req)
}
func (m *mockBookingService) Update(ctx context.Context, id int64, req *request.UpdateBookingRequest) (int64, error) {
	return m.updateFn(ctx, id, req)
}
func (m *mockBookingService) Delete(ctx context.Context, id int64) (int64, error) {
	return m.deleteFn(ctx, id)
}

// withURLParam attaches a chi route parameter to the request context.
func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// --- Tests ---

func TestCreateBooking_Success(t *testing.T) {
	svc := &mockBookingService{
		createFn: func(ctx context.Context, req *request.CreateBookingRequest) (int64, error) {
			assert.Equal(t, int64(1), *req.RouteID)
			assert.Equal(t, 5, *req.SeatNumber)
			return 1, nil
		},
	}

	body := `{"route_id":1,"seat_number":5,"passenger_name":"A","passenger_phone":"0711234567"}`
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h := NewBookingHandler(svc, zap.NewNop())
	h.Create(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp response.BookingCreatedResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "success", resp.Message)
	assert.Equal(t, int64(1), resp.BookingID)
}

func TestCreateBooking_SeatConflict(t *testing.T) {
	svc := &mockBookingService{
		createFn: func(ctx context.Context, req *request.CreateBookingRequest) (int64, error) {
			return 0, fmt.Errorf("create booking for route 1 seat 5: %w", repository.ErrSeatTaken)
		},
	}

	body := `{"route_id":1,"seat_number":5,"passenger_name":"A","passenger_phone":"0711234567"}`
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h := NewBookingHandler(svc, zap.NewNop())
	h.Create(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.JSONEq(t, `{"error":"Seat already booked"}`, rec.Body.String())
}

func TestCreateBooking_MissingFields(t *testing.T) {
	called := false
	svc := &mockBookingService{
		createFn: func(ctx context.Context, req *request.CreateBookingRequest) (int64, error) {
			called = true
			return 0, nil
		},
	}

	body := `{"route_id":1,"seat_number":5}`
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h := NewBookingHandler(svc, zap.NewNop())
	h.Create(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, called)
	assert.Contains(t, rec.Body.String(), "error")
}

func TestUpdateBooking_PartialBody(t *testing.T) {
	var got *request.UpdateBookingRequest
	svc := &mockBookingService{
		updateFn: func(ctx context.Context, id int64, req *request.UpdateBookingRequest) (int64, error) {
			got = req
			return 1, nil
		},
	}

	body := `{"passenger_name":"B"}`
	req := httptest.NewRequest(http.MethodPut, "/api/bookings/3", strings.NewReader(body))
	req = withURLParam(req, "id", "3")
	rec := httptest.NewRecorder()

	h := NewBookingHandler(svc, zap.NewNop())
	h.Update(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, got.SeatNumber)
	assert.Nil(t, got.PassengerPhone)
	assert.Equal(t, "B", *got.PassengerName)

	var resp response.ChangesResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(1), resp.Changes)
}

func TestUpdateBooking_SeatConflict(t *testing.T) {
	svc := &mockBookingService{
		updateFn: func(ctx context.Context, id int64, req *request.UpdateBookingRequest) (int64, error) {
			return 0, fmt.Errorf("update booking %d: %w", id, repository.ErrSeatTaken)
		},
	}

	body := `{"seat_number":7}`
	req := httptest.NewRequest(http.MethodPut, "/api/bookings/3", strings.NewReader(body))
	req = withURLParam(req, "id", "3")
	rec := httptest.NewRecorder()

	h := NewBookingHandler(svc, zap.NewNop())
	h.Update(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.JSONEq(t, `{"error":"Seat already booked for this route."}`, rec.Body.String())
}

func TestUpdateBooking_NotFound(t *testing.T) {
	svc := &mockBookingService{
		updateFn: func(ctx context.Context, id int64, req *request.UpdateBookingRequest) (int64, error) {
			return 0, fmt.Errorf("update booking %d: %w", id, repository.ErrNotFound)
		},
	}

	body := `{"passenger_name":"B"}`
	req := httptest.NewRequest(http.MethodPut, "/api/bookings/99", strings.NewReader(body))
	req = withURLParam(req, "id", "99")
	rec := httptest.NewRecorder()

	h := NewBookingHandler(svc, zap.NewNop())
	h.Update(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Booking not found"}`, rec.Body.String())
}

func TestDeleteBooking_Success(t *testing.T) {
	svc := &mockBookingService{
		deleteFn: func(ctx context.Context, id int64) (int64, error) {
			assert.Equal(t, int64(1), id)
			return 1, nil
		},
	}

	req := httptest.NewRequest(http.MethodDelete, "/api/bookings/1", nil)
	req = withURLParam(req, "id", "1")
	rec := httptest.NewRecorder()

	h := NewBookingHandler(svc, zap.NewNop())
	h.Delete(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp response.ChangesResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "deleted", resp.Message)
	assert.Equal(t, int64(1), resp.Changes)
}

func TestDeleteBooking_NotFound(t *testing.T) {
	svc := &mockBookingService{
		deleteFn: func(ctx context.Context, id int64) (int64, error) {
			return 0, fmt.Errorf("delete booking %d: %w", id, repository.ErrNotFound)
		},
	}

	req := httptest.NewRequest(http.MethodDelete, "/api/bookings/42", nil)
	req = withURLParam(req, "id", "42")
	rec := httptest.NewRecorder()

	h := NewBookingHandler(svc, zap.NewNop())
	h.Delete(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Booking not found"}`, rec.Body.String())
}

func TestBookedSeats_EmptyIsArray(t *testing.T) {
	svc := &mockBookingService{
		bookedSeatsFn: func(ctx context.Context, routeID int64) ([]int, error) {
			return []int{}, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/api/bookings/1", nil)
	req = withURLParam(req, "route_id", "1")
	rec := httptest.NewRecorder()

	h := NewBookingHandler(svc, zap.NewNop())
	h.BookedSeats(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"success","data":[]}`, rec.Body.String())
}

func TestBookedSeats_ReturnsSeatNumbers(t *testing.T) {
	svc := &mockBookingService{
		bookedSeatsFn: func(ctx context.Context, routeID int64) ([]int, error) {
			assert.Equal(t, int64(7), routeID)
			return []int{3, 7, 12}, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/api/bookings/7", nil)
	req = withURLParam(req, "route_id", "7")
	rec := httptest.NewRecorder()

	h := NewBookingHandler(svc, zap.NewNop())
	h.BookedSeats(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"success","data":[3,7,12]}`, rec.Body.String())
}

// The admin list must expose route_id: the edit flow uses it to look
// up seat availability for the booking's route. The service this one
// replaces omitted it from the SELECT while the admin UI relied on it.
func TestListAll_IncludesRouteID(t *testing.T) {
	svc := &mockBookingService{
		listAllFn: func(ctx context.Context) ([]response.BookingViewResponse, error) {
			return []response.BookingViewResponse{
				{
					ID:             1,
					RouteID:        4,
					SeatNumber:     5,
					PassengerName:  "A",
					PassengerPhone: "0711234567",
					BookingDate:    "2026-05-01 09:30:00",
					Origin:         "Colombo",
					Destination:    "Kandy",
					Date:           "2026-05-01",
					DepartureTime:  "08:00",
				},
			}, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/api/bookings", nil)
	rec := httptest.NewRecorder()

	h := NewBookingHandler(svc, zap.NewNop())
	h.ListAll(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Message string                   `json:"message"`
		Data    []map[string]interface{} `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.Data, 1)
	assert.Equal(t, float64(4), resp.Data[0]["route_id"])
}
