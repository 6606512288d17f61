package usecase

import (
	"context"
	"fmt"

	"github.com/vimukthi1406/Bus-Seat-Booking-application/internal/data/entity"
	"github.com/vimukthi1406/Bus-Seat-Booking-application/internal/data/repository"
	"github.com/vimukthi1406/Bus-Seat-Booking-application/internal/dto/request"
	"github.com/vimukthi1406/Bus-Seat-Booking-application/internal/dto/response"

	"go.uber.org/zap"
)

type RouteService interface {
	List(ctx context.Context) ([]response.RouteResponse, error)

	// Get returns nil for an unknown id; the endpoint answers 200 with
	// a null data payload in that case.
	Get(ctx context.Context, id int64) (*response.RouteResponse, error)

	Create(ctx context.Context, req *request.CreateRouteRequest) (int64, error)

	// SetStatus overwrites the status unconditionally and returns the
	// affected row count. No transition rules: any status may follow
	// any other.
	SetStatus(ctx context.Context, id int64, status string) (int64, error)
}

type routeService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewRouteService(repo *repository.Repository, log *zap.Logger) RouteService {
	return &routeService{
		repo: repo,
		log:  log.With(zap.String("service", "route")),
	}
}

func (s *routeService) List(ctx context.Context) ([]response.RouteResponse, error) {
	routes, err := s.repo.Route.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list routes: %w", err)
	}

	return response.RoutesToResponse(routes), nil
}

func (s *routeService) Get(ctx context.Context, id int64) (*response.RouteResponse, error) {
	route, err := s.repo.Route.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get route %d: %w", id, err)
	}

	if route == nil {
		return nil, nil
	}

	resp := response.RouteToResponse(route)
	return &resp, nil
}

func (s *routeService) Create(ctx context.Context, req *request.CreateRouteRequest) (int64, error) {
	route := &entity.Route{
		Origin:        req.Origin,
		Destination:   req.Destination,
		Date:          req.Date,
		DepartureTime: req.DepartureTime,
		ArrivalTime:   req.ArrivalTime,
		Price:         *req.Price,
		Status:        entity.RouteStatusScheduled,
	}

	id, err := s.repo.Route.Create(ctx, route)
	if err != nil {
		return 0, fmt.Errorf("create route: %w", err)
	}

	s.log.Info("Route created",
		zap.Int64("route_id", id),
		zap.String("origin", route.Origin),
		zap.String("destination", route.Destination),
		zap.String("date", route.Date),
	)

	return id, nil
}

func (s *routeService) SetStatus(ctx context.Context, id int64, status string) (int64, error) {
	changes, err := s.repo.Route.UpdateStatus(ctx, id, entity.RouteStatus(status))
	if err != nil {
		return 0, fmt.Errorf("set route status: %w", err)
	}

	s.log.Info("Route status updated",
		zap.Int64("route_id", id),
		zap.String("status", status),
		zap.Int64("changes", changes),
	)

	return changes, nil
}
