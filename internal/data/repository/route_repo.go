package repository

import (
	"context"
	"fmt"

	"github.com/vimukthi1406/Bus-Seat-Booking-application/internal/data/entity"
	"github.com/vimukthi1406/Bus-Seat-Booking-application/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type RouteRepository interface {
	Create(ctx context.Context, route *entity.Route) (int64, error)
	FindByID(ctx context.Context, id int64) (*entity.Route, error)
	List(ctx context.Context) ([]entity.Route, error)
	UpdateStatus(ctx context.Context, id int64, status entity.RouteStatus) (int64, error)
	CountByDate(ctx context.Context, date string) (int64, error)
}

type routeRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewRouteRepository(db database.PgxIface, log *zap.Logger) RouteRepository {
	return &routeRepository{
		db:  db,
		log: log.With(zap.String("repository", "route")),
	}
}

func (r *routeRepository) Create(ctx context.Context, route *entity.Route) (int64, error) {
	query := `
		INSERT INTO routes (origin, destination, date, departure_time, arrival_time, price, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`

	status := route.Status
	if status == "" {
		status = entity.RouteStatusScheduled
	}

	var id int64
	err := r.db.QueryRow(ctx, query,
		route.Origin,
		route.Destination,
		route.Date,
		route.DepartureTime,
		route.ArrivalTime,
		route.Price,
		status,
	).Scan(&id)

	if err != nil {
		r.log.Error("Failed to create route",
			zap.Error(err),
			zap.String("origin", route.Origin),
			zap.String("destination", route.Destination),
			zap.String("date", route.Date),
		)
		return 0, fmt.Errorf("create route: %w", err)
	}

	return id, nil
}

func (r *routeRepository) FindByID(ctx context.Context, id int64) (*entity.Route, error) {
	query := `
		SELECT id, origin, destination, date, departure_time, arrival_time, price, status
		FROM routes
		WHERE id = $1
	`

	var route entity.Route
	err := r.db.QueryRow(ctx, query, id).Scan(
		&route.ID,
		&route.Origin,
		&route.Destination,
		&route.Date,
		&route.DepartureTime,
		&route.ArrivalTime,
		&route.Price,
		&route.Status,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find route by ID",
			zap.Error(err),
			zap.Int64("route_id", id),
		)
		return nil, fmt.Errorf("find route by ID %d: %w", id, err)
	}

	return &route, nil
}

func (r *routeRepository) List(ctx context.Context) ([]entity.Route, error) {
	query := `
		SELECT id, origin, destination, date, departure_time, arrival_time, price, status
		FROM routes
		ORDER BY date, departure_time
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to list routes", zap.Error(err))
		return nil, fmt.Errorf("list routes: %w", err)
	}
	defer rows.Close()

	routes := make([]entity.Route, 0)
	for rows.Next() {
		var route entity.Route
		err := rows.Scan(
			&route.ID,
			&route.Origin,
			&route.Destination,
			&route.Date,
			&route.DepartureTime,
			&route.ArrivalTime,
			&route.Price,
			&route.Status,
		)
		if err != nil {
			r.log.Error("Failed to scan route row", zap.Error(err))
			return nil, fmt.Errorf("scan route row: %w", err)
		}
		routes = append(routes, route)
	}

	return routes, rows.Err()
}

// UpdateStatus overwrites the status unconditionally and returns the
// number of affected rows; zero means the route does not exist.
func (r *routeRepository) UpdateStatus(ctx context.Context, id int64, status entity.RouteStatus) (int64, error) {
	query := `UPDATE routes SET status = $2 WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id, status)
	if err != nil {
		r.log.Error("Failed to update route status",
			zap.Error(err),
			zap.Int64("route_id", id),
			zap.String("status", string(status)),
		)
		return 0, fmt.Errorf("update route %d status to %s: %w", id, string(status), err)
	}

	return result.RowsAffected(), nil
}

func (r *routeRepository) CountByDate(ctx context.Context, date string) (int64, error) {
	query := `SELECT COUNT(*) FROM routes WHERE date = $1`

	var count int64
	err := r.db.QueryRow(ctx, query, date).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count routes by date",
			zap.Error(err),
			zap.String("date", date),
		)
		return 0, fmt.Errorf("count routes by date %s: %w", date, err)
	}

	return count, nil
}
