package seed

import (
	"context"
	"testing"
	"time"

	"github.com/vimukthi1406/Bus-Seat-Booking-application/internal/data/entity"
	"github.com/vimukthi1406/Bus-Seat-Booking-application/internal/data/repository"
	"github.com/vimukthi1406/Bus-Seat-Booking-application/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// seedStore mimics the persistence the seeder talks to: users with
// roles and routes keyed by date.
type seedStore struct {
	users  []entity.User
	routes []entity.Route
	nextID int64
}

type seedUserRepo struct{ store *seedStore }

func (r *seedUserRepo) Create(ctx context.Context, username, password string, role entity.UserRole) (int64, error) {
	r.store.nextID++
	r.store.users = append(r.store.users, entity.User{
		ID:       r.store.nextID,
		Username: username,
		Password: password,
		Role:     role,
	})
	return r.store.nextID, nil
}

func (r *seedUserRepo) FindByCredentials(ctx context.Context, username, password string) (*entity.User, error) {
	return nil, nil
}

func (r *seedUserRepo) HasAdmin(ctx context.Context) (bool, error) {
	for _, u := range r.store.users {
		if u.Role == entity.RoleAdmin {
			return true, nil
		}
	}
	return false, nil
}

type seedRouteRepo struct{ store *seedStore }

func (r *seedRouteRepo) Create(ctx context.Context, route *entity.Route) (int64, error) {
	r.store.nextID++
	route.ID = r.store.nextID
	r.store.routes = append(r.store.routes, *route)
	return route.ID, nil
}

func (r *seedRouteRepo) FindByID(ctx context.Context, id int64) (*entity.Route, error) {
	return nil, nil
}

func (r *seedRouteRepo) List(ctx context.Context) ([]entity.Route, error) {
	return r.store.routes, nil
}

func (r *seedRouteRepo) UpdateStatus(ctx context.Context, id int64, status entity.RouteStatus) (int64, error) {
	return 0, nil
}

func (r *seedRouteRepo) CountByDate(ctx context.Context, date string) (int64, error) {
	var count int64
	for _, route := range r.store.routes {
		if route.Date == date {
			count++
		}
	}
	return count, nil
}

func newTestSeeder(store *seedStore, enabled bool) *Seeder {
	repo := &repository.Repository{
		User:  &seedUserRepo{store: store},
		Route: &seedRouteRepo{store: store},
	}
	s := NewSeeder(repo, utils.SeedConfig{
		Enabled:       enabled,
		AdminUsername: "admin",
		AdminPassword: "admin123",
	}, zap.NewNop())
	s.now = func() time.Time {
		return time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	}
	return s
}

func TestSeed_CreatesAdminAndRoutes(t *testing.T) {
	store := &seedStore{}
	seeder := newTestSeeder(store, true)

	require.NoError(t, seeder.Run(context.Background()))

	require.Len(t, store.users, 1)
	assert.Equal(t, "admin", store.users[0].Username)
	assert.Equal(t, entity.RoleAdmin, store.users[0].Role)

	// 5 patterns for each of the next 7 days.
	assert.Len(t, store.routes, 35)
	assert.Equal(t, "2026-05-01", store.routes[0].Date)
	assert.Equal(t, "2026-05-07", store.routes[len(store.routes)-1].Date)
	for _, route := range store.routes {
		assert.Equal(t, entity.RouteStatusScheduled, route.Status)
	}
}

// Restarting the service must never duplicate the admin user or the
// demo routes.
func TestSeed_Idempotent(t *testing.T) {
	store := &seedStore{}
	seeder := newTestSeeder(store, true)

	require.NoError(t, seeder.Run(context.Background()))
	require.NoError(t, seeder.Run(context.Background()))
	require.NoError(t, seeder.Run(context.Background()))

	assert.Len(t, store.users, 1)
	assert.Len(t, store.routes, 35)
}

func TestSeed_Disabled(t *testing.T) {
	store := &seedStore{}
	seeder := newTestSeeder(store, false)

	require.NoError(t, seeder.Run(context.Background()))

	assert.Empty(t, store.users)
	assert.Empty(t, store.routes)
}

// An admin that already exists under a different username still
// suppresses seeding; the check is on the role, not the name.
func TestSeed_ExistingAdminByRole(t *testing.T) {
	store := &seedStore{
		users: []entity.User{
			{ID: 1, Username: "ops", Role: entity.RoleAdmin},
		},
	}
	seeder := newTestSeeder(store, true)

	require.NoError(t, seeder.Run(context.Background()))

	assert.Len(t, store.users, 1)
}
