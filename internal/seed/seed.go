package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/vimukthi1406/Bus-Seat-Booking-application/internal/data/entity"
	"github.com/vimukthi1406/Bus-Seat-Booking-application/internal/data/repository"
	"github.com/vimukthi1406/Bus-Seat-Booking-application/pkg/utils"

	"go.uber.org/zap"
)

const dateLayout = "2006-01-02"

// routePattern is one demo journey seeded for each of the next days.
type routePattern struct {
	origin      string
	destination string
	departure   string
	arrival     string
	price       float64
}

var routePatterns = []routePattern{
	{"Colombo", "Kandy", "08:00", "11:00", 1500},
	{"Kandy", "Colombo", "14:00", "17:00", 1500},
	{"Galle", "Matara", "09:00", "10:30", 500},
	{"Colombo", "Jaffna", "22:00", "06:00", 3500},
	{"Jaffna", "Colombo", "08:00", "16:00", 3500},
}

const seedDays = 7

// Seeder provisions demo data at startup. Both steps are guarded by
// existence checks so repeated restarts never duplicate rows.
type Seeder struct {
	repo *repository.Repository
	cfg  utils.SeedConfig
	log  *zap.Logger

	// now is swappable for tests.
	now func() time.Time
}

func NewSeeder(repo *repository.Repository, cfg utils.SeedConfig, log *zap.Logger) *Seeder {
	return &Seeder{
		repo: repo,
		cfg:  cfg,
		log:  log.With(zap.String("component", "seed")),
		now:  time.Now,
	}
}

func (s *Seeder) Run(ctx context.Context) error {
	if !s.cfg.Enabled {
		s.log.Info("Seeding disabled")
		return nil
	}

	if err := s.seedAdmin(ctx); err != nil {
		return err
	}

	return s.seedRoutes(ctx)
}

func (s *Seeder) seedAdmin(ctx context.Context) error {
	hasAdmin, err := s.repo.User.HasAdmin(ctx)
	if err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}
	if hasAdmin {
		return nil
	}

	s.log.Info("Seeding admin user", zap.String("username", s.cfg.AdminUsername))

	_, err = s.repo.User.Create(ctx, s.cfg.AdminUsername, s.cfg.AdminPassword, entity.RoleAdmin)
	if err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}

	return nil
}

// seedRoutes inserts the demo patterns for each of the next seedDays
// days, but only when no routes exist dated today.
func (s *Seeder) seedRoutes(ctx context.Context) error {
	today := s.now().Format(dateLayout)

	count, err := s.repo.Route.CountByDate(ctx, today)
	if err != nil {
		return fmt.Errorf("seed routes: %w", err)
	}
	if count > 0 {
		return nil
	}

	s.log.Info("Seeding routes", zap.Int("days", seedDays), zap.Int("patterns", len(routePatterns)))

	for i := 0; i < seedDays; i++ {
		date := s.now().AddDate(0, 0, i).Format(dateLayout)

		for _, p := range routePatterns {
			route := &entity.Route{
				Origin:        p.origin,
				Destination:   p.destination,
				Date:          date,
				DepartureTime: p.departure,
				ArrivalTime:   p.arrival,
				Price:         p.price,
				Status:        entity.RouteStatusScheduled,
			}

			if _, err := s.repo.Route.Create(ctx, route); err != nil {
				return fmt.Errorf("seed routes: %w", err)
			}
		}
	}

	return nil
}
