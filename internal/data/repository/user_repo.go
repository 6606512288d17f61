package repository

import (
	"context"
	"fmt"

	"github.com/vimukthi1406/Bus-Seat-Booking-application/internal/data/entity"
	"github.com/vimukthi1406/Bus-Seat-Booking-application/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type UserRepository interface {
	Create(ctx context.Context, username, password string, role entity.UserRole) (int64, error)
	FindByCredentials(ctx context.Context, username, password string) (*entity.User, error)
	HasAdmin(ctx context.Context) (bool, error)
}

type userRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewUserRepository(db database.PgxIface, log *zap.Logger) UserRepository {
	return &userRepository{
		db:  db,
		log: log.With(zap.String("repository", "user")),
	}
}

func (r *userRepository) Create(ctx context.Context, username, password string, role entity.UserRole) (int64, error) {
	query := `
		INSERT INTO users (username, password, role)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	var id int64
	err := r.db.QueryRow(ctx, query, username, password, role).Scan(&id)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return 0, fmt.Errorf("create user %s: %w", username, ErrUsernameTaken)
		}
		r.log.Error("Failed to create user",
			zap.Error(err),
			zap.String("username", username),
		)
		return 0, fmt.Errorf("create user %s: %w", username, err)
	}

	return id, nil
}

// FindByCredentials matches username and plaintext password exactly,
// mirroring the contract this service replaces. Returns nil when no
// row matches.
func (r *userRepository) FindByCredentials(ctx context.Context, username, password string) (*entity.User, error) {
	query := `
		SELECT id, username, password, role
		FROM users
		WHERE username = $1 AND password = $2
	`

	var user entity.User
	err := r.db.QueryRow(ctx, query, username, password).Scan(
		&user.ID,
		&user.Username,
		&user.Password,
		&user.Role,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find user by credentials",
			zap.Error(err),
			zap.String("username", username),
		)
		return nil, fmt.Errorf("find user by credentials: %w", err)
	}

	return &user, nil
}

func (r *userRepository) HasAdmin(ctx context.Context) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM users WHERE role = $1)`

	var exists bool
	err := r.db.QueryRow(ctx, query, entity.RoleAdmin).Scan(&exists)
	if err != nil {
		r.log.Error("Failed to check for admin user", zap.Error(err))
		return false, fmt.Errorf("check admin user: %w", err)
	}

	return exists, nil
}
