package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/vimukthi1406/Bus-Seat-Booking-application/internal/data/entity"
	"github.com/vimukthi1406/Bus-Seat-Booking-application/internal/data/repository"
	"github.com/vimukthi1406/Bus-Seat-Booking-application/internal/dto/request"
	"github.com/vimukthi1406/Bus-Seat-Booking-application/internal/dto/response"

	"go.uber.org/zap"
)

// ErrInvalidCredentials deliberately carries no hint about which field
// was wrong.
var ErrInvalidCredentials = errors.New("invalid username or password")

type AuthService interface {
	Register(ctx context.Context, req *request.RegisterRequest) (int64, error)
	Login(ctx context.Context, req *request.LoginRequest) (*response.UserIdentity, error)
}

type authService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewAuthService(repo *repository.Repository, log *zap.Logger) AuthService {
	return &authService{
		repo: repo,
		log:  log.With(zap.String("service", "auth")),
	}
}

func (s *authService) Register(ctx context.Context, req *request.RegisterRequest) (int64, error) {
	// Passwords are stored as-is: the original contract has no hashing
	// and the gap is preserved as documented, not fixed silently.
	userID, err := s.repo.User.Create(ctx, req.Username, req.Password, entity.RoleUser)
	if err != nil {
		return 0, fmt.Errorf("register: %w", err)
	}

	s.log.Info("User registered",
		zap.Int64("user_id", userID),
		zap.String("username", req.Username),
	)

	return userID, nil
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*response.UserIdentity, error) {
	user, err := s.repo.User.FindByCredentials(ctx, req.Username, req.Password)
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}

	if user == nil {
		s.log.Warn("Login failed", zap.String("username", req.Username))
		return nil, ErrInvalidCredentials
	}

	s.log.Info("User logged in",
		zap.Int64("user_id", user.ID),
		zap.String("username", user.Username),
		zap.String("role", string(user.Role)),
	)

	identity := response.UserToIdentity(user)
	return &identity, nil
}
