package response

import (
	"github.com/vimukthi1406/Bus-Seat-Booking-application/internal/data/entity"
)

type RegisterResponse struct {
	Message string `json:"message"`
	UserID  int64  `json:"userId"`
}

type UserIdentity struct {
	ID       int64           `json:"id"`
	Username string          `json:"username"`
	Role     entity.UserRole `json:"role"`
}

type LoginResponse struct {
	Message string       `json:"message"`
	User    UserIdentity `json:"user"`
}

func UserToIdentity(user *entity.User) UserIdentity {
	return UserIdentity{
		ID:       user.ID,
		Username: user.Username,
		Role:     user.Role,
	}
}
