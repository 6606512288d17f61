package entity

type UserRole string

const (
	RoleUser  UserRole = "user"
	RoleAdmin UserRole = "admin"
)

// User credentials are stored in plaintext, matching the contract this
// service replaces. Documented gap, not to be fixed silently.
type User struct {
	ID       int64    `db:"id"`
	Username string   `db:"username"`
	Password string   `db:"password"`
	Role     UserRole `db:"role"`
}
