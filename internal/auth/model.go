package auth

import "time"

const (
	// RoleUser is the default role assigned at registration.
	RoleUser = "user"
	// RoleAdmin grants access to the admin surface.
	RoleAdmin = "admin"
)

// User represents a registered storefront account.
type User struct {
	ID           string
	Email        string
	PasswordHash []byte
	FullName     string
	Phone        string
	Role         string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Public projects the fields of a user that are safe to return to clients.
func (u User) Public() PublicUser {
	return PublicUser{
		ID:       u.ID,
		Email:    u.Email,
		FullName: u.FullName,
		Phone:    u.Phone,
		Role:     u.Role,
	}
}

// PublicUser is the client-visible profile of an account.
type PublicUser struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Phone    string `json:"phone"`
	Role     string `json:"role"`
}

// IsAdmin reports whether the profile carries the admin role.
func (u PublicUser) IsAdmin() bool { return u.Role == RoleAdmin }

// Session represents one issued bearer token. A session is valid while
// ExpiresAt lies in the future; logout moves ExpiresAt to the current time.
type Session struct {
	ID        string
	UserID    string
	Token     string
	ExpiresAt time.Time
	CreatedAt time.Time
}

// Credentials carries a registration or login request.
type Credentials struct {
	Email    string
	Password string
	FullName string
	Phone    string
}
