package types

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// UserAuth matches the users table structure.
type UserAuth struct {
	ID        string     `json:"id"`
	Username  string     `json:"username"`
	Email     string     `json:"email"`
	Password  string     `json:"-"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
}

// Claims is the JWT access-token payload.
type Claims struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Scope    string `json:"scope"`
	jwt.RegisteredClaims
}
