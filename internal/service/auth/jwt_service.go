package auth

import (
	"context"
	"time"
)

// RoleAdmin is the role value granting access to admin endpoints.
const RoleAdmin = "admin"

// JWTService defines operations for managing JWT authentication tokens.
type JWTService interface {
	// GenerateToken creates a signed JWT for the given user.
	// Returns the token string or an error if token generation fails.
	GenerateToken(ctx context.Context, username string, userID int64, role string) (string, error)

	// ValidateToken validates the provided token string and extracts the claims.
	// Returns ErrExpiredToken, ErrTokenNotYetValid, ErrMissingClaims or
	// ErrInvalidToken when the token cannot be trusted.
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)
}

// Claims is the caller identity extracted from a validated token.
type Claims struct {
	Username  string    `json:"username"`
	UserID    int64     `json:"id"`
	UserRole  string    `json:"user_role"`
	IssuedAt  time.Time `json:"iat,omitempty"`
	ExpiresAt time.Time `json:"exp,omitempty"`
	ID        string    `json:"jti,omitempty"`
}

// IsAdmin reports whether the claims carry the admin role. A nil receiver is
// not an admin.
func (c *Claims) IsAdmin() bool {
	return c != nil && c.UserRole == RoleAdmin
}
