package utils

import (
	"context"

	"github.com/google/uuid"
)

type contextKey string

const userKey contextKey = "auth_user"

// AuthUser is the request-scoped identity attached by the auth middleware.
// It carries the public user fields only, never the password hash.
type AuthUser struct {
	ID         uuid.UUID `json:"id"`
	EmployeeID string    `json:"employee_id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Contact    string    `json:"contact"`
	Role       string    `json:"role"`
}

// IsAdmin reports whether the user carries the admin role
func (u *AuthUser) IsAdmin() bool {
	return u.Role == "admin"
}

// SetUserContext attaches the authenticated user to the context
func SetUserContext(ctx context.Context, user *AuthUser) context.Context {
	return context.WithValue(ctx, userKey, user)
}

// GetUserFromContext returns the authenticated user set by the auth middleware
func GetUserFromContext(ctx context.Context) (*AuthUser, bool) {
	user, ok := ctx.Value(userKey).(*AuthUser)
	if !ok || user == nil {
		return nil, false
	}
	return user, true
}
