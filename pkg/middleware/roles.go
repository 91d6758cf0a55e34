package middleware

import (
	"net/http"

	"ops-portal/internal/data/entity"
	"ops-portal/internal/policy"
	"ops-portal/pkg/utils"
)

// RequireRole gates a route group behind an explicit role allow-list.
// Runs after Auth, so a missing context user means the chain is miswired.
func RequireRole(roles ...entity.UserRole) func(http.Handler) http.Handler {
	allowed := make(map[entity.UserRole]bool, len(roles))
	for _, role := range roles {
		allowed[role] = true
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, ok := utils.GetUserFromContext(r.Context())
			if !ok {
				utils.ResponseUnauthorized(w, "Not authorized, no token")
				return
			}

			if !allowed[entity.UserRole(user.Role)] {
				utils.ResponseForbidden(w, "User role not authorized to access this route")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// AdminOnly is the admin allow-list expressed through the policy predicate
func AdminOnly() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, ok := utils.GetUserFromContext(r.Context())
			if !ok {
				utils.ResponseUnauthorized(w, "Not authorized, no token")
				return
			}

			actor := policy.Actor{ID: user.ID, Role: entity.UserRole(user.Role)}
			if !policy.AdminOnly(actor) {
				utils.ResponseForbidden(w, "User role not authorized to access this route")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
