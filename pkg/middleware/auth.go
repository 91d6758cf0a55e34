package middleware

import (
	"net/http"
	"strings"

	"ops-portal/internal/data/repository"
	"ops-portal/pkg/token"
	"ops-portal/pkg/utils"

	"go.uber.org/zap"
)

// Auth verifies the Bearer token and loads the user row it names. The
// lookup runs on every request so deleted accounts lose access as soon as
// their row is gone, token expiry notwithstanding.
func Auth(tokens *token.JWTManager, users repository.UserRepository, log *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if !strings.HasPrefix(authHeader, "Bearer ") {
				utils.ResponseUnauthorized(w, "Not authorized, no token")
				return
			}

			tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
			userID, err := tokens.Verify(tokenStr)
			if err != nil {
				log.Warn("Token verification failed", zap.Error(err))
				utils.ResponseUnauthorized(w, "Not authorized, token failed")
				return
			}

			user, err := users.FindByID(r.Context(), userID)
			if err != nil {
				log.Error("Failed to load user for token", zap.Error(err), zap.String("user_id", userID.String()))
				utils.ResponseInternalError(w, "Server error")
				return
			}
			if user == nil {
				utils.ResponseUnauthorized(w, "Not authorized, user not found")
				return
			}

			ctx := utils.SetUserContext(r.Context(), &utils.AuthUser{
				ID:         user.ID,
				EmployeeID: user.EmployeeID,
				Name:       user.Name,
				Email:      user.Email,
				Contact:    user.Contact,
				Role:       string(user.Role),
			})

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
