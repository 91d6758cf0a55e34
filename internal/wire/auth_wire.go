package wire

import (
	"ops-portal/internal/adaptor"
	"ops-portal/internal/data/repository"
	"ops-portal/pkg/middleware"
	"ops-portal/pkg/token"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAuth(
	r chi.Router,
	authHandler *adaptor.AuthHandler,
	repo *repository.Repository,
	tokens *token.JWTManager,
	log *zap.Logger,
) {
	// Public routes
	r.Post("/api/register", authHandler.Register)
	r.Post("/api/login", authHandler.Login)
	r.Post("/api/forgot-password", authHandler.ForgotPassword)
	r.Post("/api/verify-otp", authHandler.VerifyOTP)
	r.Post("/api/reset-password", authHandler.ResetPassword)

	// Any authenticated user
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(tokens, repo.User, log))

		r.Get("/api/profile", authHandler.Profile)
	})
}
