package wire

import (
	"ops-portal/internal/adaptor"
	"ops-portal/internal/data/repository"
	"ops-portal/pkg/middleware"
	"ops-portal/pkg/token"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireClaim(
	r chi.Router,
	claimHandler *adaptor.ClaimHandler,
	repo *repository.Repository,
	tokens *token.JWTManager,
	log *zap.Logger,
) {
	r.Route("/api/claims", func(r chi.Router) {
		r.Use(middleware.Auth(tokens, repo.User, log))

		r.Get("/{id}", claimHandler.Get)
		r.Put("/{id}", claimHandler.Update)
		r.Delete("/{id}", claimHandler.Delete)
	})
}
