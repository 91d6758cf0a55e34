package wire

import (
	"ops-portal/internal/adaptor"
	"ops-portal/internal/data/repository"
	"ops-portal/pkg/middleware"
	"ops-portal/pkg/token"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireCard(
	r chi.Router,
	cardHandler *adaptor.CardHandler,
	claimHandler *adaptor.ClaimHandler,
	repo *repository.Repository,
	tokens *token.JWTManager,
	log *zap.Logger,
) {
	r.Route("/api/cards", func(r chi.Router) {
		r.Use(middleware.Auth(tokens, repo.User, log))

		r.Get("/{id}", cardHandler.Get)
		r.Put("/{id}", cardHandler.Update)
		r.Delete("/{id}", cardHandler.Delete)

		// Claims hang off the owning card
		r.Get("/{id}/claims", claimHandler.ListByCard)
		r.Post("/{id}/claims", claimHandler.Create)
	})
}
