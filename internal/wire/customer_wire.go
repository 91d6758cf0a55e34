package wire

import (
	"ops-portal/internal/adaptor"
	"ops-portal/internal/data/repository"
	"ops-portal/pkg/middleware"
	"ops-portal/pkg/token"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireCustomer(
	r chi.Router,
	customerHandler *adaptor.CustomerHandler,
	cardHandler *adaptor.CardHandler,
	repo *repository.Repository,
	tokens *token.JWTManager,
	log *zap.Logger,
) {
	// Owner-or-admin scoping happens inside the service queries, so the
	// routes only require authentication.
	r.Route("/api/customers", func(r chi.Router) {
		r.Use(middleware.Auth(tokens, repo.User, log))

		r.Post("/", customerHandler.Create)
		r.Get("/", customerHandler.List)
		r.Get("/{id}", customerHandler.Get)
		r.Put("/{id}", customerHandler.Update)
		r.Delete("/{id}", customerHandler.Delete)

		// A customer's single card lives under the customer path
		r.Get("/{id}/card", cardHandler.GetByCustomer)
		r.Post("/{id}/card", cardHandler.Create)
	})
}
