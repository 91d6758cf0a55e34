package wire

import (
	"ops-portal/internal/adaptor"
	"ops-portal/internal/data/repository"
	"ops-portal/pkg/middleware"
	"ops-portal/pkg/token"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireEmployee(
	r chi.Router,
	employeeHandler *adaptor.EmployeeHandler,
	repo *repository.Repository,
	tokens *token.JWTManager,
	log *zap.Logger,
) {
	// Admin-created accounts
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(tokens, repo.User, log))
		r.Use(middleware.AdminOnly())

		r.Post("/api/admin/register", employeeHandler.Register)
	})

	// Employee management (admin only)
	r.Route("/api/employees", func(r chi.Router) {
		r.Use(middleware.Auth(tokens, repo.User, log))
		r.Use(middleware.AdminOnly())

		r.Get("/", employeeHandler.List)
		r.Get("/{id}", employeeHandler.Get)
		r.Put("/{id}", employeeHandler.Update)
		r.Delete("/{id}", employeeHandler.Delete)
		r.Get("/{id}/customers", employeeHandler.Customers)
	})
}
