package wire

import (
	"ops-portal/internal/adaptor"
	"ops-portal/internal/data/entity"
	"ops-portal/internal/data/repository"
	"ops-portal/pkg/middleware"
	"ops-portal/pkg/token"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireCamp(
	r chi.Router,
	campHandler *adaptor.CampHandler,
	repo *repository.Repository,
	tokens *token.JWTManager,
	log *zap.Logger,
) {
	// Admin CRUD
	r.Route("/api/camps", func(r chi.Router) {
		r.Use(middleware.Auth(tokens, repo.User, log))
		r.Use(middleware.AdminOnly())

		r.Post("/", campHandler.Create)
		r.Get("/", campHandler.List)
		r.Get("/{id}", campHandler.Get)
		r.Put("/{id}", campHandler.Update)
		r.Delete("/{id}", campHandler.Delete)
	})

	// Employee view, scoped by assignment
	r.Route("/api/employee/camps", func(r chi.Router) {
		r.Use(middleware.Auth(tokens, repo.User, log))
		r.Use(middleware.RequireRole(entity.RoleEmployee))

		r.Get("/", campHandler.ListAssigned)
		r.Put("/{id}/status", campHandler.UpdateStatus)
	})
}
