package wire

import (
	"net/http"

	"ops-portal/internal/adaptor"
	"ops-portal/internal/data/repository"
	"ops-portal/internal/usecase"
	"ops-portal/pkg/middleware"
	"ops-portal/pkg/token"
	"ops-portal/pkg/utils"
	"ops-portal/static"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App holds the wired-up application
type App struct {
	Router *chi.Mux
}

// Wiring assembles services, handlers and routes on top of the injected
// repositories.
func Wiring(repo *repository.Repository, config *utils.Config, logger *zap.Logger) *App {
	service := usecase.NewService(repo, config, logger)
	handler := adaptor.NewHandler(service, logger)
	tokens := token.NewJWTManager(config.JWT.Secret, config.JWT.ExpiryHours)

	router := setupRouter(handler, repo, tokens, logger)

	return &App{
		Router: router,
	}
}

func setupRouter(
	handler *adaptor.Handler,
	repo *repository.Repository,
	tokens *token.JWTManager,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	wireAuth(r, handler.Auth, repo, tokens, logger)
	wireEmployee(r, handler.Employee, repo, tokens, logger)
	wireCustomer(r, handler.Customer, handler.Card, repo, tokens, logger)
	wireCamp(r, handler.Camp, repo, tokens, logger)
	wireCard(r, handler.Card, handler.Claim, repo, tokens, logger)
	wireClaim(r, handler.Claim, repo, tokens, logger)

	r.Get("/api/health", func(w http.ResponseWriter, r *http.Request) {
		utils.ResponseOK(w, map[string]string{"status": "ok"})
	})

	// Everything outside /api falls through to the embedded SPA.
	r.NotFound(static.SPAHandler(logger))

	return r
}
