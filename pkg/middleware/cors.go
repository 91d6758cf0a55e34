package middleware

import (
	"net/http"

	"github.com/rs/cors"
)

// CORS allows the SPA dev servers and any deployed origin; the API is
// token-authenticated, not cookie-authenticated, so the open origin list
// carries no CSRF exposure.
func CORS() func(http.Handler) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	})
	return c.Handler
}
