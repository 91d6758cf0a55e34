// Package static embeds the built SPA so the binary serves the frontend
// without external files.
package static

import (
	"embed"
	"io/fs"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

//go:embed all:dist
var files embed.FS

// SPAHandler serves the embedded frontend. Real files are served as-is;
// any other non-API path falls back to index.html so client-side routing
// works after a refresh. Unknown API paths stay JSON 404s.
func SPAHandler(log *zap.Logger) http.HandlerFunc {
	dist, err := fs.Sub(files, "dist")
	if err != nil {
		log.Fatal("Embedded frontend missing", zap.Error(err))
	}

	fileServer := http.FileServer(http.FS(dist))

	return func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/api/") || r.URL.Path == "/api" {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"error":"Route not found"}`))
			return
		}

		path := strings.TrimPrefix(r.URL.Path, "/")
		if path != "" {
			if f, err := dist.Open(path); err == nil {
				f.Close()
				fileServer.ServeHTTP(w, r)
				return
			}
		}

		index, err := fs.ReadFile(dist, "index.html")
		if err != nil {
			http.Error(w, "index.html missing", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		w.Write(index)
	}
}
