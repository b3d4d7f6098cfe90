package handlers

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/JuanjoFeller/billwise/internal/auth"
	"github.com/JuanjoFeller/billwise/internal/middleware"
	"github.com/JuanjoFeller/billwise/internal/service"
)

// NewRouter wires all routes. staticPath optionally points at a frontend
// build directory served on non-API paths; empty disables static serving.
func NewRouter(authSvc *service.AuthService, splitSvc *service.SplitService, jwtManager *auth.JWTManager, staticPath string) *http.ServeMux {
	mux := http.NewServeMux()

	authHandler := NewAuthHandler(authSvc)
	splitHandler := NewSplitHandler(splitSvc)
	publicHandler := NewPublicHandler(splitSvc)

	requireAuth := middleware.RequireAuth(jwtManager, middleware.ErrorResponse)
	open := func(h http.HandlerFunc) http.HandlerFunc {
		return middleware.WithMetrics(h)
	}
	protected := func(h http.HandlerFunc) http.HandlerFunc {
		return middleware.WithMetrics(requireAuth(h))
	}

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})
	mux.Handle("GET /metrics", middleware.MetricsHandler())

	mux.HandleFunc("POST /api/auth/register", open(authHandler.Register))
	mux.HandleFunc("POST /api/auth/login", open(authHandler.Login))
	mux.HandleFunc("GET /api/auth/me", protected(authHandler.Me))

	mux.HandleFunc("POST /api/splits", protected(splitHandler.Create))
	mux.HandleFunc("GET /api/splits", protected(splitHandler.List))
	mux.HandleFunc("GET /api/splits/{id}", protected(splitHandler.Get))
	mux.HandleFunc("POST /api/splits/{id}/participants/{index}/toggle", protected(splitHandler.Toggle))

	mux.HandleFunc("GET /api/public/splits/{id}", open(publicHandler.Get))
	mux.HandleFunc("POST /api/public/splits/{id}/pay", open(publicHandler.Pay))

	if staticPath != "" {
		mux.HandleFunc("/", staticHandler(staticPath))
	} else {
		mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("BillWise API v1"))
		})
	}

	return mux
}

// staticHandler serves a frontend build directory on non-API paths, falling
// back to index.html for client-side routes like /{splitId}.
func staticHandler(staticPath string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/api/") {
			http.NotFound(w, r)
			return
		}

		urlPath := r.URL.Path
		if urlPath == "/" {
			urlPath = "/index.html"
		}

		filePath := filepath.Join(staticPath, filepath.Clean(urlPath))
		if _, err := os.Stat(filePath); os.IsNotExist(err) {
			http.ServeFile(w, r, filepath.Join(staticPath, "index.html"))
			return
		}
		http.ServeFile(w, r, filePath)
	}
}
