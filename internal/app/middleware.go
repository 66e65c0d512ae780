package app

import (
	"net/http"
	"slices"
	"strings"

	"github.com/globetrotter/globetrotter/internal/config"
	"github.com/globetrotter/globetrotter/internal/rest"
	"github.com/globetrotter/globetrotter/pkg/user"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

// SetupMiddleware wires all HTTP middlewares for the application.
func SetupMiddleware(r *mux.Router, deps *Dependencies, cfg config.Application) {
	r.Use(corsMiddleware(cfg.Cors.Origins))
	r.Use(authMiddleware(deps))
}

func corsMiddleware(origins []string) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			origin := req.Header.Get("Origin")
			if origin != "" && slices.Contains(origins, origin) {
				w.Header().Set("Access-Control-Allow-Origin", origin)
				w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
				w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
			}
			if req.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, req)
		})
	}
}

// authMiddleware validates the Bearer token and puts the signed-in user into
// the request context. Auth endpoints, the public share view, and the
// frontend are reachable without a token.
func authMiddleware(deps *Dependencies) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			if isPublic(req) {
				next.ServeHTTP(w, req)
				return
			}

			header := req.Header.Get("Authorization")
			token, found := strings.CutPrefix(header, "Bearer ")
			if !found || token == "" {
				w.Header().Set("Content-Type", "application/json")
				rest.WriteError(w, http.StatusUnauthorized, "Missing bearer token", "")
				return
			}

			claims, err := deps.TokenIssuer.ValidateAccess(token)
			if err != nil {
				w.Header().Set("Content-Type", "application/json")
				rest.WriteError(w, http.StatusUnauthorized, "Invalid or expired token", "")
				return
			}

			u, err := deps.UserService.GetUser(req.Context(), claims.Subject)
			if err != nil {
				log.Debugf("token subject %s has no account: %v", claims.Subject, err)
				w.Header().Set("Content-Type", "application/json")
				rest.WriteError(w, http.StatusUnauthorized, "Unknown account", "")
				return
			}

			ctx := user.WithUser(req.Context(), u)
			next.ServeHTTP(w, req.WithContext(ctx))
		})
	}
}

func isPublic(req *http.Request) bool {
	path := req.URL.Path
	if !strings.HasPrefix(path, "/api/") {
		return true
	}
	if strings.HasPrefix(path, "/api/auth/") && path != "/api/auth/logout" {
		return true
	}
	if req.Method == http.MethodGet && strings.HasPrefix(path, "/api/shared/") {
		return true
	}
	return path == "/api/health"
}
