package httpapi

import (
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/dmitrijs2005/hikekeeper/internal/common"
	"github.com/dmitrijs2005/hikekeeper/internal/logging"
)

// devOrigins are browser origins of local web and Expo clients.
var devOrigins = []string{
	"http://localhost:19006",
	"http://127.0.0.1:19006",
	"http://localhost:5173",
	"http://localhost:5000",
	"http://127.0.0.1:5000",
	"http://localhost:8081",
	"http://localhost:8000",
}

// allowedHostSuffixes admit hosted web clients and tunnels.
var allowedHostSuffixes = []string{
	".vercel.app",
	".trycloudflare.com",
	".ngrok-free.app",
	".ngrok.io",
}

// NewOriginPolicy returns the origin check used by the CORS middleware.
// A missing origin (same-origin or non-browser client) is allowed.
func NewOriginPolicy(extra []string) func(r *http.Request, origin string) bool {
	allowed := make(map[string]struct{}, len(devOrigins)+len(extra))
	for _, o := range devOrigins {
		allowed[o] = struct{}{}
	}
	for _, o := range extra {
		allowed[strings.TrimSpace(o)] = struct{}{}
	}

	return func(_ *http.Request, origin string) bool {
		if origin == "" {
			return true
		}
		if _, ok := allowed[origin]; ok {
			return true
		}
		u, err := url.Parse(origin)
		if err != nil || u.Host == "" {
			return false
		}
		for _, suffix := range allowedHostSuffixes {
			if strings.HasSuffix(u.Host, suffix) {
				return true
			}
		}
		return false
	}
}

func corsMiddleware(extraOrigins []string) func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowOriginFunc:  NewOriginPolicy(extraOrigins),
		AllowedMethods:   []string{"GET", "HEAD", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: false,
		MaxAge:           86400,
	})
}

// requireAuth enforces Authorization: Bearer <JWT> and stores the account id
// in the request context.
func (h *Handler) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authz := r.Header.Get("Authorization")
		if !strings.HasPrefix(authz, common.BearerScheme) {
			writeError(w, http.StatusUnauthorized, "Access token required")
			return
		}
		raw := strings.TrimSpace(strings.TrimPrefix(authz, common.BearerScheme))
		if raw == "" {
			writeError(w, http.StatusUnauthorized, "Access token required")
			return
		}

		userID, err := h.users.Authorize(r.Context(), raw)
		if err != nil {
			writeError(w, http.StatusUnauthorized, "Invalid or expired token")
			return
		}

		next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), userID)))
	})
}

// accessLog writes one line per request through logger.
func accessLog(logger logging.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			next.ServeHTTP(ww, r)

			logger.Info(r.Context(), "http request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
				"requestId", middleware.GetReqID(r.Context()),
			)
		})
	}
}
