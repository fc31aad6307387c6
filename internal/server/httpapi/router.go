package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

type RouterOptions struct {
	CORSOrigins []string
}

// NewRouter mounts every endpoint under /api.
func NewRouter(h *Handler, opts RouterOptions) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(accessLog(h.logger))
	r.Use(middleware.Recoverer)
	r.Use(corsMiddleware(opts.CORSOrigins))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "Not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/ping", h.Ping)
		r.Post("/register", h.Register)
		r.Post("/login", h.Login)
		if h.icons != nil {
			r.Get("/proxy/icon/{file}", h.icons.ServeHTTP)
		}

		r.Group(func(r chi.Router) {
			r.Use(h.requireAuth)

			r.Get("/profile", h.GetProfile)
			r.Put("/profile/save", h.SaveProfile)
			r.Get("/trails", h.ListHikes)
			r.Put("/trails/{trailID}", h.RecordHike)
			r.Get("/trails/{trailID}/track", h.TrackURL)
		})
	})

	return r
}
