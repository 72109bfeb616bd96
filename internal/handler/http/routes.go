package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/users", h.registerUser)
		r.Post("/api/auth/login", h.login)
		r.Get("/api/things", h.listThings)
	})

	// routes behind the bearer-token gate
	router.Group(func(r chi.Router) {
		r.Use(h.requireAuth)

		r.Get("/api/users/{userID}", h.getUser)
		r.Get("/api/things/{thingID}", h.getThing)
		r.Get("/api/things/{thingID}/reviews", h.listThingReviews)
	})

	return router
}
