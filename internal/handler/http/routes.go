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

	// routes without permission grants
	router.Group(func(r chi.Router) {
		r.Get("/api/version", h.getServerVersion)
	})

	// permission-gated routes: grants travel in a bearer token, a missing or
	// invalid token resolves to no grants and the services answer 403
	router.Group(func(r chi.Router) {
		r.Use(h.withGrants)

		r.Route("/api/contacts", func(r chi.Router) {
			r.Get("/", h.listContacts)
			r.Post("/", h.createContact)
			r.Get("/count", h.countContacts)

			r.Route("/{contactID}", func(r chi.Router) {
				r.Get("/", h.getContact)
				r.Put("/", h.updateContact)
				r.Delete("/", h.deleteContact)
			})
		})

		r.Route("/api/groups", func(r chi.Router) {
			r.Get("/", h.listGroups)
			r.Post("/", h.createGroup)

			r.Route("/{groupID}", func(r chi.Router) {
				r.Get("/", h.getGroup)
				r.Delete("/", h.deleteGroup)
			})
		})

		r.Get("/api/accounts", h.listAccounts)
	})

	return router
}
