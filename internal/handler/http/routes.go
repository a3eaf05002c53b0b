package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGZip)

	// public routes
	router.Group(func(r chi.Router) {
		r.Get("/", h.publicRankingPage)
		r.Get("/ranking/export.csv", h.exportRankingCSV)
		r.Handle("/static/*", http.FileServer(http.FS(staticFS)))
	})

	// login routes
	router.Group(func(r chi.Router) {
		r.Get("/admin", h.loginPage)
		r.Post("/admin/login", h.login)
		r.Post("/admin/logout", h.logout)
	})

	// admin console, behind the session guard
	router.Group(func(r chi.Router) {
		r.Use(h.sessionGuard)

		r.Get("/admin/ranking", h.adminRankingPage)
		r.Get("/admin/ranking/create", h.adminRankingCreatePage)
		r.Post("/admin/ranking/create", h.adminRankingCreate)
		r.Get("/admin/ranking/edit/{id}", h.adminRankingEditPage)
		r.Post("/admin/ranking/edit/{id}", h.adminRankingUpdate)
		r.Post("/admin/ranking/delete/{id}", h.adminRankingDelete)
	})

	return router
}
