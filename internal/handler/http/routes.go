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
	router.Use(withGZip)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/register", h.register)
		r.Post("/api/auth/login", h.login)
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Route("/api/subjects", func(r chi.Router) {
			r.Get("/", h.listSubjects)
			r.Post("/", h.createSubject)
			r.Get("/{id}", h.getSubject)
			r.Put("/{id}", h.updateSubject)
			r.Delete("/{id}", h.deleteSubject)
		})

		r.Route("/api/tasks", func(r chi.Router) {
			r.Get("/", h.searchTasks)
			r.Post("/", h.createTask)
			r.Get("/{id}", h.getTask)
			r.Put("/{id}", h.updateTask)
			r.Delete("/{id}", h.deleteTask)
			r.Patch("/{id}/toggle", h.toggleTask)
		})

		r.Get("/api/dashboard", h.dashboard)
		r.Post("/api/dashboard/tasks/{id}/done", h.markTaskDone)
	})

	return router
}
