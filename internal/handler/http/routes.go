package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// Init wires the full route tree. allowedOrigins is the CORS allowlist
// derived from configuration; a single "*" entry allows all origins.
func (h *Handler) Init(allowedOrigins []string) *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}))
	router.Use(h.withTraceID, h.withLogging)

	// liveness endpoints
	router.Get("/", h.root)
	router.Get("/health", h.health)

	// routes without authorization
	router.Route("/auth", func(r chi.Router) {
		r.Post("/register", h.register)
		r.Post("/login", h.login)
		r.Get("/confirm", h.confirm)
	})

	// routes with bearer authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Route("/notes", func(r chi.Router) {
			r.Post("/", h.createNote)
			r.Get("/", h.listNotes)
			r.Get("/{noteID}", h.getNote)
			r.Delete("/{noteID}", h.deleteNote)
			r.Post("/{noteID}/summarize", h.summarizeNote)
		})

		r.Post("/upload/image", h.uploadImage)
	})

	return router
}
