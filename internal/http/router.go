package http

import (
	"database/sql"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"arsipku/internal/auth"
	"arsipku/internal/feed"
	"arsipku/internal/filestore"
	"arsipku/internal/handlers"
	"arsipku/internal/service"
)

// Deps holds dependencies for the HTTP router.
type Deps struct {
	Archives        service.ArchiveService
	Classifications service.ClassificationService
	Sessions        *auth.Manager
	Hub             *feed.Hub
	Files           *filestore.Store
	DB              *sql.DB
}

// NewRouter creates a new HTTP router with the provided dependencies.
// Everything under /api except health and sign-in requires a bearer
// session token or the service key.
func NewRouter(deps *Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(LoggerMiddleware)
	r.Use(CORS)

	archiveHandler := handlers.NewArchiveHandler(deps.Archives)
	classificationHandler := handlers.NewClassificationHandler(deps.Classifications)
	authHandler := handlers.NewAuthHandler(deps.Sessions)
	eventsHandler := handlers.NewEventsHandler(deps.Hub)
	fileHandler := handlers.NewFileHandler(deps.Files)
	healthHandler := handlers.NewHealthHandler(deps.DB)

	r.Route("/api", func(r chi.Router) {
		r.Method(http.MethodGet, "/health", healthHandler)
		r.Post("/auth/signin", authHandler.SignIn)

		r.Group(func(r chi.Router) {
			r.Use(RequireAuth(deps.Sessions))

			r.Post("/auth/signout", authHandler.SignOut)
			r.Get("/auth/session", authHandler.Session)

			r.Route("/archives", func(r chi.Router) {
				r.Get("/", archiveHandler.List)
				r.Post("/", archiveHandler.Create)
				r.Get("/{id}", archiveHandler.Get)
				r.Put("/{id}", archiveHandler.Update)
				r.Delete("/{id}", archiveHandler.Delete)
				r.Get("/{id}/page", archiveHandler.Page)
			})

			r.Route("/classifications", func(r chi.Router) {
				r.Get("/", classificationHandler.List)
				r.Get("/tree", classificationHandler.Tree)
				r.Post("/", classificationHandler.Create)
				r.Get("/{id}", classificationHandler.Get)
				r.Put("/{id}", classificationHandler.Update)
				r.Delete("/{id}", classificationHandler.Delete)
			})

			r.Route("/files", func(r chi.Router) {
				r.Post("/", fileHandler.Upload)
				r.Get("/{path}", fileHandler.Download)
				r.Delete("/{path}", fileHandler.Delete)
			})

			r.Method(http.MethodGet, "/events", eventsHandler)
		})
	})

	return r
}
