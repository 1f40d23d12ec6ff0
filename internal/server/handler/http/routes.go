package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/taskward/taskward/internal/middleware"
)

// NewRouter constructs the HTTP handler serving the task API.
//
// Routes:
//
//	GET    /health              → Health (public)
//	POST   /api/signup          → authHandler.Signup (public)
//	POST   /api/login           → authHandler.Login (public)
//	POST   /api/logout          → authHandler.Logout (session required)
//	GET    /tasks               → taskHandler.List (session required)
//	POST   /tasks               → taskHandler.Create (session required)
//	PUT    /tasks/{id}/toggle   → taskHandler.Toggle (session required)
//	PUT    /tasks/{id}          → taskHandler.Update (session required)
//	DELETE /tasks/{id}          → taskHandler.Delete (session required)
//
// Protected routes go through middleware.SessionAuth, which rejects requests
// without a valid session token before any handler logic runs.
func NewRouter(
	authHandler *AuthHandler,
	taskHandler *TaskHandler,
	sessions middleware.SessionResolver,
	corsOrigins []string,
	logger *zap.Logger,
) http.Handler {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   corsOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Log each request and its metadata
	r.Use(middleware.WithRequestLogging(logger))

	r.Get("/health", Health)

	r.Route("/api", func(r chi.Router) {
		// Public endpoints
		r.Post("/signup", authHandler.Signup)
		r.Post("/login", authHandler.Login)

		// Protected: logout needs a live session to revoke
		r.Group(func(r chi.Router) {
			r.Use(middleware.SessionAuth(sessions))
			r.Post("/logout", authHandler.Logout)
		})
	})

	r.Route("/tasks", func(r chi.Router) {
		r.Use(middleware.SessionAuth(sessions))
		r.Get("/", taskHandler.List)
		r.Post("/", taskHandler.Create)
		r.Put("/{id}/toggle", taskHandler.Toggle)
		r.Put("/{id}", taskHandler.Update)
		r.Delete("/{id}", taskHandler.Delete)
	})

	return r
}
