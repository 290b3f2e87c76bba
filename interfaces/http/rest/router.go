// Package rest wires the HTTP surface of the service.
package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"teachback-backend/interfaces/http/rest/handlers"
	"teachback-backend/interfaces/http/rest/middleware"
	"teachback-backend/pkg/auth"
)

// RouterDeps carries everything the router needs
type RouterDeps struct {
	Logger         *zap.Logger
	JWTValidator   *auth.JWTValidator
	UserLimiter    *auth.UserRateLimiter
	AllowedOrigins []string

	Auth      *handlers.AuthHandler
	Chat      *handlers.ChatHandler
	Session   *handlers.SessionHandler
	WeakPoint *handlers.WeakPointHandler
	Map       *handlers.MapHandler
	Dashboard *handlers.DashboardHandler
	Health    *handlers.HealthHandler
}

// NewRouter builds the chi router with all routes and middleware
func NewRouter(deps RouterDeps) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logging(deps.Logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   deps.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Probes
	r.Get("/health", deps.Health.Health)
	r.Get("/ready", deps.Health.Ready)

	// Public auth endpoints
	r.Route("/api/auth", func(r chi.Router) {
		r.Post("/signup", deps.Auth.Signup)
		r.Post("/login", deps.Auth.Login)
	})

	// Authenticated API
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Authenticate(deps.JWTValidator, deps.UserLimiter, deps.Logger))

		r.Route("/chat", func(r chi.Router) {
			r.Post("/theme", deps.Chat.StartTheme)
			r.Get("/messages", deps.Chat.GetMessages)
			r.Post("/messages", deps.Chat.SendMessage)
			r.Post("/analyze", deps.Chat.Analyze)
		})

		r.Route("/sessions", func(r chi.Router) {
			r.Get("/", deps.Session.List)
			r.Get("/{sessionID}", deps.Session.Get)
			r.Post("/{sessionID}/continue", deps.Session.Continue)
		})

		r.Route("/weak-points", func(r chi.Router) {
			r.Get("/", deps.WeakPoint.List)
			r.Put("/{weakPointID}/status", deps.WeakPoint.UpdateStatus)
		})

		r.Route("/map", func(r chi.Router) {
			r.Get("/", deps.Map.Get)
			r.Post("/nodes/{nodeID}/select", deps.Map.SelectNode)
			r.Post("/reset", deps.Map.Reset)
		})

		r.Get("/dashboard", deps.Dashboard.Get)
	})

	return r
}
