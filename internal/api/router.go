package api

import (
	"net/http"

	"github.com/dom/community-portal/internal/api/handlers"
	"github.com/dom/community-portal/internal/api/middleware"
	"github.com/dom/community-portal/internal/service"
	"github.com/dom/community-portal/internal/session"
	"github.com/dom/community-portal/internal/web"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
)

func NewRouter(services *service.Services, sessions *session.Manager, render *web.Renderer) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.RequestID)
	r.Use(middleware.Session(sessions))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	// Static assets
	r.Handle("/static/*", web.StaticHandler())

	// Initialize handlers
	pageHandler := handlers.NewPageHandler(render)
	authHandler := handlers.NewAuthHandler(services.Auth, sessions, render)
	appointmentHandler := handlers.NewAppointmentHandler(services.Appointments, render)
	reviewHandler := handlers.NewReviewHandler(services.Reviews, render)

	// Public pages
	r.Get("/", pageHandler.Home)
	r.Get("/about", pageHandler.About)

	// Auth
	r.Get("/register", authHandler.RegisterForm)
	r.Post("/register", authHandler.Register)
	r.Get("/login", authHandler.LoginForm)
	r.Post("/login", authHandler.Login)
	r.Get("/logout", authHandler.Logout)

	// Reviews: reading is public, posting needs a session
	r.Get("/reviews", reviewHandler.List)
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireSession("Please log in to post a review."))
		r.Post("/reviews", reviewHandler.Post)
	})

	// Protected routes
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireSession("Please log in to access that page."))

		r.Get("/book", appointmentHandler.BookForm)
		r.Post("/book", appointmentHandler.Book)
		r.Get("/profile", authHandler.Profile)
	})

	return r
}
