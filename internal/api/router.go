package api

import (
	"net/http"
	"time"

	"game_catalog/internal/api/handler"
	"game_catalog/internal/api/middleware"
	"game_catalog/internal/app/service"
	"game_catalog/internal/common/security"
	"game_catalog/internal/domain/repository"
	"game_catalog/internal/platform/storage"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/jwtauth/v5"
)

func NewRouter(
	authService *service.AuthService,
	gameService *service.GameService,
	reviewService *service.ReviewService,
	userRepo repository.UserRepository,
	blobStore storage.BlobStore,
	uploadDir string,
) http.Handler {
	r := chi.NewRouter()

	// Base Middlewares
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Logger) // Chi's logger
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Timeout(60 * time.Second))

	// Verifies the bearer token if present and puts claims in context.
	// Route groups decide whether authentication is actually required.
	r.Use(jwtauth.Verifier(security.TokenAuth))

	// Public health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	// Uploaded images are served back as static files.
	r.Handle("/static/uploads/*", http.StripPrefix("/static/uploads/", http.FileServer(http.Dir(uploadDir))))

	// API v1 Routes
	r.Route("/api/v1", func(v1 chi.Router) {
		// Auth routes (public)
		authHandler := handler.NewAuthHandler(authService)
		v1.Route("/auth", authHandler.RegisterRoutes)

		// User routes: public listing plus the authenticated profile
		userHandler := handler.NewUserHandler(authService)
		userHandler.RegisterRoutes(v1)
		v1.Group(func(protected chi.Router) {
			protected.Use(middleware.Authenticator(userRepo))
			userHandler.RegisterProtectedRoutes(protected)
		})

		// Game routes (reads public, mutations owner-only)
		gameHandler := handler.NewGameHandler(gameService, reviewService, userRepo)
		v1.Route("/games", gameHandler.RegisterRoutes)

		// Review routes (reads public, mutations owner-only)
		reviewHandler := handler.NewReviewHandler(reviewService, userRepo)
		v1.Route("/reviews", reviewHandler.RegisterRoutes)

		// Upload routes (authenticated)
		uploadHandler := handler.NewUploadHandler(blobStore)
		v1.Group(func(protected chi.Router) {
			protected.Use(middleware.Authenticator(userRepo))
			protected.Route("/uploads", uploadHandler.RegisterRoutes)
		})
	})

	return r
}
