// Package server wires handlers, middleware and routes, and owns the HTTP
// server lifecycle. This is the composition root: every dependency is
// assembled here, in one place, and each layer receives only what it needs
// — services get repository interfaces, handlers get services, nothing
// reaches around its neighbour.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/Mehedihasan1234567/SocioSphere/internal/auth"
	"github.com/Mehedihasan1234567/SocioSphere/internal/handler"
	"github.com/Mehedihasan1234567/SocioSphere/internal/middleware"
	sqliteRepo "github.com/Mehedihasan1234567/SocioSphere/internal/repository/sqlite"
	"github.com/Mehedihasan1234567/SocioSphere/internal/service"
	"github.com/Mehedihasan1234567/SocioSphere/internal/upload"
)

// Config holds everything the server needs from the environment.
type Config struct {
	Port   int
	DBPath string

	JWTSecret string

	// Google OAuth. If ClientID is empty the /auth/google routes are not
	// registered and only credential login is available.
	GoogleClientID     string
	GoogleClientSecret string
	GoogleCallbackURL  string

	// ImageKit upload signing. If the private key is empty the
	// /api/upload-auth route is not registered.
	ImageKitPrivateKey string
	ImageKitPublicKey  string

	// AllowedOrigins for CORS, e.g. the frontend's dev server origin.
	AllowedOrigins []string
}

// Server owns the router and the database connection; the connection is
// closed during graceful shutdown.
type Server struct {
	router *chi.Mux
	config Config
	logger *slog.Logger
	db     *sqliteRepo.DB
}

// New creates the database connection, wires the full dependency graph and
// registers all routes.
func New(cfg Config, logger *slog.Logger) (*Server, error) {
	db, err := sqliteRepo.New(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Server{
		router: chi.NewRouter(),
		config: cfg,
		logger: logger,
		db:     db,
	}

	if err := s.setupRoutes(); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting up routes: %w", err)
	}

	return s, nil
}

func (s *Server) setupRoutes() error {
	tokens, err := auth.NewTokenService(s.config.JWTSecret)
	if err != nil {
		return fmt.Errorf("creating token service: %w", err)
	}
	passwords := auth.NewPasswordService()

	// Services: the single sqlite.DB satisfies every repository interface.
	authService := service.NewAuthService(s.db, tokens, passwords, s.logger)
	userService := service.NewUserService(s.db, passwords, s.logger)
	postService := service.NewPostService(s.db, s.logger)
	commentService := service.NewCommentService(s.db, s.logger)
	likeService := service.NewLikeService(s.db, s.logger)

	var google *auth.GoogleProvider
	if s.config.GoogleClientID != "" {
		google = auth.NewGoogleProvider(
			s.config.GoogleClientID,
			s.config.GoogleClientSecret,
			s.config.GoogleCallbackURL,
		)
	}

	authHandler := handler.NewAuthHandler(authService, google, s.logger)
	userHandler := handler.NewUserHandler(userService, s.logger)
	postHandler := handler.NewPostHandler(postService, s.logger)
	commentHandler := handler.NewCommentHandler(commentService, s.logger)
	likeHandler := handler.NewLikeHandler(likeService, s.logger)

	// Global middleware, in order: request ID, real client IP, panic
	// recovery, request logging, CORS for the browser frontend.
	s.router.Use(chimiddleware.RequestID)
	s.router.Use(chimiddleware.RealIP)
	s.router.Use(chimiddleware.Recoverer)
	s.router.Use(middleware.Logger(s.logger))
	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   s.config.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true, // the session rides in a cookie
		MaxAge:           300,
	}))

	requireAuth := auth.RequireAuth(tokens)

	s.router.Route("/api", func(r chi.Router) {
		// Public reads and account creation.
		r.Get("/posts", postHandler.HandleList)
		r.Get("/posts/{id}", postHandler.HandleGetByID)
		r.Get("/users/{id}", userHandler.HandleGetProfile)
		r.Post("/register", userHandler.HandleRegister)
		r.Post("/login", authHandler.HandleLogin)
		r.Post("/logout", authHandler.HandleLogout)

		// Session-gated operations.
		r.Group(func(r chi.Router) {
			r.Use(requireAuth)
			r.Get("/me", authHandler.HandleMe)
			r.Post("/posts", postHandler.HandleCreate)
			r.Patch("/posts/{id}", postHandler.HandleUpdate)
			r.Delete("/posts/{id}", postHandler.HandleDelete)
			r.Post("/comments", commentHandler.HandleCreate)
			r.Post("/likes", likeHandler.HandleToggle)
			r.Patch("/users/{id}", userHandler.HandleUpdateProfile)

			if s.config.ImageKitPrivateKey != "" {
				signer := upload.NewSigner(s.config.ImageKitPrivateKey, s.config.ImageKitPublicKey)
				uploadHandler := handler.NewUploadHandler(signer, s.logger)
				r.Get("/upload-auth", uploadHandler.HandleUploadAuth)
			}
		})
	})

	// OAuth browser flow lives outside /api — these are redirects, not
	// JSON endpoints.
	if google != nil {
		s.router.Get("/auth/google/login", authHandler.HandleGoogleLogin)
		s.router.Get("/auth/google/callback", authHandler.HandleGoogleCallback)
	}

	return nil
}

// Start runs the HTTP server until SIGINT/SIGTERM, then shuts down
// gracefully: stop accepting connections, give in-flight requests 30
// seconds, close the database (flushes the WAL and releases the file lock).
func (s *Server) Start() error {
	defer s.db.Close()

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", s.config.Port),
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	serverErrors := make(chan error, 1)

	go func() {
		s.logger.Info("server starting",
			slog.Int("port", s.config.Port),
			slog.String("database", s.config.DBPath),
		)
		serverErrors <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}

	case sig := <-quit:
		s.logger.Info("shutdown signal received", slog.String("signal", sig.String()))

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
		s.logger.Info("server stopped gracefully")
	}

	return nil
}
