package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"aeroclub-backend/internal/config"
	"aeroclub-backend/internal/handlers"
	"aeroclub-backend/internal/middleware"
	"aeroclub-backend/internal/repository"
	"aeroclub-backend/internal/services"
	"aeroclub-backend/internal/storage"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func Run() {
	// Optional .env overlay for local development
	_ = godotenv.Load()

	// Load configuration
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config.yaml"
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Setup logger
	setupLogger(cfg.Log.Level)

	// Connect to the document store
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.Mongo.URI))
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to MongoDB")
	}
	defer client.Disconnect(context.Background())

	if err := client.Ping(ctx, nil); err != nil {
		log.Fatal().Err(err).Msg("Failed to ping MongoDB")
	}
	log.Info().Str("database", cfg.Mongo.Database).Msg("MongoDB connection established")
	db := client.Database(cfg.Mongo.Database)

	// Select the upload backend
	uploads, err := storage.New(cfg.Storage)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize upload storage")
	}
	log.Info().Str("backend", cfg.Storage.Backend).Msg("Upload storage ready")

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	eventRepo := repository.NewEventRepository(db)
	mediaRepo := repository.NewMediaRepository(db)
	tipRepo := repository.NewTipRepository(db)
	messageRepo := repository.NewMessageRepository(db)

	// Initialize services
	userService := services.NewUserService(userRepo, uploads, cfg.JWT.Secret)
	eventService := services.NewEventService(eventRepo)
	mediaService := services.NewMediaService(mediaRepo, uploads)
	tipService := services.NewTipService(tipRepo)
	messageService := services.NewMessageService(messageRepo)
	feedHub := services.NewFeedHub()

	// Initialize handlers
	userHandler := handlers.NewUserHandler(userService)
	eventHandler := handlers.NewEventHandler(eventService)
	mediaHandler := handlers.NewMediaHandler(mediaService)
	tipHandler := handlers.NewTipHandler(tipService)
	messageHandler := handlers.NewMessageHandler(messageService, feedHub)
	feedHandler := handlers.NewFeedHandler(feedHub, userService)

	// Setup router
	r := chi.NewRouter()

	// Middleware
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(middleware.Metrics)
	r.Use(corsMiddleware)

	// Routes; all endpoints are public, the login check is the only gate
	r.Route("/api", func(r chi.Router) {
		r.Post("/users/register", userHandler.Register)
		r.Post("/users/login", userHandler.Login)
		r.Get("/users/{id}", userHandler.GetUser)
		r.Put("/users/{id}", userHandler.UpdateUser)

		r.Get("/events", eventHandler.ListEvents)
		r.Post("/events", eventHandler.CreateEvent)

		r.Get("/media", mediaHandler.ListMedia)
		r.Post("/media", mediaHandler.UploadMedia)

		r.Get("/tips", tipHandler.ListTips)
		r.Post("/tips", tipHandler.CreateTip)

		r.Get("/messages", messageHandler.ListMessages)
		r.Post("/messages", messageHandler.PostMessage)
	})

	// Locally stored uploads are served by the process itself
	if disk, ok := uploads.(*storage.DiskStore); ok {
		fileServer := http.StripPrefix("/uploads/", http.FileServer(http.Dir(disk.Dir())))
		r.Get("/uploads/*", fileServer.ServeHTTP)
	}

	// Live feed and metrics
	r.Get("/ws/feed", feedHandler.HandleFeed)
	r.Method(http.MethodGet, "/metrics", middleware.MetricsHandler())

	// Create HTTP server
	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Info().
			Str("host", cfg.Server.Host).
			Int("port", cfg.Server.Port).
			Msg("Starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed to start")
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}

// setupLogger configures zerolog logger
func setupLogger(level string) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	switch level {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "info":
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	case "warn":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}

// corsMiddleware handles CORS for the mobile client
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Authorization, Content-Type")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
