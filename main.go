package main

import (
	"net/http"
	"os"

	"fitmatch_server/config"
	"fitmatch_server/routes"
	"fitmatch_server/services"
	"fitmatch_server/store"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/rs/zerolog"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fallback := zerolog.New(os.Stderr)
		fallback.Fatal().Err(err).Msg("failed to load configuration")
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	logger := zerolog.New(os.Stdout).Level(level).With().Timestamp().Logger()

	// Initialize the in-memory store
	memStore := store.NewMemoryStore()
	if cfg.SeedSampleData {
		memStore.SeedSampleUsers()
		logger.Info().Msg("seeded sample users")
	}

	// Initialize services
	userService := &services.UserService{Store: memStore, Logger: logger}
	matchService := &services.MatchService{Store: memStore, Logger: logger}
	chatService := &services.ChatService{Store: memStore, Logger: logger}

	// Initialize the router
	r := mux.NewRouter()

	// Register routes
	routes.RegisterRoutes(r)
	routes.RegisterUserRoutes(r, userService)
	routes.RegisterMatchRoutes(r, matchService)
	routes.RegisterChatRoutes(r, chatService)

	// Add CORS middleware
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}).Handler(r)

	logger.Info().Str("port", cfg.Port).Msg("starting server")
	if err := http.ListenAndServe(":"+cfg.Port, corsHandler); err != nil {
		logger.Fatal().Err(err).Msg("server stopped")
	}
}
