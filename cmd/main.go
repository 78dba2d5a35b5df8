package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/yungbote/lifestory-backend/internal/db"
	"github.com/yungbote/lifestory-backend/internal/handlers"
	"github.com/yungbote/lifestory-backend/internal/platform/envutil"
	"github.com/yungbote/lifestory-backend/internal/platform/logger"
	"github.com/yungbote/lifestory-backend/internal/repos"
	"github.com/yungbote/lifestory-backend/internal/server"
	"github.com/yungbote/lifestory-backend/internal/services"
	"github.com/yungbote/lifestory-backend/internal/types"
)

func main() {
	// Logger
	log, err := logger.New(envutil.String("LOG_MODE", "development"))
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	// Env
	if err := godotenv.Load(); err != nil {
		log.Info("No .env file found, using system environment variables")
	}
	port := envutil.Int("PORT", 8000)

	// Mongo
	mongoService, err := db.NewMongoService(log)
	if err != nil {
		log.Error("Mongo init failed", "error", err)
		os.Exit(1)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := mongoService.Disconnect(ctx); err != nil {
			log.Warn("Mongo disconnect failed", "error", err)
		}
	}()

	// Repos
	log.Info("Setting up repos...")
	seasonRepo := repos.NewMongoRepository[types.Season](mongoService.Collection("season"), log)
	episodeRepo := repos.NewMongoRepository[types.Episode](mongoService.Collection("episode"), log)

	// Services
	log.Info("Setting up services...")
	seasonService := services.NewSeasonService(seasonRepo, episodeRepo, log)
	episodeService := services.NewEpisodeService(episodeRepo, log)

	// Handlers
	log.Info("Setting up handlers...")
	diagnosticsHandler := handlers.NewDiagnosticsHandler(log, mongoService)
	seasonHandler := handlers.NewSeasonHandler(log, seasonService)
	episodeHandler := handlers.NewEpisodeHandler(log, episodeService)

	// Router
	router := server.NewRouter(server.RouterConfig{
		DiagnosticsHandler: diagnosticsHandler,
		SeasonHandler:      seasonHandler,
		EpisodeHandler:     episodeHandler,
	})

	log.Info("Starting server", "port", port)
	if err := router.Run(fmt.Sprintf(":%d", port)); err != nil {
		log.Fatal("Server stopped", "error", err)
	}
}
