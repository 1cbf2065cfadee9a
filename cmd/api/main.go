package main

import (
	"context"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/smartcare/smartcare-api/internal/config"
	"github.com/smartcare/smartcare-api/internal/handlers"
	"github.com/smartcare/smartcare-api/internal/middleware"
	"github.com/smartcare/smartcare-api/internal/services"
	"github.com/smartcare/smartcare-api/internal/store"
)

func main() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load configuration")
	}

	// The store backend is chosen here, once. A Mongo connection failure is
	// fatal, never a silent fallback to the in-memory store.
	var st store.Store
	switch cfg.StoreBackend {
	case "memory":
		logger.Warn().Msg("using in-memory store, data will not survive a restart")
		st = store.NewMemory()
	default:
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to connect to MongoDB")
		}
		defer client.Disconnect(context.Background())

		if err := client.Ping(ctx, nil); err != nil {
			logger.Fatal().Err(err).Msg("MongoDB ping failed")
		}
		logger.Info().Str("database", cfg.MongoDB).Msg("connected to MongoDB")
		st = store.NewMongo(client.Database(cfg.MongoDB))
	}

	mailer := services.NewMailService(cfg.SendgridAPIKey, cfg.MailFrom, cfg.MailFromName, logger)
	h := handlers.NewHandler(st, mailer, cfg, logger)

	if !cfg.IsDev() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(middleware.RequestLogger(logger))
	r.Use(gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	handlers.RegisterRoutes(r, h)

	logger.Info().Str("port", cfg.Port).Msg("starting server")
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Fatal().Err(err).Msg("server exited")
	}
}
