package main

import (
	"context"

	"github.com/Hypereqqq/backend-good-game-vr/config"
	"github.com/Hypereqqq/backend-good-game-vr/db"
	"github.com/Hypereqqq/backend-good-game-vr/internal/booking/audit"
	"github.com/Hypereqqq/backend-good-game-vr/internal/booking/handler"
	repo "github.com/Hypereqqq/backend-good-game-vr/internal/booking/repository/postgres"
	"github.com/Hypereqqq/backend-good-game-vr/internal/booking/service"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"go.uber.org/zap"
)

func main() {
	cfg := config.Load()

	logger, err := newLogger(cfg)
	if err != nil {
		panic(err)
	}
	defer logger.Sync() //nolint:errcheck

	dbPool, err := db.NewPostgresPool(context.Background(), cfg.DBURL)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	defer dbPool.Close()

	bookingRepo := repo.NewPostgresRepository(dbPool)
	configRepo := repo.NewPostgresConfigRepository(dbPool)

	limiter := service.NewLoginLimiter(cfg.LoginMaxAttempts, cfg.LoginWindow())
	recorder := audit.NewZapRecorder(logger)

	authService := service.NewAuthService(bookingRepo, limiter, service.BcryptVerifier{}, recorder)
	reservationService := service.NewReservationService(bookingRepo)
	configService := service.NewAppConfigService(configRepo)

	authHandler := handler.NewAuthHandler(authService)
	reservationHandler := handler.NewReservationHandler(reservationService, configService)

	app := fiber.New()
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowCredentials: true,
	}))
	handler.RegisterRoutes(app, authHandler, reservationHandler)

	if err := app.Listen(":" + cfg.Port); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.Env == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
