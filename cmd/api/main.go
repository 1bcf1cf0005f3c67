package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/christopherjparrett/TheUniverse/internal/api/http"
	"github.com/christopherjparrett/TheUniverse/internal/api/http/handlers"
	"github.com/christopherjparrett/TheUniverse/internal/auth"
	"github.com/christopherjparrett/TheUniverse/internal/config"
	"github.com/christopherjparrett/TheUniverse/internal/events"
	"github.com/christopherjparrett/TheUniverse/internal/observability"
	"github.com/christopherjparrett/TheUniverse/internal/persistence"
	"github.com/christopherjparrett/TheUniverse/internal/repository"
	"github.com/christopherjparrett/TheUniverse/internal/service"
	"github.com/christopherjparrett/TheUniverse/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	pool := pg.PoolHandle()
	userRepo := repository.NewUserRepository(pool)
	planetRepo := repository.NewPlanetRepository(pool)

	if err := persistence.SeedDatabase(ctx, *cfg, planetRepo, userRepo, logger); err != nil {
		logger.Warn("failed to seed database", zap.Error(err))
	}

	dispatcher := events.NewInMemoryDispatcher()
	notificationService := service.NewNotificationService(dispatcher, logger, cfg.Notification)
	worker.StartNotificationWorker(notificationService)

	planetCache := persistence.NewPlanetCache(redis, logger)

	authService := service.NewAuthService(*cfg, userRepo, dispatcher)
	planetService := service.NewPlanetService(planetRepo, planetCache, dispatcher)
	authMiddleware := auth.NewAuthMiddleware(authService.TokenManager(), userRepo)

	metrics := observability.NewMetrics()
	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Auth:           handlers.NewAuthHandler(authService),
		Planets:        handlers.NewPlanetsHandler(planetService),
		AuthMiddleware: authMiddleware,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
