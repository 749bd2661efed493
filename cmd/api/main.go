package main

// @title Excursion Service API
// @version 1.0.0
// @description Сервис бронирования авторских экскурсий. Предоставляет API витрины (каталог маршрутов, заявки на бронирование, отзывы) и административной панели (конструктор маршрутов, даты проведения, сотрудники, правила доступа, тарифы, модерация отзывов).
// @description
// @description Основные возможности:
// @description - Каталог опубликованных маршрутов с геометрией для карты
// @description - Конструктор маршрутов с сессиями редактирования и статистикой
// @description - Заявки на бронирование со сквозной нумерацией кодов
// @description - Отзывы участников с подтверждением кодом бронирования
// @description - Журнал аудита действий сотрудников

// @contact.name API Support
// @contact.email support@excursion-service.com

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	_ "github.com/excursion-service/docs"
	"github.com/excursion-service/internal/config"
	httpDelivery "github.com/excursion-service/internal/delivery/http"
	"github.com/excursion-service/internal/delivery/http/handler"
	"github.com/excursion-service/internal/infrastructure/osrm"
	"github.com/excursion-service/internal/pkg/logger"
	"github.com/excursion-service/internal/repository/cache"
	"github.com/excursion-service/internal/repository/postgres"
	redisRepo "github.com/excursion-service/internal/repository/redis"
	"github.com/excursion-service/internal/usecase"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Excursion Service")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
	)

	// 3. Connect to PostgreSQL
	db, err := postgres.New(&cfg.Database, log)
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Failed to close PostgreSQL connection", zap.Error(err))
		}
	}()
	log.Info("PostgreSQL connected")

	// 4. Connect to Redis
	redisClient, err := cache.NewRedis(&cfg.Redis, log)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis connection", zap.Error(err))
		}
	}()
	log.Info("Redis connected")

	// 5. Health checks
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.Health(ctx); err != nil {
		log.Fatal("PostgreSQL health check failed", zap.Error(err))
	}

	if err := redisClient.Health(ctx); err != nil {
		log.Fatal("Redis health check failed", zap.Error(err))
	}

	log.Info("All connections healthy")

	// 6. Initialize Repositories
	routeRepo := postgres.NewRouteRepository(db)
	bookingRepo := postgres.NewBookingRepository(db)
	userRepo := postgres.NewUserRepository(db)
	ruleRepo := postgres.NewRuleRepository(db)
	tariffRepo := postgres.NewTariffRepository(db)
	reviewRepo := postgres.NewReviewRepository(db)

	cacheRepo := cache.NewCacheRepository(redisClient)
	draftRepo := cache.NewDraftRepository(redisClient, cfg.Cache.DraftSessionTTL)
	streamRepo := redisRepo.NewStreamRepository(redisClient.Client(), log)

	directionsRepo := osrm.NewClient(&cfg.Directions, log)

	log.Info("Repositories initialized")

	// 7. Initialize Use Cases
	audit := usecase.NewAuditPublisher(streamRepo, log)

	routeUC := usecase.NewRouteUseCase(
		routeRepo,
		bookingRepo,
		cacheRepo,
		directionsRepo,
		audit,
		cfg.Cache.CatalogCacheTTL,
		cfg.Cache.RouteCacheTTL,
		log,
	)

	draftUC := usecase.NewDraftUseCase(draftRepo, routeRepo, routeUC, log)
	bookingUC := usecase.NewBookingUseCase(bookingRepo, routeRepo, audit, log)
	authUC := usecase.NewAuthUseCase(userRepo, ruleRepo, audit, cfg.Auth.SecretKey, cfg.Auth.AccessTokenTTL, log)
	userUC := usecase.NewUserUseCase(userRepo, ruleRepo, audit, log)
	ruleUC := usecase.NewRuleUseCase(ruleRepo, audit, log)
	tariffUC := usecase.NewTariffUseCase(tariffRepo, audit, log)
	reviewUC := usecase.NewReviewUseCase(reviewRepo, bookingRepo, routeRepo, audit, log)
	uploadUC := usecase.NewUploadUseCase(cfg.Media.Dir, cfg.Media.PublicURL, log)

	log.Info("Use cases initialized")

	// Стартовый суперпользователь, если задан в конфигурации
	if cfg.Auth.DefaultAdminEmail != "" {
		if err := authUC.EnsureDefaultAdmin(ctx, cfg.Auth.DefaultAdminEmail, cfg.Auth.DefaultAdminPassword); err != nil {
			log.Fatal("Failed to ensure default admin", zap.Error(err))
		}
	}

	// 8. Initialize HTTP Handlers
	authHandler := handler.NewAuthHandler(authUC, log)
	routeHandler := handler.NewRouteHandler(routeUC, log)
	draftHandler := handler.NewDraftHandler(draftUC, log)
	bookingHandler := handler.NewBookingHandler(bookingUC, log)
	userHandler := handler.NewUserHandler(userUC, log)
	ruleHandler := handler.NewRuleHandler(ruleUC, log)
	tariffHandler := handler.NewTariffHandler(tariffUC, log)
	reviewHandler := handler.NewReviewHandler(reviewUC, log)
	uploadHandler := handler.NewUploadHandler(uploadUC, log)

	log.Info("HTTP handlers initialized")

	// 9. Initialize HTTP Server
	server := httpDelivery.NewServer(
		cfg,
		log,
		authUC,
		authHandler,
		routeHandler,
		draftHandler,
		bookingHandler,
		userHandler,
		ruleHandler,
		tariffHandler,
		reviewHandler,
		uploadHandler,
	)

	log.Info("HTTP server initialized")

	// 10. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 11. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	ctx, cancel = context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	if err := db.Close(); err != nil {
		log.Error("Failed to close database", zap.Error(err))
	}

	if err := redisClient.Close(); err != nil {
		log.Error("Failed to close Redis", zap.Error(err))
	}

	log.Info("Server stopped successfully")
}
