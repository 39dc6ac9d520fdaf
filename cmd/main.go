package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/shenikar/venue_prompt_system/internal/config"
	"github.com/shenikar/venue_prompt_system/internal/dwell"
	v1 "github.com/shenikar/venue_prompt_system/internal/handler/http/v1"
	"github.com/shenikar/venue_prompt_system/internal/notify"
	"github.com/shenikar/venue_prompt_system/internal/places"
	"github.com/shenikar/venue_prompt_system/internal/repository"
	"github.com/shenikar/venue_prompt_system/internal/service"
	"github.com/shenikar/venue_prompt_system/pkg/logger"
	"github.com/shenikar/venue_prompt_system/pkg/postgres"
	redisclient "github.com/shenikar/venue_prompt_system/pkg/redis"
	"github.com/sirupsen/logrus"

	_ "github.com/shenikar/venue_prompt_system/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Venue Prompt System API
// @version 1.0
// @description Proximity-triggered venue prompt service.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func runMigrations(cfg *config.Config, log *logrus.Logger) error {
	log.Info("Running database migrations...")

	migrationURL := cfg.DatabaseURL
	if !strings.HasPrefix(migrationURL, "pgx5://") {
		migrationURL = strings.Replace(migrationURL, "postgres://", "pgx5://", 1)
	}

	m, err := migrate.New(
		"file://migrations",
		migrationURL,
	)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Info("Database migrations applied successfully")
	return nil
}

func main() {
	// Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Инициализация логгера
	log := logger.New(cfg.LogLevel)

	loc, err := cfg.Location()
	if err != nil {
		log.Fatalf("Failed to load timezone: %v", err)
	}

	// Контекст для graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Запуск миграций
	if err := runMigrations(cfg, log); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}

	// Подключение к PostgreSQL
	dbpool, err := postgres.NewPostgresDB(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL: %v", err)
	}
	defer dbpool.Close()
	log.Info("Successfully connected to PostgreSQL")

	// Инициализация Redis клиента
	redisClient, err := redisclient.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()
	log.Info("Successfully connected to Redis")

	// Инициализация хранилищ состояния
	kv := repository.NewRedisKV(redisClient)

	ledger := repository.NewVisitLedger(kv, log)
	if err := ledger.Load(ctx); err != nil {
		log.Fatalf("Failed to load visit ledger: %v", err)
	}

	exclusions := repository.NewExclusionStore(kv, cfg.ExclusionRadiusMeters, log)
	if err := exclusions.Load(ctx); err != nil {
		log.Fatalf("Failed to load exclusion zones: %v", err)
	}

	notificationLog := repository.NewNotificationLogRepository(dbpool)

	// Инициализация клиента поиска заведений и отправителя уведомлений
	placesClient := places.NewClient(cfg, log)
	dispatcher := notify.NewWebhookDispatcher(cfg, log)

	// Инициализация и запуск движка уведомлений
	filter := dwell.NewFilter(cfg, log)
	engine := service.NewEngine(cfg, log, filter, placesClient, ledger, exclusions, dispatcher, notificationLog, loc)
	engine.Start(ctx)

	// Инициализация хэндлеров
	handler := v1.NewHandler(engine, exclusions, notificationLog, log, cfg)

	// Настройка Gin роутера; health-check остается вне API-ключа
	router := gin.Default()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api, v1.APIKeyAuthMiddleware(cfg, log))

	// Добавление маршрута для Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Запуск HTTP-сервера
	serverAddr := fmt.Sprintf(":%s", cfg.HTTPPort)

	srv := &http.Server{
		Addr:    serverAddr,
		Handler: router,
	}

	// Запуск сервера в горутине
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Error starting HTTP server: %v", err)
		}
	}()
	log.Infof("HTTP server started on port %s", cfg.HTTPPort)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Received shutdown signal, shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Info("Server gracefully stopped")
}
