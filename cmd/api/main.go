package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/hospital_beds/internal/config"
	"github.com/shenikar/hospital_beds/internal/events"
	v1 "github.com/shenikar/hospital_beds/internal/handler/http/v1"
	"github.com/shenikar/hospital_beds/internal/repository"
	"github.com/shenikar/hospital_beds/internal/service"
	"github.com/shenikar/hospital_beds/pkg/logger"
	redisclient "github.com/shenikar/hospital_beds/pkg/redis"
	"github.com/sirupsen/logrus"

	_ "github.com/shenikar/hospital_beds/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Hospital Beds API
// @version 1.0
// @description Find nearby hospitals with free beds, reserve a bed and estimate the trip.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func main() {
	// Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Инициализация логгера
	log := logger.New(cfg.LogLevel, "api")

	// Контекст для graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Подключение к хранилищу (миграции для postgres выполняются внутри)
	hospitalRepo, closeStore, err := repository.Open(ctx, cfg, log)
	if err != nil {
		log.Fatalf("Failed to open %s store: %v", cfg.StoreBackend, err)
	}
	defer closeStore()
	log.WithField("backend", cfg.StoreBackend).Info("Hospital store ready")

	// Инициализация Redis клиента
	redisClient, err := redisclient.NewRedisClient(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()
	log.Info("Successfully connected to Redis")

	// Журнал бронирований: издатель и воркер
	eventPublisher := events.NewRedisEventPublisher(redisClient)
	eventWorker := events.NewEventWorker(redisClient, hospitalRepo, log, cfg)
	eventWorker.Start(ctx)

	// Кеш и ключи идемпотентности
	hospitalCache := repository.NewRedisHospitalCache(redisClient, cfg.CacheTTL)
	idempotencyStore := repository.NewRedisIdempotencyStore(redisClient, cfg.IdempotencyTTL)

	// Инициализация сервисов
	hospitalService := service.NewHospitalService(hospitalRepo, hospitalCache, log)
	availabilityService := service.NewAvailabilityService(hospitalRepo, log)
	reservationService := service.NewReservationService(hospitalRepo, hospitalCache, idempotencyStore, eventPublisher, log, cfg)
	tripService := service.NewTripService(hospitalService, cfg.RoutingServiceURL, log)

	// Инициализация хэндлеров
	handler := v1.NewHandler(hospitalService, availabilityService, reservationService, tripService, log, cfg)

	// Настройка Gin роутера
	router := gin.Default()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	// Добавление маршрута для Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler: router,
	}

	// Запуск сервера в горутине
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
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
		log.Errorf("Server forced to shutdown: %v", err)
	}
	// Останавливаем воркер журнала после HTTP-сервера
	cancel()

	log.Info("Server gracefully stopped")
}
