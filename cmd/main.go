package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	findAvailableSlotsHandler "github.com/m04kA/SMC-SlotEngine/internal/api/handlers/find_available_slots"
	findNearbyAlternativesHandler "github.com/m04kA/SMC-SlotEngine/internal/api/handlers/find_nearby_alternatives"
	"github.com/m04kA/SMC-SlotEngine/internal/api/middleware"
	"github.com/m04kA/SMC-SlotEngine/internal/config"
	salonCache "github.com/m04kA/SMC-SlotEngine/internal/infra/cache/salon"
	bookingRepo "github.com/m04kA/SMC-SlotEngine/internal/infra/storage/booking"
	providerRepo "github.com/m04kA/SMC-SlotEngine/internal/infra/storage/provider"
	salonRepo "github.com/m04kA/SMC-SlotEngine/internal/infra/storage/salon"
	catalogServiceClient "github.com/m04kA/SMC-SlotEngine/internal/integrations/catalogservice"
	"github.com/m04kA/SMC-SlotEngine/internal/service/availability"
	findAvailableSlotsUC "github.com/m04kA/SMC-SlotEngine/internal/usecase/find_available_slots"
	findNearbyAlternativesUC "github.com/m04kA/SMC-SlotEngine/internal/usecase/find_nearby_alternatives"
	"github.com/m04kA/SMC-SlotEngine/pkg/dbmetrics"
	"github.com/m04kA/SMC-SlotEngine/pkg/logger"
	"github.com/m04kA/SMC-SlotEngine/pkg/metrics"
)

func main() {
	// Загружаем конфигурацию
	configPath := "config.toml"
	if p := os.Getenv("CONFIG_PATH"); p != "" {
		configPath = p
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SMC-SlotEngine...")
	log.Info("Configuration loaded from %s", configPath)

	location, err := cfg.Search.Location()
	if err != nil {
		log.Fatal("Failed to load timezone %s: %v", cfg.Search.Timezone, err)
	}

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName, prometheus.DefaultRegisterer)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Инициализируем репозитории (с метриками или без)
	var executor dbmetrics.DBExecutor = db
	if cfg.Metrics.Enabled {
		executor = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Database.DBName, stopMetricsCh)
		log.Info("Database metrics collection started")
	}

	providerRepository := providerRepo.NewRepository(executor)
	bookingRepository := bookingRepo.NewRepository(executor)
	salonRepository := salonRepo.NewRepository(executor)

	// Настройки салонов читаются через кэш Redis (если включен)
	var salonConfig availability.SalonConfig = salonRepository
	if cfg.Redis.Enabled {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer redisClient.Close()

		pingCtx, cancelPing := context.WithTimeout(context.Background(), 3*time.Second)
		if err := redisClient.Ping(pingCtx).Err(); err != nil {
			// Кэш деградирует до прямых запросов в PostgreSQL
			log.Warn("Redis is not reachable at %s: %v", cfg.Redis.Addr, err)
		} else {
			log.Info("Successfully connected to redis (addr=%s, ttl=%ds)", cfg.Redis.Addr, cfg.Redis.TTL)
		}
		cancelPing()

		salonConfig = salonCache.NewCache(salonRepository, redisClient, cfg.Redis.TTLDuration(), log)
	}

	// Инициализируем интеграционных клиентов
	catalogClient := catalogServiceClient.NewClient(
		cfg.CatalogService.URL,
		time.Duration(cfg.CatalogService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (CatalogService=%s timeout=%ds)",
		cfg.CatalogService.URL, cfg.CatalogService.Timeout)

	// Инициализируем сервисы
	availabilitySvc := availability.NewService(
		catalogClient,
		providerRepository,
		bookingRepository,
		salonConfig,
		log,
	)

	// Интерфейсы метрик usecase остаются nil, если метрики выключены
	var (
		slotsMetrics        findAvailableSlotsUC.Metrics
		alternativesMetrics findNearbyAlternativesUC.Metrics
	)
	if cfg.Metrics.Enabled {
		slotsMetrics = metricsCollector
		alternativesMetrics = metricsCollector
	}

	// Инициализируем use cases
	findAvailableSlotsUseCase := findAvailableSlotsUC.NewUseCase(
		availabilitySvc,
		slotsMetrics,
		findAvailableSlotsUC.Options{
			Location:            location,
			DefaultMaxDaysAhead: cfg.Search.DefaultMaxDaysAhead,
			MaxDaysAhead:        cfg.Search.MaxDaysAhead,
			DefaultLimit:        cfg.Search.DefaultLimit,
			MaxLimit:            cfg.Search.MaxLimit,
		},
		log,
	)

	findNearbyAlternativesUseCase := findNearbyAlternativesUC.NewUseCase(
		availabilitySvc,
		alternativesMetrics,
		findNearbyAlternativesUC.Options{
			Location:               location,
			DefaultMaxDaysAhead:    cfg.Search.DefaultMaxDaysAhead,
			MaxDaysAhead:           cfg.Search.MaxDaysAhead,
			DefaultMaxAlternatives: cfg.Search.DefaultMaxAlternatives,
			MaxAlternatives:        cfg.Search.MaxLimit,
			HighlightThreshold:     cfg.Search.HighlightThreshold,
		},
		log,
	)

	// Инициализируем handlers
	findAvailableSlots := findAvailableSlotsHandler.NewHandler(findAvailableSlotsUseCase, log)
	findNearbyAlternatives := findNearbyAlternativesHandler.NewHandler(findNearbyAlternativesUseCase, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// Поиск свободных слотов с ранжированием по предпочтениям
	api.HandleFunc("/salons/{salonId}/available-slots", findAvailableSlots.Handle).Methods(http.MethodGet)

	// Подбор ближайших альтернатив к занятому времени
	api.HandleFunc("/salons/{salonId}/alternatives", findNearbyAlternatives.Handle).Methods(http.MethodGet)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем сбор метрик connection pool
	close(stopMetricsCh)

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
