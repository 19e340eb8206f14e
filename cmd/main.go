package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	createBookingHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/create_booking"
	deleteBookingHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/delete_booking"
	getBookingHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/get_booking"
	listLocationBookingsHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/list_location_bookings"
	suggestTimesHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/suggest_times"
	unavailableDaysHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/unavailable_days"
	"github.com/m04kA/SMC-SalonBooking/internal/api/middleware"
	"github.com/m04kA/SMC-SalonBooking/internal/config"
	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/internal/infra/locker"
	bookingRepo "github.com/m04kA/SMC-SalonBooking/internal/infra/storage/booking"
	catalogRepo "github.com/m04kA/SMC-SalonBooking/internal/infra/storage/catalog"
	"github.com/m04kA/SMC-SalonBooking/internal/infra/storage/memory"
	bookingsService "github.com/m04kA/SMC-SalonBooking/internal/service/bookings"
	createBookingUC "github.com/m04kA/SMC-SalonBooking/internal/usecase/create_booking"
	suggestTimesUC "github.com/m04kA/SMC-SalonBooking/internal/usecase/suggest_times"
	unavailableDaysUC "github.com/m04kA/SMC-SalonBooking/internal/usecase/unavailable_days"
	"github.com/m04kA/SMC-SalonBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-SalonBooking/pkg/logger"
	"github.com/m04kA/SMC-SalonBooking/pkg/metrics"
	"github.com/m04kA/SMC-SalonBooking/pkg/txmanager"
)

// bookingStore хранилище бронирований (PostgreSQL или память)
type bookingStore interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetWithFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
	Delete(ctx context.Context, id int64) error
}

// txManager транзакции для create_booking
type txManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

func main() {
	configPath := flag.String("config", "config.toml", "path to the TOML configuration file")
	flag.Parse()

	// Загружаем конфигурацию
	cfg, err := config.Load(*configPath)
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

	log.Info("Starting SMC-SalonBooking...")
	log.Info("Configuration loaded from %s", *configPath)

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	defaultZone := cfg.Booking.Location()

	// Инициализируем хранилище
	var (
		catalog  catalogRepo.Reader
		bookings bookingStore
		txMgr    txManager
	)

	switch cfg.Storage.Driver {
	case config.StorageDriverMemory:
		store, err := memory.LoadSeedFile(cfg.Storage.SeedFile)
		if err != nil {
			log.Fatal("Failed to load seed file: %v", err)
		}
		catalog = store
		bookings = store
		txMgr = memory.NewTxManager()
		log.Info("Using in-memory storage seeded from %s", cfg.Storage.SeedFile)

	default:
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

		// Без включенных метрик обертка просто проксирует запросы
		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopCh)

		catalog = catalogRepo.NewRepository(wrappedDB)
		bookings = bookingRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB, txmanager.WithMaxRetries(cfg.Booking.SerializationRetries))
	}

	// Кэш справочников
	if ttl := cfg.Storage.CacheTTL(); ttl > 0 {
		catalog = catalogRepo.NewCachedRepository(catalog, ttl)
		log.Info("Catalog cache enabled (ttl=%s)", ttl)
	}

	// Блокировка мастера на время сохранения бронирования
	var staffLocker createBookingUC.Locker
	switch cfg.Booking.LockBackend {
	case config.LockBackendRedis:
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer rdb.Close()

		pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		err := rdb.Ping(pingCtx).Err()
		cancel()
		if err != nil {
			log.Fatal("Failed to ping redis at %s: %v", cfg.Redis.Addr, err)
		}

		staffLocker = locker.NewRedis(rdb, cfg.Booking.LockTTL())
		log.Info("Using redis staff locks (addr=%s, ttl=%s)", cfg.Redis.Addr, cfg.Booking.LockTTL())
	default:
		staffLocker = locker.NewLocal()
		log.Info("Using in-process staff locks")
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(bookings, catalog, defaultZone, log)

	// Инициализируем use cases
	suggestTimesUseCase := suggestTimesUC.NewUseCase(catalog, bookings, defaultZone, log)
	unavailableDaysUseCase := unavailableDaysUC.NewUseCase(catalog, bookings, defaultZone, log)
	createBookingUseCase := createBookingUC.NewUseCase(catalog, bookings, txMgr, staffLocker, defaultZone, log)
	if metricsCollector != nil {
		createBookingUseCase.WithConflictRecorder(metricsCollector)
	}

	// Инициализируем handlers
	suggestTimes := suggestTimesHandler.NewHandler(suggestTimesUseCase, log)
	unavailableDays := unavailableDaysHandler.NewHandler(unavailableDaysUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	deleteBooking := deleteBookingHandler.NewHandler(bookingSvc, log)
	listLocationBookings := listLocationBookingsHandler.NewHandler(bookingSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.AccessLog(log))

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	if cfg.RateLimit.Enabled {
		limiter := middleware.NewIPRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst).
			WithTrustedProxy(cfg.RateLimit.TrustProxy)
		go limiter.RunCleanup(time.Minute, stopCh)
		api.Use(middleware.RateLimit(limiter))
		log.Info("Rate limit enabled (rps=%.1f, burst=%d, trust_proxy=%t)",
			cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst, cfg.RateLimit.TrustProxy)
	}

	// --- Свободное время ---
	api.HandleFunc("/locations/{locationId}/suggested-times", suggestTimes.Handle).Methods(http.MethodGet)
	api.HandleFunc("/locations/{locationId}/unavailable-days", unavailableDays.Handle).Methods(http.MethodGet)

	// --- Бронирования ---
	api.HandleFunc("/locations/{locationId}/bookings", createBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/locations/{locationId}/bookings", listLocationBookings.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{bookingId}", deleteBooking.Handle).Methods(http.MethodDelete)

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
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем фоновые задачи (статистика пула, очистка лимитера)
	close(stopCh)

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
