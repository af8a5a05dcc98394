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

	"github.com/getsentry/sentry-go"
	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	cancelBookingHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/cancel_booking"
	completeBookingHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/complete_booking"
	createBookingHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/create_booking"
	getBookingHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/get_booking"
	getSessionHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/get_session"
	getSpotHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/get_spot"
	getUserBookingsHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/get_user_bookings"
	listSpotsHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/list_spots"
	loginHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/login"
	signupHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/signup"
	"github.com/m04kA/SMC-ParkingService/internal/api/middleware"
	"github.com/m04kA/SMC-ParkingService/internal/config"
	"github.com/m04kA/SMC-ParkingService/internal/domain"
	bookingStorage "github.com/m04kA/SMC-ParkingService/internal/infra/storage/bookings"
	spotStorage "github.com/m04kA/SMC-ParkingService/internal/infra/storage/spots"
	userStorage "github.com/m04kA/SMC-ParkingService/internal/infra/storage/users"
	"github.com/m04kA/SMC-ParkingService/internal/pricing"
	accountsService "github.com/m04kA/SMC-ParkingService/internal/service/accounts"
	bookingsService "github.com/m04kA/SMC-ParkingService/internal/service/bookings"
	spotsService "github.com/m04kA/SMC-ParkingService/internal/service/spots"
	"github.com/m04kA/SMC-ParkingService/internal/simulation"
	cancelBookingUC "github.com/m04kA/SMC-ParkingService/internal/usecase/cancel_booking"
	completeBookingUC "github.com/m04kA/SMC-ParkingService/internal/usecase/complete_booking"
	createBookingUC "github.com/m04kA/SMC-ParkingService/internal/usecase/create_booking"
	"github.com/m04kA/SMC-ParkingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ParkingService/pkg/logger"
	"github.com/m04kA/SMC-ParkingService/pkg/memtxmanager"
	"github.com/m04kA/SMC-ParkingService/pkg/metrics"
	"github.com/m04kA/SMC-ParkingService/pkg/simpletxmanager"
	"github.com/m04kA/SMC-ParkingService/pkg/txmanager"
)

// userRepository общий контракт драйверов хранилища пользователей
type userRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

// spotRepository общий контракт драйверов хранилища парковок
type spotRepository interface {
	GetByID(ctx context.Context, id string) (*domain.ParkingSpot, error)
	List(ctx context.Context) ([]*domain.ParkingSpot, error)
	Search(ctx context.Context, text string) ([]*domain.ParkingSpot, error)
	UpdateAvailability(ctx context.Context, id string, count int) (*domain.ParkingSpot, error)
}

// bookingRepository общий контракт драйверов хранилища бронирований
type bookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	GetByUserID(ctx context.Context, userID string, status *domain.BookingStatus) ([]*domain.Booking, error)
	Complete(ctx context.Context, id string, endTime time.Time, totalCost float64) error
	Cancel(ctx context.Context, id string) error
}

// txManager контракт транзакций для usecase-ов
type txManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
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

	log.Info("Starting SMC-ParkingService...")
	log.Info("Configuration loaded from config.toml, storage driver=%s", cfg.Storage.Driver)

	// Инициализируем Sentry (если включен)
	if cfg.Sentry.Enabled {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:         cfg.Sentry.DSN,
			Environment: cfg.Sentry.Environment,
		}); err != nil {
			log.Fatal("Failed to initialize Sentry: %v", err)
		}
		defer sentry.Flush(2 * time.Second)
		log.Info("Sentry enabled, environment=%s", cfg.Sentry.Environment)
	}

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Инициализируем хранилище по выбранному драйверу
	var (
		userRepo    userRepository
		spotRepo    spotRepository
		bookingRepo bookingRepository
		txMgr       txManager
	)

	switch cfg.Storage.Driver {
	case config.DriverPostgres:
		db, err := sql.Open("postgres", cfg.Database.DSN())
		if err != nil {
			log.Fatal("Failed to connect to database: %v", err)
		}
		defer db.Close()

		// Настраиваем connection pool
		db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
		db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
		db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

		if err := db.Ping(); err != nil {
			log.Fatal("Failed to ping database: %v", err)
		}
		log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
			cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

		if cfg.Metrics.Enabled {
			wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
			log.Info("Database metrics collection started")

			userRepo = userStorage.NewRepository(wrappedDB)
			spotRepo = spotStorage.NewRepository(wrappedDB)
			bookingRepo = bookingStorage.NewRepository(wrappedDB)
			txMgr = txmanager.NewTransactionManager(wrappedDB)
		} else {
			userRepo = userStorage.NewRepository(db)
			spotRepo = spotStorage.NewRepository(db)
			bookingRepo = bookingStorage.NewRepository(db)
			txMgr = simpletxmanager.NewTransactionManager(db)
		}

	case config.DriverMemory:
		userRepo = userStorage.NewMemoryRepository()
		spotRepo = spotStorage.NewMemoryRepository(spotStorage.SeedSpots())
		bookingRepo = bookingStorage.NewMemoryRepository()
		txMgr = memtxmanager.NewTransactionManager()
		log.Info("In-memory storage initialized with seed parking spots")

	default:
		log.Fatal("Unknown storage driver: %s", cfg.Storage.Driver)
	}

	// Инициализируем сервисы
	accountsSvc := accountsService.NewService(userRepo, log)
	spotsSvc := spotsService.NewService(spotRepo, log)
	bookingsSvc := bookingsService.NewService(bookingRepo, log)

	pricingOpts := &pricing.Options{
		GSTRate:    cfg.Pricing.GSTRate,
		ServiceFee: cfg.Pricing.ServiceFee,
	}

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(bookingRepo, spotRepo, userRepo, txMgr, log)
	completeBookingUseCase := completeBookingUC.NewUseCase(bookingRepo, spotRepo, txMgr, pricingOpts, log)
	cancelBookingUseCase := cancelBookingUC.NewUseCase(bookingRepo, spotRepo, txMgr, log)

	// Инициализируем handlers
	signup := signupHandler.NewHandler(accountsSvc, log)
	login := loginHandler.NewHandler(accountsSvc, log)
	listSpots := listSpotsHandler.NewHandler(spotsSvc, log)
	getSpot := getSpotHandler.NewHandler(spotsSvc, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	completeBooking := completeBookingHandler.NewHandler(completeBookingUseCase, log)
	cancelBooking := cancelBookingHandler.NewHandler(cancelBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingsSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingsSvc, log)
	getSession := getSessionHandler.NewHandler(bookingsSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	r.Use(middleware.RecoveryMiddleware(log))

	if cfg.RateLimit.Enabled {
		r.Use(middleware.RateLimitMiddleware(cfg.RateLimit.RPS, cfg.RateLimit.Burst))
		log.Info("Rate limiting enabled: rps=%.1f, burst=%d", cfg.RateLimit.RPS, cfg.RateLimit.Burst)
	}

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api").Subrouter()

	// --- Аутентификация ---
	api.HandleFunc("/auth/signup", signup.Handle).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", login.Handle).Methods(http.MethodPost)

	// --- Парковки ---
	api.HandleFunc("/parking-spots", listSpots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/parking-spots/{spotId}", getSpot.Handle).Methods(http.MethodGet)

	// --- Бронирования ---
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{bookingId}/complete", completeBooking.Handle).Methods(http.MethodPatch)
	api.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)
	api.HandleFunc("/bookings/{bookingId}/session", getSession.Handle).Methods(http.MethodGet)

	// --- История пользователя ---
	api.HandleFunc("/users/{userId}/bookings", getUserBookings.Handle).Methods(http.MethodGet)

	// Фоновая симуляция доступности (для демо-стендов)
	var simulator *simulation.Simulator
	if cfg.Simulation.Enabled {
		simulator = simulation.New(spotsSvc, log, time.Duration(cfg.Simulation.IntervalSeconds)*time.Second)
		simulator.Start()
	}

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

	if simulator != nil {
		simulator.Stop()
	}

	// Останавливаем сбор метрик connection pool
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

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
