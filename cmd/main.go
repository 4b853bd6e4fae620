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
	_ "time/tzdata"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	activateDayHandler "github.com/m04kA/SMC-ArtistCalendar/internal/api/handlers/activate_day"
	addAvailabilityHandler "github.com/m04kA/SMC-ArtistCalendar/internal/api/handlers/add_availability"
	applyRangeHandler "github.com/m04kA/SMC-ArtistCalendar/internal/api/handlers/apply_range"
	createSelectionHandler "github.com/m04kA/SMC-ArtistCalendar/internal/api/handlers/create_selection"
	deleteSelectionHandler "github.com/m04kA/SMC-ArtistCalendar/internal/api/handlers/delete_selection"
	getAvailabilityHandler "github.com/m04kA/SMC-ArtistCalendar/internal/api/handlers/get_availability"
	getSelectionHandler "github.com/m04kA/SMC-ArtistCalendar/internal/api/handlers/get_selection"
	removeAvailabilityHandler "github.com/m04kA/SMC-ArtistCalendar/internal/api/handlers/remove_availability"
	setSelectionHandler "github.com/m04kA/SMC-ArtistCalendar/internal/api/handlers/set_selection"
	"github.com/m04kA/SMC-ArtistCalendar/internal/api/middleware"
	"github.com/m04kA/SMC-ArtistCalendar/internal/config"
	artistRepo "github.com/m04kA/SMC-ArtistCalendar/internal/infra/storage/artist"
	availabilityRepo "github.com/m04kA/SMC-ArtistCalendar/internal/infra/storage/availability"
	selectionStore "github.com/m04kA/SMC-ArtistCalendar/internal/infra/storage/selection"
	availabilityService "github.com/m04kA/SMC-ArtistCalendar/internal/service/availability"
	selectionService "github.com/m04kA/SMC-ArtistCalendar/internal/service/selection"
	applyRangeUC "github.com/m04kA/SMC-ArtistCalendar/internal/usecase/apply_range"
	"github.com/m04kA/SMC-ArtistCalendar/pkg/dbmetrics"
	"github.com/m04kA/SMC-ArtistCalendar/pkg/logger"
	"github.com/m04kA/SMC-ArtistCalendar/pkg/metrics"
	"github.com/m04kA/SMC-ArtistCalendar/pkg/txmanager"
)

const defaultConfigPath = "config.toml"

func main() {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = defaultConfigPath
	}

	// Загружаем конфигурацию
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

	log.Info("Starting SMC-ArtistCalendar...")
	log.Info("Configuration loaded from %s", configPath)

	// Инициализируем метрики (если включены)
	var (
		metricsCollector   *metrics.Metrics
		dbObserver         dbmetrics.Observer
		transitionRecorder selectionService.TransitionRecorder
	)
	stopCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		dbObserver = metricsCollector
		transitionRecorder = metricsCollector
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

	// Без observer обёртка работает как прокси, поэтому одна ветка для обоих режимов
	wrappedDB := dbmetrics.WrapWithDefault(db, dbObserver, cfg.Metrics.ServiceName, stopCh)
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Репозитории и хранилища
	availabilityRepository := availabilityRepo.NewRepository(wrappedDB)
	artistRepository := artistRepo.NewRepository(wrappedDB)
	sessions := selectionStore.NewStore(cfg.Selection.TTL())
	go sweepSessions(sessions, cfg.Selection.TTL(), stopCh, log)

	// Сервисы
	clock := &selectionService.RealTimeProvider{}
	location := cfg.Selection.Location()

	selectionSvc := selectionService.NewService(
		sessions,
		artistRepository,
		transitionRecorder,
		clock,
		selectionService.Options{
			Location:     location,
			DisallowPast: cfg.Selection.DisallowPast,
		},
		log,
	)
	availabilitySvc := availabilityService.NewService(
		availabilityRepository,
		artistRepository,
		clock,
		location,
		cfg.Selection.DisallowPast,
		log,
	)

	// Use cases
	applyRangeUseCase := applyRangeUC.NewUseCase(
		availabilityRepository,
		artistRepository,
		selectionSvc,
		txMgr,
		cfg.Selection.MaxRangeDays,
		log,
	)

	// Handlers
	getAvailability := getAvailabilityHandler.NewHandler(availabilitySvc, log)
	addAvailability := addAvailabilityHandler.NewHandler(availabilitySvc, log)
	removeAvailability := removeAvailabilityHandler.NewHandler(availabilitySvc, log)
	createSelection := createSelectionHandler.NewHandler(selectionSvc, log)
	getSelection := getSelectionHandler.NewHandler(selectionSvc, log)
	activateDay := activateDayHandler.NewHandler(selectionSvc, log)
	setSelection := setSelectionHandler.NewHandler(selectionSvc, log)
	deleteSelection := deleteSelectionHandler.NewHandler(selectionSvc, log)
	applyRange := applyRangeHandler.NewHandler(applyRangeUseCase, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES
	// ============================================================

	api.HandleFunc("/artists/{artistId}/availability", getAvailability.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Доступность ---
	protected.HandleFunc("/artists/{artistId}/availability", addAvailability.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/artists/{artistId}/availability/{slotId}", removeAvailability.Handle).Methods(http.MethodDelete)

	// --- Выбор диапазона ---
	protected.HandleFunc("/artists/{artistId}/selections", createSelection.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/selections/{selectionId}", getSelection.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/selections/{selectionId}", setSelection.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/selections/{selectionId}", deleteSelection.Handle).Methods(http.MethodDelete)
	protected.HandleFunc("/selections/{selectionId}/days", activateDay.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/selections/{selectionId}/apply", applyRange.Handle).Methods(http.MethodPost)

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

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем сбор статистики пула и очистку сессий
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

// sweepSessions периодически удаляет истекшие сессии выбора
func sweepSessions(store *selectionStore.Store, ttl time.Duration, stopCh <-chan struct{}, log *logger.Logger) {
	interval := ttl / 2
	if interval < time.Minute {
		interval = time.Minute
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-stopCh:
			return
		case now := <-ticker.C:
			if removed := store.Sweep(now); removed > 0 {
				log.Info("Sweep: removed %d expired selection sessions, active=%d", removed, store.Len())
			}
		}
	}
}
