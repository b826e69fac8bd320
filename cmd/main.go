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
	"github.com/prometheus/client_golang/prometheus/promhttp"

	cancelBookingHandler "github.com/amswalks/AWT-BookingFunnel/internal/api/handlers/cancel_booking"
	closeSessionHandler "github.com/amswalks/AWT-BookingFunnel/internal/api/handlers/close_session"
	confirmBookingHandler "github.com/amswalks/AWT-BookingFunnel/internal/api/handlers/confirm_booking"
	enrichContactHandler "github.com/amswalks/AWT-BookingFunnel/internal/api/handlers/enrich_contact"
	getAvailableSlotsHandler "github.com/amswalks/AWT-BookingFunnel/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/amswalks/AWT-BookingFunnel/internal/api/handlers/get_booking"
	getLastBookingHandler "github.com/amswalks/AWT-BookingFunnel/internal/api/handlers/get_last_booking"
	getSessionHandler "github.com/amswalks/AWT-BookingFunnel/internal/api/handlers/get_session"
	goBackHandler "github.com/amswalks/AWT-BookingFunnel/internal/api/handlers/go_back"
	listTourTimesHandler "github.com/amswalks/AWT-BookingFunnel/internal/api/handlers/list_tour_times"
	requestPrivateTourHandler "github.com/amswalks/AWT-BookingFunnel/internal/api/handlers/request_private_tour"
	rescheduleBookingHandler "github.com/amswalks/AWT-BookingFunnel/internal/api/handlers/reschedule_booking"
	selectDateHandler "github.com/amswalks/AWT-BookingFunnel/internal/api/handlers/select_date"
	selectTimeHandler "github.com/amswalks/AWT-BookingFunnel/internal/api/handlers/select_time"
	setGuestsHandler "github.com/amswalks/AWT-BookingFunnel/internal/api/handlers/set_guests"
	setPrivateGuestsHandler "github.com/amswalks/AWT-BookingFunnel/internal/api/handlers/set_private_guests"
	startSessionHandler "github.com/amswalks/AWT-BookingFunnel/internal/api/handlers/start_session"
	updateBookingHandler "github.com/amswalks/AWT-BookingFunnel/internal/api/handlers/update_booking"
	"github.com/amswalks/AWT-BookingFunnel/internal/api/middleware"
	"github.com/amswalks/AWT-BookingFunnel/internal/config"
	"github.com/amswalks/AWT-BookingFunnel/internal/infra/cache"
	sessionRepo "github.com/amswalks/AWT-BookingFunnel/internal/infra/storage/session"
	bookingAPIClient "github.com/amswalks/AWT-BookingFunnel/internal/integrations/bookingapi"
	privateToursClient "github.com/amswalks/AWT-BookingFunnel/internal/integrations/privatetours"
	bookingsService "github.com/amswalks/AWT-BookingFunnel/internal/service/bookings"
	catalogService "github.com/amswalks/AWT-BookingFunnel/internal/service/catalog"
	sessionsService "github.com/amswalks/AWT-BookingFunnel/internal/service/sessions"
	confirmBookingUC "github.com/amswalks/AWT-BookingFunnel/internal/usecase/confirm_booking"
	enrichContactUC "github.com/amswalks/AWT-BookingFunnel/internal/usecase/enrich_contact"
	getAvailableSlotsUC "github.com/amswalks/AWT-BookingFunnel/internal/usecase/get_available_slots"
	requestPrivateTourUC "github.com/amswalks/AWT-BookingFunnel/internal/usecase/request_private_tour"
	rescheduleBookingUC "github.com/amswalks/AWT-BookingFunnel/internal/usecase/reschedule_booking"
	"github.com/amswalks/AWT-BookingFunnel/pkg/dbmetrics"
	"github.com/amswalks/AWT-BookingFunnel/pkg/logger"
	"github.com/amswalks/AWT-BookingFunnel/pkg/metrics"
	"github.com/amswalks/AWT-BookingFunnel/pkg/simpletxmanager"
	"github.com/amswalks/AWT-BookingFunnel/pkg/txmanager"
)

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

	log.Info("Starting AWT-BookingFunnel...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Часовой пояс и отсечка по времени старта для площадки
	venueLoc, err := time.LoadLocation(cfg.Venue.Timezone)
	if err != nil {
		log.Fatal("Failed to load venue timezone %q: %v", cfg.Venue.Timezone, err)
	}
	cutoff := time.Duration(cfg.Venue.CutoffMinutes) * time.Minute
	log.Info("Venue timezone=%s, same-day cutoff=%s", cfg.Venue.Timezone, cutoff)

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

	// Подключаемся к Redis (кеш каталога туров и последних бронирований)
	redisClient, err := cache.NewRedisClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		log.Fatal("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()
	tourCache := cache.New(redisClient, time.Duration(cfg.Redis.CatalogTTL)*time.Second, log)
	log.Info("Successfully connected to Redis (addr=%s, db=%d)", cfg.Redis.Addr, cfg.Redis.DB)

	// Инициализируем интеграционных клиентов
	platformClient := bookingAPIClient.NewClient(
		cfg.BookingAPI.URL,
		cfg.BookingAPI.APIKey,
		time.Duration(cfg.BookingAPI.Timeout)*time.Second,
		log,
	)
	privateClient := privateToursClient.NewClient(
		cfg.PrivateTours.URL,
		time.Duration(cfg.PrivateTours.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (BookingAPI=%s timeout=%ds, PrivateTours=%s timeout=%ds)",
		cfg.BookingAPI.URL, cfg.BookingAPI.Timeout, cfg.PrivateTours.URL, cfg.PrivateTours.Timeout)

	// Интерфейс для transaction manager (используется в сервисах и usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	// Инициализируем репозиторий (с метриками или без)
	var sessionRepository *sessionRepo.Repository

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		sessionRepository = sessionRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		sessionRepository = sessionRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	sessionSvc := sessionsService.NewService(
		sessionRepository,
		platformClient,
		tourCache,
		txMgr,
		&sessionsService.RealTimeProvider{},
		venueLoc,
		cutoff,
		log,
	)
	bookingSvc := bookingsService.NewService(platformClient, log)
	catalogSvc := catalogService.NewService(platformClient, tourCache, cfg.Venue.DefaultTourTitle, log)

	// Инициализируем use cases
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(platformClient, venueLoc, cutoff, log)
	confirmBookingUseCase := confirmBookingUC.NewUseCase(
		sessionRepository,
		platformClient,
		catalogSvc,
		tourCache,
		txMgr,
		venueLoc,
		cutoff,
		log,
	)
	rescheduleBookingUseCase := rescheduleBookingUC.NewUseCase(
		sessionRepository,
		platformClient,
		catalogSvc,
		tourCache,
		txMgr,
		venueLoc,
		cutoff,
		log,
	)
	enrichContactUseCase := enrichContactUC.NewUseCase(sessionRepository, platformClient, txMgr, log)
	requestPrivateTourUseCase := requestPrivateTourUC.NewUseCase(sessionRepository, privateClient, txMgr, log)

	// Инициализируем handlers
	startSession := startSessionHandler.NewHandler(sessionSvc, catalogSvc, getAvailableSlotsUseCase, log)
	getSession := getSessionHandler.NewHandler(sessionSvc, getAvailableSlotsUseCase, log)
	selectDate := selectDateHandler.NewHandler(sessionSvc, getAvailableSlotsUseCase, log)
	setGuests := setGuestsHandler.NewHandler(sessionSvc, log)
	selectTime := selectTimeHandler.NewHandler(sessionSvc, log)
	goBack := goBackHandler.NewHandler(sessionSvc, log)
	setPrivateGuests := setPrivateGuestsHandler.NewHandler(sessionSvc, log)
	closeSession := closeSessionHandler.NewHandler(sessionSvc, log)
	getLastBooking := getLastBookingHandler.NewHandler(sessionSvc, log)
	confirmBooking := confirmBookingHandler.NewHandler(confirmBookingUseCase, log)
	enrichContact := enrichContactHandler.NewHandler(enrichContactUseCase, log)
	rescheduleBooking := rescheduleBookingHandler.NewHandler(rescheduleBookingUseCase, log)
	requestPrivateTour := requestPrivateTourHandler.NewHandler(requestPrivateTourUseCase, log)
	listTourTimes := listTourTimesHandler.NewHandler(catalogSvc, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	updateBooking := updateBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)

	// Фоновая чистка заброшенных сессий
	sessionTTL := time.Duration(cfg.Sessions.TTLHours) * time.Hour
	cleanupInterval := time.Duration(cfg.Sessions.CleanupIntervalMinutes) * time.Minute
	stopCleanupCh := make(chan struct{})
	go func() {
		ticker := time.NewTicker(cleanupInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				deleted, err := sessionRepository.DeleteStale(context.Background(), time.Now().Add(-sessionTTL))
				if err != nil {
					log.Error("Session cleanup failed: %v", err)
					continue
				}
				if deleted > 0 {
					log.Info("Session cleanup removed %d stale sessions", deleted)
				}
			case <-stopCleanupCh:
				return
			}
		}
	}()
	log.Info("Session cleanup started (ttl=%s, interval=%s)", sessionTTL, cleanupInterval)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// --- Сессии визарда бронирования ---
	api.HandleFunc("/sessions", startSession.Handle).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{sessionId}", getSession.Handle).Methods(http.MethodGet)
	api.HandleFunc("/sessions/{sessionId}", closeSession.Handle).Methods(http.MethodDelete)
	api.HandleFunc("/sessions/{sessionId}/date", selectDate.Handle).Methods(http.MethodPut)
	api.HandleFunc("/sessions/{sessionId}/guests", setGuests.Handle).Methods(http.MethodPut)
	api.HandleFunc("/sessions/{sessionId}/time", selectTime.Handle).Methods(http.MethodPut)
	api.HandleFunc("/sessions/{sessionId}/back", goBack.Handle).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{sessionId}/confirm", confirmBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{sessionId}/contact", enrichContact.Handle).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{sessionId}/reschedule", rescheduleBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{sessionId}/last-booking", getLastBooking.Handle).Methods(http.MethodGet)

	// --- Приватные туры ---
	api.HandleFunc("/sessions/{sessionId}/private/guests", setPrivateGuests.Handle).Methods(http.MethodPut)
	api.HandleFunc("/sessions/{sessionId}/private/request", requestPrivateTour.Handle).Methods(http.MethodPost)

	// --- Каталог и доступность ---
	api.HandleFunc("/tour-times", listTourTimes.Handle).Methods(http.MethodGet)
	api.HandleFunc("/availability", getAvailableSlots.Handle).Methods(http.MethodGet)

	// --- Управление существующими бронированиями ---
	api.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{bookingId}", updateBooking.Handle).Methods(http.MethodPatch)
	api.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPost)

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

	// Останавливаем фоновые задачи
	close(stopCleanupCh)
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
