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
	_ "modernc.org/sqlite"

	"github.com/m04kA/SMC-PresenceBooking/internal/api/handlers"
	adminDashboardHandler "github.com/m04kA/SMC-PresenceBooking/internal/api/handlers/admin_dashboard"
	adminLoginHandler "github.com/m04kA/SMC-PresenceBooking/internal/api/handlers/admin_login"
	adminLogoutHandler "github.com/m04kA/SMC-PresenceBooking/internal/api/handlers/admin_logout"
	cancelReservationHandler "github.com/m04kA/SMC-PresenceBooking/internal/api/handlers/cancel_reservation"
	createPresenceSeriesHandler "github.com/m04kA/SMC-PresenceBooking/internal/api/handlers/create_presence_series"
	createReservationHandler "github.com/m04kA/SMC-PresenceBooking/internal/api/handlers/create_reservation"
	deletePresenceHandler "github.com/m04kA/SMC-PresenceBooking/internal/api/handlers/delete_presence"
	deleteReservationHandler "github.com/m04kA/SMC-PresenceBooking/internal/api/handlers/delete_reservation"
	getReservationHandler "github.com/m04kA/SMC-PresenceBooking/internal/api/handlers/get_reservation"
	getReservationCalendarHandler "github.com/m04kA/SMC-PresenceBooking/internal/api/handlers/get_reservation_calendar"
	getSlotHandler "github.com/m04kA/SMC-PresenceBooking/internal/api/handlers/get_slot"
	healthHandler "github.com/m04kA/SMC-PresenceBooking/internal/api/handlers/health"
	listPresencesHandler "github.com/m04kA/SMC-PresenceBooking/internal/api/handlers/list_presences"
	listReservationsHandler "github.com/m04kA/SMC-PresenceBooking/internal/api/handlers/list_reservations"
	listSlotsHandler "github.com/m04kA/SMC-PresenceBooking/internal/api/handlers/list_slots"
	savePresenceHandler "github.com/m04kA/SMC-PresenceBooking/internal/api/handlers/save_presence"
	updateReservationHandler "github.com/m04kA/SMC-PresenceBooking/internal/api/handlers/update_reservation"
	"github.com/m04kA/SMC-PresenceBooking/internal/api/middleware"
	"github.com/m04kA/SMC-PresenceBooking/internal/config"
	"github.com/m04kA/SMC-PresenceBooking/internal/infra/storage/migrations"
	presenceRepo "github.com/m04kA/SMC-PresenceBooking/internal/infra/storage/presence"
	reservationRepo "github.com/m04kA/SMC-PresenceBooking/internal/infra/storage/reservation"
	slotRepo "github.com/m04kA/SMC-PresenceBooking/internal/infra/storage/slot"
	"github.com/m04kA/SMC-PresenceBooking/internal/integrations/mailer"
	"github.com/m04kA/SMC-PresenceBooking/internal/jobs/retention"
	authService "github.com/m04kA/SMC-PresenceBooking/internal/service/auth"
	presencesService "github.com/m04kA/SMC-PresenceBooking/internal/service/presences"
	reservationsService "github.com/m04kA/SMC-PresenceBooking/internal/service/reservations"
	slotsService "github.com/m04kA/SMC-PresenceBooking/internal/service/slots"
	cancelReservationUC "github.com/m04kA/SMC-PresenceBooking/internal/usecase/cancel_reservation"
	createPresenceSeriesUC "github.com/m04kA/SMC-PresenceBooking/internal/usecase/create_presence_series"
	createReservationUC "github.com/m04kA/SMC-PresenceBooking/internal/usecase/create_reservation"
	deletePresenceUC "github.com/m04kA/SMC-PresenceBooking/internal/usecase/delete_presence"
	savePresenceUC "github.com/m04kA/SMC-PresenceBooking/internal/usecase/save_presence"
	updateReservationUC "github.com/m04kA/SMC-PresenceBooking/internal/usecase/update_reservation"
	"github.com/m04kA/SMC-PresenceBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-PresenceBooking/pkg/logger"
	"github.com/m04kA/SMC-PresenceBooking/pkg/metrics"
	"github.com/m04kA/SMC-PresenceBooking/pkg/sqlbuilder"
	"github.com/m04kA/SMC-PresenceBooking/pkg/txmanager"
)

const healthPath = "/healthz"

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

	log.Info("Starting SMC-PresenceBooking...")
	log.Info("Configuration loaded from config.toml")

	location := cfg.Booking.Location()
	log.Info("Event timezone: %s", location)

	// Инициализируем метрики (если включены)
	// При выключенных метриках коллектор nil: все методы безопасны для nil
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	dialect, err := sqlbuilder.ParseDialect(cfg.Database.Driver)
	if err != nil {
		log.Fatal("Unsupported database driver: %v", err)
	}

	// Подключаемся к базе данных
	rawDB, err := sql.Open(cfg.Database.SQLDriverName(), cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer rawDB.Close()

	// Настраиваем connection pool
	rawDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	rawDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	rawDB.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := rawDB.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	if dialect == sqlbuilder.SQLite {
		log.Info("Successfully connected to database (sqlite, path=%s)", cfg.Database.Path)
	} else {
		log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
			cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)
	}

	db := dbmetrics.WrapWithDefault(rawDB, metricsCollector, stopMetricsCh)

	// Применяем миграции схемы
	migrateCtx, migrateCancel := context.WithTimeout(context.Background(), time.Minute)
	if err := migrations.Apply(migrateCtx, db, dialect, log); err != nil {
		migrateCancel()
		log.Fatal("Failed to apply migrations: %v", err)
	}
	migrateCancel()

	// Инициализируем репозитории
	presenceRepository := presenceRepo.NewRepository(db, dialect)
	slotRepository := slotRepo.NewRepository(db, dialect)
	reservationRepository := reservationRepo.NewRepository(db, dialect)
	txManager := txmanager.NewTransactionManager(db)

	// Инициализируем интеграционных клиентов
	mailClient := mailer.NewClient(mailer.Config{
		Enabled:       cfg.Mailer.Enabled,
		BaseURL:       cfg.Mailer.URL,
		APIKey:        cfg.Mailer.APIKey,
		From:          cfg.Mailer.From,
		PublicBaseURL: cfg.Mailer.PublicBaseURL,
		Timeout:       time.Duration(cfg.Mailer.Timeout) * time.Second,
		Location:      location,
	}, log)
	if cfg.Mailer.Enabled {
		log.Info("Mailer enabled (url=%s, timeout=%ds)", cfg.Mailer.URL, cfg.Mailer.Timeout)
	} else {
		log.Info("Mailer disabled, confirmations will not be sent")
	}

	// Инициализируем сервисы
	presenceSvc := presencesService.NewService(presenceRepository, slotRepository, txManager, location, log)
	slotSvc := slotsService.NewService(slotRepository, log)
	reservationSvc := reservationsService.NewService(
		reservationRepository,
		metricsCollector,
		cfg.Booking.ReservationListLimit,
		log,
	)
	authSvc := authService.NewService(authService.Config{
		Password:     cfg.Admin.Password,
		PasswordHash: cfg.Admin.PasswordHash,
		Secret:       []byte(cfg.Admin.JWTSecret),
		SessionTTL:   cfg.Admin.SessionDuration(),
	}, log)

	// Инициализируем use cases
	createReservationUseCase := createReservationUC.NewUseCase(
		slotSvc,
		reservationRepository,
		mailClient,
		metricsCollector,
		log,
	)
	updateReservationUseCase := updateReservationUC.NewUseCase(
		reservationSvc,
		reservationRepository,
		metricsCollector,
		log,
	)
	cancelReservationUseCase := cancelReservationUC.NewUseCase(
		reservationSvc,
		reservationRepository,
		metricsCollector,
		log,
	)
	savePresenceUseCase := savePresenceUC.NewUseCase(presenceSvc, metricsCollector, log)
	deletePresenceUseCase := deletePresenceUC.NewUseCase(presenceSvc, metricsCollector, log)
	createPresenceSeriesUseCase := createPresenceSeriesUC.NewUseCase(presenceSvc, metricsCollector, log)

	// Инициализируем handlers
	sessionCookie := handlers.SessionCookie{Name: cfg.Admin.CookieName, Secure: cfg.Admin.CookieSecure}

	listSlots := listSlotsHandler.NewHandler(slotSvc, log)
	getSlot := getSlotHandler.NewHandler(slotSvc, log)
	createReservation := createReservationHandler.NewHandler(createReservationUseCase, log)
	getReservation := getReservationHandler.NewHandler(reservationSvc, log)
	getReservationCalendar := getReservationCalendarHandler.NewHandler(reservationSvc, log)
	updateReservation := updateReservationHandler.NewHandler(updateReservationUseCase, log)
	cancelReservation := cancelReservationHandler.NewHandler(cancelReservationUseCase, log)
	health := healthHandler.NewHandler(db, log)

	adminLogin := adminLoginHandler.NewHandler(authSvc, sessionCookie, log)
	adminLogout := adminLogoutHandler.NewHandler(sessionCookie, log)
	adminDashboard := adminDashboardHandler.NewHandler(
		presenceSvc,
		reservationSvc,
		cfg.Dashboard.ReadTimeoutDuration(),
		healthPath,
		log,
	)
	listPresences := listPresencesHandler.NewHandler(presenceSvc, log)
	savePresence := savePresenceHandler.NewHandler(savePresenceUseCase, log)
	createPresenceSeries := createPresenceSeriesHandler.NewHandler(createPresenceSeriesUseCase, log)
	deletePresence := deletePresenceHandler.NewHandler(deletePresenceUseCase, log)
	listReservations := listReservationsHandler.NewHandler(reservationSvc, log)
	deleteReservation := deleteReservationHandler.NewHandler(reservationSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// Проверка живости
	r.HandleFunc(healthPath, health.Handle).Methods(http.MethodGet)

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// --- Слоты ---
	api.HandleFunc("/slots", listSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/slots/{slotId:[0-9]+}", getSlot.Handle).Methods(http.MethodGet)
	api.HandleFunc("/slots/{slotId:[0-9]+}/reservations", createReservation.Handle).Methods(http.MethodPost)

	// --- Бронирования по токену ---
	api.HandleFunc("/reservations/{token}", getReservation.Handle).Methods(http.MethodGet)
	api.HandleFunc("/reservations/{token}/calendar.ics", getReservationCalendar.Handle).Methods(http.MethodGet)
	api.HandleFunc("/reservations/{token}", updateReservation.Handle).Methods(http.MethodPut)
	api.HandleFunc("/reservations/{token}", cancelReservation.Handle).Methods(http.MethodDelete)

	// --- Вход администратора ---
	api.HandleFunc("/admin/login", adminLogin.Handle).Methods(http.MethodPost)

	// ============================================================
	// ADMIN ROUTES (требуют cookie сессии администратора)
	// ============================================================

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.AdminAuth(authSvc, cfg.Admin.CookieName, cfg.Admin.LoginPath, log))

	admin.HandleFunc("/logout", adminLogout.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/dashboard", adminDashboard.Handle).Methods(http.MethodGet)

	// --- Присутствия ---
	admin.HandleFunc("/presences", listPresences.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/presences", savePresence.HandleCreate).Methods(http.MethodPost)
	admin.HandleFunc("/presences/series", createPresenceSeries.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/presences/{presenceId:[0-9]+}", savePresence.HandleUpdate).Methods(http.MethodPut)
	admin.HandleFunc("/presences/{presenceId:[0-9]+}", deletePresence.Handle).Methods(http.MethodDelete)

	// --- Бронирования ---
	admin.HandleFunc("/reservations", listReservations.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/reservations/{reservationId:[0-9]+}", deleteReservation.Handle).Methods(http.MethodDelete)

	// Фоновая очистка прошедших присутствий
	var retentionJob *retention.Job
	if cfg.Retention.Enabled {
		retentionJob = retention.NewJob(presenceSvc, metricsCollector, cfg.Retention.KeepDays, location, log)
		if err := retentionJob.Start(cfg.Retention.Schedule); err != nil {
			log.Fatal("Failed to start retention job: %v", err)
		}
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

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	if retentionJob != nil {
		retentionJob.Stop(shutdownCtx)
		log.Info("Retention job stopped")
	}

	// Останавливаем сбор метрик connection pool
	close(stopMetricsCh)

	log.Info("Server stopped gracefully")
}
