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
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	cancelBookingHandler "github.com/m04kA/SC-SchedulingService/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/m04kA/SC-SchedulingService/internal/api/handlers/create_booking"
	getBookingHandler "github.com/m04kA/SC-SchedulingService/internal/api/handlers/get_booking"
	getMyScheduleHandler "github.com/m04kA/SC-SchedulingService/internal/api/handlers/get_my_schedule"
	getStaffAvailabilityHandler "github.com/m04kA/SC-SchedulingService/internal/api/handlers/get_staff_availability"
	listBookingsHandler "github.com/m04kA/SC-SchedulingService/internal/api/handlers/list_bookings"
	listStaffHandler "github.com/m04kA/SC-SchedulingService/internal/api/handlers/list_staff"
	updateBookingStatusHandler "github.com/m04kA/SC-SchedulingService/internal/api/handlers/update_booking_status"
	updateStaffScheduleHandler "github.com/m04kA/SC-SchedulingService/internal/api/handlers/update_staff_schedule"
	"github.com/m04kA/SC-SchedulingService/internal/api/middleware"
	"github.com/m04kA/SC-SchedulingService/internal/config"
	bookingRepo "github.com/m04kA/SC-SchedulingService/internal/infra/storage/booking"
	staffRepo "github.com/m04kA/SC-SchedulingService/internal/infra/storage/staff"
	clubServiceClient "github.com/m04kA/SC-SchedulingService/internal/integrations/clubservice"
	bookingsService "github.com/m04kA/SC-SchedulingService/internal/service/bookings"
	staffService "github.com/m04kA/SC-SchedulingService/internal/service/staff"
	createBookingUC "github.com/m04kA/SC-SchedulingService/internal/usecase/create_booking"
	getStaffAvailabilityUC "github.com/m04kA/SC-SchedulingService/internal/usecase/get_staff_availability"
	"github.com/m04kA/SC-SchedulingService/pkg/dbmetrics"
	"github.com/m04kA/SC-SchedulingService/pkg/logger"
	"github.com/m04kA/SC-SchedulingService/pkg/metrics"
	"github.com/m04kA/SC-SchedulingService/pkg/simpletxmanager"
	"github.com/m04kA/SC-SchedulingService/pkg/txmanager"
)

func main() {
	// Подхватываем .env для локального запуска, в проде его нет
	_ = godotenv.Load()

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

	log.Info("Starting SC-SchedulingService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
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

	// Инициализируем клиента ClubService (реестр клиентов и каталог услуг)
	clubClient := clubServiceClient.NewClient(
		cfg.ClubService.URL,
		time.Duration(cfg.ClubService.Timeout)*time.Second,
		log,
	)
	log.Info("ClubService client initialized (url=%s, timeout=%ds)",
		cfg.ClubService.URL, cfg.ClubService.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository *bookingRepo.Repository
		staffRepository   *staffRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		staffRepository = staffRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		staffRepository = staffRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	staffSvc := staffService.NewService(staffRepository, log)
	bookingSvc := bookingsService.NewService(bookingRepository, staffRepository, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		staffRepository,
		clubClient,
		txMgr,
		log,
	)

	getStaffAvailabilityUseCase := getStaffAvailabilityUC.NewUseCase(
		staffRepository,
		bookingRepository,
		log,
	)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getStaffAvailability := getStaffAvailabilityHandler.NewHandler(getStaffAvailabilityUseCase, log)
	listStaff := listStaffHandler.NewHandler(staffSvc, log)
	getMySchedule := getMyScheduleHandler.NewHandler(staffSvc, getStaffAvailabilityUseCase, log)
	updateStaffSchedule := updateStaffScheduleHandler.NewHandler(staffSvc, log)
	listBookings := listBookingsHandler.NewHandler(bookingSvc, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(bookingSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	r.Use(middleware.RequestID)

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

	// API prefix, все ручки за gateway, требуют X-User-ID
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.Auth)

	// --- Сотрудники и расписание ---
	// Список сотрудников клуба
	api.HandleFunc("/staff", listStaff.Handle).Methods(http.MethodGet)

	// Собственное расписание сотрудника
	api.HandleFunc("/staff/me", getMySchedule.Handle).Methods(http.MethodGet)

	// Расклад слотов сотрудника на дату
	api.HandleFunc("/staff/{staffId}/availability", getStaffAvailability.Handle).Methods(http.MethodGet)

	// Обновление рабочего расписания сотрудника
	api.HandleFunc("/staff/{staffId}/schedule", updateStaffSchedule.Handle).Methods(http.MethodPut)

	// --- Записи на услуги ---
	// Создание записи
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Список записей с фильтрацией
	api.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)

	// Получение записи по ID
	api.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// Отмена записи
	api.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	// Завершение записи
	api.HandleFunc("/bookings/{bookingId}/status", updateBookingStatus.Handle).Methods(http.MethodPatch)

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
