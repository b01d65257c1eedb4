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

	blockDayHandler "github.com/ameleshkina/consult-booking/internal/api/handlers/block_day"
	blockSlotHandler "github.com/ameleshkina/consult-booking/internal/api/handlers/block_slot"
	cancelBookingHandler "github.com/ameleshkina/consult-booking/internal/api/handlers/cancel_booking"
	completeBookingHandler "github.com/ameleshkina/consult-booking/internal/api/handlers/complete_booking"
	confirmPaymentHandler "github.com/ameleshkina/consult-booking/internal/api/handlers/confirm_payment"
	createBookingHandler "github.com/ameleshkina/consult-booking/internal/api/handlers/create_booking"
	getAvailableSlotsHandler "github.com/ameleshkina/consult-booking/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/ameleshkina/consult-booking/internal/api/handlers/get_booking"
	getClientBookingsHandler "github.com/ameleshkina/consult-booking/internal/api/handlers/get_client_bookings"
	getDayScheduleHandler "github.com/ameleshkina/consult-booking/internal/api/handlers/get_day_schedule"
	getSettingsHandler "github.com/ameleshkina/consult-booking/internal/api/handlers/get_settings"
	rescheduleBookingHandler "github.com/ameleshkina/consult-booking/internal/api/handlers/reschedule_booking"
	unblockSlotHandler "github.com/ameleshkina/consult-booking/internal/api/handlers/unblock_slot"
	updateSettingsHandler "github.com/ameleshkina/consult-booking/internal/api/handlers/update_settings"
	"github.com/ameleshkina/consult-booking/internal/api/middleware"
	"github.com/ameleshkina/consult-booking/internal/config"
	blockRepo "github.com/ameleshkina/consult-booking/internal/infra/storage/block"
	bookingRepo "github.com/ameleshkina/consult-booking/internal/infra/storage/booking"
	rescheduleRepo "github.com/ameleshkina/consult-booking/internal/infra/storage/reschedule"
	settingsRepo "github.com/ameleshkina/consult-booking/internal/infra/storage/settings"
	mailerClient "github.com/ameleshkina/consult-booking/internal/integrations/mailer"
	telegramClient "github.com/ameleshkina/consult-booking/internal/integrations/telegram"
	"github.com/ameleshkina/consult-booking/internal/notify"
	blocksService "github.com/ameleshkina/consult-booking/internal/service/blocks"
	bookingsService "github.com/ameleshkina/consult-booking/internal/service/bookings"
	settingsService "github.com/ameleshkina/consult-booking/internal/service/settings"
	createBookingUC "github.com/ameleshkina/consult-booking/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/ameleshkina/consult-booking/internal/usecase/get_available_slots"
	rescheduleBookingUC "github.com/ameleshkina/consult-booking/internal/usecase/reschedule_booking"
	"github.com/ameleshkina/consult-booking/pkg/dbmetrics"
	"github.com/ameleshkina/consult-booking/pkg/logger"
	"github.com/ameleshkina/consult-booking/pkg/metrics"
	"github.com/ameleshkina/consult-booking/pkg/simpletxmanager"
	"github.com/ameleshkina/consult-booking/pkg/txmanager"
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

	log.Info("Starting consult-booking service...")
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

	// Инициализируем каналы уведомлений (каждый опционален)
	var tgSender notify.TelegramSender
	if cfg.Telegram.Enabled {
		tg, err := telegramClient.NewClient(cfg.Telegram.Token, log)
		if err != nil {
			log.Fatal("Failed to initialize telegram client: %v", err)
		}
		tgSender = tg
		log.Info("Telegram notifications enabled (admin_chat_id=%d)", cfg.Telegram.AdminChatID)
	}

	var mailSender notify.MailSender
	if cfg.SMTP.Enabled {
		mailSender = mailerClient.NewClient(
			cfg.SMTP.Host,
			cfg.SMTP.Port,
			cfg.SMTP.Username,
			cfg.SMTP.Password,
			cfg.SMTP.From,
			log,
		)
		log.Info("Email notifications enabled (host=%s, from=%s)", cfg.SMTP.Host, cfg.SMTP.From)
	}

	notifier := notify.NewDispatcher(tgSender, mailSender, cfg.Telegram.AdminChatID, log)

	// Инициализируем репозитории и transaction manager (с метриками или без)
	var (
		bookingRepository    *bookingRepo.Repository
		blockRepository      *blockRepo.Repository
		settingsRepository   *settingsRepo.Repository
		rescheduleRepository *rescheduleRepo.Repository
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
		blockRepository = blockRepo.NewRepository(wrappedDB)
		settingsRepository = settingsRepo.NewRepository(wrappedDB)
		rescheduleRepository = rescheduleRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		blockRepository = blockRepo.NewRepository(db)
		settingsRepository = settingsRepo.NewRepository(db)
		rescheduleRepository = rescheduleRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(bookingRepository, notifier, log)
	blockSvc := blocksService.NewService(blockRepository, bookingRepository, settingsRepository, log)
	settingsSvc := settingsService.NewService(settingsRepository, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		blockRepository,
		settingsRepository,
		txMgr,
		notifier,
		log,
	)

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		bookingRepository,
		blockRepository,
		settingsRepository,
		log,
	)

	rescheduleBookingUseCase := rescheduleBookingUC.NewUseCase(
		bookingRepository,
		blockRepository,
		settingsRepository,
		rescheduleRepository,
		txMgr,
		notifier,
		log,
	)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	rescheduleBooking := rescheduleBookingHandler.NewHandler(rescheduleBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	confirmPayment := confirmPaymentHandler.NewHandler(bookingSvc, log)
	completeBooking := completeBookingHandler.NewHandler(bookingSvc, log)
	getClientBookings := getClientBookingsHandler.NewHandler(bookingSvc, log)
	getDaySchedule := getDayScheduleHandler.NewHandler(blockSvc, log)
	blockSlot := blockSlotHandler.NewHandler(blockSvc, log)
	blockDay := blockDayHandler.NewHandler(blockSvc, log)
	unblockSlot := unblockSlotHandler.NewHandler(blockSvc, log)
	getSettings := getSettingsHandler.NewHandler(settingsSvc, log)
	updateSettings := updateSettingsHandler.NewHandler(settingsSvc, log)

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

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Доступные слоты на дату
	api.HandleFunc("/schedule/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Текущие настройки расписания
	api.HandleFunc("/schedule/settings", getSettings.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Бронирования ---
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}/confirm-payment", confirmPayment.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/bookings/{bookingId}/reschedule", rescheduleBooking.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/bookings/{bookingId}/complete", completeBooking.Handle).Methods(http.MethodPatch)

	// История бронирований клиента
	protected.HandleFunc("/clients/{clientId}/bookings", getClientBookings.Handle).Methods(http.MethodGet)

	// --- Управление расписанием (для администратора) ---
	protected.HandleFunc("/schedule/days/{date}", getDaySchedule.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/schedule/blocks", blockSlot.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/schedule/blocks/day", blockDay.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/schedule/blocks/{blockId}", unblockSlot.Handle).Methods(http.MethodDelete)
	protected.HandleFunc("/schedule/settings", updateSettings.Handle).Methods(http.MethodPut)

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
