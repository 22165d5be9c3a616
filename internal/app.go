// internal/app.go
package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/jmoiron/sqlx"

	router "moneyflow/internal/api"
	"moneyflow/internal/api/handler"
	"moneyflow/internal/config"
	"moneyflow/internal/domain"
	"moneyflow/internal/events/kafka"
	"moneyflow/internal/lock"
	"moneyflow/internal/port"
	"moneyflow/internal/repository/memory"
	"moneyflow/internal/repository/postgres"
	"moneyflow/internal/service"
	"moneyflow/internal/util"
	"moneyflow/pkg/db"
	"moneyflow/pkg/metrics"
)

// Application holds all the initialized components of the application.
type Application struct {
	Config *config.AppConfig
	Logger *slog.Logger
	DB     *sqlx.DB

	// Ports
	LoadAccountPort        port.LoadAccountPort
	UpdateAccountStatePort port.UpdateAccountStatePort
	AccountLock            port.AccountLock
	EventPublisher         *kafka.Publisher

	// Services
	SendMoneyService         service.SendMoneyUseCase
	GetAccountBalanceService service.GetAccountBalanceQuery

	// Metrics
	Collector *metrics.Collector

	// HTTP API
	HTTPHandler http.Handler
}

// NewApplication creates a new Application instance.
func NewApplication() *Application {
	return &Application{}
}

// Initialize initializes all application components.
func (app *Application) Initialize(ctx context.Context) error {
	// 1. Load Configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	app.Config = cfg

	// 2. Initialize Logger
	util.InitLogger()
	app.Logger = util.GetLogger()
	app.Logger.Info("Application configuration loaded successfully.")

	// 3. Initialize Persistence
	if cfg.UseInMemoryStore {
		store := memory.NewStore(cfg.Currency)
		app.LoadAccountPort = store
		app.UpdateAccountStatePort = store
		app.Logger.Info("Using in-memory account store.")
	} else {
		database, err := db.NewPostgresDB(cfg.DB)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		app.DB = database
		adapter := postgres.NewAccountPersistenceAdapter(database, cfg.Currency)
		app.LoadAccountPort = adapter
		app.UpdateAccountStatePort = adapter
		app.Logger.Info("Database connection established.")
	}

	// 4. Initialize Account Lock
	app.AccountLock = lock.NewKeyedAccountLock()

	// 5. Initialize Event Publisher (optional)
	var publisher port.EventPublisher
	if len(cfg.KafkaBrokers) > 0 {
		app.EventPublisher = kafka.NewPublisher(cfg.KafkaBrokers)
		publisher = app.EventPublisher
		app.Logger.Info("Kafka event publisher initialized.", "brokers", cfg.KafkaBrokers)
	}

	// 6. Initialize Metrics
	app.Collector = metrics.NewCollector()

	// 7. Initialize Services
	props := service.TransferProperties{
		MaximumTransferThreshold: domain.NewMoney(cfg.TransferThreshold, cfg.Currency),
		BaselineLookback:         time.Duration(cfg.BaselineLookbackDays) * 24 * time.Hour,
	}
	app.SendMoneyService = service.NewSendMoneyService(
		app.LoadAccountPort,
		app.AccountLock,
		app.UpdateAccountStatePort,
		publisher,
		app.Collector,
		props,
		app.Logger,
	)
	app.GetAccountBalanceService = service.NewGetAccountBalanceService(app.LoadAccountPort)
	app.Logger.Info("Services initialized.")

	// 8. Initialize HTTP Handlers and Router
	accountHandler := handler.NewAccountHandler(app.SendMoneyService, app.GetAccountBalanceService, cfg.Currency, app.Logger)
	app.HTTPHandler = router.NewRouter(accountHandler, app.Collector, app.Logger)
	app.Logger.Info("HTTP router and handlers initialized.")

	return nil
}

// Shutdown gracefully shuts down application resources.
func (app *Application) Shutdown(ctx context.Context) error {
	app.Logger.Info("Shutting down application...")
	if app.EventPublisher != nil {
		if err := app.EventPublisher.Close(); err != nil {
			app.Logger.Error("Failed to close event publisher", "error", err)
		}
	}
	if app.DB != nil {
		if err := app.DB.Close(); err != nil {
			app.Logger.Error("Failed to close database connection", "error", err)
			return fmt.Errorf("failed to close database connection: %w", err)
		}
		app.Logger.Info("Database connection closed.")
	}
	app.Logger.Info("Application shut down gracefully.")
	return nil
}
