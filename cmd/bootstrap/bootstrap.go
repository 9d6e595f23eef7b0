package bootstrap

import (
	"context"
	"fmt"
	"os"

	"go-clinic-workflow/config"
	"go-clinic-workflow/internal/infrastructure/store"
	"go-clinic-workflow/internal/repository"
	"go-clinic-workflow/internal/service"
	"go-clinic-workflow/internal/usecase"
	"go-clinic-workflow/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the workflow engine. The usecases are the
// engine's public surface; transport adapters wrap them per deployment.
type App struct {
	Config      *config.Config
	Store       store.Store
	DB          *gorm.DB
	RedisClient *redis.Client

	Reception     usecase.ReceptionUsecase
	Doctor        usecase.DoctorUsecase
	Lab           usecase.LabUsecase
	Pharmacy      usecase.PharmacyUsecase
	Roster        usecase.RosterUsecase
	BillingReport usecase.BillingReportUsecase

	seeder *service.Seeder
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	setupLogger()

	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg
	logrus.Info("Configuration loaded successfully")
	logrus.Infof("Environment: %s", cfg.App.Env)

	if err := app.initStore(); err != nil {
		return nil, err
	}

	app.initUsecases()

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

// initStore picks the record-store backend from config. Memory is the
// default, so the engine runs with no external services at all.
func (app *App) initStore() error {
	switch app.Config.Store.Driver {
	case "redis":
		client, err := store.NewRedisClient(app.Config.Redis)
		if err != nil {
			return fmt.Errorf("failed to connect to Redis: %w", err)
		}
		app.RedisClient = client
		app.Store = store.NewRedisStore(client)
	case "postgres":
		db, err := store.NewPostgresConnection(app.Config.DB)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		app.DB = db
		pgStore, err := store.NewPostgresStore(db)
		if err != nil {
			return err
		}
		app.Store = pgStore
	default:
		app.Store = store.NewMemoryStore()
	}
	logrus.Infof("Record store initialized (driver=%s)", app.Config.Store.Driver)
	return nil
}

func (app *App) initUsecases() {
	log := logrus.StandardLogger()
	customValidator := validator.NewValidator()

	visitRepo := repository.NewVisitRepository(app.Store)
	historyRepo := repository.NewPatientHistoryRepository(app.Store)
	consultationRepo := repository.NewConsultationRepository(app.Store)
	labRequestRepo := repository.NewLabRequestRepository(app.Store)
	labReportRepo := repository.NewLabReportRepository(app.Store)
	prescriptionRepo := repository.NewPrescriptionRepository(app.Store)
	stockRepo := repository.NewStockRepository(app.Store)
	rosterRepo := repository.NewRosterRepository(app.Store)
	billRepo := repository.NewBillRepository(app.Store)

	tokens := service.NewTokenAllocator(log, visitRepo)
	app.seeder = service.NewSeeder(log, rosterRepo, stockRepo)

	app.Reception = usecase.NewReceptionUsecase(log, customValidator, visitRepo, historyRepo, rosterRepo, tokens)
	app.Doctor = usecase.NewDoctorUsecase(log, customValidator, visitRepo, consultationRepo, labRequestRepo, labReportRepo, prescriptionRepo, rosterRepo)
	app.Lab = usecase.NewLabUsecase(log, customValidator, labRequestRepo, labReportRepo, billRepo)
	app.Pharmacy = usecase.NewPharmacyUsecase(log, customValidator, prescriptionRepo, stockRepo, billRepo)
	app.Roster = usecase.NewRosterUsecase(log, customValidator, rosterRepo)
	app.BillingReport = usecase.NewBillingReportUsecase(log, billRepo)
}

// Seed populates default roster and stock data on an empty store.
func (app *App) Seed(ctx context.Context) error {
	return app.seeder.Seed(ctx)
}

// Close closes all connections (database, redis, etc.)
func (app *App) Close() {
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
