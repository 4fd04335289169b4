package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/yellowboat/backoffice/database"
	"github.com/yellowboat/backoffice/internal/auth"
	"github.com/yellowboat/backoffice/internal/config"
	"github.com/yellowboat/backoffice/internal/email"
	"github.com/yellowboat/backoffice/internal/handlers"
	"github.com/yellowboat/backoffice/internal/logger"
	"github.com/yellowboat/backoffice/internal/mailboxapi"
	"github.com/yellowboat/backoffice/internal/middleware"
	"github.com/yellowboat/backoffice/internal/models"
	"github.com/yellowboat/backoffice/internal/ratelimit"
	"github.com/yellowboat/backoffice/internal/repositories"
	"github.com/yellowboat/backoffice/internal/routes"
	"github.com/yellowboat/backoffice/internal/services"
	"github.com/yellowboat/backoffice/internal/validator"
	"github.com/yellowboat/backoffice/internal/workers"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	gormDB, err := database.ConnectGorm()
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := database.AutoMigrate(gormDB); err != nil {
		logger.Fatal("Migration failed", "error", err)
	}

	if err := seedFirstAdmin(gormDB, cfg); err != nil {
		logger.Fatal("Failed to seed first admin user", "error", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	router := SetupRouter(ctx, cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Server starting", "address", address)
	if err := router.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

// SetupRouter builds the full engine: repositories, services, handlers,
// background workers and routes. Exposed for integration tests.
func SetupRouter(ctx context.Context, cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	// Repositories
	userRepo := repositories.NewUserRepository(gormDB)
	trainerRepo := repositories.NewTrainerRepository(gormDB)
	brandRepo := repositories.NewBrandRepository(gormDB)
	customerRepo := repositories.NewCustomerRepository(gormDB)
	trainingRepo := repositories.NewTrainingRepository(gormDB)
	applicationRepo := repositories.NewApplicationRepository(gormDB)
	registrationRepo := repositories.NewRegistrationRepository(gormDB)
	locationRepo := repositories.NewLocationRepository(gormDB)
	messageRepo := repositories.NewMessageRepository(gormDB)
	mailboxRepo := repositories.NewMailboxRepository(gormDB)
	catalogRepo := repositories.NewCatalogRepository(gormDB)

	// Infrastructure
	emailProvider := email.NewProvider(cfg)
	mailboxClient := mailboxapi.NewClient(cfg)
	loginLimiter := ratelimit.NewLimiter(ratelimit.NewMemoryStore(
		cfg.RateLimit.MaxAttempts,
		time.Duration(cfg.RateLimit.WindowSecs)*time.Second,
	))

	// Services
	notificationService := services.NewNotificationService(emailProvider, userRepo)
	authService := services.NewAuthService(cfg, userRepo, trainerRepo, loginLimiter, notificationService)
	brandService := services.NewBrandService(brandRepo)
	customerService := services.NewCustomerService(customerRepo, brandRepo)
	trainerService := services.NewTrainerService(trainerRepo, brandRepo)
	trainingService := services.NewTrainingService(trainingRepo, trainerRepo, brandRepo, customerRepo, notificationService)
	applicationService := services.NewApplicationService(applicationRepo, trainingRepo, trainerRepo, notificationService)
	registrationService := services.NewRegistrationService(registrationRepo, userRepo, trainerRepo, mailboxClient, notificationService)
	locationService := services.NewLocationService(locationRepo)
	messageService := services.NewMessageService(messageRepo, userRepo)
	mailboxService := services.NewMailboxService(mailboxRepo, userRepo, emailProvider, mailboxClient)
	catalogService := services.NewCatalogService(catalogRepo)
	searchService := services.NewSearchService(customerRepo, trainerRepo, trainingRepo)

	// Workers
	reminderWorker := workers.NewReminderWorker(trainingRepo, notificationService)
	reminderWorker.Start(ctx)

	// Handlers
	base := handlers.NewBaseHandler(validator.New())
	appHandlers := &handlers.AppHandlers{
		Auth:          handlers.NewAuthHandler(base, authService),
		Brand:         handlers.NewBrandHandler(base, brandService),
		Customer:      handlers.NewCustomerHandler(base, customerService),
		Trainer:       handlers.NewTrainerHandler(base, trainerService),
		TrainerPortal: handlers.NewTrainerPortalHandler(base, trainerService, trainingService, applicationService),
		Training:      handlers.NewTrainingHandler(base, trainingService),
		Application:   handlers.NewApplicationHandler(base, applicationService),
		Registration:  handlers.NewRegistrationHandler(base, registrationService),
		Location:      handlers.NewLocationHandler(base, locationService),
		Message:       handlers.NewMessageHandler(base, messageService),
		Mailbox:       handlers.NewMailboxHandler(base, mailboxService),
		Catalog:       handlers.NewCatalogHandler(base, catalogService),
		Search:        handlers.NewSearchHandler(base, searchService),
		System:        handlers.NewSystemHandler(base, reminderWorker),
	}

	router := initializeGinRouter(cfg)
	routes.RegisterRoutes(router, cfg, userRepo, appHandlers)
	return router
}

func initializeGinRouter(cfg *config.Config) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.AccessLog())
	router.Use(middleware.CORS())
	return router
}

// seedFirstAdmin creates the configured admin account when the users
// table is empty, so a fresh deployment is immediately usable.
func seedFirstAdmin(db *gorm.DB, cfg *config.Config) error {
	if cfg.Admin.Username == "" || cfg.Admin.Password == "" {
		logger.Warn("Admin seed skipped: no admin credentials configured")
		return nil
	}

	var count int64
	if err := db.Model(&models.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := auth.HashPassword(cfg.Admin.Password)
	if err != nil {
		return err
	}

	admin := models.User{
		Username:     cfg.Admin.Username,
		Email:        cfg.Admin.Email,
		PasswordHash: hash,
		Role:         models.UserRoleAdmin,
		IsActive:     true,
	}
	if err := db.Create(&admin).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil
		}
		return err
	}

	logger.Info("Seeded first admin user", "username", admin.Username)
	return nil
}
