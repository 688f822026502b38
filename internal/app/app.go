package app

import (
	"context"
	"errors"
	"fmt"

	"servicehub_backend/database"
	"servicehub_backend/internal/config"
	"servicehub_backend/internal/email"
	"servicehub_backend/internal/handlers"
	"servicehub_backend/internal/logger"
	"servicehub_backend/internal/middleware"
	"servicehub_backend/internal/models"
	"servicehub_backend/internal/repositories"
	"servicehub_backend/internal/routes"
	"servicehub_backend/internal/services"
	"servicehub_backend/internal/storage"
	"servicehub_backend/internal/validator"
	"servicehub_backend/internal/wizard"
	"servicehub_backend/internal/workers"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
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

	ginRouter := SetupRouter(cfg, gormDB)

	jobWorker := workers.NewJobWorker(repositories.NewJobRepository(gormDB))
	jobWorker.Start(context.Background())

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Server starting", "address", address)
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	serviceContainer := initializeServices(cfg, gormDB)
	appHandlers := initializeHandlers(serviceContainer)

	ginRouter := initializeGinRouter()
	routes.RegisterRoutes(ginRouter, appHandlers)
	return ginRouter
}

func initializeServices(cfg *config.Config, gormDB *gorm.DB) *services.ServiceContainer {
	var emailProvider email.Provider
	if cfg.Email.SMTPHost != "" {
		emailProvider = email.NewSMTPProvider(email.SMTPConfig{
			Host:     cfg.Email.SMTPHost,
			Port:     cfg.Email.SMTPPort,
			Username: cfg.Email.SMTPUsername,
			Password: cfg.Email.SMTPPassword,
			From:     cfg.Email.FromEmail,
			FromName: cfg.Email.FromName,
		})
	} else {
		logger.Warn("SMTP not configured; emails are logged, not sent")
		emailProvider = &email.MockProvider{}
	}

	userRepo := repositories.NewUserRepository(gormDB)
	jobRepo := repositories.NewJobRepository(gormDB)
	bidRepo := repositories.NewBidRepository(gormDB)
	paymentRepo := repositories.NewPaymentRepository(gormDB)
	categoryRepo := repositories.NewCategoryRepository(gormDB)
	notificationRepo := repositories.NewNotificationRepository(gormDB)

	// Drafts live in Redis when configured so they survive restarts;
	// otherwise in process memory.
	var draftStore wizard.DraftStore
	if cfg.Redis.Addr != "" {
		redisStore := wizard.NewRedisDraftStore(cfg.Redis.Addr)
		if err := redisStore.Ping(context.Background()); err != nil {
			logger.Fatal("Redis unavailable", "addr", cfg.Redis.Addr, "error", err)
		}
		logger.Info("Wizard drafts stored in Redis", "addr", cfg.Redis.Addr)
		draftStore = redisStore
	} else {
		logger.Warn("REDIS_ADDR not set; wizard drafts are in-memory only")
		draftStore = wizard.NewMemoryDraftStore()
	}

	previewStore := storage.NewLocalPreviewStore(cfg.Uploads.BasePath, cfg.Uploads.BaseURL)
	guard := services.NewActionGuard()

	notificationService := services.NewNotificationService(notificationRepo, userRepo, emailProvider)
	authService := services.NewAuthService(userRepo)
	jobService := services.NewJobService(jobRepo, guard, notificationService)
	wizardService := services.NewWizardService(draftStore, previewStore, jobService, userRepo, notificationService)
	dashboardService := services.NewDashboardService(jobRepo, bidRepo, cfg.DemoFallback)
	bidService := services.NewBidService(bidRepo, jobRepo, userRepo, guard, notificationService)
	adminService := services.NewAdminService(userRepo, paymentRepo, categoryRepo, guard, notificationService, cfg.DemoFallback)

	return &services.ServiceContainer{
		AuthService:         authService,
		JobService:          jobService,
		WizardService:       wizardService,
		DashboardService:    dashboardService,
		BidService:          bidService,
		AdminService:        adminService,
		NotificationService: notificationService,
		EmailService:        emailProvider,
	}
}

func initializeHandlers(container *services.ServiceContainer) *handlers.AppHandlers {
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)

	return &handlers.AppHandlers{
		AuthHandler:         handlers.NewAuthHandler(baseHandler, container.AuthService),
		JobHandler:          handlers.NewJobHandler(baseHandler, container.JobService, container.AuthService),
		WizardHandler:       handlers.NewWizardHandler(baseHandler, container.WizardService),
		DashboardHandler:    handlers.NewDashboardHandler(baseHandler, container.DashboardService),
		BidHandler:          handlers.NewBidHandler(baseHandler, container.BidService, container.AuthService),
		AdminHandler:        handlers.NewAdminHandler(baseHandler, container.AdminService),
		NotificationHandler: handlers.NewNotificationHandler(baseHandler, container.NotificationService),
	}
}

func initializeGinRouter() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())
	return router
}

func seedFirstAdmin(db *gorm.DB, cfg *config.Config) error {
	adminEmail := cfg.FirstAdminEmail
	adminPassword := cfg.FirstAdminPassword

	if adminEmail == "" || adminPassword == "" {
		logger.Warn("FIRST_ADMIN_EMAIL or FIRST_ADMIN_PASSWORD is not set. Skipping admin seeding.")
		return nil
	}

	var adminUser models.User
	result := db.Where("email = ?", adminEmail).First(&adminUser)
	if result.Error == nil {
		logger.Info("Admin user already exists. Skipping creation.", "email", adminEmail)
		return nil
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check for admin user: %w", result.Error)
	}

	logger.Warn("No admin user found with specified email. Creating first admin...", "email", adminEmail)

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	newAdmin := &models.User{
		Email:        adminEmail,
		PasswordHash: string(hashedPassword),
		Role:         models.UserRoleAdmin,
		Status:       models.AccountStatusActive,
	}
	if err := db.Create(newAdmin).Error; err != nil {
		return fmt.Errorf("failed to create admin user: %w", err)
	}
	return nil
}
