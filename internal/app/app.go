package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/AJEETSINGHPATEL/jobportal-backend/database"
	"github.com/AJEETSINGHPATEL/jobportal-backend/internal/ai"
	"github.com/AJEETSINGHPATEL/jobportal-backend/internal/config"
	"github.com/AJEETSINGHPATEL/jobportal-backend/internal/email"
	"github.com/AJEETSINGHPATEL/jobportal-backend/internal/handlers"
	"github.com/AJEETSINGHPATEL/jobportal-backend/internal/imageprocessor"
	"github.com/AJEETSINGHPATEL/jobportal-backend/internal/logger"
	"github.com/AJEETSINGHPATEL/jobportal-backend/internal/middleware"
	"github.com/AJEETSINGHPATEL/jobportal-backend/internal/models"
	"github.com/AJEETSINGHPATEL/jobportal-backend/internal/repositories"
	"github.com/AJEETSINGHPATEL/jobportal-backend/internal/routes"
	"github.com/AJEETSINGHPATEL/jobportal-backend/internal/services"
	"github.com/AJEETSINGHPATEL/jobportal-backend/internal/storage"
	"github.com/AJEETSINGHPATEL/jobportal-backend/internal/validator"
	"github.com/AJEETSINGHPATEL/jobportal-backend/internal/workers"
	"github.com/AJEETSINGHPATEL/jobportal-backend/ws"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Application is the fully wired service: router, services and the
// websocket hub. Tests use it to reach the same wiring the binary runs.
type Application struct {
	Router   *gin.Engine
	Services *services.ServiceContainer
	Hub      *ws.Hub
}

// Run boots the process: config, logger, database, schema, seed data,
// workers and finally the HTTP listener.
func Run() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	gormDB, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{})
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
		logger.Fatal("Failed to migrate schema", "error", err)
	}

	if err := seedFirstAdmin(gormDB, cfg); err != nil {
		logger.Fatal("Failed to seed first admin user", "error", err)
	}

	application := BuildApplication(cfg, gormDB, sqlDB)

	workerCtx, stopWorkers := context.WithCancel(context.Background())
	defer stopWorkers()
	startWorkers(workerCtx, cfg, gormDB, application.Services)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Server starting", "address", address)
	if err := application.Router.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

// SetupRouter wires the whole application and returns only the router.
// The integration test harness builds its server through this.
func SetupRouter(cfg *config.Config, gormDB *gorm.DB, sqlDB *sql.DB) *gin.Engine {
	return BuildApplication(cfg, gormDB, sqlDB).Router
}

// BuildApplication assembles storage, services, handlers, websocket hub
// and routes. Workers are started separately; they should not run in
// tests.
func BuildApplication(cfg *config.Config, gormDB *gorm.DB, sqlDB *sql.DB) *Application {
	storageInstance, err := storage.NewStorage(cfg)
	if err != nil {
		logger.Fatal("Failed to initialize storage", "error", err)
	}
	logger.Info("Storage initialized", "type", cfg.Storage.Type)

	// Rate limiting degrades to allow-all when redis is not configured.
	var redisClient *redis.Client
	if cfg.Redis.Addr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		logger.Info("Redis client initialized", "addr", cfg.Redis.Addr)
	}
	limiter := middleware.NewRedisLimiter(redisClient)

	serviceContainer := initializeServices(cfg, sqlDB, storageInstance)

	hub := ws.NewHub()
	go hub.Run()
	serviceContainer.NotificationService.SetPusher(hub)
	wsHandler := ws.NewHandler(hub)

	appHandlers := initializeHandlers(serviceContainer, limiter, storageInstance)

	ginRouter := initializeGinRouter(cfg, gormDB)
	routes.RegisterRoutes(ginRouter, appHandlers, wsHandler)

	return &Application{
		Router:   ginRouter,
		Services: serviceContainer,
		Hub:      hub,
	}
}

func initializeServices(cfg *config.Config, sqlDB *sql.DB, storageInstance storage.Storage) *services.ServiceContainer {
	emailProvider := email.NewProvider(cfg)
	aiClient := ai.NewClient(cfg)
	images := imageprocessor.NewProcessor(0)

	userRepo := repositories.NewUserRepository()
	refreshTokenRepo := repositories.NewRefreshTokenRepository()
	profileRepo := repositories.NewProfileRepository()
	jobRepo := repositories.NewJobRepository()
	applicationRepo := repositories.NewApplicationRepository()
	savedJobRepo := repositories.NewSavedJobRepository()
	companyRepo := repositories.NewCompanyRepository()
	reviewRepo := repositories.NewReviewRepository()
	notificationRepo := repositories.NewNotificationRepository()
	alertRepo := repositories.NewJobAlertRepository()
	resumeRepo := repositories.NewResumeRepository()
	statsRepo := repositories.NewStatsRepository(sqlDB)

	notificationService := services.NewNotificationService(notificationRepo)
	authService := services.NewAuthService(userRepo, profileRepo, refreshTokenRepo, emailProvider)
	userService := services.NewUserService(userRepo, refreshTokenRepo)
	adminService := services.NewAdminService(userRepo, jobRepo, companyRepo, reviewRepo, refreshTokenRepo, statsRepo)
	profileService := services.NewProfileService(profileRepo, userRepo, notificationService, storageInstance, images, cfg.Upload)
	alertService := services.NewJobAlertService(alertRepo, jobRepo, userRepo, notificationService, emailProvider)
	jobService := services.NewJobService(jobRepo, userRepo, companyRepo, profileRepo, alertService)
	applicationService := services.NewApplicationService(applicationRepo, jobRepo, userRepo, resumeRepo, notificationService, emailProvider)
	savedJobService := services.NewSavedJobService(savedJobRepo, jobRepo)
	companyService := services.NewCompanyService(companyRepo, userRepo, notificationService, emailProvider)
	reviewService := services.NewReviewService(reviewRepo, companyRepo)
	resumeService := services.NewResumeService(resumeRepo, profileRepo, storageInstance, aiClient, cfg.Upload)
	advisorService := services.NewAdvisorService(aiClient)

	return &services.ServiceContainer{
		AuthService:         authService,
		UserService:         userService,
		AdminService:        adminService,
		ProfileService:      profileService,
		JobService:          jobService,
		ApplicationService:  applicationService,
		SavedJobService:     savedJobService,
		CompanyService:      companyService,
		ReviewService:       reviewService,
		NotificationService: notificationService,
		JobAlertService:     alertService,
		ResumeService:       resumeService,
		AdvisorService:      advisorService,
		EmailService:        emailProvider,
	}
}

func initializeHandlers(svc *services.ServiceContainer, limiter *middleware.RedisLimiter, store storage.Storage) *handlers.AppHandlers {
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)

	return &handlers.AppHandlers{
		AuthHandler:         handlers.NewAuthHandler(baseHandler, svc.AuthService, limiter),
		UserHandler:         handlers.NewUserHandler(baseHandler, svc.UserService),
		AdminHandler:        handlers.NewAdminHandler(baseHandler, svc.AdminService, svc.CompanyService),
		JobHandler:          handlers.NewJobHandler(baseHandler, svc.JobService),
		ApplicationHandler:  handlers.NewApplicationHandler(baseHandler, svc.ApplicationService),
		SavedJobHandler:     handlers.NewSavedJobHandler(baseHandler, svc.SavedJobService),
		ProfileHandler:      handlers.NewProfileHandler(baseHandler, svc.ProfileService),
		CompanyHandler:      handlers.NewCompanyHandler(baseHandler, svc.CompanyService),
		ReviewHandler:       handlers.NewReviewHandler(baseHandler, svc.ReviewService),
		NotificationHandler: handlers.NewNotificationHandler(baseHandler, svc.NotificationService),
		JobAlertHandler:     handlers.NewJobAlertHandler(baseHandler, svc.JobAlertService),
		ResumeHandler:       handlers.NewResumeHandler(baseHandler, svc.ResumeService),
		AIHandler:           handlers.NewAIHandler(baseHandler, svc.AdvisorService),
		FileHandler:         handlers.NewFileHandler(baseHandler, store),
	}
}

func initializeGinRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.DBMiddleware(db))
	return router
}

func startWorkers(ctx context.Context, cfg *config.Config, gormDB *gorm.DB, svc *services.ServiceContainer) {
	expiryInterval := time.Duration(cfg.Workers.JobExpiryIntervalMinutes) * time.Minute
	expiryWorker := workers.NewJobExpiryWorker(gormDB, repositories.NewJobRepository(), expiryInterval)
	expiryWorker.Start(ctx)

	digestWorker := workers.NewAlertDigestWorker(gormDB, svc.JobAlertService,
		cfg.Workers.AlertDailySpec, cfg.Workers.AlertWeeklySpec)
	if err := digestWorker.Start(); err != nil {
		logger.Fatal("Failed to start alert digest scheduler", "error", err)
	}

	go func() {
		<-ctx.Done()
		digestWorker.Stop()
	}()
}

// seedFirstAdmin creates the platform admin from FIRST_ADMIN_EMAIL and
// FIRST_ADMIN_PASSWORD when no account with that email exists yet.
// Admins cannot be created through registration.
func seedFirstAdmin(db *gorm.DB, cfg *config.Config) error {
	adminEmail := cfg.FirstAdminEmail
	adminPassword := cfg.FirstAdminPassword

	if adminEmail == "" || adminPassword == "" {
		logger.Warn("FIRST_ADMIN_EMAIL or FIRST_ADMIN_PASSWORD not set, skipping admin seeding")
		return nil
	}

	return db.Transaction(func(tx *gorm.DB) error {
		var existing models.User
		err := tx.Where("email = ?", adminEmail).First(&existing).Error
		if err == nil {
			logger.Info("Admin user already exists, skipping creation", "email", adminEmail)
			return nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("check for admin user: %w", err)
		}

		hashed, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("hash admin password: %w", err)
		}

		admin := &models.User{
			Email:        adminEmail,
			PasswordHash: string(hashed),
			FullName:     "Platform Administrator",
			Role:         models.UserRoleAdmin,
			IsActive:     true,
			IsVerified:   true,
		}
		if err := tx.Create(admin).Error; err != nil {
			return fmt.Errorf("create admin user: %w", err)
		}

		profile := &models.RecruiterProfile{
			UserID:      admin.ID,
			CompanyName: "Platform Administration",
			Designation: "Administrator",
		}
		if err := tx.Create(profile).Error; err != nil {
			return fmt.Errorf("create admin recruiter profile: %w", err)
		}

		logger.Info("Created first admin user", "email", adminEmail)
		return nil
	})
}
