package app

import (
	"fmt"

	"promanager_backend/database"
	"promanager_backend/internal/config"
	"promanager_backend/internal/handlers"
	"promanager_backend/internal/logger"
	"promanager_backend/internal/metrics"
	"promanager_backend/internal/middleware"
	"promanager_backend/internal/repositories"
	"promanager_backend/internal/routes"
	"promanager_backend/internal/services"
	"promanager_backend/internal/utils"
	"promanager_backend/internal/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

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

	if err := database.Migrate(gormDB); err != nil {
		logger.Fatal("Failed to run migrations", "error", err)
	}

	metrics.Register()

	ginRouter := SetupRouter(cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Server starting", "address", address)
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

// SetupRouter assembles the full Gin engine. Exported so the test harness can
// mount the real routing stack on an httptest server.
func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	serviceContainer := initializeServices(cfg, gormDB)
	appHandlers := initializeHandlers(serviceContainer)

	ginRouter := initializeGinRouter()
	routes.RegisterRoutes(ginRouter, appHandlers, middleware.AuthMiddleware(cfg.JWT.Secret))

	return ginRouter
}

func initializeServices(cfg *config.Config, gormDB *gorm.DB) *services.ServiceContainer {
	emailSender := utils.NewEmailSender(cfg)

	userRepo := repositories.NewUserRepository(gormDB)
	applicationRepo := repositories.NewApplicationRepository(gormDB)
	affiliationRepo := repositories.NewAffiliationRepository(gormDB)
	preferencesRepo := repositories.NewPreferencesRepository(gormDB)

	return &services.ServiceContainer{
		UserService:        services.NewUserService(userRepo, emailSender, cfg),
		ApplicationService: services.NewApplicationService(gormDB, applicationRepo),
		AffiliationService: services.NewAffiliationService(gormDB, affiliationRepo),
		PreferencesService: services.NewPreferencesService(preferencesRepo),
	}
}

func initializeHandlers(serviceContainer *services.ServiceContainer) *handlers.AppHandlers {
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)

	return &handlers.AppHandlers{
		UserHandler:        handlers.NewUserHandler(baseHandler, serviceContainer.UserService),
		ApplicationHandler: handlers.NewApplicationHandler(baseHandler, serviceContainer.ApplicationService),
		AffiliationHandler: handlers.NewAffiliationHandler(baseHandler, serviceContainer.AffiliationService),
		PreferencesHandler: handlers.NewPreferencesHandler(baseHandler, serviceContainer.PreferencesService),
	}
}

func initializeGinRouter() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.MetricsMiddleware())
	router.Use(middleware.CORSMiddleware())
	return router
}
