package app

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"fleamarket_backend/internal/config"
	"fleamarket_backend/internal/database"
	"fleamarket_backend/internal/email"
	"fleamarket_backend/internal/handlers"
	"fleamarket_backend/internal/logger"
	"fleamarket_backend/internal/middleware"
	"fleamarket_backend/internal/routes"
	"fleamarket_backend/internal/services"
	"fleamarket_backend/internal/validator"
)

// Run поднимает приложение: конфиг, логгер, БД, миграции, HTTP сервер.
func Run() {
	cfg := config.Load()
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	logger.Info("Connecting to database...")
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
		logger.Fatal("Migration failed", "error", err)
	}
	logger.Info("Migrations applied")

	ginRouter := SetupRouter(cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info(fmt.Sprintf("Server starting on %s", address))
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

// SetupRouter собирает gin.Engine с middleware, сервисами и маршрутами.
func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	smtpProvider := email.NewSMTPProvider(&email.SMTPConfig{
		Host:      cfg.Email.SMTPHost,
		Port:      cfg.Email.SMTPPort,
		Username:  cfg.Email.SMTPUsername,
		Password:  cfg.Email.SMTPPassword,
		FromEmail: cfg.Email.FromEmail,
		FromName:  cfg.Email.FromName,
	})
	if err := smtpProvider.Validate(); err != nil {
		logger.Warn("SMTP provider misconfigured, emails will fail", "error", err)
	}
	notifier := email.NewNotifier(smtpProvider)

	serviceContainer := services.NewServiceContainer(gormDB, cfg, notifier)
	appHandlers := handlers.NewAppHandlers(serviceContainer, validator.New(), cfg)

	ginRouter := gin.New()
	ginRouter.Use(gin.Recovery())
	ginRouter.Use(middleware.RequestIDMiddleware())
	ginRouter.Use(middleware.LoggingMiddleware())

	ginRouter.Static("/static", cfg.Upload.IconPath)

	routes.RegisterRoutes(ginRouter, appHandlers)
	return ginRouter
}
