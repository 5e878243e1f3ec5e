package app

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"gorm.io/gorm"

	"github.com/shashitejag2k2/employee-management/internal/auth"
	"github.com/shashitejag2k2/employee-management/internal/config"
	"github.com/shashitejag2k2/employee-management/internal/department"
	"github.com/shashitejag2k2/employee-management/internal/employee"
	"github.com/shashitejag2k2/employee-management/internal/middleware"
	"github.com/shashitejag2k2/employee-management/internal/shared/connection"
)

// BuildApp wires infrastructure, services and routes onto the router.
func BuildApp(router *gin.Engine, cfg *config.Config, logger *zap.Logger) error {
	db, err := connection.ConnectGORMWithRetry(
		cfg.Database.Host,
		cfg.Database.User,
		cfg.Database.Password,
		cfg.Database.Name,
		cfg.Database.Port,
		cfg.Database.SSLMode,
		cfg.Database.MaxRetries,
	)
	if err != nil {
		return err
	}

	if err := db.AutoMigrate(
		&department.Department{},
		&employee.Employee{},
		&auth.Credential{},
	); err != nil {
		return err
	}

	registerModules(router, db, cfg, logger)
	return nil
}

func registerModules(router *gin.Engine, db *gorm.DB, cfg *config.Config, logger *zap.Logger) {
	router.Use(middleware.CorrelationID(logger))

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api/v1")

	departmentRepo := department.NewRepository(db)
	departmentService := department.NewService(db, departmentRepo, logger)
	departmentHandler := department.NewHandler(departmentService, logger)
	department.RegisterRoutes(api, departmentHandler)

	employeeRepo := employee.NewRepository(db)
	employeeService := employee.NewService(db, employeeRepo, logger)
	employeeHandler := employee.NewHandler(employeeService, logger)
	employee.RegisterRoutes(api, employeeHandler)

	authRepo := auth.NewRepository(db)
	authService := auth.NewService(
		db,
		authRepo,
		employeeRepo,
		cfg.Auth.BcryptCost,
		cfg.Auth.TokenTTL(),
		logger,
	)
	authHandler := auth.NewHandler(authService, logger)
	loginRateLimit := middleware.RateLimitByIP(rate.Limit(cfg.Auth.LoginRatePerSec), cfg.Auth.LoginBurst)
	auth.RegisterRoutes(api, authHandler, loginRateLimit)
}
