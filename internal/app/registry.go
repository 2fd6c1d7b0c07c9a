package app

import (
	"database/sql"
	"net/http"

	"github.com/SaiAryan1784/HRMS-Lite/internal/attendance"
	"github.com/SaiAryan1784/HRMS-Lite/internal/employee"
	"github.com/SaiAryan1784/HRMS-Lite/internal/messaging/kafka"
	"github.com/SaiAryan1784/HRMS-Lite/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
	logger *zap.Logger,
) error {
	// --- Repositories ---
	employeeRepo := employee.NewRepository(gormDB)
	attendanceRepo := attendance.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)

	// --- Services ---
	employeeService := employee.NewServiceWithOutbox(db, employeeRepo, outboxRepo, rdb, logger)
	attendanceService := attendance.NewServiceWithOutbox(db, attendanceRepo, outboxRepo, logger)

	// --- Handlers ---
	employeeHandler := employee.NewHandler(employeeService, logger)
	attendanceHandler := attendance.NewHandler(attendanceService, logger)

	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "HRMS Lite API is running")
	})
	router.GET("/healthz", healthHandler(db, rdb))

	// --- Routes Registration ---
	api := router.Group("/api")
	api.Use(middleware.RequestID())
	api.Use(middleware.ContextLogger(logger))
	api.Use(middleware.RateLimitByIP(20, 50))
	{
		employee.RegisterRoutes(api, employeeHandler, rdb)
		attendance.RegisterRoutes(api, attendanceHandler, rdb)
	}

	return nil
}
