package main

import (
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"sapportal/internal/audit"
	"sapportal/internal/gateway"
	"sapportal/internal/handler"
	"sapportal/internal/middleware"
	"sapportal/internal/sap"
	"sapportal/pkg/config"
	"sapportal/pkg/database"
	"sapportal/pkg/jwtutil"
	"sapportal/pkg/logger"
	"sapportal/prometheus"
)

func main() {
	cfg, err := config.Load("employee-portal")
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	if err := logger.InitLogger(cfg); err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	log := logger.GetLogger()
	log.Info("Starting employee portal...", cfg.LogConfig()...)

	var store *audit.Store
	if cfg.DB.Enabled {
		db, err := database.InitDB(&cfg.DB)
		if err != nil {
			log.Fatal("Failed to initialize audit database", zap.Error(err))
		}
		store = audit.NewStore(db)
		if err := store.Migrate(); err != nil {
			log.Fatal("Failed to migrate audit tables", zap.Error(err))
		}
		log.Info("Audit database connection established")
	}

	jwtutil.Initialize(&cfg.JWT)

	var gw gateway.Employee
	switch cfg.GatewayMode {
	case config.GatewayModeFake:
		log.Warn("Using the fixture gateway; SAP is NOT being called")
		gw = gateway.NewFakeEmployee(gateway.NewFake())
	default:
		gw = gateway.NewSAPEmployee(sap.NewClient(&cfg.SAP))
	}

	authHandler := handler.NewEmployeeAuth(gw, store)
	dataHandler := handler.NewEmployeeData(gw, store, cfg.Upload)

	e := echo.New()
	e.HideBanner = true

	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.Server.CORSOrigins,
	}))
	e.Use(middleware.RequestIDMiddleware)
	e.Use(logger.Middleware())
	e.Use(prometheus.MetricsMiddleware())

	e.GET("/health", handler.HealthCheck("employee-portal"))
	e.GET("/metrics", echo.WrapHandler(prometheus.GetPrometheusHandler()))
	e.Static("/uploads", cfg.Upload.Dir)

	auth := e.Group("/api/auth")
	auth.POST("/login", authHandler.Login,
		middleware.LoginRateLimiter(cfg.RateLimit.LoginMax, cfg.RateLimit.LoginWindow))
	auth.POST("/logout", authHandler.Logout, middleware.AuthMiddleware)
	auth.GET("/verify", authHandler.Verify, middleware.AuthMiddleware)

	api := e.Group("/api/employee")
	api.Use(middleware.AuthMiddleware)

	api.GET("/profile", dataHandler.Profile)
	api.PUT("/profile", dataHandler.UpdateProfile)
	api.POST("/profile/photo", dataHandler.UploadPhoto)
	api.GET("/profile/:employeeId", dataHandler.ProfileByID, middleware.RequireSubject("employeeId"))
	api.GET("/attendance", dataHandler.Attendance)

	api.GET("/payslip/:month/:year", dataHandler.Payslip)
	api.GET("/payslips", dataHandler.Payslips)
	api.GET("/payslips/download", dataHandler.DownloadPayslips)

	api.GET("/leave-types", dataHandler.LeaveTypes)
	api.GET("/leave-balance/:employeeId", dataHandler.LeaveBalance, middleware.RequireSubject("employeeId"))
	api.GET("/leave-history", dataHandler.LeaveHistory)
	api.GET("/leave-requests", dataHandler.LeaveRequests)
	api.POST("/leave-request", dataHandler.SubmitLeaveRequest)
	api.PUT("/leave-request/:requestId/cancel", dataHandler.CancelLeaveRequest)
	api.GET("/leave-summary", dataHandler.LeaveSummary)
	api.GET("/leave-report/export", dataHandler.ExportLeaveReport)
	api.POST("/calculate-working-days", dataHandler.WorkingDays)
	api.GET("/leave-policy", dataHandler.LeavePolicy)

	log.Info("Starting server", zap.String("port", cfg.Server.Port))
	if err := e.Start(":" + cfg.Server.Port); err != nil {
		log.Fatal("Failed to start server", zap.Error(err))
	}
}
