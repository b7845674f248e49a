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
	cfg, err := config.Load("vendor-portal")
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	if err := logger.InitLogger(cfg); err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	log := logger.GetLogger()
	log.Info("Starting vendor portal...", cfg.LogConfig()...)

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

	var gw gateway.Vendor
	switch cfg.GatewayMode {
	case config.GatewayModeFake:
		log.Warn("Using the fixture gateway; SAP is NOT being called")
		gw = gateway.NewFakeVendor(gateway.NewFake())
	default:
		gw = gateway.NewSAPVendor(sap.NewClient(&cfg.SAP))
	}

	authHandler := handler.NewVendorAuth(gw, store)
	dataHandler := handler.NewVendorData(gw)

	e := echo.New()
	e.HideBanner = true

	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.Server.CORSOrigins,
	}))
	e.Use(middleware.RequestIDMiddleware)
	e.Use(logger.Middleware())
	e.Use(prometheus.MetricsMiddleware())

	e.GET("/health", handler.HealthCheck("vendor-portal"))
	e.GET("/metrics", echo.WrapHandler(prometheus.GetPrometheusHandler()))

	auth := e.Group("/api/auth")
	auth.POST("/login", authHandler.Login,
		middleware.LoginRateLimiter(cfg.RateLimit.LoginMax, cfg.RateLimit.LoginWindow))
	auth.POST("/logout", authHandler.Logout, middleware.AuthMiddleware)
	auth.GET("/verify", authHandler.Verify, middleware.AuthMiddleware)
	auth.GET("/validate", authHandler.Validate)

	api := e.Group("/api")
	api.Use(middleware.AuthMiddleware)

	guard := middleware.RequireSubject("vendorId")
	api.GET("/vendor/profile/:vendorId", dataHandler.Profile, guard)
	api.GET("/summary/vendor/:vendorId", dataHandler.BusinessSummary, guard)
	api.GET("/rfq/vendor/:vendorId", dataHandler.RFQs, guard)
	api.GET("/po/vendor/:vendorId", dataHandler.PurchaseOrders, guard)
	api.GET("/gr/vendor/:vendorId", dataHandler.GoodsReceipts, guard)
	api.GET("/financial/summary/:vendorId", dataHandler.Summary, guard)
	api.GET("/financial/invoices/:vendorId", dataHandler.Invoices, guard)
	api.GET("/financial/payments/:vendorId", dataHandler.Payments, guard)
	api.GET("/financial/memos/:vendorId", dataHandler.Memos, guard)
	api.GET("/financial/aging/:vendorId", dataHandler.Aging, guard)

	log.Info("Starting server", zap.String("port", cfg.Server.Port))
	if err := e.Start(":" + cfg.Server.Port); err != nil {
		log.Fatal("Failed to start server", zap.Error(err))
	}
}
