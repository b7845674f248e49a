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
	cfg, err := config.Load("customer-portal")
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	if err := logger.InitLogger(cfg); err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	log := logger.GetLogger()
	log.Info("Starting customer portal...", cfg.LogConfig()...)

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

	var gw gateway.Customer
	switch cfg.GatewayMode {
	case config.GatewayModeFake:
		log.Warn("Using the fixture gateway; SAP is NOT being called")
		gw = gateway.NewFakeCustomer(gateway.NewFake())
	default:
		gw = gateway.NewSAPCustomer(sap.NewClient(&cfg.SAP))
	}

	authHandler := handler.NewCustomerAuth(gw, store)
	dataHandler := handler.NewCustomerData(gw)

	e := echo.New()
	e.HideBanner = true

	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.Server.CORSOrigins,
	}))
	e.Use(middleware.RequestIDMiddleware)
	e.Use(logger.Middleware())
	e.Use(prometheus.MetricsMiddleware())

	e.GET("/health", handler.HealthCheck("customer-portal"))
	e.GET("/metrics", echo.WrapHandler(prometheus.GetPrometheusHandler()))

	auth := e.Group("/api/auth")
	auth.POST("/login", authHandler.Login,
		middleware.LoginRateLimiter(cfg.RateLimit.LoginMax, cfg.RateLimit.LoginWindow))
	auth.POST("/logout", authHandler.Logout, middleware.AuthMiddleware)
	auth.GET("/verify", authHandler.Verify, middleware.AuthMiddleware)

	api := e.Group("/api/customer")
	api.Use(middleware.AuthMiddleware)
	api.GET("/dashboard", dataHandler.Dashboard)
	api.GET("/profile", dataHandler.Profile)
	api.GET("/inquiries", dataHandler.Inquiries)
	api.GET("/sales-orders", dataHandler.SalesOrders)
	api.GET("/deliveries", dataHandler.Deliveries)
	api.GET("/orders", dataHandler.Orders)
	api.GET("/financial/invoices", dataHandler.Invoices)
	api.GET("/financial/payments", dataHandler.Payments)
	api.GET("/financial/memos", dataHandler.Memos)
	api.GET("/financial/aging", dataHandler.Aging)
	api.GET("/financial/summary", dataHandler.Summary)

	log.Info("Starting server", zap.String("port", cfg.Server.Port))
	if err := e.Start(":" + cfg.Server.Port); err != nil {
		log.Fatal("Failed to start server", zap.Error(err))
	}
}
