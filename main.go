package main

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	authpkg "github.com/astopaal/meksut-order-management/auth"
	backuppkg "github.com/astopaal/meksut-order-management/backup"
	customerrepo "github.com/astopaal/meksut-order-management/customer/repository"
	customersvc "github.com/astopaal/meksut-order-management/customer/service"
	api "github.com/astopaal/meksut-order-management/handler"
	"github.com/astopaal/meksut-order-management/middleware"
	orderrepo "github.com/astopaal/meksut-order-management/order/repository"
	ordersvc "github.com/astopaal/meksut-order-management/order/service"
	"github.com/astopaal/meksut-order-management/realtime"
	reportrepo "github.com/astopaal/meksut-order-management/report/repository"
	reportsvc "github.com/astopaal/meksut-order-management/report/service"
	subscriptionrepo "github.com/astopaal/meksut-order-management/subscription/repository"
	subscriptionsvc "github.com/astopaal/meksut-order-management/subscription/service"
)

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})

	cfg, err := loadConfig()
	if err != nil {
		log.WithError(err).Fatal("invalid configuration")
	}

	db := setupDatabase(cfg.DBPath, log)
	hub := realtime.NewHub(log)

	// repositories + services
	customerRepo := customerrepo.NewGormCustomerRepo(db)
	customerService := customersvc.NewCustomerService(customerRepo)
	customerHandler := api.NewCustomerHandler(customerService)

	orderRepo := orderrepo.NewGormOrderRepo(db)
	orderService := ordersvc.NewOrderService(orderRepo)
	orderHandler := api.NewOrderHandler(orderService, hub)

	subscriptionRepo := subscriptionrepo.NewGormSubscriptionRepo(db)
	subscriptionService := subscriptionsvc.NewSubscriptionService(subscriptionRepo, log)
	subscriptionHandler := api.NewSubscriptionHandler(subscriptionService, hub)

	reportRepo := reportrepo.NewGormReportRepo(db)
	reportService := reportsvc.NewReportService(reportRepo)
	reportHandler := api.NewReportHandler(reportService)

	backupService := backuppkg.New(cfg.DBPath, cfg.BackupDir, cfg.MaxBackups, log)
	if err := backupService.Start(); err != nil {
		log.WithError(err).Fatal("failed to start backup schedule")
	}
	defer backupService.Stop()
	backupHandler := api.NewBackupHandler(backupService, hub)

	creds := authpkg.Credentials{Username: cfg.AdminUsername, PasswordHash: cfg.AdminPasswordHash}
	authHandler := api.NewAuthHandler(creds, cfg.JWTSecret)
	wsHandler := api.NewWSHandler(hub)

	r := gin.New()
	r.Use(gin.Recovery(), gin.Logger(), middleware.RequestID())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	r.GET("/ws/dashboard", wsHandler.Dashboard())

	apiGroup := r.Group("/api")
	apiGroup.POST("/auth/login", authHandler.Login())

	protected := apiGroup.Group("")
	protected.Use(middleware.RequireAuth(cfg.JWTSecret))
	{
		protected.GET("/customers", customerHandler.ListCustomers())
		protected.POST("/customers", customerHandler.CreateCustomer())
		protected.GET("/customers/:id", customerHandler.GetCustomer())
		protected.PUT("/customers/:id", customerHandler.UpdateCustomer())
		protected.DELETE("/customers/:id", customerHandler.DeleteCustomer())
		protected.GET("/customers/:id/analytics", customerHandler.CustomerAnalytics())

		protected.GET("/orders", orderHandler.ListOrders())
		protected.POST("/orders", orderHandler.CreateOrder())
		protected.GET("/orders/daily/:date", orderHandler.ListDailyOrders())
		protected.GET("/orders/:id", orderHandler.GetOrder())
		protected.PUT("/orders/:id", orderHandler.UpdateOrder())
		protected.DELETE("/orders/:id", orderHandler.DeleteOrder())

		protected.GET("/subscriptions", subscriptionHandler.ListSubscriptions())
		protected.POST("/subscriptions", subscriptionHandler.CreateSubscription())
		protected.PUT("/subscriptions/:id", subscriptionHandler.UpdateSubscription())
		protected.DELETE("/subscriptions/:id", subscriptionHandler.DeleteSubscription())
		protected.GET("/subscriptions/customer/:id", subscriptionHandler.ListCustomerSubscriptions())
		protected.POST("/subscriptions/generate-orders", subscriptionHandler.GenerateOrders())

		reports := protected.Group("/reports")
		{
			reports.GET("/customer-analysis", reportHandler.CustomerAnalysis())
			reports.GET("/top-customers-30days", reportHandler.TopCustomers30Days())
			reports.GET("/daily-average", reportHandler.DailyAverage())
			reports.GET("/weekly-trend", reportHandler.WeeklyTrend())
			reports.GET("/monthly-trend", reportHandler.MonthlyTrend())
			reports.GET("/inactive-customers", reportHandler.InactiveCustomers())
			reports.GET("/delivery-time-analysis", reportHandler.DeliveryTimeAnalysis())
			reports.GET("/daily-distribution", reportHandler.DailyDistribution())
		}

		protected.POST("/backup/manual", backupHandler.ManualBackup())
		protected.GET("/backup/info", backupHandler.BackupInfo())
	}

	log.WithField("port", cfg.Port).Info("server starting")
	if err := r.Run(":" + cfg.Port); err != nil {
		log.WithError(err).Fatal("server stopped")
	}
}
