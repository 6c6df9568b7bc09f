package handler

import (
	"net/http"

	"wallet-lifecycle-service/internal/adapter/http/middleware"
	"wallet-lifecycle-service/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	WalletSvc       ports.WalletService
	NotificationSvc ports.NotificationService
	MigrationSvc    ports.MigrationService
	HealthCheckers  []ports.HealthChecker
	Logger          zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	// Health check (deep — verifies PostgreSQL + Redis)
	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	v1 := r.Group("/api/v1")

	// --- User-facing wallet routes (identity propagated by the gateway) ---
	walletHandler := NewWalletHandler(deps.WalletSvc)
	wallets := v1.Group("/wallets", middleware.UserAuth())
	{
		wallets.POST("", walletHandler.Create)
		wallets.GET("", walletHandler.List)
		wallets.GET("/:walletId", walletHandler.Get)
		wallets.DELETE("/:walletId", walletHandler.Delete)
		wallets.POST("/:walletId/sessions", walletHandler.CreateSession)
		wallets.PUT("/:walletId/applications", walletHandler.UpdateApplications)
	}

	// --- Internal routes (no end-user identity) ---
	notificationHandler := NewNotificationHandler(deps.NotificationSvc)
	migrationHandler := NewMigrationHandler(deps.MigrationSvc)
	internal := v1.Group("/internal")
	{
		internal.PATCH("/wallets/:walletId", walletHandler.Patch)
		internal.POST("/wallets/:walletId/sessions/:orderId/notifications", notificationHandler.Notify)

		migrations := internal.Group("/migrations")
		{
			migrations.POST("/wallets", migrationHandler.CreateWallet)
			migrations.PUT("/wallets/details", migrationHandler.UpdateDetails)
			migrations.POST("/wallets/delete", migrationHandler.Delete)
		}
	}

	return r
}

// HealthCheck handles GET /health — deep health check verifying all dependencies.
func HealthCheck(checkers ...ports.HealthChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		type depStatus struct {
			Status string `json:"status"`
			Error  string `json:"error,omitempty"`
		}

		deps := make(map[string]depStatus)
		allHealthy := true

		for _, checker := range checkers {
			if err := checker.Ping(c.Request.Context()); err != nil {
				deps[checker.Name()] = depStatus{Status: "unhealthy", Error: err.Error()}
				allHealthy = false
			} else {
				deps[checker.Name()] = depStatus{Status: "healthy"}
			}
		}

		status := "healthy"
		httpCode := http.StatusOK
		if !allHealthy {
			status = "degraded"
			httpCode = http.StatusServiceUnavailable
		}

		c.JSON(httpCode, gin.H{
			"status":       status,
			"dependencies": deps,
		})
	}
}
