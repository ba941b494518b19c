package app

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Mukunt07/subramaniya-mess/internal/limiter"
	http_middleware "github.com/Mukunt07/subramaniya-mess/internal/middleware/http"
	"github.com/Mukunt07/subramaniya-mess/internal/provider"
	"github.com/Mukunt07/subramaniya-mess/internal/service"
	"github.com/Mukunt07/subramaniya-mess/pkg/snowflake"
)

// Router wires every service onto the gin engine.
type Router struct {
	engine *gin.Engine
}

// NewRouter builds the gin engine and registers all routes. Everything under
// /api/v1 except login and health requires a valid token; the two billing
// mutations additionally pass their named rate-limit policies.
func NewRouter(
	mode provider.AppMode,
	logger *zap.Logger,
	authMiddleware http_middleware.AuthMiddleware,
	limiterManager *limiter.Manager,
	idGenerator *snowflake.Generator,
	authService *service.AuthService,
	billingService *service.BillingService,
	menuService *service.MenuService,
	settingsService *service.SettingsService,
	analyticsService *service.AnalyticsService,
	activityService *service.ActivityService,
) *Router {
	if mode != "dev" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(http_middleware.NewRequestIDMiddleware(idGenerator))

	engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := engine.Group("/api/v1")
	v1.POST("/auth/login", authService.Login)

	authed := v1.Group("")
	authed.Use(gin.HandlerFunc(authMiddleware))
	{
		authed.POST("/bills",
			http_middleware.CreateRateLimitMiddleware(limiterManager, "create_bill"),
			billingService.CreateBill)
		authed.GET("/bills/:id", billingService.GetBill)
		authed.GET("/orders", billingService.ListOrders)
		authed.POST("/orders/:id/cancel",
			http_middleware.CreateRateLimitMiddleware(limiterManager, "cancel_order"),
			billingService.CancelOrder)

		authed.GET("/menu", menuService.ListMenu)
		authed.POST("/menu", menuService.AddItem)
		authed.POST("/menu/restore", menuService.RestoreDefaults)
		authed.GET("/menu/:id", menuService.GetItem)
		authed.PUT("/menu/:id", menuService.UpdateItem)
		authed.PUT("/menu/:id/stock", menuService.UpdateStock)
		authed.POST("/menu/:id/toggle", menuService.ToggleAvailability)
		authed.DELETE("/menu/:id", menuService.DeleteItem)

		authed.GET("/settings", settingsService.GetSettings)
		authed.PUT("/settings", settingsService.UpdateSettings)

		authed.GET("/analytics/report", analyticsService.GetReport)
		authed.GET("/analytics/stats", analyticsService.GetDashboardStats)

		authed.GET("/activities", activityService.ListActivities)
	}

	logger.Info("router initialized")
	return &Router{engine: engine}
}

// Engine exposes the underlying gin engine for the HTTP server.
func (r *Router) Engine() http.Handler {
	return r.engine
}
