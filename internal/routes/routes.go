package routes

import (
	"promanager_backend/internal/handlers"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RegisterRoutes wires every handler under /api and exposes /metrics.
func RegisterRoutes(ginRouter *gin.Engine, appHandlers *handlers.AppHandlers, authMW gin.HandlerFunc) {
	api := ginRouter.Group("/api")
	{
		appHandlers.UserHandler.RegisterRoutes(api, authMW)
		appHandlers.ApplicationHandler.RegisterRoutes(api, authMW)
		appHandlers.AffiliationHandler.RegisterRoutes(api, authMW)
		appHandlers.PreferencesHandler.RegisterRoutes(api, authMW)
	}

	ginRouter.GET("/metrics", gin.WrapH(promhttp.Handler()))
}
