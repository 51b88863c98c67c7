package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pageza/smoothie-orders/backend/internal/api"
	"github.com/pageza/smoothie-orders/backend/internal/metrics"
	"github.com/pageza/smoothie-orders/backend/internal/middleware"
)

// SetupRouter configures the application routes
func SetupRouter(svc api.Services, logger *zap.Logger) *gin.Engine {
	router := gin.New()

	router.Use(middleware.Recovery(logger))
	router.Use(middleware.RequestLogger(logger))
	router.Use(metrics.Middleware())
	router.Use(middleware.CORS())

	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	svc.Logger = logger
	api.RegisterRoutes(router, svc)

	return router
}
