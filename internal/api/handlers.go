package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/pageza/smoothie-orders/backend/internal/database"
	"github.com/pageza/smoothie-orders/backend/internal/middleware"
	"github.com/pageza/smoothie-orders/backend/internal/service"
	"github.com/pageza/smoothie-orders/backend/internal/workflow"
)

const healthCheckTimeout = 2 * time.Second

// HealthCheck returns the health status of the API. The order database must
// answer a ping when one is configured.
func HealthCheck(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if db != nil {
			ctx, cancel := context.WithTimeout(c.Request.Context(), healthCheckTimeout)
			defer cancel()
			if err := database.HealthCheck(ctx, db); err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{
					"status": "unhealthy",
					"error":  err.Error(),
				})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"message": "Smoothie order API is running",
			"version": "v1.0.0",
		})
	}
}

// Services are the dependencies shared by all handlers
type Services struct {
	Catalog   service.ICatalogService
	Nutrition service.INutritionService
	Orders    service.IOrderService
	Sessions  workflow.Store
	// DB is pinged by the health endpoints when set.
	DB *gorm.DB
	// OrderLimiter is optional; submits are unlimited without it.
	OrderLimiter middleware.Limiter
	Logger       *zap.Logger
}

func (s Services) workflowDeps() workflow.Deps {
	return workflow.Deps{
		Catalog:   s.Catalog,
		Nutrition: s.Nutrition,
		Orders:    s.Orders,
		Logger:    s.Logger,
	}
}

func (s Services) submitGuard() []gin.HandlerFunc {
	if s.OrderLimiter == nil {
		return nil
	}
	return []gin.HandlerFunc{middleware.RateLimit(s.OrderLimiter, s.Logger)}
}

// RegisterRoutes registers all API routes
func RegisterRoutes(router *gin.Engine, svc Services) {
	if svc.Logger == nil {
		svc.Logger = zap.NewNop()
	}

	health := HealthCheck(svc.DB)
	router.GET("/health", health)
	router.GET("/api/health", health)

	v1 := router.Group("/api/v1")
	NewCatalogHandler(svc.Catalog).RegisterRoutes(v1)
	NewSessionHandler(svc).RegisterRoutes(v1)
	NewOrderHandler(svc).RegisterRoutes(v1)
}
