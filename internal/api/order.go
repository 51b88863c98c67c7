package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pageza/smoothie-orders/backend/internal/service"
	"github.com/pageza/smoothie-orders/backend/internal/types"
	"github.com/pageza/smoothie-orders/backend/internal/workflow"
)

// OrderHandler takes a whole order in one request, with no session and no
// nutrition lookups.
type OrderHandler struct {
	svc    Services
	logger *zap.Logger
}

func NewOrderHandler(svc Services) *OrderHandler {
	return &OrderHandler{
		svc:    svc,
		logger: svc.Logger.Named("orders"),
	}
}

func (h *OrderHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/orders", append(h.svc.submitGuard(), h.CreateOrder)...)
}

func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var req types.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if len(req.Ingredients) == 0 {
		c.JSON(http.StatusConflict, gin.H{"error": workflow.ErrNothingToSubmit.Error()})
		return
	}

	catalog, err := h.svc.Catalog.LoadCatalog(c.Request.Context())
	if err != nil {
		h.logger.Warn("catalog unavailable for order", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Error fetching data from the catalog: " + err.Error()})
		return
	}
	selection, err := workflow.ValidateSelection(catalog, req.Ingredients)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	order, err := h.svc.Orders.SubmitOrder(c.Request.Context(), selection, strings.TrimSpace(req.NameOnOrder))
	if errors.Is(err, service.ErrEmptySelection) {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Error submitting order: " + err.Error()})
		return
	}
	c.JSON(http.StatusCreated, types.OrderResponse{
		Message: workflow.MessageOrdered,
		Order:   order,
	})
}
