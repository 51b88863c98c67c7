package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pageza/smoothie-orders/backend/internal/service"
	"github.com/pageza/smoothie-orders/backend/internal/types"
)

type CatalogHandler struct {
	catalog service.ICatalogService
}

func NewCatalogHandler(catalog service.ICatalogService) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

func (h *CatalogHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/fruits", h.ListFruits)
}

// ListFruits answers 200 even when the catalog is unavailable; the list is
// then empty and the error says why.
func (h *CatalogHandler) ListFruits(c *gin.Context) {
	catalog, err := h.catalog.LoadCatalog(c.Request.Context())
	resp := types.FruitsResponse{Fruits: catalog.Options()}
	if err != nil {
		resp.Error = "Error fetching data from the catalog: " + err.Error()
	}
	c.JSON(http.StatusOK, resp)
}
