package http

import (
	"net/http"

	"scenario2050/internal/features/config/application"

	"github.com/gin-gonic/gin"
)

// AppConfigHandler holds the catalog service.
type AppConfigHandler struct {
	catalogService application.CatalogService
}

// NewAppConfigHandler creates a new AppConfigHandler.
func NewAppConfigHandler(catalogService application.CatalogService) *AppConfigHandler {
	return &AppConfigHandler{
		catalogService: catalogService,
	}
}

// GetAppConfigHandler handles fetching the public catalog.
func (h *AppConfigHandler) GetAppConfigHandler(c *gin.Context) {
	c.JSON(http.StatusOK, h.catalogService.Catalog())
}
