package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ridloal/inventory-management/internal/inventory/service"
	"github.com/ridloal/inventory-management/internal/platform/logger"
)

type IndexHandler struct {
	catalog *service.Catalog
}

func NewIndexHandler(catalog *service.Catalog) *IndexHandler {
	return &IndexHandler{catalog: catalog}
}

func (h *IndexHandler) RegisterRoutes(router gin.IRoutes) {
	router.GET("/", h.Overview)
}

func (h *IndexHandler) Overview(c *gin.Context) {
	overview, err := h.catalog.Overview(c.Request.Context())
	if err != nil {
		logger.Error("Hdl.Overview: service error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load overview"})
		return
	}
	c.JSON(http.StatusOK, overview)
}

// Pinger is satisfied by *sql.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type HealthHandler struct {
	db Pinger
}

func NewHealthHandler(db Pinger) *HealthHandler {
	return &HealthHandler{db: db}
}

func (h *HealthHandler) RegisterRoutes(router gin.IRoutes) {
	router.GET("/healthz", h.Health)
}

func (h *HealthHandler) Health(c *gin.Context) {
	if err := h.db.PingContext(c.Request.Context()); err != nil {
		logger.Error("Hdl.Health: database unreachable", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
