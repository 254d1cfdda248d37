package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/kouassidev/ferme/internal/service/alerts"
	"github.com/kouassidev/ferme/internal/service/dashboard"
)

// DashboardHandler handles the overview and alert endpoints.
type DashboardHandler struct {
	dashboardSvc *dashboard.Service
	alertsSvc    *alerts.Service
	logger       *zap.Logger
}

// NewDashboardHandler constructs the HTTP handler adapter.
func NewDashboardHandler(dashboardSvc *dashboard.Service, alertsSvc *alerts.Service, logger *zap.Logger) *DashboardHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DashboardHandler{dashboardSvc: dashboardSvc, alertsSvc: alertsSvc, logger: logger}
}

// Overview returns the full digest: quick stats, balance and alerts.
func (h *DashboardHandler) Overview(c *gin.Context) {
	digest, err := h.dashboardSvc.BuildDigest(c.Request.Context())
	if err != nil {
		h.logger.Error("failed building dashboard", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "unable to build dashboard"})
		return
	}
	c.JSON(http.StatusOK, digest)
}

// Alerts returns the aggregated alert list and whether the farm is all clear.
func (h *DashboardHandler) Alerts(c *gin.Context) {
	list, fired, err := h.alertsSvc.CollectAlerts(c.Request.Context())
	if err != nil {
		h.logger.Error("failed collecting alerts", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "unable to collect alerts"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"all_clear": !fired, "alerts": list})
}
