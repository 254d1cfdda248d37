package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/kouassidev/ferme/internal/domain/models"
	"github.com/kouassidev/ferme/internal/service/crops"
)

// CropsHandler handles the crop register endpoints. Crops are addressed by
// plot name.
type CropsHandler struct {
	svc    *crops.Service
	logger *zap.Logger
}

// NewCropsHandler constructs the HTTP handler adapter.
func NewCropsHandler(svc *crops.Service, logger *zap.Logger) *CropsHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CropsHandler{svc: svc, logger: logger}
}

// Add registers a crop.
func (h *CropsHandler) Add(c *gin.Context) {
	var crop models.Crop
	if err := c.ShouldBindJSON(&crop); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if crop.PlotName == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "plot_name is required"})
		return
	}

	err := h.svc.Add(c.Request.Context(), crop)
	switch {
	case errors.Is(err, crops.ErrDuplicatePlot):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case err != nil:
		h.logger.Error("failed adding crop", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "unable to add crop"})
	default:
		c.Status(http.StatusCreated)
	}
}

// List returns every crop.
func (h *CropsHandler) List(c *gin.Context) {
	items, err := h.svc.List(c.Request.Context())
	if err != nil {
		h.logger.Error("failed listing crops", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "unable to list crops"})
		return
	}
	c.JSON(http.StatusOK, items)
}

// Update applies a partial update to one crop.
func (h *CropsHandler) Update(c *gin.Context) {
	var update models.CropUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	err := h.svc.Update(c.Request.Context(), c.Param("plot"), update)
	switch {
	case errors.Is(err, crops.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case err != nil:
		h.logger.Error("failed updating crop", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "unable to update crop"})
	default:
		c.Status(http.StatusNoContent)
	}
}

// Delete removes one crop.
func (h *CropsHandler) Delete(c *gin.Context) {
	err := h.svc.Delete(c.Request.Context(), c.Param("plot"))
	switch {
	case errors.Is(err, crops.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case err != nil:
		h.logger.Error("failed deleting crop", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "unable to delete crop"})
	default:
		c.Status(http.StatusNoContent)
	}
}
