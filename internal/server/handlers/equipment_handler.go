package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/kouassidev/ferme/internal/domain/models"
	"github.com/kouassidev/ferme/internal/service/equipment"
)

// EquipmentHandler handles the equipment register and maintenance endpoints.
type EquipmentHandler struct {
	svc    *equipment.Service
	logger *zap.Logger
}

// NewEquipmentHandler constructs the HTTP handler adapter.
func NewEquipmentHandler(svc *equipment.Service, logger *zap.Logger) *EquipmentHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EquipmentHandler{svc: svc, logger: logger}
}

// Add registers a piece of equipment.
func (h *EquipmentHandler) Add(c *gin.Context) {
	var eq models.Equipment
	if err := c.ShouldBindJSON(&eq); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if eq.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}

	id, err := h.svc.Add(c.Request.Context(), eq)
	switch {
	case errors.Is(err, equipment.ErrDuplicateName):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case err != nil:
		h.logger.Error("failed adding equipment", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "unable to add equipment"})
	default:
		c.JSON(http.StatusCreated, gin.H{"id": id})
	}
}

// List returns every piece of equipment.
func (h *EquipmentHandler) List(c *gin.Context) {
	items, err := h.svc.List(c.Request.Context())
	if err != nil {
		h.logger.Error("failed listing equipment", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "unable to list equipment"})
		return
	}
	c.JSON(http.StatusOK, items)
}

// Update applies a partial update to one piece of equipment.
func (h *EquipmentHandler) Update(c *gin.Context) {
	id, ok := intParam(c, "id")
	if !ok {
		return
	}

	var update models.EquipmentUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	err := h.svc.Update(c.Request.Context(), id, update)
	switch {
	case errors.Is(err, equipment.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case err != nil:
		h.logger.Error("failed updating equipment", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "unable to update equipment"})
	default:
		c.Status(http.StatusNoContent)
	}
}

type maintenanceRequest struct {
	Date        string  `json:"date" binding:"required"`
	Description string  `json:"description" binding:"required"`
	Cost        float64 `json:"cost"`
}

// RecordMaintenance appends a maintenance entry; a positive cost also posts
// the matching expense.
func (h *EquipmentHandler) RecordMaintenance(c *gin.Context) {
	id, ok := intParam(c, "id")
	if !ok {
		return
	}

	var req maintenanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	err := h.svc.RecordMaintenance(c.Request.Context(), id, req.Date, req.Description, req.Cost)
	switch {
	case errors.Is(err, equipment.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case err != nil:
		h.logger.Error("failed recording maintenance", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "unable to record maintenance"})
	default:
		c.Status(http.StatusCreated)
	}
}

// MaintenanceHistory returns the maintenance log for one piece of equipment.
func (h *EquipmentHandler) MaintenanceHistory(c *gin.Context) {
	id, ok := intParam(c, "id")
	if !ok {
		return
	}

	history, err := h.svc.MaintenanceHistory(c.Request.Context(), id)
	switch {
	case errors.Is(err, equipment.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case err != nil:
		h.logger.Error("failed loading maintenance history", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "unable to load maintenance history"})
	default:
		c.JSON(http.StatusOK, history)
	}
}

// Delete removes one piece of equipment.
func (h *EquipmentHandler) Delete(c *gin.Context) {
	id, ok := intParam(c, "id")
	if !ok {
		return
	}

	err := h.svc.Delete(c.Request.Context(), id)
	switch {
	case errors.Is(err, equipment.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case err != nil:
		h.logger.Error("failed deleting equipment", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "unable to delete equipment"})
	default:
		c.Status(http.StatusNoContent)
	}
}
