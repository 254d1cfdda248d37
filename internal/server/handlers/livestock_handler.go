package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/kouassidev/ferme/internal/domain/models"
	"github.com/kouassidev/ferme/internal/service/livestock"
)

// LivestockHandler handles the animal register endpoints.
type LivestockHandler struct {
	svc    *livestock.Service
	logger *zap.Logger
}

// NewLivestockHandler constructs the HTTP handler adapter.
func NewLivestockHandler(svc *livestock.Service, logger *zap.Logger) *LivestockHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LivestockHandler{svc: svc, logger: logger}
}

// Add registers an animal.
func (h *LivestockHandler) Add(c *gin.Context) {
	var animal models.Animal
	if err := c.ShouldBindJSON(&animal); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if animal.ID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id is required"})
		return
	}

	err := h.svc.Add(c.Request.Context(), animal)
	switch {
	case errors.Is(err, livestock.ErrDuplicateID):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case err != nil:
		h.logger.Error("failed adding animal", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "unable to add animal"})
	default:
		c.Status(http.StatusCreated)
	}
}

// List returns every animal.
func (h *LivestockHandler) List(c *gin.Context) {
	animals, err := h.svc.List(c.Request.Context())
	if err != nil {
		h.logger.Error("failed listing animals", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "unable to list animals"})
		return
	}
	c.JSON(http.StatusOK, animals)
}

// Update applies a partial update to one animal.
func (h *LivestockHandler) Update(c *gin.Context) {
	var update models.AnimalUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	err := h.svc.Update(c.Request.Context(), c.Param("id"), update)
	switch {
	case errors.Is(err, livestock.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case err != nil:
		h.logger.Error("failed updating animal", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "unable to update animal"})
	default:
		c.Status(http.StatusNoContent)
	}
}

// Delete removes one animal.
func (h *LivestockHandler) Delete(c *gin.Context) {
	err := h.svc.Delete(c.Request.Context(), c.Param("id"))
	switch {
	case errors.Is(err, livestock.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case err != nil:
		h.logger.Error("failed deleting animal", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "unable to delete animal"})
	default:
		c.Status(http.StatusNoContent)
	}
}
