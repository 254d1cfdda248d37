package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/kouassidev/ferme/internal/service/inventory"
)

// StockHandler handles the stock endpoints including sales and purchases.
type StockHandler struct {
	svc    *inventory.Service
	logger *zap.Logger
}

// NewStockHandler constructs the HTTP handler adapter.
func NewStockHandler(svc *inventory.Service, logger *zap.Logger) *StockHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StockHandler{svc: svc, logger: logger}
}

type upsertStockRequest struct {
	Name           string `json:"name" binding:"required"`
	Quantity       int    `json:"quantity"`
	AlertThreshold int    `json:"alert_threshold"`
}

// Upsert creates a stock item or overwrites its quantity and threshold.
func (h *StockHandler) Upsert(c *gin.Context) {
	var req upsertStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.svc.UpsertItem(c.Request.Context(), req.Name, req.Quantity, req.AlertThreshold); err != nil {
		h.logger.Error("failed upserting stock item", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "unable to save stock item"})
		return
	}

	c.Status(http.StatusNoContent)
}

// List returns every stock item.
func (h *StockHandler) List(c *gin.Context) {
	items, err := h.svc.List(c.Request.Context())
	if err != nil {
		h.logger.Error("failed listing stock", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "unable to list stock"})
		return
	}
	c.JSON(http.StatusOK, items)
}

// Quantity returns the on-hand count for one item, looked up by ?name=.
func (h *StockHandler) Quantity(c *gin.Context) {
	name := c.Query("name")
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name query parameter is required"})
		return
	}

	quantity, err := h.svc.Quantity(c.Request.Context(), name)
	switch {
	case errors.Is(err, inventory.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case err != nil:
		h.logger.Error("failed loading quantity", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "unable to load quantity"})
	default:
		c.JSON(http.StatusOK, gin.H{"name": name, "quantity": quantity})
	}
}

type saleRequest struct {
	Name      string  `json:"name" binding:"required"`
	Quantity  int     `json:"quantity" binding:"required,gt=0"`
	UnitPrice float64 `json:"unit_price"`
	Client    string  `json:"client"`
}

// RecordSale decrements stock and posts the income side of a sale.
func (h *StockHandler) RecordSale(c *gin.Context) {
	var req saleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	err := h.svc.RecordSale(c.Request.Context(), req.Name, req.Quantity, req.UnitPrice, req.Client)
	switch {
	case errors.Is(err, inventory.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, inventory.ErrInsufficientStock):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case err != nil:
		h.logger.Error("failed recording sale", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "unable to record sale"})
	default:
		c.Status(http.StatusCreated)
	}
}

type purchaseRequest struct {
	Name           string  `json:"name" binding:"required"`
	Quantity       int     `json:"quantity" binding:"required,gt=0"`
	UnitPrice      float64 `json:"unit_price"`
	NewItem        bool    `json:"new_item"`
	AlertThreshold int     `json:"alert_threshold"`
	Supplier       string  `json:"supplier"`
}

// RecordPurchase increments stock and posts the expense side of a purchase.
func (h *StockHandler) RecordPurchase(c *gin.Context) {
	var req purchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.svc.RecordPurchase(c.Request.Context(), req.Name, req.Quantity, req.UnitPrice, req.NewItem, req.AlertThreshold, req.Supplier); err != nil {
		h.logger.Error("failed recording purchase", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "unable to record purchase"})
		return
	}

	c.Status(http.StatusCreated)
}
