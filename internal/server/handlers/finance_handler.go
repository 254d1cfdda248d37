package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/kouassidev/ferme/internal/domain/models"
	"github.com/kouassidev/ferme/internal/service/finance"
)

// FinanceHandler handles the ledger and report endpoints.
type FinanceHandler struct {
	svc    *finance.Service
	logger *zap.Logger
}

// NewFinanceHandler constructs the HTTP handler adapter.
func NewFinanceHandler(svc *finance.Service, logger *zap.Logger) *FinanceHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FinanceHandler{svc: svc, logger: logger}
}

type transactionRequest struct {
	Kind        string  `json:"kind" binding:"required"`
	Amount      float64 `json:"amount" binding:"required,gt=0"`
	Description string  `json:"description"`
}

// RecordTransaction appends a ledger entry.
func (h *FinanceHandler) RecordTransaction(c *gin.Context) {
	var req transactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	txn, err := h.svc.RecordTransaction(c.Request.Context(), models.TransactionKind(req.Kind), req.Amount, req.Description)
	switch {
	case errors.Is(err, finance.ErrUnknownKind):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case err != nil:
		h.logger.Error("failed recording transaction", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "unable to record transaction"})
	default:
		c.JSON(http.StatusCreated, txn)
	}
}

// History returns the full ledger.
func (h *FinanceHandler) History(c *gin.Context) {
	ledger, err := h.svc.History(c.Request.Context())
	if err != nil {
		h.logger.Error("failed loading ledger", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "unable to load ledger"})
		return
	}
	c.JSON(http.StatusOK, ledger)
}

// Balance returns the current running balance.
func (h *FinanceHandler) Balance(c *gin.Context) {
	balance, err := h.svc.Balance(c.Request.Context())
	if err != nil {
		h.logger.Error("failed loading balance", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "unable to load balance"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"balance": balance})
}

// ProfitLoss returns income, expense and net for an inclusive date range.
func (h *FinanceHandler) ProfitLoss(c *gin.Context) {
	report, err := h.svc.ProfitLoss(c.Request.Context(), c.Query("start"), c.Query("end"))
	switch {
	case errors.Is(err, finance.ErrInvalidDateRange):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case err != nil:
		h.logger.Error("failed building profit/loss report", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "unable to build report"})
	default:
		c.JSON(http.StatusOK, report)
	}
}

// ExpensesByCategory returns the keyword-bucketed expense breakdown.
func (h *FinanceHandler) ExpensesByCategory(c *gin.Context) {
	report, err := h.svc.ExpensesByCategory(c.Request.Context(), c.Query("start"), c.Query("end"))
	switch {
	case errors.Is(err, finance.ErrInvalidDateRange):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case err != nil:
		h.logger.Error("failed building expense report", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "unable to build report"})
	default:
		c.JSON(http.StatusOK, report)
	}
}
