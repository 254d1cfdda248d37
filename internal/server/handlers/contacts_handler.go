package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/kouassidev/ferme/internal/domain/models"
	"github.com/kouassidev/ferme/internal/service/contacts"
)

// ContactsHandler handles the supplier and customer address book endpoints.
type ContactsHandler struct {
	svc    *contacts.Service
	logger *zap.Logger
}

// NewContactsHandler constructs the HTTP handler adapter.
func NewContactsHandler(svc *contacts.Service, logger *zap.Logger) *ContactsHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ContactsHandler{svc: svc, logger: logger}
}

// Add registers a contact.
func (h *ContactsHandler) Add(c *gin.Context) {
	var contact models.Contact
	if err := c.ShouldBindJSON(&contact); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if contact.CompanyName == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "company_name is required"})
		return
	}

	id, err := h.svc.Add(c.Request.Context(), contact)
	switch {
	case errors.Is(err, contacts.ErrInvalidType):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, contacts.ErrDuplicateContact):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case err != nil:
		h.logger.Error("failed adding contact", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "unable to add contact"})
	default:
		c.JSON(http.StatusCreated, gin.H{"id": id})
	}
}

// List returns contacts, filtered by ?type=supplier|customer when provided.
func (h *ContactsHandler) List(c *gin.Context) {
	list, err := h.svc.List(c.Request.Context(), c.Query("type"))
	if err != nil {
		h.logger.Error("failed listing contacts", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "unable to list contacts"})
		return
	}
	c.JSON(http.StatusOK, list)
}

// Update applies a partial update to one contact.
func (h *ContactsHandler) Update(c *gin.Context) {
	id, ok := intParam(c, "id")
	if !ok {
		return
	}

	var update models.ContactUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	err := h.svc.Update(c.Request.Context(), id, update)
	switch {
	case errors.Is(err, contacts.ErrInvalidType):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, contacts.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case err != nil:
		h.logger.Error("failed updating contact", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "unable to update contact"})
	default:
		c.Status(http.StatusNoContent)
	}
}

// Delete removes one contact.
func (h *ContactsHandler) Delete(c *gin.Context) {
	id, ok := intParam(c, "id")
	if !ok {
		return
	}

	err := h.svc.Delete(c.Request.Context(), id)
	switch {
	case errors.Is(err, contacts.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case err != nil:
		h.logger.Error("failed deleting contact", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "unable to delete contact"})
	default:
		c.Status(http.StatusNoContent)
	}
}
