package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/kouassidev/ferme/internal/service/workforce"
)

// WorkforceHandler handles the worker and task endpoints.
type WorkforceHandler struct {
	svc    *workforce.Service
	logger *zap.Logger
}

// NewWorkforceHandler constructs the HTTP handler adapter.
func NewWorkforceHandler(svc *workforce.Service, logger *zap.Logger) *WorkforceHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &WorkforceHandler{svc: svc, logger: logger}
}

func intParam(c *gin.Context, name string) (int, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": name + " must be an integer"})
		return 0, false
	}
	return id, true
}

type addWorkerRequest struct {
	Name    string `json:"name" binding:"required"`
	Contact string `json:"contact"`
	Role    string `json:"role"`
}

// AddWorker registers a worker.
func (h *WorkforceHandler) AddWorker(c *gin.Context) {
	var req addWorkerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	id, err := h.svc.AddWorker(c.Request.Context(), req.Name, req.Contact, req.Role)
	switch {
	case errors.Is(err, workforce.ErrDuplicateName):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case err != nil:
		h.logger.Error("failed adding worker", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "unable to add worker"})
	default:
		c.JSON(http.StatusCreated, gin.H{"id": id})
	}
}

// ListWorkers returns every worker.
func (h *WorkforceHandler) ListWorkers(c *gin.Context) {
	workers, err := h.svc.ListWorkers(c.Request.Context())
	if err != nil {
		h.logger.Error("failed listing workers", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "unable to list workers"})
		return
	}
	c.JSON(http.StatusOK, workers)
}

// DeleteWorker removes a worker; their tasks come back unassigned.
func (h *WorkforceHandler) DeleteWorker(c *gin.Context) {
	id, ok := intParam(c, "id")
	if !ok {
		return
	}

	err := h.svc.DeleteWorker(c.Request.Context(), id)
	switch {
	case errors.Is(err, workforce.ErrWorkerNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case err != nil:
		h.logger.Error("failed deleting worker", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "unable to delete worker"})
	default:
		c.Status(http.StatusNoContent)
	}
}

type addTaskRequest struct {
	Name             string `json:"name" binding:"required"`
	Description      string `json:"description"`
	DueDate          string `json:"due_date" binding:"required"`
	AssignedWorkerID *int   `json:"assigned_worker_id"`
}

// AddTask registers a task with an optional assignee.
func (h *WorkforceHandler) AddTask(c *gin.Context) {
	var req addTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	task, err := h.svc.AddTask(c.Request.Context(), req.Name, req.Description, req.DueDate, req.AssignedWorkerID)
	if err != nil {
		h.logger.Error("failed adding task", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "unable to add task"})
		return
	}

	c.JSON(http.StatusCreated, task)
}

// ListTasks returns every task.
func (h *WorkforceHandler) ListTasks(c *gin.Context) {
	tasks, err := h.svc.ListTasks(c.Request.Context())
	if err != nil {
		h.logger.Error("failed listing tasks", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "unable to list tasks"})
		return
	}
	c.JSON(http.StatusOK, tasks)
}

type taskStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// UpdateTaskStatus moves a task between in progress, done and cancelled.
func (h *WorkforceHandler) UpdateTaskStatus(c *gin.Context) {
	id, ok := intParam(c, "id")
	if !ok {
		return
	}

	var req taskStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	err := h.svc.UpdateTaskStatus(c.Request.Context(), id, req.Status)
	switch {
	case errors.Is(err, workforce.ErrInvalidStatus):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, workforce.ErrTaskNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case err != nil:
		h.logger.Error("failed updating task status", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "unable to update task"})
	default:
		c.Status(http.StatusNoContent)
	}
}

// DeleteTask removes a task.
func (h *WorkforceHandler) DeleteTask(c *gin.Context) {
	id, ok := intParam(c, "id")
	if !ok {
		return
	}

	err := h.svc.DeleteTask(c.Request.Context(), id)
	switch {
	case errors.Is(err, workforce.ErrTaskNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case err != nil:
		h.logger.Error("failed deleting task", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "unable to delete task"})
	default:
		c.Status(http.StatusNoContent)
	}
}
