package workforce

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/kouassidev/ferme/internal/domain/models"
)

// TaskReassigner clears task assignments held by a removed worker. It is the
// standard subscriber wired to the worker removal event, keeping the worker
// and task stores decoupled from each other.
type TaskReassigner struct {
	store  Store
	logger *zap.Logger
}

// NewTaskReassigner builds the reassignment subscriber.
func NewTaskReassigner(store Store, logger *zap.Logger) *TaskReassigner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TaskReassigner{store: store, logger: logger}
}

// HandleWorkerRemoved marks every task assigned to the removed worker as
// unassigned.
func (r *TaskReassigner) HandleWorkerRemoved(ctx context.Context, event models.WorkerRemoved) error {
	col, err := r.store.LoadTasks(ctx)
	if err != nil {
		return fmt.Errorf("load tasks: %w", err)
	}

	cleared := 0
	for i := range col.Items {
		if col.Items[i].AssignedWorkerID != nil && *col.Items[i].AssignedWorkerID == event.WorkerID {
			col.Items[i].AssignedWorkerName = models.UnassignedWorker
			col.Items[i].AssignedWorkerID = nil
			cleared++
		}
	}
	if cleared == 0 {
		return nil
	}

	if err := r.store.SaveTasks(ctx, col); err != nil {
		return fmt.Errorf("save tasks: %w", err)
	}
	r.logger.Info("tasks unassigned after worker removal",
		zap.Int("worker_id", event.WorkerID),
		zap.Int("tasks", cleared))
	return nil
}
