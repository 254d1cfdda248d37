package workforce

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/kouassidev/ferme/internal/domain/models"
	"github.com/kouassidev/ferme/internal/repository/flatfile"
)

// ErrWorkerNotFound indicates no worker carries the given id.
var ErrWorkerNotFound = errors.New("worker not found")

// ErrTaskNotFound indicates no task carries the given id.
var ErrTaskNotFound = errors.New("task not found")

// ErrDuplicateName indicates the worker name is already taken, ignoring case.
var ErrDuplicateName = errors.New("worker name already exists")

// ErrInvalidStatus indicates a task status outside the allowed set.
var ErrInvalidStatus = errors.New("invalid task status")

// Store is the slice of the record store holding workers and tasks.
type Store interface {
	LoadWorkers(ctx context.Context) (flatfile.Sequenced[models.Worker], error)
	SaveWorkers(ctx context.Context, col flatfile.Sequenced[models.Worker]) error
	LoadTasks(ctx context.Context) (flatfile.Sequenced[models.Task], error)
	SaveTasks(ctx context.Context, col flatfile.Sequenced[models.Task]) error
}

// RemovalSubscriber reacts to a worker being deleted. Subscribers run after
// the worker is gone; their failures are logged, never propagated.
type RemovalSubscriber interface {
	HandleWorkerRemoved(ctx context.Context, event models.WorkerRemoved) error
}

// Service manages workers and the tasks assigned to them.
type Service struct {
	store       Store
	logger      *zap.Logger
	now         func() time.Time
	subscribers []RemovalSubscriber
}

// NewService wires a workforce service instance.
func NewService(store Store, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{store: store, logger: logger, now: time.Now}
}

// SubscribeWorkerRemoved registers a subscriber for worker deletions.
func (s *Service) SubscribeWorkerRemoved(sub RemovalSubscriber) {
	s.subscribers = append(s.subscribers, sub)
}

func maxWorkerID(items []models.Worker) int {
	max := 0
	for _, w := range items {
		if w.ID > max {
			max = w.ID
		}
	}
	return max
}

func maxTaskID(items []models.Task) int {
	max := 0
	for _, t := range items {
		if t.ID > max {
			max = t.ID
		}
	}
	return max
}

// AddWorker registers a worker and returns the assigned id. Names are unique
// ignoring case.
func (s *Service) AddWorker(ctx context.Context, name, contact, role string) (int, error) {
	col, err := s.store.LoadWorkers(ctx)
	if err != nil {
		return 0, fmt.Errorf("load workers: %w", err)
	}

	for _, existing := range col.Items {
		if strings.EqualFold(existing.Name, name) {
			return 0, fmt.Errorf("%w: %q", ErrDuplicateName, name)
		}
	}

	worker := models.Worker{
		ID:      col.Allocate(maxWorkerID(col.Items)),
		Name:    name,
		Contact: contact,
		Role:    role,
		HiredAt: s.now().Format(models.DateLayout),
	}
	col.Items = append(col.Items, worker)

	if err := s.store.SaveWorkers(ctx, col); err != nil {
		return 0, fmt.Errorf("save workers: %w", err)
	}
	s.logger.Info("worker added", zap.Int("id", worker.ID), zap.String("name", name))
	return worker.ID, nil
}

// ListWorkers returns every worker.
func (s *Service) ListWorkers(ctx context.Context) ([]models.Worker, error) {
	col, err := s.store.LoadWorkers(ctx)
	if err != nil {
		return nil, fmt.Errorf("load workers: %w", err)
	}
	return col.Items, nil
}

// DeleteWorker removes the worker and publishes a removal event so task
// assignments held by the worker get cleared.
func (s *Service) DeleteWorker(ctx context.Context, id int) error {
	col, err := s.store.LoadWorkers(ctx)
	if err != nil {
		return fmt.Errorf("load workers: %w", err)
	}

	kept := col.Items[:0]
	for _, worker := range col.Items {
		if worker.ID != id {
			kept = append(kept, worker)
		}
	}
	if len(kept) == len(col.Items) {
		return fmt.Errorf("%w: id %d", ErrWorkerNotFound, id)
	}
	col.Items = kept

	if err := s.store.SaveWorkers(ctx, col); err != nil {
		return fmt.Errorf("save workers: %w", err)
	}
	s.logger.Info("worker deleted", zap.Int("id", id))

	event := models.WorkerRemoved{WorkerID: id}
	for _, sub := range s.subscribers {
		if err := sub.HandleWorkerRemoved(ctx, event); err != nil {
			s.logger.Warn("worker removal subscriber failed", zap.Int("worker_id", id), zap.Error(err))
		}
	}
	return nil
}

// AddTask registers a task, resolving the optional assignee by worker id. An
// unknown assignee is logged and the task saved unassigned rather than
// rejected.
func (s *Service) AddTask(ctx context.Context, name, description, dueDate string, assignedWorkerID *int) (models.Task, error) {
	workerName := models.UnassignedWorker
	if assignedWorkerID != nil {
		workers, err := s.store.LoadWorkers(ctx)
		if err != nil {
			return models.Task{}, fmt.Errorf("load workers: %w", err)
		}
		found := false
		for _, worker := range workers.Items {
			if worker.ID == *assignedWorkerID {
				workerName = worker.Name
				found = true
				break
			}
		}
		if !found {
			s.logger.Warn("assignee not found, saving task unassigned", zap.Int("worker_id", *assignedWorkerID))
			assignedWorkerID = nil
		}
	}

	col, err := s.store.LoadTasks(ctx)
	if err != nil {
		return models.Task{}, fmt.Errorf("load tasks: %w", err)
	}

	task := models.Task{
		ID:                 col.Allocate(maxTaskID(col.Items)),
		Name:               name,
		Description:        description,
		DueDate:            dueDate,
		Status:             models.TaskStatusInProgress,
		AssignedWorkerName: workerName,
		AssignedWorkerID:   assignedWorkerID,
		CreatedAt:          s.now().Format(models.TimestampLayout),
	}
	col.Items = append(col.Items, task)

	if err := s.store.SaveTasks(ctx, col); err != nil {
		return models.Task{}, fmt.Errorf("save tasks: %w", err)
	}
	s.logger.Info("task added", zap.Int("id", task.ID), zap.String("name", name))
	return task, nil
}

// ListTasks returns every task.
func (s *Service) ListTasks(ctx context.Context) ([]models.Task, error) {
	col, err := s.store.LoadTasks(ctx)
	if err != nil {
		return nil, fmt.Errorf("load tasks: %w", err)
	}
	return col.Items, nil
}

// UpdateTaskStatus moves a task between in progress, done and cancelled.
func (s *Service) UpdateTaskStatus(ctx context.Context, id int, status string) error {
	normalized := strings.ToLower(strings.TrimSpace(status))
	switch normalized {
	case models.TaskStatusInProgress, models.TaskStatusDone, models.TaskStatusCancelled:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	col, err := s.store.LoadTasks(ctx)
	if err != nil {
		return fmt.Errorf("load tasks: %w", err)
	}

	for i := range col.Items {
		if col.Items[i].ID != id {
			continue
		}
		col.Items[i].Status = normalized
		if err := s.store.SaveTasks(ctx, col); err != nil {
			return fmt.Errorf("save tasks: %w", err)
		}
		s.logger.Info("task status updated", zap.Int("id", id), zap.String("status", normalized))
		return nil
	}
	return fmt.Errorf("%w: id %d", ErrTaskNotFound, id)
}

// DeleteTask removes the task with the given id.
func (s *Service) DeleteTask(ctx context.Context, id int) error {
	col, err := s.store.LoadTasks(ctx)
	if err != nil {
		return fmt.Errorf("load tasks: %w", err)
	}

	kept := col.Items[:0]
	for _, task := range col.Items {
		if task.ID != id {
			kept = append(kept, task)
		}
	}
	if len(kept) == len(col.Items) {
		return fmt.Errorf("%w: id %d", ErrTaskNotFound, id)
	}
	col.Items = kept

	if err := s.store.SaveTasks(ctx, col); err != nil {
		return fmt.Errorf("save tasks: %w", err)
	}
	s.logger.Info("task deleted", zap.Int("id", id))
	return nil
}
