package models

// Task statuses. Only in-progress tasks participate in deadline alerts.
const (
	TaskStatusInProgress = "in progress"
	TaskStatusDone       = "done"
	TaskStatusCancelled  = "cancelled"
)

// UnassignedWorker is the display name a task carries when no worker holds it.
const UnassignedWorker = "unassigned"

// Worker is a farm hand. Names are unique ignoring case; IDs come from the
// store's monotonic counter and are never reused after deletion.
type Worker struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Contact string `json:"contact"`
	Role    string `json:"role"`
	HiredAt string `json:"hired_at"`
}

// Task is a unit of farm work, optionally assigned to a worker. The
// assignment is denormalized (name plus id) rather than joined; deleting the
// worker clears it.
type Task struct {
	ID                 int    `json:"id"`
	Name               string `json:"name"`
	Description        string `json:"description"`
	DueDate            string `json:"due_date"`
	Status             string `json:"status"`
	AssignedWorkerName string `json:"assigned_worker_name"`
	AssignedWorkerID   *int   `json:"assigned_worker_id"`
	CreatedAt          string `json:"created_at"`
}

// WorkerRemoved is published when a worker is deleted so interested parties
// (task reassignment, for now) can react without the worker store reaching
// into theirs.
type WorkerRemoved struct {
	WorkerID int
}
