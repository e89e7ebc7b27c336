// Package usecase declares the application operations exposed to the deliveries.
package usecase

import (
	"context"
	"time"

	"upkeep/internal/domain/entity"

	"github.com/google/uuid"
)

// IngestResult aggregates one generated-task batch.
type IngestResult struct {
	Processed int `json:"processed"` // tasks created
	Skipped   int `json:"skipped"`   // invalid, duplicate or failed to persist
	Assigned  int `json:"assigned"`  // tasks that received the device assignee
}

// CreateTaskInput is a manually created task.
type CreateTaskInput struct {
	DeviceID          uuid.UUID
	OrganizationID    string
	TaskName          string
	Description       string
	Frequency         string
	Priority          string
	EstimatedDuration string
	RequiredTools     string
	SafetyNotes       string
	ComponentName     string
	Category          string
	MaintenanceType   string
	NextMaintenance   *time.Time // defaults to the frequency applied to today
	AssignedTo        *uuid.UUID
	ActorID           uuid.UUID
}

// UpdateTaskInput patches a task. Nil fields are left unchanged.
type UpdateTaskInput struct {
	TaskName          *string
	Description       *string
	Frequency         *string
	Priority          *string
	EstimatedDuration *string
	RequiredTools     *string
	SafetyNotes       *string
	ComponentName     *string
	Category          *string
	NextMaintenance   *time.Time
	Status            *entity.MaintenanceStatus
	ActorID           uuid.UUID
}

// OrganizationView selects one of the organization-wide task queries.
type OrganizationView string

const (
	ViewAll       OrganizationView = ""
	ViewOverdue   OrganizationView = "overdue"
	ViewDueToday  OrganizationView = "due-today"
	ViewUpcoming  OrganizationView = "upcoming"
	ViewCompleted OrganizationView = "completed"
)

// MaintenanceUsecase manages the lifecycle of maintenance tasks.
type MaintenanceUsecase interface {
	// IngestGeneratedTasks validates, deduplicates and persists one batch for a device.
	// Only a missing device fails the whole batch.
	IngestGeneratedTasks(ctx context.Context, deviceID uuid.UUID, organizationID string, actorID uuid.UUID, tasks []entity.GeneratedTask) (*IngestResult, error)

	CreateTask(ctx context.Context, input *CreateTaskInput) (*entity.MaintenanceTask, error)
	UpdateTask(ctx context.Context, id uuid.UUID, input *UpdateTaskInput) (*entity.MaintenanceTask, error)
	GetTask(ctx context.Context, id uuid.UUID) (*entity.MaintenanceTask, error)

	// CompleteTask marks the task done today and schedules the next occurrence.
	CompleteTask(ctx context.Context, id, actorID uuid.UUID) (*entity.MaintenanceTask, error)

	// AssignTask sets the assignment without touching status or schedule.
	AssignTask(ctx context.Context, id, assigneeID, assignedByID uuid.UUID) (*entity.MaintenanceTask, error)

	// AssignDeviceTasks assigns every unassigned task of a device and returns how many changed.
	AssignDeviceTasks(ctx context.Context, deviceID, assigneeID, assignedByID uuid.UUID) (int, error)

	// SweepOverdue flips ACTIVE tasks due before today to OVERDUE.
	SweepOverdue(ctx context.Context) (int64, error)

	// RescheduleOverdue moves OVERDUE tasks to their next future occurrence and reactivates them.
	RescheduleOverdue(ctx context.Context, organizationID string) (int, error)

	// Deduplicate keeps the earliest task per title and returns how many were removed.
	Deduplicate(ctx context.Context, deviceID uuid.UUID, organizationID string) (int64, error)

	// RemoveDeviceTasks deletes every task of a removed device.
	RemoveDeviceTasks(ctx context.Context, deviceID uuid.UUID) (int64, error)

	// SnapshotActiveTasks writes a DAILY_SNAPSHOT history record per ACTIVE or OVERDUE task.
	SnapshotActiveTasks(ctx context.Context, organizationID string) ([]*entity.MaintenanceHistory, error)

	ListByDevice(ctx context.Context, deviceID uuid.UUID) ([]*entity.MaintenanceTask, error)
	ListByOrganization(ctx context.Context, organizationID string, view OrganizationView, days int) ([]*entity.MaintenanceTask, error)
	ListHistory(ctx context.Context, deviceID uuid.UUID, limit int) ([]*entity.MaintenanceHistory, error)
}
