// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"time"

	"upkeep/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for maintenance persistence.
var (
	// ErrMaintenanceTaskNotFound is returned when a maintenance task is not found.
	ErrMaintenanceTaskNotFound = errors.New("maintenance task not found")
	// ErrDuplicateCycleNumber is returned when a history cycle number is already taken for the device.
	ErrDuplicateCycleNumber = errors.New("maintenance history cycle number already exists")
)

// TaskFilter narrows task queries. Zero values mean "no constraint".
// Date bounds are inclusive and compared against calendar dates.
type TaskFilter struct {
	OrganizationID string
	DeviceID       *uuid.UUID
	Statuses       []entity.MaintenanceStatus
	DueFrom        *time.Time
	DueTo          *time.Time
	DueBefore      *time.Time // exclusive upper bound on next_maintenance
	CompletedFrom  *time.Time // lower bound on last_maintenance
	Limit          int
}

// DueTaskFilter selects the tasks the scheduler has to notify about.
type DueTaskFilter struct {
	OrganizationID string // empty means every organization
	DueOnOrBefore  time.Time
	Statuses       []entity.MaintenanceStatus
}

// MaintenanceTaskRepository defines the interface for maintenance task persistence.
type MaintenanceTaskRepository interface {
	// CreateTask persists a new task.
	CreateTask(ctx context.Context, task *entity.MaintenanceTask) error

	// FindTaskByID retrieves a task by its unique ID.
	FindTaskByID(ctx context.Context, id uuid.UUID) (*entity.MaintenanceTask, error)

	// FindTaskByIDForUpdate retrieves a task and locks its row until the surrounding transaction ends.
	FindTaskByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.MaintenanceTask, error)

	// FindTaskByTitle looks a task up by its natural key.
	FindTaskByTitle(ctx context.Context, deviceID uuid.UUID, title, organizationID string) (*entity.MaintenanceTask, error)

	// FindTasks lists tasks matching filter ordered by next due date, then creation time.
	FindTasks(ctx context.Context, filter TaskFilter) ([]*entity.MaintenanceTask, error)

	// FindTasksByDevice lists every task of a device ordered by creation time.
	FindTasksByDevice(ctx context.Context, deviceID uuid.UUID) ([]*entity.MaintenanceTask, error)

	// FindDueTasks lists due tasks joined with device name and assignee profile.
	FindDueTasks(ctx context.Context, filter DueTaskFilter) ([]*entity.DueTask, error)

	// UpdateTask overwrites the mutable fields of a task.
	UpdateTask(ctx context.Context, task *entity.MaintenanceTask) error

	// MarkOverdue flips the given tasks to OVERDUE when they are still ACTIVE and due before today.
	// It returns how many rows changed.
	MarkOverdue(ctx context.Context, ids []uuid.UUID, today, now time.Time) (int64, error)

	// ClaimReminder reserves the next reminder ordinal of a task for day.
	// It returns 0 once limit reminders were already claimed that day.
	ClaimReminder(ctx context.Context, taskID uuid.UUID, day time.Time, limit int) (int, error)

	// DeleteTasks removes tasks by ID.
	DeleteTasks(ctx context.Context, ids []uuid.UUID) (int64, error)

	// DeleteTasksByDevice removes every task of a device.
	DeleteTasksByDevice(ctx context.Context, deviceID uuid.UUID) (int64, error)
}

// MaintenanceHistoryRepository defines the interface for the append-only maintenance history.
type MaintenanceHistoryRepository interface {
	// CreateHistory appends a history record.
	CreateHistory(ctx context.Context, history *entity.MaintenanceHistory) error

	// NextCycleNumber returns the cycle number the next record of the device must use.
	NextCycleNumber(ctx context.Context, deviceID uuid.UUID) (int, error)

	// FindHistoryByDevice lists the most recent records of a device, newest first.
	FindHistoryByDevice(ctx context.Context, deviceID uuid.UUID, limit int) ([]*entity.MaintenanceHistory, error)
}
