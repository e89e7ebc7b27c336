package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// SnapshotType tells which event produced a history record.
type SnapshotType string

const (
	SnapshotUpdate     SnapshotType = "UPDATE"
	SnapshotCompletion SnapshotType = "COMPLETION"
	SnapshotDaily      SnapshotType = "DAILY_SNAPSHOT"
)

// MaintenanceHistory is an immutable audit record of a scheduling or completion event.
// CycleNumber strictly increases per device.
type MaintenanceHistory struct {
	ID              uuid.UUID         `json:"id"`
	TaskID          uuid.UUID         `json:"task_id"`
	DeviceID        uuid.UUID         `json:"device_id"`
	OrganizationID  string            `json:"organization_id"`
	TaskName        string            `json:"task_name"`
	CycleNumber     int               `json:"cycle_number"`
	ScheduledDate   time.Time         `json:"scheduled_date"`
	ActualDate      *time.Time        `json:"actual_date,omitempty"`
	CompletedBy     *uuid.UUID        `json:"completed_by,omitempty"`
	SnapshotType    SnapshotType      `json:"snapshot_type"`
	Status          MaintenanceStatus `json:"status"`
	Frequency       string            `json:"frequency"`
	NextMaintenance time.Time         `json:"next_maintenance"`
	Snapshot        json.RawMessage   `json:"snapshot,omitempty"` // Full task state at the time of the event.
	CreatedAt       time.Time         `json:"created_at"`
}

// NewMaintenanceHistory captures task as it looks right now.
// scheduled is the due date the event refers to; for completions it is the due
// date before the task was rescheduled.
func NewMaintenanceHistory(task *MaintenanceTask, kind SnapshotType, cycle int, scheduled time.Time, actor *uuid.UUID, at time.Time) *MaintenanceHistory {
	history := &MaintenanceHistory{
		ID:              uuid.New(),
		TaskID:          task.ID,
		DeviceID:        task.DeviceID,
		OrganizationID:  task.OrganizationID,
		TaskName:        task.TaskName,
		CycleNumber:     cycle,
		ScheduledDate:   DateOf(scheduled),
		SnapshotType:    kind,
		Status:          task.Status,
		Frequency:       task.Frequency,
		NextMaintenance: task.NextMaintenance,
		CreatedAt:       at,
	}

	if kind == SnapshotCompletion {
		history.ActualDate = task.LastMaintenance
		history.CompletedBy = actor
	}

	if raw, err := json.Marshal(task); err == nil {
		history.Snapshot = raw
	}

	return history
}
