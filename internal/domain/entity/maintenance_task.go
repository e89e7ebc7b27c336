// Package entity contains the core business objects of the project.
package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// MaintenancePriority ranks how urgent a maintenance task is.
type MaintenancePriority string

const (
	PriorityLow      MaintenancePriority = "LOW"
	PriorityMedium   MaintenancePriority = "MEDIUM"
	PriorityHigh     MaintenancePriority = "HIGH"
	PriorityCritical MaintenancePriority = "CRITICAL"
)

// ParsePriority normalizes a free-form priority string.
// The second return value is false when the input did not name a known priority,
// in which case PriorityMedium is returned.
func ParsePriority(raw string) (MaintenancePriority, bool) {
	switch MaintenancePriority(strings.ToUpper(strings.TrimSpace(raw))) {
	case PriorityLow:
		return PriorityLow, true
	case PriorityMedium:
		return PriorityMedium, true
	case PriorityHigh:
		return PriorityHigh, true
	case PriorityCritical:
		return PriorityCritical, true
	default:
		return PriorityMedium, false
	}
}

// MaintenanceStatus is the lifecycle state of a maintenance task.
type MaintenanceStatus string

const (
	StatusActive    MaintenanceStatus = "ACTIVE"
	StatusPending   MaintenanceStatus = "PENDING"
	StatusOverdue   MaintenanceStatus = "OVERDUE"
	StatusCompleted MaintenanceStatus = "COMPLETED"
	StatusCancelled MaintenanceStatus = "CANCELLED"
)

// MaintenanceType classifies why the maintenance is performed.
type MaintenanceType string

const (
	MaintenanceTypePreventive MaintenanceType = "PREVENTIVE"
	MaintenanceTypeCorrective MaintenanceType = "CORRECTIVE"
	MaintenanceTypePredictive MaintenanceType = "PREDICTIVE"
	MaintenanceTypeGeneral    MaintenanceType = "GENERAL"
)

// ParseMaintenanceType normalizes a maintenance type, defaulting to PREVENTIVE.
func ParseMaintenanceType(raw string) MaintenanceType {
	switch MaintenanceType(strings.ToUpper(strings.TrimSpace(raw))) {
	case MaintenanceTypeCorrective:
		return MaintenanceTypeCorrective
	case MaintenanceTypePredictive:
		return MaintenanceTypePredictive
	case MaintenanceTypeGeneral:
		return MaintenanceTypeGeneral
	default:
		return MaintenanceTypePreventive
	}
}

// MaintenanceTask is a recurring maintenance duty attached to a single device.
type MaintenanceTask struct {
	ID                uuid.UUID           `json:"id"`                           // The Global Unique Identifier (GUID) for the task.
	DeviceID          uuid.UUID           `json:"device_id"`                    // The device this task belongs to.
	OrganizationID    string              `json:"organization_id"`              // The organization that owns the device.
	TaskName          string              `json:"task_name"`                    // Short title, unique per (device, organization).
	Description       string              `json:"description"`                  // What has to be done.
	Frequency         string              `json:"frequency"`                    // Raw frequency descriptor, e.g. "monthly" or "30".
	Priority          MaintenancePriority `json:"priority"`                     // LOW, MEDIUM, HIGH or CRITICAL.
	EstimatedDuration string              `json:"estimated_duration"`           // Free text, e.g. "2 hours".
	RequiredTools     string              `json:"required_tools"`               // Free text list of tools.
	SafetyNotes       string              `json:"safety_notes"`                 // Free text safety guidance.
	ComponentName     string              `json:"component_name"`               // Device component the task targets.
	Category          string              `json:"category"`                     // Maintenance category, e.g. "Electrical".
	MaintenanceType   MaintenanceType     `json:"maintenance_type"`             // PREVENTIVE, CORRECTIVE, PREDICTIVE or GENERAL.
	LastMaintenance   *time.Time          `json:"last_maintenance,omitempty"`   // Day the task was last completed.
	NextMaintenance   time.Time           `json:"next_maintenance"`             // Day the task is next due.
	Status            MaintenanceStatus   `json:"status"`                       // Lifecycle state.
	AssignedTo        *uuid.UUID          `json:"assigned_to,omitempty"`        // Technician responsible for the task.
	AssignedBy        *uuid.UUID          `json:"assigned_by,omitempty"`        // User who made the assignment.
	AssignedAt        *time.Time          `json:"assigned_at,omitempty"`        // When the assignment was made.
	CreatedAt         time.Time           `json:"created_at"`                   // Timestamp of when this task was created.
	UpdatedAt         time.Time           `json:"updated_at"`                   // Timestamp of the last modification.
}

// IsAssigned reports whether a technician is responsible for the task.
func (t *MaintenanceTask) IsAssigned() bool {
	return t.AssignedTo != nil && *t.AssignedTo != uuid.Nil
}

// Assign records a new assignment. Status and schedule are left untouched.
func (t *MaintenanceTask) Assign(assigneeID, assignedByID uuid.UUID, at time.Time) {
	assignee := assigneeID
	assigner := assignedByID
	stamp := at

	t.AssignedTo = &assignee
	t.AssignedBy = &assigner
	t.AssignedAt = &stamp
	t.UpdatedAt = at
}

// Complete marks the task done on day and schedules the next occurrence.
func (t *MaintenanceTask) Complete(day, next time.Time) {
	completed := DateOf(day)

	t.LastMaintenance = &completed
	t.NextMaintenance = DateOf(next)
	t.Status = StatusCompleted
}

// IsOverdueOn reports whether an ACTIVE task was due strictly before today.
func (t *MaintenanceTask) IsOverdueOn(today time.Time) bool {
	return t.Status == StatusActive && t.NextMaintenance.Before(DateOf(today))
}

// CalendarDay returns the calendar date of t (in t's location) as UTC midnight,
// the representation used for DATE columns.
func CalendarDay(t time.Time) time.Time {
	y, m, d := t.Date()

	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DateOf truncates t to midnight in t's own location.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()

	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
