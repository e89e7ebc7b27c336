package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// MaintenanceTaskModel is the GORM-specific struct for the 'maintenance_tasks' table.
// Tasks are removed together with their device (ON DELETE CASCADE on device_id).
type MaintenanceTaskModel struct {
	ID                uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	DeviceID          uuid.UUID  `gorm:"type:uuid;not null;index:idx_maintenance_natural_key,priority:1"`
	OrganizationID    string     `gorm:"type:varchar(64);not null;index;index:idx_maintenance_natural_key,priority:3"`
	TaskName          string     `gorm:"type:varchar(255);not null;index:idx_maintenance_natural_key,priority:2"`
	Description       string     `gorm:"type:text"`
	Frequency         string     `gorm:"type:varchar(100);not null"`
	Priority          string     `gorm:"type:varchar(20);not null;default:'MEDIUM'"`
	EstimatedDuration string     `gorm:"type:varchar(100)"`
	RequiredTools     string     `gorm:"type:text"`
	SafetyNotes       string     `gorm:"type:text"`
	ComponentName     string     `gorm:"type:varchar(255)"`
	Category          string     `gorm:"type:varchar(100)"`
	MaintenanceType   string     `gorm:"type:varchar(20);not null;default:'PREVENTIVE'"`
	LastMaintenance   *time.Time `gorm:"type:date"`
	NextMaintenance   time.Time  `gorm:"type:date;not null;index"`
	Status            string     `gorm:"type:varchar(20);not null;default:'ACTIVE';index"`
	AssignedTo        *uuid.UUID `gorm:"type:uuid;index"`
	AssignedBy        *uuid.UUID `gorm:"type:uuid"`
	AssignedAt        *time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// TableName explicitly sets the table name for GORM.
func (MaintenanceTaskModel) TableName() string {
	return "maintenance_tasks"
}

// MaintenanceReminderModel is the per-day reminder ledger of a task in the 'maintenance_reminders' table.
// Sent counts claimed reminders, whether or not an in-app notification was shown.
type MaintenanceReminderModel struct {
	TaskID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	ReminderDate time.Time `gorm:"type:date;primaryKey"`
	Sent         int       `gorm:"not null;default:0"`
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (MaintenanceReminderModel) TableName() string {
	return "maintenance_reminders"
}

// MaintenanceHistoryModel is the GORM-specific struct for the append-only 'maintenance_history' table.
type MaintenanceHistoryModel struct {
	ID              uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	TaskID          uuid.UUID      `gorm:"type:uuid;not null;index"`
	DeviceID        uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:idx_history_device_cycle,priority:1"`
	OrganizationID  string         `gorm:"type:varchar(64);not null"`
	TaskName        string         `gorm:"type:varchar(255);not null"`
	CycleNumber     int            `gorm:"not null;uniqueIndex:idx_history_device_cycle,priority:2"`
	ScheduledDate   time.Time      `gorm:"type:date;not null"`
	ActualDate      *time.Time     `gorm:"type:date"`
	CompletedBy     *uuid.UUID     `gorm:"type:uuid"`
	SnapshotType    string         `gorm:"type:varchar(20);not null"`
	Status          string         `gorm:"type:varchar(20);not null"`
	Frequency       string         `gorm:"type:varchar(100)"`
	NextMaintenance time.Time      `gorm:"type:date"`
	Snapshot        datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (MaintenanceHistoryModel) TableName() string {
	return "maintenance_history"
}
