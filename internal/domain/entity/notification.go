package entity

import (
	"time"

	"github.com/google/uuid"
)

// NotificationCategory groups in-app notifications for preference checks.
type NotificationCategory string

const (
	CategoryMaintenanceReminder NotificationCategory = "MAINTENANCE_REMINDER"
	CategoryMaintenanceAssigned NotificationCategory = "MAINTENANCE_ASSIGNED"
	CategoryCustom              NotificationCategory = "CUSTOM"
)

// NotificationMetadata links an in-app notification back to the maintenance data.
type NotificationMetadata struct {
	TaskID         *uuid.UUID `json:"task_id,omitempty"`
	DeviceID       *uuid.UUID `json:"device_id,omitempty"`
	DeviceName     string     `json:"device_name,omitempty"`
	ReminderNumber int        `json:"reminder_number,omitempty"`
}

// Notification is an in-app message shown to a user.
type Notification struct {
	ID             uuid.UUID            `json:"id"`              // The Global Unique Identifier (GUID) for the notification.
	UserID         uuid.UUID            `json:"user_id"`         // Recipient.
	OrganizationID string               `json:"organization_id"` // Organization scope of the recipient.
	Title          string               `json:"title"`           // Short headline.
	Message        string               `json:"message"`         // Body text.
	Category       NotificationCategory `json:"category"`        // Category used for preference filtering.
	IsRead         bool                 `json:"is_read"`         // Whether the recipient opened it.
	Metadata       NotificationMetadata `json:"metadata"`        // Links to the task and device.
	CreatedAt      time.Time            `json:"created_at"`      // Timestamp of when the notification was created.
}

// PushToken is a technician's mobile device registered for Firebase push.
type PushToken struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	FCMToken  string    `json:"fcm_token"`
	Platform  string    `json:"platform"` // ios or android
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
