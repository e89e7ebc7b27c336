package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// NotificationMetadata is stored as jsonb; task_id is queried with JSONQuery.
type NotificationMetadata struct {
	TaskID         string `json:"task_id,omitempty"`
	DeviceID       string `json:"device_id,omitempty"`
	DeviceName     string `json:"device_name,omitempty"`
	ReminderNumber int    `json:"reminder_number,omitempty"`
}

// NotificationModel is the GORM-specific struct for the in-app 'notifications' table.
type NotificationModel struct {
	ID             uuid.UUID                                `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID         uuid.UUID                                `gorm:"type:uuid;not null;index"`
	OrganizationID string                                   `gorm:"type:varchar(64)"`
	Title          string                                   `gorm:"type:varchar(255);not null"`
	Message        string                                   `gorm:"type:text;not null"`
	Category       string                                   `gorm:"type:varchar(50);not null;index"`
	IsRead         bool                                     `gorm:"not null;default:false"`
	Metadata       datatypes.JSONType[NotificationMetadata] `gorm:"type:jsonb"`
	CreatedAt      time.Time                                `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (NotificationModel) TableName() string {
	return "notifications"
}

// PushTokenModel is the GORM-specific struct for the 'user_push_tokens' table.
type PushTokenModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	FCMToken  string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	Platform  string    `gorm:"type:varchar(50);not null"`
	IsActive  bool      `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (PushTokenModel) TableName() string {
	return "user_push_tokens"
}
