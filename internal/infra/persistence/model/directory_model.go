package model

import (
	"github.com/google/uuid"
)

// DeviceModel maps the columns of the platform 'devices' table this service reads.
type DeviceModel struct {
	ID             uuid.UUID  `gorm:"type:uuid;primary_key"`
	Name           string     `gorm:"type:varchar(255);not null"`
	OrganizationID string     `gorm:"type:varchar(64);not null"`
	Location       string     `gorm:"type:varchar(255)"`
	AssignedUserID *uuid.UUID `gorm:"type:uuid"`
}

// TableName explicitly sets the table name for GORM.
func (DeviceModel) TableName() string {
	return "devices"
}

// UserModel maps the columns of the platform 'users' table this service reads.
type UserModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key"`
	FirstName      string    `gorm:"type:varchar(100)"`
	LastName       string    `gorm:"type:varchar(100)"`
	Email          string    `gorm:"type:varchar(255)"`
	OrganizationID string    `gorm:"type:varchar(64)"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// UserPreferenceModel maps the notification switches of the 'user_preferences' table.
type UserPreferenceModel struct {
	UserID            uuid.UUID `gorm:"type:uuid;primary_key"`
	MaintenanceAlerts bool      `gorm:"not null;default:true"`
	DeviceAlerts      bool      `gorm:"not null;default:true"`
}

// TableName explicitly sets the table name for GORM.
func (UserPreferenceModel) TableName() string {
	return "user_preferences"
}
