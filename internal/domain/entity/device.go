package entity

import (
	"github.com/google/uuid"
)

// Device is an IoT device as seen by the maintenance subsystem.
// Devices are managed elsewhere; only the fields needed for scheduling are mapped.
type Device struct {
	ID             uuid.UUID  `json:"id"`                         // The Global Unique Identifier (GUID) for the device.
	Name           string     `json:"name"`                       // Human readable device name.
	OrganizationID string     `json:"organization_id"`            // The organization that owns the device.
	Location       string     `json:"location"`                   // Free text installation location.
	AssignedUserID *uuid.UUID `json:"assigned_user_id,omitempty"` // Technician currently responsible for the device.
}

// HasAssignee reports whether someone is responsible for the device.
func (d *Device) HasAssignee() bool {
	return d.AssignedUserID != nil && *d.AssignedUserID != uuid.Nil
}
