package repository

import (
	"context"

	"upkeep/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Device and user directories are owned by other services; this subsystem only reads them.
var (
	// ErrDeviceNotFound is returned when a device is not found.
	ErrDeviceNotFound = errors.New("device not found")
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
)

// DeviceRepository reads devices.
type DeviceRepository interface {
	// FindDeviceByID retrieves a device by its unique ID.
	FindDeviceByID(ctx context.Context, id uuid.UUID) (*entity.Device, error)
}

// UserRepository reads users.
type UserRepository interface {
	// FindUserByID retrieves a user by its unique ID.
	FindUserByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
}
