package service

import (
	"github.com/google/uuid"
)

// LabelEncoder renders the QR label stuck on a device so technicians can open its maintenance page.
type LabelEncoder interface {
	// EncodeDeviceLabel returns a PNG image.
	EncodeDeviceLabel(deviceID uuid.UUID, deviceName string) ([]byte, error)
}
