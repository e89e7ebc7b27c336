package impl

import (
	"context"

	domainerrors "upkeep/internal/domain/errors"
	"upkeep/internal/domain/repository"
	"upkeep/internal/domain/service"
	"upkeep/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type deviceLabelService struct {
	deviceRepo repository.DeviceRepository
	encoder    service.LabelEncoder
}

// NewDeviceLabelService creates the device label renderer.
func NewDeviceLabelService(deviceRepo repository.DeviceRepository, encoder service.LabelEncoder) usecase.DeviceLabelUsecase {
	return &deviceLabelService{
		deviceRepo: deviceRepo,
		encoder:    encoder,
	}
}

func (s *deviceLabelService) GenerateMaintenanceLabel(ctx context.Context, deviceID uuid.UUID) ([]byte, error) {
	device, err := s.deviceRepo.FindDeviceByID(ctx, deviceID)
	if errors.Is(err, repository.ErrDeviceNotFound) {
		return nil, domainerrors.ErrDeviceNotFound.WithDetails(deviceID.String())
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find device")
	}

	png, err := s.encoder.EncodeDeviceLabel(device.ID, device.Name)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode device label")
	}

	return png, nil
}
