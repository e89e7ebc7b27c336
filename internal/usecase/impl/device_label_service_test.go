package impl

import (
	"context"
	"testing"

	"upkeep/internal/domain/entity"
	domainerrors "upkeep/internal/domain/errors"
	"upkeep/internal/domain/repository"
	mockRepo "upkeep/internal/mocks/repository"
	mockSvc "upkeep/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeviceLabelService_GenerateMaintenanceLabel(t *testing.T) {
	ctx := context.Background()

	t.Run("encodes device", func(t *testing.T) {
		deviceRepo := mockRepo.NewMockDeviceRepository(t)
		encoder := mockSvc.NewMockLabelEncoder(t)
		svc := NewDeviceLabelService(deviceRepo, encoder)

		device := &entity.Device{ID: uuid.New(), Name: "Pump A"}
		deviceRepo.EXPECT().FindDeviceByID(ctx, device.ID).Return(device, nil)
		encoder.EXPECT().EncodeDeviceLabel(device.ID, "Pump A").Return([]byte{0x89, 'P', 'N', 'G'}, nil)

		png, err := svc.GenerateMaintenanceLabel(ctx, device.ID)

		require.NoError(t, err)
		assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, png)
	})

	t.Run("unknown device", func(t *testing.T) {
		deviceRepo := mockRepo.NewMockDeviceRepository(t)
		svc := NewDeviceLabelService(deviceRepo, mockSvc.NewMockLabelEncoder(t))
		id := uuid.New()

		deviceRepo.EXPECT().FindDeviceByID(ctx, id).Return(nil, repository.ErrDeviceNotFound)

		_, err := svc.GenerateMaintenanceLabel(ctx, id)

		assert.ErrorIs(t, err, domainerrors.ErrDeviceNotFound)
	})
}
