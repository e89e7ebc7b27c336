package handler

import (
	"net/http"
	"testing"

	domainerrors "upkeep/internal/domain/errors"
	"upkeep/internal/domain/service"
	mockusecase "upkeep/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestDeviceHandler_GetMaintenanceLabel(t *testing.T) {
	e, auth := newTestEcho(t, &service.Claims{UserID: uuid.New()})
	labelUC := mockusecase.NewMockDeviceLabelUsecase(t)
	h := NewDeviceHandler(DeviceHandlerParams{LabelUC: labelUC})
	e.GET("/api/v1/devices/:deviceId/label", h.GetMaintenanceLabel, auth.Authenticate)

	deviceID := uuid.New()
	missingID := uuid.New()
	png := []byte{0x89, 'P', 'N', 'G'}

	labelUC.EXPECT().GenerateMaintenanceLabel(mock.Anything, deviceID).Return(png, nil).Once()
	labelUC.EXPECT().GenerateMaintenanceLabel(mock.Anything, missingID).Return(nil, domainerrors.ErrDeviceNotFound).Once()

	rec, _ := doRequest(t, e, http.MethodGet, "/api/v1/devices/"+deviceID.String()+"/label", "")
	requireStatus(t, rec, http.StatusOK)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	assert.Equal(t, png, rec.Body.Bytes())

	rec, env := doRequest(t, e, http.MethodGet, "/api/v1/devices/"+missingID.String()+"/label", "")
	requireStatus(t, rec, http.StatusNotFound)
	assert.Equal(t, "DEVICE_NOT_FOUND", env.Error.Code)
}
