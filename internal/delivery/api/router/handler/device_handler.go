package handler

import (
	"net/http"

	"upkeep/internal/delivery/api/response"
	"upkeep/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// DeviceHandlerParams holds dependencies for DeviceHandler, injected by Fx.
type DeviceHandlerParams struct {
	fx.In

	LabelUC usecase.DeviceLabelUsecase
}

// DeviceHandler serves device-level artifacts
type DeviceHandler struct {
	labelUC usecase.DeviceLabelUsecase
}

// NewDeviceHandler is the constructor for DeviceHandler
func NewDeviceHandler(params DeviceHandlerParams) *DeviceHandler {
	return &DeviceHandler{labelUC: params.LabelUC}
}

// GetMaintenanceLabel handles GET /devices/:deviceId/label and returns a PNG QR code
func (h *DeviceHandler) GetMaintenanceLabel(c echo.Context) error {
	deviceID, err := uuid.Parse(c.Param("deviceId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid device ID")
	}

	png, err := h.labelUC.GenerateMaintenanceLabel(c.Request().Context(), deviceID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `inline; filename="maintenance-`+deviceID.String()+`.png"`)

	return c.Blob(http.StatusOK, "image/png", png)
}
