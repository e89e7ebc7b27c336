// Package qrcode renders device maintenance labels.
package qrcode

import (
	"encoding/json"
	"strings"

	"upkeep/config"
	"upkeep/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

const (
	defaultSize    = 256
	defaultBaseURL = "upkeep://devices"
)

// LabelData is the JSON payload stored in a device label.
type LabelData struct {
	DeviceID   string `json:"device_id"`
	DeviceName string `json:"device_name,omitempty"`
	Type       string `json:"type"`
	URL        string `json:"url"`
}

const labelType = "maintenance"

type labelEncoder struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// NewLabelEncoder builds the encoder from the qrcode section, falling back to defaults.
func NewLabelEncoder(cfg *config.Config) service.LabelEncoder {
	if cfg == nil || cfg.QRCode == nil {
		return NewQRCodeService(defaultSize, "M", "")
	}

	return NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel, cfg.QRCode.BaseURL)
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel, baseURL string) service.LabelEncoder {
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	if size <= 0 {
		size = defaultSize
	}

	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return &labelEncoder{
		size:                 size,
		errorCorrectionLevel: level,
		baseURL:              baseURL,
	}
}

// EncodeDeviceLabel renders a PNG whose payload points at the device's maintenance page.
func (s *labelEncoder) EncodeDeviceLabel(deviceID uuid.UUID, deviceName string) ([]byte, error) {
	if deviceID == uuid.Nil {
		return nil, errors.New("device ID is required")
	}

	payload, err := json.Marshal(s.labelData(deviceID, deviceName))
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal label data")
	}

	qrCode, err := qrcode.New(string(payload), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

func (s *labelEncoder) labelData(deviceID uuid.UUID, deviceName string) LabelData {
	return LabelData{
		DeviceID:   deviceID.String(),
		DeviceName: strings.TrimSpace(deviceName),
		Type:       labelType,
		URL:        s.baseURL + "/" + deviceID.String() + "/maintenance",
	}
}
