package qrcode

import (
	"testing"

	"upkeep/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertPNG(t *testing.T, data []byte) {
	t.Helper()

	require.GreaterOrEqual(t, len(data), 4)
	assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, data[:4])
}

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name                 string
		size                 int
		errorCorrectionLevel string
	}{
		{"Low error correction", 256, "L"},
		{"Medium error correction", 256, "M"},
		{"High error correction", 256, "Q"},
		{"Highest error correction", 256, "H"},
		{"Default error correction", 256, "invalid"},
		{"Default size", 0, "M"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			encoder := NewQRCodeService(tt.size, tt.errorCorrectionLevel, "")
			assert.NotNil(t, encoder)
		})
	}
}

func TestLabelEncoder_EncodeDeviceLabel(t *testing.T) {
	encoder := NewQRCodeService(256, "M", "https://app.example.com/devices/")

	png, err := encoder.EncodeDeviceLabel(uuid.New(), "Chiller 3")
	require.NoError(t, err)
	assertPNG(t, png)
}

func TestLabelEncoder_EncodeDeviceLabel_RequiresDevice(t *testing.T) {
	encoder := NewQRCodeService(256, "M", "")

	_, err := encoder.EncodeDeviceLabel(uuid.Nil, "Chiller 3")
	assert.Error(t, err)
}

func TestLabelEncoder_LabelData(t *testing.T) {
	deviceID := uuid.MustParse("0f0e0d0c-0b0a-0908-0706-050403020100")

	tests := []struct {
		name       string
		baseURL    string
		deviceName string
		want       LabelData
	}{
		{
			name:       "configured base url",
			baseURL:    "https://app.example.com/devices/",
			deviceName: " Chiller 3 ",
			want: LabelData{
				DeviceID:   "0f0e0d0c-0b0a-0908-0706-050403020100",
				DeviceName: "Chiller 3",
				Type:       "maintenance",
				URL:        "https://app.example.com/devices/0f0e0d0c-0b0a-0908-0706-050403020100/maintenance",
			},
		},
		{
			name: "default scheme",
			want: LabelData{
				DeviceID: "0f0e0d0c-0b0a-0908-0706-050403020100",
				Type:     "maintenance",
				URL:      "upkeep://devices/0f0e0d0c-0b0a-0908-0706-050403020100/maintenance",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			encoder := NewQRCodeService(128, "L", tt.baseURL).(*labelEncoder)
			assert.Equal(t, tt.want, encoder.labelData(deviceID, tt.deviceName))
		})
	}
}

func TestNewLabelEncoder_FromConfig(t *testing.T) {
	encoder := NewLabelEncoder(&config.Config{
		QRCode: &config.QRCodeConfig{Size: 128, ErrorCorrectionLevel: "H", BaseURL: "https://x.test/d"},
	}).(*labelEncoder)

	assert.Equal(t, 128, encoder.size)
	assert.Equal(t, "https://x.test/d", encoder.baseURL)

	fallback := NewLabelEncoder(&config.Config{}).(*labelEncoder)
	assert.Equal(t, defaultSize, fallback.size)
	assert.Equal(t, defaultBaseURL, fallback.baseURL)
}
