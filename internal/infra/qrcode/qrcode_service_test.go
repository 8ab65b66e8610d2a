package qrcode

import (
	"encoding/json"
	"testing"

	"romaneio/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func qrConfig(size int, level string) *config.Config {
	return &config.Config{
		QRCode: &config.QRCodeConfig{Size: size, ErrorCorrectionLevel: level},
	}
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
		{"Missing config", 0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(qrConfig(tt.size, tt.errorCorrectionLevel))
			assert.NotNil(t, service)
		})
	}
}

func TestQRCodeService_GenerateRequisitionQR(t *testing.T) {
	service := NewQRCodeService(qrConfig(256, "M"))

	qrBytes, err := service.GenerateRequisitionQR("REQ-1042")
	require.NoError(t, err)
	assert.NotEmpty(t, qrBytes)

	// Verify it's a valid PNG (starts with PNG magic number)
	assert.Equal(t, byte(0x89), qrBytes[0])
	assert.Equal(t, byte(0x50), qrBytes[1])
	assert.Equal(t, byte(0x4E), qrBytes[2])
	assert.Equal(t, byte(0x47), qrBytes[3])
}

func TestQRCodeService_ParseRequisitionQR(t *testing.T) {
	service := NewQRCodeService(nil)

	payload, err := json.Marshal(QRCodeData{RequisitionNumber: "REQ-1042", Type: "requisicao"})
	require.NoError(t, err)

	number, err := service.ParseRequisitionQR(string(payload))
	require.NoError(t, err)
	assert.Equal(t, "REQ-1042", number)
}

func TestQRCodeService_ParseRequisitionQR_Invalid(t *testing.T) {
	service := NewQRCodeService(nil)

	tests := []struct {
		name   string
		qrData string
	}{
		{"Not JSON", "not-json"},
		{"Wrong type", `{"numero_requisicao":"REQ-1","type":"subscription"}`},
		{"Missing number", `{"type":"requisicao"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.ParseRequisitionQR(tt.qrData)
			assert.Error(t, err)
		})
	}
}
