package qrcode

import (
	"encoding/json"
	"fmt"

	"romaneio/config"
	"romaneio/internal/domain/service"

	"github.com/skip2/go-qrcode"
)

const defaultSize = 256

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// QRCodeData represents the QR code data structure printed on manifests
type QRCodeData struct {
	RequisitionNumber string `json:"numero_requisicao"`
	Type              string `json:"type"`
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(cfg *config.Config) service.QRCodeService {
	size := defaultSize
	errorCorrectionLevel := ""
	if cfg != nil && cfg.QRCode != nil {
		if cfg.QRCode.Size > 0 {
			size = cfg.QRCode.Size
		}
		errorCorrectionLevel = cfg.QRCode.ErrorCorrectionLevel
	}

	// Set error correction level
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// GenerateRequisitionQR renders a PNG QR encoding a requisition number.
func (s *qrcodeService) GenerateRequisitionQR(requisitionNumber string) ([]byte, error) {
	data := QRCodeData{
		RequisitionNumber: requisitionNumber,
		Type:              "requisicao",
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal QR code data: %w", err)
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

// ParseRequisitionQR parses QR code data and returns the requisition number.
func (s *qrcodeService) ParseRequisitionQR(qrData string) (string, error) {
	var data QRCodeData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return "", fmt.Errorf("failed to unmarshal QR code data: %w", err)
	}

	// Validate type
	if data.Type != "requisicao" {
		return "", fmt.Errorf("invalid QR code type: %s", data.Type)
	}

	if data.RequisitionNumber == "" {
		return "", fmt.Errorf("missing requisition number")
	}

	return data.RequisitionNumber, nil
}
