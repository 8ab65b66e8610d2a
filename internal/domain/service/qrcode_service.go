package service

// QRCodeService renders the requisition QR printed on delivery manifests.
type QRCodeService interface {
	// GenerateRequisitionQR renders a PNG QR encoding a requisition number.
	GenerateRequisitionQR(requisitionNumber string) ([]byte, error)

	// ParseRequisitionQR extracts the requisition number from scanned QR data.
	ParseRequisitionQR(qrData string) (string, error)
}
