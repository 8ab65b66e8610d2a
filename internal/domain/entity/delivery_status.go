// Package entity contains the core business objects of the project.
package entity

// DeliveryStatus is the closed vocabulary a delivery moves through.
// There is no transition graph: any status may follow any other, which
// matches how the dashboard has always been operated.
type DeliveryStatus string

const (
	// StatusAwaiting indicates the delivery has not left the pharmacy yet.
	StatusAwaiting DeliveryStatus = "Aguardando"
	// StatusEnRoute indicates the courier is on the way.
	StatusEnRoute DeliveryStatus = "Em Rota"
	// StatusDelivered indicates the delivery was completed.
	StatusDelivered DeliveryStatus = "Entregue"
	// StatusReturned indicates the delivery came back to the pharmacy.
	StatusReturned DeliveryStatus = "Voltou p/ Farmácia"
	// StatusCanceled indicates the delivery was canceled.
	StatusCanceled DeliveryStatus = "Cancelada"
)

// legacyStatusLabels maps labels written by older dashboard versions to the
// current vocabulary. The map never targets one of its own keys, so
// normalization is idempotent.
var legacyStatusLabels = map[DeliveryStatus]DeliveryStatus{
	"A Caminho":           StatusEnRoute,
	"Não Entregue":        StatusReturned,
	"Aguardando Retirada": StatusAwaiting,
}

// NormalizeStatus rewrites known legacy labels to the current vocabulary.
// Unknown labels pass through unchanged; validity is checked separately.
func NormalizeStatus(status DeliveryStatus) DeliveryStatus {
	if current, ok := legacyStatusLabels[status]; ok {
		return current
	}

	return status
}

// String returns the string representation of the DeliveryStatus.
func (s DeliveryStatus) String() string {
	return string(s)
}

// IsValid checks if the status belongs to the current vocabulary.
// Legacy labels are not valid; normalize first.
func (s DeliveryStatus) IsValid() bool {
	switch s {
	case StatusAwaiting, StatusEnRoute, StatusDelivered, StatusReturned, StatusCanceled:
		return true
	default:
		return false
	}
}
