package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeStatus_RewritesLegacyLabels(t *testing.T) {
	tests := []struct {
		in   DeliveryStatus
		want DeliveryStatus
	}{
		{in: "A Caminho", want: StatusEnRoute},
		{in: "Não Entregue", want: StatusReturned},
		{in: "Aguardando Retirada", want: StatusAwaiting},
		{in: StatusDelivered, want: StatusDelivered},
		{in: "Algo Desconhecido", want: "Algo Desconhecido"},
	}

	for _, tt := range tests {
		t.Run(tt.in.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeStatus(tt.in))
		})
	}
}

func TestNormalizeStatus_Idempotent(t *testing.T) {
	inputs := []DeliveryStatus{
		"A Caminho", "Não Entregue", "Aguardando Retirada",
		StatusAwaiting, StatusEnRoute, StatusDelivered, StatusReturned, StatusCanceled,
	}

	for _, in := range inputs {
		once := NormalizeStatus(in)
		twice := NormalizeStatus(once)
		assert.Equal(t, once, twice, "normalizing %q twice changed the result", in)
	}
}

func TestDeliveryStatus_IsValid(t *testing.T) {
	assert.True(t, StatusEnRoute.IsValid())
	assert.True(t, StatusReturned.IsValid())
	assert.False(t, DeliveryStatus("A Caminho").IsValid())
	assert.False(t, DeliveryStatus("").IsValid())
}
