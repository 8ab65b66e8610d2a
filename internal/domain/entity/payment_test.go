package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaymentMethodReceived_PrefixBased(t *testing.T) {
	tests := []struct {
		method string
		want   bool
	}{
		{method: "pago", want: true},
		{method: "Pago", want: true},
		{method: "PAGO", want: true},
		{method: "Págo", want: true},
		{method: "Pago - Cartão", want: true},
		{method: "pago pix", want: true},
		{method: "  Pago  ", want: true},
		{method: "Dinheiro", want: false},
		{method: "Receber Máquina", want: false},
		{method: "Aguardando", want: false},
		{method: "Receber", want: false},
		{method: "a pagar", want: false},
		{method: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.method, func(t *testing.T) {
			assert.Equal(t, tt.want, PaymentMethodReceived(tt.method))
		})
	}
}

func TestFoldPaymentMethod_StripsDiacritics(t *testing.T) {
	assert.Equal(t, "receber maquina", FoldPaymentMethod("Receber Máquina"))
	assert.Equal(t, "pago cartao", FoldPaymentMethod("Págo Cartão"))
}
