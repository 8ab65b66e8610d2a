// Package entity contains the core business objects of the project.
package entity

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// paymentReceivedPrefix is the literal the payment-method label must start
// with, after folding, to count as already paid.
const paymentReceivedPrefix = "pago"

// foldTransformer strips combining marks so "Págo" folds to "pago".
var foldTransformer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// FoldPaymentMethod lowercases a payment-method label and removes diacritics.
func FoldPaymentMethod(method string) string {
	folded, _, err := transform.String(foldTransformer, method)
	if err != nil {
		// Fall back to the raw label; prefix matching still works for ASCII.
		folded = method
	}

	return strings.ToLower(strings.TrimSpace(folded))
}

// PaymentMethodReceived classifies a payment-method label. Only labels that
// start with "pago" (diacritic- and case-insensitive) imply pre-payment.
// Everything else ("Dinheiro", "Receber Máquina", "Aguardando") is
// outstanding and must be collected by the courier.
func PaymentMethodReceived(method string) bool {
	return strings.HasPrefix(FoldPaymentMethod(method), paymentReceivedPrefix)
}
