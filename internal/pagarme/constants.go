package pagarme

import "fmt"

const (
	// DefaultBaseURL é a URL da API v5 do Pagar.me
	DefaultBaseURL = "https://api.pagar.me/core/v5"

	// SignatureHeader carrega a assinatura HMAC do webhook
	SignatureHeader = "X-Hub-Signature"

	EventChargePaid          = "charge.paid"
	EventChargeRefunded      = "charge.refunded"
	EventChargePaymentFailed = "charge.payment_failed"
)

// cardPaymentMethods lista os métodos de pagamento que geram comprovante de cartão
var cardPaymentMethods = map[string]bool{
	"credit_card": true,
	"debit_card":  true,
}

// ValidatePaymentMethod verifica se a cobrança foi feita com cartão.
// Retorna erro para pix, boleto ou qualquer outro método.
func ValidatePaymentMethod(method string) error {
	if method == "" {
		return fmt.Errorf("método de pagamento não pode estar vazio")
	}
	if !cardPaymentMethods[method] {
		return fmt.Errorf("método de pagamento sem comprovante de cartão: '%s'", method)
	}
	return nil
}
