package pagarme

import (
	"strings"
	"time"
)

// Charge representa uma cobrança de cartão do Pagar.me
type Charge struct {
	ID               string    `json:"id"`
	OrderCode        string    `json:"orderCode"`
	Status           string    `json:"status"`
	AmountCentavos   int64     `json:"amount"`
	PaymentMethod    string    `json:"paymentMethod"`
	CaptureMethod    string    `json:"captureMethod"`
	CardBrand        string    `json:"cardBrand"`
	CardLastFour     string    `json:"cardLastFour"`
	InstallmentCount int       `json:"installments"`
	PaidAt           time.Time `json:"paidAt"`
}

// CaptureMethodLabel devolve o rótulo de exibição do método de captura.
func (c Charge) CaptureMethodLabel() string {
	return FormatCaptureMethod(c.CaptureMethod)
}

// ChargeFromData monta uma Charge a partir do JSON decodificado de uma cobrança
// (resposta de GET /charges/{id} ou campo "data" de um webhook charge.*).
func ChargeFromData(data map[string]interface{}) Charge {
	var c Charge
	c.ID, _ = data["id"].(string)
	c.Status, _ = data["status"].(string)
	c.PaymentMethod, _ = data["payment_method"].(string)
	c.AmountCentavos = int64Field(data, "paid_amount")
	if c.AmountCentavos == 0 {
		c.AmountCentavos = int64Field(data, "amount")
	}

	if order, ok := data["order"].(map[string]interface{}); ok {
		c.OrderCode, _ = order["code"].(string)
	}
	if c.OrderCode == "" {
		c.OrderCode, _ = data["code"].(string)
	}

	if paidAt, ok := data["paid_at"].(string); ok && paidAt != "" {
		if t, err := time.Parse(time.RFC3339, paidAt); err == nil {
			c.PaidAt = t.UTC()
		}
	}

	tx, _ := data["last_transaction"].(map[string]interface{})
	if tx == nil {
		return c
	}

	c.CaptureMethod, _ = tx["capture_method"].(string)
	if c.CaptureMethod == "" {
		// transações de débito não trazem capture_method
		if t, _ := tx["transaction_type"].(string); t == "debit_card" {
			c.CaptureMethod = t
		}
	}
	c.InstallmentCount = int(int64Field(tx, "installments"))

	if card, ok := tx["card"].(map[string]interface{}); ok {
		brand, _ := card["brand"].(string)
		c.CardBrand = strings.TrimSpace(brand)
		c.CardLastFour, _ = card["last_four_digits"].(string)
	}
	return c
}

func int64Field(data map[string]interface{}, key string) int64 {
	switch v := data[key].(type) {
	case float64:
		return int64(v)
	case int64:
		return v
	case int:
		return int64(v)
	}
	return 0
}
