package pagarme

import (
	"fmt"
	"strconv"
	"strings"
)

// Receipt é o comprovante resumido de uma cobrança de cartão.
type Receipt struct {
	ChargeID     string   `json:"chargeId"`
	CaptureLabel string   `json:"captureMethodLabel"`
	Brand        string   `json:"brand"`
	MaskedCard   string   `json:"maskedCard"`
	Installments string   `json:"installments"`
	Amount       string   `json:"amount"`
	PaidAt       string   `json:"paidAt,omitempty"`
	Lines        []string `json:"lines"`
}

// BuildReceipt monta o comprovante de uma cobrança.
func BuildReceipt(c Charge) Receipt {
	r := Receipt{
		ChargeID:     c.ID,
		CaptureLabel: c.CaptureMethodLabel(),
		Brand:        strings.ToUpper(c.CardBrand),
		MaskedCard:   maskCard(c.CardLastFour),
		Installments: formatInstallments(c.InstallmentCount),
		Amount:       FormatBRL(c.AmountCentavos),
	}
	if !c.PaidAt.IsZero() {
		r.PaidAt = c.PaidAt.Format("02/01/2006 15:04")
	}

	r.Lines = []string{
		fmt.Sprintf("%s %s", r.Brand, r.CaptureLabel),
		r.MaskedCard,
		fmt.Sprintf("%s %s", r.Installments, r.Amount),
	}
	if r.PaidAt != "" {
		r.Lines = append(r.Lines, r.PaidAt)
	}
	return r
}

func maskCard(lastFour string) string {
	if lastFour == "" {
		return "****"
	}
	return "**** " + lastFour
}

func formatInstallments(n int) string {
	if n <= 1 {
		return "À VISTA"
	}
	return fmt.Sprintf("%02dx", n)
}

// FormatBRL formata centavos no padrão brasileiro: 123456 -> "R$ 1.234,56".
func FormatBRL(centavos int64) string {
	sign := ""
	if centavos < 0 {
		sign = "-"
		centavos = -centavos
	}
	reais := strconv.FormatInt(centavos/100, 10)

	var b strings.Builder
	for i, d := range reais {
		if i > 0 && (len(reais)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(d)
	}
	return fmt.Sprintf("%sR$ %s,%02d", sign, b.String(), centavos%100)
}
