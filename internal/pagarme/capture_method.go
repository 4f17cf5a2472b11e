package pagarme

// UnknownCaptureMethodLabel é o rótulo exibido quando o método de captura não é reconhecido.
const UnknownCaptureMethodLabel = "DESCONHECIDO"

var captureMethodLabels = map[string]string{
	"emv":        "ONL-CHIP",
	"debit_card": "DÉBITO",
}

// FormatCaptureMethod converte o capture_method do Pagar.me no rótulo curto do comprovante.
// A busca diferencia maiúsculas de minúsculas; códigos fora da tabela viram "DESCONHECIDO".
func FormatCaptureMethod(code string) string {
	if label, ok := captureMethodLabels[code]; ok {
		return label
	}
	return UnknownCaptureMethodLabel
}

// IsKnownCaptureMethod informa se o código possui rótulo próprio.
func IsKnownCaptureMethod(code string) bool {
	_, ok := captureMethodLabels[code]
	return ok
}
