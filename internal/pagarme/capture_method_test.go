package pagarme

import (
	"sync"
	"testing"
)

func TestFormatCaptureMethod(t *testing.T) {
	tests := []struct {
		name     string
		code     string
		expected string
	}{
		{
			name:     "emv vira ONL-CHIP",
			code:     "emv",
			expected: "ONL-CHIP",
		},
		{
			name:     "debit_card vira DÉBITO",
			code:     "debit_card",
			expected: "DÉBITO",
		},
		{
			name:     "código desconhecido",
			code:     "unknown",
			expected: "DESCONHECIDO",
		},
		{
			name:     "vazio",
			code:     "",
			expected: "DESCONHECIDO",
		},
		{
			name:     "maiúsculas não casam",
			code:     "EMV",
			expected: "DESCONHECIDO",
		},
		{
			name:     "espaços não são removidos",
			code:     " emv ",
			expected: "DESCONHECIDO",
		},
		{
			name:     "magstripe não mapeado",
			code:     "magstripe",
			expected: "DESCONHECIDO",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatCaptureMethod(tt.code)
			if got != tt.expected {
				t.Errorf("FormatCaptureMethod(%q) = %q, want %q", tt.code, got, tt.expected)
			}
			if again := FormatCaptureMethod(tt.code); again != got {
				t.Errorf("FormatCaptureMethod(%q) não é determinístico: %q != %q", tt.code, again, got)
			}
		})
	}
}

func TestIsKnownCaptureMethod(t *testing.T) {
	if !IsKnownCaptureMethod("emv") || !IsKnownCaptureMethod("debit_card") {
		t.Fatal("emv e debit_card deveriam ser conhecidos")
	}
	if IsKnownCaptureMethod("EMV") || IsKnownCaptureMethod("") {
		t.Fatal("EMV e vazio não deveriam ser conhecidos")
	}
}

func TestFormatCaptureMethodConcurrent(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if got := FormatCaptureMethod("emv"); got != "ONL-CHIP" {
				t.Errorf("FormatCaptureMethod(emv) = %q", got)
			}
		}()
	}
	wg.Wait()
}
