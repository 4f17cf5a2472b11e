package pagarme

import "testing"

func TestVerifySignature(t *testing.T) {
	body := []byte(`{"id":"hook_1","type":"charge.paid"}`)
	c := NewClient("sk", "segredo", "")

	tests := []struct {
		name   string
		header string
		want   bool
	}{
		{name: "assinatura válida", header: SignBody("segredo", body), want: true},
		{name: "segredo errado", header: SignBody("outro", body), want: false},
		{name: "sem cabeçalho", header: "", want: false},
		{name: "hex inválido", header: "sha256=zz", want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.VerifySignature(body, tt.header); got != tt.want {
				t.Errorf("VerifySignature() = %v, want %v", got, tt.want)
			}
		})
	}

	if !NewClient("sk", "", "").VerifySignature(body, "") {
		t.Error("sem segredo configurado a assinatura deveria ser aceita")
	}
}
