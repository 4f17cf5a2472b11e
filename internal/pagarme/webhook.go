package pagarme

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// WebhookEvent é o envelope enviado pelo Pagar.me nos webhooks.
type WebhookEvent struct {
	ID        string                 `json:"id"`
	Type      string                 `json:"type"`
	CreatedAt string                 `json:"created_at"`
	Data      map[string]interface{} `json:"data"`
}

// VerifySignature confere o cabeçalho "sha256=<hex>" contra o HMAC-SHA256 do corpo.
// Sem segredo configurado toda assinatura é aceita.
func (c *Client) VerifySignature(body []byte, header string) bool {
	if c.webhookSecret == "" {
		return true
	}
	sig := strings.TrimPrefix(strings.TrimSpace(header), "sha256=")
	got, err := hex.DecodeString(sig)
	if err != nil || len(got) == 0 {
		return false
	}
	return hmac.Equal(got, bodyMAC(c.webhookSecret, body))
}

// SignBody gera o valor do cabeçalho X-Hub-Signature para um corpo.
func SignBody(secret string, body []byte) string {
	return "sha256=" + hex.EncodeToString(bodyMAC(secret, body))
}

func bodyMAC(secret string, body []byte) []byte {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return mac.Sum(nil)
}
