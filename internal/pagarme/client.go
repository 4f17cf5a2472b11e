package pagarme

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Client fala com a API REST v5 do Pagar.me.
type Client struct {
	apiKey        string
	webhookSecret string
	baseURL       string
	httpClient    *http.Client
}

// NewClient cria um cliente do Pagar.me. baseURL vazio usa DefaultBaseURL.
func NewClient(apiKey, webhookSecret, baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		apiKey:        apiKey,
		webhookSecret: webhookSecret,
		baseURL:       strings.TrimRight(baseURL, "/"),
		httpClient:    &http.Client{Timeout: 15 * time.Second},
	}
}

// APIError é devolvido quando o Pagar.me responde com status >= 400.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("pagarme: status %d: %s", e.StatusCode, e.Message)
}

func (c *Client) doRequest(method, path string, body interface{}) (map[string]interface{}, error) {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal body: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("new request: %w", err)
	}
	req.SetBasicAuth(c.apiKey, "")
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	if resp.StatusCode >= 400 {
		var apiErr struct {
			Message string `json:"message"`
		}
		_ = json.Unmarshal(raw, &apiErr)
		if apiErr.Message == "" {
			apiErr.Message = http.StatusText(resp.StatusCode)
		}
		return nil, &APIError{StatusCode: resp.StatusCode, Message: apiErr.Message}
	}

	var result map[string]interface{}
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return result, nil
}

// GetCharge busca uma cobrança pelo id (ch_...).
func (c *Client) GetCharge(chargeID string) (*Charge, error) {
	if chargeID == "" {
		return nil, fmt.Errorf("charge id vazio")
	}
	data, err := c.doRequest(http.MethodGet, "/charges/"+chargeID, nil)
	if err != nil {
		return nil, fmt.Errorf("get charge: %w", err)
	}
	charge := ChargeFromData(data)
	if charge.ID == "" {
		return nil, fmt.Errorf("no charge id in response")
	}
	return &charge, nil
}
