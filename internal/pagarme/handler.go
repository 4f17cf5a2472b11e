package pagarme

import (
	"database/sql"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"recibo/api/internal/auth"
	"recibo/api/internal/config"
	"recibo/api/internal/logger"
	"recibo/api/internal/metrics"
	"recibo/api/internal/middleware"
	"recibo/api/internal/repository"
)

// Handler provides the REST endpoints for stored card charges and Pagar.me webhooks.
type Handler struct {
	client *Client
	db     *sql.DB
	cfg    *config.Config
}

// NewHandler creates a new handler. client may be nil when PAGARME_API_KEY is not set;
// sync and webhook endpoints then answer 503.
func NewHandler(client *Client, db *sql.DB, cfg *config.Config) *Handler {
	return &Handler{client: client, db: db, cfg: cfg}
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// transactionView is a stored charge plus its display label.
type transactionView struct {
	Charge
	CaptureMethodLabel string `json:"captureMethodLabel"`
}

func chargeToRow(c Charge) repository.ChargeRow {
	installments := c.InstallmentCount
	if installments < 1 {
		installments = 1
	}
	return repository.ChargeRow{
		PagarmeChargeID: c.ID,
		OrderCode:       c.OrderCode,
		Status:          c.Status,
		Amount:          c.AmountCentavos,
		PaymentMethod:   c.PaymentMethod,
		CaptureMethod:   c.CaptureMethod,
		CardBrand:       c.CardBrand,
		CardLastFour:    c.CardLastFour,
		Installments:    installments,
		PaidAt:          c.PaidAt,
	}
}

func chargeFromRow(r repository.ChargeRow) Charge {
	return Charge{
		ID:               r.PagarmeChargeID,
		OrderCode:        r.OrderCode,
		Status:           r.Status,
		AmountCentavos:   r.Amount,
		PaymentMethod:    r.PaymentMethod,
		CaptureMethod:    r.CaptureMethod,
		CardBrand:        r.CardBrand,
		CardLastFour:     r.CardLastFour,
		InstallmentCount: r.Installments,
		PaidAt:           r.PaidAt,
	}
}

func (h *Handler) storeCharge(c Charge) error {
	if err := repository.UpsertCharge(h.db, chargeToRow(c)); err != nil {
		return err
	}
	if !IsKnownCaptureMethod(c.CaptureMethod) {
		logger.Warnf("cobrança %s com capture_method não mapeado: %q", c.ID, c.CaptureMethod)
	}
	metrics.ChargesStored.WithLabelValues(c.CaptureMethodLabel()).Inc()
	return nil
}

// ---------- Auth ----------

// Login handles POST /v1/auth/login
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		respondError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "corpo inválido")
		return
	}

	op, err := repository.OperatorByEmail(h.db, strings.TrimSpace(strings.ToLower(req.Email)))
	if err != nil {
		logger.Errorf("login: buscar operador: %v", err)
		respondError(w, http.StatusInternalServerError, "erro ao autenticar")
		return
	}
	if op == nil || !auth.CheckPassword(op.PasswordHash, req.Password) {
		respondError(w, http.StatusUnauthorized, "email ou senha inválidos")
		return
	}

	token, err := auth.IssueToken(op.ID, []byte(h.cfg.JWTSecret))
	if err != nil {
		logger.Errorf("login: emitir token: %v", err)
		respondError(w, http.StatusInternalServerError, "erro ao autenticar")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"token": token})
}

// ---------- Transactions ----------

// ListTransactions handles GET /v1/transactions?limit=N
func (h *Handler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	if middleware.UserID(r.Context()) == "" {
		respondError(w, http.StatusUnauthorized, "não autenticado")
		return
	}

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	rows, err := repository.ListCharges(h.db, limit)
	if err != nil {
		logger.Errorf("listar cobranças: %v", err)
		respondError(w, http.StatusInternalServerError, "erro ao listar transações")
		return
	}

	out := make([]transactionView, 0, len(rows))
	for _, row := range rows {
		c := chargeFromRow(row)
		out = append(out, transactionView{Charge: c, CaptureMethodLabel: c.CaptureMethodLabel()})
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{"transactions": out})
}

// GetReceipt handles GET /v1/transactions/receipt?id=ch_xxx
func (h *Handler) GetReceipt(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	if middleware.UserID(r.Context()) == "" {
		respondError(w, http.StatusUnauthorized, "não autenticado")
		return
	}

	chargeID := r.URL.Query().Get("id")
	if chargeID == "" {
		respondError(w, http.StatusBadRequest, "id é obrigatório")
		return
	}

	row, err := repository.ChargeByPagarmeID(h.db, chargeID)
	if err != nil {
		logger.Errorf("buscar cobrança %s: %v", chargeID, err)
		respondError(w, http.StatusInternalServerError, "erro ao buscar transação")
		return
	}
	if row == nil {
		respondError(w, http.StatusNotFound, "transação não encontrada")
		return
	}

	metrics.ReceiptsRendered.Inc()
	respondJSON(w, http.StatusOK, BuildReceipt(chargeFromRow(*row)))
}

// SyncCharge handles POST /v1/transactions/sync
// Fetches the charge from Pagar.me and stores it locally.
func (h *Handler) SyncCharge(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		respondError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	if middleware.UserID(r.Context()) == "" {
		respondError(w, http.StatusUnauthorized, "não autenticado")
		return
	}
	if h.client == nil {
		respondError(w, http.StatusServiceUnavailable, "integração com Pagar.me desabilitada")
		return
	}

	var req struct {
		ChargeID string `json:"chargeId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "corpo inválido")
		return
	}
	if req.ChargeID == "" {
		respondError(w, http.StatusBadRequest, "chargeId é obrigatório")
		return
	}

	start := time.Now()
	charge, err := h.client.GetCharge(req.ChargeID)
	if err != nil {
		metrics.PagarmeRequestDuration.WithLabelValues("error").Observe(time.Since(start).Seconds())
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
			respondError(w, http.StatusNotFound, "cobrança não encontrada no Pagar.me")
			return
		}
		logger.Errorf("pagarme: get charge %s: %v", req.ChargeID, err)
		respondError(w, http.StatusBadGateway, "erro ao consultar Pagar.me")
		return
	}
	metrics.PagarmeRequestDuration.WithLabelValues("ok").Observe(time.Since(start).Seconds())

	if err := ValidatePaymentMethod(charge.PaymentMethod); err != nil {
		respondError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	if err := h.storeCharge(*charge); err != nil {
		logger.Errorf("salvar cobrança %s: %v", charge.ID, err)
		respondError(w, http.StatusInternalServerError, "erro ao salvar transação")
		return
	}

	logger.Infof("cobrança %s sincronizada (%s, %s)", charge.ID, charge.Status, charge.CaptureMethodLabel())
	respondJSON(w, http.StatusOK, transactionView{Charge: *charge, CaptureMethodLabel: charge.CaptureMethodLabel()})
}

// ---------- Webhooks ----------

// HandleWebhook handles POST /v1/webhook
// Verifies the signature, deduplicates by event id and stores card charges.
func (h *Handler) HandleWebhook(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		respondError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	if h.client == nil {
		respondError(w, http.StatusServiceUnavailable, "integração com Pagar.me desabilitada")
		return
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, 65536))
	if err != nil {
		respondError(w, http.StatusBadRequest, "erro ao ler corpo")
		return
	}

	if !h.client.VerifySignature(body, r.Header.Get(SignatureHeader)) {
		logger.Warnf("[WEBHOOK] assinatura inválida")
		metrics.WebhooksReceived.WithLabelValues("unknown", "invalid_signature").Inc()
		respondError(w, http.StatusUnauthorized, "assinatura inválida")
		return
	}

	var event WebhookEvent
	if err := json.Unmarshal(body, &event); err != nil || event.ID == "" {
		respondError(w, http.StatusBadRequest, "corpo inválido")
		return
	}

	inserted, err := repository.InsertWebhookEvent(h.db, event.ID, event.Type)
	if err != nil {
		logger.Errorf("[WEBHOOK] registrar evento %s: %v", event.ID, err)
		respondError(w, http.StatusInternalServerError, "erro ao processar webhook")
		return
	}
	if !inserted {
		// eventos que falharam antes continuam pendentes e são reprocessados
		processed, err := repository.WebhookEventProcessed(h.db, event.ID)
		if err != nil {
			logger.Errorf("[WEBHOOK] consultar evento %s: %v", event.ID, err)
			respondError(w, http.StatusInternalServerError, "erro ao processar webhook")
			return
		}
		if processed {
			logger.Debugf("[WEBHOOK] evento %s já recebido, ignorando", event.ID)
			metrics.WebhooksReceived.WithLabelValues(event.Type, "duplicate").Inc()
			w.WriteHeader(http.StatusOK)
			return
		}
	}

	switch event.Type {
	case EventChargePaid, EventChargeRefunded, EventChargePaymentFailed:
		if err := h.handleChargeEvent(&event); err != nil {
			logger.Errorf("[WEBHOOK] evento %s (%s): %v", event.ID, event.Type, err)
			metrics.WebhooksReceived.WithLabelValues(event.Type, "error").Inc()
			respondError(w, http.StatusInternalServerError, "erro ao processar webhook")
			return
		}
	default:
		logger.Debugf("[WEBHOOK] tipo de evento não tratado: %s", event.Type)
	}

	if err := repository.MarkWebhookEventProcessed(h.db, event.ID); err != nil {
		logger.Errorf("[WEBHOOK] marcar evento %s como processado: %v", event.ID, err)
	}
	metrics.WebhooksReceived.WithLabelValues(event.Type, "ok").Inc()
	w.WriteHeader(http.StatusOK)
}

func (h *Handler) handleChargeEvent(event *WebhookEvent) error {
	if event.Data == nil {
		return errors.New("evento sem data")
	}
	charge := ChargeFromData(event.Data)
	if charge.ID == "" {
		return errors.New("evento sem id de cobrança")
	}
	if err := ValidatePaymentMethod(charge.PaymentMethod); err != nil {
		logger.Debugf("[WEBHOOK] cobrança %s ignorada: %v", charge.ID, err)
		return nil
	}
	if err := h.storeCharge(charge); err != nil {
		return err
	}
	logger.Infof("[WEBHOOK] cobrança %s -> %s (%s)", charge.ID, charge.Status, charge.CaptureMethodLabel())
	return nil
}
