package repository

import (
	"database/sql"

	"github.com/google/uuid"
)

// ---------- Pagar.me Webhook Events ----------

// InsertWebhookEvent logs a received Pagar.me webhook event.
// Returns false when the event id was already stored.
func InsertWebhookEvent(db *sql.DB, eventID, eventType string) (bool, error) {
	res, err := db.Exec(
		`INSERT OR IGNORE INTO pagarme_webhook_events (id, pagarme_event_id, event_type) VALUES (?, ?, ?)`,
		uuid.New().String(), eventID, eventType,
	)
	if err != nil {
		return false, err
	}
	ra, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return ra == 1, nil
}

// MarkWebhookEventProcessed marks a webhook event as processed with timestamp.
func MarkWebhookEventProcessed(db *sql.DB, eventID string) error {
	_, err := db.Exec(
		`UPDATE pagarme_webhook_events SET processed = 1, processed_at = datetime('now') WHERE pagarme_event_id = ?`,
		eventID,
	)
	return err
}

// WebhookEventProcessed reports whether the event finished processing.
func WebhookEventProcessed(db *sql.DB, eventID string) (bool, error) {
	var processed int
	err := db.QueryRow(`SELECT processed FROM pagarme_webhook_events WHERE pagarme_event_id = ?`, eventID).Scan(&processed)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return processed == 1, nil
}
