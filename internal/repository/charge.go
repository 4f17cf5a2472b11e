package repository

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

type ChargeRow struct {
	ID              string
	PagarmeChargeID string
	OrderCode       string
	Status          string
	Amount          int64
	PaymentMethod   string
	CaptureMethod   string
	CardBrand       string
	CardLastFour    string
	Installments    int
	PaidAt          time.Time
	UpdatedAt       time.Time
}

func parseTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		t, _ = time.Parse("2006-01-02 15:04:05", s)
	}
	return t.UTC()
}

// UpsertCharge insere ou atualiza a cobrança pelo id do Pagar.me.
func UpsertCharge(db *sql.DB, c ChargeRow) error {
	var paidAt interface{}
	if !c.PaidAt.IsZero() {
		paidAt = c.PaidAt.UTC().Format(time.RFC3339)
	}
	_, err := db.Exec(`
		INSERT INTO charges (
			id, pagarme_charge_id, order_code, status, amount, payment_method,
			capture_method, card_brand, card_last_four, installments, paid_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(pagarme_charge_id) DO UPDATE SET
			order_code = excluded.order_code,
			status = excluded.status,
			amount = excluded.amount,
			payment_method = excluded.payment_method,
			capture_method = excluded.capture_method,
			card_brand = excluded.card_brand,
			card_last_four = excluded.card_last_four,
			installments = excluded.installments,
			paid_at = COALESCE(excluded.paid_at, charges.paid_at),
			updated_at = datetime('now')`,
		uuid.New().String(), c.PagarmeChargeID, c.OrderCode, c.Status, c.Amount, c.PaymentMethod,
		c.CaptureMethod, c.CardBrand, c.CardLastFour, c.Installments, paidAt,
	)
	return err
}

const chargeColumns = `id, pagarme_charge_id, COALESCE(order_code, ''), status, amount,
	COALESCE(payment_method, ''), COALESCE(capture_method, ''), COALESCE(card_brand, ''),
	COALESCE(card_last_four, ''), installments, paid_at, updated_at`

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanCharge(s scanner) (*ChargeRow, error) {
	var c ChargeRow
	var paidAt sql.NullString
	var updatedAt string
	err := s.Scan(&c.ID, &c.PagarmeChargeID, &c.OrderCode, &c.Status, &c.Amount,
		&c.PaymentMethod, &c.CaptureMethod, &c.CardBrand,
		&c.CardLastFour, &c.Installments, &paidAt, &updatedAt)
	if err != nil {
		return nil, err
	}
	if paidAt.Valid {
		c.PaidAt = parseTime(paidAt.String)
	}
	c.UpdatedAt = parseTime(updatedAt)
	return &c, nil
}

// ChargeByPagarmeID busca pelo id ch_... do Pagar.me. Retorna nil, nil se não existir.
func ChargeByPagarmeID(db *sql.DB, chargeID string) (*ChargeRow, error) {
	c, err := scanCharge(db.QueryRow(`SELECT `+chargeColumns+` FROM charges WHERE pagarme_charge_id = ?`, chargeID))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return c, err
}

// ListCharges devolve as cobranças mais recentes primeiro.
func ListCharges(db *sql.DB, limit int) ([]ChargeRow, error) {
	if limit <= 0 || limit > 500 {
		limit = 50
	}
	rows, err := db.Query(`SELECT `+chargeColumns+` FROM charges ORDER BY updated_at DESC, rowid DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []ChargeRow
	for rows.Next() {
		c, err := scanCharge(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, *c)
	}
	return list, rows.Err()
}
