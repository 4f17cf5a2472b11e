package seeds

import (
	"database/sql"
	"fmt"
	"time"

	"recibo/api/internal/auth"
	"recibo/api/internal/repository"
)

// Run clears seed-related data and inserts fresh seed data.
// Safe to run multiple times (resets to seed state).
func Run(db *sql.DB) error {
	if err := clear(db); err != nil {
		return fmt.Errorf("clear: %w", err)
	}
	if err := insert(db); err != nil {
		return fmt.Errorf("insert: %w", err)
	}
	return nil
}

func clear(db *sql.DB) error {
	tables := []string{"pagarme_webhook_events", "charges", "operators"}
	for _, t := range tables {
		if _, err := db.Exec("DELETE FROM " + t); err != nil {
			return fmt.Errorf("delete %s: %w", t, err)
		}
	}
	return nil
}

func insert(db *sql.DB) error {
	// Senha do operador de seed: "123456"
	passwordHash, err := auth.HashPassword("123456")
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	if _, err := repository.CreateOperator(db, "Operador Caixa", "caixa@email.com", passwordHash); err != nil {
		return fmt.Errorf("insert operator: %w", err)
	}

	paidAt := time.Now().UTC().Add(-2 * time.Hour).Truncate(time.Minute)

	// um exemplo por rótulo, incluindo um capture_method sem mapeamento
	charges := []repository.ChargeRow{
		{PagarmeChargeID: "ch_seed_emv", OrderCode: "seed-pedido-1", Status: "paid", Amount: 15990,
			PaymentMethod: "credit_card", CaptureMethod: "emv", CardBrand: "Visa", CardLastFour: "4242",
			Installments: 1, PaidAt: paidAt},
		{PagarmeChargeID: "ch_seed_debit", OrderCode: "seed-pedido-2", Status: "paid", Amount: 4500,
			PaymentMethod: "debit_card", CaptureMethod: "debit_card", CardBrand: "Elo", CardLastFour: "0001",
			Installments: 1, PaidAt: paidAt.Add(15 * time.Minute)},
		{PagarmeChargeID: "ch_seed_mag", OrderCode: "seed-pedido-3", Status: "paid", Amount: 123456,
			PaymentMethod: "credit_card", CaptureMethod: "magstripe", CardBrand: "Mastercard", CardLastFour: "5454",
			Installments: 6, PaidAt: paidAt.Add(30 * time.Minute)},
	}
	for _, c := range charges {
		if err := repository.UpsertCharge(db, c); err != nil {
			return fmt.Errorf("insert charge %s: %w", c.PagarmeChargeID, err)
		}
	}
	return nil
}
