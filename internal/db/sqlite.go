package db

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// OpenSQLite abre o banco com WAL e chaves estrangeiras ligadas.
// O path ":memory:" é aceito (usado nos testes).
func OpenSQLite(path string) (*sql.DB, error) {
	dsn := path + "?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"
	if path == ":memory:" {
		dsn = "file::memory:?_pragma=foreign_keys(1)"
	}
	conn, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// sqlite em memória é por conexão
	if path == ":memory:" {
		conn.SetMaxOpenConns(1)
	}
	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}
	return conn, nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS operators (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		created_at TEXT NOT NULL DEFAULT (datetime('now'))
	)`,
	`CREATE TABLE IF NOT EXISTS charges (
		id TEXT PRIMARY KEY,
		pagarme_charge_id TEXT NOT NULL UNIQUE,
		order_code TEXT,
		status TEXT NOT NULL,
		amount INTEGER NOT NULL DEFAULT 0,
		payment_method TEXT,
		capture_method TEXT,
		card_brand TEXT,
		card_last_four TEXT,
		installments INTEGER NOT NULL DEFAULT 1,
		paid_at TEXT,
		updated_at TEXT NOT NULL DEFAULT (datetime('now'))
	)`,
	`CREATE INDEX IF NOT EXISTS idx_charges_updated_at ON charges(updated_at)`,
	`CREATE TABLE IF NOT EXISTS pagarme_webhook_events (
		id TEXT PRIMARY KEY,
		pagarme_event_id TEXT NOT NULL UNIQUE,
		event_type TEXT NOT NULL,
		processed INTEGER NOT NULL DEFAULT 0,
		received_at TEXT NOT NULL DEFAULT (datetime('now')),
		processed_at TEXT
	)`,
}

// Migrate cria o schema. Pode ser executado várias vezes.
func Migrate(db *sql.DB) error {
	for i, m := range migrations {
		if _, err := db.Exec(m); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}
