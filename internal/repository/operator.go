package repository

import (
	"database/sql"

	"github.com/google/uuid"
)

type OperatorRow struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
}

func OperatorByEmail(db *sql.DB, email string) (*OperatorRow, error) {
	var o OperatorRow
	err := db.QueryRow(`SELECT id, name, email, password_hash FROM operators WHERE email = ?`, email).
		Scan(&o.ID, &o.Name, &o.Email, &o.PasswordHash)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func CreateOperator(db *sql.DB, name, email, passwordHash string) (string, error) {
	id := uuid.New().String()
	_, err := db.Exec(`INSERT INTO operators (id, name, email, password_hash) VALUES (?, ?, ?, ?)`,
		id, name, email, passwordHash)
	return id, err
}
