package main

import (
	"os"
	"path/filepath"

	"recibo/api/internal/config"
	"recibo/api/internal/db"
	"recibo/api/internal/db/seeds"
	"recibo/api/internal/logger"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	logger.SetLevel(cfg.LogLevel)

	if err := os.MkdirAll(filepath.Dir(cfg.DBPath), 0755); err != nil {
		logger.Fatalf("erro ao criar diretório de dados: %v", err)
	}

	sqlite, err := db.OpenSQLite(cfg.DBPath)
	if err != nil {
		logger.Fatalf("erro ao abrir banco de dados: %v", err)
	}
	defer sqlite.Close()

	if err := db.Migrate(sqlite); err != nil {
		logger.Fatalf("erro ao executar migrações: %v", err)
	}

	logger.Infof("executando seeds...")
	if err := seeds.Run(sqlite); err != nil {
		logger.Fatalf("erro ao executar seeds: %v", err)
	}
	logger.Infof("seeds finalizados com sucesso")
}
