package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"recibo/api/internal/config"
	"recibo/api/internal/db"
	"recibo/api/internal/logger"
	"recibo/api/internal/metrics"
	"recibo/api/internal/middleware"
	"recibo/api/internal/pagarme"

	"github.com/joho/godotenv"
)

func main() {
	// Load .env file if it exists (ignores error if file is absent)
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

	var pagarmeClient *pagarme.Client
	if cfg.PagarmeAPIKey != "" {
		pagarmeClient = pagarme.NewClient(cfg.PagarmeAPIKey, cfg.PagarmeWebhookSecret, cfg.PagarmeBaseURL)
		if cfg.PagarmeWebhookSecret == "" {
			logger.Warnf("PAGARME_WEBHOOK_SECRET não definido — assinatura dos webhooks não será verificada")
		}
	} else {
		logger.Warnf("PAGARME_API_KEY não definido — sync e webhook do Pagar.me desabilitados")
	}
	h := pagarme.NewHandler(pagarmeClient, sqlite, cfg)

	mux := http.NewServeMux()
	mux.HandleFunc("/v1/auth/login", h.Login)
	mux.HandleFunc("/v1/transactions", h.ListTransactions)
	mux.HandleFunc("/v1/transactions/receipt", h.GetReceipt)
	mux.HandleFunc("/v1/transactions/sync", h.SyncCharge)
	mux.HandleFunc("/v1/webhook", h.HandleWebhook)
	mux.Handle("/metrics", metrics.Handler())
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		if err := sqlite.PingContext(r.Context()); err != nil {
			http.Error(w, "db indisponível", http.StatusServiceUnavailable)
			return
		}
		w.Write([]byte("ok"))
	})

	handler := middleware.CORS(cfg.CORSOrigins)(middleware.Auth(cfg.JWTSecret)(mux))

	addr := fmt.Sprintf("0.0.0.0:%d", cfg.Port)
	httpServer := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	logger.Infof("servidor escutando em %s", addr)

	go func() {
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("erro no servidor: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Infof("encerrando...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		logger.Fatalf("erro ao encerrar servidor: %v", err)
	}
	logger.Infof("servidor parado")
}
