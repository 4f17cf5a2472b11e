package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	WebhooksReceived = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recibo_webhooks_received_total",
			Help: "Total number of Pagar.me webhooks received",
		},
		[]string{"type", "status"},
	)

	ChargesStored = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recibo_charges_stored_total",
			Help: "Total number of charges upserted, by capture method label",
		},
		[]string{"capture_method"},
	)

	ReceiptsRendered = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "recibo_receipts_rendered_total",
			Help: "Total number of receipts rendered",
		},
	)

	PagarmeRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "recibo_pagarme_request_duration_seconds",
			Help:    "Time taken by calls to the Pagar.me API",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"status"},
	)
)

func Handler() http.Handler {
	return promhttp.Handler()
}
