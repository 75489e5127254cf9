package handler

import (
	"fmt"
	"net/http"

	"github.com/coldpitch/coldpitch/internal/metrics"
)

// MetricsHandler exposes in-memory metrics.
type MetricsHandler struct {
	snapshotter metrics.Snapshotter
}

// NewMetricsHandler creates a new MetricsHandler.
func NewMetricsHandler(snapshotter metrics.Snapshotter) *MetricsHandler {
	return &MetricsHandler{snapshotter: snapshotter}
}

// Metrics returns metrics in Prometheus exposition format.
func (h *MetricsHandler) Metrics(w http.ResponseWriter, r *http.Request) {
	if h.snapshotter == nil {
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}

	snap := h.snapshotter.Snapshot()

	w.Header().Set("Content-Type", "text/plain; version=0.0.4")

	writeMetric(w, "coldpitch_emails_generated_total %d\n", snap.EmailsGenerated)
	writeMetric(w, "coldpitch_generations_failed_total %d\n", snap.GenerationsFailed)
	writeMetric(w, "coldpitch_insufficient_credits_total %d\n", snap.InsufficientCredits)
	writeMetric(w, "coldpitch_credits_debited_total %d\n", snap.CreditsDebited)
	writeMetric(w, "coldpitch_generation_duration_seconds_count %d\n", snap.GenerationDurationCount)
	writeMetric(w, "coldpitch_generation_duration_seconds_sum %.6f\n", float64(snap.GenerationDurationTotalNs)/1e9)

	writeMetric(w, "coldpitch_orders_created_total %d\n", snap.OrdersCreated)
	writeMetric(w, "coldpitch_payments_verified_total %d\n", snap.PaymentsVerified)
	writeMetric(w, "coldpitch_payments_rejected_total %d\n", snap.PaymentsRejected)
}

func writeMetric(w http.ResponseWriter, format string, args ...any) {
	_, _ = fmt.Fprintf(w, format, args...)
}
