package metrics

import (
	"sync/atomic"
	"time"
)

// Snapshot captures current in-memory counters.
type Snapshot struct {
	EmailsGenerated           uint64
	GenerationsFailed         uint64
	InsufficientCredits       uint64
	CreditsDebited            uint64
	GenerationDurationCount   uint64
	GenerationDurationTotalNs int64
	OrdersCreated             uint64
	PaymentsVerified          uint64
	PaymentsRejected          uint64
}

// InMemoryRecorder stores metrics in memory, for the metrics endpoint and
// for tests.
type InMemoryRecorder struct {
	emailsGenerated           uint64
	generationsFailed         uint64
	insufficientCredits       uint64
	creditsDebited            uint64
	generationDurationCount   uint64
	generationDurationTotalNs int64
	ordersCreated             uint64
	paymentsVerified          uint64
	paymentsRejected          uint64
}

// NewInMemory returns a Recorder that stores counters in memory.
func NewInMemory() *InMemoryRecorder {
	return &InMemoryRecorder{}
}

// Snapshot returns a copy of the counters.
func (m *InMemoryRecorder) Snapshot() Snapshot {
	return Snapshot{
		EmailsGenerated:           atomic.LoadUint64(&m.emailsGenerated),
		GenerationsFailed:         atomic.LoadUint64(&m.generationsFailed),
		InsufficientCredits:       atomic.LoadUint64(&m.insufficientCredits),
		CreditsDebited:            atomic.LoadUint64(&m.creditsDebited),
		GenerationDurationCount:   atomic.LoadUint64(&m.generationDurationCount),
		GenerationDurationTotalNs: atomic.LoadInt64(&m.generationDurationTotalNs),
		OrdersCreated:             atomic.LoadUint64(&m.ordersCreated),
		PaymentsVerified:          atomic.LoadUint64(&m.paymentsVerified),
		PaymentsRejected:          atomic.LoadUint64(&m.paymentsRejected),
	}
}

// IncEmailGenerated increments the successful generation counter.
func (m *InMemoryRecorder) IncEmailGenerated() {
	atomic.AddUint64(&m.emailsGenerated, 1)
}

// IncGenerationFailed increments the provider failure counter.
func (m *InMemoryRecorder) IncGenerationFailed() {
	atomic.AddUint64(&m.generationsFailed, 1)
}

// IncInsufficientCredits increments the rejected-for-credits counter.
func (m *InMemoryRecorder) IncInsufficientCredits() {
	atomic.AddUint64(&m.insufficientCredits, 1)
}

// IncCreditsDebited increments the debit counter.
func (m *InMemoryRecorder) IncCreditsDebited() {
	atomic.AddUint64(&m.creditsDebited, 1)
}

// ObserveGenerationDuration records end-to-end generation duration.
func (m *InMemoryRecorder) ObserveGenerationDuration(duration time.Duration) {
	atomic.AddUint64(&m.generationDurationCount, 1)
	atomic.AddInt64(&m.generationDurationTotalNs, duration.Nanoseconds())
}

// IncOrderCreated increments the order counter.
func (m *InMemoryRecorder) IncOrderCreated() {
	atomic.AddUint64(&m.ordersCreated, 1)
}

// IncPaymentVerified increments the verified payment counter.
func (m *InMemoryRecorder) IncPaymentVerified() {
	atomic.AddUint64(&m.paymentsVerified, 1)
}

// IncPaymentRejected increments the rejected signature counter.
func (m *InMemoryRecorder) IncPaymentRejected() {
	atomic.AddUint64(&m.paymentsRejected, 1)
}
