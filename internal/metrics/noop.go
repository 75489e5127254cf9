package metrics

import "time"

// NoopRecorder implements Recorder with no-op methods.
type NoopRecorder struct{}

// NewNoop returns a Recorder that discards all metrics.
func NewNoop() Recorder {
	return &NoopRecorder{}
}

// IncEmailGenerated is a no-op.
func (n *NoopRecorder) IncEmailGenerated() {}

// IncGenerationFailed is a no-op.
func (n *NoopRecorder) IncGenerationFailed() {}

// IncInsufficientCredits is a no-op.
func (n *NoopRecorder) IncInsufficientCredits() {}

// IncCreditsDebited is a no-op.
func (n *NoopRecorder) IncCreditsDebited() {}

// ObserveGenerationDuration is a no-op.
func (n *NoopRecorder) ObserveGenerationDuration(duration time.Duration) {}

// IncOrderCreated is a no-op.
func (n *NoopRecorder) IncOrderCreated() {}

// IncPaymentVerified is a no-op.
func (n *NoopRecorder) IncPaymentVerified() {}

// IncPaymentRejected is a no-op.
func (n *NoopRecorder) IncPaymentRejected() {}
