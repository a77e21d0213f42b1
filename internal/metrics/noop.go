package metrics

import "time"

// NoopRecorder implements Recorder with no-op methods.
type NoopRecorder struct{}

// NewNoop returns a Recorder that discards all metrics.
func NewNoop() Recorder {
	return &NoopRecorder{}
}

// ObserveHTTPRequest is a no-op.
func (n *NoopRecorder) ObserveHTTPRequest(method, route string, status int, duration time.Duration) {}

// IncPageServed is a no-op.
func (n *NoopRecorder) IncPageServed(level int) {}

// AddRecordsEmitted is a no-op.
func (n *NoopRecorder) AddRecordsEmitted(level int, count int) {}

// IncFaultInjected is a no-op.
func (n *NoopRecorder) IncFaultInjected(level int, kind string) {}

// ObserveInjectedDelay is a no-op.
func (n *NoopRecorder) ObserveInjectedDelay(delay time.Duration) {}

// IncStreamAborted is a no-op.
func (n *NoopRecorder) IncStreamAborted(level int, reason string) {}

// IncChallengeCompleted is a no-op.
func (n *NoopRecorder) IncChallengeCompleted() {}
