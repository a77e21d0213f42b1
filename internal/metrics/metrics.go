// Package metrics provides lightweight hooks for instrumentation.
package metrics

import "time"

// Fault kinds recorded by IncFaultInjected.
const (
	FaultDelay = "delay"
	FaultError = "error"
)

// Abort reasons recorded by IncStreamAborted.
const (
	AbortClientGone = "client_gone"
	AbortInvariant  = "invariant"
)

// Recorder captures metric events for the application.
// Implementations can expose these to Prometheus or keep them in memory.
type Recorder interface {
	// HTTP metrics
	ObserveHTTPRequest(method, route string, status int, duration time.Duration)

	// Challenge metrics
	IncPageServed(level int)
	AddRecordsEmitted(level int, n int)
	IncFaultInjected(level int, kind string)
	ObserveInjectedDelay(delay time.Duration)
	IncStreamAborted(level int, reason string)
	IncChallengeCompleted()
}

// Snapshotter exposes a snapshot of current metrics.
type Snapshotter interface {
	Snapshot() Snapshot
}
