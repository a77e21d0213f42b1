package metrics

import (
	"sync/atomic"
	"time"
)

// Snapshot captures current in-memory counters.
type Snapshot struct {
	HTTPRequests         uint64
	PagesServed          uint64
	RecordsEmitted       uint64
	FaultDelays          uint64
	FaultErrors          uint64
	InjectedDelayTotalNs int64
	StreamsClientGone    uint64
	StreamsInvariant     uint64
	ChallengesCompleted  uint64
}

// InMemoryRecorder stores metrics in memory for tests.
type InMemoryRecorder struct {
	httpRequests         uint64
	pagesServed          uint64
	recordsEmitted       uint64
	faultDelays          uint64
	faultErrors          uint64
	injectedDelayTotalNs int64
	streamsClientGone    uint64
	streamsInvariant     uint64
	challengesCompleted  uint64
}

// NewInMemory returns a Recorder that stores counters in memory.
func NewInMemory() *InMemoryRecorder {
	return &InMemoryRecorder{}
}

// Snapshot returns a copy of the counters.
func (m *InMemoryRecorder) Snapshot() Snapshot {
	return Snapshot{
		HTTPRequests:         atomic.LoadUint64(&m.httpRequests),
		PagesServed:          atomic.LoadUint64(&m.pagesServed),
		RecordsEmitted:       atomic.LoadUint64(&m.recordsEmitted),
		FaultDelays:          atomic.LoadUint64(&m.faultDelays),
		FaultErrors:          atomic.LoadUint64(&m.faultErrors),
		InjectedDelayTotalNs: atomic.LoadInt64(&m.injectedDelayTotalNs),
		StreamsClientGone:    atomic.LoadUint64(&m.streamsClientGone),
		StreamsInvariant:     atomic.LoadUint64(&m.streamsInvariant),
		ChallengesCompleted:  atomic.LoadUint64(&m.challengesCompleted),
	}
}

// ObserveHTTPRequest increments the request counter.
func (m *InMemoryRecorder) ObserveHTTPRequest(method, route string, status int, duration time.Duration) {
	atomic.AddUint64(&m.httpRequests, 1)
}

// IncPageServed increments the page counter.
func (m *InMemoryRecorder) IncPageServed(level int) {
	atomic.AddUint64(&m.pagesServed, 1)
}

// AddRecordsEmitted adds n to the record counter.
func (m *InMemoryRecorder) AddRecordsEmitted(level int, n int) {
	atomic.AddUint64(&m.recordsEmitted, uint64(n))
}

// IncFaultInjected increments the counter for kind.
func (m *InMemoryRecorder) IncFaultInjected(level int, kind string) {
	switch kind {
	case FaultDelay:
		atomic.AddUint64(&m.faultDelays, 1)
	case FaultError:
		atomic.AddUint64(&m.faultErrors, 1)
	}
}

// ObserveInjectedDelay records an injected delay.
func (m *InMemoryRecorder) ObserveInjectedDelay(delay time.Duration) {
	atomic.AddInt64(&m.injectedDelayTotalNs, delay.Nanoseconds())
}

// IncStreamAborted increments the counter for reason.
func (m *InMemoryRecorder) IncStreamAborted(level int, reason string) {
	switch reason {
	case AbortClientGone:
		atomic.AddUint64(&m.streamsClientGone, 1)
	case AbortInvariant:
		atomic.AddUint64(&m.streamsInvariant, 1)
	}
}

// IncChallengeCompleted increments the completion counter.
func (m *InMemoryRecorder) IncChallengeCompleted() {
	atomic.AddUint64(&m.challengesCompleted, 1)
}
