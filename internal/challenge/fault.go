package challenge

import (
	"context"
	"math/rand/v2"
	"net/http"
	"time"
)

// Fault injection parameters.
const (
	delayProbability = 0.25
	errorProbability = 0.25

	minInjectedDelay = 1500 * time.Millisecond
	maxInjectedDelay = 20 * time.Second
)

// faultStatuses are the bare error statuses an unlucky request receives.
var faultStatuses = [...]int{
	http.StatusInternalServerError,
	http.StatusTooManyRequests,
	http.StatusServiceUnavailable,
	http.StatusInsufficientStorage,
	http.StatusGatewayTimeout,
}

// FaultSource supplies the randomness behind injected faults. It is separate
// from the page generator so faults never disturb record determinism.
type FaultSource interface {
	Chance(p float64) bool
	IntN(n int) int
	// DurationRange returns a duration in [lo, hi).
	DurationRange(lo, hi time.Duration) time.Duration
}

// RandomFaults draws from the runtime's global generator. It is safe for
// concurrent use.
type RandomFaults struct{}

func (RandomFaults) Chance(p float64) bool { return rand.Float64() < p }

func (RandomFaults) IntN(n int) int { return rand.IntN(n) }

func (RandomFaults) DurationRange(lo, hi time.Duration) time.Duration {
	return lo + rand.N(hi-lo)
}

// Sleeper blocks for d or until ctx is done, returning ctx.Err() in the
// latter case.
type Sleeper func(ctx context.Context, d time.Duration) error

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
