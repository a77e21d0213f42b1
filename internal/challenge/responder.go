package challenge

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/usagechallenge/challenge/internal/jsonv"
	"github.com/usagechallenge/challenge/internal/metrics"
	"github.com/usagechallenge/challenge/internal/middleware"
	"github.com/usagechallenge/challenge/internal/procedural"
)

// recordSource yields the records of one page.
type recordSource interface {
	Next() (jsonv.Value, error)
}

func newGeneratorSource(difficulty int, pageNo uint64) (recordSource, error) {
	return procedural.NewGenerator(difficulty, pageNo)
}

// Responder streams challenge pages.
type Responder struct {
	logger    *slog.Logger
	metrics   metrics.Recorder
	faults    FaultSource
	sleep     Sleeper
	newSource func(difficulty int, pageNo uint64) (recordSource, error)
}

// Option configures a Responder.
type Option func(*Responder)

// WithFaultSource replaces the randomness behind injected faults.
func WithFaultSource(src FaultSource) Option {
	return func(r *Responder) { r.faults = src }
}

// WithSleeper replaces the function used for injected latency.
func WithSleeper(sleep Sleeper) Option {
	return func(r *Responder) { r.sleep = sleep }
}

// New creates a Responder. A nil recorder disables metrics.
func New(logger *slog.Logger, recorder metrics.Recorder, opts ...Option) *Responder {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	r := &Responder{
		logger:    logger,
		metrics:   recorder,
		faults:    RandomFaults{},
		sleep:     sleepContext,
		newSource: newGeneratorSource,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Serve writes the page pageNo at the given difficulty to w.
//
// Faults are decided before any byte is written. On success the page is
// streamed one record at a time and flushed as produced, so memory use does
// not grow with the page size.
func (s *Responder) Serve(w http.ResponseWriter, r *http.Request, difficulty int, pageNo uint64) {
	ctx := r.Context()
	middleware.AnnotatePage(ctx, difficulty, pageNo)

	if difficulty >= procedural.Complete {
		s.metrics.IncChallengeCompleted()
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte(CompletionMessage))
		return
	}

	if !s.injectDelay(ctx, difficulty) {
		return
	}
	if status, ok := s.injectError(ctx, difficulty); ok {
		w.WriteHeader(status)
		return
	}

	s.stream(ctx, w, difficulty, pageNo)
}

// injectDelay stalls some level 4 and 5 requests. It reports false when the
// client went away while waiting.
func (s *Responder) injectDelay(ctx context.Context, difficulty int) bool {
	if difficulty < 4 || difficulty > 5 || !s.faults.Chance(delayProbability) {
		return true
	}

	delay := s.faults.DurationRange(minInjectedDelay, maxInjectedDelay)
	trace.SpanFromContext(ctx).AddEvent("fault.delay", trace.WithAttributes(
		attribute.Int64("delay_ms", delay.Milliseconds()),
	))
	s.metrics.IncFaultInjected(difficulty, metrics.FaultDelay)
	s.metrics.ObserveInjectedDelay(delay)
	s.logger.Debug("injecting delay",
		slog.Int("difficulty", difficulty),
		slog.Duration("delay", delay),
		slog.String("request_id", middleware.GetRequestID(ctx)),
	)

	if err := s.sleep(ctx, delay); err != nil {
		s.metrics.IncStreamAborted(difficulty, metrics.AbortClientGone)
		s.logger.Debug("client left during injected delay",
			slog.Int("difficulty", difficulty),
			slog.String("request_id", middleware.GetRequestID(ctx)),
		)
		return false
	}
	return true
}

// injectError picks a bare error status for some requests at level 4 and up.
func (s *Responder) injectError(ctx context.Context, difficulty int) (int, bool) {
	if difficulty < 4 || !s.faults.Chance(errorProbability) {
		return 0, false
	}

	status := faultStatuses[s.faults.IntN(len(faultStatuses))]
	middleware.MarkFaultInjected(ctx)
	trace.SpanFromContext(ctx).AddEvent("fault.error", trace.WithAttributes(
		attribute.Int("status", status),
	))
	s.metrics.IncFaultInjected(difficulty, metrics.FaultError)
	s.logger.Debug("injecting error status",
		slog.Int("difficulty", difficulty),
		slog.Int("status", status),
		slog.String("request_id", middleware.GetRequestID(ctx)),
	)
	return status, true
}

func (s *Responder) stream(ctx context.Context, w http.ResponseWriter, difficulty int, pageNo uint64) {
	src, err := s.newSource(difficulty, pageNo)
	if err != nil {
		s.failBeforeStream(ctx, w, difficulty, pageNo, err)
		return
	}

	// The first record is generated before the status line so a broken page
	// still gets a proper error response.
	record, err := src.Next()
	if err != nil {
		s.failBeforeStream(ctx, w, difficulty, pageNo, err)
		return
	}

	size := PageSize(difficulty)
	emitted := 0
	defer func() {
		s.metrics.AddRecordsEmitted(difficulty, emitted)
	}()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	s.metrics.IncPageServed(difficulty)

	rc := http.NewResponseController(w)
	buf := make([]byte, 0, 4096)
	buf = append(buf, `{"level": `...)
	buf = strconv.AppendInt(buf, int64(difficulty), 10)
	buf = append(buf, `, "usages": [`...)

	for i := range size {
		if i > 0 {
			if ctx.Err() != nil {
				s.clientGone(ctx, difficulty, emitted, ctx.Err())
				return
			}
			record, err = src.Next()
			if err != nil {
				s.failMidStream(ctx, difficulty, pageNo, emitted, err)
			}
			buf = append(buf, ',')
		}

		buf = record.AppendJSON(buf)
		if i == size-1 {
			buf = append(buf, "]}"...)
		}

		if _, err := w.Write(buf); err != nil {
			s.clientGone(ctx, difficulty, emitted, err)
			return
		}
		if err := rc.Flush(); err != nil && !errors.Is(err, http.ErrNotSupported) {
			s.clientGone(ctx, difficulty, emitted, err)
			return
		}
		emitted++
		buf = buf[:0]
	}
}

func (s *Responder) clientGone(ctx context.Context, difficulty, emitted int, err error) {
	s.metrics.IncStreamAborted(difficulty, metrics.AbortClientGone)
	s.logger.Debug("client left mid stream",
		slog.Int("difficulty", difficulty),
		slog.Int("records_emitted", emitted),
		slog.String("error", err.Error()),
		slog.String("request_id", middleware.GetRequestID(ctx)),
	)
}

func (s *Responder) failBeforeStream(ctx context.Context, w http.ResponseWriter, difficulty int, pageNo uint64, err error) {
	s.metrics.IncStreamAborted(difficulty, metrics.AbortInvariant)
	s.logger.Error("page generation failed",
		slog.Int("difficulty", difficulty),
		slog.Uint64("page", pageNo),
		slog.String("error", err.Error()),
		slog.String("request_id", middleware.GetRequestID(ctx)),
	)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusInternalServerError)
	_, _ = w.Write([]byte(`{"error":{"code":"INTERNAL_ERROR","message":"An internal error occurred"}}`))
}

// failMidStream aborts a response whose status line has already been sent.
// The connection is dropped so the client sees a truncated body rather than a
// well-formed page.
func (s *Responder) failMidStream(ctx context.Context, difficulty int, pageNo uint64, emitted int, err error) {
	s.metrics.IncStreamAborted(difficulty, metrics.AbortInvariant)
	s.logger.Error("page generation failed mid stream",
		slog.Int("difficulty", difficulty),
		slog.Uint64("page", pageNo),
		slog.Int("records_emitted", emitted),
		slog.String("error", err.Error()),
		slog.String("request_id", middleware.GetRequestID(ctx)),
	)
	panic(http.ErrAbortHandler)
}
