package middleware

import (
	"context"
	"sync/atomic"
)

const annotationsKey contextKey = "annotations"

// annotations carries facts a handler learns about its own request back out to
// the logging middleware, which only sees the request before and after.
type annotations struct {
	level         atomic.Int64
	page          atomic.Int64
	faultInjected atomic.Bool
}

func withAnnotations(ctx context.Context) (context.Context, *annotations) {
	if a := getAnnotations(ctx); a != nil {
		return ctx, a
	}
	a := &annotations{}
	a.level.Store(-1)
	a.page.Store(-1)
	return context.WithValue(ctx, annotationsKey, a), a
}

func getAnnotations(ctx context.Context) *annotations {
	a, _ := ctx.Value(annotationsKey).(*annotations)
	return a
}

// AnnotatePage records the difficulty level and page number served.
// It is a no-op outside the Logger middleware.
func AnnotatePage(ctx context.Context, level int, page uint64) {
	if a := getAnnotations(ctx); a != nil {
		a.level.Store(int64(level))
		a.page.Store(int64(page))
	}
}

// MarkFaultInjected flags the response status as deliberate, so a 5xx is not
// logged as an application error.
func MarkFaultInjected(ctx context.Context) {
	if a := getAnnotations(ctx); a != nil {
		a.faultInjected.Store(true)
	}
}
