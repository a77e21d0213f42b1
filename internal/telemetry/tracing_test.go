package telemetry

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestSetupTracing_Disabled(t *testing.T) {
	for _, exporter := range []string{"", "none", " NONE "} {
		cfg := TraceConfig{ServiceName: "usage-challenge", Exporter: exporter}

		shutdown, err := SetupTracing(context.Background(), cfg, discardLogger())
		if err != nil {
			t.Fatalf("exporter %q: unexpected error %v", exporter, err)
		}
		if err := shutdown(context.Background()); err != nil {
			t.Errorf("exporter %q: shutdown error %v", exporter, err)
		}
		if Tracer(cfg, "test") != nil {
			t.Errorf("exporter %q: expected nil tracer", exporter)
		}
	}
}

func TestSetupTracing_Unsupported(t *testing.T) {
	_, err := SetupTracing(context.Background(), TraceConfig{Exporter: "zipkin"}, discardLogger())
	if err == nil || !strings.Contains(err.Error(), "unsupported trace exporter") {
		t.Fatalf("expected unsupported exporter error, got %v", err)
	}
}

func TestSetupTracing_OTLPRequiresEndpoint(t *testing.T) {
	_, err := SetupTracing(context.Background(), TraceConfig{Exporter: "otlp"}, discardLogger())
	if err == nil {
		t.Fatal("expected error for missing OTLP endpoint")
	}
}

func TestSetupTracing_Stdout(t *testing.T) {
	var out bytes.Buffer
	cfg := TraceConfig{ServiceName: "usage-challenge", ServiceVersion: "test", Exporter: "stdout", Writer: &out}

	shutdown, err := SetupTracing(context.Background(), cfg, discardLogger())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tracer := Tracer(cfg, "telemetry-test")
	if tracer == nil {
		t.Fatal("expected tracer when exporter is enabled")
	}
	_, span := tracer.Start(context.Background(), "GET /usage/{pageNo}")
	span.End()

	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown: %v", err)
	}
	if !strings.Contains(out.String(), "GET /usage/{pageNo}") {
		t.Errorf("span not exported: %s", out.String())
	}
}
