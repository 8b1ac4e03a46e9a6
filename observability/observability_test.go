package observability

import (
	"context"
	"testing"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/handsoncoder/employee-producer/component"
)

func TestTracerConfigApplyDefaults(t *testing.T) {
	var cfg TracerConfig
	cfg.ApplyDefaults()
	if cfg.Endpoint != "localhost:4318" {
		t.Errorf("expected default endpoint, got %q", cfg.Endpoint)
	}
	if cfg.SampleRate != 1.0 {
		t.Errorf("expected sample rate 1.0, got %v", cfg.SampleRate)
	}
	if cfg.Enabled {
		t.Error("tracing should be disabled by default")
	}
}

func TestTracerConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		rate    float64
		wantErr bool
	}{
		{"zero", 0, false},
		{"half", 0.5, false},
		{"one", 1, false},
		{"negative", -0.1, true},
		{"above one", 1.5, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := TracerConfig{SampleRate: tc.rate}
			if err := cfg.Validate(); (err != nil) != tc.wantErr {
				t.Errorf("expected error=%v, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestSampler(t *testing.T) {
	if got := sampler(1.0).Description(); got != sdktrace.AlwaysSample().Description() {
		t.Errorf("expected AlwaysSample, got %s", got)
	}
	if got := sampler(0).Description(); got != sdktrace.NeverSample().Description() {
		t.Errorf("expected NeverSample, got %s", got)
	}
	if got := sampler(0.25).Description(); got != sdktrace.TraceIDRatioBased(0.25).Description() {
		t.Errorf("expected ratio sampler, got %s", got)
	}
}

func TestStartSpanRecordsToGlobalProvider(t *testing.T) {
	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
	prev := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)
	t.Cleanup(func() {
		otel.SetTracerProvider(prev)
		tp.Shutdown(context.Background())
	})

	_, span := StartSpan(context.Background(), "employee.get")
	span.SetAttributes(attribute.String(AttrEmployeeName, "emp1"))
	span.End()

	spans := exporter.GetSpans()
	if len(spans) != 1 {
		t.Fatalf("expected 1 span, got %d", len(spans))
	}
	if spans[0].Name != "employee.get" {
		t.Errorf("unexpected span name %q", spans[0].Name)
	}
}

func TestStartSpanWithoutProvider(t *testing.T) {
	ctx, span := StartSpan(context.Background(), "noop")
	defer span.End()
	if ctx == nil {
		t.Fatal("expected non-nil context")
	}
}

func TestTracerComponentDisabled(t *testing.T) {
	tc := NewTracerComponent(TracerConfig{}, "employee-producer", "1.0.0", "development")

	if tc.Name() != "tracer" {
		t.Errorf("expected name tracer, got %q", tc.Name())
	}
	if err := tc.Start(context.Background()); err != nil {
		t.Fatalf("start failed: %v", err)
	}
	if tc.provider != nil {
		t.Error("disabled tracer should not install a provider")
	}

	h := tc.Health(context.Background())
	if h.Status != component.StatusHealthy || h.Message != "disabled" {
		t.Errorf("unexpected health %+v", h)
	}
	if err := tc.Stop(context.Background()); err != nil {
		t.Errorf("stop failed: %v", err)
	}
}

func TestTracerComponentEnabled(t *testing.T) {
	prev := otel.GetTracerProvider()
	t.Cleanup(func() { otel.SetTracerProvider(prev) })

	cfg := TracerConfig{Enabled: true, Insecure: true}
	cfg.ApplyDefaults()
	tc := NewTracerComponent(cfg, "employee-producer", "1.0.0", "development")

	// The exporter connects lazily, so Start succeeds without a collector.
	if err := tc.Start(context.Background()); err != nil {
		t.Fatalf("start failed: %v", err)
	}
	if tc.provider == nil {
		t.Fatal("expected provider to be installed")
	}
	if h := tc.Health(context.Background()); h.Message != "" {
		t.Errorf("expected no message when enabled, got %q", h.Message)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	// Nothing was recorded, so shutdown has nothing to flush.
	_ = tc.Stop(ctx)
	if tc.provider != nil {
		t.Error("expected provider to be cleared after stop")
	}
}
