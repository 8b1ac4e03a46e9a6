package observability

import (
	"context"
	"fmt"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/handsoncoder/employee-producer/component"
)

var _ component.Component = (*TracerComponent)(nil)

// TracerComponent ties the tracer provider to the application lifecycle.
type TracerComponent struct {
	cfg         TracerConfig
	service     string
	version     string
	environment string
	provider    *sdktrace.TracerProvider
}

// NewTracerComponent creates a tracer component. Nothing is exported until Start.
func NewTracerComponent(cfg TracerConfig, service, version, environment string) *TracerComponent {
	return &TracerComponent{cfg: cfg, service: service, version: version, environment: environment}
}

// Name returns the component name.
func (tc *TracerComponent) Name() string { return "tracer" }

// Start installs the global provider when tracing is enabled.
func (tc *TracerComponent) Start(ctx context.Context) error {
	if !tc.cfg.Enabled {
		return nil
	}
	tp, err := InitTracer(ctx, tc.cfg, tc.service, tc.version, tc.environment)
	if err != nil {
		return err
	}
	tc.provider = tp
	return nil
}

// Stop flushes pending spans.
func (tc *TracerComponent) Stop(ctx context.Context) error {
	tp := tc.provider
	if tp == nil {
		return nil
	}
	tc.provider = nil
	if err := tp.Shutdown(ctx); err != nil {
		return fmt.Errorf("tracer shutdown: %w", err)
	}
	return nil
}

// Health reports healthy; a disabled tracer is reported as such in the message.
func (tc *TracerComponent) Health(ctx context.Context) component.Health {
	h := component.Health{Name: tc.Name(), Status: component.StatusHealthy}
	if !tc.cfg.Enabled {
		h.Message = "disabled"
	}
	return h
}
