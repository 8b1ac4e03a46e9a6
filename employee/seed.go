package employee

import (
	"context"
	"sync/atomic"

	"github.com/handsoncoder/employee-producer/component"
)

var _ component.Component = (*SeedComponent)(nil)

// SeedComponent writes the roster into a StoreSource on Start. Register it
// after the store's connection and before the HTTP server, so no request
// reaches the store before it holds the roster.
type SeedComponent struct {
	source  *StoreSource
	records []Record
	seeded  atomic.Bool
}

// NewSeedComponent creates a component that seeds source with records.
func NewSeedComponent(source *StoreSource, records []Record) *SeedComponent {
	return &SeedComponent{source: source, records: records}
}

func (c *SeedComponent) Name() string { return "employee-seed" }

func (c *SeedComponent) Start(ctx context.Context) error {
	if err := c.source.Seed(ctx, c.records); err != nil {
		return err
	}
	c.seeded.Store(true)
	return nil
}

func (c *SeedComponent) Stop(_ context.Context) error { return nil }

func (c *SeedComponent) Health(_ context.Context) component.Health {
	if !c.seeded.Load() {
		return component.Health{Name: c.Name(), Status: component.StatusUnhealthy, Message: "roster not seeded"}
	}
	return component.Health{Name: c.Name(), Status: component.StatusHealthy}
}
