package redis

import (
	"context"
	"fmt"

	"github.com/handsoncoder/employee-producer/component"
)

var _ component.Component = (*Component)(nil)

// Component ties a Client to the application lifecycle: Start verifies
// connectivity and Stop closes the pool.
type Component struct {
	client *Client
}

// NewComponent creates a component for client.
func NewComponent(client *Client) *Component {
	return &Component{client: client}
}

func (c *Component) Name() string { return "redis" }

func (c *Component) Start(ctx context.Context) error {
	if err := c.client.Ping(ctx); err != nil {
		return fmt.Errorf("redis start: %w", err)
	}
	c.client.log.Info("Redis connected", map[string]interface{}{"addr": c.client.cfg.Addr})
	return nil
}

func (c *Component) Stop(_ context.Context) error {
	return c.client.Close()
}

// Health pings Redis. An unreachable Redis degrades the service rather than
// taking it down, since lookups fall back to the configured roster.
func (c *Component) Health(ctx context.Context) component.Health {
	if err := c.client.Ping(ctx); err != nil {
		return component.Health{
			Name:    c.Name(),
			Status:  component.StatusDegraded,
			Message: err.Error(),
		}
	}
	return component.Health{Name: c.Name(), Status: component.StatusHealthy}
}
