package main

import (
	"github.com/handsoncoder/employee-producer/config"
	"github.com/handsoncoder/employee-producer/employee"
	"github.com/handsoncoder/employee-producer/observability"
	"github.com/handsoncoder/employee-producer/redis"
	"github.com/handsoncoder/employee-producer/server"
)

const serviceName = "employee-producer"

// AppConfig is the full configuration of the service.
type AppConfig struct {
	config.ServiceConfig `yaml:",inline" mapstructure:",squash"`

	Server   server.Config              `yaml:"server" mapstructure:"server"`
	Employee employee.Config            `yaml:"employee" mapstructure:"employee"`
	Redis    redis.Config               `yaml:"redis" mapstructure:"redis"`
	Tracing  observability.TracerConfig `yaml:"tracing" mapstructure:"tracing"`
}

func (c *AppConfig) ApplyDefaults() {
	if c.Name == "" {
		c.Name = serviceName
	}
	c.ServiceConfig.ApplyDefaults()
	c.Server.ApplyDefaults()
	c.Employee.ApplyDefaults()
	c.Redis.ApplyDefaults()
	c.Tracing.ApplyDefaults()
}

func (c *AppConfig) Validate() error {
	if err := c.ServiceConfig.Validate(); err != nil {
		return err
	}
	if err := c.Server.Validate(); err != nil {
		return err
	}
	if err := c.Employee.Validate(); err != nil {
		return err
	}
	if err := c.Redis.Validate(); err != nil {
		return err
	}
	return c.Tracing.Validate()
}
