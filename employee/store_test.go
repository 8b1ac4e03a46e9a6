package employee

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"

	"github.com/handsoncoder/employee-producer/component"
	"github.com/handsoncoder/employee-producer/errors"
	"github.com/handsoncoder/employee-producer/logger"
	"github.com/handsoncoder/employee-producer/redis"
)

func newRedisSource(t *testing.T) (*StoreSource, *miniredis.Miniredis) {
	t.Helper()
	mini := miniredis.RunT(t)
	client, err := redis.New(redis.Config{Enabled: true, Addr: mini.Addr(), MaxRetries: -1}, logger.NewDefault("test"))
	if err != nil {
		t.Fatalf("redis.New failed: %v", err)
	}
	t.Cleanup(func() { client.Close() })

	src := NewStoreSource(redis.NewTypedStore[Record](client, "employee"))
	if err := src.Seed(context.Background(), DefaultRoster()); err != nil {
		t.Fatalf("Seed failed: %v", err)
	}
	return src, mini
}

func TestStoreSourceSeedKeys(t *testing.T) {
	_, mini := newRedisSource(t)
	for _, key := range []string{"employee:emp1", "employee:emp2"} {
		if !mini.Exists(key) {
			t.Errorf("expected key %s to be seeded", key)
		}
	}
}

func TestStoreSourceFetch(t *testing.T) {
	src, _ := newRedisSource(t)

	emp, err := src.Fetch(context.Background(), "Emp2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if emp != (Employee{Name: "emp2", Designation: "developer", EmployeeID: "2", Salary: 2500}) {
		t.Errorf("unexpected employee %+v", emp)
	}

	_, err = src.Fetch(context.Background(), "emp1")
	if appErr, ok := errors.AsAppError(err); !ok || appErr.Code != errors.ErrCodeEmployeeUnavailable {
		t.Errorf("expected EMPLOYEE_UNAVAILABLE, got %v", err)
	}

	_, err = src.Fetch(context.Background(), "ghost")
	if appErr, ok := errors.AsAppError(err); !ok || appErr.Code != errors.ErrCodeNotFound {
		t.Errorf("expected NOT_FOUND, got %v", err)
	}
}

func TestStoreSourceRedisDown(t *testing.T) {
	src, mini := newRedisSource(t)
	mini.Close()

	_, err := src.Fetch(context.Background(), "emp2")
	appErr, ok := errors.AsAppError(err)
	if !ok || appErr.Code != errors.ErrCodeServiceUnavailable {
		t.Fatalf("expected SERVICE_UNAVAILABLE, got %v", err)
	}
	if appErr.Cause == nil {
		t.Error("expected redis error as cause")
	}
}

func TestServiceFallsBackWhenRedisDown(t *testing.T) {
	src, mini := newRedisSource(t)
	roster := newDefaultRoster(t)
	svc := newTestService(t, src, roster)

	res, err := svc.Get(context.Background(), "emp2")
	if err != nil || res.Degraded {
		t.Fatalf("expected stored emp2 while redis is up, got %+v, %v", res, err)
	}

	mini.Close()

	res, err = svc.Get(context.Background(), "emp2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.Degraded || res.Employee.Name != "fallback-emp2" {
		t.Errorf("expected degraded emp2, got %+v", res)
	}
}

func TestSeedComponent(t *testing.T) {
	mini := miniredis.RunT(t)
	client, err := redis.New(redis.Config{Enabled: true, Addr: mini.Addr(), MaxRetries: -1}, logger.NewDefault("test"))
	if err != nil {
		t.Fatalf("redis.New failed: %v", err)
	}
	t.Cleanup(func() { client.Close() })

	src := NewStoreSource(redis.NewTypedStore[Record](client, "employee"))
	c := NewSeedComponent(src, DefaultRoster())
	ctx := context.Background()

	if h := c.Health(ctx); h.Status != component.StatusUnhealthy {
		t.Errorf("expected unhealthy before start, got %s", h.Status)
	}
	if err := c.Start(ctx); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	if !mini.Exists("employee:emp2") {
		t.Error("expected emp2 to be seeded on start")
	}
	if h := c.Health(ctx); h.Status != component.StatusHealthy {
		t.Errorf("expected healthy after start, got %s", h.Status)
	}

	res, err := newTestService(t, src, newDefaultRoster(t)).Get(ctx, "emp2")
	if err != nil || res.Degraded {
		t.Errorf("expected stored emp2 after seeding, got %+v, %v", res, err)
	}
	if err := c.Stop(ctx); err != nil {
		t.Errorf("Stop failed: %v", err)
	}
}

func TestSeedComponentStartFailsWhenStoreDown(t *testing.T) {
	src, mini := newRedisSource(t)
	mini.Close()

	if err := NewSeedComponent(src, DefaultRoster()).Start(context.Background()); err == nil {
		t.Error("expected Start to fail with redis down")
	}
}
