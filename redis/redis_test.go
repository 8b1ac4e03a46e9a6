package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"

	"github.com/handsoncoder/employee-producer/component"
	"github.com/handsoncoder/employee-producer/logger"
)

type testRecord struct {
	Name  string   `json:"name"`
	Count int      `json:"count"`
	Tags  []string `json:"tags,omitempty"`
}

func newTestClient(t *testing.T) (*Client, *miniredis.Miniredis) {
	t.Helper()
	mini := miniredis.RunT(t)

	client, err := New(Config{Enabled: true, Addr: mini.Addr()}, logger.NewDefault("redis-test"))
	if err != nil {
		t.Fatalf("failed to create redis client: %v", err)
	}
	t.Cleanup(func() { client.Close() })
	return client, mini
}

func TestConfigApplyDefaults(t *testing.T) {
	var cfg Config
	cfg.ApplyDefaults()
	if cfg.Addr != "localhost:6379" || cfg.KeyPrefix != "employee" || cfg.PoolSize != 10 {
		t.Errorf("unexpected defaults %+v", cfg)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"disabled skips checks", Config{ReadTimeout: "soon"}, false},
		{"valid", Config{Enabled: true, Addr: "localhost:6379", DialTimeout: "1s", ReadTimeout: "1s", WriteTimeout: "1s"}, false},
		{"missing addr", Config{Enabled: true, DialTimeout: "1s", ReadTimeout: "1s", WriteTimeout: "1s"}, true},
		{"bad duration", Config{Enabled: true, Addr: "x:1", DialTimeout: "1s", ReadTimeout: "soon", WriteTimeout: "1s"}, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.cfg.Validate(); (err != nil) != tc.wantErr {
				t.Errorf("expected error=%v, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestTypedStoreSaveAndLoad(t *testing.T) {
	client, _ := newTestClient(t)
	store := NewTypedStore[testRecord](client, "test")
	ctx := context.Background()

	rec := testRecord{Name: "emp2", Count: 5, Tags: []string{"a", "b"}}
	if err := store.Save(ctx, "emp2", &rec, 0); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got, err := store.Load(ctx, "emp2")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got == nil || got.Name != "emp2" || got.Count != 5 || len(got.Tags) != 2 {
		t.Fatalf("unexpected record %+v", got)
	}
}

func TestTypedStoreLoadMissing(t *testing.T) {
	client, _ := newTestClient(t)
	store := NewTypedStore[testRecord](client, "test")

	got, err := store.Load(context.Background(), "nonexistent")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil for missing key, got %+v", got)
	}
}

func TestTypedStoreDelete(t *testing.T) {
	client, _ := newTestClient(t)
	store := NewTypedStore[testRecord](client, "test")
	ctx := context.Background()

	store.Save(ctx, "k1", &testRecord{Count: 1}, 0)
	if err := store.Delete(ctx, "k1"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	if got, err := store.Load(ctx, "k1"); err != nil || got != nil {
		t.Fatalf("expected nil after delete, got %+v, err %v", got, err)
	}
}

func TestTypedStoreTTL(t *testing.T) {
	client, mini := newTestClient(t)
	store := NewTypedStore[testRecord](client, "test")
	ctx := context.Background()

	if err := store.Save(ctx, "k1", &testRecord{Count: 1}, 2*time.Second); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	mini.FastForward(3 * time.Second)

	if got, err := store.Load(ctx, "k1"); err != nil || got != nil {
		t.Fatalf("expected nil after TTL expiration, got %+v, err %v", got, err)
	}
}

func TestTypedStoreKeyPrefix(t *testing.T) {
	client, mini := newTestClient(t)
	ctx := context.Background()

	NewTypedStore[testRecord](client, "employee").Save(ctx, "emp1", &testRecord{Count: 42}, 0)
	if _, err := mini.Get("employee:emp1"); err != nil {
		t.Errorf("expected prefixed key, err: %v", err)
	}

	NewTypedStore[testRecord](client, "").Save(ctx, "bare", &testRecord{Count: 1}, 0)
	if _, err := mini.Get("bare"); err != nil {
		t.Errorf("expected bare key, err: %v", err)
	}
}

func TestTypedStoreMalformedValue(t *testing.T) {
	client, mini := newTestClient(t)
	mini.Set("test:bad", "{not json")

	if _, err := NewTypedStore[testRecord](client, "test").Load(context.Background(), "bad"); err == nil {
		t.Error("expected unmarshal error")
	}
}

func TestTypedStoreServerDown(t *testing.T) {
	client, mini := newTestClient(t)
	mini.Close()

	_, err := NewTypedStore[testRecord](client, "test").Load(context.Background(), "k1")
	if err == nil {
		t.Error("expected error when redis is unreachable")
	}
}

func TestComponentLifecycle(t *testing.T) {
	client, mini := newTestClient(t)
	c := NewComponent(client)
	ctx := context.Background()

	if c.Name() != "redis" {
		t.Errorf("expected name redis, got %q", c.Name())
	}
	if err := c.Start(ctx); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	if h := c.Health(ctx); h.Status != component.StatusHealthy {
		t.Errorf("expected healthy, got %+v", h)
	}

	mini.Close()
	if h := c.Health(ctx); h.Status != component.StatusDegraded {
		t.Errorf("expected degraded with redis down, got %+v", h)
	}

	if err := c.Stop(ctx); err != nil {
		t.Errorf("Stop failed: %v", err)
	}
	if err := c.Stop(ctx); err != nil {
		t.Errorf("second Stop should be a no-op, got %v", err)
	}
}

func TestComponentStartFailsWhenUnreachable(t *testing.T) {
	client, mini := newTestClient(t)
	mini.Close()

	if err := NewComponent(client).Start(context.Background()); err == nil {
		t.Error("expected start error when redis is unreachable")
	}
}
