package employee

import (
	"context"
	"time"

	"github.com/handsoncoder/employee-producer/errors"
	"github.com/handsoncoder/employee-producer/redis"
)

// RecordStore persists roster records by key.
type RecordStore interface {
	Load(ctx context.Context, key string) (*Record, error)
	Save(ctx context.Context, key string, rec *Record, ttl time.Duration) error
}

var _ RecordStore = (*redis.TypedStore[Record])(nil)

// StoreSource is a Source backed by a RecordStore, typically Redis. Any
// store failure is reported as SERVICE_UNAVAILABLE so the caller falls back.
type StoreSource struct {
	store RecordStore
}

var _ Source = (*StoreSource)(nil)

// NewStoreSource creates a source reading from store.
func NewStoreSource(store RecordStore) *StoreSource {
	return &StoreSource{store: store}
}

// Fetch loads the record for name and applies the same availability rules
// as Roster.Fetch.
func (s *StoreSource) Fetch(ctx context.Context, name string) (Employee, error) {
	rec, err := s.store.Load(ctx, rosterKey(name))
	if err != nil {
		return Employee{}, errors.ServiceUnavailable("employee store").WithCause(err)
	}
	if rec == nil {
		return Employee{}, errors.NotFound(resourceEmployee, name)
	}
	if rec.Unavailable {
		return Employee{}, errors.EmployeeUnavailable(rec.Name)
	}
	return rec.Employee, nil
}

// Seed writes records to the store, replacing existing entries.
func (s *StoreSource) Seed(ctx context.Context, records []Record) error {
	for i := range records {
		if err := s.store.Save(ctx, rosterKey(records[i].Name), &records[i], 0); err != nil {
			return errors.ServiceUnavailable("employee store").WithCause(err).WithDetail("index", i)
		}
	}
	return nil
}
