package employee

import (
	"context"
	"sort"
	"strings"

	"github.com/handsoncoder/employee-producer/errors"
	"github.com/handsoncoder/employee-producer/validation"
)

const resourceEmployee = "employee"

// Source is the primary employee lookup.
type Source interface {
	Fetch(ctx context.Context, name string) (Employee, error)
}

// Roster is an in-memory employee directory keyed by case-insensitive name.
// It is read-only after construction.
type Roster struct {
	records map[string]Record
}

var _ Source = (*Roster)(nil)

// NewRoster validates records and builds a roster. Duplicate names, compared
// case-insensitively, are rejected.
func NewRoster(records []Record) (*Roster, error) {
	r := &Roster{records: make(map[string]Record, len(records))}
	for i, rec := range records {
		if err := validation.Validate(rec.Employee); err != nil {
			return nil, errors.Wrap(err).WithDetail("index", i)
		}
		// Names are keyed trimmed; a blank key is unreachable.
		if err := validation.New().Required("name", rec.Name).Validate(); err != nil {
			return nil, errors.Wrap(err).WithDetail("index", i)
		}
		key := rosterKey(rec.Name)
		if _, exists := r.records[key]; exists {
			return nil, errors.AlreadyExists(resourceEmployee, rec.Name)
		}
		r.records[key] = rec
	}
	return r, nil
}

// Fetch returns the employee named name. It fails with NOT_FOUND for unknown
// names and EMPLOYEE_UNAVAILABLE for records marked unavailable.
func (r *Roster) Fetch(ctx context.Context, name string) (Employee, error) {
	if err := ctx.Err(); err != nil {
		return Employee{}, err
	}
	rec, ok := r.records[rosterKey(name)]
	if !ok {
		return Employee{}, errors.NotFound(resourceEmployee, name)
	}
	if rec.Unavailable {
		return Employee{}, errors.EmployeeUnavailable(rec.Name)
	}
	return rec.Employee, nil
}

// Lookup returns the stored employee regardless of availability.
func (r *Roster) Lookup(name string) (Employee, bool) {
	rec, ok := r.records[rosterKey(name)]
	return rec.Employee, ok
}

// Names returns the stored employee names in sorted order.
func (r *Roster) Names() []string {
	names := make([]string, 0, len(r.records))
	for _, rec := range r.records {
		names = append(names, rec.Name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of records.
func (r *Roster) Len() int { return len(r.records) }

func rosterKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
