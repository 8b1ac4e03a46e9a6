package employee

import (
	"context"
	"strings"
	"testing"

	"github.com/handsoncoder/employee-producer/errors"
)

func newDefaultRoster(t *testing.T) *Roster {
	t.Helper()
	r, err := NewRoster(DefaultRoster())
	if err != nil {
		t.Fatalf("NewRoster failed: %v", err)
	}
	return r
}

func TestRosterFetch(t *testing.T) {
	r := newDefaultRoster(t)

	tests := []struct {
		name     string
		lookup   string
		wantCode errors.ErrorCode
		wantName string
	}{
		{"available", "emp2", "", "emp2"},
		{"case-insensitive", "EMP2", "", "emp2"},
		{"unavailable", "emp1", errors.ErrCodeEmployeeUnavailable, ""},
		{"unavailable mixed case", "Emp1", errors.ErrCodeEmployeeUnavailable, ""},
		{"unknown", "ghost", errors.ErrCodeNotFound, ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			emp, err := r.Fetch(context.Background(), tc.lookup)
			if tc.wantCode == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if emp.Name != tc.wantName {
					t.Errorf("expected %q, got %q", tc.wantName, emp.Name)
				}
				return
			}
			appErr, ok := errors.AsAppError(err)
			if !ok {
				t.Fatalf("expected AppError, got %v", err)
			}
			if appErr.Code != tc.wantCode {
				t.Errorf("expected %s, got %s", tc.wantCode, appErr.Code)
			}
		})
	}
}

func TestRosterFetchCanceled(t *testing.T) {
	r := newDefaultRoster(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := r.Fetch(ctx, "emp2"); err != context.Canceled {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestRosterLookupIgnoresAvailability(t *testing.T) {
	r := newDefaultRoster(t)

	emp, ok := r.Lookup("emp1")
	if !ok {
		t.Fatal("expected emp1 to be on the roster")
	}
	if emp.Designation != "manager" || emp.Salary != 3000 {
		t.Errorf("unexpected record %+v", emp)
	}
	if _, ok := r.Lookup("ghost"); ok {
		t.Error("expected ghost to be missing")
	}
}

func TestRosterNames(t *testing.T) {
	r := newDefaultRoster(t)
	if got := strings.Join(r.Names(), ","); got != "emp1,emp2" {
		t.Errorf("expected emp1,emp2, got %s", got)
	}
	if r.Len() != 2 {
		t.Errorf("expected 2 records, got %d", r.Len())
	}
}

func TestNewRosterRejectsDuplicates(t *testing.T) {
	_, err := NewRoster([]Record{
		{Employee: Employee{Name: "emp1", Designation: "manager", EmployeeID: "1"}},
		{Employee: Employee{Name: "EMP1", Designation: "developer", EmployeeID: "2"}},
	})
	appErr, ok := errors.AsAppError(err)
	if !ok || appErr.Code != errors.ErrCodeAlreadyExists {
		t.Errorf("expected ALREADY_EXISTS, got %v", err)
	}
}

func TestNewRosterRejectsBlankName(t *testing.T) {
	_, err := NewRoster([]Record{
		{Employee: Employee{Name: "emp1", Designation: "manager", EmployeeID: "1"}},
		{Employee: Employee{Name: "  ", Designation: "developer", EmployeeID: "2"}},
	})
	appErr, ok := errors.AsAppError(err)
	if !ok || appErr.Code != errors.ErrCodeInvalidInput {
		t.Fatalf("expected INVALID_INPUT, got %v", err)
	}
	if appErr.Details["index"] != 1 {
		t.Errorf("expected index 1, got %v", appErr.Details["index"])
	}
}

func TestNewRosterRejectsInvalidRecord(t *testing.T) {
	_, err := NewRoster([]Record{
		{Employee: Employee{Name: "emp1", Designation: "manager", EmployeeID: "1"}},
		{Employee: Employee{Name: "emp2", EmployeeID: "2", Salary: -1}},
	})
	appErr, ok := errors.AsAppError(err)
	if !ok {
		t.Fatalf("expected AppError, got %v", err)
	}
	if appErr.Code != errors.ErrCodeInvalidInput {
		t.Errorf("expected INVALID_INPUT, got %s", appErr.Code)
	}
	if appErr.Details["index"] != 1 {
		t.Errorf("expected index 1, got %v", appErr.Details["index"])
	}
}
