package validation

import (
	"regexp"
	"strings"
	"testing"

	"github.com/handsoncoder/employee-producer/errors"
)

type sample struct {
	Name        string  `json:"name" validate:"required,max=8"`
	Designation string  `validate:"required"`
	Salary      float64 `json:"salary" validate:"gte=0"`
}

func TestValidatorRequired(t *testing.T) {
	v := New().Required("name", "  ")
	if !v.HasErrors() {
		t.Fatal("expected error for blank value")
	}
	if v.Errors()[0].Field != "name" {
		t.Errorf("expected field 'name', got %q", v.Errors()[0].Field)
	}

	if New().Required("name", "emp1").HasErrors() {
		t.Error("expected no error for non-empty value")
	}
}

func TestValidatorChaining(t *testing.T) {
	re := regexp.MustCompile(`^[a-z0-9-]+$`)
	v := New().
		Required("name", "BAD NAME!").
		MaxLength("name", "BAD NAME!", 4).
		Pattern("name", "BAD NAME!", re)

	if len(v.Errors()) != 2 {
		t.Fatalf("expected 2 errors, got %d: %v", len(v.Errors()), v.Errors())
	}
}

func TestValidatorValidate(t *testing.T) {
	if err := New().Required("name", "ok").Validate(); err != nil {
		t.Errorf("expected nil, got %v", err)
	}

	err := New().Required("name", "").Validate()
	appErr, ok := errors.AsAppError(err)
	if !ok {
		t.Fatalf("expected AppError, got %T", err)
	}
	if appErr.Code != errors.ErrCodeInvalidInput {
		t.Errorf("expected INVALID_INPUT, got %s", appErr.Code)
	}
	if !strings.Contains(appErr.Message, "name: is required") {
		t.Errorf("unexpected message %q", appErr.Message)
	}
}

func TestStructValidateValid(t *testing.T) {
	if err := Validate(sample{Name: "emp1", Designation: "manager", Salary: 3000}); err != nil {
		t.Errorf("expected no error, got %v", err)
	}
}

func TestStructValidateInvalid(t *testing.T) {
	err := Validate(sample{Name: "much-too-long", Salary: -1})
	appErr, ok := errors.AsAppError(err)
	if !ok {
		t.Fatalf("expected AppError, got %v", err)
	}

	fields, _ := appErr.Details["fields"].([]FieldError)
	if len(fields) != 3 {
		t.Fatalf("expected 3 field errors, got %d: %v", len(fields), fields)
	}

	got := map[string]string{}
	for _, f := range fields {
		got[f.Field] = f.Message
	}
	if got["name"] != "must be at most 8" {
		t.Errorf("unexpected name message %q", got["name"])
	}
	if got["designation"] != "is required" {
		t.Errorf("expected snake_case fallback field name, got %v", got)
	}
	if got["salary"] != "must be greater than or equal to 0" {
		t.Errorf("unexpected salary message %q", got["salary"])
	}
}

func TestToSnakeCase(t *testing.T) {
	if got := toSnakeCase("EmployeeID"); got != "employee_i_d" {
		t.Errorf("unexpected snake case %q", got)
	}
}
