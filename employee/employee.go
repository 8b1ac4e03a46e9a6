// Package employee serves employee records through a fallback guard: the
// roster is the primary source, and a "fallback-" prefixed copy of the record
// is served whenever the primary lookup fails.
package employee

import "strings"

// FallbackPrefix marks every text field of a degraded record.
const FallbackPrefix = "fallback-"

// Employee is an immutable employee value. Two employees are the same when
// all fields are equal.
type Employee struct {
	Name        string  `json:"name" mapstructure:"name" validate:"required,max=64"`
	Designation string  `json:"designation" mapstructure:"designation" validate:"required,max=64"`
	EmployeeID  string  `json:"employeeId" mapstructure:"employee_id" validate:"required,max=64"`
	Salary      float64 `json:"salary" mapstructure:"salary" validate:"gte=0"`
}

// Degraded returns the fallback form of e: text fields prefixed with
// FallbackPrefix, salary unchanged. Fields already prefixed are kept as-is.
func Degraded(e Employee) Employee {
	return Employee{
		Name:        withPrefix(e.Name),
		Designation: withPrefix(e.Designation),
		EmployeeID:  withPrefix(e.EmployeeID),
		Salary:      e.Salary,
	}
}

func withPrefix(s string) string {
	if strings.HasPrefix(s, FallbackPrefix) {
		return s
	}
	return FallbackPrefix + s
}

// Record is a roster entry. Unavailable records are refused by the primary
// lookup, which sends callers to the degraded copy.
type Record struct {
	Employee    `mapstructure:",squash"`
	Unavailable bool `json:"unavailable" mapstructure:"unavailable"`
}
