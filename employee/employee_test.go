package employee

import "testing"

func TestDegraded(t *testing.T) {
	e := Employee{Name: "emp1", Designation: "manager", EmployeeID: "1", Salary: 3000}

	got := Degraded(e)
	want := Employee{Name: "fallback-emp1", Designation: "fallback-manager", EmployeeID: "fallback-1", Salary: 3000}
	if got != want {
		t.Errorf("expected %+v, got %+v", want, got)
	}
	if e.Name != "emp1" {
		t.Error("Degraded must not modify its argument")
	}
}

func TestDegradedIdempotent(t *testing.T) {
	once := Degraded(Employee{Name: "emp1", Designation: "manager", EmployeeID: "1", Salary: 3000})
	if twice := Degraded(once); twice != once {
		t.Errorf("expected %+v, got %+v", once, twice)
	}
}
