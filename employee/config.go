package employee

import "fmt"

// DefaultName is the employee served by GET /employee.
const DefaultName = "emp1"

// Config holds the roster and the default employee name.
type Config struct {
	Default string   `yaml:"default" mapstructure:"default"`
	Roster  []Record `yaml:"roster" mapstructure:"roster"`
}

// DefaultRoster returns the built-in roster: emp1 is unavailable so the
// default endpoint serves its fallback copy, emp2 is served as stored.
func DefaultRoster() []Record {
	return []Record{
		{
			Employee:    Employee{Name: "emp1", Designation: "manager", EmployeeID: "1", Salary: 3000},
			Unavailable: true,
		},
		{
			Employee: Employee{Name: "emp2", Designation: "developer", EmployeeID: "2", Salary: 2500},
		},
	}
}

// ApplyDefaults fills in the default name and roster.
func (c *Config) ApplyDefaults() {
	if c.Default == "" {
		c.Default = DefaultName
	}
	if len(c.Roster) == 0 {
		c.Roster = DefaultRoster()
	}
}

// Validate checks that the default employee is on the roster.
func (c *Config) Validate() error {
	for _, rec := range c.Roster {
		if rosterKey(rec.Name) == rosterKey(c.Default) {
			return nil
		}
	}
	return fmt.Errorf("employee.default %q is not on the roster", c.Default)
}
