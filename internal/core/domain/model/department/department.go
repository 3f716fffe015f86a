// Package department contains the Department entity: a named, ordered
// collection of employees.
package department

import (
	"errors"
	"strings"

	"orgchart/internal/core/domain/model/employee"
	"orgchart/internal/pkg/errs"
	"orgchart/internal/pkg/guard"
)

var (
	// ErrNameIsRequired is returned when a department is created without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrEmployeeIsRequired is returned when a nil employee is added.
	ErrEmployeeIsRequired = errs.NewValueIsRequiredError("employee")
	// ErrDepartmentIsNotConstructed is returned when using a zero-value Department.
	ErrDepartmentIsNotConstructed = errors.New("Department must be created via NewDepartment constructor")
)

// Department groups employees under a unique name.
//
// Business rules:
//   - The name is the identity and never changes after construction
//   - Employee ids are unique within the department
//   - Employees keep the order in which they were added
type Department struct {
	name      string
	employees []employee.Employee
	guard     guard.ConstructorGuard
}

// NewDepartment creates an empty department.
//
// Example:
//
//	dept, err := NewDepartment("Development")
//	if err != nil {
//	    return err
//	}
//	_ = dept.AddEmployee(dev)
func NewDepartment(name string) (*Department, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNameIsRequired
	}
	return &Department{name: name, guard: guard.NewConstructorGuard()}, nil
}

// Validate returns ErrDepartmentIsNotConstructed for a nil or zero value.
func (d *Department) Validate() error {
	if d == nil {
		return ErrDepartmentIsNotConstructed
	}
	return d.guard.Validate(ErrDepartmentIsNotConstructed)
}

// Name returns the department name.
func (d *Department) Name() string {
	return d.name
}

// AddEmployee appends e to the department.
//
// Returns:
//   - error: ErrEmployeeIsRequired for nil, the employee's own validation error,
//     or ObjectAlreadyExistsError when an employee with the same id is present
func (d *Department) AddEmployee(e employee.Employee) error {
	if e == nil {
		return ErrEmployeeIsRequired
	}
	if err := e.Validate(); err != nil {
		return err
	}
	if d.Contains(e.ID()) {
		return errs.NewObjectAlreadyExistsError("employee", e.ID())
	}
	d.employees = append(d.employees, e)
	return nil
}

// RemoveEmployee removes the employee with the given id.
// Returns ObjectNotFoundError when no such employee is in the department.
func (d *Department) RemoveEmployee(id int) error {
	for i, e := range d.employees {
		if e.ID() == id {
			d.employees = append(d.employees[:i], d.employees[i+1:]...)
			return nil
		}
	}
	return errs.NewObjectNotFoundError("employee", id)
}

// FindEmployeeByID returns the employee with the given id, if present.
func (d *Department) FindEmployeeByID(id int) (employee.Employee, bool) {
	for _, e := range d.employees {
		if e.ID() == id {
			return e, true
		}
	}
	return nil, false
}

// Contains reports whether an employee with the given id is in the department.
func (d *Department) Contains(id int) bool {
	_, ok := d.FindEmployeeByID(id)
	return ok
}

// Employees returns a copy of the member list in insertion order.
func (d *Department) Employees() []employee.Employee {
	out := make([]employee.Employee, len(d.employees))
	copy(out, d.employees)
	return out
}

// Len returns the number of employees.
func (d *Department) Len() int {
	return len(d.employees)
}

// TotalSalary sums CalculateSalary over all members.
func (d *Department) TotalSalary() float64 {
	var total float64
	for _, e := range d.employees {
		total += e.CalculateSalary()
	}
	return total
}

// CountByKind returns the number of members per variant name.
func (d *Department) CountByKind() map[string]int {
	counts := make(map[string]int)
	for _, e := range d.employees {
		counts[e.Kind().String()]++
	}
	return counts
}
