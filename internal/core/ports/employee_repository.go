// Package ports defines the contracts between the organization core and the
// code that stores or drives it.
//
// Repository contracts are synchronous and perform no I/O; the in-memory
// adapter implements them. CompanyStore is the only port that reaches outside
// the process and therefore takes a context.
package ports

import (
	"orgchart/internal/core/domain/model/employee"
)

// EmployeeRepository is a keyed store of employees.
// Keys are employee ids; Get returns the stored instance, never a copy.
type EmployeeRepository interface {
	// Add stores e. Returns ObjectAlreadyExistsError if the id is taken;
	// the repository is left unchanged in that case.
	Add(e employee.Employee) error

	// Get returns the employee with id and true, or nil and false.
	Get(id int) (employee.Employee, bool)

	// GetAll returns a snapshot of all employees in insertion order.
	GetAll() []employee.Employee

	// Update replaces the employee stored under e.ID().
	// Returns ObjectNotFoundError if no employee has that id.
	Update(e employee.Employee) error

	// Delete removes the employee with id.
	// Returns ObjectNotFoundError if no employee has that id.
	Delete(id int) error

	// Len returns the number of stored employees.
	Len() int
}
