package specification

import (
	"orgchart/internal/core/domain/model/employee"
)

// Repository filters a fixed list of employees.
type Repository struct {
	employees []employee.Employee
}

// NewRepository snapshots employees. Later changes to the caller's slice are not seen.
func NewRepository(employees []employee.Employee) *Repository {
	snapshot := make([]employee.Employee, len(employees))
	copy(snapshot, employees)
	return &Repository{employees: snapshot}
}

// FindBySpecification returns the employees satisfying spec, in input order.
// A nil spec returns every employee.
func (r *Repository) FindBySpecification(spec Specification) []employee.Employee {
	out := make([]employee.Employee, 0, len(r.employees))
	for _, e := range r.employees {
		if spec == nil || spec.IsSatisfiedBy(e) {
			out = append(out, e)
		}
	}
	return out
}

// Len returns the number of employees in the snapshot.
func (r *Repository) Len() int {
	return len(r.employees)
}
