// Package queries contains read operations over the organization.
// Queries return flat read models so callers never hold on to live entities.
package queries

import (
	"errors"
	"strings"

	"orgchart/internal/core/domain/model/employee"
	"orgchart/internal/core/domain/specification"
	"orgchart/internal/pkg/errs"
	"orgchart/internal/pkg/guard"
)

// ErrFindEmployeesQueryIsNotConstructed is returned when using a zero-value FindEmployeesQuery.
var ErrFindEmployeesQueryIsNotConstructed = errors.New(
	"FindEmployeesQuery must be created via NewFindEmployeesQuery constructor",
)

// Criteria lists the optional filters of an employee search.
// Empty fields do not filter.
type Criteria struct {
	MinSalary  *float64
	MaxSalary  *float64
	Department string
	Skills     []string
	Kind       string
}

// FindEmployeesQuery is a validated employee search.
// All criteria are combined with AND.
//
// Example:
//
//	minSalary := 5500.0
//	query, err := NewFindEmployeesQuery(Criteria{MinSalary: &minSalary, Department: "IT"})
//	if err != nil {
//	    return err
//	}
//	views, err := NewFindEmployeesQueryHandler(company).Handle(query)
type FindEmployeesQuery struct {
	spec specification.Specification

	guard guard.ConstructorGuard
}

// NewFindEmployeesQuery builds the specification for c.
//
// Returns:
//   - error: ValueIsOutOfRangeError when MinSalary > MaxSalary,
//     ValueIsInvalidError for an unknown kind
func NewFindEmployeesQuery(c Criteria) (FindEmployeesQuery, error) {
	var specs []specification.Specification
	var joined error

	switch {
	case c.MinSalary != nil && c.MaxSalary != nil:
		if *c.MinSalary > *c.MaxSalary {
			joined = errors.Join(joined, errs.NewValueIsOutOfRangeError("min_salary", *c.MinSalary, nil, *c.MaxSalary))
		}
		specs = append(specs, specification.Salary(*c.MinSalary, *c.MaxSalary))
	case c.MinSalary != nil:
		specs = append(specs, specification.SalaryAtLeast(*c.MinSalary))
	case c.MaxSalary != nil:
		specs = append(specs, specification.SalaryAtMost(*c.MaxSalary))
	}

	if d := strings.TrimSpace(c.Department); d != "" {
		specs = append(specs, specification.Department(d))
	}

	var skills []string
	for _, s := range c.Skills {
		if s = strings.TrimSpace(s); s != "" {
			skills = append(skills, s)
		}
	}
	if len(skills) > 0 {
		specs = append(specs, specification.Skills(skills...))
	}

	if c.Kind != "" {
		kind, err := employee.ParseKind(c.Kind)
		joined = errors.Join(joined, err)
		specs = append(specs, specification.Kind(kind))
	}

	if joined != nil {
		return FindEmployeesQuery{}, joined
	}

	return FindEmployeesQuery{
		spec:  specification.AllOf(specs...),
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q FindEmployeesQuery) Validate() error {
	return q.guard.Validate(ErrFindEmployeesQueryIsNotConstructed)
}

// Specification returns the combined predicate.
func (q FindEmployeesQuery) Specification() specification.Specification {
	return q.spec
}

// EmployeeView is the read model of one employee.
type EmployeeView struct {
	ID         int
	Name       string
	Department string
	Kind       string
	BaseSalary float64
	Salary     float64
	Skills     []string
}

// NewEmployeeView copies the readable state of e.
func NewEmployeeView(e employee.Employee) EmployeeView {
	view := EmployeeView{
		ID:         e.ID(),
		Name:       e.Name(),
		Department: e.Department(),
		Kind:       e.Kind().String(),
		BaseSalary: e.BaseSalary(),
		Salary:     e.CalculateSalary(),
	}
	if holder, ok := e.(employee.SkillHolder); ok {
		view.Skills = holder.Skills()
	}
	return view
}
