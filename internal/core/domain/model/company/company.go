// Package company contains the Company aggregate: the root container of
// departments and projects.
//
// Company is the organization that commands operate on. It answers lookups by
// department name and by employee id across every department, and it owns the
// rules that span departments and projects (no removal of a department that
// still has employees, no removal of a project that still has a team).
package company

import (
	"errors"
	"strings"

	"orgchart/internal/core/domain/model/department"
	"orgchart/internal/core/domain/model/employee"
	"orgchart/internal/core/domain/model/project"
	"orgchart/internal/pkg/errs"
	"orgchart/internal/pkg/guard"
)

// OverloadThreshold is the number of project assignments at which an employee counts as overloaded.
const OverloadThreshold = 3

var (
	// ErrNameIsRequired is returned when a company is created without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrDepartmentIsRequired is returned when a nil department is added.
	ErrDepartmentIsRequired = errs.NewValueIsRequiredError("department")
	// ErrProjectIsRequired is returned when a nil project is added.
	ErrProjectIsRequired = errs.NewValueIsRequiredError("project")
	// ErrDepartmentHasEmployees is returned when removing a department that still has members.
	ErrDepartmentHasEmployees = errors.New("department still has employees")
	// ErrProjectHasTeam is returned when removing a project that still has team members.
	ErrProjectHasTeam = errors.New("project still has team members")
	// ErrCompanyIsNotConstructed is returned when using a zero-value Company.
	ErrCompanyIsNotConstructed = errors.New("Company must be created via NewCompany constructor")
)

// DepartmentStats summarizes one department.
type DepartmentStats struct {
	EmployeeCount int
	TotalSalary   float64
	EmployeeTypes map[string]int
}

// Company is the aggregate root over departments and projects.
type Company struct {
	name        string
	departments []*department.Department
	projects    []*project.Project
	guard       guard.ConstructorGuard
}

// NewCompany creates an empty company.
//
// Example:
//
//	c, _ := NewCompany("TechCorp")
//	dev, _ := department.NewDepartment("Development")
//	_ = c.AddDepartment(dev)
func NewCompany(name string) (*Company, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNameIsRequired
	}
	return &Company{name: name, guard: guard.NewConstructorGuard()}, nil
}

// Validate returns ErrCompanyIsNotConstructed for a nil or zero value.
func (c *Company) Validate() error {
	if c == nil {
		return ErrCompanyIsNotConstructed
	}
	return c.guard.Validate(ErrCompanyIsNotConstructed)
}

// Name returns the company name.
func (c *Company) Name() string {
	return c.name
}

// AddDepartment adds d. Department names are unique within the company.
func (c *Company) AddDepartment(d *department.Department) error {
	if d == nil {
		return ErrDepartmentIsRequired
	}
	if err := d.Validate(); err != nil {
		return err
	}
	if _, ok := c.FindDepartment(d.Name()); ok {
		return errs.NewObjectAlreadyExistsError("department", d.Name())
	}
	c.departments = append(c.departments, d)
	return nil
}

// RemoveDepartment removes the department called name.
//
// Returns:
//   - error: ObjectNotFoundError if there is no such department,
//     ErrDepartmentHasEmployees if it still has members
func (c *Company) RemoveDepartment(name string) error {
	for i, d := range c.departments {
		if d.Name() != name {
			continue
		}
		if d.Len() > 0 {
			return ErrDepartmentHasEmployees
		}
		c.departments = append(c.departments[:i], c.departments[i+1:]...)
		return nil
	}
	return errs.NewObjectNotFoundError("department", name)
}

// FindDepartment returns the department called name, if present.
func (c *Company) FindDepartment(name string) (*department.Department, bool) {
	for _, d := range c.departments {
		if d.Name() == name {
			return d, true
		}
	}
	return nil, false
}

// Departments returns a copy of the department list in insertion order.
func (c *Company) Departments() []*department.Department {
	out := make([]*department.Department, len(c.departments))
	copy(out, c.departments)
	return out
}

// FindEmployeeByID searches every department for the employee with id.
func (c *Company) FindEmployeeByID(id int) (employee.Employee, bool) {
	for _, d := range c.departments {
		if e, ok := d.FindEmployeeByID(id); ok {
			return e, true
		}
	}
	return nil, false
}

// AllEmployees returns every employee, department by department in insertion order.
func (c *Company) AllEmployees() []employee.Employee {
	var out []employee.Employee
	for _, d := range c.departments {
		out = append(out, d.Employees()...)
	}
	return out
}

// AddProject adds p. Project ids are unique within the company.
func (c *Company) AddProject(p *project.Project) error {
	if p == nil {
		return ErrProjectIsRequired
	}
	if err := p.Validate(); err != nil {
		return err
	}
	if _, ok := c.FindProject(p.ID()); ok {
		return errs.NewObjectAlreadyExistsError("project", p.ID())
	}
	c.projects = append(c.projects, p)
	return nil
}

// RemoveProject removes the project with id.
//
// Returns:
//   - error: ObjectNotFoundError if there is no such project,
//     ErrProjectHasTeam if it still has team members
func (c *Company) RemoveProject(id int) error {
	for i, p := range c.projects {
		if p.ID() != id {
			continue
		}
		if p.TeamSize() > 0 {
			return ErrProjectHasTeam
		}
		c.projects = append(c.projects[:i], c.projects[i+1:]...)
		return nil
	}
	return errs.NewObjectNotFoundError("project", id)
}

// FindProject returns the project with id, if present.
func (c *Company) FindProject(id int) (*project.Project, bool) {
	for _, p := range c.projects {
		if p.ID() == id {
			return p, true
		}
	}
	return nil, false
}

// Projects returns a copy of the project list in insertion order.
func (c *Company) Projects() []*project.Project {
	out := make([]*project.Project, len(c.projects))
	copy(out, c.projects)
	return out
}

// AssignEmployeeToProject adds the employee with employeeID to the project's team.
//
// Returns:
//   - error: ObjectNotFoundError for a missing employee or project, or the
//     project's own error when the employee is already on the team
func (c *Company) AssignEmployeeToProject(employeeID, projectID int) error {
	e, ok := c.FindEmployeeByID(employeeID)
	if !ok {
		return errs.NewObjectNotFoundError("employee", employeeID)
	}
	p, ok := c.FindProject(projectID)
	if !ok {
		return errs.NewObjectNotFoundError("project", projectID)
	}
	return p.AddTeamMember(e)
}

// TotalMonthlyCost sums CalculateSalary over every employee.
func (c *Company) TotalMonthlyCost() float64 {
	var total float64
	for _, d := range c.departments {
		total += d.TotalSalary()
	}
	return total
}

// DepartmentStats returns per-department headcount, payroll and variant counts.
func (c *Company) DepartmentStats() map[string]DepartmentStats {
	stats := make(map[string]DepartmentStats, len(c.departments))
	for _, d := range c.departments {
		stats[d.Name()] = DepartmentStats{
			EmployeeCount: d.Len(),
			TotalSalary:   d.TotalSalary(),
			EmployeeTypes: d.CountByKind(),
		}
	}
	return stats
}

// OverloadedEmployees returns employees assigned to OverloadThreshold or more
// projects, in AllEmployees order.
func (c *Company) OverloadedEmployees() []employee.Employee {
	assignments := make(map[int]int)
	for _, p := range c.projects {
		for _, e := range p.Team() {
			assignments[e.ID()]++
		}
	}

	var out []employee.Employee
	for _, e := range c.AllEmployees() {
		if assignments[e.ID()] >= OverloadThreshold {
			out = append(out, e)
		}
	}
	return out
}
