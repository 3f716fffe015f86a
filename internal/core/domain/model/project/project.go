// Package project contains the Project entity: a deadline-bound piece of
// work with a lifecycle status and a team of employees.
package project

import (
	"errors"
	"strings"
	"time"

	"orgchart/internal/core/domain/model/employee"
	"orgchart/internal/pkg/errs"
	"orgchart/internal/pkg/guard"
)

var (
	// ErrNameIsRequired is returned when a project is created without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrMemberIsRequired is returned when a nil team member is added.
	ErrMemberIsRequired = errs.NewValueIsRequiredError("member")
	// ErrProjectIsNotConstructed is returned when using a zero-value Project.
	ErrProjectIsNotConstructed = errors.New("Project must be created via NewProject constructor")
)

// Project is keyed by a positive integer id.
//
// Business rules:
//   - id > 0 and name non-empty; both fixed at construction
//   - Status is always one of planning, active, completed, cancelled
//   - A team member appears at most once
type Project struct {
	id          int
	name        string
	description string
	deadline    time.Time
	status      Status
	team        []employee.Employee
	guard       guard.ConstructorGuard
}

// NewProject creates a project with an empty team.
//
// Parameters:
//   - id: positive identifier
//   - name: non-empty name
//   - description: free text, may be empty
//   - deadline: due date; the zero time means no deadline
//   - status: initial status, must be valid
//
// Example:
//
//	deadline := time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)
//	p, err := NewProject(1, "AI Platform", "Build the AI system", deadline, Planning)
func NewProject(id int, name, description string, deadline time.Time, status Status) (*Project, error) {
	p := &Project{
		description: description,
		deadline:    deadline,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
		p.ChangeStatus(status),
	); err != nil {
		return nil, err
	}

	return p, nil
}

func (p *Project) setID(id int) error {
	if id <= 0 {
		return errs.NewValueIsOutOfRangeError("id", id, 1, nil)
	}
	p.id = id
	return nil
}

func (p *Project) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrNameIsRequired
	}
	p.name = name
	return nil
}

// Validate returns ErrProjectIsNotConstructed for a nil or zero value.
func (p *Project) Validate() error {
	if p == nil {
		return ErrProjectIsNotConstructed
	}
	return p.guard.Validate(ErrProjectIsNotConstructed)
}

// ID returns the project id.
func (p *Project) ID() int {
	return p.id
}

// Name returns the project name.
func (p *Project) Name() string {
	return p.name
}

// Description returns the free-text description.
func (p *Project) Description() string {
	return p.description
}

// Deadline returns the due date.
func (p *Project) Deadline() time.Time {
	return p.deadline
}

// Status returns the current lifecycle status.
func (p *Project) Status() Status {
	return p.status
}

// ChangeStatus moves the project to status. An invalid status is rejected
// with a StatusIsInvalidError and the current status is kept.
func (p *Project) ChangeStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	p.status = status
	return nil
}

// AddTeamMember adds e to the team.
// Returns ObjectAlreadyExistsError if an employee with the same id is already a member.
func (p *Project) AddTeamMember(e employee.Employee) error {
	if e == nil {
		return ErrMemberIsRequired
	}
	if p.HasMember(e.ID()) {
		return errs.NewObjectAlreadyExistsError("member", e.ID())
	}
	p.team = append(p.team, e)
	return nil
}

// RemoveTeamMember removes the member with the given employee id.
// Returns ObjectNotFoundError if there is no such member.
func (p *Project) RemoveTeamMember(employeeID int) error {
	for i, e := range p.team {
		if e.ID() == employeeID {
			p.team = append(p.team[:i], p.team[i+1:]...)
			return nil
		}
	}
	return errs.NewObjectNotFoundError("member", employeeID)
}

// HasMember reports whether the employee id is on the team.
func (p *Project) HasMember(employeeID int) bool {
	for _, e := range p.team {
		if e.ID() == employeeID {
			return true
		}
	}
	return false
}

// Team returns a copy of the team in the order members were added.
func (p *Project) Team() []employee.Employee {
	out := make([]employee.Employee, len(p.team))
	copy(out, p.team)
	return out
}

// TeamSize returns the number of members.
func (p *Project) TeamSize() int {
	return len(p.team)
}

// TotalSalary sums CalculateSalary over the team.
func (p *Project) TotalSalary() float64 {
	var total float64
	for _, e := range p.team {
		total += e.CalculateSalary()
	}
	return total
}
