package commands

import (
	"errors"
	"fmt"

	"orgchart/internal/core/domain/model/employee"
	"orgchart/internal/pkg/errs"
	"orgchart/internal/pkg/guard"
)

// ErrUpdateSalaryCommandIsNotConstructed is returned when using a zero-value UpdateSalaryCommand.
var ErrUpdateSalaryCommandIsNotConstructed = errors.New(
	"UpdateSalaryCommand must be created via NewUpdateSalaryCommand constructor",
)

// UpdateSalaryCommand replaces an employee's base salary.
// The employee is looked up company-wide on Execute. Undo restores the
// salary captured at that moment on the same employee, even if they have
// since left the company.
type UpdateSalaryCommand struct {
	toggle
	employeeID   int
	organization Organization
	employee     employee.Employee
	newSalary    float64
	oldSalary    float64

	guard guard.ConstructorGuard
}

var _ Command = (*UpdateSalaryCommand)(nil)

// NewUpdateSalaryCommand creates a pending salary update.
func NewUpdateSalaryCommand(employeeID int, org Organization, newSalary float64) (*UpdateSalaryCommand, error) {
	var salaryErr error
	if newSalary < 0 {
		salaryErr = errs.NewValueIsOutOfRangeError("new_salary", newSalary, 0, nil)
	}
	if err := errors.Join(
		validateEmployeeID(employeeID),
		validateOrganization(org),
		salaryErr,
	); err != nil {
		return nil, err
	}

	return &UpdateSalaryCommand{
		employeeID:   employeeID,
		organization: org,
		newSalary:    newSalary,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c *UpdateSalaryCommand) Validate() error {
	if c == nil {
		return ErrUpdateSalaryCommandIsNotConstructed
	}
	return c.guard.Validate(ErrUpdateSalaryCommandIsNotConstructed)
}

// Execute sets the new base salary.
// Returns ObjectNotFoundError("employee") if no department has the employee,
// or the entity's validation error.
func (c *UpdateSalaryCommand) Execute() (bool, error) {
	if err := c.Validate(); err != nil {
		return false, err
	}
	if c.executed {
		return false, nil
	}

	e, ok := c.organization.FindEmployeeByID(c.employeeID)
	if !ok {
		return false, employeeNotFound(c.employeeID)
	}
	old := e.BaseSalary()
	if err := e.SetBaseSalary(c.newSalary); err != nil {
		return false, err
	}

	c.employee = e
	c.oldSalary = old
	c.executed = true
	return true, nil
}

// Undo restores the salary captured by Execute.
func (c *UpdateSalaryCommand) Undo() bool {
	if c.Validate() != nil || !c.executed {
		return false
	}

	if err := c.employee.SetBaseSalary(c.oldSalary); err != nil {
		return false
	}

	c.executed = false
	return true
}

// Name describes the update.
func (c *UpdateSalaryCommand) Name() string {
	if c.Validate() != nil {
		return "update salary"
	}
	return fmt.Sprintf("update salary of employee %d", c.employeeID)
}

// State reports whether the new salary is currently applied.
func (c *UpdateSalaryCommand) State() State {
	if c.Validate() != nil {
		return Unknown
	}
	return c.state()
}

// EmployeeID returns the id of the employee whose salary changes.
func (c *UpdateSalaryCommand) EmployeeID() int {
	return c.employeeID
}

// NewSalary returns the salary applied by Execute.
func (c *UpdateSalaryCommand) NewSalary() float64 {
	return c.newSalary
}

// OldSalary returns the salary captured by the last Execute.
func (c *UpdateSalaryCommand) OldSalary() float64 {
	return c.oldSalary
}
