package commands

import (
	"errors"
	"fmt"

	"orgchart/internal/core/domain/model/employee"
	"orgchart/internal/pkg/guard"
)

// ErrFireEmployeeCommandIsNotConstructed is returned when using a zero-value FireEmployeeCommand.
var ErrFireEmployeeCommandIsNotConstructed = errors.New(
	"FireEmployeeCommand must be created via NewFireEmployeeCommand constructor",
)

// FireEmployeeCommand removes an employee from a department.
//
// Execute looks up the department, then the employee inside that department,
// keeps a reference to the employee and removes it. Undo adds the kept
// employee back to the same department.
type FireEmployeeCommand struct {
	toggle
	employeeID     int
	organization   Organization
	departmentName string
	fired          employee.Employee

	guard guard.ConstructorGuard
}

var _ Command = (*FireEmployeeCommand)(nil)

// NewFireEmployeeCommand creates a pending fire command.
func NewFireEmployeeCommand(employeeID int, org Organization, departmentName string) (*FireEmployeeCommand, error) {
	if err := errors.Join(
		validateEmployeeID(employeeID),
		validateOrganization(org),
		validateDepartmentName(departmentName),
	); err != nil {
		return nil, err
	}

	return &FireEmployeeCommand{
		employeeID:     employeeID,
		organization:   org,
		departmentName: departmentName,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c *FireEmployeeCommand) Validate() error {
	if c == nil {
		return ErrFireEmployeeCommandIsNotConstructed
	}
	return c.guard.Validate(ErrFireEmployeeCommandIsNotConstructed)
}

// Execute removes the employee from the department.
//
// Returns:
//   - ObjectNotFoundError("department") if the department does not exist
//   - ObjectNotFoundError("employee") if the employee is not in that department
func (c *FireEmployeeCommand) Execute() (bool, error) {
	if err := c.Validate(); err != nil {
		return false, err
	}
	if c.executed {
		return false, nil
	}

	dept, ok := c.organization.FindDepartment(c.departmentName)
	if !ok {
		return false, departmentNotFound(c.departmentName)
	}
	e, ok := dept.FindEmployeeByID(c.employeeID)
	if !ok {
		return false, employeeNotFound(c.employeeID)
	}
	if err := dept.RemoveEmployee(c.employeeID); err != nil {
		return false, err
	}

	c.fired = e
	c.executed = true
	return true, nil
}

// Undo re-adds the fired employee.
func (c *FireEmployeeCommand) Undo() bool {
	if c.Validate() != nil || !c.executed || c.fired == nil {
		return false
	}

	dept, ok := c.organization.FindDepartment(c.departmentName)
	if !ok {
		return false
	}
	if err := dept.AddEmployee(c.fired); err != nil {
		return false
	}

	c.executed = false
	return true
}

// Name describes the dismissal.
func (c *FireEmployeeCommand) Name() string {
	if c.Validate() != nil {
		return "fire employee"
	}
	return fmt.Sprintf("fire employee %d from %s", c.employeeID, c.departmentName)
}

// State reports whether the employee is currently fired by this command.
func (c *FireEmployeeCommand) State() State {
	if c.Validate() != nil {
		return Unknown
	}
	return c.state()
}

// EmployeeID returns the id of the employee to fire.
func (c *FireEmployeeCommand) EmployeeID() int {
	return c.employeeID
}

// DepartmentName returns the department the employee is fired from.
func (c *FireEmployeeCommand) DepartmentName() string {
	return c.departmentName
}
