package commands

import (
	"errors"
	"fmt"

	"orgchart/internal/core/domain/model/employee"
	"orgchart/internal/pkg/guard"
)

// ErrHireEmployeeCommandIsNotConstructed is returned when using a zero-value HireEmployeeCommand.
var ErrHireEmployeeCommandIsNotConstructed = errors.New(
	"HireEmployeeCommand must be created via NewHireEmployeeCommand constructor",
)

// HireEmployeeCommand adds an employee to a department.
//
// Execute:
//   - ObjectNotFoundError("department") if the department does not exist
//   - the department's error (duplicate id) is returned unwrapped
//
// Undo removes the employee by id from the same department.
type HireEmployeeCommand struct {
	toggle
	employee       employee.Employee
	organization   Organization
	departmentName string

	guard guard.ConstructorGuard
}

var _ Command = (*HireEmployeeCommand)(nil)

// NewHireEmployeeCommand creates a pending hire command.
func NewHireEmployeeCommand(e employee.Employee, org Organization, departmentName string) (*HireEmployeeCommand, error) {
	var employeeErr error
	if e == nil {
		employeeErr = ErrEmployeeIsRequired
	}
	if err := errors.Join(
		employeeErr,
		validateOrganization(org),
		validateDepartmentName(departmentName),
	); err != nil {
		return nil, err
	}

	return &HireEmployeeCommand{
		employee:       e,
		organization:   org,
		departmentName: departmentName,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c *HireEmployeeCommand) Validate() error {
	if c == nil {
		return ErrHireEmployeeCommandIsNotConstructed
	}
	return c.guard.Validate(ErrHireEmployeeCommandIsNotConstructed)
}

// Execute adds the employee to the department.
func (c *HireEmployeeCommand) Execute() (bool, error) {
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
	if err := dept.AddEmployee(c.employee); err != nil {
		return false, err
	}

	c.executed = true
	return true, nil
}

// Undo removes the hired employee again.
func (c *HireEmployeeCommand) Undo() bool {
	if c.Validate() != nil || !c.executed {
		return false
	}

	dept, ok := c.organization.FindDepartment(c.departmentName)
	if !ok {
		return false
	}
	if err := dept.RemoveEmployee(c.employee.ID()); err != nil {
		return false
	}

	c.executed = false
	return true
}

// Name describes the hire.
func (c *HireEmployeeCommand) Name() string {
	if c.Validate() != nil {
		return "hire employee"
	}
	return fmt.Sprintf("hire employee %d into %s", c.employee.ID(), c.departmentName)
}

// State reports whether the employee is currently hired by this command.
func (c *HireEmployeeCommand) State() State {
	if c.Validate() != nil {
		return Unknown
	}
	return c.state()
}

// Employee returns the employee being hired.
func (c *HireEmployeeCommand) Employee() employee.Employee {
	return c.employee
}

// DepartmentName returns the target department.
func (c *HireEmployeeCommand) DepartmentName() string {
	return c.departmentName
}
