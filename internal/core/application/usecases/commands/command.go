package commands

import (
	"orgchart/internal/core/domain/model/department"
	"orgchart/internal/core/domain/model/employee"
	"orgchart/internal/pkg/errs"
)

var (
	// ErrOrganizationIsRequired is returned when a command is built without an organization.
	ErrOrganizationIsRequired = errs.NewValueIsRequiredError("organization")
	// ErrEmployeeIsRequired is returned when a hire command is built without an employee.
	ErrEmployeeIsRequired = errs.NewValueIsRequiredError("employee")
	// ErrDepartmentNameIsRequired is returned when a command is built without a department name.
	ErrDepartmentNameIsRequired = errs.NewValueIsRequiredError("department_name")
)

// Organization is the container commands operate on.
// *company.Company satisfies it.
type Organization interface {
	// FindDepartment returns the department called name.
	FindDepartment(name string) (*department.Department, bool)
	// FindEmployeeByID searches every department for the employee with id.
	FindEmployeeByID(id int) (employee.Employee, bool)
}

// Command is a reversible operation.
type Command interface {
	// Execute applies the operation. It returns false without error when the
	// command is already executed, and an error when a precondition fails.
	Execute() (bool, error)
	// Undo reverses a previous Execute. It returns false when the command is
	// not executed or the reversal could not be applied.
	Undo() bool
	// Name describes the operation for history listings and logs.
	Name() string
	// State reports whether the command is currently applied.
	State() State
}

// State is the lifecycle position of a command.
type State int

const (
	// Unknown represents a command that was not built by its constructor.
	Unknown State = iota

	// Pending is the state before Execute and after a successful Undo.
	Pending

	// Executed is the state after a successful Execute.
	Executed
)

// String returns "pending", "executed" or "unknown".
func (s State) String() string {
	switch s {
	case Pending:
		return "pending"
	case Executed:
		return "executed"
	case Unknown:
		return "unknown"
	default:
		return "unknown"
	}
}

// toggle holds the executed flag shared by every command.
type toggle struct {
	executed bool
}

func (t *toggle) state() State {
	if t.executed {
		return Executed
	}
	return Pending
}

func departmentNotFound(name string) error {
	return errs.NewObjectNotFoundError("department", name)
}

func employeeNotFound(id int) error {
	return errs.NewObjectNotFoundError("employee", id)
}

func validateOrganization(org Organization) error {
	if org == nil {
		return ErrOrganizationIsRequired
	}
	return nil
}

func validateDepartmentName(name string) error {
	if name == "" {
		return ErrDepartmentNameIsRequired
	}
	return nil
}

func validateEmployeeID(id int) error {
	if id <= 0 {
		return errs.NewValueIsOutOfRangeError("employee_id", id, 1, nil)
	}
	return nil
}
