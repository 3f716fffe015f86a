package ports

import (
	"orgchart/internal/core/domain/model/department"
	"orgchart/internal/core/domain/model/employee"
	"orgchart/internal/core/domain/model/project"
)

// UnitOfWorkFactory creates new UnitOfWork instances.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork stages entity changes and applies them to its repositories as a
// group.
//
// Registering the same instance twice in one list has no effect. Commit applies
// employees, then departments, then projects; within each kind new entities are
// added, then modified ones are written back, then deleted ones are removed.
// Staging is empty again after every Commit and Rollback, successful or not.
type UnitOfWork interface {
	RegisterNewEmployee(e employee.Employee)
	RegisterModifiedEmployee(e employee.Employee)
	RegisterDeletedEmployee(e employee.Employee)

	RegisterNewDepartment(d *department.Department)
	RegisterModifiedDepartment(d *department.Department)
	RegisterDeletedDepartment(d *department.Department)

	RegisterNewProject(p *project.Project)
	RegisterModifiedProject(p *project.Project)
	RegisterDeletedProject(p *project.Project)

	// Commit applies every staged change. On the first failure it rolls back
	// the staging and returns that error unchanged. Changes already applied by
	// the failed commit stay in the repositories.
	Commit() error

	// Rollback discards all staged changes without touching the repositories.
	Rollback()

	EmployeeRepository() EmployeeRepository
	DepartmentRepository() DepartmentRepository
	ProjectRepository() ProjectRepository
}
