package memory

import (
	"orgchart/internal/core/domain/model/department"
	"orgchart/internal/core/domain/model/employee"
	"orgchart/internal/core/domain/model/project"
	"orgchart/internal/core/ports"
)

var (
	_ ports.UnitOfWork        = (*UnitOfWork)(nil)
	_ ports.UnitOfWorkFactory = (*UnitOfWorkFactory)(nil)
)

// PendingChanges counts the staged registrations per list.
type PendingChanges struct {
	NewEmployees      int
	ModifiedEmployees int
	DeletedEmployees  int

	NewDepartments      int
	ModifiedDepartments int
	DeletedDepartments  int

	NewProjects      int
	ModifiedProjects int
	DeletedProjects  int
}

// Total returns the number of staged registrations.
func (p PendingChanges) Total() int {
	return p.NewEmployees + p.ModifiedEmployees + p.DeletedEmployees +
		p.NewDepartments + p.ModifiedDepartments + p.DeletedDepartments +
		p.NewProjects + p.ModifiedProjects + p.DeletedProjects
}

// UnitOfWorkFactory creates units of work that share one set of repositories.
//
// Example:
//
//	factory := NewUnitOfWorkFactory()
//	uow := factory.Create()
//	uow.RegisterNewEmployee(e)
//	if err := uow.Commit(); err != nil {
//	    return err
//	}
type UnitOfWorkFactory struct {
	employees   *Repository[int, employee.Employee]
	departments *DepartmentRepository
	projects    *ProjectRepository
}

// NewUnitOfWorkFactory creates a factory with empty repositories.
func NewUnitOfWorkFactory() *UnitOfWorkFactory {
	return &UnitOfWorkFactory{
		employees:   NewEmployeeRepository(),
		departments: NewDepartmentRepository(),
		projects:    NewProjectRepository(),
	}
}

// Create returns a unit of work with empty staging over the shared repositories.
func (f *UnitOfWorkFactory) Create() ports.UnitOfWork {
	return newUnitOfWork(f.employees, f.departments, f.projects)
}

// UnitOfWork stages changes to three repositories and applies them on Commit.
//
// Commit order:
//  1. employees: new, modified, deleted
//  2. departments: new, modified, deleted
//  3. projects: new, modified, deleted
//
// Within one list, registration order is kept. A modified department or project
// is written back by deleting its key and adding the instance again.
//
// Commit is not atomic against the repositories: when step N fails, the steps
// before it stay applied. Staging is cleared either way.
type UnitOfWork struct {
	employees   *Repository[int, employee.Employee]
	departments *DepartmentRepository
	projects    *ProjectRepository

	newEmployees      []employee.Employee
	modifiedEmployees []employee.Employee
	deletedEmployees  []employee.Employee

	newDepartments      []*department.Department
	modifiedDepartments []*department.Department
	deletedDepartments  []*department.Department

	newProjects      []*project.Project
	modifiedProjects []*project.Project
	deletedProjects  []*project.Project
}

// NewUnitOfWork creates a unit of work that owns three fresh repositories.
func NewUnitOfWork() *UnitOfWork {
	return newUnitOfWork(NewEmployeeRepository(), NewDepartmentRepository(), NewProjectRepository())
}

func newUnitOfWork(
	employees *Repository[int, employee.Employee],
	departments *DepartmentRepository,
	projects *ProjectRepository,
) *UnitOfWork {
	return &UnitOfWork{
		employees:   employees,
		departments: departments,
		projects:    projects,
	}
}

// EmployeeRepository returns the employee repository the unit commits to.
func (u *UnitOfWork) EmployeeRepository() ports.EmployeeRepository {
	return u.employees
}

// DepartmentRepository returns the department repository the unit commits to.
func (u *UnitOfWork) DepartmentRepository() ports.DepartmentRepository {
	return u.departments
}

// ProjectRepository returns the project repository the unit commits to.
func (u *UnitOfWork) ProjectRepository() ports.ProjectRepository {
	return u.projects
}

// stage appends v unless it is the zero value or already present.
func stage[T comparable](list []T, v T) []T {
	var zero T
	if v == zero {
		return list
	}
	for _, staged := range list {
		if staged == v {
			return list
		}
	}
	return append(list, v)
}

func (u *UnitOfWork) RegisterNewEmployee(e employee.Employee) {
	u.newEmployees = stage(u.newEmployees, e)
}

func (u *UnitOfWork) RegisterModifiedEmployee(e employee.Employee) {
	u.modifiedEmployees = stage(u.modifiedEmployees, e)
}

func (u *UnitOfWork) RegisterDeletedEmployee(e employee.Employee) {
	u.deletedEmployees = stage(u.deletedEmployees, e)
}

func (u *UnitOfWork) RegisterNewDepartment(d *department.Department) {
	u.newDepartments = stage(u.newDepartments, d)
}

func (u *UnitOfWork) RegisterModifiedDepartment(d *department.Department) {
	u.modifiedDepartments = stage(u.modifiedDepartments, d)
}

func (u *UnitOfWork) RegisterDeletedDepartment(d *department.Department) {
	u.deletedDepartments = stage(u.deletedDepartments, d)
}

func (u *UnitOfWork) RegisterNewProject(p *project.Project) {
	u.newProjects = stage(u.newProjects, p)
}

func (u *UnitOfWork) RegisterModifiedProject(p *project.Project) {
	u.modifiedProjects = stage(u.modifiedProjects, p)
}

func (u *UnitOfWork) RegisterDeletedProject(p *project.Project) {
	u.deletedProjects = stage(u.deletedProjects, p)
}

// Pending reports how many registrations are staged in each list.
func (u *UnitOfWork) Pending() PendingChanges {
	return PendingChanges{
		NewEmployees:        len(u.newEmployees),
		ModifiedEmployees:   len(u.modifiedEmployees),
		DeletedEmployees:    len(u.deletedEmployees),
		NewDepartments:      len(u.newDepartments),
		ModifiedDepartments: len(u.modifiedDepartments),
		DeletedDepartments:  len(u.deletedDepartments),
		NewProjects:         len(u.newProjects),
		ModifiedProjects:    len(u.modifiedProjects),
		DeletedProjects:     len(u.deletedProjects),
	}
}

// Commit applies every staged change in the documented order.
// The first repository error is returned as is, after Rollback.
func (u *UnitOfWork) Commit() error {
	defer u.Rollback()

	for _, step := range []func() error{
		u.commitEmployees,
		u.commitDepartments,
		u.commitProjects,
	} {
		if err := step(); err != nil {
			return err
		}
	}
	return nil
}

func (u *UnitOfWork) commitEmployees() error {
	for _, e := range u.newEmployees {
		if err := u.employees.Add(e); err != nil {
			return err
		}
	}
	for _, e := range u.modifiedEmployees {
		if err := u.employees.Update(e); err != nil {
			return err
		}
	}
	for _, e := range u.deletedEmployees {
		if err := u.employees.Delete(e.ID()); err != nil {
			return err
		}
	}
	return nil
}

func (u *UnitOfWork) commitDepartments() error {
	for _, d := range u.newDepartments {
		if err := u.departments.Add(d); err != nil {
			return err
		}
	}
	for _, d := range u.modifiedDepartments {
		if err := u.departments.Delete(d.Name()); err != nil {
			return err
		}
		if err := u.departments.Add(d); err != nil {
			return err
		}
	}
	for _, d := range u.deletedDepartments {
		if err := u.departments.Delete(d.Name()); err != nil {
			return err
		}
	}
	return nil
}

func (u *UnitOfWork) commitProjects() error {
	for _, p := range u.newProjects {
		if err := u.projects.Add(p); err != nil {
			return err
		}
	}
	for _, p := range u.modifiedProjects {
		if err := u.projects.Delete(p.ID()); err != nil {
			return err
		}
		if err := u.projects.Add(p); err != nil {
			return err
		}
	}
	for _, p := range u.deletedProjects {
		if err := u.projects.Delete(p.ID()); err != nil {
			return err
		}
	}
	return nil
}

// Rollback clears all staging lists. The repositories are not touched.
func (u *UnitOfWork) Rollback() {
	u.newEmployees = nil
	u.modifiedEmployees = nil
	u.deletedEmployees = nil
	u.newDepartments = nil
	u.modifiedDepartments = nil
	u.deletedDepartments = nil
	u.newProjects = nil
	u.modifiedProjects = nil
	u.deletedProjects = nil
}
