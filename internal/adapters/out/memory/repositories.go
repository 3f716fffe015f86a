package memory

import (
	"orgchart/internal/core/domain/model/department"
	"orgchart/internal/core/domain/model/employee"
	"orgchart/internal/core/domain/model/project"
	"orgchart/internal/core/ports"
	"orgchart/internal/pkg/errs"
)

var (
	_ ports.EmployeeRepository   = (*Repository[int, employee.Employee])(nil)
	_ ports.DepartmentRepository = (*DepartmentRepository)(nil)
	_ ports.ProjectRepository    = (*ProjectRepository)(nil)
)

// NewEmployeeRepository creates an empty employee repository keyed by id.
func NewEmployeeRepository() *Repository[int, employee.Employee] {
	return NewRepository("employee",
		func(e employee.Employee) int { return e.ID() },
		func(e employee.Employee) error {
			if e == nil {
				return errs.NewValueIsRequiredError("employee")
			}
			return e.Validate()
		},
	)
}

// DepartmentRepository stores departments keyed by name.
type DepartmentRepository struct {
	items *Repository[string, *department.Department]
}

// NewDepartmentRepository creates an empty department repository.
func NewDepartmentRepository() *DepartmentRepository {
	return &DepartmentRepository{
		items: NewRepository("department",
			func(d *department.Department) string { return d.Name() },
			func(d *department.Department) error { return d.Validate() },
		),
	}
}

func (r *DepartmentRepository) Add(d *department.Department) error { return r.items.Add(d) }

func (r *DepartmentRepository) Get(name string) (*department.Department, bool) {
	return r.items.Get(name)
}

func (r *DepartmentRepository) GetAll() []*department.Department { return r.items.GetAll() }

func (r *DepartmentRepository) Delete(name string) error { return r.items.Delete(name) }

func (r *DepartmentRepository) Len() int { return r.items.Len() }

// ProjectRepository stores projects keyed by id.
type ProjectRepository struct {
	items *Repository[int, *project.Project]
}

// NewProjectRepository creates an empty project repository.
func NewProjectRepository() *ProjectRepository {
	return &ProjectRepository{
		items: NewRepository("project",
			func(p *project.Project) int { return p.ID() },
			func(p *project.Project) error { return p.Validate() },
		),
	}
}

func (r *ProjectRepository) Add(p *project.Project) error { return r.items.Add(p) }

func (r *ProjectRepository) Get(id int) (*project.Project, bool) { return r.items.Get(id) }

func (r *ProjectRepository) GetAll() []*project.Project { return r.items.GetAll() }

func (r *ProjectRepository) Delete(id int) error { return r.items.Delete(id) }

func (r *ProjectRepository) Len() int { return r.items.Len() }
