// Package companyrepo maps the company aggregate to relational tables and back.
//
// A company is stored as a tree: companies own departments and projects,
// departments own employees, employees own their salary adjustments. Position
// columns keep insertion order so a loaded company iterates exactly like the
// one that was saved.
package companyrepo

import (
	"time"

	"orgchart/internal/core/domain/model/company"
	"orgchart/internal/core/domain/model/department"
	"orgchart/internal/core/domain/model/employee"
	"orgchart/internal/core/domain/model/project"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// CompanyDTO is the root row of a snapshot.
type CompanyDTO struct {
	Name        string          `gorm:"type:varchar(255);primaryKey"`
	SavedAt     time.Time       `gorm:"not null"`
	Departments []DepartmentDTO `gorm:"foreignKey:CompanyName;references:Name;constraint:OnDelete:CASCADE"`
	Projects    []ProjectDTO    `gorm:"foreignKey:CompanyName;references:Name;constraint:OnDelete:CASCADE"`
}

// TableName overrides GORM's default "company_dtos".
func (CompanyDTO) TableName() string {
	return "companies"
}

// DepartmentDTO is one department of a company.
type DepartmentDTO struct {
	ID          uuid.UUID     `gorm:"type:uuid;primaryKey"`
	CompanyName string        `gorm:"type:varchar(255);not null;uniqueIndex:idx_department_company_name"`
	Name        string        `gorm:"type:varchar(255);not null;uniqueIndex:idx_department_company_name"`
	Position    int           `gorm:"type:int;not null"`
	Employees   []EmployeeDTO `gorm:"foreignKey:DepartmentID;constraint:OnDelete:CASCADE"`
}

// TableName overrides GORM's default "department_dtos".
func (DepartmentDTO) TableName() string {
	return "departments"
}

// EmployeeDTO flattens every variant into one row. Columns that do not apply
// to Kind hold their zero value.
type EmployeeDTO struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey"`
	DepartmentID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	EmployeeID     int             `gorm:"type:int;not null"`
	Position       int             `gorm:"type:int;not null"`
	Kind           string          `gorm:"type:varchar(32);not null"`
	Name           string          `gorm:"type:varchar(255);not null"`
	Department     string          `gorm:"type:varchar(255);not null"`
	BaseSalary     float64         `gorm:"type:double precision;not null"`
	Bonus          float64         `gorm:"type:double precision"`
	Skills         pq.StringArray  `gorm:"type:text[]"`
	Seniority      string          `gorm:"type:varchar(16)"`
	CommissionRate float64         `gorm:"type:double precision"`
	SalesVolume    float64         `gorm:"type:double precision"`
	Adjustments    []AdjustmentDTO `gorm:"foreignKey:EmployeeRowID;constraint:OnDelete:CASCADE"`
}

// TableName overrides GORM's default "employee_dtos".
func (EmployeeDTO) TableName() string {
	return "employees"
}

// AdjustmentDTO is one step of an employee's salary pipeline.
type AdjustmentDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	EmployeeRowID uuid.UUID `gorm:"type:uuid;not null;index"`
	Position      int       `gorm:"type:int;not null"`
	Kind          int       `gorm:"type:smallint;not null"`
	Value         float64   `gorm:"type:double precision;not null"`
}

// TableName overrides GORM's default "adjustment_dtos".
func (AdjustmentDTO) TableName() string {
	return "salary_adjustments"
}

// ProjectDTO is one project of a company. Members holds employee ids in team order.
type ProjectDTO struct {
	ID          uuid.UUID     `gorm:"type:uuid;primaryKey"`
	CompanyName string        `gorm:"type:varchar(255);not null;uniqueIndex:idx_project_company_id"`
	ProjectID   int           `gorm:"type:int;not null;uniqueIndex:idx_project_company_id"`
	Position    int           `gorm:"type:int;not null"`
	Name        string        `gorm:"type:varchar(255);not null"`
	Description string        `gorm:"type:text"`
	Deadline    time.Time     `gorm:"type:timestamptz"`
	Status      string        `gorm:"type:varchar(16);not null"`
	Members     pq.Int64Array `gorm:"type:bigint[]"`
}

// TableName overrides GORM's default "project_dtos".
func (ProjectDTO) TableName() string {
	return "projects"
}

// Models lists every table for AutoMigrate, parents first.
func Models() []any {
	return []any{&CompanyDTO{}, &DepartmentDTO{}, &EmployeeDTO{}, &AdjustmentDTO{}, &ProjectDTO{}}
}

// fromDomain converts the aggregate to its row tree. Team members that no
// department employs are left out since a snapshot can only restore
// references to employees it also stores.
func fromDomain(c *company.Company, savedAt time.Time) CompanyDTO {
	dto := CompanyDTO{Name: c.Name(), SavedAt: savedAt}

	for i, d := range c.Departments() {
		dto.Departments = append(dto.Departments, departmentFromDomain(d, i))
	}

	for i, p := range c.Projects() {
		members := make(pq.Int64Array, 0, p.TeamSize())
		for _, e := range p.Team() {
			if _, ok := c.FindEmployeeByID(e.ID()); ok {
				members = append(members, int64(e.ID()))
			}
		}
		dto.Projects = append(dto.Projects, ProjectDTO{
			ID:          uuid.New(),
			ProjectID:   p.ID(),
			Position:    i,
			Name:        p.Name(),
			Description: p.Description(),
			Deadline:    p.Deadline(),
			Status:      p.Status().String(),
			Members:     members,
		})
	}

	return dto
}

func departmentFromDomain(d *department.Department, position int) DepartmentDTO {
	dto := DepartmentDTO{ID: uuid.New(), Name: d.Name(), Position: position}
	for i, e := range d.Employees() {
		dto.Employees = append(dto.Employees, employeeFromDomain(e, i))
	}
	return dto
}

func employeeFromDomain(e employee.Employee, position int) EmployeeDTO {
	dto := EmployeeDTO{
		ID:         uuid.New(),
		EmployeeID: e.ID(),
		Position:   position,
		Kind:       e.Kind().String(),
		Name:       e.Name(),
		Department: e.Department(),
		BaseSalary: e.BaseSalary(),
	}

	switch v := e.(type) {
	case *employee.Manager:
		dto.Bonus = v.Bonus()
	case *employee.Developer:
		dto.Skills = v.Skills()
		dto.Seniority = v.Seniority().String()
	case *employee.Salesperson:
		dto.CommissionRate = v.CommissionRate()
		dto.SalesVolume = v.SalesVolume()
	}

	for i, a := range e.Adjustments() {
		dto.Adjustments = append(dto.Adjustments, AdjustmentDTO{
			ID:       uuid.New(),
			Position: i,
			Kind:     int(a.Kind()),
			Value:    a.Value(),
		})
	}
	return dto
}

// toDomain rebuilds the aggregate through the domain constructors so every
// invariant is checked again on load.
func toDomain(dto CompanyDTO) (*company.Company, error) {
	c, err := company.NewCompany(dto.Name)
	if err != nil {
		return nil, err
	}

	for _, dd := range dto.Departments {
		d, err := departmentToDomain(dd)
		if err != nil {
			return nil, err
		}
		if err := c.AddDepartment(d); err != nil {
			return nil, err
		}
	}

	for _, pd := range dto.Projects {
		status, err := project.ParseStatus(pd.Status)
		if err != nil {
			return nil, err
		}
		p, err := project.NewProject(pd.ProjectID, pd.Name, pd.Description, pd.Deadline, status)
		if err != nil {
			return nil, err
		}
		if err := c.AddProject(p); err != nil {
			return nil, err
		}
		for _, id := range pd.Members {
			if err := c.AssignEmployeeToProject(int(id), pd.ProjectID); err != nil {
				return nil, err
			}
		}
	}

	return c, nil
}

func departmentToDomain(dto DepartmentDTO) (*department.Department, error) {
	d, err := department.NewDepartment(dto.Name)
	if err != nil {
		return nil, err
	}
	for _, ed := range dto.Employees {
		e, err := employeeToDomain(ed)
		if err != nil {
			return nil, err
		}
		if err := d.AddEmployee(e); err != nil {
			return nil, err
		}
	}
	return d, nil
}

func employeeToDomain(dto EmployeeDTO) (employee.Employee, error) {
	kind, err := employee.ParseKind(dto.Kind)
	if err != nil {
		return nil, err
	}

	params := employee.Params{
		ID:             dto.EmployeeID,
		Name:           dto.Name,
		Department:     dto.Department,
		BaseSalary:     dto.BaseSalary,
		Bonus:          dto.Bonus,
		Skills:         dto.Skills,
		CommissionRate: dto.CommissionRate,
		SalesVolume:    dto.SalesVolume,
	}
	if kind == employee.KindDeveloper {
		if params.Seniority, err = employee.ParseSeniority(dto.Seniority); err != nil {
			return nil, err
		}
	}
	for _, ad := range dto.Adjustments {
		a, err := employee.NewAdjustment(employee.AdjustmentKind(ad.Kind), ad.Value)
		if err != nil {
			return nil, err
		}
		params.Adjustments = append(params.Adjustments, a)
	}

	return employee.New(kind, params)
}
