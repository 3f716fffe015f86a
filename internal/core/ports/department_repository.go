package ports

import (
	"orgchart/internal/core/domain/model/department"
)

// DepartmentRepository is a keyed store of departments, keyed by name.
// Departments are replaced by delete and re-add; there is no Update.
type DepartmentRepository interface {
	Add(d *department.Department) error
	Get(name string) (*department.Department, bool)
	GetAll() []*department.Department
	Delete(name string) error
	Len() int
}
