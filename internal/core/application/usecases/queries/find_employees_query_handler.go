package queries

import (
	"orgchart/internal/core/domain/model/employee"
	"orgchart/internal/core/domain/specification"
)

// EmployeeSource supplies the employees a search runs over.
// *company.Company satisfies it.
type EmployeeSource interface {
	AllEmployees() []employee.Employee
}

// FindEmployeesQueryHandler runs employee searches against a source.
type FindEmployeesQueryHandler struct {
	source EmployeeSource
}

// NewFindEmployeesQueryHandler creates a handler over source.
func NewFindEmployeesQueryHandler(source EmployeeSource) FindEmployeesQueryHandler {
	return FindEmployeesQueryHandler{source: source}
}

// Handle returns the matching employees in source order.
func (h FindEmployeesQueryHandler) Handle(query FindEmployeesQuery) ([]EmployeeView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	found := specification.NewRepository(h.source.AllEmployees()).FindBySpecification(query.Specification())

	views := make([]EmployeeView, 0, len(found))
	for _, e := range found {
		views = append(views, NewEmployeeView(e))
	}
	return views, nil
}
