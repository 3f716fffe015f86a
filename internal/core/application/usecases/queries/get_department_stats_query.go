package queries

import (
	"errors"
	"sort"

	"orgchart/internal/core/domain/model/company"
	"orgchart/internal/pkg/guard"
)

var ErrGetDepartmentStatsQueryIsNotConstructed = errors.New(
	"GetDepartmentStatsQuery must be created via NewGetDepartmentStatsQuery constructor",
)

// GetDepartmentStatsQuery asks for headcount and payroll per department.
type GetDepartmentStatsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetDepartmentStatsQuery creates the parameterless query.
func NewGetDepartmentStatsQuery() GetDepartmentStatsQuery {
	return GetDepartmentStatsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetDepartmentStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetDepartmentStatsQueryIsNotConstructed)
}

// DepartmentStatsView is the read model of one department.
type DepartmentStatsView struct {
	Name          string
	EmployeeCount int
	TotalSalary   float64
	EmployeeTypes map[string]int
}

// DepartmentStatsResponse lists every department sorted by name plus the company payroll.
type DepartmentStatsResponse struct {
	Departments      []DepartmentStatsView
	TotalMonthlyCost float64
}

// StatsSource supplies department statistics. *company.Company satisfies it.
type StatsSource interface {
	DepartmentStats() map[string]company.DepartmentStats
	TotalMonthlyCost() float64
}

// GetDepartmentStatsQueryHandler answers GetDepartmentStatsQuery.
type GetDepartmentStatsQueryHandler struct {
	source StatsSource
}

// NewGetDepartmentStatsQueryHandler creates a handler over source.
func NewGetDepartmentStatsQueryHandler(source StatsSource) GetDepartmentStatsQueryHandler {
	return GetDepartmentStatsQueryHandler{source: source}
}

// Handle collects the statistics.
func (h GetDepartmentStatsQueryHandler) Handle(query GetDepartmentStatsQuery) (DepartmentStatsResponse, error) {
	if err := query.Validate(); err != nil {
		return DepartmentStatsResponse{}, err
	}

	stats := h.source.DepartmentStats()
	views := make([]DepartmentStatsView, 0, len(stats))
	for name, s := range stats {
		views = append(views, DepartmentStatsView{
			Name:          name,
			EmployeeCount: s.EmployeeCount,
			TotalSalary:   s.TotalSalary,
			EmployeeTypes: s.EmployeeTypes,
		})
	}
	sort.Slice(views, func(i, j int) bool { return views[i].Name < views[j].Name })

	return DepartmentStatsResponse{
		Departments:      views,
		TotalMonthlyCost: h.source.TotalMonthlyCost(),
	}, nil
}
