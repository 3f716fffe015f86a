package queries_test

import (
	"testing"

	"orgchart/internal/core/application/usecases/queries"
	"orgchart/internal/core/domain/model/company"
	"orgchart/internal/core/domain/model/employee"
	"orgchart/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockEmployeeSource struct {
	mock.Mock
}

func (m *MockEmployeeSource) AllEmployees() []employee.Employee {
	args := m.Called()
	return args.Get(0).([]employee.Employee)
}

type MockStatsSource struct {
	mock.Mock
}

func (m *MockStatsSource) DepartmentStats() map[string]company.DepartmentStats {
	args := m.Called()
	return args.Get(0).(map[string]company.DepartmentStats)
}

func (m *MockStatsSource) TotalMonthlyCost() float64 {
	args := m.Called()
	return args.Get(0).(float64)
}

func ptr(v float64) *float64 {
	return &v
}

func createEmployees(t *testing.T) []employee.Employee {
	t.Helper()
	e1, err := employee.NewPlain(1, "John", "IT", 5000)
	require.NoError(t, err)
	e2, err := employee.NewManager(2, "Alice", "IT", 5000, 1000)
	require.NoError(t, err)
	e3, err := employee.NewDeveloper(3, "Bob", "Development", 5000, []string{"Go"}, employee.Senior)
	require.NoError(t, err)
	return []employee.Employee{e1, e2, e3}
}

func TestNewFindEmployeesQuery(t *testing.T) {
	t.Run("should reject inverted salary range", func(t *testing.T) {
		_, err := queries.NewFindEmployeesQuery(queries.Criteria{MinSalary: ptr(10), MaxSalary: ptr(5)})

		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should reject unknown kind", func(t *testing.T) {
		_, err := queries.NewFindEmployeesQuery(queries.Criteria{Kind: "intern"})

		assert.True(t, errs.IsValidation(err))
	})

	t.Run("zero value is not constructed", func(t *testing.T) {
		var q queries.FindEmployeesQuery

		assert.ErrorIs(t, q.Validate(), queries.ErrFindEmployeesQueryIsNotConstructed)
	})
}

func TestFindEmployeesQueryHandler_Handle(t *testing.T) {
	t.Run("should combine criteria with and", func(t *testing.T) {
		// Arrange
		source := new(MockEmployeeSource)
		source.On("AllEmployees").Return(createEmployees(t)).Once()
		handler := queries.NewFindEmployeesQueryHandler(source)
		query, err := queries.NewFindEmployeesQuery(queries.Criteria{MinSalary: ptr(5500), Department: "IT"})
		require.NoError(t, err)

		// Act
		views, err := handler.Handle(query)

		// Assert
		require.NoError(t, err)
		require.Len(t, views, 1)
		assert.Equal(t, 2, views[0].ID)
		assert.Equal(t, "Manager", views[0].Kind)
		assert.InDelta(t, 6000, views[0].Salary, 1e-9)
		source.AssertExpectations(t)
	})

	t.Run("should return everyone without criteria", func(t *testing.T) {
		source := new(MockEmployeeSource)
		source.On("AllEmployees").Return(createEmployees(t))
		query, err := queries.NewFindEmployeesQuery(queries.Criteria{})
		require.NoError(t, err)

		views, err := queries.NewFindEmployeesQueryHandler(source).Handle(query)

		require.NoError(t, err)
		assert.Len(t, views, 3)
	})

	t.Run("should filter by skills and kind", func(t *testing.T) {
		source := new(MockEmployeeSource)
		source.On("AllEmployees").Return(createEmployees(t))
		query, err := queries.NewFindEmployeesQuery(queries.Criteria{Skills: []string{"Go", " "}, Kind: "developer"})
		require.NoError(t, err)

		views, err := queries.NewFindEmployeesQueryHandler(source).Handle(query)

		require.NoError(t, err)
		require.Len(t, views, 1)
		assert.Equal(t, []string{"Go"}, views[0].Skills)
		assert.InDelta(t, 10000, views[0].Salary, 1e-9)
	})

	t.Run("should refuse unconstructed query without touching source", func(t *testing.T) {
		source := new(MockEmployeeSource)

		_, err := queries.NewFindEmployeesQueryHandler(source).Handle(queries.FindEmployeesQuery{})

		require.Error(t, err)
		source.AssertNotCalled(t, "AllEmployees")
	})
}

func TestGetDepartmentStatsQueryHandler_Handle(t *testing.T) {
	// Arrange
	source := new(MockStatsSource)
	source.On("DepartmentStats").Return(map[string]company.DepartmentStats{
		"Sales": {EmployeeCount: 1, TotalSalary: 4000, EmployeeTypes: map[string]int{"Salesperson": 1}},
		"IT":    {EmployeeCount: 2, TotalSalary: 11000, EmployeeTypes: map[string]int{"Employee": 1, "Manager": 1}},
	})
	source.On("TotalMonthlyCost").Return(15000.0)
	handler := queries.NewGetDepartmentStatsQueryHandler(source)

	// Act
	resp, err := handler.Handle(queries.NewGetDepartmentStatsQuery())

	// Assert
	require.NoError(t, err)
	require.Len(t, resp.Departments, 2)
	assert.Equal(t, "IT", resp.Departments[0].Name)
	assert.Equal(t, "Sales", resp.Departments[1].Name)
	assert.InDelta(t, 15000, resp.TotalMonthlyCost, 1e-9)
	source.AssertExpectations(t)
}
