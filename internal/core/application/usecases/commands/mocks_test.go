package commands_test

import (
	"testing"

	"orgchart/internal/core/application/usecases/commands"
	"orgchart/internal/core/domain/model/company"
	"orgchart/internal/core/domain/model/department"
	"orgchart/internal/core/domain/model/employee"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// Mock implementations for testing.
type MockOrganization struct {
	mock.Mock
}

func (m *MockOrganization) FindDepartment(name string) (*department.Department, bool) {
	args := m.Called(name)
	d, _ := args.Get(0).(*department.Department)
	return d, args.Bool(1)
}

func (m *MockOrganization) FindEmployeeByID(id int) (employee.Employee, bool) {
	args := m.Called(id)
	e, _ := args.Get(0).(employee.Employee)
	return e, args.Bool(1)
}

type MockCommand struct {
	mock.Mock
}

func (m *MockCommand) Execute() (bool, error) {
	args := m.Called()
	return args.Bool(0), args.Error(1)
}

func (m *MockCommand) Undo() bool {
	args := m.Called()
	return args.Bool(0)
}

func (m *MockCommand) Name() string {
	return "mock"
}

func (m *MockCommand) State() commands.State {
	return commands.Pending
}

// Test helper functions.
func createCompany(t *testing.T, departments ...string) *company.Company {
	t.Helper()
	c, err := company.NewCompany("TechCorp")
	require.NoError(t, err)
	for _, name := range departments {
		d, err := department.NewDepartment(name)
		require.NoError(t, err)
		require.NoError(t, c.AddDepartment(d))
	}
	return c
}

func createEmployee(t *testing.T, id int, salary float64) employee.Employee {
	t.Helper()
	e, err := employee.NewPlain(id, "John", "Development", salary)
	require.NoError(t, err)
	return e
}

func findDepartment(t *testing.T, c *company.Company, name string) *department.Department {
	t.Helper()
	d, ok := c.FindDepartment(name)
	require.True(t, ok)
	return d
}
