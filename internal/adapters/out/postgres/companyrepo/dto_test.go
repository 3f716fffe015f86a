package companyrepo

import (
	"testing"
	"time"

	"orgchart/internal/core/domain/model/company"
	"orgchart/internal/core/domain/model/department"
	"orgchart/internal/core/domain/model/employee"
	"orgchart/internal/core/domain/model/project"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildCompany(t *testing.T) *company.Company {
	t.Helper()

	c, err := company.NewCompany("TechCorp")
	require.NoError(t, err)

	manager, err := employee.NewManager(1, "Alice", "Development", 7000, 2000)
	require.NoError(t, err)
	dev, err := employee.NewDeveloper(2, "Bob", "Development", 5000, []string{"Python", "Java"}, employee.Senior)
	require.NoError(t, err)
	bonus, err := employee.NewBonusAdjustment(500)
	require.NoError(t, err)
	require.NoError(t, dev.AddAdjustment(bonus))
	require.NoError(t, dev.AddAdjustment(employee.NewTrainingAdjustment(100)))
	sales, err := employee.NewSalesperson(3, "Carol", "Sales", 4000, 0.1, 20000)
	require.NoError(t, err)

	development, err := department.NewDepartment("Development")
	require.NoError(t, err)
	require.NoError(t, development.AddEmployee(manager))
	require.NoError(t, development.AddEmployee(dev))
	salesDept, err := department.NewDepartment("Sales")
	require.NoError(t, err)
	require.NoError(t, salesDept.AddEmployee(sales))
	require.NoError(t, c.AddDepartment(development))
	require.NoError(t, c.AddDepartment(salesDept))

	p, err := project.NewProject(10, "AI Platform", "Build it", time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC), project.Active)
	require.NoError(t, err)
	require.NoError(t, c.AddProject(p))
	require.NoError(t, c.AssignEmployeeToProject(2, 10))
	require.NoError(t, c.AssignEmployeeToProject(1, 10))

	return c
}

func TestFromDomain(t *testing.T) {
	savedAt := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	dto := fromDomain(buildCompany(t), savedAt)

	assert.Equal(t, "TechCorp", dto.Name)
	assert.Equal(t, savedAt, dto.SavedAt)
	require.Len(t, dto.Departments, 2)
	assert.Equal(t, "Sales", dto.Departments[1].Name)
	assert.Equal(t, 1, dto.Departments[1].Position)

	dev := dto.Departments[0].Employees[1]
	assert.Equal(t, "Developer", dev.Kind)
	assert.Equal(t, "senior", dev.Seniority)
	assert.Equal(t, []string{"Python", "Java"}, []string(dev.Skills))
	require.Len(t, dev.Adjustments, 2)
	assert.Equal(t, int(employee.TrainingAdjustment), dev.Adjustments[1].Kind)

	require.Len(t, dto.Projects, 1)
	assert.Equal(t, "active", dto.Projects[0].Status)
	assert.Equal(t, []int64{2, 1}, []int64(dto.Projects[0].Members))
}

func TestFromDomain_DropsMembersOutsideCompany(t *testing.T) {
	c := buildCompany(t)
	p, ok := c.FindProject(10)
	require.True(t, ok)
	outsider, err := employee.NewPlain(99, "Ghost", "None", 1000)
	require.NoError(t, err)
	require.NoError(t, p.AddTeamMember(outsider))

	dto := fromDomain(c, time.Now())

	assert.Equal(t, []int64{2, 1}, []int64(dto.Projects[0].Members))
}

func TestToDomain(t *testing.T) {
	t.Run("should rebuild an equivalent company", func(t *testing.T) {
		original := buildCompany(t)

		restored, err := toDomain(fromDomain(original, time.Now()))

		require.NoError(t, err)
		assert.Equal(t, original.Name(), restored.Name())
		assert.InDelta(t, original.TotalMonthlyCost(), restored.TotalMonthlyCost(), 1e-9)
		assert.Equal(t, original.DepartmentStats(), restored.DepartmentStats())

		var ids []int
		for _, e := range restored.AllEmployees() {
			ids = append(ids, e.ID())
		}
		assert.Equal(t, []int{1, 2, 3}, ids)

		p, ok := restored.FindProject(10)
		require.True(t, ok)
		assert.Equal(t, 2, p.TeamSize())
		assert.True(t, p.HasMember(2))
	})

	t.Run("should reject rows that break domain rules", func(t *testing.T) {
		dto := fromDomain(buildCompany(t), time.Now())
		dto.Departments[0].Employees[0].Kind = "Intern"

		c, err := toDomain(dto)

		assert.Nil(t, c)
		require.Error(t, err)
	})

	t.Run("should reject unknown project status", func(t *testing.T) {
		dto := fromDomain(buildCompany(t), time.Now())
		dto.Projects[0].Status = "archived"

		_, err := toDomain(dto)

		require.Error(t, err)
	})
}
