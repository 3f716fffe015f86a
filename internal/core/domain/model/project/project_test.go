package project_test

import (
	"testing"
	"time"

	"orgchart/internal/core/domain/model/employee"
	"orgchart/internal/core/domain/model/project"
	"orgchart/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var deadline = time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)

func createProject(t *testing.T) *project.Project {
	t.Helper()
	p, err := project.NewProject(1, "AI Platform", "Build the AI system", deadline, project.Planning)
	require.NoError(t, err)
	return p
}

func TestNewProject(t *testing.T) {
	t.Run("should create project with valid parameters", func(t *testing.T) {
		p := createProject(t)

		require.NoError(t, p.Validate())
		assert.Equal(t, 1, p.ID())
		assert.Equal(t, "AI Platform", p.Name())
		assert.Equal(t, "Build the AI system", p.Description())
		assert.Equal(t, deadline, p.Deadline())
		assert.Equal(t, project.Planning, p.Status())
		assert.Equal(t, 0, p.TeamSize())
	})

	t.Run("should reject invalid status", func(t *testing.T) {
		p, err := project.NewProject(1, "Test", "", deadline, project.Unknown)

		assert.Nil(t, p)
		assert.ErrorIs(t, err, errs.ErrStatusIsInvalid)
		assert.True(t, errs.IsValidation(err))
	})

	t.Run("should reject invalid id and name", func(t *testing.T) {
		p, err := project.NewProject(0, "", "", deadline, project.Active)

		assert.Nil(t, p)
		assert.ErrorIs(t, err, project.ErrNameIsRequired)
		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}

func TestParseStatus(t *testing.T) {
	for _, s := range project.AllowedStatuses() {
		status, err := project.ParseStatus(s)

		require.NoError(t, err)
		assert.Equal(t, s, status.String())
	}

	_, err := project.ParseStatus("invalid")

	var statusErr *errs.StatusIsInvalidError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, "invalid", statusErr.Value)
	assert.Equal(t, project.AllowedStatuses(), statusErr.Allowed)
}

func TestProject_ChangeStatus(t *testing.T) {
	p := createProject(t)

	require.NoError(t, p.ChangeStatus(project.Completed))
	require.Error(t, p.ChangeStatus(project.Status(42)))

	assert.Equal(t, project.Completed, p.Status())
}

func TestProject_Team(t *testing.T) {
	t.Run("should add and remove members", func(t *testing.T) {
		p := createProject(t)
		dev, err := employee.NewDeveloper(1, "John", "DEV", 5000, []string{"Python"}, employee.Senior)
		require.NoError(t, err)

		require.NoError(t, p.AddTeamMember(dev))
		assert.Equal(t, 1, p.TeamSize())
		assert.True(t, p.HasMember(1))

		require.NoError(t, p.RemoveTeamMember(1))
		assert.Empty(t, p.Team())
		assert.True(t, errs.IsNotFound(p.RemoveTeamMember(1)))
	})

	t.Run("should reject duplicate member", func(t *testing.T) {
		p := createProject(t)
		e, err := employee.NewPlain(1, "John", "DEV", 5000)
		require.NoError(t, err)
		require.NoError(t, p.AddTeamMember(e))

		assert.True(t, errs.IsAlreadyExists(p.AddTeamMember(e)))
		assert.ErrorIs(t, p.AddTeamMember(nil), project.ErrMemberIsRequired)
	})

	t.Run("should sum team salaries", func(t *testing.T) {
		p := createProject(t)
		m, err := employee.NewManager(1, "Alice", "DEV", 7000, 2000)
		require.NoError(t, err)
		d, err := employee.NewDeveloper(2, "Bob", "DEV", 5000, []string{"Python"}, employee.Senior)
		require.NoError(t, err)
		require.NoError(t, p.AddTeamMember(m))
		require.NoError(t, p.AddTeamMember(d))

		assert.InDelta(t, m.CalculateSalary()+d.CalculateSalary(), p.TotalSalary(), 1e-9)
	})
}
