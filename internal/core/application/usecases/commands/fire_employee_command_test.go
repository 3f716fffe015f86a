package commands_test

import (
	"testing"

	"orgchart/internal/core/application/usecases/commands"
	"orgchart/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFireEmployeeCommand(t *testing.T) {
	cmd, err := commands.NewFireEmployeeCommand(0, nil, "")

	assert.Nil(t, cmd)
	assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	assert.ErrorIs(t, err, commands.ErrOrganizationIsRequired)
	assert.ErrorIs(t, err, commands.ErrDepartmentNameIsRequired)
}

func TestFireEmployeeCommand(t *testing.T) {
	t.Run("should fire and rehire the same instance on undo", func(t *testing.T) {
		// Arrange
		c := createCompany(t, "Development")
		e := createEmployee(t, 1, 5000)
		require.NoError(t, findDepartment(t, c, "Development").AddEmployee(e))
		cmd, err := commands.NewFireEmployeeCommand(1, c, "Development")
		require.NoError(t, err)

		// Act
		ok, err := cmd.Execute()

		// Assert
		require.NoError(t, err)
		assert.True(t, ok)
		_, found := c.FindEmployeeByID(1)
		assert.False(t, found)

		assert.True(t, cmd.Undo())
		restored, found := c.FindEmployeeByID(1)
		require.True(t, found)
		assert.Same(t, e, restored)
		assert.False(t, cmd.Undo())
	})

	t.Run("should return false on second execute", func(t *testing.T) {
		c := createCompany(t, "Development")
		require.NoError(t, findDepartment(t, c, "Development").AddEmployee(createEmployee(t, 1, 5000)))
		cmd, err := commands.NewFireEmployeeCommand(1, c, "Development")
		require.NoError(t, err)

		first, err := cmd.Execute()
		require.NoError(t, err)
		second, err := cmd.Execute()
		require.NoError(t, err)

		assert.True(t, first)
		assert.False(t, second)
	})

	t.Run("should report missing department", func(t *testing.T) {
		cmd, err := commands.NewFireEmployeeCommand(1, createCompany(t), "Development")
		require.NoError(t, err)

		ok, err := cmd.Execute()

		assert.False(t, ok)
		var notFound *errs.ObjectNotFoundError
		require.ErrorAs(t, err, &notFound)
		assert.Equal(t, "department", notFound.ParamName)
	})

	t.Run("should report employee missing from the department", func(t *testing.T) {
		// the employee exists, but in another department
		c := createCompany(t, "Development", "Sales")
		require.NoError(t, findDepartment(t, c, "Sales").AddEmployee(createEmployee(t, 1, 5000)))
		cmd, err := commands.NewFireEmployeeCommand(1, c, "Development")
		require.NoError(t, err)

		ok, err := cmd.Execute()

		assert.False(t, ok)
		var notFound *errs.ObjectNotFoundError
		require.ErrorAs(t, err, &notFound)
		assert.Equal(t, "employee", notFound.ParamName)
		assert.Equal(t, commands.Pending, cmd.State())
	})

	t.Run("should fail undo when the id was reused meanwhile", func(t *testing.T) {
		c := createCompany(t, "Development")
		require.NoError(t, findDepartment(t, c, "Development").AddEmployee(createEmployee(t, 1, 5000)))
		cmd, err := commands.NewFireEmployeeCommand(1, c, "Development")
		require.NoError(t, err)
		_, err = cmd.Execute()
		require.NoError(t, err)
		require.NoError(t, findDepartment(t, c, "Development").AddEmployee(createEmployee(t, 1, 7000)))

		assert.False(t, cmd.Undo())
		assert.Equal(t, commands.Executed, cmd.State())
	})
}
