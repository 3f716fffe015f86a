package department_test

import (
	"testing"

	"orgchart/internal/core/domain/model/department"
	"orgchart/internal/core/domain/model/employee"
	"orgchart/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPlain(t *testing.T, id int, salary float64) *employee.Plain {
	t.Helper()
	e, err := employee.NewPlain(id, "Employee", "IT", salary)
	require.NoError(t, err)
	return e
}

func TestNewDepartment(t *testing.T) {
	t.Run("should create empty department", func(t *testing.T) {
		d, err := department.NewDepartment(" IT ")

		require.NoError(t, err)
		require.NoError(t, d.Validate())
		assert.Equal(t, "IT", d.Name())
		assert.Equal(t, 0, d.Len())
	})

	t.Run("should reject empty name", func(t *testing.T) {
		d, err := department.NewDepartment("")

		assert.Nil(t, d)
		assert.ErrorIs(t, err, department.ErrNameIsRequired)
	})

	t.Run("zero value is not constructed", func(t *testing.T) {
		var d department.Department

		assert.ErrorIs(t, d.Validate(), department.ErrDepartmentIsNotConstructed)
	})
}

func TestDepartment_AddEmployee(t *testing.T) {
	t.Run("should add and find employee", func(t *testing.T) {
		d, err := department.NewDepartment("IT")
		require.NoError(t, err)
		e := newPlain(t, 1, 5000)

		require.NoError(t, d.AddEmployee(e))

		found, ok := d.FindEmployeeByID(1)
		require.True(t, ok)
		assert.Same(t, e, found)
		assert.True(t, d.Contains(1))
	})

	t.Run("should reject duplicate id and keep one member", func(t *testing.T) {
		d, err := department.NewDepartment("IT")
		require.NoError(t, err)
		require.NoError(t, d.AddEmployee(newPlain(t, 1, 5000)))

		err = d.AddEmployee(newPlain(t, 1, 6000))

		assert.True(t, errs.IsAlreadyExists(err))
		assert.Equal(t, 1, d.Len())
	})

	t.Run("should reject nil and unconstructed employees", func(t *testing.T) {
		d, err := department.NewDepartment("IT")
		require.NoError(t, err)

		assert.ErrorIs(t, d.AddEmployee(nil), department.ErrEmployeeIsRequired)
		assert.ErrorIs(t, d.AddEmployee(&employee.Plain{}), employee.ErrEmployeeIsNotConstructed)
	})
}

func TestDepartment_RemoveEmployee(t *testing.T) {
	d, err := department.NewDepartment("IT")
	require.NoError(t, err)
	require.NoError(t, d.AddEmployee(newPlain(t, 1, 5000)))
	require.NoError(t, d.AddEmployee(newPlain(t, 2, 6000)))
	require.NoError(t, d.AddEmployee(newPlain(t, 3, 7000)))

	require.NoError(t, d.RemoveEmployee(2))
	err = d.RemoveEmployee(2)

	assert.True(t, errs.IsNotFound(err))
	ids := make([]int, 0, d.Len())
	for _, e := range d.Employees() {
		ids = append(ids, e.ID())
	}
	assert.Equal(t, []int{1, 3}, ids)
}

func TestDepartment_Aggregates(t *testing.T) {
	d, err := department.NewDepartment("IT")
	require.NoError(t, err)
	m, err := employee.NewManager(10, "Alice", "IT", 7000, 2000)
	require.NoError(t, err)
	require.NoError(t, d.AddEmployee(m))
	require.NoError(t, d.AddEmployee(newPlain(t, 1, 5000)))
	require.NoError(t, d.AddEmployee(newPlain(t, 2, 6000)))

	assert.InDelta(t, 20000, d.TotalSalary(), 1e-9)
	assert.Equal(t, map[string]int{"Manager": 1, "Employee": 2}, d.CountByKind())
}
