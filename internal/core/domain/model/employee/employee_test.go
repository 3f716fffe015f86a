package employee_test

import (
	"errors"
	"testing"

	"orgchart/internal/core/domain/model/employee"
	"orgchart/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPlain(t *testing.T) {
	t.Run("should create employee with valid parameters", func(t *testing.T) {
		e, err := employee.NewPlain(1, "John", "IT", 5000)

		require.NoError(t, err)
		require.NoError(t, e.Validate())
		assert.Equal(t, 1, e.ID())
		assert.Equal(t, "John", e.Name())
		assert.Equal(t, "IT", e.Department())
		assert.InDelta(t, 5000, e.BaseSalary(), 1e-9)
		assert.InDelta(t, 5000, e.CalculateSalary(), 1e-9)
		assert.Equal(t, employee.KindPlain, e.Kind())
	})

	t.Run("should return validation error for invalid fields", func(t *testing.T) {
		testCases := []struct {
			name       string
			id         int
			empName    string
			department string
			salary     float64
			wantParam  string
		}{
			{"zero id", 0, "John", "IT", 5000, "id"},
			{"negative id", -3, "John", "IT", 5000, "id"},
			{"empty name", 1, "  ", "IT", 5000, "name"},
			{"empty department", 1, "John", "", 5000, "department"},
			{"negative salary", 1, "John", "IT", -1, "base_salary"},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				e, err := employee.NewPlain(tc.id, tc.empName, tc.department, tc.salary)

				require.Error(t, err)
				assert.Nil(t, e)
				assert.True(t, errs.IsValidation(err))
				assert.Contains(t, err.Error(), tc.wantParam)
			})
		}
	})

	t.Run("should join every validation failure", func(t *testing.T) {
		_, err := employee.NewPlain(0, "", "", -1)

		require.Error(t, err)
		assert.ErrorIs(t, err, employee.ErrNameIsRequired)
		assert.ErrorIs(t, err, employee.ErrDepartmentIsRequired)
		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}

func TestEmployee_SetBaseSalary(t *testing.T) {
	t.Run("should replace base salary", func(t *testing.T) {
		e, err := employee.NewPlain(1, "John", "IT", 5000)
		require.NoError(t, err)

		require.NoError(t, e.SetBaseSalary(9000))

		assert.InDelta(t, 9000, e.BaseSalary(), 1e-9)
	})

	t.Run("should reject negative salary and keep the old one", func(t *testing.T) {
		e, err := employee.NewPlain(1, "John", "IT", 5000)
		require.NoError(t, err)

		err = e.SetBaseSalary(-10)

		var rangeErr *errs.ValueIsOutOfRangeError
		require.ErrorAs(t, err, &rangeErr)
		assert.Equal(t, "base_salary", rangeErr.ParamName)
		assert.InDelta(t, 5000, e.BaseSalary(), 1e-9)
	})
}

func TestManager(t *testing.T) {
	t.Run("should add bonus to base salary", func(t *testing.T) {
		m, err := employee.NewManager(1, "Alice", "Development", 7000, 2000)
		require.NoError(t, err)

		assert.InDelta(t, 9000, m.CalculateSalary(), 1e-9)
		assert.Equal(t, employee.SalaryComponents{Base: 7000, Bonus: 2000, Multiplier: 1}, m.SalaryComponents())
		assert.Equal(t, employee.KindManager, m.Kind())
	})

	t.Run("should reject negative bonus", func(t *testing.T) {
		m, err := employee.NewManager(1, "Alice", "Development", 7000, -1)

		require.Error(t, err)
		assert.Nil(t, m)
	})

	t.Run("should update bonus", func(t *testing.T) {
		m, err := employee.NewManager(1, "Alice", "Development", 7000, 2000)
		require.NoError(t, err)

		require.NoError(t, m.SetBonus(500))
		require.Error(t, m.SetBonus(-5))

		assert.InDelta(t, 500, m.Bonus(), 1e-9)
		assert.InDelta(t, 7500, m.CalculateSalary(), 1e-9)
	})
}

func TestDeveloper(t *testing.T) {
	t.Run("should scale base salary by seniority", func(t *testing.T) {
		testCases := []struct {
			level employee.Seniority
			want  float64
		}{
			{employee.Junior, 5000},
			{employee.Middle, 7500},
			{employee.Senior, 10000},
		}

		for _, tc := range testCases {
			t.Run(tc.level.String(), func(t *testing.T) {
				d, err := employee.NewDeveloper(2, "Bob", "Development", 5000, nil, tc.level)
				require.NoError(t, err)

				assert.InDelta(t, tc.want, d.CalculateSalary(), 1e-9)
			})
		}
	})

	t.Run("should keep skills in order without duplicates", func(t *testing.T) {
		d, err := employee.NewDeveloper(2, "Bob", "Development", 5000, []string{"Python", "Java", "Python"}, employee.Senior)
		require.NoError(t, err)

		require.NoError(t, d.AddSkill("Go"))
		require.NoError(t, d.AddSkill("Java"))

		assert.Equal(t, []string{"Python", "Java", "Go"}, d.Skills())
		assert.True(t, d.HasSkill("Go"))
		assert.False(t, d.HasSkill("Rust"))
	})

	t.Run("should return a copy of the skills", func(t *testing.T) {
		d, err := employee.NewDeveloper(2, "Bob", "Development", 5000, []string{"Python"}, employee.Junior)
		require.NoError(t, err)

		skills := d.Skills()
		skills[0] = "COBOL"

		assert.Equal(t, []string{"Python"}, d.Skills())
	})

	t.Run("should reject unknown seniority and empty skills", func(t *testing.T) {
		d, err := employee.NewDeveloper(2, "Bob", "Development", 5000, []string{""}, employee.SeniorityUnknown)

		require.Error(t, err)
		assert.Nil(t, d)
		assert.ErrorIs(t, err, employee.ErrSkillIsRequired)
		assert.Contains(t, err.Error(), "seniority")
	})
}

func TestSalesperson(t *testing.T) {
	t.Run("should add commission on sales volume", func(t *testing.T) {
		s, err := employee.NewSalesperson(4, "Dave", "Sales", 4000, 0.15, 50000)
		require.NoError(t, err)

		assert.InDelta(t, 11500, s.CalculateSalary(), 1e-9)
		assert.InDelta(t, 7500, s.SalaryComponents().Commission, 1e-9)
	})

	t.Run("should reject commission rate outside [0, 1]", func(t *testing.T) {
		for _, rate := range []float64{-0.1, 1.5} {
			s, err := employee.NewSalesperson(4, "Dave", "Sales", 4000, rate, 0)

			require.Error(t, err)
			assert.Nil(t, s)
			assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		}
	})

	t.Run("should update sales and refuse to go negative", func(t *testing.T) {
		s, err := employee.NewSalesperson(4, "Dave", "Sales", 4000, 0.1, 1000)
		require.NoError(t, err)

		require.NoError(t, s.UpdateSales(500))
		require.Error(t, s.UpdateSales(-2000))

		assert.InDelta(t, 1500, s.SalesVolume(), 1e-9)
	})
}

func TestAdjustments(t *testing.T) {
	t.Run("should apply adjustments in registration order", func(t *testing.T) {
		e, err := employee.NewPlain(1, "John", "IT", 1000)
		require.NoError(t, err)
		bonus, err := employee.NewBonusAdjustment(500)
		require.NoError(t, err)
		perf, err := employee.NewPerformanceAdjustment(1.1)
		require.NoError(t, err)

		require.NoError(t, e.AddAdjustment(bonus))
		require.NoError(t, e.AddAdjustment(perf))
		require.NoError(t, e.AddAdjustment(employee.NewTrainingAdjustment(100)))

		// (1000 + 500) * 1.1 + 100
		assert.InDelta(t, 1750, e.CalculateSalary(), 1e-9)
		assert.Len(t, e.Adjustments(), 3)
	})

	t.Run("should clamp negative training allowance", func(t *testing.T) {
		a := employee.NewTrainingAdjustment(-50)

		assert.InDelta(t, 0, a.Value(), 1e-9)
	})

	t.Run("should reject negative bonus and multiplier", func(t *testing.T) {
		_, err := employee.NewBonusAdjustment(-1)
		require.Error(t, err)

		_, err = employee.NewPerformanceAdjustment(-1)
		require.Error(t, err)
	})

	t.Run("should reject zero-value adjustment", func(t *testing.T) {
		e, err := employee.NewPlain(1, "John", "IT", 1000)
		require.NoError(t, err)

		require.Error(t, e.AddAdjustment(employee.Adjustment{}))
	})

	t.Run("should rebuild stored adjustments", func(t *testing.T) {
		a, err := employee.NewAdjustment(employee.PerformanceAdjustment, 1.2)

		require.NoError(t, err)
		assert.Equal(t, employee.PerformanceAdjustment, a.Kind())
		assert.InDelta(t, 1200, a.Apply(1000), 1e-9)

		_, err = employee.NewAdjustment(employee.UnknownAdjustment, 1)
		require.Error(t, err)
	})
}

func TestEmployee_Info(t *testing.T) {
	d, err := employee.NewDeveloper(2, "Bob", "Development", 5000, []string{"Python", "Java"}, employee.Senior)
	require.NoError(t, err)

	info := d.Info()

	assert.Equal(t,
		"Developer [id: 2, name: Bob, department: Development, base salary: 5000, "+
			"seniority: senior, skills: Python, Java, total salary: 10000]",
		info,
	)
}

func TestEmployee_Validate(t *testing.T) {
	var nilPlain *employee.Plain
	var zeroManager employee.Manager

	assert.Equal(t, employee.ErrEmployeeIsNotConstructed, nilPlain.Validate())
	assert.True(t, errors.Is(zeroManager.Validate(), employee.ErrEmployeeIsNotConstructed))
}

func TestNew(t *testing.T) {
	t.Run("should build every kind", func(t *testing.T) {
		params := employee.Params{
			ID: 7, Name: "Eve", Department: "Sales", BaseSalary: 3000,
			Bonus: 100, Skills: []string{"Go"}, Seniority: employee.Middle,
			CommissionRate: 0.1, SalesVolume: 1000,
		}

		for _, kind := range []employee.Kind{
			employee.KindPlain, employee.KindManager, employee.KindDeveloper, employee.KindSalesperson,
		} {
			e, err := employee.New(kind, params)

			require.NoError(t, err)
			assert.Equal(t, kind, e.Kind())
		}
	})

	t.Run("should return nil interface on failure", func(t *testing.T) {
		e, err := employee.New(employee.KindManager, employee.Params{ID: 1, Name: "X", Department: "Y", Bonus: -1})

		require.Error(t, err)
		assert.Nil(t, e)
	})

	t.Run("should reject unknown kind", func(t *testing.T) {
		e, err := employee.New(employee.KindUnknown, employee.Params{ID: 1, Name: "X", Department: "Y"})

		require.Error(t, err)
		assert.Nil(t, e)
	})

	t.Run("should apply adjustments from params", func(t *testing.T) {
		bonus, err := employee.NewBonusAdjustment(250)
		require.NoError(t, err)

		e, err := employee.New(employee.KindPlain, employee.Params{
			ID: 1, Name: "X", Department: "Y", BaseSalary: 1000,
			Adjustments: []employee.Adjustment{bonus},
		})

		require.NoError(t, err)
		assert.InDelta(t, 1250, e.CalculateSalary(), 1e-9)
	})
}

func TestParseKindAndSeniority(t *testing.T) {
	k, err := employee.ParseKind("Developer")
	require.NoError(t, err)
	assert.Equal(t, employee.KindDeveloper, k)

	k, err = employee.ParseKind("plain")
	require.NoError(t, err)
	assert.Equal(t, employee.KindPlain, k)

	_, err = employee.ParseKind("intern")
	require.Error(t, err)

	s, err := employee.ParseSeniority("SENIOR")
	require.NoError(t, err)
	assert.Equal(t, employee.Senior, s)

	_, err = employee.ParseSeniority("lead")
	assert.True(t, errs.IsValidation(err))
}
