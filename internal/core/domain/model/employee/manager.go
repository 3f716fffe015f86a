package employee

import (
	"errors"

	"orgchart/internal/pkg/errs"
)

// Manager is paid base salary plus a fixed monthly bonus.
type Manager struct {
	profile
	bonus float64
}

var _ Employee = (*Manager)(nil)

// NewManager creates a manager. bonus must not be negative.
//
// Example:
//
//	m, err := NewManager(1, "Alice", "Development", 7000, 2000)
//	// m.CalculateSalary() == 9000
func NewManager(id int, name, department string, baseSalary, bonus float64) (*Manager, error) {
	p, err := newProfile(id, name, department, baseSalary)
	m := &Manager{profile: p}
	if err := errors.Join(err, m.SetBonus(bonus)); err != nil {
		return nil, err
	}
	return m, nil
}

// Bonus returns the monthly bonus.
func (m *Manager) Bonus() float64 {
	return m.bonus
}

// SetBonus replaces the monthly bonus. Negative amounts are rejected.
func (m *Manager) SetBonus(bonus float64) error {
	if bonus < 0 {
		return errs.NewValueIsOutOfRangeError("bonus", bonus, 0, nil)
	}
	m.bonus = bonus
	return nil
}

// Kind returns KindManager.
func (m *Manager) Kind() Kind {
	return KindManager
}

// SalaryComponents returns base and bonus.
func (m *Manager) SalaryComponents() SalaryComponents {
	return SalaryComponents{Base: m.baseSalary, Bonus: m.bonus, Multiplier: 1}
}

// CalculateSalary returns base + bonus after adjustments.
func (m *Manager) CalculateSalary() float64 {
	return m.salary(m.SalaryComponents())
}

// Info describes the manager including the bonus.
func (m *Manager) Info() string {
	return m.info(KindManager, m.CalculateSalary(), "bonus: "+formatAmount(m.bonus))
}

// Validate returns ErrEmployeeIsNotConstructed for a nil or zero value.
func (m *Manager) Validate() error {
	if m == nil {
		return ErrEmployeeIsNotConstructed
	}
	return m.validate()
}
