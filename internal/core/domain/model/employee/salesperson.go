package employee

import (
	"errors"

	"orgchart/internal/pkg/errs"
)

// Salesperson is paid base salary plus commission on sales volume.
//
// Business rules:
//   - Commission rate is a fraction in [0, 1]
//   - Sales volume never goes negative
type Salesperson struct {
	profile
	commissionRate float64
	salesVolume    float64
}

var _ Employee = (*Salesperson)(nil)

// NewSalesperson creates a salesperson.
//
// Example:
//
//	s, err := NewSalesperson(4, "Dave", "Sales", 4000, 0.15, 50000)
//	// s.CalculateSalary() == 11500
func NewSalesperson(
	id int,
	name, department string,
	baseSalary, commissionRate, salesVolume float64,
) (*Salesperson, error) {
	p, err := newProfile(id, name, department, baseSalary)
	s := &Salesperson{profile: p}
	if err := errors.Join(err, s.SetCommissionRate(commissionRate), s.setSalesVolume(salesVolume)); err != nil {
		return nil, err
	}
	return s, nil
}

// CommissionRate returns the commission fraction.
func (s *Salesperson) CommissionRate() float64 {
	return s.commissionRate
}

// SetCommissionRate replaces the commission fraction. rate must be in [0, 1].
func (s *Salesperson) SetCommissionRate(rate float64) error {
	if rate < 0 || rate > 1 {
		return errs.NewValueIsOutOfRangeError("commission_rate", rate, 0, 1)
	}
	s.commissionRate = rate
	return nil
}

// SalesVolume returns the accumulated sales volume.
func (s *Salesperson) SalesVolume() float64 {
	return s.salesVolume
}

func (s *Salesperson) setSalesVolume(volume float64) error {
	if volume < 0 {
		return errs.NewValueIsOutOfRangeError("sales_volume", volume, 0, nil)
	}
	s.salesVolume = volume
	return nil
}

// UpdateSales adds delta to the sales volume. A delta that would make the
// volume negative is rejected and the volume is left unchanged.
func (s *Salesperson) UpdateSales(delta float64) error {
	return s.setSalesVolume(s.salesVolume + delta)
}

// Commission returns salesVolume * commissionRate.
func (s *Salesperson) Commission() float64 {
	return s.salesVolume * s.commissionRate
}

// Kind returns KindSalesperson.
func (s *Salesperson) Kind() Kind {
	return KindSalesperson
}

// SalaryComponents returns base and commission.
func (s *Salesperson) SalaryComponents() SalaryComponents {
	return SalaryComponents{Base: s.baseSalary, Multiplier: 1, Commission: s.Commission()}
}

// CalculateSalary returns base + commission after adjustments.
func (s *Salesperson) CalculateSalary() float64 {
	return s.salary(s.SalaryComponents())
}

// Info describes the salesperson including rate and volume.
func (s *Salesperson) Info() string {
	return s.info(KindSalesperson, s.CalculateSalary(),
		"commission rate: "+formatAmount(s.commissionRate),
		"sales volume: "+formatAmount(s.salesVolume),
	)
}

// Validate returns ErrEmployeeIsNotConstructed for a nil or zero value.
func (s *Salesperson) Validate() error {
	if s == nil {
		return ErrEmployeeIsNotConstructed
	}
	return s.validate()
}
