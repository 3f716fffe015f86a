package employee

import (
	"fmt"
	"strconv"

	"orgchart/internal/pkg/errs"
)

// SalaryComponents is the structured breakdown every variant reports.
// Gross = Base*Multiplier + Bonus + Commission. A variant that has no notion
// of a component reports its neutral value (0 for amounts, 1 for Multiplier).
type SalaryComponents struct {
	Base       float64
	Bonus      float64
	Multiplier float64
	Commission float64
}

// Gross returns the role salary described by the components.
func (c SalaryComponents) Gross() float64 {
	return c.Base*c.Multiplier + c.Bonus + c.Commission
}

// AdjustmentKind selects how an Adjustment changes an amount.
type AdjustmentKind int

const (
	// UnknownAdjustment leaves the amount unchanged.
	UnknownAdjustment AdjustmentKind = iota

	// BonusAdjustment adds a fixed amount.
	BonusAdjustment

	// TrainingAdjustment adds a training allowance.
	TrainingAdjustment

	// PerformanceAdjustment multiplies the amount.
	PerformanceAdjustment
)

// String returns the adjustment kind name.
func (k AdjustmentKind) String() string {
	switch k {
	case BonusAdjustment:
		return "bonus"
	case TrainingAdjustment:
		return "training"
	case PerformanceAdjustment:
		return "performance"
	case UnknownAdjustment:
		return "unknown"
	default:
		return "unknown"
	}
}

// Adjustment is one step of the salary pipeline applied after the role salary.
// Adjustments run in the order they were added to the employee.
type Adjustment struct {
	kind  AdjustmentKind
	value float64
}

// NewBonusAdjustment adds amount to the salary. amount must not be negative.
func NewBonusAdjustment(amount float64) (Adjustment, error) {
	if amount < 0 {
		return Adjustment{}, errs.NewValueIsOutOfRangeError("bonus", amount, 0, nil)
	}
	return Adjustment{kind: BonusAdjustment, value: amount}, nil
}

// NewTrainingAdjustment adds a training allowance. Negative amounts are clamped to 0.
func NewTrainingAdjustment(amount float64) Adjustment {
	return Adjustment{kind: TrainingAdjustment, value: max(0, amount)}
}

// NewPerformanceAdjustment multiplies the salary by multiplier (1.1 means +10%).
func NewPerformanceAdjustment(multiplier float64) (Adjustment, error) {
	if multiplier < 0 {
		return Adjustment{}, errs.NewValueIsOutOfRangeError("performance_multiplier", multiplier, 0, nil)
	}
	return Adjustment{kind: PerformanceAdjustment, value: multiplier}, nil
}

// NewAdjustment builds an adjustment from its kind and value, as stored.
func NewAdjustment(kind AdjustmentKind, value float64) (Adjustment, error) {
	switch kind {
	case BonusAdjustment:
		return NewBonusAdjustment(value)
	case TrainingAdjustment:
		return NewTrainingAdjustment(value), nil
	case PerformanceAdjustment:
		return NewPerformanceAdjustment(value)
	case UnknownAdjustment:
		return Adjustment{}, errs.NewValueIsInvalidError("adjustment kind")
	default:
		return Adjustment{}, errs.NewValueIsInvalidErrorWithCause("adjustment kind", fmt.Errorf("%d is not a valid kind", kind))
	}
}

// Kind returns the adjustment kind.
func (a Adjustment) Kind() AdjustmentKind {
	return a.kind
}

// Value returns the amount added or the multiplier applied.
func (a Adjustment) Value() float64 {
	return a.value
}

// Apply returns amount after this adjustment.
func (a Adjustment) Apply(amount float64) float64 {
	switch a.kind {
	case BonusAdjustment, TrainingAdjustment:
		return amount + a.value
	case PerformanceAdjustment:
		return amount * a.value
	case UnknownAdjustment:
		return amount
	default:
		return amount
	}
}

func (a Adjustment) String() string {
	if a.kind == PerformanceAdjustment {
		return fmt.Sprintf("%s x%s", a.kind, formatAmount(a.value))
	}
	return fmt.Sprintf("%s +%s", a.kind, formatAmount(a.value))
}

// ApplyAdjustments runs amount through adjustments in order.
func ApplyAdjustments(amount float64, adjustments ...Adjustment) float64 {
	for _, a := range adjustments {
		amount = a.Apply(amount)
	}
	return amount
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
