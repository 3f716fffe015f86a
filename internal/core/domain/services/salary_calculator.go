package services

import (
	"orgchart/internal/core/domain/model/employee"
	"orgchart/internal/pkg/errs"
)

// ErrEmployeeIsRequired is returned when a nil employee is priced.
var ErrEmployeeIsRequired = errs.NewValueIsRequiredError("employee")

// PaymentData is the flat record understood by external payroll calculators.
type PaymentData struct {
	BaseSalary float64
	Bonus      float64
	Multiplier float64
	Commission float64
}

// ExternalSalaryCalculator computes a payment from PaymentData.
type ExternalSalaryCalculator interface {
	ComputePayment(data PaymentData) float64
}

// ExternalSalaryService computes base * multiplier + bonus + commission.
type ExternalSalaryService struct{}

// NewExternalSalaryService creates the reference calculator.
func NewExternalSalaryService() ExternalSalaryService {
	return ExternalSalaryService{}
}

// ComputePayment prices data.
func (ExternalSalaryService) ComputePayment(data PaymentData) float64 {
	return data.BaseSalary*data.Multiplier + data.Bonus + data.Commission
}

// SalaryCalculatorAdapter prices employees with an ExternalSalaryCalculator.
//
// Adjustments are not part of PaymentData; the adapter prices the role salary only.
//
// Example usage:
//
//	adapter := NewSalaryCalculatorAdapter(NewExternalSalaryService())
//	pay, err := adapter.CalculateSalary(dev)
type SalaryCalculatorAdapter struct {
	calculator ExternalSalaryCalculator
}

// NewSalaryCalculatorAdapter wraps calculator.
func NewSalaryCalculatorAdapter(calculator ExternalSalaryCalculator) SalaryCalculatorAdapter {
	return SalaryCalculatorAdapter{calculator: calculator}
}

// CalculateSalary converts e to PaymentData and delegates to the calculator.
func (a SalaryCalculatorAdapter) CalculateSalary(e employee.Employee) (float64, error) {
	if e == nil {
		return 0, ErrEmployeeIsRequired
	}
	if err := e.Validate(); err != nil {
		return 0, err
	}
	return a.calculator.ComputePayment(ToPaymentData(e.SalaryComponents())), nil
}

// ToPaymentData maps salary components onto the external record.
func ToPaymentData(c employee.SalaryComponents) PaymentData {
	return PaymentData{
		BaseSalary: c.Base,
		Bonus:      c.Bonus,
		Multiplier: c.Multiplier,
		Commission: c.Commission,
	}
}
