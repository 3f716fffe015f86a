// Package services provides domain services that work across employee
// variants without belonging to any one of them.
//
// The package includes:
//   - SalaryCalculatorAdapter: prices employees through an ExternalSalaryCalculator
//   - ExternalSalaryService: the reference calculator that speaks PaymentData
//
// The adapter reads only SalaryComponents, never the concrete variant, so a
// new variant is priced correctly as soon as it reports its components.
package services
