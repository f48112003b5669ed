package payroll

import "github.com/shopspring/decimal"

// ComputeNet derives net pay: gross + bonus - deduction.
//
// The function itself applies no guard; the service enforces
// deduction <= gross + bonus before anything is stored, so a negative
// net never reaches the records.
func ComputeNet(gross, bonus, deduction decimal.Decimal) decimal.Decimal {
	return gross.Add(bonus).Sub(deduction)
}
