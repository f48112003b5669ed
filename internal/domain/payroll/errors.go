package payroll

import "errors"

var (
	ErrNotFound         = errors.New("payslip not found")
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrOverDeduction    = errors.New("deductions exceed gross salary plus bonus")
	ErrNegativeAmount   = errors.New("bonus and deduction must not be negative")
	ErrForbidden        = errors.New("not allowed to act on this payslip")
)
