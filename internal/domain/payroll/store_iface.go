package payroll

import (
	"context"

	"github.com/shopspring/decimal"
)

type StoreAPI interface {
	// InTx runs fn against a transaction-scoped store, rolling back
	// when fn fails.
	InTx(ctx context.Context, fn func(StoreAPI) error) error

	EmployeeSnapshot(ctx context.Context, employeeID string) (EmployeeSnapshot, error)
	InsertPayslip(ctx context.Context, p Payslip) (string, error)
	GetPayslip(ctx context.Context, id string) (Payslip, error)
	UpdatePayslipAmounts(ctx context.Context, id string, bonus, deduction, net decimal.Decimal) error
	DeletePayslip(ctx context.Context, id string) error
	ListPayslips(ctx context.Context, f PayslipFilter, limit, offset int) ([]Payslip, int, error)
	PayslipPDFData(ctx context.Context, id string) (PDFData, error)
}
