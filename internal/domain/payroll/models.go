package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payslip records pay for one period. Gross is a snapshot of the
// employee's base salary at generation time, not a live reference;
// period and gross are immutable after creation.
type Payslip struct {
	ID         string          `json:"id"`
	EmployeeID string          `json:"employeeId"`
	Period     string          `json:"period"`
	IssueDate  time.Time       `json:"issueDate"`
	Gross      decimal.Decimal `json:"gross"`
	Bonus      decimal.Decimal `json:"bonus"`
	Deduction  decimal.Decimal `json:"deduction"`
	Net        decimal.Decimal `json:"net"`
	CreatedAt  time.Time       `json:"createdAt"`
}

type PayslipFilter struct {
	EmployeeID string
	Period     string
}

// EmployeeSnapshot is what payslip generation needs to know about the
// employee at that moment.
type EmployeeSnapshot struct {
	ID         string
	FullName   string
	Email      string
	BaseSalary decimal.Decimal
}

// PDFData is the joined payslip + employee view rendered into the
// downloadable document.
type PDFData struct {
	Payslip      Payslip
	EmployeeName string
	Email        string
}
