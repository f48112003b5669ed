package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID                 string          `json:"id"`
	Code               string          `json:"code"`
	FirstName          string          `json:"firstName"`
	LastName           string          `json:"lastName"`
	Email              string          `json:"email"`
	Phone              string          `json:"phone,omitempty"`
	Position           string          `json:"position,omitempty"`
	Department         string          `json:"department,omitempty"`
	BaseSalary         decimal.Decimal `json:"baseSalary"`
	RemainingLeaveDays int             `json:"remainingLeaveDays"`
	HireDate           *time.Time      `json:"hireDate,omitempty"`
	BirthDate          *time.Time      `json:"birthDate,omitempty"`
	CreatedAt          time.Time       `json:"createdAt"`
}

func (e Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}

// ContactUpdate is the subset of fields an employee may change on their
// own record.
type ContactUpdate struct {
	Email string `json:"email"`
	Phone string `json:"phone"`
}
