package payroll

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"rhdesk/internal/domain/auth"
)

// Service owns payslip records. Net pay is always recomputed from
// gross, bonus and deduction here; it is never accepted from a caller.
type Service struct {
	Store StoreAPI
}

func NewService(store StoreAPI) *Service {
	return &Service{Store: store}
}

// Generate creates a payslip for the period, snapshotting the
// employee's current base salary as the gross amount.
func (s *Service) Generate(ctx context.Context, actor auth.Identity, employeeID, period string, bonus, deduction decimal.Decimal) (Payslip, error) {
	if !actor.IsHR() {
		return Payslip{}, ErrForbidden
	}
	if bonus.IsNegative() || deduction.IsNegative() {
		return Payslip{}, ErrNegativeAmount
	}

	var created Payslip
	err := s.Store.InTx(ctx, func(tx StoreAPI) error {
		snap, err := tx.EmployeeSnapshot(ctx, employeeID)
		if err != nil {
			return err
		}
		gross := snap.BaseSalary
		if deduction.GreaterThan(gross.Add(bonus)) {
			return ErrOverDeduction
		}

		created = Payslip{
			EmployeeID: employeeID,
			Period:     period,
			IssueDate:  time.Now().UTC(),
			Gross:      gross,
			Bonus:      bonus,
			Deduction:  deduction,
			Net:        ComputeNet(gross, bonus, deduction),
		}
		id, err := tx.InsertPayslip(ctx, created)
		if err != nil {
			return fmt.Errorf("insert payslip: %w", err)
		}
		created.ID = id
		return nil
	})
	if err != nil {
		return Payslip{}, err
	}
	return created, nil
}

// Edit changes bonus and deduction on an existing payslip; gross and
// period stay as generated. Net is recomputed from the stored gross.
func (s *Service) Edit(ctx context.Context, actor auth.Identity, payslipID string, bonus, deduction decimal.Decimal) (Payslip, error) {
	if !actor.IsHR() {
		return Payslip{}, ErrForbidden
	}
	if bonus.IsNegative() || deduction.IsNegative() {
		return Payslip{}, ErrNegativeAmount
	}

	var edited Payslip
	err := s.Store.InTx(ctx, func(tx StoreAPI) error {
		p, err := tx.GetPayslip(ctx, payslipID)
		if err != nil {
			return err
		}
		if deduction.GreaterThan(p.Gross.Add(bonus)) {
			return ErrOverDeduction
		}

		p.Bonus = bonus
		p.Deduction = deduction
		p.Net = ComputeNet(p.Gross, bonus, deduction)
		if err := tx.UpdatePayslipAmounts(ctx, p.ID, p.Bonus, p.Deduction, p.Net); err != nil {
			return fmt.Errorf("update payslip: %w", err)
		}
		edited = p
		return nil
	})
	if err != nil {
		return Payslip{}, err
	}
	return edited, nil
}

// Delete removes a payslip. No balance side effects: payslips never
// touch leave accounting.
func (s *Service) Delete(ctx context.Context, actor auth.Identity, payslipID string) error {
	if !actor.IsHR() {
		return ErrForbidden
	}
	return s.Store.DeletePayslip(ctx, payslipID)
}

func (s *Service) Get(ctx context.Context, actor auth.Identity, payslipID string) (Payslip, error) {
	p, err := s.Store.GetPayslip(ctx, payslipID)
	if err != nil {
		return Payslip{}, err
	}
	if !actor.IsHR() && actor.EmployeeID != p.EmployeeID {
		return Payslip{}, ErrForbidden
	}
	return p, nil
}

func (s *Service) List(ctx context.Context, actor auth.Identity, f PayslipFilter, limit, offset int) ([]Payslip, int, error) {
	if !actor.IsHR() {
		f.EmployeeID = actor.EmployeeID
	}
	return s.Store.ListPayslips(ctx, f, limit, offset)
}
