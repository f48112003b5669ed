package payroll

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"rhdesk/internal/platform/querier"
)

type Store struct {
	DB   querier.Querier
	pool *pgxpool.Pool
}

func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{DB: pool, pool: pool}
}

func (s *Store) InTx(ctx context.Context, fn func(StoreAPI) error) error {
	if s.pool == nil {
		return fn(s)
	}
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	if err := fn(&Store{DB: tx}); err != nil {
		_ = tx.Rollback(ctx)
		return err
	}
	return tx.Commit(ctx)
}

func (s *Store) EmployeeSnapshot(ctx context.Context, employeeID string) (EmployeeSnapshot, error) {
	var snap EmployeeSnapshot
	err := s.DB.QueryRow(ctx, `
    SELECT id, first_name || ' ' || last_name, email, base_salary
    FROM employees
    WHERE id = $1
  `, employeeID).Scan(&snap.ID, &snap.FullName, &snap.Email, &snap.BaseSalary)
	if errors.Is(err, pgx.ErrNoRows) {
		return EmployeeSnapshot{}, ErrEmployeeNotFound
	}
	if err != nil {
		return EmployeeSnapshot{}, err
	}
	return snap, nil
}

func (s *Store) InsertPayslip(ctx context.Context, p Payslip) (string, error) {
	var id string
	err := s.DB.QueryRow(ctx, `
    INSERT INTO payslips (employee_id, period, issue_date, gross, bonus, deduction, net)
    VALUES ($1,$2,$3,$4,$5,$6,$7)
    RETURNING id
  `, p.EmployeeID, p.Period, p.IssueDate, p.Gross, p.Bonus, p.Deduction, p.Net).Scan(&id)
	if err != nil {
		return "", err
	}
	return id, nil
}

func (s *Store) GetPayslip(ctx context.Context, id string) (Payslip, error) {
	var p Payslip
	err := s.DB.QueryRow(ctx, `
    SELECT id, employee_id, period, issue_date, gross, bonus, deduction, net, created_at
    FROM payslips
    WHERE id = $1
  `, id).Scan(&p.ID, &p.EmployeeID, &p.Period, &p.IssueDate, &p.Gross, &p.Bonus, &p.Deduction, &p.Net, &p.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return Payslip{}, ErrNotFound
	}
	if err != nil {
		return Payslip{}, err
	}
	return p, nil
}

func (s *Store) UpdatePayslipAmounts(ctx context.Context, id string, bonus, deduction, net decimal.Decimal) error {
	tag, err := s.DB.Exec(ctx, `
    UPDATE payslips
    SET bonus = $2, deduction = $3, net = $4
    WHERE id = $1
  `, id, bonus, deduction, net)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) DeletePayslip(ctx context.Context, id string) error {
	tag, err := s.DB.Exec(ctx, "DELETE FROM payslips WHERE id = $1", id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) ListPayslips(ctx context.Context, f PayslipFilter, limit, offset int) ([]Payslip, int, error) {
	where := " WHERE 1=1"
	args := []any{}
	if f.EmployeeID != "" {
		args = append(args, f.EmployeeID)
		where += fmt.Sprintf(" AND employee_id = $%d", len(args))
	}
	if f.Period != "" {
		args = append(args, f.Period)
		where += fmt.Sprintf(" AND period = $%d", len(args))
	}

	var total int
	if err := s.DB.QueryRow(ctx, "SELECT COUNT(1) FROM payslips"+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	args = append(args, limit, offset)
	rows, err := s.DB.Query(ctx, fmt.Sprintf(`
    SELECT id, employee_id, period, issue_date, gross, bonus, deduction, net, created_at
    FROM payslips%s
    ORDER BY issue_date DESC
    LIMIT $%d OFFSET $%d
  `, where, len(args)-1, len(args)), args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var out []Payslip
	for rows.Next() {
		var p Payslip
		if err := rows.Scan(&p.ID, &p.EmployeeID, &p.Period, &p.IssueDate, &p.Gross, &p.Bonus, &p.Deduction, &p.Net, &p.CreatedAt); err != nil {
			return nil, 0, err
		}
		out = append(out, p)
	}
	return out, total, rows.Err()
}

func (s *Store) PayslipPDFData(ctx context.Context, id string) (PDFData, error) {
	var data PDFData
	err := s.DB.QueryRow(ctx, `
    SELECT p.id, p.employee_id, p.period, p.issue_date, p.gross, p.bonus, p.deduction, p.net, p.created_at,
           e.first_name || ' ' || e.last_name, e.email
    FROM payslips p
    JOIN employees e ON p.employee_id = e.id
    WHERE p.id = $1
  `, id).Scan(
		&data.Payslip.ID, &data.Payslip.EmployeeID, &data.Payslip.Period, &data.Payslip.IssueDate,
		&data.Payslip.Gross, &data.Payslip.Bonus, &data.Payslip.Deduction, &data.Payslip.Net,
		&data.Payslip.CreatedAt, &data.EmployeeName, &data.Email,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return PDFData{}, ErrNotFound
	}
	if err != nil {
		return PDFData{}, err
	}
	return data, nil
}
