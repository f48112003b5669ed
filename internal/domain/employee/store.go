package employee

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"rhdesk/internal/platform/querier"
)

type Store struct {
	DB querier.Querier
}

func NewStore(db querier.Querier) *Store {
	return &Store{DB: db}
}

const employeeColumns = `
    id, code, first_name, last_name, email,
    COALESCE(phone, ''), COALESCE(position, ''), COALESCE(department, ''),
    base_salary, remaining_leave_days, hire_date, birth_date, created_at`

func (s *Store) Insert(ctx context.Context, e Employee, passwordHash string) (string, error) {
	var id string
	err := s.DB.QueryRow(ctx, `
    INSERT INTO employees
      (code, first_name, last_name, email, phone, position, department,
       base_salary, remaining_leave_days, hire_date, birth_date, password_hash)
    VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
    RETURNING id
  `, e.Code, e.FirstName, e.LastName, e.Email, e.Phone, e.Position, e.Department,
		e.BaseSalary, e.RemainingLeaveDays, e.HireDate, e.BirthDate, passwordHash).Scan(&id)
	if err != nil {
		return "", mapConstraintError(err)
	}
	return id, nil
}

func (s *Store) Get(ctx context.Context, id string) (Employee, error) {
	return s.scanOne(s.DB.QueryRow(ctx, `
    SELECT`+employeeColumns+`
    FROM employees
    WHERE id = $1
  `, id))
}

func (s *Store) GetByCode(ctx context.Context, code string) (Employee, error) {
	return s.scanOne(s.DB.QueryRow(ctx, `
    SELECT`+employeeColumns+`
    FROM employees
    WHERE code = $1
  `, code))
}

func (s *Store) List(ctx context.Context, limit, offset int) ([]Employee, int, error) {
	var total int
	if err := s.DB.QueryRow(ctx, "SELECT COUNT(1) FROM employees").Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := s.DB.Query(ctx, `
    SELECT`+employeeColumns+`
    FROM employees
    ORDER BY last_name, first_name
    LIMIT $1 OFFSET $2
  `, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var out []Employee
	for rows.Next() {
		e, err := s.scanOne(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, e)
	}
	return out, total, rows.Err()
}

func (s *Store) Update(ctx context.Context, e Employee) error {
	tag, err := s.DB.Exec(ctx, `
    UPDATE employees
    SET first_name = $2, last_name = $3, email = $4, phone = $5,
        position = $6, department = $7, base_salary = $8,
        remaining_leave_days = $9, hire_date = $10, birth_date = $11
    WHERE id = $1
  `, e.ID, e.FirstName, e.LastName, e.Email, e.Phone, e.Position, e.Department,
		e.BaseSalary, e.RemainingLeaveDays, e.HireDate, e.BirthDate)
	if err != nil {
		return mapConstraintError(err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) UpdateContact(ctx context.Context, id string, contact ContactUpdate) error {
	tag, err := s.DB.Exec(ctx, `
    UPDATE employees
    SET email = $2, phone = $3
    WHERE id = $1
  `, id, contact.Email, contact.Phone)
	if err != nil {
		return mapConstraintError(err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) UpdatePasswordHash(ctx context.Context, id, passwordHash string) error {
	tag, err := s.DB.Exec(ctx, "UPDATE employees SET password_hash = $2 WHERE id = $1", id, passwordHash)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes the employee; leave requests and payslips go with it
// through ON DELETE CASCADE.
func (s *Store) Delete(ctx context.Context, id string) error {
	tag, err := s.DB.Exec(ctx, "DELETE FROM employees WHERE id = $1", id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) scanOne(row pgx.Row) (Employee, error) {
	var e Employee
	err := row.Scan(
		&e.ID, &e.Code, &e.FirstName, &e.LastName, &e.Email,
		&e.Phone, &e.Position, &e.Department,
		&e.BaseSalary, &e.RemainingLeaveDays, &e.HireDate, &e.BirthDate, &e.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return Employee{}, ErrNotFound
	}
	if err != nil {
		return Employee{}, err
	}
	return e, nil
}

// mapConstraintError turns unique-violation errors (SQLSTATE 23505)
// into the matching sentinel by constraint name.
func mapConstraintError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != "23505" {
		return err
	}
	switch pgErr.ConstraintName {
	case "employees_code_key":
		return ErrDuplicateCode
	case "employees_email_key":
		return ErrDuplicateEmail
	}
	return err
}
