package leave

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

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
		// Already transaction-scoped.
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

func (s *Store) InsertRequest(ctx context.Context, r Request) (string, error) {
	var id string
	err := s.DB.QueryRow(ctx, `
    INSERT INTO leave_requests (employee_id, start_date, end_date, type, reason, status, duration_days)
    VALUES ($1,$2,$3,$4,$5,$6,$7)
    RETURNING id
  `, r.EmployeeID, r.StartDate, r.EndDate, r.Type, r.Reason, r.Status, r.DurationDays).Scan(&id)
	if err != nil {
		return "", err
	}
	return id, nil
}

func (s *Store) GetRequest(ctx context.Context, id string) (Request, error) {
	var r Request
	err := s.DB.QueryRow(ctx, `
    SELECT id, employee_id, start_date, end_date, type, COALESCE(reason, ''), status, duration_days, created_at
    FROM leave_requests
    WHERE id = $1
  `, id).Scan(&r.ID, &r.EmployeeID, &r.StartDate, &r.EndDate, &r.Type, &r.Reason, &r.Status, &r.DurationDays, &r.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return Request{}, ErrNotFound
	}
	if err != nil {
		return Request{}, err
	}
	return r, nil
}

func (s *Store) UpdateRequest(ctx context.Context, r Request) error {
	tag, err := s.DB.Exec(ctx, `
    UPDATE leave_requests
    SET start_date = $2, end_date = $3, type = $4, reason = $5, status = $6, duration_days = $7
    WHERE id = $1
  `, r.ID, r.StartDate, r.EndDate, r.Type, r.Reason, r.Status, r.DurationDays)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) DeleteRequest(ctx context.Context, id string) error {
	tag, err := s.DB.Exec(ctx, "DELETE FROM leave_requests WHERE id = $1", id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) ListRequests(ctx context.Context, f RequestFilter, limit, offset int) ([]Request, int, error) {
	where := " WHERE 1=1"
	args := []any{}
	if f.EmployeeID != "" {
		args = append(args, f.EmployeeID)
		where += fmt.Sprintf(" AND employee_id = $%d", len(args))
	}
	if f.Status != "" {
		args = append(args, f.Status)
		where += fmt.Sprintf(" AND status = $%d", len(args))
	}

	var total int
	if err := s.DB.QueryRow(ctx, "SELECT COUNT(1) FROM leave_requests"+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	args = append(args, limit, offset)
	rows, err := s.DB.Query(ctx, fmt.Sprintf(`
    SELECT id, employee_id, start_date, end_date, type, COALESCE(reason, ''), status, duration_days, created_at
    FROM leave_requests%s
    ORDER BY start_date DESC
    LIMIT $%d OFFSET $%d
  `, where, len(args)-1, len(args)), args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var out []Request
	for rows.Next() {
		var r Request
		if err := rows.Scan(&r.ID, &r.EmployeeID, &r.StartDate, &r.EndDate, &r.Type, &r.Reason, &r.Status, &r.DurationDays, &r.CreatedAt); err != nil {
			return nil, 0, err
		}
		out = append(out, r)
	}
	return out, total, rows.Err()
}

func (s *Store) RemainingDays(ctx context.Context, employeeID string) (int, error) {
	var remaining int
	err := s.DB.QueryRow(ctx, "SELECT remaining_leave_days FROM employees WHERE id = $1", employeeID).Scan(&remaining)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, ErrEmployeeNotFound
	}
	if err != nil {
		return 0, err
	}
	return remaining, nil
}

func (s *Store) ReserveDays(ctx context.Context, employeeID string, days int) (bool, error) {
	tag, err := s.DB.Exec(ctx, `
    UPDATE employees
    SET remaining_leave_days = remaining_leave_days - $2
    WHERE id = $1 AND remaining_leave_days >= $2
  `, employeeID, days)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (s *Store) ReleaseDays(ctx context.Context, employeeID string, days int) error {
	tag, err := s.DB.Exec(ctx, `
    UPDATE employees
    SET remaining_leave_days = remaining_leave_days + $2
    WHERE id = $1
  `, employeeID, days)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrEmployeeNotFound
	}
	return nil
}
