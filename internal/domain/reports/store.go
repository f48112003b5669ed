package reports

import (
	"context"

	"github.com/shopspring/decimal"

	"rhdesk/internal/domain/leave"
	"rhdesk/internal/platform/querier"
)

type Store struct {
	DB querier.Querier
}

func NewStore(db querier.Querier) *Store {
	return &Store{DB: db}
}

func (s *Store) Headcount(ctx context.Context) (int, error) {
	var count int
	if err := s.DB.QueryRow(ctx, "SELECT COUNT(1) FROM employees").Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (s *Store) PendingRequestCount(ctx context.Context) (int, error) {
	var count int
	if err := s.DB.QueryRow(ctx, "SELECT COUNT(1) FROM leave_requests WHERE status = $1", leave.StatusPending).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (s *Store) ApprovedLeaveTotals(ctx context.Context) (totalDays int, avgDuration float64, err error) {
	err = s.DB.QueryRow(ctx, `
    SELECT COALESCE(SUM(duration_days), 0), COALESCE(AVG(duration_days), 0)
    FROM leave_requests
    WHERE status = $1
  `, leave.StatusApproved).Scan(&totalDays, &avgDuration)
	return totalDays, avgDuration, err
}

func (s *Store) RequestCountsByType(ctx context.Context) (map[string]int, error) {
	rows, err := s.DB.Query(ctx, "SELECT type, COUNT(1) FROM leave_requests GROUP BY type")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := map[string]int{}
	for rows.Next() {
		var leaveType string
		var count int
		if err := rows.Scan(&leaveType, &count); err != nil {
			return nil, err
		}
		out[leaveType] = count
	}
	return out, rows.Err()
}

func (s *Store) RequestCountsByStatus(ctx context.Context) (map[string]int, error) {
	rows, err := s.DB.Query(ctx, "SELECT status, COUNT(1) FROM leave_requests GROUP BY status")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := map[string]int{}
	for rows.Next() {
		var status string
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		out[status] = count
	}
	return out, rows.Err()
}

type PayrollPeriodTotal struct {
	Period    string          `json:"period"`
	Gross     decimal.Decimal `json:"gross"`
	Net       decimal.Decimal `json:"net"`
	SlipCount int             `json:"slipCount"`
}

func (s *Store) PayrollTotalsByPeriod(ctx context.Context) ([]PayrollPeriodTotal, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT period, COALESCE(SUM(gross), 0), COALESCE(SUM(net), 0), COUNT(1)
    FROM payslips
    GROUP BY period
    ORDER BY period DESC
  `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []PayrollPeriodTotal
	for rows.Next() {
		var t PayrollPeriodTotal
		if err := rows.Scan(&t.Period, &t.Gross, &t.Net, &t.SlipCount); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}
