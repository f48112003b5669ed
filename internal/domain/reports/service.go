package reports

import "context"

type Service struct {
	Store *Store
}

func NewService(store *Store) *Service {
	return &Service{Store: store}
}

// Dashboard assembles the HR landing-page counters.
func (s *Service) Dashboard(ctx context.Context) (map[string]any, error) {
	headcount, err := s.Store.Headcount(ctx)
	if err != nil {
		return nil, err
	}
	pending, err := s.Store.PendingRequestCount(ctx)
	if err != nil {
		return nil, err
	}
	totalDays, avgDuration, err := s.Store.ApprovedLeaveTotals(ctx)
	if err != nil {
		return nil, err
	}
	return map[string]any{
		"headcount":            headcount,
		"pendingRequests":      pending,
		"approvedLeaveDays":    totalDays,
		"averageLeaveDuration": avgDuration,
	}, nil
}

func (s *Service) LeaveReport(ctx context.Context) (map[string]any, error) {
	byType, err := s.Store.RequestCountsByType(ctx)
	if err != nil {
		return nil, err
	}
	byStatus, err := s.Store.RequestCountsByStatus(ctx)
	if err != nil {
		return nil, err
	}
	totalDays, avgDuration, err := s.Store.ApprovedLeaveTotals(ctx)
	if err != nil {
		return nil, err
	}
	return map[string]any{
		"countsByType":         byType,
		"countsByStatus":       byStatus,
		"approvedLeaveDays":    totalDays,
		"averageLeaveDuration": avgDuration,
	}, nil
}

func (s *Service) PayrollReport(ctx context.Context) ([]PayrollPeriodTotal, error) {
	return s.Store.PayrollTotalsByPeriod(ctx)
}
