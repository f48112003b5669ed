package leave

import (
	"context"
	"fmt"
	"time"

	"rhdesk/internal/domain/auth"
)

// Service drives a leave request through its lifecycle. Every mutating
// operation runs as one transaction: the state read, the transition and
// any balance movement commit together or not at all.
//
// Balance is reserved at approval, not at request time. A pool of
// pending requests may collectively exceed the balance; affordability
// is checked again when one of them is approved.
type Service struct {
	Store StoreAPI
}

func NewService(store StoreAPI) *Service {
	return &Service{Store: store}
}

type RequestInput struct {
	EmployeeID string
	StartDate  time.Time
	EndDate    time.Time
	Type       string
	Reason     string
}

type EditInput struct {
	StartDate time.Time
	EndDate   time.Time
	Type      string
	Reason    string
}

// Request creates a Pending leave request. The requested duration must
// fit the current balance, but no days are reserved yet.
func (s *Service) Request(ctx context.Context, actor auth.Identity, in RequestInput) (Request, error) {
	if !actor.IsHR() && actor.EmployeeID != in.EmployeeID {
		return Request{}, ErrForbidden
	}
	// Whole calendar days only: the stored dates must always reproduce
	// the stored duration.
	in.StartDate = DateOnly(in.StartDate)
	in.EndDate = DateOnly(in.EndDate)
	if in.EndDate.Before(in.StartDate) {
		return Request{}, ErrInvalidRange
	}
	duration := DurationDays(in.StartDate, in.EndDate)

	var created Request
	err := s.Store.InTx(ctx, func(tx StoreAPI) error {
		ok, err := NewLedger(tx).CanAfford(ctx, in.EmployeeID, duration)
		if err != nil {
			return err
		}
		if !ok {
			return ErrInsufficientBalance
		}

		created = Request{
			EmployeeID:   in.EmployeeID,
			StartDate:    in.StartDate,
			EndDate:      in.EndDate,
			Type:         in.Type,
			Reason:       in.Reason,
			Status:       StatusPending,
			DurationDays: duration,
		}
		id, err := tx.InsertRequest(ctx, created)
		if err != nil {
			return fmt.Errorf("insert leave request: %w", err)
		}
		created.ID = id
		return nil
	})
	if err != nil {
		return Request{}, err
	}
	return created, nil
}

// Approve moves a Pending request to Approved and reserves its days.
// Affordability is re-checked here because the balance may have moved
// since the request was created.
func (s *Service) Approve(ctx context.Context, actor auth.Identity, requestID string) (Request, error) {
	if !actor.IsHR() {
		return Request{}, ErrForbidden
	}

	var approved Request
	err := s.Store.InTx(ctx, func(tx StoreAPI) error {
		r, err := tx.GetRequest(ctx, requestID)
		if err != nil {
			return err
		}
		if !r.IsPending() {
			return ErrAlreadyProcessed
		}

		if err := NewLedger(tx).Reserve(ctx, r.EmployeeID, r.DurationDays); err != nil {
			return err
		}

		r.Status = StatusApproved
		if err := tx.UpdateRequest(ctx, r); err != nil {
			return fmt.Errorf("update leave request: %w", err)
		}
		approved = r
		return nil
	})
	if err != nil {
		return Request{}, err
	}
	return approved, nil
}

// Reject moves a Pending request to Rejected. The motive is appended to
// the stored reason; the balance is untouched since nothing was
// reserved for a pending request.
func (s *Service) Reject(ctx context.Context, actor auth.Identity, requestID, motive string) (Request, error) {
	if !actor.IsHR() {
		return Request{}, ErrForbidden
	}

	var rejected Request
	err := s.Store.InTx(ctx, func(tx StoreAPI) error {
		r, err := tx.GetRequest(ctx, requestID)
		if err != nil {
			return err
		}
		if !r.IsPending() {
			return ErrAlreadyProcessed
		}

		r.Status = StatusRejected
		r.Reason = r.Reason + rejectionSeparator + motive
		if err := tx.UpdateRequest(ctx, r); err != nil {
			return fmt.Errorf("update leave request: %w", err)
		}
		rejected = r
		return nil
	})
	if err != nil {
		return Request{}, err
	}
	return rejected, nil
}

// Edit replaces the dates, type and reason of a Pending request and
// recomputes the duration. The affordability check counts the old
// duration as given back first: available = remaining + old duration.
func (s *Service) Edit(ctx context.Context, actor auth.Identity, requestID string, in EditInput) (Request, error) {
	in.StartDate = DateOnly(in.StartDate)
	in.EndDate = DateOnly(in.EndDate)
	if in.EndDate.Before(in.StartDate) {
		return Request{}, ErrInvalidRange
	}
	newDuration := DurationDays(in.StartDate, in.EndDate)

	var edited Request
	err := s.Store.InTx(ctx, func(tx StoreAPI) error {
		r, err := tx.GetRequest(ctx, requestID)
		if err != nil {
			return err
		}
		if !actor.IsHR() && actor.EmployeeID != r.EmployeeID {
			return ErrForbidden
		}
		if !r.IsPending() {
			return ErrAlreadyProcessed
		}

		remaining, err := tx.RemainingDays(ctx, r.EmployeeID)
		if err != nil {
			return err
		}
		if newDuration > remaining+r.DurationDays {
			return ErrInsufficientBalance
		}

		r.StartDate = in.StartDate
		r.EndDate = in.EndDate
		r.Type = in.Type
		r.Reason = in.Reason
		r.DurationDays = newDuration
		if err := tx.UpdateRequest(ctx, r); err != nil {
			return fmt.Errorf("update leave request: %w", err)
		}
		edited = r
		return nil
	})
	if err != nil {
		return Request{}, err
	}
	return edited, nil
}

// Delete removes a request in any status. Deleting an Approved request
// releases its days, restoring the balance to its pre-approval value.
func (s *Service) Delete(ctx context.Context, actor auth.Identity, requestID string) error {
	return s.Store.InTx(ctx, func(tx StoreAPI) error {
		r, err := tx.GetRequest(ctx, requestID)
		if err != nil {
			return err
		}
		if !actor.IsHR() && actor.EmployeeID != r.EmployeeID {
			return ErrForbidden
		}

		if r.Status == StatusApproved {
			if err := NewLedger(tx).Release(ctx, r.EmployeeID, r.DurationDays); err != nil {
				return err
			}
		}
		if err := tx.DeleteRequest(ctx, r.ID); err != nil {
			return fmt.Errorf("delete leave request: %w", err)
		}
		return nil
	})
}

func (s *Service) Get(ctx context.Context, actor auth.Identity, requestID string) (Request, error) {
	r, err := s.Store.GetRequest(ctx, requestID)
	if err != nil {
		return Request{}, err
	}
	if !actor.IsHR() && actor.EmployeeID != r.EmployeeID {
		return Request{}, ErrForbidden
	}
	return r, nil
}

func (s *Service) List(ctx context.Context, actor auth.Identity, f RequestFilter, limit, offset int) ([]Request, int, error) {
	if !actor.IsHR() {
		f.EmployeeID = actor.EmployeeID
	}
	return s.Store.ListRequests(ctx, f, limit, offset)
}
