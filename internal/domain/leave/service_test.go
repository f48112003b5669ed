package leave

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"rhdesk/internal/domain/auth"
)

var (
	hr   = auth.Identity{UserID: "hr-1", Role: auth.RoleHR}
	self = auth.Identity{UserID: "emp-1", EmployeeID: "emp-1", Role: auth.RoleEmployee}
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestRequestApproveDeleteRoundTrip(t *testing.T) {
	store := newMemStore()
	store.addEmployee("emp-1", 18)
	svc := NewService(store)
	ctx := context.Background()

	r, err := svc.Request(ctx, self, RequestInput{
		EmployeeID: "emp-1",
		StartDate:  date(2026, 3, 1),
		EndDate:    date(2026, 3, 5),
		Type:       "paid",
		Reason:     "vacation",
	})
	require.NoError(t, err)
	require.Equal(t, StatusPending, r.Status)
	require.Equal(t, 5, r.DurationDays)
	require.Equal(t, 18, store.employees["emp-1"], "creation must not reserve days")

	_, err = svc.Approve(ctx, hr, r.ID)
	require.NoError(t, err)
	require.Equal(t, 13, store.employees["emp-1"])

	require.NoError(t, svc.Delete(ctx, hr, r.ID))
	require.Equal(t, 18, store.employees["emp-1"], "deleting an approved request must restore the balance exactly")
}

func TestRequestNormalizesDatesToCalendarDays(t *testing.T) {
	store := newMemStore()
	store.addEmployee("emp-1", 18)
	svc := NewService(store)
	ctx := context.Background()

	// An end date carrying an offset must still count as its calendar
	// day and be stored as such.
	r, err := svc.Request(ctx, self, RequestInput{
		EmployeeID: "emp-1",
		StartDate:  date(2026, 3, 1),
		EndDate:    time.Date(2026, 3, 5, 0, 0, 0, 0, time.FixedZone("", 2*60*60)),
		Type:       "paid",
	})
	require.NoError(t, err)
	require.Equal(t, 5, r.DurationDays)
	require.Equal(t, date(2026, 3, 1), r.StartDate)
	require.Equal(t, date(2026, 3, 5), r.EndDate)
	require.Equal(t, DurationDays(r.StartDate, r.EndDate), r.DurationDays,
		"stored duration must be derivable from the stored dates")

	edited, err := svc.Edit(ctx, self, r.ID, EditInput{
		StartDate: time.Date(2026, 3, 2, 10, 30, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 3, 6, 0, 0, 0, 0, time.FixedZone("", 2*60*60)),
		Type:      "paid",
	})
	require.NoError(t, err)
	require.Equal(t, 5, edited.DurationDays)
	require.Equal(t, date(2026, 3, 2), edited.StartDate)
	require.Equal(t, date(2026, 3, 6), edited.EndDate)
}

func TestRequestInsufficientBalanceBoundary(t *testing.T) {
	store := newMemStore()
	store.addEmployee("emp-1", 5)
	svc := NewService(store)
	ctx := context.Background()

	// Exactly the remaining balance fits.
	r, err := svc.Request(ctx, self, RequestInput{
		EmployeeID: "emp-1",
		StartDate:  date(2026, 4, 6),
		EndDate:    date(2026, 4, 10),
		Type:       "paid",
	})
	require.NoError(t, err)
	require.Equal(t, 5, r.DurationDays)

	// One more day does not.
	_, err = svc.Request(ctx, self, RequestInput{
		EmployeeID: "emp-1",
		StartDate:  date(2026, 4, 6),
		EndDate:    date(2026, 4, 11),
		Type:       "paid",
	})
	require.ErrorIs(t, err, ErrInsufficientBalance)
}

func TestApproveRechecksBalance(t *testing.T) {
	store := newMemStore()
	store.addEmployee("emp-1", 10)
	svc := NewService(store)
	ctx := context.Background()

	// Two pending requests individually fit the balance.
	first, err := svc.Request(ctx, self, RequestInput{
		EmployeeID: "emp-1", StartDate: date(2026, 5, 4), EndDate: date(2026, 5, 10), Type: "paid",
	})
	require.NoError(t, err)
	second, err := svc.Request(ctx, self, RequestInput{
		EmployeeID: "emp-1", StartDate: date(2026, 6, 1), EndDate: date(2026, 6, 7), Type: "paid",
	})
	require.NoError(t, err)

	_, err = svc.Approve(ctx, hr, first.ID)
	require.NoError(t, err)
	require.Equal(t, 3, store.employees["emp-1"])

	// Only one of them can actually be approved.
	_, err = svc.Approve(ctx, hr, second.ID)
	require.ErrorIs(t, err, ErrInsufficientBalance)
	require.Equal(t, 3, store.employees["emp-1"], "failed approval must leave the balance unchanged")

	got, err := store.GetRequest(ctx, second.ID)
	require.NoError(t, err)
	require.Equal(t, StatusPending, got.Status, "failed approval must leave the request pending")
}

func TestApproveAlreadyProcessed(t *testing.T) {
	store := newMemStore()
	store.addEmployee("emp-1", 20)
	svc := NewService(store)
	ctx := context.Background()

	r, err := svc.Request(ctx, self, RequestInput{
		EmployeeID: "emp-1", StartDate: date(2026, 7, 1), EndDate: date(2026, 7, 3), Type: "paid",
	})
	require.NoError(t, err)

	_, err = svc.Approve(ctx, hr, r.ID)
	require.NoError(t, err)
	require.Equal(t, 17, store.employees["emp-1"])

	_, err = svc.Approve(ctx, hr, r.ID)
	require.ErrorIs(t, err, ErrAlreadyProcessed)
	require.Equal(t, 17, store.employees["emp-1"])

	got, err := store.GetRequest(ctx, r.ID)
	require.NoError(t, err)
	require.Equal(t, StatusApproved, got.Status)

	_, err = svc.Reject(ctx, hr, r.ID, "late")
	require.ErrorIs(t, err, ErrAlreadyProcessed)

	_, err = svc.Edit(ctx, hr, r.ID, EditInput{
		StartDate: date(2026, 7, 1), EndDate: date(2026, 7, 2), Type: "paid",
	})
	require.ErrorIs(t, err, ErrAlreadyProcessed)
}

func TestRejectAppendsMotive(t *testing.T) {
	store := newMemStore()
	store.addEmployee("emp-1", 20)
	svc := NewService(store)
	ctx := context.Background()

	r, err := svc.Request(ctx, self, RequestInput{
		EmployeeID: "emp-1", StartDate: date(2026, 8, 3), EndDate: date(2026, 8, 7),
		Type: "paid", Reason: "vacation",
	})
	require.NoError(t, err)

	rejected, err := svc.Reject(ctx, hr, r.ID, "understaffed")
	require.NoError(t, err)
	require.Equal(t, StatusRejected, rejected.Status)
	require.Equal(t, "vacation | Motif de rejet: understaffed", rejected.Reason)
	require.Equal(t, 20, store.employees["emp-1"], "rejection must not touch the balance")
}

func TestEditRecomputesDurationWithinOldAllowance(t *testing.T) {
	store := newMemStore()
	store.addEmployee("emp-1", 2)
	svc := NewService(store)
	ctx := context.Background()

	r, err := svc.Request(ctx, self, RequestInput{
		EmployeeID: "emp-1", StartDate: date(2026, 9, 1), EndDate: date(2026, 9, 2), Type: "paid",
	})
	require.NoError(t, err)
	require.Equal(t, 2, r.DurationDays)

	// available = remaining (2) + old duration (2) = 4 days.
	edited, err := svc.Edit(ctx, self, r.ID, EditInput{
		StartDate: date(2026, 9, 1), EndDate: date(2026, 9, 4), Type: "unpaid", Reason: "moved",
	})
	require.NoError(t, err)
	require.Equal(t, 4, edited.DurationDays)
	require.Equal(t, "unpaid", edited.Type)
	require.Equal(t, 2, store.employees["emp-1"], "editing a pending request moves no days")

	// Five days exceed even the released allowance.
	_, err = svc.Edit(ctx, self, r.ID, EditInput{
		StartDate: date(2026, 9, 1), EndDate: date(2026, 9, 5), Type: "unpaid",
	})
	require.ErrorIs(t, err, ErrInsufficientBalance)
}

func TestInvalidRangeRejectedBeforeAnythingElse(t *testing.T) {
	store := newMemStore()
	store.addEmployee("emp-1", 20)
	svc := NewService(store)
	ctx := context.Background()

	_, err := svc.Request(ctx, self, RequestInput{
		EmployeeID: "emp-1", StartDate: date(2026, 10, 5), EndDate: date(2026, 10, 1), Type: "paid",
	})
	require.ErrorIs(t, err, ErrInvalidRange)

	r, err := svc.Request(ctx, self, RequestInput{
		EmployeeID: "emp-1", StartDate: date(2026, 10, 1), EndDate: date(2026, 10, 2), Type: "paid",
	})
	require.NoError(t, err)

	_, err = svc.Edit(ctx, self, r.ID, EditInput{
		StartDate: date(2026, 10, 5), EndDate: date(2026, 10, 1), Type: "paid",
	})
	require.ErrorIs(t, err, ErrInvalidRange)
}

func TestDeletePendingAndRejectedLeaveBalanceAlone(t *testing.T) {
	store := newMemStore()
	store.addEmployee("emp-1", 12)
	svc := NewService(store)
	ctx := context.Background()

	pending, err := svc.Request(ctx, self, RequestInput{
		EmployeeID: "emp-1", StartDate: date(2026, 11, 2), EndDate: date(2026, 11, 4), Type: "paid",
	})
	require.NoError(t, err)

	toReject, err := svc.Request(ctx, self, RequestInput{
		EmployeeID: "emp-1", StartDate: date(2026, 12, 1), EndDate: date(2026, 12, 3), Type: "paid",
	})
	require.NoError(t, err)
	_, err = svc.Reject(ctx, hr, toReject.ID, "year end freeze")
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, self, pending.ID))
	require.NoError(t, svc.Delete(ctx, hr, toReject.ID))
	require.Equal(t, 12, store.employees["emp-1"])
}

func TestApproveRollsBackWhenWriteFails(t *testing.T) {
	store := newMemStore()
	store.addEmployee("emp-1", 10)
	svc := NewService(store)
	ctx := context.Background()

	r, err := svc.Request(ctx, self, RequestInput{
		EmployeeID: "emp-1", StartDate: date(2026, 3, 9), EndDate: date(2026, 3, 13), Type: "paid",
	})
	require.NoError(t, err)

	boom := errors.New("connection reset")
	store.failUpdateRequest = boom

	_, err = svc.Approve(ctx, hr, r.ID)
	require.ErrorIs(t, err, boom)
	require.Equal(t, 10, store.employees["emp-1"], "reserve must roll back when the status write fails")

	store.failUpdateRequest = nil
	got, err := store.GetRequest(ctx, r.ID)
	require.NoError(t, err)
	require.Equal(t, StatusPending, got.Status)
}

func TestRoleGuards(t *testing.T) {
	store := newMemStore()
	store.addEmployee("emp-1", 10)
	store.addEmployee("emp-2", 10)
	svc := NewService(store)
	ctx := context.Background()

	other := auth.Identity{UserID: "emp-2", EmployeeID: "emp-2", Role: auth.RoleEmployee}

	_, err := svc.Request(ctx, other, RequestInput{
		EmployeeID: "emp-1", StartDate: date(2026, 3, 2), EndDate: date(2026, 3, 3), Type: "paid",
	})
	require.ErrorIs(t, err, ErrForbidden)

	r, err := svc.Request(ctx, self, RequestInput{
		EmployeeID: "emp-1", StartDate: date(2026, 3, 2), EndDate: date(2026, 3, 3), Type: "paid",
	})
	require.NoError(t, err)

	_, err = svc.Approve(ctx, self, r.ID)
	require.ErrorIs(t, err, ErrForbidden)
	_, err = svc.Reject(ctx, other, r.ID, "nope")
	require.ErrorIs(t, err, ErrForbidden)
	_, err = svc.Edit(ctx, other, r.ID, EditInput{
		StartDate: date(2026, 3, 2), EndDate: date(2026, 3, 3), Type: "paid",
	})
	require.ErrorIs(t, err, ErrForbidden)
	require.ErrorIs(t, svc.Delete(ctx, other, r.ID), ErrForbidden)
}

func TestListScopedToOwnRequestsForEmployees(t *testing.T) {
	store := newMemStore()
	store.addEmployee("emp-1", 10)
	store.addEmployee("emp-2", 10)
	svc := NewService(store)
	ctx := context.Background()

	_, err := svc.Request(ctx, self, RequestInput{
		EmployeeID: "emp-1", StartDate: date(2026, 3, 2), EndDate: date(2026, 3, 3), Type: "paid",
	})
	require.NoError(t, err)

	other := auth.Identity{UserID: "emp-2", EmployeeID: "emp-2", Role: auth.RoleEmployee}
	_, err = svc.Request(ctx, other, RequestInput{
		EmployeeID: "emp-2", StartDate: date(2026, 3, 2), EndDate: date(2026, 3, 3), Type: "paid",
	})
	require.NoError(t, err)

	mine, total, err := svc.List(ctx, self, RequestFilter{}, 50, 0)
	require.NoError(t, err)
	require.Equal(t, 1, total)
	require.Len(t, mine, 1)
	require.Equal(t, "emp-1", mine[0].EmployeeID)

	all, total, err := svc.List(ctx, hr, RequestFilter{}, 50, 0)
	require.NoError(t, err)
	require.Equal(t, 2, total)
	require.Len(t, all, 2)
}

func TestLedgerCanAfford(t *testing.T) {
	store := newMemStore()
	store.addEmployee("emp-1", 3)
	ledger := NewLedger(store)
	ctx := context.Background()

	ok, err := ledger.CanAfford(ctx, "emp-1", 3)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = ledger.CanAfford(ctx, "emp-1", 4)
	require.NoError(t, err)
	require.False(t, ok)

	_, err = ledger.CanAfford(ctx, "ghost", 1)
	require.ErrorIs(t, err, ErrEmployeeNotFound)
}

func TestLedgerReserveReleaseRoundTrip(t *testing.T) {
	store := newMemStore()
	store.addEmployee("emp-1", 7)
	ledger := NewLedger(store)
	ctx := context.Background()

	require.NoError(t, ledger.Reserve(ctx, "emp-1", 7))
	require.Equal(t, 0, store.employees["emp-1"])

	require.ErrorIs(t, ledger.Reserve(ctx, "emp-1", 1), ErrInsufficientBalance)
	require.Equal(t, 0, store.employees["emp-1"])

	require.NoError(t, ledger.Release(ctx, "emp-1", 7))
	require.Equal(t, 7, store.employees["emp-1"])
}
