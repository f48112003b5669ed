package leave

import "context"

type StoreAPI interface {
	// InTx runs fn against a transaction-scoped store. fn returning an
	// error rolls everything back; otherwise the transaction commits.
	InTx(ctx context.Context, fn func(StoreAPI) error) error

	InsertRequest(ctx context.Context, r Request) (string, error)
	GetRequest(ctx context.Context, id string) (Request, error)
	UpdateRequest(ctx context.Context, r Request) error
	DeleteRequest(ctx context.Context, id string) error
	ListRequests(ctx context.Context, f RequestFilter, limit, offset int) ([]Request, int, error)

	RemainingDays(ctx context.Context, employeeID string) (int, error)
	// ReserveDays decrements the balance iff at least days remain,
	// reporting whether the decrement happened.
	ReserveDays(ctx context.Context, employeeID string, days int) (bool, error)
	ReleaseDays(ctx context.Context, employeeID string, days int) error
}
