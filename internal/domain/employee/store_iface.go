package employee

import "context"

type StoreAPI interface {
	Insert(ctx context.Context, e Employee, passwordHash string) (string, error)
	Get(ctx context.Context, id string) (Employee, error)
	GetByCode(ctx context.Context, code string) (Employee, error)
	List(ctx context.Context, limit, offset int) ([]Employee, int, error)
	Update(ctx context.Context, e Employee) error
	UpdateContact(ctx context.Context, id string, contact ContactUpdate) error
	UpdatePasswordHash(ctx context.Context, id, passwordHash string) error
	Delete(ctx context.Context, id string) error
}
