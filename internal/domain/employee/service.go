package employee

import (
	"context"
	"fmt"
	"strings"

	"rhdesk/internal/domain/auth"
)

type Service struct {
	Store StoreAPI
}

func NewService(store StoreAPI) *Service {
	return &Service{Store: store}
}

type CreateInput struct {
	Employee Employee
	Password string
}

func (s *Service) Create(ctx context.Context, actor auth.Identity, in CreateInput) (string, error) {
	if !actor.IsHR() {
		return "", ErrForbidden
	}
	e := in.Employee
	e.Code = strings.TrimSpace(e.Code)
	e.Email = strings.TrimSpace(strings.ToLower(e.Email))
	if e.BaseSalary.IsNegative() {
		return "", ErrNegativeSalary
	}

	hash := ""
	if in.Password != "" {
		var err error
		hash, err = auth.HashPassword(in.Password)
		if err != nil {
			return "", fmt.Errorf("hash password: %w", err)
		}
	}

	id, err := s.Store.Insert(ctx, e, hash)
	if err != nil {
		return "", fmt.Errorf("insert employee: %w", err)
	}
	return id, nil
}

func (s *Service) Get(ctx context.Context, actor auth.Identity, id string) (Employee, error) {
	if !actor.IsHR() && actor.EmployeeID != id {
		return Employee{}, ErrForbidden
	}
	e, err := s.Store.Get(ctx, id)
	if err != nil {
		return Employee{}, err
	}
	return e, nil
}

func (s *Service) GetByCode(ctx context.Context, actor auth.Identity, code string) (Employee, error) {
	if !actor.IsHR() {
		return Employee{}, ErrForbidden
	}
	return s.Store.GetByCode(ctx, code)
}

func (s *Service) List(ctx context.Context, actor auth.Identity, limit, offset int) ([]Employee, int, error) {
	if !actor.IsHR() {
		return nil, 0, ErrForbidden
	}
	return s.Store.List(ctx, limit, offset)
}

// Update replaces all mutable fields; the employee code stays whatever
// it was at creation.
func (s *Service) Update(ctx context.Context, actor auth.Identity, e Employee) error {
	if !actor.IsHR() {
		return ErrForbidden
	}
	if e.BaseSalary.IsNegative() {
		return ErrNegativeSalary
	}
	if e.RemainingLeaveDays < 0 {
		return fmt.Errorf("remaining leave days must not be negative")
	}
	e.Email = strings.TrimSpace(strings.ToLower(e.Email))
	return s.Store.Update(ctx, e)
}

// UpdateContact is the self-service path: employees may only touch
// their own contact fields.
func (s *Service) UpdateContact(ctx context.Context, actor auth.Identity, id string, contact ContactUpdate) error {
	if !actor.IsHR() && actor.EmployeeID != id {
		return ErrForbidden
	}
	contact.Email = strings.TrimSpace(strings.ToLower(contact.Email))
	return s.Store.UpdateContact(ctx, id, contact)
}

func (s *Service) SetPassword(ctx context.Context, actor auth.Identity, id, password string) error {
	if !actor.IsHR() && actor.EmployeeID != id {
		return ErrForbidden
	}
	hash, err := auth.HashPassword(password)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	return s.Store.UpdatePasswordHash(ctx, id, hash)
}

func (s *Service) Delete(ctx context.Context, actor auth.Identity, id string) error {
	if !actor.IsHR() {
		return ErrForbidden
	}
	return s.Store.Delete(ctx, id)
}
