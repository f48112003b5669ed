package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"rhdesk/internal/platform/querier"
)

var ErrInvalidCredentials = errors.New("invalid email or password")

type Service struct {
	DB       querier.Querier
	Secret   string
	TokenTTL time.Duration
}

func NewService(db querier.Querier, secret string, ttl time.Duration) *Service {
	return &Service{DB: db, Secret: secret, TokenTTL: ttl}
}

// Login tries an HR manager account first, then an employee account,
// matching the two-population login the desktop client exposed.
func (s *Service) Login(ctx context.Context, email, password string) (string, Identity, error) {
	email = strings.TrimSpace(strings.ToLower(email))

	identity, hash, err := s.lookupHR(ctx, email)
	if errors.Is(err, pgx.ErrNoRows) {
		identity, hash, err = s.lookupEmployee(ctx, email)
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return "", Identity{}, ErrInvalidCredentials
	}
	if err != nil {
		return "", Identity{}, fmt.Errorf("load account: %w", err)
	}

	if err := CheckPassword(hash, password); err != nil {
		return "", Identity{}, ErrInvalidCredentials
	}

	token, err := GenerateToken(s.Secret, Claims{
		UserID:     identity.UserID,
		EmployeeID: identity.EmployeeID,
		Role:       identity.Role,
		Email:      identity.Email,
	}, s.TokenTTL)
	if err != nil {
		return "", Identity{}, fmt.Errorf("sign token: %w", err)
	}
	return token, identity, nil
}

func (s *Service) lookupHR(ctx context.Context, email string) (Identity, string, error) {
	var id, hash string
	err := s.DB.QueryRow(ctx, `
    SELECT id, password_hash
    FROM users
    WHERE email = $1 AND role = $2
  `, email, RoleHR).Scan(&id, &hash)
	if err != nil {
		return Identity{}, "", err
	}
	return Identity{UserID: id, Role: RoleHR, Email: email}, hash, nil
}

func (s *Service) lookupEmployee(ctx context.Context, email string) (Identity, string, error) {
	var id, hash string
	err := s.DB.QueryRow(ctx, `
    SELECT id, password_hash
    FROM employees
    WHERE email = $1 AND password_hash <> ''
  `, email).Scan(&id, &hash)
	if err != nil {
		return Identity{}, "", err
	}
	return Identity{UserID: id, EmployeeID: id, Role: RoleEmployee, Email: email}, hash, nil
}
