package employee

import "errors"

var (
	ErrNotFound       = errors.New("employee not found")
	ErrDuplicateCode  = errors.New("employee code already in use")
	ErrDuplicateEmail = errors.New("employee email already in use")
	ErrNegativeSalary = errors.New("base salary must not be negative")
	ErrForbidden      = errors.New("not allowed to modify this employee")
)
