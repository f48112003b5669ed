package leave

import "errors"

var (
	ErrNotFound            = errors.New("leave request not found")
	ErrEmployeeNotFound    = errors.New("employee not found")
	ErrInsufficientBalance = errors.New("insufficient leave balance")
	ErrAlreadyProcessed    = errors.New("leave request already processed")
	ErrInvalidRange        = errors.New("end date before start date")
	ErrForbidden           = errors.New("not allowed to act on this leave request")
)
