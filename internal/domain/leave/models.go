package leave

import "time"

const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// rejectionSeparator joins the original reason with the rejection
// motive. The wording is kept verbatim from the legacy records, so
// existing data and new data read the same.
const rejectionSeparator = " | Motif de rejet: "

type Request struct {
	ID           string    `json:"id"`
	EmployeeID   string    `json:"employeeId"`
	StartDate    time.Time `json:"startDate"`
	EndDate      time.Time `json:"endDate"`
	Type         string    `json:"type"`
	Reason       string    `json:"reason"`
	Status       string    `json:"status"`
	DurationDays int       `json:"durationDays"`
	CreatedAt    time.Time `json:"createdAt"`
}

func (r Request) IsPending() bool {
	return r.Status == StatusPending
}

type RequestFilter struct {
	EmployeeID string
	Status     string
}
