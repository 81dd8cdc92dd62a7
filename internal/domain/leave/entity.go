package leave

import "time"

type Status string

const (
	StatusPending   Status = "Pending"
	StatusApproved  Status = "Approved"
	StatusRejected  Status = "Rejected"
	StatusCancelled Status = "Cancelled"
)

// Terminal reports whether no further transition is defined out of s.
func (s Status) Terminal() bool {
	switch s {
	case StatusApproved, StatusRejected, StatusCancelled:
		return true
	}
	return false
}

type Action string

const (
	ActionApprove Action = "approve"
	ActionReject  Action = "reject"
	ActionCancel  Action = "cancel"
)

// TargetStatus maps an action to the terminal status it produces.
func (a Action) TargetStatus() (Status, bool) {
	switch a {
	case ActionApprove:
		return StatusApproved, true
	case ActionReject:
		return StatusRejected, true
	case ActionCancel:
		return StatusCancelled, true
	}
	return "", false
}

// LeaveRequest is an employee's time-off application. PolicyID references the
// policy in force at submission time; the policy snapshot log preserves the
// rules that were actually validated even if the policy is edited later.
type LeaveRequest struct {
	ID             string
	OrganizationID string
	EmployeeID     string
	UserID         string
	PolicyID       string

	StartDate time.Time
	EndDate   time.Time
	Reason    string

	// Presence of a supporting document; storage itself is external.
	AttachmentURL *string

	Status     Status
	ReviewedBy *string
	Remarks    *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// DaysRequested returns the inclusive calendar-day span of the request.
func (lr LeaveRequest) DaysRequested() int {
	return DaysBetween(lr.StartDate, lr.EndDate)
}

// DaysBetween counts calendar days between two dates, inclusive of both
// endpoints. Dates are expected at midnight UTC.
func DaysBetween(start, end time.Time) int {
	return int(end.Sub(start).Hours()/24) + 1
}
