package leave

import (
	"context"
	"time"
)

// LeaveRequestRepository - leave_requests table
type LeaveRequestRepository interface {
	Create(ctx context.Context, request LeaveRequest) (LeaveRequest, error)
	GetByID(ctx context.Context, id string) (LeaveRequest, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]LeaveRequest, error)
	ListByOrganization(ctx context.Context, organizationID string) ([]LeaveRequest, error)

	// SumCommittedDays aggregates inclusive day spans of Pending and Approved
	// requests for the employee/policy whose range lies inside the calendar
	// year. A pending request reserves its days until it is rejected or
	// cancelled; otherwise submissions admitted before the first approval
	// could together exceed the quota.
	SumCommittedDays(ctx context.Context, employeeID, policyID string, year int) (int, error)

	// UpdateStatus performs a compare-and-set from Pending to the target
	// status, recording reviewer, remarks and update time. Returns
	// ErrAlreadyProcessed when the request is no longer Pending.
	UpdateStatus(ctx context.Context, id string, to Status, reviewedBy string, remarks string) (LeaveRequest, error)

	// WithQuotaLock serializes fn against other submissions for the same
	// (employee, policy, year) key. Repository calls made with the context
	// passed to fn share one transaction; fn failure leaves no partial state.
	WithQuotaLock(ctx context.Context, employeeID, policyID string, year int, fn func(ctx context.Context) error) error
}

// SubmitDraft is the validated input assembled by the service before
// admission evaluation.
type SubmitDraft struct {
	PolicyID      string
	StartDate     time.Time
	EndDate       time.Time
	Reason        string
	AttachmentURL *string
}
