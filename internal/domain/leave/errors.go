package leave

import (
	"errors"
	"fmt"
)

var (
	ErrLeaveRequestNotFound = errors.New("leave request not found")
	ErrPolicyInactive       = errors.New("leave policy is not active")
	ErrInvalidDateRange     = errors.New("end date must not be before start date")
	ErrInvalidAction        = errors.New("invalid action, use approve, reject or cancel")
	ErrAlreadyProcessed     = errors.New("leave request already processed")
)

// InvalidTransitionError - the action was applied to a request already in a
// terminal state. Distinct from ErrAlreadyProcessed, which marks the loser of
// a concurrent compare-and-set on a request that was still Pending when read.
type InvalidTransitionError struct {
	Status Status
	Action Action
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("cannot %s a leave request that is already %s", e.Action, e.Status)
}

// NoticeTooShortError - the request starts sooner than the policy's notice
// period allows.
type NoticeTooShortError struct {
	RequiredDays int
	GivenDays    int
}

func (e *NoticeTooShortError) Error() string {
	return fmt.Sprintf("leave must be applied at least %d days in advance", e.RequiredDays)
}

// DocumentRequiredError - the policy requires a supporting document above a
// day threshold and none was supplied.
type DocumentRequiredError struct {
	MaxDaysWithoutDoc int
	DaysRequested     int
}

func (e *DocumentRequiredError) Error() string {
	return fmt.Sprintf("a supporting document is required for more than %d days", e.MaxDaysWithoutDoc)
}

// QuotaExceededError carries the exact used/limit/requested figures so callers
// can render or localize the failure.
type QuotaExceededError struct {
	UsedDays      int
	LimitDays     int
	RequestedDays int
}

func (e *QuotaExceededError) Error() string {
	return fmt.Sprintf("cannot apply %d days, already used %d/%d days this year",
		e.RequestedDays, e.UsedDays, e.LimitDays)
}
