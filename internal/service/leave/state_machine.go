package leave

import (
	"time"

	"github.com/peoplehub/leave-backend-go/internal/domain/leave"
)

// StateMachine owns the request lifecycle: Pending is the only non-terminal
// state, and approve/reject/cancel each move to their terminal status exactly
// once. Who may call which action is decided outside this service; the state
// machine only refuses re-transitions.
type StateMachine struct{}

// Transition applies action to the request in place, recording the reviewer,
// remarks and update time. It fails without mutating the request when the
// action is outside the closed set or the request is no longer Pending.
func (StateMachine) Transition(lr *leave.LeaveRequest, action leave.Action, reviewerID, remarks string, now time.Time) error {
	target, ok := action.TargetStatus()
	if !ok {
		return leave.ErrInvalidAction
	}
	if lr.Status != leave.StatusPending {
		return &leave.InvalidTransitionError{Status: lr.Status, Action: action}
	}

	lr.Status = target
	lr.ReviewedBy = &reviewerID
	lr.Remarks = &remarks
	lr.UpdatedAt = now
	return nil
}
