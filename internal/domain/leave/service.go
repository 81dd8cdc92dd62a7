package leave

import (
	"context"

	"github.com/peoplehub/leave-backend-go/internal/domain/user"
)

// Service is the leave request surface exposed to transport.
type Service interface {
	Submit(ctx context.Context, draft SubmitDraft, actor user.Actor) (LeaveRequest, error)
	Transition(ctx context.Context, requestID string, action Action, remarks string, actor user.Actor) (LeaveRequest, error)
	GetByID(ctx context.Context, id string, actor user.Actor) (LeaveRequest, error)
	History(ctx context.Context, actor user.Actor) ([]LeaveRequest, error)
	ListForOrganization(ctx context.Context, actor user.Actor) ([]LeaveRequest, error)
}
