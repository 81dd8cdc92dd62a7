package policy

import (
	"context"

	"github.com/peoplehub/leave-backend-go/internal/domain/user"
)

// Service is the policy management surface. Create and Update each append
// exactly one snapshot.
type Service interface {
	Create(ctx context.Context, req CreatePolicyRequest, actor user.Actor) (Policy, error)
	Update(ctx context.Context, req UpdatePolicyRequest, actor user.Actor) (Policy, error)
	GetByID(ctx context.Context, id string, actor user.Actor) (Policy, error)
	List(ctx context.Context, actor user.Actor) ([]Policy, error)
	ListActive(ctx context.Context, actor user.Actor) ([]Policy, error)
	HistoryByPolicy(ctx context.Context, policyID string, actor user.Actor) ([]Snapshot, error)
	History(ctx context.Context, actor user.Actor) ([]Snapshot, error)
}
