package policy

import "context"

// Repository - leave_policies table
type Repository interface {
	Create(ctx context.Context, p Policy) (Policy, error)
	GetByID(ctx context.Context, id string) (Policy, error)
	GetActiveByOrgAndType(ctx context.Context, organizationID string, policyType PolicyType) (Policy, error)
	ListAll(ctx context.Context) ([]Policy, error)
	ListAllActive(ctx context.Context) ([]Policy, error)
	ListByOrganization(ctx context.Context, organizationID string) ([]Policy, error)
	ListActiveByOrganization(ctx context.Context, organizationID string) ([]Policy, error)
	Update(ctx context.Context, p Policy) (Policy, error)
}

// SnapshotRepository - leave_policy_snapshots append-only table. Append
// computes the next version atomically; rows are never updated or deleted.
type SnapshotRepository interface {
	Append(ctx context.Context, s Snapshot) (Snapshot, error)
	ListByPolicy(ctx context.Context, policyID string) ([]Snapshot, error)
	ListByOrganization(ctx context.Context, organizationID string) ([]Snapshot, error)
	ListAll(ctx context.Context) ([]Snapshot, error)
}

// TxManager runs fn inside a storage transaction; repositories called with the
// returned context join it.
type TxManager interface {
	InTx(ctx context.Context, fn func(ctx context.Context) error) error
}
