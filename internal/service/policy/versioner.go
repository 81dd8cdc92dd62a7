package policy

import (
	"context"
	"fmt"

	"github.com/peoplehub/leave-backend-go/internal/domain/policy"
)

// Versioner appends an immutable snapshot of a policy's full field set on
// every create or update. Version numbers are computed by the append itself
// so they stay contiguous per policy; snapshots are never edited or removed.
type Versioner struct {
	snapshots policy.SnapshotRepository
}

func NewVersioner(snapshots policy.SnapshotRepository) *Versioner {
	return &Versioner{snapshots: snapshots}
}

// Snapshot records p as the next version, attributed to the acting identity.
// Must run in the same transaction as the policy write it documents.
func (v *Versioner) Snapshot(ctx context.Context, p policy.Policy, changedBy string) (policy.Snapshot, error) {
	s, err := v.snapshots.Append(ctx, SnapshotOf(p, changedBy))
	if err != nil {
		return policy.Snapshot{}, fmt.Errorf("failed to append policy snapshot: %w", err)
	}
	return s, nil
}

// SnapshotOf copies every rule field of p into an unversioned snapshot value.
func SnapshotOf(p policy.Policy, changedBy string) policy.Snapshot {
	return policy.Snapshot{
		PolicyID:          p.ID,
		Name:              p.Name,
		PolicyType:        p.PolicyType,
		Description:       p.Description,
		MaxDaysPerYear:    p.MaxDaysPerYear,
		CarryForwardDays:  p.CarryForwardDays,
		RequiresDocument:  p.RequiresDocument,
		MaxDaysWithoutDoc: p.MaxDaysWithoutDoc,
		NoticePeriodDays:  p.NoticePeriodDays,
		AllowEncashment:   p.AllowEncashment,
		EncashmentLimit:   p.EncashmentLimit,
		IsActive:          p.IsActive,
		ChangedBy:         changedBy,
	}
}
