package postgresql

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/peoplehub/leave-backend-go/internal/domain/policy"
	"github.com/peoplehub/leave-backend-go/internal/pkg/database"
)

type policySnapshotRepositoryImpl struct {
	db *database.DB
}

func NewPolicySnapshotRepository(db *database.DB) policy.SnapshotRepository {
	return &policySnapshotRepositoryImpl{db: db}
}

const snapshotColumns = `
	id, policy_id, version, name, policy_type, description,
	max_days_per_year, carry_forward_days, requires_document, max_days_without_doc,
	notice_period_days, allow_encashment, encashment_limit, is_active,
	changed_by, changed_at
`

func scanSnapshot(row pgx.Row) (policy.Snapshot, error) {
	var s policy.Snapshot
	err := row.Scan(
		&s.ID,
		&s.PolicyID,
		&s.Version,
		&s.Name,
		&s.PolicyType,
		&s.Description,
		&s.MaxDaysPerYear,
		&s.CarryForwardDays,
		&s.RequiresDocument,
		&s.MaxDaysWithoutDoc,
		&s.NoticePeriodDays,
		&s.AllowEncashment,
		&s.EncashmentLimit,
		&s.IsActive,
		&s.ChangedBy,
		&s.ChangedAt,
	)
	if err != nil {
		return policy.Snapshot{}, err
	}
	return s, nil
}

// Append inserts the snapshot with version computed in the same statement as
// the insert, so versions stay contiguous. The unique (policy_id, version)
// constraint backstops concurrent appends that did not serialize on the
// policy row.
func (r *policySnapshotRepositoryImpl) Append(ctx context.Context, s policy.Snapshot) (policy.Snapshot, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_policy_snapshots (
			id, policy_id, version, name, policy_type, description,
			max_days_per_year, carry_forward_days, requires_document, max_days_without_doc,
			notice_period_days, allow_encashment, encashment_limit, is_active,
			changed_by, changed_at
		)
		SELECT
			gen_random_uuid(), $1, COALESCE(MAX(version), 0) + 1, $2, $3, $4,
			$5, $6, $7, $8,
			$9, $10, $11, $12,
			$13, NOW()
		FROM leave_policy_snapshots
		WHERE policy_id = $1
		RETURNING id, version, changed_at
	`

	err := q.QueryRow(ctx, query,
		s.PolicyID, s.Name, s.PolicyType, s.Description,
		s.MaxDaysPerYear, s.CarryForwardDays, s.RequiresDocument, s.MaxDaysWithoutDoc,
		s.NoticePeriodDays, s.AllowEncashment, s.EncashmentLimit, s.IsActive,
		s.ChangedBy,
	).Scan(&s.ID, &s.Version, &s.ChangedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return policy.Snapshot{}, policy.ErrSnapshotConflict
		}
		return policy.Snapshot{}, err
	}

	return s, nil
}

func (r *policySnapshotRepositoryImpl) ListByPolicy(ctx context.Context, policyID string) ([]policy.Snapshot, error) {
	query := `
		SELECT ` + snapshotColumns + `
		FROM leave_policy_snapshots
		WHERE policy_id = $1
		ORDER BY changed_at DESC, version DESC
	`
	return r.list(ctx, query, policyID)
}

func (r *policySnapshotRepositoryImpl) ListByOrganization(ctx context.Context, organizationID string) ([]policy.Snapshot, error) {
	query := `
		SELECT s.id, s.policy_id, s.version, s.name, s.policy_type, s.description,
			   s.max_days_per_year, s.carry_forward_days, s.requires_document, s.max_days_without_doc,
			   s.notice_period_days, s.allow_encashment, s.encashment_limit, s.is_active,
			   s.changed_by, s.changed_at
		FROM leave_policy_snapshots s
		INNER JOIN leave_policies p ON s.policy_id = p.id
		WHERE p.organization_id = $1
		ORDER BY s.changed_at DESC, s.version DESC
	`
	return r.list(ctx, query, organizationID)
}

func (r *policySnapshotRepositoryImpl) ListAll(ctx context.Context) ([]policy.Snapshot, error) {
	query := `
		SELECT ` + snapshotColumns + `
		FROM leave_policy_snapshots
		ORDER BY changed_at DESC, version DESC
	`
	return r.list(ctx, query)
}

func (r *policySnapshotRepositoryImpl) list(ctx context.Context, query string, args ...interface{}) ([]policy.Snapshot, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var snapshots []policy.Snapshot
	for rows.Next() {
		s, err := scanSnapshot(rows)
		if err != nil {
			return nil, err
		}
		snapshots = append(snapshots, s)
	}
	return snapshots, rows.Err()
}
