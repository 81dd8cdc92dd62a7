package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/peoplehub/leave-backend-go/internal/domain/policy"
	"github.com/peoplehub/leave-backend-go/internal/pkg/database"
)

type policyRepositoryImpl struct {
	db *database.DB
}

func NewPolicyRepository(db *database.DB) policy.Repository {
	return &policyRepositoryImpl{db: db}
}

const policyColumns = `
	id, organization_id, name, policy_type, description,
	max_days_per_year, carry_forward_days, requires_document, max_days_without_doc,
	notice_period_days, allow_encashment, encashment_limit,
	is_active, created_by, created_at, updated_at
`

func scanPolicy(row pgx.Row) (policy.Policy, error) {
	var p policy.Policy
	err := row.Scan(
		&p.ID,
		&p.OrganizationID,
		&p.Name,
		&p.PolicyType,
		&p.Description,
		&p.MaxDaysPerYear,
		&p.CarryForwardDays,
		&p.RequiresDocument,
		&p.MaxDaysWithoutDoc,
		&p.NoticePeriodDays,
		&p.AllowEncashment,
		&p.EncashmentLimit,
		&p.IsActive,
		&p.CreatedBy,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return policy.Policy{}, policy.ErrPolicyNotFound
		}
		return policy.Policy{}, err
	}
	return p, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func (r *policyRepositoryImpl) Create(ctx context.Context, p policy.Policy) (policy.Policy, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_policies (
			id, organization_id, name, policy_type, description,
			max_days_per_year, carry_forward_days, requires_document, max_days_without_doc,
			notice_period_days, allow_encashment, encashment_limit,
			is_active, created_by, created_at, updated_at
		) VALUES (
			gen_random_uuid(), $1, $2, $3, $4,
			$5, $6, $7, $8,
			$9, $10, $11,
			$12, $13, NOW(), NOW()
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		p.OrganizationID, p.Name, p.PolicyType, p.Description,
		p.MaxDaysPerYear, p.CarryForwardDays, p.RequiresDocument, p.MaxDaysWithoutDoc,
		p.NoticePeriodDays, p.AllowEncashment, p.EncashmentLimit,
		p.IsActive, p.CreatedBy,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return policy.Policy{}, policy.ErrPolicyExists
		}
		return policy.Policy{}, err
	}

	return p, nil
}

func (r *policyRepositoryImpl) GetByID(ctx context.Context, id string) (policy.Policy, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + policyColumns + ` FROM leave_policies WHERE id = $1`
	return scanPolicy(q.QueryRow(ctx, query, id))
}

func (r *policyRepositoryImpl) GetActiveByOrgAndType(ctx context.Context, organizationID string, policyType policy.PolicyType) (policy.Policy, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + policyColumns + `
		FROM leave_policies
		WHERE organization_id = $1 AND policy_type = $2 AND is_active = TRUE
		ORDER BY created_at DESC
		LIMIT 1
	`
	return scanPolicy(q.QueryRow(ctx, query, organizationID, policyType))
}

func (r *policyRepositoryImpl) ListAll(ctx context.Context) ([]policy.Policy, error) {
	query := `
		SELECT ` + policyColumns + `
		FROM leave_policies
		ORDER BY created_at DESC
	`
	return r.list(ctx, query)
}

func (r *policyRepositoryImpl) ListAllActive(ctx context.Context) ([]policy.Policy, error) {
	query := `
		SELECT ` + policyColumns + `
		FROM leave_policies
		WHERE is_active = TRUE
		ORDER BY created_at DESC
	`
	return r.list(ctx, query)
}

func (r *policyRepositoryImpl) ListByOrganization(ctx context.Context, organizationID string) ([]policy.Policy, error) {
	query := `
		SELECT ` + policyColumns + `
		FROM leave_policies
		WHERE organization_id = $1
		ORDER BY created_at DESC
	`
	return r.list(ctx, query, organizationID)
}

func (r *policyRepositoryImpl) ListActiveByOrganization(ctx context.Context, organizationID string) ([]policy.Policy, error) {
	query := `
		SELECT ` + policyColumns + `
		FROM leave_policies
		WHERE organization_id = $1 AND is_active = TRUE
		ORDER BY created_at DESC
	`
	return r.list(ctx, query, organizationID)
}

func (r *policyRepositoryImpl) list(ctx context.Context, query string, args ...interface{}) ([]policy.Policy, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var policies []policy.Policy
	for rows.Next() {
		p, err := scanPolicy(rows)
		if err != nil {
			return nil, err
		}
		policies = append(policies, p)
	}
	return policies, rows.Err()
}

// Update rewrites the mutable rule fields. The row lock taken here serializes
// concurrent editors of the same policy, which keeps the snapshot versions
// appended in the same transaction gap-free.
func (r *policyRepositoryImpl) Update(ctx context.Context, p policy.Policy) (policy.Policy, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_policies SET
			name = $2,
			description = $3,
			max_days_per_year = $4,
			carry_forward_days = $5,
			requires_document = $6,
			max_days_without_doc = $7,
			notice_period_days = $8,
			allow_encashment = $9,
			encashment_limit = $10,
			is_active = $11,
			updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`

	err := q.QueryRow(ctx, query,
		p.ID, p.Name, p.Description,
		p.MaxDaysPerYear, p.CarryForwardDays, p.RequiresDocument, p.MaxDaysWithoutDoc,
		p.NoticePeriodDays, p.AllowEncashment, p.EncashmentLimit,
		p.IsActive,
	).Scan(&p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return policy.Policy{}, policy.ErrPolicyNotFound
		}
		if isUniqueViolation(err) {
			return policy.Policy{}, policy.ErrPolicyExists
		}
		return policy.Policy{}, err
	}

	return p, nil
}
