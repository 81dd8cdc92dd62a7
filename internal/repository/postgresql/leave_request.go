package postgresql

import (
	"context"
	"errors"
	"fmt"
	"hash/fnv"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/peoplehub/leave-backend-go/internal/domain/leave"
	"github.com/peoplehub/leave-backend-go/internal/pkg/database"
)

type leaveRequestRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRequestRepository(db *database.DB) leave.LeaveRequestRepository {
	return &leaveRequestRepositoryImpl{db: db}
}

const leaveRequestColumns = `
	id, organization_id, employee_id, user_id, policy_id,
	start_date, end_date, reason, attachment_url,
	status, reviewed_by, remarks, created_at, updated_at
`

func scanLeaveRequest(row pgx.Row) (leave.LeaveRequest, error) {
	var lr leave.LeaveRequest
	err := row.Scan(
		&lr.ID,
		&lr.OrganizationID,
		&lr.EmployeeID,
		&lr.UserID,
		&lr.PolicyID,
		&lr.StartDate,
		&lr.EndDate,
		&lr.Reason,
		&lr.AttachmentURL,
		&lr.Status,
		&lr.ReviewedBy,
		&lr.Remarks,
		&lr.CreatedAt,
		&lr.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
		}
		return leave.LeaveRequest{}, err
	}
	return lr, nil
}

func (r *leaveRequestRepositoryImpl) Create(ctx context.Context, request leave.LeaveRequest) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_requests (
			id, organization_id, employee_id, user_id, policy_id,
			start_date, end_date, reason, attachment_url,
			status, created_at, updated_at
		) VALUES (
			gen_random_uuid(), $1, $2, $3, $4,
			$5, $6, $7, $8,
			$9, NOW(), NOW()
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		request.OrganizationID, request.EmployeeID, request.UserID, request.PolicyID,
		request.StartDate, request.EndDate, request.Reason, request.AttachmentURL,
		request.Status,
	).Scan(&request.ID, &request.CreatedAt, &request.UpdatedAt)
	if err != nil {
		return leave.LeaveRequest{}, err
	}

	return request, nil
}

func (r *leaveRequestRepositoryImpl) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + leaveRequestColumns + ` FROM leave_requests WHERE id = $1`
	return scanLeaveRequest(q.QueryRow(ctx, query, id))
}

func (r *leaveRequestRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string) ([]leave.LeaveRequest, error) {
	query := `
		SELECT ` + leaveRequestColumns + `
		FROM leave_requests
		WHERE employee_id = $1
		ORDER BY created_at DESC
	`
	return r.list(ctx, query, employeeID)
}

func (r *leaveRequestRepositoryImpl) ListByOrganization(ctx context.Context, organizationID string) ([]leave.LeaveRequest, error) {
	query := `
		SELECT ` + leaveRequestColumns + `
		FROM leave_requests
		WHERE organization_id = $1
		ORDER BY created_at DESC
	`
	return r.list(ctx, query, organizationID)
}

func (r *leaveRequestRepositoryImpl) list(ctx context.Context, query string, args ...interface{}) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []leave.LeaveRequest
	for rows.Next() {
		lr, err := scanLeaveRequest(rows)
		if err != nil {
			return nil, err
		}
		requests = append(requests, lr)
	}
	return requests, rows.Err()
}

// SumCommittedDays counts inclusive day spans of Pending and Approved
// requests whose range falls inside the calendar year. Pending rows reserve
// quota; Rejected and Cancelled rows release it. Calendar days, both
// endpoints included.
func (r *leaveRequestRepositoryImpl) SumCommittedDays(ctx context.Context, employeeID, policyID string, year int) (int, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COALESCE(SUM(end_date - start_date + 1), 0)
		FROM leave_requests
		WHERE employee_id = $1
		  AND policy_id = $2
		  AND status IN ('Pending', 'Approved')
		  AND start_date >= make_date($3, 1, 1)
		  AND end_date <= make_date($3, 12, 31)
	`

	var total int
	err := q.QueryRow(ctx, query, employeeID, policyID, year).Scan(&total)
	return total, err
}

// UpdateStatus is a compare-and-set from Pending; of two concurrent reviewer
// actions only one can match the WHERE clause.
func (r *leaveRequestRepositoryImpl) UpdateStatus(ctx context.Context, id string, to leave.Status, reviewedBy string, remarks string) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_requests
		SET status = $2, reviewed_by = $3, remarks = $4, updated_at = NOW()
		WHERE id = $1 AND status = 'Pending'
		RETURNING ` + leaveRequestColumns + `
	`

	lr, err := scanLeaveRequest(q.QueryRow(ctx, query, id, to, reviewedBy, remarks))
	if err != nil {
		if errors.Is(err, leave.ErrLeaveRequestNotFound) {
			return leave.LeaveRequest{}, leave.ErrAlreadyProcessed
		}
		return leave.LeaveRequest{}, err
	}

	return lr, nil
}

// quotaLockKey hashes the quota scope to a bigint advisory lock key.
func quotaLockKey(employeeID, policyID string, year int) int64 {
	h := fnv.New64a()
	fmt.Fprintf(h, "%s|%s|%d", employeeID, policyID, year)
	return int64(h.Sum64())
}

// WithQuotaLock runs fn in a transaction holding pg_advisory_xact_lock on the
// (employee, policy, year) key. Two submissions for the same key cannot both
// read the pre-insert quota; the lock is released with the transaction.
func (r *leaveRequestRepositoryImpl) WithQuotaLock(ctx context.Context, employeeID, policyID string, year int, fn func(ctx context.Context) error) error {
	tx, err := r.db.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if p := recover(); p != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				slog.Error("rollback during panic recovery failed", "error", rbErr)
			}
			panic(p)
		}
	}()

	if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock($1)`, quotaLockKey(employeeID, policyID, year)); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			slog.Error("rollback after lock failure failed", "error", rbErr)
		}
		return fmt.Errorf("acquire quota lock: %w", err)
	}

	if err := fn(WithQuerier(ctx, tx)); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			return fmt.Errorf("rollback error: %v (original error: %w)", rbErr, err)
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}

	return nil
}
