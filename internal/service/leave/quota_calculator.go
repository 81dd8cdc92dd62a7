package leave

import (
	"context"
	"fmt"

	"github.com/peoplehub/leave-backend-go/internal/domain/leave"
)

// QuotaCalculator aggregates committed leave days (Pending plus Approved) per
// employee, policy and calendar year. Pending requests reserve their days, so
// submissions admitted under the quota lock can never together exceed the
// yearly limit. Must be read under the same quota lock as the insert it
// guards (see Service.Submit).
type QuotaCalculator struct {
	requests leave.LeaveRequestRepository
}

func NewQuotaCalculator(requests leave.LeaveRequestRepository) *QuotaCalculator {
	return &QuotaCalculator{requests: requests}
}

func (c *QuotaCalculator) UsedDays(ctx context.Context, employeeID, policyID string, year int) (int, error) {
	total, err := c.requests.SumCommittedDays(ctx, employeeID, policyID, year)
	if err != nil {
		return 0, fmt.Errorf("failed to sum committed leave days: %w", err)
	}
	return total, nil
}
