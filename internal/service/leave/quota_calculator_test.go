package leave

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peoplehub/leave-backend-go/internal/domain/leave"
)

func seedRequest(t *testing.T, repo *fakeLeaveRequestRepo, status leave.Status, start, end time.Time) {
	t.Helper()
	lr, err := repo.Create(context.Background(), leave.LeaveRequest{
		EmployeeID: "emp-1",
		PolicyID:   "pol-1",
		StartDate:  start,
		EndDate:    end,
		Status:     leave.StatusPending,
	})
	require.NoError(t, err)
	if status != leave.StatusPending {
		_, err := repo.UpdateStatus(context.Background(), lr.ID, status, "hr-1", "")
		require.NoError(t, err)
	}
}

func TestQuotaCalculator_CountsCommittedDaysInYear(t *testing.T) {
	t.Parallel()
	repo := newFakeLeaveRequestRepo()
	calc := NewQuotaCalculator(repo)

	// 3 approved days plus 2 approved days in 2026.
	seedRequest(t, repo, leave.StatusApproved, date(2026, time.April, 1), date(2026, time.April, 3))
	seedRequest(t, repo, leave.StatusApproved, date(2026, time.June, 10), date(2026, time.June, 11))

	// A pending request reserves its 5 days until it is decided.
	seedRequest(t, repo, leave.StatusPending, date(2026, time.May, 1), date(2026, time.May, 5))

	// Rejected and cancelled requests release their days.
	seedRequest(t, repo, leave.StatusRejected, date(2026, time.May, 10), date(2026, time.May, 15))
	seedRequest(t, repo, leave.StatusCancelled, date(2026, time.July, 1), date(2026, time.July, 2))

	// Approved but in another year.
	seedRequest(t, repo, leave.StatusApproved, date(2025, time.December, 1), date(2025, time.December, 5))

	total, err := calc.UsedDays(context.Background(), "emp-1", "pol-1", 2026)
	require.NoError(t, err)
	assert.Equal(t, 10, total)
}

func TestQuotaCalculator_EmptyYearIsZero(t *testing.T) {
	t.Parallel()
	repo := newFakeLeaveRequestRepo()
	calc := NewQuotaCalculator(repo)

	total, err := calc.UsedDays(context.Background(), "emp-1", "pol-1", 2026)
	require.NoError(t, err)
	assert.Equal(t, 0, total)
}
