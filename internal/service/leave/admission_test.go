package leave

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peoplehub/leave-backend-go/internal/domain/leave"
	"github.com/peoplehub/leave-backend-go/internal/domain/policy"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func annualPolicy() policy.Policy {
	return policy.Policy{
		ID:               "pol-annual",
		OrganizationID:   "org-1",
		Name:             "Annual Leave",
		PolicyType:       policy.PolicyTypeAnnual,
		MaxDaysPerYear:   20,
		NoticePeriodDays: 2,
		IsActive:         true,
	}
}

func sickPolicy() policy.Policy {
	return policy.Policy{
		ID:                "pol-sick",
		OrganizationID:    "org-1",
		Name:              "Sick Leave",
		PolicyType:        policy.PolicyTypeSick,
		MaxDaysPerYear:    14,
		RequiresDocument:  true,
		MaxDaysWithoutDoc: 3,
		IsActive:          true,
	}
}

func TestAdmissionValidator_Accepts(t *testing.T) {
	t.Parallel()
	v := NewAdmissionValidator()
	today := date(2026, time.March, 1)

	err := v.Evaluate(annualPolicy(), date(2026, time.March, 10), date(2026, time.March, 12), today, false, 0)
	assert.NoError(t, err)
}

func TestAdmissionValidator_InactivePolicy(t *testing.T) {
	t.Parallel()
	v := NewAdmissionValidator()
	today := date(2026, time.March, 1)

	p := annualPolicy()
	p.IsActive = false

	err := v.Evaluate(p, date(2026, time.March, 10), date(2026, time.March, 12), today, false, 0)
	assert.ErrorIs(t, err, leave.ErrPolicyInactive)
}

func TestAdmissionValidator_EndBeforeStart(t *testing.T) {
	t.Parallel()
	v := NewAdmissionValidator()
	today := date(2026, time.March, 1)

	err := v.Evaluate(annualPolicy(), date(2026, time.March, 12), date(2026, time.March, 10), today, false, 0)
	assert.ErrorIs(t, err, leave.ErrInvalidDateRange)
}

func TestAdmissionValidator_SingleDayIsValid(t *testing.T) {
	t.Parallel()
	v := NewAdmissionValidator()
	today := date(2026, time.March, 1)
	day := date(2026, time.March, 10)

	err := v.Evaluate(annualPolicy(), day, day, today, false, 0)
	assert.NoError(t, err)
}

func TestAdmissionValidator_NoticeTooShort(t *testing.T) {
	t.Parallel()
	v := NewAdmissionValidator()
	today := date(2026, time.March, 1)

	// Policy wants 2 days of notice, start is tomorrow.
	err := v.Evaluate(annualPolicy(), date(2026, time.March, 2), date(2026, time.March, 3), today, false, 0)

	var noticeErr *leave.NoticeTooShortError
	require.ErrorAs(t, err, &noticeErr)
	assert.Equal(t, 2, noticeErr.RequiredDays)
	assert.Equal(t, 1, noticeErr.GivenDays)
}

func TestAdmissionValidator_NoticeExactlyAtBoundary(t *testing.T) {
	t.Parallel()
	v := NewAdmissionValidator()
	today := date(2026, time.March, 1)

	err := v.Evaluate(annualPolicy(), date(2026, time.March, 3), date(2026, time.March, 4), today, false, 0)
	assert.NoError(t, err)
}

func TestAdmissionValidator_DocumentRequired(t *testing.T) {
	t.Parallel()
	v := NewAdmissionValidator()
	today := date(2026, time.March, 1)

	// 4 days of sick leave without a document, threshold is 3.
	err := v.Evaluate(sickPolicy(), date(2026, time.March, 10), date(2026, time.March, 13), today, false, 0)

	var docErr *leave.DocumentRequiredError
	require.ErrorAs(t, err, &docErr)
	assert.Equal(t, 3, docErr.MaxDaysWithoutDoc)
	assert.Equal(t, 4, docErr.DaysRequested)
}

func TestAdmissionValidator_DocumentAttachedPasses(t *testing.T) {
	t.Parallel()
	v := NewAdmissionValidator()
	today := date(2026, time.March, 1)

	err := v.Evaluate(sickPolicy(), date(2026, time.March, 10), date(2026, time.March, 13), today, true, 0)
	assert.NoError(t, err)
}

func TestAdmissionValidator_AtDocumentThresholdNoDocumentNeeded(t *testing.T) {
	t.Parallel()
	v := NewAdmissionValidator()
	today := date(2026, time.March, 1)

	// Exactly 3 days, no document needed.
	err := v.Evaluate(sickPolicy(), date(2026, time.March, 10), date(2026, time.March, 12), today, false, 0)
	assert.NoError(t, err)
}

func TestAdmissionValidator_QuotaExceeded(t *testing.T) {
	t.Parallel()
	v := NewAdmissionValidator()
	today := date(2026, time.March, 1)

	// 18 used + 3 requested > 20.
	err := v.Evaluate(annualPolicy(), date(2026, time.March, 10), date(2026, time.March, 12), today, false, 18)

	var quotaErr *leave.QuotaExceededError
	require.ErrorAs(t, err, &quotaErr)
	assert.Equal(t, 18, quotaErr.UsedDays)
	assert.Equal(t, 20, quotaErr.LimitDays)
	assert.Equal(t, 3, quotaErr.RequestedDays)
}

func TestAdmissionValidator_QuotaExactlyFull(t *testing.T) {
	t.Parallel()
	v := NewAdmissionValidator()
	today := date(2026, time.March, 1)

	// 17 used + 3 requested == 20, still fits.
	err := v.Evaluate(annualPolicy(), date(2026, time.March, 10), date(2026, time.March, 12), today, false, 17)
	assert.NoError(t, err)
}

// Checks run in a fixed order; a request failing several rules reports only
// the first.
func TestAdmissionValidator_ChecksShortCircuitInOrder(t *testing.T) {
	t.Parallel()
	v := NewAdmissionValidator()
	today := date(2026, time.March, 1)

	// Inactive wins over everything else.
	p := sickPolicy()
	p.IsActive = false
	err := v.Evaluate(p, date(2026, time.March, 2), date(2026, time.March, 10), today, false, 100)
	assert.ErrorIs(t, err, leave.ErrPolicyInactive)

	// Invalid range wins over notice.
	err = v.Evaluate(annualPolicy(), date(2026, time.March, 2), date(2026, time.March, 1), today, false, 0)
	assert.ErrorIs(t, err, leave.ErrInvalidDateRange)

	// Notice wins over missing document.
	p = sickPolicy()
	p.NoticePeriodDays = 5
	err = v.Evaluate(p, date(2026, time.March, 2), date(2026, time.March, 10), today, false, 0)
	var noticeErr *leave.NoticeTooShortError
	assert.ErrorAs(t, err, &noticeErr)

	// Missing document wins over quota.
	err = v.Evaluate(sickPolicy(), date(2026, time.March, 10), date(2026, time.March, 20), today, false, 14)
	var docErr *leave.DocumentRequiredError
	assert.ErrorAs(t, err, &docErr)
}
