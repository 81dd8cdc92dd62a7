package leave

import (
	"time"

	"github.com/peoplehub/leave-backend-go/internal/domain/leave"
	"github.com/peoplehub/leave-backend-go/internal/domain/policy"
)

// AdmissionValidator decides whether a leave request may be created under a
// policy. Checks run in a fixed order and short-circuit on the first failure:
// policy active, day count, notice period, document requirement, annual quota.
// Evaluation has no side effects; acceptance only licenses record creation.
type AdmissionValidator struct{}

func NewAdmissionValidator() *AdmissionValidator {
	return &AdmissionValidator{}
}

// Evaluate returns nil on acceptance or a structured rejection error. All
// inputs are dates at midnight UTC; usedDays is the caller's pre-read of the
// committed-day total (Pending plus Approved) for the target year, taken
// under the quota lock.
func (v *AdmissionValidator) Evaluate(p policy.Policy, startDate, endDate, today time.Time, hasAttachment bool, usedDays int) error {
	if !p.IsActive {
		return leave.ErrPolicyInactive
	}

	daysRequested := leave.DaysBetween(startDate, endDate)
	if daysRequested < 1 {
		return leave.ErrInvalidDateRange
	}

	noticeDays := int(startDate.Sub(today).Hours() / 24)
	if noticeDays < p.NoticePeriodDays {
		return &leave.NoticeTooShortError{
			RequiredDays: p.NoticePeriodDays,
			GivenDays:    noticeDays,
		}
	}

	if p.RequiresDocument && daysRequested > p.MaxDaysWithoutDoc && !hasAttachment {
		return &leave.DocumentRequiredError{
			MaxDaysWithoutDoc: p.MaxDaysWithoutDoc,
			DaysRequested:     daysRequested,
		}
	}

	if usedDays+daysRequested > p.MaxDaysPerYear {
		return &leave.QuotaExceededError{
			UsedDays:      usedDays,
			LimitDays:     p.MaxDaysPerYear,
			RequestedDays: daysRequested,
		}
	}

	return nil
}
