package leave

import (
	"context"
	"fmt"
	"time"

	"github.com/peoplehub/leave-backend-go/internal/domain/employee"
	"github.com/peoplehub/leave-backend-go/internal/domain/leave"
	"github.com/peoplehub/leave-backend-go/internal/domain/organization"
	"github.com/peoplehub/leave-backend-go/internal/domain/policy"
	"github.com/peoplehub/leave-backend-go/internal/domain/user"
)

// Service orchestrates admission validation, the lifecycle state machine and
// persistence for leave requests.
type Service struct {
	organizations organization.Repository
	employees     employee.Repository
	policies      policy.Repository
	requests      leave.LeaveRequestRepository

	quota     *QuotaCalculator
	admission *AdmissionValidator
	fsm       StateMachine
}

func NewService(
	organizations organization.Repository,
	employees employee.Repository,
	policies policy.Repository,
	requests leave.LeaveRequestRepository,
) *Service {
	return &Service{
		organizations: organizations,
		employees:     employees,
		policies:      policies,
		requests:      requests,
		quota:         NewQuotaCalculator(requests),
		admission:     NewAdmissionValidator(),
	}
}

// Submit validates the draft against the target policy and, on acceptance,
// creates the request in Pending. The quota read and the insert share one
// transaction serialized per (employee, policy, year), so concurrent
// submissions cannot both pass the quota check on a stale count. Rejection
// leaves no record behind.
func (s *Service) Submit(ctx context.Context, draft leave.SubmitDraft, actor user.Actor) (leave.LeaveRequest, error) {
	emp, err := s.employees.GetByUserID(ctx, actor.UserID)
	if err != nil {
		return leave.LeaveRequest{}, err
	}

	org, err := s.organizations.GetByID(ctx, emp.OrganizationID)
	if err != nil {
		return leave.LeaveRequest{}, err
	}
	if !org.IsActive {
		return leave.LeaveRequest{}, organization.ErrOrganizationInactive
	}

	pol, err := s.policies.GetByID(ctx, draft.PolicyID)
	if err != nil {
		return leave.LeaveRequest{}, err
	}
	if pol.OrganizationID != emp.OrganizationID {
		return leave.LeaveRequest{}, policy.ErrPolicyNotFound
	}

	// "Today" in the organization's timezone, as a midnight-UTC date to
	// match the request's date fields.
	now := time.Now().In(org.Location())
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	year := today.Year()

	var created leave.LeaveRequest
	err = s.requests.WithQuotaLock(ctx, emp.ID, pol.ID, year, func(ctx context.Context) error {
		usedDays, err := s.quota.UsedDays(ctx, emp.ID, pol.ID, year)
		if err != nil {
			return err
		}

		hasAttachment := draft.AttachmentURL != nil
		if err := s.admission.Evaluate(pol, draft.StartDate, draft.EndDate, today, hasAttachment, usedDays); err != nil {
			return err
		}

		created, err = s.requests.Create(ctx, leave.LeaveRequest{
			OrganizationID: emp.OrganizationID,
			EmployeeID:     emp.ID,
			UserID:         actor.UserID,
			PolicyID:       pol.ID,
			StartDate:      draft.StartDate,
			EndDate:        draft.EndDate,
			Reason:         draft.Reason,
			AttachmentURL:  draft.AttachmentURL,
			Status:         leave.StatusPending,
		})
		if err != nil {
			return fmt.Errorf("failed to create leave request: %w", err)
		}
		return nil
	})
	if err != nil {
		return leave.LeaveRequest{}, err
	}

	return created, nil
}

// Transition moves a Pending request to a terminal state. The persisted
// update is a compare-and-set on the Pending status, so of two concurrent
// reviewer actions only one succeeds; the other observes an already
// processed request.
func (s *Service) Transition(ctx context.Context, requestID string, action leave.Action, remarks string, actor user.Actor) (leave.LeaveRequest, error) {
	lr, err := s.requests.GetByID(ctx, requestID)
	if err != nil {
		return leave.LeaveRequest{}, err
	}

	if err := s.fsm.Transition(&lr, action, actor.UserID, remarks, time.Now()); err != nil {
		return leave.LeaveRequest{}, err
	}

	updated, err := s.requests.UpdateStatus(ctx, requestID, lr.Status, actor.UserID, remarks)
	if err != nil {
		return leave.LeaveRequest{}, err
	}

	return updated, nil
}

func (s *Service) GetByID(ctx context.Context, id string, actor user.Actor) (leave.LeaveRequest, error) {
	lr, err := s.requests.GetByID(ctx, id)
	if err != nil {
		return leave.LeaveRequest{}, err
	}
	if !actor.SameOrganization(lr.OrganizationID) {
		return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
	}
	return lr, nil
}

// History returns the acting employee's own requests, newest first.
func (s *Service) History(ctx context.Context, actor user.Actor) ([]leave.LeaveRequest, error) {
	emp, err := s.employees.GetByUserID(ctx, actor.UserID)
	if err != nil {
		return nil, err
	}
	return s.requests.ListByEmployee(ctx, emp.ID)
}

// ListForOrganization returns every request in the actor's organization,
// newest first.
func (s *Service) ListForOrganization(ctx context.Context, actor user.Actor) ([]leave.LeaveRequest, error) {
	if actor.OrganizationID == nil {
		return nil, user.ErrOrganizationRequired
	}
	return s.requests.ListByOrganization(ctx, *actor.OrganizationID)
}
