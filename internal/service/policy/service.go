package policy

import (
	"context"
	"fmt"

	"github.com/peoplehub/leave-backend-go/internal/domain/organization"
	"github.com/peoplehub/leave-backend-go/internal/domain/policy"
	"github.com/peoplehub/leave-backend-go/internal/domain/user"
)

// Service implements policy management. Every create or update appends
// exactly one snapshot, in the same transaction as the policy write.
type Service struct {
	tx            policy.TxManager
	policies      policy.Repository
	snapshots     policy.SnapshotRepository
	organizations organization.Repository
	versioner     *Versioner
}

func NewService(
	tx policy.TxManager,
	policies policy.Repository,
	snapshots policy.SnapshotRepository,
	organizations organization.Repository,
) *Service {
	return &Service{
		tx:            tx,
		policies:      policies,
		snapshots:     snapshots,
		organizations: organizations,
		versioner:     NewVersioner(snapshots),
	}
}

// resolveOrganization picks the organization the policy belongs to: HR always
// operates on their own organization, SUPERADMIN names one explicitly.
func (s *Service) resolveOrganization(ctx context.Context, requested string, actor user.Actor) (string, error) {
	orgID := requested
	if !actor.IsSuperAdmin() {
		if actor.OrganizationID == nil {
			return "", user.ErrOrganizationRequired
		}
		orgID = *actor.OrganizationID
	}
	if orgID == "" {
		return "", user.ErrOrganizationRequired
	}

	if _, err := s.organizations.GetByID(ctx, orgID); err != nil {
		return "", err
	}
	return orgID, nil
}

func (s *Service) Create(ctx context.Context, req policy.CreatePolicyRequest, actor user.Actor) (policy.Policy, error) {
	orgID, err := s.resolveOrganization(ctx, req.OrganizationID, actor)
	if err != nil {
		return policy.Policy{}, err
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	p := policy.Policy{
		OrganizationID:    orgID,
		Name:              req.Name,
		PolicyType:        policy.PolicyType(req.PolicyType),
		Description:       req.Description,
		MaxDaysPerYear:    req.MaxDaysPerYear,
		CarryForwardDays:  req.CarryForwardDays,
		RequiresDocument:  req.RequiresDocument,
		MaxDaysWithoutDoc: req.MaxDaysWithoutDoc,
		NoticePeriodDays:  req.NoticePeriodDays,
		AllowEncashment:   req.AllowEncashment,
		EncashmentLimit:   req.EncashmentLimit,
		IsActive:          isActive,
		CreatedBy:         &actor.UserID,
	}

	err = s.tx.InTx(ctx, func(ctx context.Context) error {
		created, err := s.policies.Create(ctx, p)
		if err != nil {
			return err
		}
		p = created

		// Initial snapshot, version 1.
		if _, err := s.versioner.Snapshot(ctx, p, actor.UserID); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return policy.Policy{}, err
	}

	return p, nil
}

func (s *Service) Update(ctx context.Context, req policy.UpdatePolicyRequest, actor user.Actor) (policy.Policy, error) {
	var updated policy.Policy

	err := s.tx.InTx(ctx, func(ctx context.Context) error {
		p, err := s.policies.GetByID(ctx, req.ID)
		if err != nil {
			return err
		}
		if !actor.SameOrganization(p.OrganizationID) {
			return policy.ErrPolicyNotFound
		}

		applyPolicyUpdate(&p, req)

		p, err = s.policies.Update(ctx, p)
		if err != nil {
			return fmt.Errorf("failed to update leave policy: %w", err)
		}

		if _, err := s.versioner.Snapshot(ctx, p, actor.UserID); err != nil {
			return err
		}

		updated = p
		return nil
	})
	if err != nil {
		return policy.Policy{}, err
	}

	return updated, nil
}

func applyPolicyUpdate(p *policy.Policy, req policy.UpdatePolicyRequest) {
	if req.Name != nil {
		p.Name = *req.Name
	}
	if req.Description != nil {
		p.Description = *req.Description
	}
	if req.MaxDaysPerYear != nil {
		p.MaxDaysPerYear = *req.MaxDaysPerYear
	}
	if req.CarryForwardDays != nil {
		p.CarryForwardDays = *req.CarryForwardDays
	}
	if req.RequiresDocument != nil {
		p.RequiresDocument = *req.RequiresDocument
	}
	if req.MaxDaysWithoutDoc != nil {
		p.MaxDaysWithoutDoc = *req.MaxDaysWithoutDoc
	}
	if req.NoticePeriodDays != nil {
		p.NoticePeriodDays = *req.NoticePeriodDays
	}
	if req.AllowEncashment != nil {
		p.AllowEncashment = *req.AllowEncashment
	}
	if req.EncashmentLimit != nil {
		p.EncashmentLimit = *req.EncashmentLimit
	}
	if req.IsActive != nil {
		p.IsActive = *req.IsActive
	}
}

func (s *Service) GetByID(ctx context.Context, id string, actor user.Actor) (policy.Policy, error) {
	p, err := s.policies.GetByID(ctx, id)
	if err != nil {
		return policy.Policy{}, err
	}
	if !actor.SameOrganization(p.OrganizationID) {
		return policy.Policy{}, policy.ErrPolicyNotFound
	}
	return p, nil
}

func (s *Service) List(ctx context.Context, actor user.Actor) ([]policy.Policy, error) {
	if actor.IsSuperAdmin() {
		return s.policies.ListAll(ctx)
	}
	if actor.OrganizationID == nil {
		return nil, user.ErrOrganizationRequired
	}
	return s.policies.ListByOrganization(ctx, *actor.OrganizationID)
}

// ListActive is the "my organization" view: the active policies an employee
// can submit leave against.
func (s *Service) ListActive(ctx context.Context, actor user.Actor) ([]policy.Policy, error) {
	if actor.IsSuperAdmin() {
		return s.policies.ListAllActive(ctx)
	}
	if actor.OrganizationID == nil {
		return nil, user.ErrOrganizationRequired
	}
	return s.policies.ListActiveByOrganization(ctx, *actor.OrganizationID)
}

func (s *Service) HistoryByPolicy(ctx context.Context, policyID string, actor user.Actor) ([]policy.Snapshot, error) {
	p, err := s.policies.GetByID(ctx, policyID)
	if err != nil {
		return nil, err
	}
	if !actor.SameOrganization(p.OrganizationID) {
		return nil, policy.ErrPolicyNotFound
	}
	return s.snapshots.ListByPolicy(ctx, p.ID)
}

// History lists snapshots newest first, scoped to the actor's organization;
// SUPERADMIN sees every organization.
func (s *Service) History(ctx context.Context, actor user.Actor) ([]policy.Snapshot, error) {
	if actor.IsSuperAdmin() {
		return s.snapshots.ListAll(ctx)
	}
	if actor.OrganizationID == nil {
		return nil, user.ErrOrganizationRequired
	}
	return s.snapshots.ListByOrganization(ctx, *actor.OrganizationID)
}
