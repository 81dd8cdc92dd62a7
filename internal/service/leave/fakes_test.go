package leave

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/peoplehub/leave-backend-go/internal/domain/employee"
	"github.com/peoplehub/leave-backend-go/internal/domain/leave"
	"github.com/peoplehub/leave-backend-go/internal/domain/organization"
	"github.com/peoplehub/leave-backend-go/internal/domain/policy"
)

// In-memory collaborators for service tests. The leave request fake mirrors
// the storage contract: CAS on UpdateStatus, per-key serialization in
// WithQuotaLock, committed (Pending plus Approved) day sums.

type fakeOrganizationRepo struct {
	orgs map[string]organization.Organization
}

func (f *fakeOrganizationRepo) GetByID(_ context.Context, id string) (organization.Organization, error) {
	org, ok := f.orgs[id]
	if !ok {
		return organization.Organization{}, organization.ErrOrganizationNotFound
	}
	return org, nil
}

type fakeEmployeeRepo struct {
	employees map[string]employee.Employee // keyed by user ID
}

func (f *fakeEmployeeRepo) GetByID(_ context.Context, id string) (employee.Employee, error) {
	for _, emp := range f.employees {
		if emp.ID == id {
			return emp, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) GetByUserID(_ context.Context, userID string) (employee.Employee, error) {
	emp, ok := f.employees[userID]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

type fakePolicyRepo struct {
	policies map[string]policy.Policy
}

func (f *fakePolicyRepo) Create(_ context.Context, p policy.Policy) (policy.Policy, error) {
	f.policies[p.ID] = p
	return p, nil
}

func (f *fakePolicyRepo) GetByID(_ context.Context, id string) (policy.Policy, error) {
	p, ok := f.policies[id]
	if !ok {
		return policy.Policy{}, policy.ErrPolicyNotFound
	}
	return p, nil
}

func (f *fakePolicyRepo) GetActiveByOrgAndType(_ context.Context, organizationID string, policyType policy.PolicyType) (policy.Policy, error) {
	for _, p := range f.policies {
		if p.OrganizationID == organizationID && p.PolicyType == policyType && p.IsActive {
			return p, nil
		}
	}
	return policy.Policy{}, policy.ErrPolicyNotFound
}

func (f *fakePolicyRepo) ListAll(_ context.Context) ([]policy.Policy, error) {
	var out []policy.Policy
	for _, p := range f.policies {
		out = append(out, p)
	}
	return out, nil
}

func (f *fakePolicyRepo) ListAllActive(ctx context.Context) ([]policy.Policy, error) {
	all, _ := f.ListAll(ctx)
	var out []policy.Policy
	for _, p := range all {
		if p.IsActive {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakePolicyRepo) ListByOrganization(_ context.Context, organizationID string) ([]policy.Policy, error) {
	var out []policy.Policy
	for _, p := range f.policies {
		if p.OrganizationID == organizationID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakePolicyRepo) ListActiveByOrganization(ctx context.Context, organizationID string) ([]policy.Policy, error) {
	byOrg, _ := f.ListByOrganization(ctx, organizationID)
	var out []policy.Policy
	for _, p := range byOrg {
		if p.IsActive {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakePolicyRepo) Update(_ context.Context, p policy.Policy) (policy.Policy, error) {
	if _, ok := f.policies[p.ID]; !ok {
		return policy.Policy{}, policy.ErrPolicyNotFound
	}
	f.policies[p.ID] = p
	return p, nil
}

type fakeLeaveRequestRepo struct {
	mu       sync.Mutex
	requests map[string]leave.LeaveRequest
	nextID   int

	lockMu sync.Mutex
	locks  map[string]*sync.Mutex
}

func newFakeLeaveRequestRepo() *fakeLeaveRequestRepo {
	return &fakeLeaveRequestRepo{
		requests: make(map[string]leave.LeaveRequest),
		locks:    make(map[string]*sync.Mutex),
	}
}

func (f *fakeLeaveRequestRepo) Create(_ context.Context, request leave.LeaveRequest) (leave.LeaveRequest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	request.ID = fmt.Sprintf("req-%d", f.nextID)
	request.CreatedAt = time.Now()
	request.UpdatedAt = request.CreatedAt
	f.requests[request.ID] = request
	return request, nil
}

func (f *fakeLeaveRequestRepo) GetByID(_ context.Context, id string) (leave.LeaveRequest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	lr, ok := f.requests[id]
	if !ok {
		return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
	}
	return lr, nil
}

func (f *fakeLeaveRequestRepo) ListByEmployee(_ context.Context, employeeID string) ([]leave.LeaveRequest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []leave.LeaveRequest
	for _, lr := range f.requests {
		if lr.EmployeeID == employeeID {
			out = append(out, lr)
		}
	}
	return out, nil
}

func (f *fakeLeaveRequestRepo) ListByOrganization(_ context.Context, organizationID string) ([]leave.LeaveRequest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []leave.LeaveRequest
	for _, lr := range f.requests {
		if lr.OrganizationID == organizationID {
			out = append(out, lr)
		}
	}
	return out, nil
}

func (f *fakeLeaveRequestRepo) SumCommittedDays(_ context.Context, employeeID, policyID string, year int) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	total := 0
	for _, lr := range f.requests {
		if lr.EmployeeID != employeeID || lr.PolicyID != policyID {
			continue
		}
		if lr.Status != leave.StatusPending && lr.Status != leave.StatusApproved {
			continue
		}
		if lr.StartDate.Year() != year || lr.EndDate.Year() != year {
			continue
		}
		total += lr.DaysRequested()
	}
	return total, nil
}

func (f *fakeLeaveRequestRepo) UpdateStatus(_ context.Context, id string, to leave.Status, reviewedBy string, remarks string) (leave.LeaveRequest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	lr, ok := f.requests[id]
	if !ok {
		return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
	}
	if lr.Status != leave.StatusPending {
		return leave.LeaveRequest{}, leave.ErrAlreadyProcessed
	}
	lr.Status = to
	lr.ReviewedBy = &reviewedBy
	lr.Remarks = &remarks
	lr.UpdatedAt = time.Now()
	f.requests[id] = lr
	return lr, nil
}

func (f *fakeLeaveRequestRepo) WithQuotaLock(ctx context.Context, employeeID, policyID string, year int, fn func(ctx context.Context) error) error {
	key := fmt.Sprintf("%s|%s|%d", employeeID, policyID, year)

	f.lockMu.Lock()
	lock, ok := f.locks[key]
	if !ok {
		lock = &sync.Mutex{}
		f.locks[key] = lock
	}
	f.lockMu.Unlock()

	lock.Lock()
	defer lock.Unlock()
	return fn(ctx)
}

func (f *fakeLeaveRequestRepo) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.requests)
}
