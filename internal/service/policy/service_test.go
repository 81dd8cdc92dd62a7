package policy

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peoplehub/leave-backend-go/internal/domain/organization"
	"github.com/peoplehub/leave-backend-go/internal/domain/policy"
	"github.com/peoplehub/leave-backend-go/internal/domain/user"
)

// In-memory collaborators. The snapshot fake mirrors the storage contract:
// versions are assigned on append, contiguous per policy, listings newest
// first.

type passthroughTx struct{}

func (passthroughTx) InTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type memOrganizationRepo struct {
	orgs map[string]organization.Organization
}

func (m *memOrganizationRepo) GetByID(_ context.Context, id string) (organization.Organization, error) {
	org, ok := m.orgs[id]
	if !ok {
		return organization.Organization{}, organization.ErrOrganizationNotFound
	}
	return org, nil
}

type memPolicyRepo struct {
	policies map[string]policy.Policy
	nextID   int
}

func (m *memPolicyRepo) Create(_ context.Context, p policy.Policy) (policy.Policy, error) {
	for _, existing := range m.policies {
		if existing.OrganizationID == p.OrganizationID && existing.Name == p.Name && existing.PolicyType == p.PolicyType {
			return policy.Policy{}, policy.ErrPolicyExists
		}
	}
	m.nextID++
	p.ID = fmt.Sprintf("pol-%d", m.nextID)
	p.CreatedAt = time.Now()
	p.UpdatedAt = p.CreatedAt
	m.policies[p.ID] = p
	return p, nil
}

func (m *memPolicyRepo) GetByID(_ context.Context, id string) (policy.Policy, error) {
	p, ok := m.policies[id]
	if !ok {
		return policy.Policy{}, policy.ErrPolicyNotFound
	}
	return p, nil
}

func (m *memPolicyRepo) GetActiveByOrgAndType(_ context.Context, organizationID string, policyType policy.PolicyType) (policy.Policy, error) {
	for _, p := range m.policies {
		if p.OrganizationID == organizationID && p.PolicyType == policyType && p.IsActive {
			return p, nil
		}
	}
	return policy.Policy{}, policy.ErrPolicyNotFound
}

func (m *memPolicyRepo) ListAll(_ context.Context) ([]policy.Policy, error) {
	var out []policy.Policy
	for _, p := range m.policies {
		out = append(out, p)
	}
	return out, nil
}

func (m *memPolicyRepo) ListAllActive(ctx context.Context) ([]policy.Policy, error) {
	all, _ := m.ListAll(ctx)
	var out []policy.Policy
	for _, p := range all {
		if p.IsActive {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *memPolicyRepo) ListByOrganization(_ context.Context, organizationID string) ([]policy.Policy, error) {
	var out []policy.Policy
	for _, p := range m.policies {
		if p.OrganizationID == organizationID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *memPolicyRepo) ListActiveByOrganization(ctx context.Context, organizationID string) ([]policy.Policy, error) {
	byOrg, _ := m.ListByOrganization(ctx, organizationID)
	var out []policy.Policy
	for _, p := range byOrg {
		if p.IsActive {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *memPolicyRepo) Update(_ context.Context, p policy.Policy) (policy.Policy, error) {
	if _, ok := m.policies[p.ID]; !ok {
		return policy.Policy{}, policy.ErrPolicyNotFound
	}
	p.UpdatedAt = time.Now()
	m.policies[p.ID] = p
	return p, nil
}

type memSnapshotRepo struct {
	snapshots []policy.Snapshot
	owners    map[string]string // policy ID -> organization ID
	nextID    int
}

func newMemSnapshotRepo() *memSnapshotRepo {
	return &memSnapshotRepo{owners: make(map[string]string)}
}

func (m *memSnapshotRepo) Append(_ context.Context, s policy.Snapshot) (policy.Snapshot, error) {
	version := 0
	for _, existing := range m.snapshots {
		if existing.PolicyID == s.PolicyID && existing.Version > version {
			version = existing.Version
		}
	}
	m.nextID++
	s.ID = fmt.Sprintf("snap-%d", m.nextID)
	s.Version = version + 1
	s.ChangedAt = time.Now()
	m.snapshots = append(m.snapshots, s)
	return s, nil
}

func (m *memSnapshotRepo) ListByPolicy(_ context.Context, policyID string) ([]policy.Snapshot, error) {
	var out []policy.Snapshot
	for i := len(m.snapshots) - 1; i >= 0; i-- {
		if m.snapshots[i].PolicyID == policyID {
			out = append(out, m.snapshots[i])
		}
	}
	return out, nil
}

func (m *memSnapshotRepo) ListByOrganization(_ context.Context, organizationID string) ([]policy.Snapshot, error) {
	var out []policy.Snapshot
	for i := len(m.snapshots) - 1; i >= 0; i-- {
		if m.owners[m.snapshots[i].PolicyID] == organizationID {
			out = append(out, m.snapshots[i])
		}
	}
	return out, nil
}

func (m *memSnapshotRepo) ListAll(_ context.Context) ([]policy.Snapshot, error) {
	var out []policy.Snapshot
	for i := len(m.snapshots) - 1; i >= 0; i-- {
		out = append(out, m.snapshots[i])
	}
	return out, nil
}

type policyFixture struct {
	svc       *Service
	policies  *memPolicyRepo
	snapshots *memSnapshotRepo
	hr        user.Actor
}

func newPolicyFixture() policyFixture {
	orgID := "org-1"
	orgs := &memOrganizationRepo{orgs: map[string]organization.Organization{
		orgID:  {ID: orgID, Name: "Acme", Code: "ACME", IsActive: true},
		"org-2": {ID: "org-2", Name: "Other", Code: "OTH", IsActive: true},
	}}
	policies := &memPolicyRepo{policies: make(map[string]policy.Policy)}
	snapshots := newMemSnapshotRepo()

	return policyFixture{
		svc:       NewService(passthroughTx{}, policies, snapshots, orgs),
		policies:  policies,
		snapshots: snapshots,
		hr:        user.Actor{UserID: "hr-1", Role: user.RoleHR, OrganizationID: &orgID},
	}
}

func createRequest() policy.CreatePolicyRequest {
	return policy.CreatePolicyRequest{
		Name:             "Annual Leave",
		PolicyType:       string(policy.PolicyTypeAnnual),
		MaxDaysPerYear:   20,
		NoticePeriodDays: 5,
	}
}

func TestPolicyService_Create_AppendsVersionOne(t *testing.T) {
	t.Parallel()
	f := newPolicyFixture()
	ctx := context.Background()

	created, err := f.svc.Create(ctx, createRequest(), f.hr)
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "org-1", created.OrganizationID)
	assert.True(t, created.IsActive)
	require.NotNil(t, created.CreatedBy)
	assert.Equal(t, "hr-1", *created.CreatedBy)

	history, err := f.svc.HistoryByPolicy(ctx, created.ID, f.hr)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, 1, history[0].Version)
	assert.Equal(t, "Annual Leave", history[0].Name)
	assert.Equal(t, "hr-1", history[0].ChangedBy)
}

func TestPolicyService_Update_VersionsStayContiguous(t *testing.T) {
	t.Parallel()
	f := newPolicyFixture()
	ctx := context.Background()

	created, err := f.svc.Create(ctx, createRequest(), f.hr)
	require.NoError(t, err)

	maxDays := 25
	_, err = f.svc.Update(ctx, policy.UpdatePolicyRequest{ID: created.ID, MaxDaysPerYear: &maxDays}, f.hr)
	require.NoError(t, err)

	notice := 3
	updated, err := f.svc.Update(ctx, policy.UpdatePolicyRequest{ID: created.ID, NoticePeriodDays: &notice}, f.hr)
	require.NoError(t, err)
	assert.Equal(t, 25, updated.MaxDaysPerYear)
	assert.Equal(t, 3, updated.NoticePeriodDays)

	history, err := f.svc.HistoryByPolicy(ctx, created.ID, f.hr)
	require.NoError(t, err)
	require.Len(t, history, 3)

	// Newest first, versions contiguous from 1.
	assert.Equal(t, 3, history[0].Version)
	assert.Equal(t, 2, history[1].Version)
	assert.Equal(t, 1, history[2].Version)

	// Each snapshot captures the state after its change.
	assert.Equal(t, 3, history[0].NoticePeriodDays)
	assert.Equal(t, 25, history[1].MaxDaysPerYear)
	assert.Equal(t, 5, history[2].NoticePeriodDays)
	assert.Equal(t, 20, history[2].MaxDaysPerYear)
}

func TestPolicyService_Update_OtherOrganizationIsNotFound(t *testing.T) {
	t.Parallel()
	f := newPolicyFixture()
	ctx := context.Background()

	created, err := f.svc.Create(ctx, createRequest(), f.hr)
	require.NoError(t, err)

	otherOrg := "org-2"
	outsider := user.Actor{UserID: "hr-2", Role: user.RoleHR, OrganizationID: &otherOrg}

	name := "Hijacked"
	_, err = f.svc.Update(ctx, policy.UpdatePolicyRequest{ID: created.ID, Name: &name}, outsider)
	assert.ErrorIs(t, err, policy.ErrPolicyNotFound)

	// No snapshot was appended for the failed update.
	history, err := f.svc.HistoryByPolicy(ctx, created.ID, f.hr)
	require.NoError(t, err)
	assert.Len(t, history, 1)
}

func TestPolicyService_Create_HROperatesOnOwnOrganization(t *testing.T) {
	t.Parallel()
	f := newPolicyFixture()

	// A requested organization ID is ignored for HR.
	req := createRequest()
	req.OrganizationID = "org-2"

	created, err := f.svc.Create(context.Background(), req, f.hr)
	require.NoError(t, err)
	assert.Equal(t, "org-1", created.OrganizationID)
}

func TestPolicyService_Create_DuplicateIdentityRejected(t *testing.T) {
	t.Parallel()
	f := newPolicyFixture()
	ctx := context.Background()

	_, err := f.svc.Create(ctx, createRequest(), f.hr)
	require.NoError(t, err)

	_, err = f.svc.Create(ctx, createRequest(), f.hr)
	assert.ErrorIs(t, err, policy.ErrPolicyExists)
}

func TestPolicyService_List_ScopedByRole(t *testing.T) {
	t.Parallel()
	f := newPolicyFixture()
	ctx := context.Background()

	_, err := f.svc.Create(ctx, createRequest(), f.hr)
	require.NoError(t, err)

	mine, err := f.svc.List(ctx, f.hr)
	require.NoError(t, err)
	assert.Len(t, mine, 1)

	otherOrg := "org-2"
	outsider := user.Actor{UserID: "hr-2", Role: user.RoleHR, OrganizationID: &otherOrg}
	theirs, err := f.svc.List(ctx, outsider)
	require.NoError(t, err)
	assert.Empty(t, theirs)

	superadmin := user.Actor{UserID: "root", Role: user.RoleSuperAdmin}
	all, err := f.svc.List(ctx, superadmin)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}
