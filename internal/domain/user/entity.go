package user

type Role string

const (
	RoleSuperAdmin Role = "SUPERADMIN" // Platform admin - all organizations
	RoleHR         Role = "HR"         // Manages policies and reviews leave for their organization
	RoleEmployee   Role = "EMPLOYEE"   // Submits leave, reads own records
)

// Actor is the authenticated identity attached to every operation. Identity
// and token issuance live outside this service; the actor arrives as claims
// and is treated as a given fact.
type Actor struct {
	UserID         string
	Role           Role
	OrganizationID *string // nil only for SUPERADMIN
	EmployeeID     *string // nil when the account has no employee profile
}

func (a Actor) IsSuperAdmin() bool {
	return a.Role == RoleSuperAdmin
}

func (a Actor) IsHR() bool {
	return a.Role == RoleHR
}

// SameOrganization reports whether the actor belongs to the given organization.
// SUPERADMIN is scoped to every organization.
func (a Actor) SameOrganization(organizationID string) bool {
	if a.IsSuperAdmin() {
		return true
	}
	return a.OrganizationID != nil && *a.OrganizationID == organizationID
}
