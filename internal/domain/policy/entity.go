package policy

import (
	"fmt"
	"strings"
	"time"
)

type PolicyType string

const (
	PolicyTypeAnnual PolicyType = "ANNUAL"
	PolicyTypeSick   PolicyType = "SICK"
	PolicyTypeCasual PolicyType = "CASUAL"
	PolicyTypeUnpaid PolicyType = "UNPAID"
)

// ValidPolicyType reports whether t is one of the closed policy type set.
func ValidPolicyType(t PolicyType) bool {
	switch t {
	case PolicyTypeAnnual, PolicyTypeSick, PolicyTypeCasual, PolicyTypeUnpaid:
		return true
	}
	return false
}

// Policy is an organization-scoped rule set for one leave type. Identity is
// (organization, name, policy type). Every mutation is paired with a snapshot
// append, so the rules in force at any point stay reconstructable.
type Policy struct {
	ID             string
	OrganizationID string
	Name           string
	PolicyType     PolicyType
	Description    string

	MaxDaysPerYear    int
	CarryForwardDays  int
	RequiresDocument  bool
	MaxDaysWithoutDoc int
	NoticePeriodDays  int
	AllowEncashment   bool
	EncashmentLimit   int

	IsActive  bool
	CreatedBy *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Snapshot is an immutable, versioned copy of a policy's full field set at the
// moment of a change. Versions are contiguous per policy, starting at 1.
type Snapshot struct {
	ID       string
	PolicyID string
	Version  int

	Name        string
	PolicyType  PolicyType
	Description string

	MaxDaysPerYear    int
	CarryForwardDays  int
	RequiresDocument  bool
	MaxDaysWithoutDoc int
	NoticePeriodDays  int
	AllowEncashment   bool
	EncashmentLimit   int
	IsActive          bool

	ChangedBy string
	ChangedAt time.Time
}

// Render produces the fixed human-readable form of the snapshot, one field per
// line. The output is deterministic for a given snapshot.
func (s Snapshot) Render() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Name: %s\n", s.Name)
	fmt.Fprintf(&b, "Type: %s\n", s.PolicyType)
	fmt.Fprintf(&b, "Description: %s\n", s.Description)
	fmt.Fprintf(&b, "Max Days/Year: %d\n", s.MaxDaysPerYear)
	fmt.Fprintf(&b, "Carry Forward Days: %d\n", s.CarryForwardDays)
	fmt.Fprintf(&b, "Requires Document: %t\n", s.RequiresDocument)
	fmt.Fprintf(&b, "Max Days Without Doc: %d\n", s.MaxDaysWithoutDoc)
	fmt.Fprintf(&b, "Notice Period Days: %d\n", s.NoticePeriodDays)
	fmt.Fprintf(&b, "Allow Encashment: %t\n", s.AllowEncashment)
	fmt.Fprintf(&b, "Encashment Limit: %d\n", s.EncashmentLimit)
	fmt.Fprintf(&b, "Is Active: %t\n", s.IsActive)
	fmt.Fprintf(&b, "Changed By: %s\n", s.ChangedBy)
	return b.String()
}
