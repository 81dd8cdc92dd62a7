package fixtures

import "github.com/peoplehub/leave-backend-go/internal/domain/policy"

// DefaultLeavePolicies returns the starter policy set for a new organization.
// Creating them through the policy service gives each its version 1 snapshot.
func DefaultLeavePolicies() []policy.CreatePolicyRequest {
	return []policy.CreatePolicyRequest{
		{
			Name:             "Annual Leave",
			PolicyType:       string(policy.PolicyTypeAnnual),
			Description:      "Paid annual leave",
			MaxDaysPerYear:   20,
			CarryForwardDays: 5,
			NoticePeriodDays: 5,
			AllowEncashment:  true,
			EncashmentLimit:  10,
		},
		{
			Name:              "Sick Leave",
			PolicyType:        string(policy.PolicyTypeSick),
			Description:       "Paid sick leave, medical proof required for longer absences",
			MaxDaysPerYear:    14,
			RequiresDocument:  true,
			MaxDaysWithoutDoc: 3,
		},
		{
			Name:             "Casual Leave",
			PolicyType:       string(policy.PolicyTypeCasual),
			Description:      "Short-notice personal leave",
			MaxDaysPerYear:   7,
			NoticePeriodDays: 1,
		},
		{
			Name:           "Unpaid Leave",
			PolicyType:     string(policy.PolicyTypeUnpaid),
			Description:    "Unpaid leave of absence",
			MaxDaysPerYear: 30,
		},
	}
}
