package policy

import (
	"time"

	"github.com/peoplehub/leave-backend-go/internal/pkg/validator"
)

type CreatePolicyRequest struct {
	OrganizationID string `json:"organization_id,omitempty"`
	Name           string `json:"name"`
	PolicyType     string `json:"policy_type"`
	Description    string `json:"description,omitempty"`

	MaxDaysPerYear    int  `json:"max_days_per_year"`
	CarryForwardDays  int  `json:"carry_forward_days"`
	RequiresDocument  bool `json:"requires_document"`
	MaxDaysWithoutDoc int  `json:"max_days_without_doc"`
	NoticePeriodDays  int  `json:"notice_period_days"`
	AllowEncashment   bool `json:"allow_encashment"`
	EncashmentLimit   int  `json:"encashment_limit"`

	IsActive *bool `json:"is_active,omitempty"`
}

func (r *CreatePolicyRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if len(r.Name) > 200 {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not exceed 200 characters",
		})
	}

	if !ValidPolicyType(PolicyType(r.PolicyType)) {
		errs = append(errs, validator.ValidationError{
			Field:   "policy_type",
			Message: "policy_type must be one of ANNUAL, SICK, CASUAL, UNPAID",
		})
	}

	if r.MaxDaysPerYear < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "max_days_per_year",
			Message: "max_days_per_year must not be negative",
		})
	}
	if r.CarryForwardDays < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "carry_forward_days",
			Message: "carry_forward_days must not be negative",
		})
	}
	if r.MaxDaysWithoutDoc < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "max_days_without_doc",
			Message: "max_days_without_doc must not be negative",
		})
	}
	if r.NoticePeriodDays < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "notice_period_days",
			Message: "notice_period_days must not be negative",
		})
	}
	if r.EncashmentLimit < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "encashment_limit",
			Message: "encashment_limit must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdatePolicyRequest struct {
	ID          string  `json:"-"`
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`

	MaxDaysPerYear    *int  `json:"max_days_per_year,omitempty"`
	CarryForwardDays  *int  `json:"carry_forward_days,omitempty"`
	RequiresDocument  *bool `json:"requires_document,omitempty"`
	MaxDaysWithoutDoc *int  `json:"max_days_without_doc,omitempty"`
	NoticePeriodDays  *int  `json:"notice_period_days,omitempty"`
	AllowEncashment   *bool `json:"allow_encashment,omitempty"`
	EncashmentLimit   *int  `json:"encashment_limit,omitempty"`

	IsActive *bool `json:"is_active,omitempty"`
}

func (r *UpdatePolicyRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "policy_id",
			Message: "policy_id is required",
		})
	} else if !validator.IsValidUUID(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "policy_id",
			Message: "policy_id must be a valid UUID",
		})
	}

	if r.Name != nil {
		if validator.IsEmpty(*r.Name) {
			errs = append(errs, validator.ValidationError{
				Field:   "name",
				Message: "name must not be empty",
			})
		}
		if len(*r.Name) > 200 {
			errs = append(errs, validator.ValidationError{
				Field:   "name",
				Message: "name must not exceed 200 characters",
			})
		}
	}

	for field, v := range map[string]*int{
		"max_days_per_year":    r.MaxDaysPerYear,
		"carry_forward_days":   r.CarryForwardDays,
		"max_days_without_doc": r.MaxDaysWithoutDoc,
		"notice_period_days":   r.NoticePeriodDays,
		"encashment_limit":     r.EncashmentLimit,
	} {
		if v != nil && *v < 0 {
			errs = append(errs, validator.ValidationError{
				Field:   field,
				Message: field + " must not be negative",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type PolicyResponse struct {
	ID             string `json:"id"`
	OrganizationID string `json:"organization_id"`
	Name           string `json:"name"`
	PolicyType     string `json:"policy_type"`
	Description    string `json:"description,omitempty"`

	MaxDaysPerYear    int  `json:"max_days_per_year"`
	CarryForwardDays  int  `json:"carry_forward_days"`
	RequiresDocument  bool `json:"requires_document"`
	MaxDaysWithoutDoc int  `json:"max_days_without_doc"`
	NoticePeriodDays  int  `json:"notice_period_days"`
	AllowEncashment   bool `json:"allow_encashment"`
	EncashmentLimit   int  `json:"encashment_limit"`

	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func ToPolicyResponse(p Policy) PolicyResponse {
	return PolicyResponse{
		ID:                p.ID,
		OrganizationID:    p.OrganizationID,
		Name:              p.Name,
		PolicyType:        string(p.PolicyType),
		Description:       p.Description,
		MaxDaysPerYear:    p.MaxDaysPerYear,
		CarryForwardDays:  p.CarryForwardDays,
		RequiresDocument:  p.RequiresDocument,
		MaxDaysWithoutDoc: p.MaxDaysWithoutDoc,
		NoticePeriodDays:  p.NoticePeriodDays,
		AllowEncashment:   p.AllowEncashment,
		EncashmentLimit:   p.EncashmentLimit,
		IsActive:          p.IsActive,
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
}

func ToPolicyResponses(policies []Policy) []PolicyResponse {
	out := make([]PolicyResponse, 0, len(policies))
	for _, p := range policies {
		out = append(out, ToPolicyResponse(p))
	}
	return out
}

type SnapshotResponse struct {
	ID        string    `json:"id"`
	PolicyID  string    `json:"policy_id"`
	Version   int       `json:"version"`
	Snapshot  string    `json:"snapshot"`
	ChangedBy string    `json:"changed_by"`
	ChangedAt time.Time `json:"changed_at"`
}

func ToSnapshotResponse(s Snapshot) SnapshotResponse {
	return SnapshotResponse{
		ID:        s.ID,
		PolicyID:  s.PolicyID,
		Version:   s.Version,
		Snapshot:  s.Render(),
		ChangedBy: s.ChangedBy,
		ChangedAt: s.ChangedAt,
	}
}

func ToSnapshotResponses(snapshots []Snapshot) []SnapshotResponse {
	out := make([]SnapshotResponse, 0, len(snapshots))
	for _, s := range snapshots {
		out = append(out, ToSnapshotResponse(s))
	}
	return out
}
