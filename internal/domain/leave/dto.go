package leave

import (
	"time"

	"github.com/peoplehub/leave-backend-go/internal/pkg/validator"
)

type CreateLeaveRequestRequest struct {
	PolicyID      string  `json:"policy_id"`
	StartDate     string  `json:"start_date"`
	EndDate       string  `json:"end_date"`
	Reason        string  `json:"reason"`
	AttachmentURL *string `json:"attachment_url,omitempty"`
}

func (r *CreateLeaveRequestRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.PolicyID) {
		errs = append(errs, validator.ValidationError{
			Field:   "policy_id",
			Message: "policy_id is required",
		})
	} else if !validator.IsValidUUID(r.PolicyID) {
		errs = append(errs, validator.ValidationError{
			Field:   "policy_id",
			Message: "policy_id must be a valid UUID",
		})
	}

	start, ok := validator.IsValidDate(r.StartDate)
	if !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be a valid date (YYYY-MM-DD)",
		})
	}
	end, ok := validator.IsValidDate(r.EndDate)
	if !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be a valid date (YYYY-MM-DD)",
		})
	} else if !start.IsZero() && end.Before(start) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must not be before start_date",
		})
	}

	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type TransitionLeaveRequest struct {
	ID      string `json:"-"`
	Action  string `json:"action"`
	Remarks string `json:"remarks,omitempty"`
}

func (r *TransitionLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_request_id",
			Message: "leave_request_id is required",
		})
	}

	if _, ok := Action(r.Action).TargetStatus(); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "action",
			Message: "action must be one of approve, reject, cancel",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type LeaveRequestResponse struct {
	ID             string  `json:"id"`
	OrganizationID string  `json:"organization_id"`
	EmployeeID     string  `json:"employee_id"`
	PolicyID       string  `json:"policy_id"`
	StartDate      string  `json:"start_date"`
	EndDate        string  `json:"end_date"`
	DaysRequested  int     `json:"days_requested"`
	Reason         string  `json:"reason"`
	AttachmentURL  *string `json:"attachment_url,omitempty"`
	Status         string  `json:"status"`
	ReviewedBy     *string `json:"reviewed_by,omitempty"`
	Remarks        *string `json:"remarks,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func ToLeaveRequestResponse(lr LeaveRequest) LeaveRequestResponse {
	return LeaveRequestResponse{
		ID:             lr.ID,
		OrganizationID: lr.OrganizationID,
		EmployeeID:     lr.EmployeeID,
		PolicyID:       lr.PolicyID,
		StartDate:      lr.StartDate.Format("2006-01-02"),
		EndDate:        lr.EndDate.Format("2006-01-02"),
		DaysRequested:  lr.DaysRequested(),
		Reason:         lr.Reason,
		AttachmentURL:  lr.AttachmentURL,
		Status:         string(lr.Status),
		ReviewedBy:     lr.ReviewedBy,
		Remarks:        lr.Remarks,
		CreatedAt:      lr.CreatedAt,
		UpdatedAt:      lr.UpdatedAt,
	}
}

func ToLeaveRequestResponses(requests []LeaveRequest) []LeaveRequestResponse {
	out := make([]LeaveRequestResponse, 0, len(requests))
	for _, lr := range requests {
		out = append(out, ToLeaveRequestResponse(lr))
	}
	return out
}
