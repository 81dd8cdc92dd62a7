package response

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/peoplehub/leave-backend-go/internal/domain/employee"
	"github.com/peoplehub/leave-backend-go/internal/domain/leave"
	"github.com/peoplehub/leave-backend-go/internal/domain/organization"
	"github.com/peoplehub/leave-backend-go/internal/domain/policy"
	"github.com/peoplehub/leave-backend-go/internal/domain/user"
	"github.com/peoplehub/leave-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses. Admission rejections keep
// their parameters in the details map so clients can render or localize them.
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// Admission rejections carry structured parameters
	var noticeErr *leave.NoticeTooShortError
	if errors.As(err, &noticeErr) {
		BadRequest(w, noticeErr.Error(), map[string]string{
			"required_days": strconv.Itoa(noticeErr.RequiredDays),
			"given_days":    strconv.Itoa(noticeErr.GivenDays),
		})
		return
	}
	var docErr *leave.DocumentRequiredError
	if errors.As(err, &docErr) {
		BadRequest(w, docErr.Error(), map[string]string{
			"max_days_without_doc": strconv.Itoa(docErr.MaxDaysWithoutDoc),
			"days_requested":       strconv.Itoa(docErr.DaysRequested),
		})
		return
	}
	var quotaErr *leave.QuotaExceededError
	if errors.As(err, &quotaErr) {
		BadRequest(w, quotaErr.Error(), map[string]string{
			"used_days":      strconv.Itoa(quotaErr.UsedDays),
			"limit_days":     strconv.Itoa(quotaErr.LimitDays),
			"requested_days": strconv.Itoa(quotaErr.RequestedDays),
		})
		return
	}

	var transitionErr *leave.InvalidTransitionError
	if errors.As(err, &transitionErr) {
		Conflict(w, transitionErr.Error())
		return
	}

	switch {
	// Leave domain errors
	case errors.Is(err, leave.ErrPolicyInactive),
		errors.Is(err, leave.ErrInvalidDateRange),
		errors.Is(err, leave.ErrInvalidAction):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, leave.ErrAlreadyProcessed):
		Conflict(w, "Leave request already processed")
	case errors.Is(err, leave.ErrLeaveRequestNotFound):
		NotFound(w, "Leave request not found")

	// Policy domain errors
	case errors.Is(err, policy.ErrPolicyNotFound):
		NotFound(w, "Leave policy not found")
	case errors.Is(err, policy.ErrPolicyExists):
		Conflict(w, "Leave policy already exists for this organization, name and type")
	case errors.Is(err, policy.ErrSnapshotConflict):
		Conflict(w, "Concurrent policy change, please retry")
	case errors.Is(err, policy.ErrInvalidPolicyType):
		BadRequest(w, err.Error(), nil)

	// Collaborator lookups
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, organization.ErrOrganizationNotFound):
		NotFound(w, "Organization not found")
	case errors.Is(err, organization.ErrOrganizationInactive):
		Forbidden(w, "Organization is not active")

	// Actor errors
	case errors.Is(err, user.ErrInvalidToken):
		Unauthorized(w, "Invalid or missing token")
	case errors.Is(err, user.ErrPermissionRequired):
		Forbidden(w, "Insufficient permissions")
	case errors.Is(err, user.ErrOrganizationRequired):
		Forbidden(w, "Actor has no organization")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
