package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/peoplehub/leave-backend-go/internal/domain/policy"
	"github.com/peoplehub/leave-backend-go/internal/handler/http/response"
)

type PolicyHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	ListActive(w http.ResponseWriter, r *http.Request)
	History(w http.ResponseWriter, r *http.Request)
	HistoryByPolicy(w http.ResponseWriter, r *http.Request)
}

type PolicyHandlerImpl struct {
	policyService policy.Service
}

func NewPolicyHandler(policyService policy.Service) PolicyHandler {
	return &PolicyHandlerImpl{policyService: policyService}
}

// Create implements PolicyHandler. The created policy gets snapshot v1.
func (h *PolicyHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req policy.CreatePolicyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreatePolicy decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	created, err := h.policyService.Create(r.Context(), req, actor)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Leave policy created successfully", policy.ToPolicyResponse(created))
}

// Update implements PolicyHandler. Every update appends the next snapshot.
func (h *PolicyHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req policy.UpdatePolicyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdatePolicy decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	updated, err := h.policyService.Update(r.Context(), req, actor)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave policy updated successfully", policy.ToPolicyResponse(updated))
}

// Get implements PolicyHandler.
func (h *PolicyHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	policyID := chi.URLParam(r, "id")
	if policyID == "" {
		response.BadRequest(w, "Policy ID is required", nil)
		return
	}

	p, err := h.policyService.GetByID(r.Context(), policyID, actor)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, policy.ToPolicyResponse(p))
}

// List implements PolicyHandler.
func (h *PolicyHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	policies, err := h.policyService.List(r.Context(), actor)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, policy.ToPolicyResponses(policies))
}

// ListActive implements PolicyHandler - the policies the actor's organization
// currently accepts submissions against.
func (h *PolicyHandlerImpl) ListActive(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	policies, err := h.policyService.ListActive(r.Context(), actor)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, policy.ToPolicyResponses(policies))
}

// History implements PolicyHandler - snapshots across the actor's scope,
// newest first.
func (h *PolicyHandlerImpl) History(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	snapshots, err := h.policyService.History(r.Context(), actor)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, policy.ToSnapshotResponses(snapshots))
}

// HistoryByPolicy implements PolicyHandler.
func (h *PolicyHandlerImpl) HistoryByPolicy(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	policyID := chi.URLParam(r, "id")
	if policyID == "" {
		response.BadRequest(w, "Policy ID is required", nil)
		return
	}

	snapshots, err := h.policyService.HistoryByPolicy(r.Context(), policyID, actor)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, policy.ToSnapshotResponses(snapshots))
}
