package handler

import (
	"encoding/json"
	"net/http"

	"github.com/launchdeck/launchdeck/internal/application/notifier"
	"github.com/launchdeck/launchdeck/internal/domain"
	"github.com/launchdeck/launchdeck/internal/pkg/validate"
)

// HookHandler receives document-creation events from the trigger-delivery
// infrastructure and hands them to the notifier. Delivery is at-least-once;
// the response is sent only after the decision is persisted, so the sender
// can retry failures.
type HookHandler struct {
	svc notifier.Service
}

func NewHookHandler(svc notifier.Service) *HookHandler {
	return &HookHandler{svc: svc}
}

func (h *HookHandler) CommentCreated(w http.ResponseWriter, r *http.Request) {
	var req domain.CommentCreatedRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	evt := domain.Event{
		Kind:      domain.EventComment,
		ProductID: req.ProductID,
		ActorID:   req.UserID,
		Actor:     req.UserInfo,
	}
	if err := h.svc.HandleEvent(r.Context(), evt); err != nil {
		httpError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *HookHandler) UpvoteCreated(w http.ResponseWriter, r *http.Request) {
	var req domain.UpvoteCreatedRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	evt := domain.Event{
		Kind:      domain.EventUpvote,
		ProductID: req.ProductID,
		ActorID:   req.UserID,
		Actor:     req.UserInfo,
	}
	if err := h.svc.HandleEvent(r.Context(), evt); err != nil {
		httpError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
