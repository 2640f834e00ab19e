package handler

import (
	"net/http"

	"github.com/osse101/IdleSect_Go/internal/domain"
	"github.com/osse101/IdleSect_Go/internal/reward"
)

type RewardHandler struct {
	service reward.Service
}

func NewRewardHandler(service reward.Service) *RewardHandler {
	return &RewardHandler{service: service}
}

type ClaimRewardRequest struct {
	UserID     string `json:"user_id" validate:"required,uuid"`
	SourceKind string `json:"source_kind" validate:"required,source_kind"`
	Key        string `json:"key" validate:"required,max=128"`
}

// HandleClaimReward grants a catalog reward at most once per key
func (h *RewardHandler) HandleClaimReward(w http.ResponseWriter, r *http.Request) {
	var req ClaimRewardRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Claim reward"); err != nil {
		return
	}

	outcome, state, err := h.service.Claim(r.Context(), req.UserID, domain.SourceKind(req.SourceKind), req.Key)
	if err != nil {
		respondServiceError(w, r, "claim reward", err)
		return
	}

	respondJSON(w, http.StatusOK, ClaimOutcomeResponse{Outcome: outcome, State: state})
}

// HandleListRewards lists the catalog entries for a source kind
func (h *RewardHandler) HandleListRewards(w http.ResponseWriter, r *http.Request) {
	kind, ok := GetQueryParam(r, w, "source_kind")
	if !ok {
		return
	}
	if !domain.IsValidSourceKind(domain.SourceKind(kind)) {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequestError)
		return
	}

	respondJSON(w, http.StatusOK, DataResponse{Data: h.service.List(domain.SourceKind(kind))})
}
