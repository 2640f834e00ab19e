package handler

import (
	"net/http"

	"github.com/osse101/IdleSect_Go/internal/domain"
	"github.com/osse101/IdleSect_Go/internal/ladder"
)

type LadderHandler struct {
	service ladder.Service
}

func NewLadderHandler(service ladder.Service) *LadderHandler {
	return &LadderHandler{service: service}
}

// ClaimOutcomeResponse wraps a ledger outcome with the credited state
type ClaimOutcomeResponse struct {
	Outcome domain.ClaimOutcome `json:"outcome"`
	State   *domain.PlayerState `json:"state,omitempty"`
}

// HandleDailySlots lists the daily ladder with per-player slot state
func (h *LadderHandler) HandleDailySlots(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetQueryParam(r, w, "user_id")
	if !ok {
		return
	}

	views, err := h.service.DailySlots(r.Context(), userID)
	if err != nil {
		respondServiceError(w, r, "list daily slots", err)
		return
	}

	respondJSON(w, http.StatusOK, DataResponse{Data: views})
}

type ClaimDailyRequest struct {
	UserID string `json:"user_id" validate:"required,uuid"`
	Day    int    `json:"day" validate:"required,min=1,max=7"`
}

// HandleClaimDaily claims a daily ladder slot
// @Summary Claim a daily ladder slot
// @Tags ladder
// @Accept json
// @Produce json
// @Success 200 {object} ClaimOutcomeResponse
// @Failure 403 {object} ErrorResponse
// @Router /api/v1/ladder/daily/claim [post]
func (h *LadderHandler) HandleClaimDaily(w http.ResponseWriter, r *http.Request) {
	var req ClaimDailyRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Claim daily slot"); err != nil {
		return
	}

	outcome, state, err := h.service.ClaimDaily(r.Context(), req.UserID, req.Day)
	if err != nil {
		respondServiceError(w, r, "claim daily slot", err)
		return
	}

	respondJSON(w, http.StatusOK, ClaimOutcomeResponse{Outcome: outcome, State: state})
}

// HandleLevelSlots lists the level ladder with per-player slot state
func (h *LadderHandler) HandleLevelSlots(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetQueryParam(r, w, "user_id")
	if !ok {
		return
	}

	views, err := h.service.LevelSlots(r.Context(), userID)
	if err != nil {
		respondServiceError(w, r, "list level slots", err)
		return
	}

	respondJSON(w, http.StatusOK, DataResponse{Data: views})
}

type ClaimLevelRequest struct {
	UserID string `json:"user_id" validate:"required,uuid"`
	Level  int    `json:"level" validate:"required,min=1"`
}

// HandleClaimLevel claims a level milestone slot
func (h *LadderHandler) HandleClaimLevel(w http.ResponseWriter, r *http.Request) {
	var req ClaimLevelRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Claim level slot"); err != nil {
		return
	}

	outcome, state, err := h.service.ClaimLevel(r.Context(), req.UserID, req.Level)
	if err != nil {
		respondServiceError(w, r, "claim level slot", err)
		return
	}

	respondJSON(w, http.StatusOK, ClaimOutcomeResponse{Outcome: outcome, State: state})
}
