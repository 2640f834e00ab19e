package handler

import (
	"net/http"

	"github.com/osse101/IdleSect_Go/internal/accrual"
)

type OfflineHandler struct {
	service accrual.Service
}

func NewOfflineHandler(service accrual.Service) *OfflineHandler {
	return &OfflineHandler{service: service}
}

type StartSessionRequest struct {
	UserID                 string `json:"user_id" validate:"required,uuid"`
	SpeedMultiplierPercent int    `json:"speed_multiplier_percent" validate:"min=0,max=1000"`
}

// HandleStartSession begins an offline accrual session
// @Summary Start offline cultivation
// @Tags offline
// @Accept json
// @Produce json
// @Success 201 {object} domain.OfflineSession
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/offline/start [post]
func (h *OfflineHandler) HandleStartSession(w http.ResponseWriter, r *http.Request) {
	var req StartSessionRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Start session"); err != nil {
		return
	}

	session, err := h.service.StartSession(r.Context(), req.UserID, req.SpeedMultiplierPercent)
	if err != nil {
		respondServiceError(w, r, "start session", err)
		return
	}

	respondJSON(w, http.StatusCreated, session)
}

// HandlePreviewSession evaluates the active session without resolving it
func (h *OfflineHandler) HandlePreviewSession(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetQueryParam(r, w, "user_id")
	if !ok {
		return
	}

	result, err := h.service.PreviewSession(r.Context(), userID)
	if err != nil {
		respondServiceError(w, r, "preview session", err)
		return
	}

	respondJSON(w, http.StatusOK, result)
}

type ClaimSessionRequest struct {
	UserID string `json:"user_id" validate:"required,uuid"`
}

// HandleClaimSession resolves the active session and credits its rewards
// @Summary Claim offline rewards
// @Tags offline
// @Accept json
// @Produce json
// @Success 200 {object} accrual.ClaimResult
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/offline/claim [post]
func (h *OfflineHandler) HandleClaimSession(w http.ResponseWriter, r *http.Request) {
	var req ClaimSessionRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Claim session"); err != nil {
		return
	}

	result, err := h.service.ClaimSession(r.Context(), req.UserID)
	if err != nil {
		respondServiceError(w, r, "claim session", err)
		return
	}

	respondJSON(w, http.StatusOK, result)
}
