package handler

import (
	"net/http"

	"github.com/osse101/IdleSect_Go/internal/player"
)

type PlayerHandler struct {
	service player.Service
}

func NewPlayerHandler(service player.Service) *PlayerHandler {
	return &PlayerHandler{service: service}
}

// HandleGetState returns the player's progression snapshot
// @Summary Get player state
// @Tags player
// @Produce json
// @Success 200 {object} domain.PlayerState
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/player/state [get]
func (h *PlayerHandler) HandleGetState(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetQueryParam(r, w, "user_id")
	if !ok {
		return
	}

	state, err := h.service.GetState(r.Context(), userID)
	if err != nil {
		respondServiceError(w, r, "get player state", err)
		return
	}

	respondJSON(w, http.StatusOK, state)
}

type RegisterPlayerRequest struct {
	UserID string `json:"user_id" validate:"required,uuid"`
}

// HandleRegisterPlayer creates the player row if missing
func (h *PlayerHandler) HandleRegisterPlayer(w http.ResponseWriter, r *http.Request) {
	var req RegisterPlayerRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Register player"); err != nil {
		return
	}

	state, err := h.service.EnsurePlayer(r.Context(), req.UserID)
	if err != nil {
		respondServiceError(w, r, "register player", err)
		return
	}

	respondJSON(w, http.StatusCreated, state)
}

type RecordLoginRequest struct {
	UserID string `json:"user_id" validate:"required,uuid"`
}

// HandleRecordLogin advances the login streak at most once per day
func (h *PlayerHandler) HandleRecordLogin(w http.ResponseWriter, r *http.Request) {
	var req RecordLoginRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Record login"); err != nil {
		return
	}

	state, err := h.service.RecordLogin(r.Context(), req.UserID)
	if err != nil {
		respondServiceError(w, r, "record login", err)
		return
	}

	respondJSON(w, http.StatusOK, state)
}
