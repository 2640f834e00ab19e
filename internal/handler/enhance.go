package handler

import (
	"net/http"

	"github.com/osse101/IdleSect_Go/internal/domain"
	"github.com/osse101/IdleSect_Go/internal/enhance"
)

type EnhanceHandler struct {
	service enhance.Service
}

func NewEnhanceHandler(service enhance.Service) *EnhanceHandler {
	return &EnhanceHandler{service: service}
}

type EnhanceRequest struct {
	UserID  string `json:"user_id" validate:"required,uuid"`
	ItemID  string `json:"item_id" validate:"required,max=64"`
	Element string `json:"element" validate:"required,element"`
}

// HandleEnhance resolves a single enhancement attempt
// @Summary Attempt an enhancement
// @Tags enhance
// @Accept json
// @Produce json
// @Success 200 {object} domain.EnhanceResult
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/enhance [post]
func (h *EnhanceHandler) HandleEnhance(w http.ResponseWriter, r *http.Request) {
	var req EnhanceRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Enhance"); err != nil {
		return
	}

	result, err := h.service.Enhance(r.Context(), req.UserID, req.ItemID, domain.ElementID(req.Element))
	if err != nil {
		respondServiceError(w, r, "enhance", err)
		return
	}

	respondJSON(w, http.StatusOK, result)
}

type RegisterTargetRequest struct {
	UserID             string   `json:"user_id" validate:"required,uuid"`
	ItemID             string   `json:"item_id" validate:"required,max=64"`
	CurrentTier        int      `json:"current_tier" validate:"min=0"`
	MaxTier            int      `json:"max_tier" validate:"required,min=1,max=50"`
	PrimaryElement     string   `json:"primary_element" validate:"required,element"`
	CompatibleElements []string `json:"compatible_elements" validate:"dive,element"`
}

// HandleRegisterTarget creates or replaces an enhancement target
func (h *EnhanceHandler) HandleRegisterTarget(w http.ResponseWriter, r *http.Request) {
	var req RegisterTargetRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Register target"); err != nil {
		return
	}

	compatible := make([]domain.ElementID, 0, len(req.CompatibleElements))
	for _, e := range req.CompatibleElements {
		compatible = append(compatible, domain.ElementID(e))
	}

	target := &domain.EnhancementTarget{
		UserID:             req.UserID,
		ItemID:             req.ItemID,
		CurrentTier:        req.CurrentTier,
		MaxTier:            req.MaxTier,
		PrimaryElement:     domain.ElementID(req.PrimaryElement),
		CompatibleElements: compatible,
	}

	if err := h.service.RegisterTarget(r.Context(), target); err != nil {
		respondServiceError(w, r, "register target", err)
		return
	}

	respondJSON(w, http.StatusCreated, SuccessResponse{Message: MsgTargetRegistered})
}

// HandleGetTarget returns an enhancement target's current state
func (h *EnhanceHandler) HandleGetTarget(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetQueryParam(r, w, "user_id")
	if !ok {
		return
	}
	itemID, ok := GetQueryParam(r, w, "item_id")
	if !ok {
		return
	}

	target, err := h.service.GetTarget(r.Context(), userID, itemID)
	if err != nil {
		respondServiceError(w, r, "get target", err)
		return
	}

	respondJSON(w, http.StatusOK, target)
}

type FuseRequest struct {
	UserID    string `json:"user_id" validate:"required,uuid"`
	RecipeKey string `json:"recipe_key" validate:"required,max=64"`
}

// HandleFuse executes a deterministic elemental fusion
// @Summary Fuse elements
// @Tags fusion
// @Accept json
// @Produce json
// @Success 200 {object} domain.FusionResult
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/fusion [post]
func (h *EnhanceHandler) HandleFuse(w http.ResponseWriter, r *http.Request) {
	var req FuseRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Fuse"); err != nil {
		return
	}

	result, err := h.service.Fuse(r.Context(), req.UserID, req.RecipeKey)
	if err != nil {
		respondServiceError(w, r, "fuse", err)
		return
	}

	respondJSON(w, http.StatusOK, result)
}
