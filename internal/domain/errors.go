package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Player errors
	ErrMsgPlayerNotFound = "player not found"

	// Session errors
	ErrMsgNoActiveSession      = "no active offline session"
	ErrMsgSessionAlreadyActive = "an offline session is already active"

	// Enhancement errors
	ErrMsgTargetNotFound = "enhancement target not found"

	// Fusion errors
	ErrMsgRecipeNotFound    = "fusion recipe not found"
	ErrMsgInsufficientStock = "insufficient element stock"

	// Ladder errors
	ErrMsgSlotLocked  = "ladder slot is locked"
	ErrMsgUnknownSlot = "unknown ladder slot"

	// Reward errors
	ErrMsgRewardNotFound = "reward not found"

	// Economy errors
	ErrMsgInsufficientFunds = "insufficient funds"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Player errors
	ErrPlayerNotFound = errors.New(ErrMsgPlayerNotFound)

	// Session errors
	ErrNoActiveSession      = errors.New(ErrMsgNoActiveSession)
	ErrSessionAlreadyActive = errors.New(ErrMsgSessionAlreadyActive)

	// Enhancement errors
	ErrTargetNotFound = errors.New(ErrMsgTargetNotFound)

	// Fusion errors
	ErrRecipeNotFound    = errors.New(ErrMsgRecipeNotFound)
	ErrInsufficientStock = errors.New(ErrMsgInsufficientStock)

	// Ladder errors
	ErrSlotLocked  = errors.New(ErrMsgSlotLocked)
	ErrUnknownSlot = errors.New(ErrMsgUnknownSlot)

	// Reward errors
	ErrRewardNotFound = errors.New(ErrMsgRewardNotFound)

	// Economy errors
	ErrInsufficientFunds = errors.New(ErrMsgInsufficientFunds)

	// Validation errors
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
