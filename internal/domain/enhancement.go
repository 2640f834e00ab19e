package domain

// EnhancementTarget is a piece of equipment that can be enhanced.
// CurrentTier only ever moves upward, one tier per successful attempt.
type EnhancementTarget struct {
	UserID             string      `json:"user_id"`
	ItemID             string      `json:"item_id"`
	CurrentTier        int         `json:"current_tier"`
	MaxTier            int         `json:"max_tier"`
	PrimaryElement     ElementID   `json:"primary_element"`
	CompatibleElements []ElementID `json:"compatible_elements"`
}

// IsCompatible reports whether element is in the target's compatible set
func (t *EnhancementTarget) IsCompatible(element ElementID) bool {
	for _, e := range t.CompatibleElements {
		if e == element {
			return true
		}
	}
	return false
}

// AtMaxTier reports whether no further enhancement can apply
func (t *EnhancementTarget) AtMaxTier() bool {
	return t.CurrentTier >= t.MaxTier
}

// EnhanceOutcome classifies the result of an enhancement attempt
type EnhanceOutcome string

const (
	EnhanceSuccess EnhanceOutcome = "success"
	EnhanceFailure EnhanceOutcome = "failure"
	// EnhanceMaxTierReached is a precondition rejection; no draw was made
	// and the caller must not deduct materials.
	EnhanceMaxTierReached EnhanceOutcome = "max_tier_reached"
)

// EnhanceResult describes one resolved enhancement attempt
type EnhanceResult struct {
	Outcome       EnhanceOutcome `json:"outcome"`
	ItemID        string         `json:"item_id"`
	ChancePercent int            `json:"chance_percent"`
	Roll          float64        `json:"roll"`
	Tier          int            `json:"tier"`
}

// FusionRecipe describes a deterministic elemental fusion. Every ingredient
// is a precondition; once stock suffices, success is guaranteed.
type FusionRecipe struct {
	RecipeKey   string              `json:"recipe_key"`
	Result      ElementID           `json:"result"`
	ResultCount int64               `json:"result_count"`
	Ingredients map[ElementID]int64 `json:"ingredients"`
}

// FusionResult describes one completed fusion
type FusionResult struct {
	RecipeKey string              `json:"recipe_key"`
	Produced  ElementID           `json:"produced"`
	Count     int64               `json:"count"`
	Consumed  map[ElementID]int64 `json:"consumed"`
}
