package enhance

import (
	"github.com/osse101/IdleSect_Go/internal/domain"
)

// SuccessChance computes the percent chance of one enhancement attempt on
// target using the offered element. The result is clamped to
// [MinChancePercent, MaxChancePercent], so success is never guaranteed.
func SuccessChance(target *domain.EnhancementTarget, element domain.ElementID) int {
	chance := baseChance(target.CurrentTier)
	if target.IsCompatible(element) {
		chance += CompatibleElementBonus
	}

	if chance < MinChancePercent {
		return MinChancePercent
	}
	if chance > MaxChancePercent {
		return MaxChancePercent
	}
	return chance
}

func baseChance(tier int) int {
	switch {
	case tier < TierBandOneCeiling:
		return ChanceBandOne
	case tier < TierBandTwoCeiling:
		return ChanceBandTwo
	case tier < TierBandThreeCeiling:
		return ChanceBandThree
	default:
		return ChanceBandFour
	}
}
