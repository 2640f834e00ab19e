package enhance

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/IdleSect_Go/internal/domain"
)

func targetAtTier(tier int, compatible ...domain.ElementID) *domain.EnhancementTarget {
	return &domain.EnhancementTarget{
		UserID:             "user-1",
		ItemID:             "jade_sword",
		CurrentTier:        tier,
		MaxTier:            10,
		PrimaryElement:     domain.ElementFire,
		CompatibleElements: compatible,
	}
}

func TestSuccessChanceBands(t *testing.T) {
	tests := []struct {
		tier int
		want int
	}{
		{0, 90},
		{2, 90},
		{3, 70},
		{5, 70},
		{6, 50},
		{7, 50},
		{8, 30},
		{9, 30},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("tier %d", tt.tier), func(t *testing.T) {
			chance := SuccessChance(targetAtTier(tt.tier), domain.ElementWater)
			assert.Equal(t, tt.want, chance)
		})
	}
}

func TestSuccessChanceCompatibleBonus(t *testing.T) {
	target := targetAtTier(7, domain.ElementFire, domain.ElementWood)

	assert.Equal(t, 65, SuccessChance(target, domain.ElementFire))
	assert.Equal(t, 65, SuccessChance(target, domain.ElementWood))
	assert.Equal(t, 50, SuccessChance(target, domain.ElementWater))
}

func TestSuccessChanceClampedAtCeiling(t *testing.T) {
	// 90 base + 15 bonus would be 105; the ceiling holds it at 95
	target := targetAtTier(1, domain.ElementFire)

	assert.Equal(t, MaxChancePercent, SuccessChance(target, domain.ElementFire))
}

func TestSuccessChanceNeverOutOfRange(t *testing.T) {
	for tier := 0; tier < 12; tier++ {
		chance := SuccessChance(targetAtTier(tier, domain.ElementFire), domain.ElementFire)
		assert.GreaterOrEqual(t, chance, MinChancePercent)
		assert.LessOrEqual(t, chance, MaxChancePercent)
	}
}
