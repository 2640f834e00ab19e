package accrual

// MinimumSessionHours is the shortest session eligible for resolution.
// Below this the claim is refused and the session keeps accruing.
const MinimumSessionHours = 0.1

// Treasure bonus tiers by elapsed hours. Strictly-greater-than comparisons:
// exactly 4h yields nothing, exactly 8h yields one.
const (
	TreasureTierOneHours = 4.0
	TreasureTierTwoHours = 8.0
)

// Treasure counts per tier
const (
	TreasureCountTierOne = 1
	TreasureCountTierTwo = 2
)

// BaselineSpeedPercent is the multiplier meaning "no speed bonus"
const BaselineSpeedPercent = 100
