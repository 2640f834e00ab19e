package enhance

// Success chance bands keyed by the target's current tier
const (
	TierBandOneCeiling   = 3
	TierBandTwoCeiling   = 6
	TierBandThreeCeiling = 8

	ChanceBandOne   = 90
	ChanceBandTwo   = 70
	ChanceBandThree = 50
	ChanceBandFour  = 30
)

const (
	// CompatibleElementBonus is added when the offered element is in the
	// target's compatible set
	CompatibleElementBonus = 15

	MinChancePercent = 0
	MaxChancePercent = 95

	// RollRangePercent scales the RNG draw; success requires draw < chance
	RollRangePercent = 100
)
