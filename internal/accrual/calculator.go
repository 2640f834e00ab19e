package accrual

import (
	"math"
	"time"

	"github.com/osse101/IdleSect_Go/internal/domain"
)

// Result is the outcome of evaluating an offline session at a point in time
type Result struct {
	// Eligible is false below MinimumSessionHours; the session must not be
	// resolved and no claim record may be created.
	Eligible      bool
	ElapsedHours  float64
	Reward        domain.ResourceDelta
	TreasureCount int
}

// Compute converts a session's elapsed wall-clock time into rewards.
// Pure: evaluating the same session at the same instant always yields the
// same result. There is deliberately no upper cap on elapsed time; only the
// treasure bonus is tiered.
func Compute(session *domain.OfflineSession, now time.Time) Result {
	elapsed := session.ElapsedHours(now)

	result := Result{ElapsedHours: elapsed}
	if elapsed < MinimumSessionHours {
		return result
	}
	result.Eligible = true

	multiplier := float64(session.SpeedMultiplierPercent) / float64(BaselineSpeedPercent)

	result.Reward = domain.ResourceDelta{
		Experience: accrue(elapsed, session.Rates.ExperiencePerHour, multiplier),
		Currencies: map[domain.CurrencyKind]int64{
			domain.CurrencySpiritStone: accrue(elapsed, session.Rates.SpiritStonePerHour, multiplier),
			domain.CurrencyPrimary:     accrue(elapsed, session.Rates.PrimaryPerHour, multiplier),
		},
	}

	switch {
	case elapsed > TreasureTierTwoHours:
		result.TreasureCount = TreasureCountTierTwo
	case elapsed > TreasureTierOneHours:
		result.TreasureCount = TreasureCountTierOne
	}

	return result
}

func accrue(hours float64, ratePerHour int64, multiplier float64) int64 {
	return int64(math.Floor(hours * float64(ratePerHour) * multiplier))
}
