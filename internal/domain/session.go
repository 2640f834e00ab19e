package domain

import (
	"time"

	"github.com/google/uuid"
)

// AccrualRates holds per-hour offline earning rates at 100% speed
type AccrualRates struct {
	ExperiencePerHour  int64 `json:"experience_per_hour"`
	SpiritStonePerHour int64 `json:"spirit_stone_per_hour"`
	PrimaryPerHour     int64 `json:"primary_per_hour"`
}

// OfflineSession tracks a single idle-accrual window. At most one session is
// active per player; resolving it is terminal.
type OfflineSession struct {
	ID                     uuid.UUID    `json:"id"`
	UserID                 string       `json:"user_id"`
	StartedAt              time.Time    `json:"started_at"`
	Rates                  AccrualRates `json:"rates"`
	SpeedMultiplierPercent int          `json:"speed_multiplier_percent"`
}

// ElapsedHours returns the non-negative elapsed duration in hours at now.
func (s *OfflineSession) ElapsedHours(now time.Time) float64 {
	hours := now.Sub(s.StartedAt).Hours()
	if hours < 0 {
		return 0
	}
	return hours
}
