package domain

import "time"

// CurrencyKind identifies a player currency
type CurrencyKind string

const (
	CurrencyPrimary          CurrencyKind = "primary"
	CurrencyPremium          CurrencyKind = "premium"
	CurrencySpiritStone      CurrencyKind = "spirit_stone"
	CurrencySpiritStoneBound CurrencyKind = "spirit_stone_bound"
)

// ElementID identifies an elemental affinity (used by enhancement and fusion)
type ElementID string

const (
	ElementFire  ElementID = "fire"
	ElementWater ElementID = "water"
	ElementWood  ElementID = "wood"
	ElementMetal ElementID = "metal"
	ElementEarth ElementID = "earth"
)

// PlayerState is a snapshot of a player's progression-relevant state.
// The engine reads snapshots and requests deltas; it never mutates in place.
type PlayerState struct {
	UserID          string                 `json:"user_id"`
	Level           int                    `json:"level"`
	Experience      int64                  `json:"experience"`
	Currencies      map[CurrencyKind]int64 `json:"currencies"`
	Elements        map[ElementID]int64    `json:"elements"`
	Treasures       []string               `json:"treasures"`
	LoginStreakDays int                    `json:"login_streak_days"`
	LastLoginAt     *time.Time             `json:"last_login_at,omitempty"`
	UpdatedAt       time.Time              `json:"updated_at"`
}

// ExperiencePerLevel is the flat experience cost of each level
const ExperiencePerLevel = 1000

// LevelForExperience maps total experience to a character level.
// Levels start at 1 and rise linearly with experience.
func LevelForExperience(experience int64) int {
	if experience < 0 {
		return 1
	}
	return 1 + int(experience/ExperiencePerLevel)
}

// Currency returns the balance for a currency kind, defaulting to zero.
func (p *PlayerState) Currency(kind CurrencyKind) int64 {
	if p.Currencies == nil {
		return 0
	}
	return p.Currencies[kind]
}

// ElementStock returns the stock for an element, defaulting to zero.
func (p *PlayerState) ElementStock(element ElementID) int64 {
	if p.Elements == nil {
		return 0
	}
	return p.Elements[element]
}

// ResourceDelta describes a requested change to player state. Negative values
// are debits. Applying a zero delta is always safe.
type ResourceDelta struct {
	Experience int64                  `json:"experience,omitempty"`
	Currencies map[CurrencyKind]int64 `json:"currencies,omitempty"`
	Elements   map[ElementID]int64    `json:"elements,omitempty"`
	Treasures  []string               `json:"treasures,omitempty"`
}

// IsZero reports whether the delta would change nothing.
func (d ResourceDelta) IsZero() bool {
	if d.Experience != 0 || len(d.Treasures) > 0 {
		return false
	}
	for _, v := range d.Currencies {
		if v != 0 {
			return false
		}
	}
	for _, v := range d.Elements {
		if v != 0 {
			return false
		}
	}
	return true
}

// Add merges another delta into this one and returns the result.
func (d ResourceDelta) Add(other ResourceDelta) ResourceDelta {
	out := ResourceDelta{
		Experience: d.Experience + other.Experience,
		Currencies: make(map[CurrencyKind]int64),
		Elements:   make(map[ElementID]int64),
	}
	for k, v := range d.Currencies {
		out.Currencies[k] += v
	}
	for k, v := range other.Currencies {
		out.Currencies[k] += v
	}
	for k, v := range d.Elements {
		out.Elements[k] += v
	}
	for k, v := range other.Elements {
		out.Elements[k] += v
	}
	out.Treasures = append(out.Treasures, d.Treasures...)
	out.Treasures = append(out.Treasures, other.Treasures...)
	return out
}
