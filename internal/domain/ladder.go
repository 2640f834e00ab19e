package domain

// LadderKind identifies which progress counter gates a ladder
type LadderKind string

const (
	LadderDaily LadderKind = "daily"
	LadderLevel LadderKind = "level"
)

// LadderSlot is a single claimable reward slot on an unlock ladder,
// eligible once the progress counter reaches ThresholdKey.
type LadderSlot struct {
	ThresholdKey int           `json:"threshold_key"`
	Reward       ResourceDelta `json:"reward"`
}

// SlotState is the lifecycle state of a ladder slot for one player.
// Locked -> Eligible -> Claimed, never backwards.
type SlotState string

const (
	SlotLocked   SlotState = "locked"
	SlotEligible SlotState = "eligible"
	SlotClaimed  SlotState = "claimed"
)

// LadderSlotView combines a slot definition with its per-player state
type LadderSlotView struct {
	LadderSlot
	State    SlotState `json:"state"`
	ClaimKey string    `json:"claim_key"`
}
