package ladder

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strconv"

	"github.com/osse101/IdleSect_Go/internal/domain"
	"github.com/osse101/IdleSect_Go/internal/ledger"
	"github.com/osse101/IdleSect_Go/internal/logger"
	"github.com/osse101/IdleSect_Go/internal/notify"
	"github.com/osse101/IdleSect_Go/internal/repository"
)

// LadderConfig is the JSON shape of a ladder definition file
type LadderConfig struct {
	Slots []domain.LadderSlot `json:"slots"`
}

// Service exposes the daily and level unlock ladders. Eligibility derives
// from player progress; the actual grant always goes through the ledger so a
// slot can only ever pay out once.
type Service interface {
	// DailySlots lists the daily ladder with per-player slot state
	DailySlots(ctx context.Context, userID string) ([]domain.LadderSlotView, error)

	// LevelSlots lists the level ladder with per-player slot state
	LevelSlots(ctx context.Context, userID string) ([]domain.LadderSlotView, error)

	// ClaimDaily claims the daily slot for day (1..DaysPerCycle) in the
	// player's current streak cycle
	ClaimDaily(ctx context.Context, userID string, day int) (domain.ClaimOutcome, *domain.PlayerState, error)

	// ClaimLevel claims the milestone slot gated on reaching level
	ClaimLevel(ctx context.Context, userID string, level int) (domain.ClaimOutcome, *domain.PlayerState, error)
}

type service struct {
	players repository.Player
	claims  ledger.Service
	sink    notify.Sink
	daily   []domain.LadderSlot
	level   []domain.LadderSlot
}

// NewService creates a new ladder service, loading both ladder definitions
func NewService(players repository.Player, claims ledger.Service, sink notify.Sink, dailyPath, levelPath string) (Service, error) {
	daily, err := loadLadder(dailyPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load daily ladder: %w", err)
	}
	if len(daily) != DaysPerCycle {
		return nil, fmt.Errorf("daily ladder must define exactly %d slots, got %d", DaysPerCycle, len(daily))
	}

	level, err := loadLadder(levelPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load level ladder: %w", err)
	}

	return &service{
		players: players,
		claims:  claims,
		sink:    sink,
		daily:   daily,
		level:   level,
	}, nil
}

func loadLadder(path string) ([]domain.LadderSlot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg LadderConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	slots := cfg.Slots
	sort.Slice(slots, func(i, j int) bool { return slots[i].ThresholdKey < slots[j].ThresholdKey })
	for i, slot := range slots {
		if slot.ThresholdKey <= 0 {
			return nil, fmt.Errorf("slot %d has non-positive threshold %d", i, slot.ThresholdKey)
		}
		if i > 0 && slots[i-1].ThresholdKey == slot.ThresholdKey {
			return nil, fmt.Errorf("duplicate threshold %d", slot.ThresholdKey)
		}
	}
	return slots, nil
}

// streakCycle splits a login streak into a cycle ordinal and the day reached
// within that cycle. A zero streak has reached no day at all.
func streakCycle(streakDays int) (cycle, dayInCycle int) {
	if streakDays <= 0 {
		return 0, 0
	}
	return (streakDays - 1) / DaysPerCycle, ((streakDays - 1) % DaysPerCycle) + 1
}

func dailyClaimKey(cycle, day int) string {
	return fmt.Sprintf(ClaimKeyDailyFormat, cycle, day)
}

func (s *service) DailySlots(ctx context.Context, userID string) ([]domain.LadderSlotView, error) {
	state, err := s.players.GetPlayer(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get player: %w", err)
	}

	cycle, dayInCycle := streakCycle(state.LoginStreakDays)
	keyFor := func(slot domain.LadderSlot) string {
		return dailyClaimKey(cycle, slot.ThresholdKey)
	}
	return s.slotViews(ctx, userID, domain.SourceDaily, s.daily, dayInCycle, keyFor)
}

func (s *service) LevelSlots(ctx context.Context, userID string) ([]domain.LadderSlotView, error) {
	state, err := s.players.GetPlayer(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get player: %w", err)
	}

	keyFor := func(slot domain.LadderSlot) string {
		return strconv.Itoa(slot.ThresholdKey)
	}
	return s.slotViews(ctx, userID, domain.SourceLevelMilestone, s.level, state.Level, keyFor)
}

// slotViews merges slot definitions with the player's claim history.
// A claimed slot stays claimed even if progress later resets below it.
func (s *service) slotViews(ctx context.Context, userID string, kind domain.SourceKind, slots []domain.LadderSlot, progress int, keyFor func(domain.LadderSlot) string) ([]domain.LadderSlotView, error) {
	records, err := s.claims.Claims(ctx, userID, kind)
	if err != nil {
		return nil, fmt.Errorf("failed to list claims: %w", err)
	}

	claimed := make(map[string]bool, len(records))
	for _, record := range records {
		claimed[record.Key] = true
	}

	views := make([]domain.LadderSlotView, 0, len(slots))
	for _, slot := range slots {
		view := domain.LadderSlotView{
			LadderSlot: slot,
			State:      domain.SlotLocked,
			ClaimKey:   keyFor(slot),
		}
		switch {
		case claimed[view.ClaimKey]:
			view.State = domain.SlotClaimed
		case progress >= slot.ThresholdKey:
			view.State = domain.SlotEligible
		}
		views = append(views, view)
	}
	return views, nil
}

func (s *service) ClaimDaily(ctx context.Context, userID string, day int) (domain.ClaimOutcome, *domain.PlayerState, error) {
	slot, err := findSlot(s.daily, day)
	if err != nil {
		return "", nil, err
	}

	state, err := s.players.GetPlayer(ctx, userID)
	if err != nil {
		return "", nil, fmt.Errorf("failed to get player: %w", err)
	}

	cycle, dayInCycle := streakCycle(state.LoginStreakDays)
	if dayInCycle < day {
		return "", nil, fmt.Errorf("%w: day %d needs a streak day of %d, player is at %d", domain.ErrSlotLocked, day, day, dayInCycle)
	}

	return s.grant(ctx, userID, domain.SourceDaily, dailyClaimKey(cycle, day), slot.Reward)
}

func (s *service) ClaimLevel(ctx context.Context, userID string, level int) (domain.ClaimOutcome, *domain.PlayerState, error) {
	slot, err := findSlot(s.level, level)
	if err != nil {
		return "", nil, err
	}

	state, err := s.players.GetPlayer(ctx, userID)
	if err != nil {
		return "", nil, fmt.Errorf("failed to get player: %w", err)
	}

	if state.Level < level {
		return "", nil, fmt.Errorf("%w: milestone %d needs level %d, player is at %d", domain.ErrSlotLocked, level, level, state.Level)
	}

	return s.grant(ctx, userID, domain.SourceLevelMilestone, strconv.Itoa(level), slot.Reward)
}

func (s *service) grant(ctx context.Context, userID string, kind domain.SourceKind, key string, reward domain.ResourceDelta) (domain.ClaimOutcome, *domain.PlayerState, error) {
	outcome, state, err := s.claims.TryClaimAndCredit(ctx, userID, kind, key, reward)
	if err != nil {
		return "", nil, err
	}

	if outcome == domain.ClaimGranted && s.sink != nil {
		s.sink.Notify(ctx, userID, notify.FormatRewardGrant(kind, reward), notify.SeveritySuccess)
	}

	logger.FromContext(ctx).Info("Ladder slot claim", "user_id", userID, "kind", kind, "key", key, "outcome", outcome)
	return outcome, state, nil
}

func findSlot(slots []domain.LadderSlot, threshold int) (domain.LadderSlot, error) {
	for _, slot := range slots {
		if slot.ThresholdKey == threshold {
			return slot, nil
		}
	}
	return domain.LadderSlot{}, fmt.Errorf("%w: threshold %d", domain.ErrUnknownSlot, threshold)
}
