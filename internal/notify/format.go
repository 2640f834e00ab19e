package notify

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/osse101/IdleSect_Go/internal/domain"
)

var titleCaser = cases.Title(language.English)

// FormatOfflineReward renders an offline claim as a player-facing message
func FormatOfflineReward(elapsedHours float64, reward domain.ResourceDelta) string {
	var parts []string

	if reward.Experience > 0 {
		parts = append(parts, fmt.Sprintf("%d XP", reward.Experience))
	}
	parts = append(parts, formatCurrencies(reward.Currencies)...)

	for _, treasure := range reward.Treasures {
		parts = append(parts, titleCaser.String(strings.ReplaceAll(treasure, "_", " ")))
	}

	if len(parts) == 0 {
		return fmt.Sprintf("Cultivated for %.1f hours.", elapsedHours)
	}
	return fmt.Sprintf("Cultivated for %.1f hours: %s", elapsedHours, strings.Join(parts, ", "))
}

// FormatRewardGrant renders a ladder or catalog reward grant
func FormatRewardGrant(source domain.SourceKind, reward domain.ResourceDelta) string {
	var parts []string

	if reward.Experience > 0 {
		parts = append(parts, fmt.Sprintf("%d XP", reward.Experience))
	}
	parts = append(parts, formatCurrencies(reward.Currencies)...)

	label := titleCaser.String(strings.ReplaceAll(string(source), "_", " "))
	if len(parts) == 0 {
		return fmt.Sprintf("%s reward claimed.", label)
	}
	return fmt.Sprintf("%s reward claimed: %s", label, strings.Join(parts, ", "))
}

// FormatEnhanceOutcome renders an enhancement result
func FormatEnhanceOutcome(result *domain.EnhanceResult) string {
	switch result.Outcome {
	case domain.EnhanceSuccess:
		return fmt.Sprintf("Enhancement succeeded! Equipment is now tier %d.", result.Tier)
	case domain.EnhanceMaxTierReached:
		return "Equipment is already at its maximum tier."
	default:
		return fmt.Sprintf("Enhancement failed (%d%% chance). Equipment stays at tier %d.", result.ChancePercent, result.Tier)
	}
}

func formatCurrencies(currencies map[domain.CurrencyKind]int64) []string {
	kinds := make([]domain.CurrencyKind, 0, len(currencies))
	for kind := range currencies {
		kinds = append(kinds, kind)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })

	var parts []string
	for _, kind := range kinds {
		amount := currencies[kind]
		if amount == 0 {
			continue
		}
		name := titleCaser.String(strings.ReplaceAll(string(kind), "_", " "))
		parts = append(parts, fmt.Sprintf("%d %s", amount, name))
	}
	return parts
}
