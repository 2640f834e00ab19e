package reward

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/osse101/IdleSect_Go/internal/domain"
	"github.com/osse101/IdleSect_Go/internal/ledger"
	"github.com/osse101/IdleSect_Go/internal/logger"
	"github.com/osse101/IdleSect_Go/internal/notify"
)

// CatalogEntry is one claimable reward definition. The same key can exist
// under different source kinds without colliding.
type CatalogEntry struct {
	SourceKind domain.SourceKind    `json:"source_kind"`
	Key        string               `json:"key"`
	Reward     domain.ResourceDelta `json:"reward"`
}

// CatalogConfig is the JSON shape of the reward catalog file
type CatalogConfig struct {
	Rewards []CatalogEntry `json:"rewards"`
}

// Service grants catalog rewards for ad-hoc sources such as notification
// acknowledgements and quest completions. Grants are idempotent per key.
type Service interface {
	// Claim grants the catalog reward for (kind, key) at most once
	Claim(ctx context.Context, userID string, kind domain.SourceKind, key string) (domain.ClaimOutcome, *domain.PlayerState, error)

	// List returns the catalog entries for a source kind
	List(kind domain.SourceKind) []CatalogEntry
}

type service struct {
	claims  ledger.Service
	sink    notify.Sink
	catalog map[catalogKey]CatalogEntry
}

type catalogKey struct {
	kind domain.SourceKind
	key  string
}

// NewService creates a new reward catalog service from configPath
func NewService(claims ledger.Service, sink notify.Sink, configPath string) (Service, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read reward catalog file: %w", err)
	}

	var cfg CatalogConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse reward catalog file: %w", err)
	}

	catalog := make(map[catalogKey]CatalogEntry, len(cfg.Rewards))
	for _, entry := range cfg.Rewards {
		if !domain.IsValidSourceKind(entry.SourceKind) {
			return nil, fmt.Errorf("catalog entry %q has unknown source kind %q", entry.Key, entry.SourceKind)
		}
		if entry.Key == "" {
			return nil, fmt.Errorf("catalog entry with empty key under %q", entry.SourceKind)
		}
		ck := catalogKey{kind: entry.SourceKind, key: entry.Key}
		if _, exists := catalog[ck]; exists {
			return nil, fmt.Errorf("duplicate catalog entry %s/%s", entry.SourceKind, entry.Key)
		}
		catalog[ck] = entry
	}

	return &service{
		claims:  claims,
		sink:    sink,
		catalog: catalog,
	}, nil
}

func (s *service) Claim(ctx context.Context, userID string, kind domain.SourceKind, key string) (domain.ClaimOutcome, *domain.PlayerState, error) {
	entry, ok := s.catalog[catalogKey{kind: kind, key: key}]
	if !ok {
		return "", nil, fmt.Errorf("%w: %s/%s", domain.ErrRewardNotFound, kind, key)
	}

	outcome, state, err := s.claims.TryClaimAndCredit(ctx, userID, kind, key, entry.Reward)
	if err != nil {
		return "", nil, err
	}

	if outcome == domain.ClaimGranted && s.sink != nil {
		s.sink.Notify(ctx, userID, notify.FormatRewardGrant(kind, entry.Reward), notify.SeveritySuccess)
	}

	logger.FromContext(ctx).Info("Catalog reward claim", "user_id", userID, "kind", kind, "key", key, "outcome", outcome)
	return outcome, state, nil
}

func (s *service) List(kind domain.SourceKind) []CatalogEntry {
	var entries []CatalogEntry
	for _, entry := range s.catalog {
		if entry.SourceKind == kind {
			entries = append(entries, entry)
		}
	}
	return entries
}
