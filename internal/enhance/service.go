package enhance

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/osse101/IdleSect_Go/internal/domain"
	"github.com/osse101/IdleSect_Go/internal/event"
	"github.com/osse101/IdleSect_Go/internal/logger"
	"github.com/osse101/IdleSect_Go/internal/metrics"
	"github.com/osse101/IdleSect_Go/internal/notify"
	"github.com/osse101/IdleSect_Go/internal/repository"
	"github.com/osse101/IdleSect_Go/internal/utils"
)

// RecipesConfig is the JSON shape of the fusion recipes file
type RecipesConfig struct {
	Recipes []domain.FusionRecipe `json:"recipes"`
}

// Service resolves enhancement attempts and elemental fusions
type Service interface {
	// Enhance resolves a single attempt against the player's target.
	// A target at max tier is rejected before any draw is made.
	Enhance(ctx context.Context, userID, itemID string, element domain.ElementID) (*domain.EnhanceResult, error)

	// Fuse executes a deterministic recipe, consuming ingredient stock and
	// crediting the produced element atomically.
	Fuse(ctx context.Context, userID, recipeKey string) (*domain.FusionResult, error)

	// GetTarget returns the player's enhancement target for itemID
	GetTarget(ctx context.Context, userID, itemID string) (*domain.EnhancementTarget, error)

	// RegisterTarget creates or replaces a target definition
	RegisterTarget(ctx context.Context, target *domain.EnhancementTarget) error
}

type service struct {
	repo    repository.Enhancement
	players repository.Player
	bus     event.Bus
	sink    notify.Sink
	rng     utils.Source
	recipes map[string]domain.FusionRecipe
}

// NewService creates a new enhancement service, loading recipes from configPath
func NewService(repo repository.Enhancement, players repository.Player, bus event.Bus, sink notify.Sink, rng utils.Source, configPath string) (Service, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read fusion recipes file: %w", err)
	}

	var cfg RecipesConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse fusion recipes file: %w", err)
	}

	recipes := make(map[string]domain.FusionRecipe, len(cfg.Recipes))
	for _, recipe := range cfg.Recipes {
		if recipe.RecipeKey == "" || recipe.ResultCount <= 0 || len(recipe.Ingredients) == 0 {
			return nil, fmt.Errorf("invalid fusion recipe %q", recipe.RecipeKey)
		}
		recipes[recipe.RecipeKey] = recipe
	}

	return &service{
		repo:    repo,
		players: players,
		bus:     bus,
		sink:    sink,
		rng:     rng,
		recipes: recipes,
	}, nil
}

func (s *service) Enhance(ctx context.Context, userID, itemID string, element domain.ElementID) (*domain.EnhanceResult, error) {
	log := logger.FromContext(ctx)

	target, err := s.repo.GetTarget(ctx, userID, itemID)
	if err != nil {
		return nil, fmt.Errorf("failed to get enhancement target: %w", err)
	}

	if target.AtMaxTier() {
		// Precondition rejection: no draw, no state change.
		log.Info("Enhancement rejected at max tier", "user_id", userID, "item_id", itemID, "tier", target.CurrentTier)
		metrics.Enhancements.WithLabelValues(string(domain.EnhanceMaxTierReached)).Inc()
		return &domain.EnhanceResult{
			Outcome: domain.EnhanceMaxTierReached,
			ItemID:  itemID,
			Tier:    target.CurrentTier,
		}, nil
	}

	chance := SuccessChance(target, element)
	roll := s.rng.Float64() * RollRangePercent

	result := &domain.EnhanceResult{
		ItemID:        itemID,
		ChancePercent: chance,
		Roll:          roll,
		Tier:          target.CurrentTier,
	}

	if roll < float64(chance) {
		result.Outcome = domain.EnhanceSuccess
		result.Tier = target.CurrentTier + 1

		tx, err := s.repo.BeginTx(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to begin enhancement transaction: %w", err)
		}
		defer repository.SafeRollback(ctx, tx)

		if err := tx.UpdateEnhancementTier(ctx, userID, itemID, result.Tier); err != nil {
			return nil, fmt.Errorf("failed to persist tier advance: %w", err)
		}
		if err := tx.Commit(ctx); err != nil {
			return nil, fmt.Errorf("failed to commit tier advance: %w", err)
		}
	} else {
		result.Outcome = domain.EnhanceFailure
	}

	metrics.Enhancements.WithLabelValues(string(result.Outcome)).Inc()
	s.publish(ctx, event.NewEnhancementResolvedEvent(
		userID, itemID, string(result.Outcome), chance, roll, result.Tier))

	if s.sink != nil {
		severity := notify.SeverityInfo
		if result.Outcome == domain.EnhanceSuccess {
			severity = notify.SeveritySuccess
		}
		s.sink.Notify(ctx, userID, notify.FormatEnhanceOutcome(result), severity)
	}

	log.Info("Enhancement resolved",
		"user_id", userID,
		"item_id", itemID,
		"outcome", result.Outcome,
		"chance", chance,
		"roll", roll,
		"tier", result.Tier,
	)

	return result, nil
}

func (s *service) Fuse(ctx context.Context, userID, recipeKey string) (*domain.FusionResult, error) {
	log := logger.FromContext(ctx)

	recipe, ok := s.recipes[recipeKey]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrRecipeNotFound, recipeKey)
	}

	// One delta debits every ingredient and credits the product. The player
	// row is locked while the delta applies, so insufficient stock rolls the
	// whole fusion back.
	delta := domain.ResourceDelta{Elements: make(map[domain.ElementID]int64, len(recipe.Ingredients)+1)}
	for element, count := range recipe.Ingredients {
		delta.Elements[element] -= count
	}
	delta.Elements[recipe.Result] += recipe.ResultCount

	if _, err := s.players.ApplyDelta(ctx, userID, delta); err != nil {
		return nil, fmt.Errorf("failed to apply fusion delta: %w", err)
	}

	metrics.Fusions.WithLabelValues(recipeKey).Inc()
	s.publish(ctx, event.Event{
		Version: event.EventSchemaVersion,
		Type:    event.FusionCompleted,
		Payload: event.FusionCompletedPayloadV1{
			UserID:    userID,
			RecipeKey: recipeKey,
			Produced:  string(recipe.Result),
			Count:     recipe.ResultCount,
		},
	})

	log.Info("Fusion completed", "user_id", userID, "recipe", recipeKey, "produced", recipe.Result, "count", recipe.ResultCount)

	return &domain.FusionResult{
		RecipeKey: recipeKey,
		Produced:  recipe.Result,
		Count:     recipe.ResultCount,
		Consumed:  recipe.Ingredients,
	}, nil
}

func (s *service) GetTarget(ctx context.Context, userID, itemID string) (*domain.EnhancementTarget, error) {
	return s.repo.GetTarget(ctx, userID, itemID)
}

func (s *service) RegisterTarget(ctx context.Context, target *domain.EnhancementTarget) error {
	if target.MaxTier <= 0 || target.CurrentTier < 0 || target.CurrentTier > target.MaxTier {
		return fmt.Errorf("%w: tier bounds out of range", domain.ErrInvalidInput)
	}
	return s.repo.UpsertTarget(ctx, target)
}

func (s *service) publish(ctx context.Context, evt event.Event) {
	if s.bus == nil {
		return
	}
	if err := s.bus.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Warn("Failed to publish enhancement event", "error", err, "type", evt.Type)
	}
}
