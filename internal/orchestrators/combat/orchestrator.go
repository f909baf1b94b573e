// Package combat implements turn-based battles between a character and an
// enemy, and a registry of battles in progress.
package combat

import (
	"context"
	"log/slog"
	"slices"
	"sync"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/quest-chronicles/internal/entities"
	"github.com/KirkDiggler/quest-chronicles/internal/errors"
	"github.com/KirkDiggler/quest-chronicles/internal/pkg/idgen"
)

// Service defines the interface for combat operations
type Service interface {
	// StartBattle pits a living character against a fresh enemy
	StartBattle(ctx context.Context, input *StartBattleInput) (*StartBattleOutput, error)

	// TakeTurn plays one player action and the enemy's reply
	TakeTurn(ctx context.Context, input *TakeTurnInput) (*TakeTurnOutput, error)

	// GetBattle returns a battle in progress or just finished
	GetBattle(ctx context.Context, input *GetBattleInput) (*GetBattleOutput, error)

	// EndBattle removes a battle from the registry and reports its outcome
	EndBattle(ctx context.Context, input *EndBattleInput) (*EndBattleOutput, error)
}

// Config holds the dependencies for the combat orchestrator
type Config struct {
	Roller      dice.Roller
	IDGenerator idgen.Generator
	EventBus    events.EventBus
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Roller == nil {
		vb.RequiredField("Roller")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.EventBus == nil {
		vb.RequiredField("EventBus")
	}

	return vb.Build()
}

type orchestrator struct {
	roller   dice.Roller
	idGen    idgen.Generator
	eventBus events.EventBus

	mu      sync.RWMutex
	battles map[string]*Battle
}

// NewOrchestrator creates a new combat orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		roller:   cfg.Roller,
		idGen:    cfg.IDGenerator,
		eventBus: cfg.EventBus,
		battles:  make(map[string]*Battle),
	}, nil
}

// StartBattle pits a living character against a fresh enemy
func (o *orchestrator) StartBattle(ctx context.Context, input *StartBattleInput) (*StartBattleOutput, error) {
	if input == nil || input.Character == nil {
		return nil, errors.InvalidArgument("character is required")
	}
	c := input.Character

	if !CanCharacterFight(c) {
		return nil, errors.CharacterDeadf("%s is in no shape to fight", c.Name)
	}

	enemyType := input.EnemyType
	if enemyType == "" {
		enemyType = entities.EnemyTypeForLevel(c.Level)
	}
	enemy, err := entities.NewEnemy(enemyType)
	if err != nil {
		return nil, err
	}

	battleID := o.idGen.Generate()
	enemy.ID = battleID + ":" + string(enemyType)

	battle, err := NewBattle(battleID, c, enemy, o.roller)
	if err != nil {
		return nil, err
	}

	opening := slices.Clone(battle.Log)

	o.mu.Lock()
	o.battles[battleID] = battle
	o.mu.Unlock()

	slog.InfoContext(ctx, "Battle started",
		"battle_id", battleID,
		"character", c.Name,
		"enemy", enemyType,
	)
	o.publish(ctx, EventBattleStarted, battle, StateActive, 0, opening)

	return &StartBattleOutput{Battle: battle}, nil
}

// TakeTurn plays one player action and the enemy's reply
func (o *orchestrator) TakeTurn(ctx context.Context, input *TakeTurnInput) (*TakeTurnOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	o.mu.Lock()
	battle, err := o.lookup(input.BattleID)
	if err != nil {
		o.mu.Unlock()
		return nil, err
	}
	result, err := battle.PlayerTurn(input.Action)
	o.mu.Unlock()
	if err != nil {
		return nil, err
	}

	slog.DebugContext(ctx, "Turn resolved",
		"battle_id", battle.ID,
		"turn", result.Turn,
		"action", result.Action,
		"dealt", result.DamageDealt,
		"taken", result.DamageTaken,
		"state", result.State,
	)
	o.publish(ctx, EventTurnResolved, battle, result.State, result.Turn, result.Messages)

	if result.State.IsOver() {
		slog.InfoContext(ctx, "Battle ended",
			"battle_id", battle.ID,
			"state", result.State,
			"turns", result.Turn,
		)
		o.publish(ctx, EventBattleEnded, battle, result.State, result.Turn, nil)
	}

	return &TakeTurnOutput{Result: result}, nil
}

// GetBattle returns a battle in progress or just finished
func (o *orchestrator) GetBattle(_ context.Context, input *GetBattleInput) (*GetBattleOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	o.mu.RLock()
	defer o.mu.RUnlock()

	battle, err := o.lookup(input.BattleID)
	if err != nil {
		return nil, err
	}

	return &GetBattleOutput{Battle: battle}, nil
}

// EndBattle removes a battle from the registry and reports its outcome.
// Ending an active battle abandons it with no reward.
func (o *orchestrator) EndBattle(ctx context.Context, input *EndBattleInput) (*EndBattleOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	battle, err := o.lookup(input.BattleID)
	if err != nil {
		return nil, err
	}
	delete(o.battles, battle.ID)

	slog.DebugContext(ctx, "Battle removed",
		"battle_id", battle.ID,
		"state", battle.State,
	)

	return &EndBattleOutput{
		State:  battle.State,
		Turns:  battle.Turn,
		Reward: battle.Reward(),
	}, nil
}

// lookup must be called with o.mu held
func (o *orchestrator) lookup(battleID string) (*Battle, error) {
	if battleID == "" {
		return nil, errors.InvalidArgument("battle ID is required")
	}
	battle, ok := o.battles[battleID]
	if !ok {
		return nil, errors.NotFoundf("battle %s not found", battleID)
	}
	return battle, nil
}
