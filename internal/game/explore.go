package game

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/quest-chronicles/internal/entities"
	"github.com/KirkDiggler/quest-chronicles/internal/errors"
	"github.com/KirkDiggler/quest-chronicles/internal/orchestrators/character"
	"github.com/KirkDiggler/quest-chronicles/internal/orchestrators/combat"
)

// MaxExploreTurns bounds an auto-played encounter. A cleric healing every
// turn can outlast a weak enemy forever.
const MaxExploreTurns = 100

// ExploreInput defines one auto-played encounter
type ExploreInput struct {
	Character *entities.Character
	Action    combat.Action
	// EnemyType overrides the level based pick when set
	EnemyType entities.EnemyType
}

// ExploreResult is the outcome of an encounter after rewards are applied
type ExploreResult struct {
	BattleID     string
	Enemy        *entities.Enemy
	State        combat.State
	Turns        int
	Log          []string
	Reward       *entities.Reward
	LevelsGained int
	Revived      bool
	// Abandoned is set when the turn limit ran out before a winner
	Abandoned bool
}

// Explore fights one encounter, taking the same action every turn. A win
// pays the enemy's reward through the leveling rules; a loss revives the
// character at half health.
func (s *Session) Explore(ctx context.Context, input *ExploreInput) (*ExploreResult, error) {
	if input == nil || input.Character == nil {
		return nil, errors.InvalidArgument("character is required")
	}
	c := input.Character

	action, err := combat.ParseAction(string(input.Action))
	if err != nil {
		return nil, err
	}

	started, err := s.Combat.StartBattle(ctx, &combat.StartBattleInput{Character: c, EnemyType: input.EnemyType})
	if err != nil {
		return nil, err
	}
	battle := started.Battle

	result := &ExploreResult{
		BattleID: battle.ID,
		Enemy:    battle.Enemy,
		Log:      append([]string(nil), battle.Log...),
	}

	for turn := 0; turn < MaxExploreTurns; turn++ {
		out, err := s.Combat.TakeTurn(ctx, &combat.TakeTurnInput{BattleID: battle.ID, Action: action})
		if err != nil {
			_, _ = s.Combat.EndBattle(ctx, &combat.EndBattleInput{BattleID: battle.ID})
			return nil, err
		}
		result.Log = append(result.Log, out.Result.Messages...)
		if out.Result.State.IsOver() {
			break
		}
	}

	ended, err := s.Combat.EndBattle(ctx, &combat.EndBattleInput{BattleID: battle.ID})
	if err != nil {
		return nil, err
	}
	result.State = ended.State
	result.Turns = ended.Turns
	result.Reward = ended.Reward
	result.Abandoned = ended.State == combat.StateActive

	switch ended.State {
	case combat.StatePlayerWon:
		gained, err := s.Characters.GainExperience(ctx, &character.GainExperienceInput{
			Character: c,
			Amount:    ended.Reward.XP,
		})
		if err != nil {
			return nil, err
		}
		result.LevelsGained = gained.LevelsGained

		if _, err := s.Characters.AddGold(ctx, &character.AddGoldInput{Character: c, Delta: ended.Reward.Gold}); err != nil {
			return nil, err
		}
	case combat.StateEnemyWon:
		if _, err := s.Characters.Revive(ctx, &character.ReviveInput{Character: c}); err != nil {
			return nil, err
		}
		result.Revived = true
	}

	slog.InfoContext(ctx, "Encounter finished",
		"name", c.Name,
		"enemy", result.Enemy.Type,
		"state", result.State,
		"turns", result.Turns,
	)

	return result, nil
}
