package combat

import "github.com/KirkDiggler/quest-chronicles/internal/entities"

// StartBattleInput defines the request for starting a battle
type StartBattleInput struct {
	Character *entities.Character
	// EnemyType picks the opponent; empty means the tier for the character's level
	EnemyType entities.EnemyType
}

// StartBattleOutput defines the response for starting a battle
type StartBattleOutput struct {
	Battle *Battle
}

// TakeTurnInput defines the request for playing one round
type TakeTurnInput struct {
	BattleID string
	Action   Action
}

// TakeTurnOutput defines the response for playing one round
type TakeTurnOutput struct {
	Result *TurnResult
}

// GetBattleInput defines the request for looking up a battle
type GetBattleInput struct {
	BattleID string
}

// GetBattleOutput defines the response for looking up a battle
type GetBattleOutput struct {
	Battle *Battle
}

// EndBattleInput defines the request for discarding a battle
type EndBattleInput struct {
	BattleID string
}

// EndBattleOutput defines the response for discarding a battle
type EndBattleOutput struct {
	State  State
	Turns  int
	Reward *entities.Reward
}
