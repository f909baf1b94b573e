package combat

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/quest-chronicles/internal/entities"
	"github.com/KirkDiggler/quest-chronicles/internal/errors"
)

// State is where a battle is in its lifecycle
type State string

// Battle states. Only Active accepts turns.
const (
	StateActive        State = "active"
	StatePlayerWon     State = "player_won"
	StateEnemyWon      State = "enemy_won"
	StatePlayerEscaped State = "player_escaped"
)

// IsOver reports whether the battle has ended
func (s State) IsOver() bool {
	return s != StateActive
}

// Action is a player's choice for one turn
type Action string

// Player actions
const (
	ActionAttack  Action = "attack"
	ActionSpecial Action = "special"
	ActionRun     Action = "run"
)

// Actions returns the player actions in menu order
func Actions() []Action {
	return []Action{ActionAttack, ActionSpecial, ActionRun}
}

// ParseAction maps user input to an Action
func ParseAction(raw string) (Action, error) {
	action := Action(strings.ToLower(strings.TrimSpace(raw)))
	switch action {
	case ActionAttack, ActionSpecial, ActionRun:
		return action, nil
	}
	return "", errors.InvalidArgumentf("unknown combat action: %q", raw)
}

// Percentile draws succeed on a roll of 1..50 out of 100
const (
	chanceDie       = 100
	chanceThreshold = 50
)

// ClericHealCap is the most a cleric's special can restore
const ClericHealCap = 30

// CalculateDamage is the basic attack formula used in both directions:
// attacker strength minus a quarter of the defender's, never below 1.
func CalculateDamage(attackerStrength, defenderStrength int) int {
	return max(attackerStrength-defenderStrength/4, 1)
}

// CanCharacterFight reports whether the character is alive
func CanCharacterFight(c *entities.Character) bool {
	return c != nil && c.Health > 0
}

// Battle is one encounter between a character and an enemy. Turns strictly
// alternate: the player acts, the end is checked, the enemy acts, the end is
// checked again.
type Battle struct {
	ID        string
	Character *entities.Character
	Enemy     *entities.Enemy
	State     State
	Turn      int
	Log       []string

	roller dice.Roller
}

// TurnResult describes one round
type TurnResult struct {
	Turn   int
	Action Action

	// Player side
	DamageDealt int
	Healed      int
	Critical    bool
	Escaped     bool

	// Enemy side
	EnemyActed  bool
	DamageTaken int

	State    State
	Reward   *entities.Reward
	Messages []string
}

// NewBattle starts a battle. The character must be alive.
func NewBattle(id string, c *entities.Character, enemy *entities.Enemy, roller dice.Roller) (*Battle, error) {
	if c == nil || enemy == nil {
		return nil, errors.InvalidArgument("character and enemy are required")
	}
	if roller == nil {
		return nil, errors.InvalidArgument("roller is required")
	}
	if !CanCharacterFight(c) {
		return nil, errors.CharacterDeadf("%s cannot fight with %d health", c.Name, c.Health)
	}

	b := &Battle{
		ID:        id,
		Character: c,
		Enemy:     enemy,
		State:     StateActive,
		roller:    roller,
	}
	b.logf("%s encounters a %s!", c.Name, enemy.Name)
	return b, nil
}

// Reward is the enemy's bounty if the player won, nil otherwise
func (b *Battle) Reward() *entities.Reward {
	if b.State != StatePlayerWon {
		return nil
	}
	r := b.Enemy.Reward()
	return &r
}

// PlayerTurn resolves the player's action and, if the battle is still on,
// the enemy's reply.
func (b *Battle) PlayerTurn(action Action) (*TurnResult, error) {
	if b.State.IsOver() {
		return nil, errors.CombatNotActivef("battle %s is over (%s)", b.ID, b.State).
			WithMeta("state", string(b.State))
	}
	switch action {
	case ActionAttack, ActionSpecial, ActionRun:
	default:
		return nil, errors.InvalidArgumentf("unknown combat action: %q", action)
	}

	// Draw any randomness before mutating so a roller failure leaves the
	// battle untouched.
	var draw int
	if action == ActionRun || (action == ActionSpecial && b.Character.Class == entities.ClassRogue) {
		roll, err := b.roller.Roll(chanceDie)
		if err != nil {
			return nil, errors.Wrap(err, "failed to roll")
		}
		draw = roll
	}

	b.Turn++
	start := len(b.Log)
	result := &TurnResult{Turn: b.Turn, Action: action}

	switch action {
	case ActionAttack:
		b.attackEnemy(result, CalculateDamage(b.Character.Strength, b.Enemy.Strength))
		b.logf("%s attacks for %d damage", b.Character.Name, result.DamageDealt)
	case ActionSpecial:
		b.special(result, draw)
	case ActionRun:
		if draw <= chanceThreshold {
			result.Escaped = true
			b.State = StatePlayerEscaped
			b.logf("%s escaped!", b.Character.Name)
		} else {
			b.logf("%s failed to escape", b.Character.Name)
		}
	}

	if !result.Escaped {
		b.checkEnd()
		if b.State == StateActive {
			b.enemyTurn(result)
			b.checkEnd()
		}
	}

	switch b.State {
	case StatePlayerWon:
		b.logf("%s is defeated! %s earns %d XP and %d gold",
			b.Enemy.Name, b.Character.Name, b.Enemy.XPReward, b.Enemy.GoldReward)
	case StateEnemyWon:
		b.logf("%s has fallen", b.Character.Name)
	}

	result.State = b.State
	result.Reward = b.Reward()
	result.Messages = append([]string(nil), b.Log[start:]...)
	return result, nil
}

func (b *Battle) special(result *TurnResult, draw int) {
	c := b.Character
	switch c.Class {
	case entities.ClassWarrior:
		b.attackEnemy(result, c.Strength*2)
		b.logf("%s uses Power Strike for %d damage", c.Name, result.DamageDealt)
	case entities.ClassMage:
		b.attackEnemy(result, c.Magic*2)
		b.logf("%s casts Fireball for %d damage", c.Name, result.DamageDealt)
	case entities.ClassRogue:
		if draw <= chanceThreshold {
			result.Critical = true
			b.attackEnemy(result, c.Strength*3)
			b.logf("%s lands a critical Sneak Attack for %d damage", c.Name, result.DamageDealt)
		} else {
			b.attackEnemy(result, c.Strength)
			b.logf("%s's Sneak Attack deals %d damage", c.Name, result.DamageDealt)
		}
	case entities.ClassCleric:
		healed := min(ClericHealCap, c.MaxHealth-c.Health)
		c.Health += healed
		result.Healed = healed
		b.logf("%s heals for %d", c.Name, healed)
	}
}

func (b *Battle) attackEnemy(result *TurnResult, damage int) {
	b.Enemy.Health = max(b.Enemy.Health-damage, 0)
	result.DamageDealt = damage
}

func (b *Battle) enemyTurn(result *TurnResult) {
	damage := CalculateDamage(b.Enemy.Strength, b.Character.Strength)
	b.Character.Health = max(b.Character.Health-damage, 0)
	result.EnemyActed = true
	result.DamageTaken = damage
	b.logf("%s attacks for %d damage", b.Enemy.Name, damage)
}

func (b *Battle) checkEnd() {
	switch {
	case b.Enemy.Health <= 0:
		b.State = StatePlayerWon
	case b.Character.Health <= 0:
		b.State = StateEnemyWon
	}
}

func (b *Battle) logf(format string, args ...any) {
	b.Log = append(b.Log, fmt.Sprintf(format, args...))
}
