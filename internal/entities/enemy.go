package entities

import (
	"github.com/KirkDiggler/rpg-toolkit/core"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/KirkDiggler/quest-chronicles/internal/errors"
)

// EnemyType keys the enemy table
type EnemyType string

// Known enemy types
const (
	EnemyGoblin EnemyType = "goblin"
	EnemyOrc    EnemyType = "orc"
	EnemyDragon EnemyType = "dragon"
)

type enemyStats struct {
	health     int
	strength   int
	magic      int
	xpReward   int
	goldReward int
}

var enemyTable = map[EnemyType]enemyStats{
	EnemyGoblin: {health: 50, strength: 8, magic: 2, xpReward: 25, goldReward: 10},
	EnemyOrc:    {health: 80, strength: 12, magic: 5, xpReward: 50, goldReward: 25},
	EnemyDragon: {health: 200, strength: 25, magic: 15, xpReward: 200, goldReward: 100},
}

// Enemy is a combat opponent. It lives for one battle and is never saved.
type Enemy struct {
	ID         string
	Type       EnemyType
	Name       string
	Health     int
	MaxHealth  int
	Strength   int
	Magic      int
	XPReward   int
	GoldReward int
}

// GetID implements core.Entity
func (e *Enemy) GetID() string {
	return e.ID
}

// GetType implements core.Entity
func (e *Enemy) GetType() string {
	return "enemy"
}

// IsDead reports whether the enemy has no health left
func (e *Enemy) IsDead() bool {
	return e.Health <= 0
}

// Reward is what the player earns for defeating this enemy
func (e *Enemy) Reward() Reward {
	return Reward{XP: e.XPReward, Gold: e.GoldReward}
}

// NewEnemy builds a fresh enemy of the given type at full health
func NewEnemy(enemyType EnemyType) (*Enemy, error) {
	stats, ok := enemyTable[enemyType]
	if !ok {
		return nil, errors.InvalidTargetf("unknown enemy type: %s", enemyType)
	}

	return &Enemy{
		Type:       enemyType,
		Name:       cases.Title(language.English).String(string(enemyType)),
		Health:     stats.health,
		MaxHealth:  stats.health,
		Strength:   stats.strength,
		Magic:      stats.magic,
		XPReward:   stats.xpReward,
		GoldReward: stats.goldReward,
	}, nil
}

// EnemyTypeForLevel picks the enemy tier for a character level
func EnemyTypeForLevel(level int) EnemyType {
	switch {
	case level <= 2:
		return EnemyGoblin
	case level <= 5:
		return EnemyOrc
	default:
		return EnemyDragon
	}
}

// Compile-time check that combatants can ride on toolkit events
var (
	_ core.Entity = (*Character)(nil)
	_ core.Entity = (*Enemy)(nil)
)
