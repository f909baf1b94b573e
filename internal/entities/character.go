package entities

import "slices"

// Class is a playable character class
type Class string

// Playable classes
const (
	ClassWarrior Class = "Warrior"
	ClassMage    Class = "Mage"
	ClassRogue   Class = "Rogue"
	ClassCleric  Class = "Cleric"
)

// MaxInventorySize is the most items a character can carry
const MaxInventorySize = 20

// Starting values for a new character
const (
	StartingLevel = 1
	StartingGold  = 100
)

// BaseStats holds the per-class starting attributes
type BaseStats struct {
	Health   int
	Strength int
	Magic    int
}

var classStats = map[Class]BaseStats{
	ClassWarrior: {Health: 120, Strength: 15, Magic: 5},
	ClassMage:    {Health: 80, Strength: 8, Magic: 20},
	ClassRogue:   {Health: 90, Strength: 12, Magic: 10},
	ClassCleric:  {Health: 100, Strength: 10, Magic: 15},
}

// Classes returns the playable classes in display order
func Classes() []Class {
	return []Class{ClassWarrior, ClassMage, ClassRogue, ClassCleric}
}

// BaseStatsFor looks up the starting stats for a class
func BaseStatsFor(class Class) (BaseStats, bool) {
	stats, ok := classStats[class]
	return stats, ok
}

// EquippedItem is an occupied equip slot. The effect is cached so it can be
// reversed without going back to the item catalog.
type EquippedItem struct {
	ItemID string
	Effect Effect
}

// Character is the player's persistent record
type Character struct {
	Name            string
	Class           Class
	Level           int
	Health          int
	MaxHealth       int
	Strength        int
	Magic           int
	Experience      int
	Gold            int
	Inventory       []string
	ActiveQuests    []string
	CompletedQuests []string
	EquippedWeapon  *EquippedItem
	EquippedArmor   *EquippedItem
}

// GetID implements core.Entity. Names are unique per save.
func (c *Character) GetID() string {
	return c.Name
}

// GetType implements core.Entity
func (c *Character) GetType() string {
	return "character"
}

// IsDead reports whether the character has no health left
func (c *Character) IsDead() bool {
	return c.Health <= 0
}

// CanFight reports whether the character may enter combat
func (c *Character) CanFight() bool {
	return c.Health > 0
}

// HasActiveQuest reports whether questID is in the active set
func (c *Character) HasActiveQuest(questID string) bool {
	return slices.Contains(c.ActiveQuests, questID)
}

// HasCompletedQuest reports whether questID is in the completed set
func (c *Character) HasCompletedQuest(questID string) bool {
	return slices.Contains(c.CompletedQuests, questID)
}

// Clone returns a deep copy
func (c *Character) Clone() *Character {
	if c == nil {
		return nil
	}
	out := *c
	out.Inventory = slices.Clone(c.Inventory)
	out.ActiveQuests = slices.Clone(c.ActiveQuests)
	out.CompletedQuests = slices.Clone(c.CompletedQuests)
	if c.EquippedWeapon != nil {
		w := *c.EquippedWeapon
		out.EquippedWeapon = &w
	}
	if c.EquippedArmor != nil {
		a := *c.EquippedArmor
		out.EquippedArmor = &a
	}
	return &out
}
