package testutils

import (
	"github.com/KirkDiggler/quest-chronicles/internal/entities"
)

// TestCharacterName is the default character name for test fixtures
const TestCharacterName = "Hero"

// NewTestCharacter returns a fresh level 1 character of the given class
func NewTestCharacter(class entities.Class) *entities.Character {
	stats, _ := entities.BaseStatsFor(class)
	return &entities.Character{
		Name:            TestCharacterName,
		Class:           class,
		Level:           entities.StartingLevel,
		Health:          stats.Health,
		MaxHealth:       stats.Health,
		Strength:        stats.Strength,
		Magic:           stats.Magic,
		Gold:            entities.StartingGold,
		Inventory:       []string{},
		ActiveQuests:    []string{},
		CompletedQuests: []string{},
	}
}

// NewTestQuestCatalog returns a small quest chain:
// start -> goblin_hunt -> orc_warlord, plus an unrelated high level quest.
func NewTestQuestCatalog() entities.QuestCatalog {
	return entities.QuestCatalog{
		"start": {
			ID:            "start",
			Title:         "First Steps",
			Description:   "Your adventure begins.",
			RewardXP:      50,
			RewardGold:    20,
			RequiredLevel: 1,
			Prerequisite:  entities.PrerequisiteNone,
		},
		"goblin_hunt": {
			ID:            "goblin_hunt",
			Title:         "Goblin Hunt",
			Description:   "Clear the goblins from the road.",
			RewardXP:      120,
			RewardGold:    40,
			RequiredLevel: 1,
			Prerequisite:  "start",
		},
		"orc_warlord": {
			ID:            "orc_warlord",
			Title:         "The Orc Warlord",
			Description:   "Defeat the warlord in the hills.",
			RewardXP:      300,
			RewardGold:    150,
			RequiredLevel: 3,
			Prerequisite:  "goblin_hunt",
		},
		"dragon_lair": {
			ID:            "dragon_lair",
			Title:         "Dragon's Lair",
			Description:   "Face the dragon.",
			RewardXP:      1000,
			RewardGold:    500,
			RequiredLevel: 8,
			Prerequisite:  entities.PrerequisiteNone,
		},
	}
}

// NewTestItemCatalog returns one item of each type plus a second weapon
func NewTestItemCatalog() entities.ItemCatalog {
	return entities.ItemCatalog{
		"potion_small": {
			ID:          "potion_small",
			Name:        "Small Potion",
			Type:        entities.ItemTypeConsumable,
			Effect:      "health:20",
			Cost:        25,
			Description: "Restores 20 HP.",
		},
		"iron_sword": {
			ID:          "iron_sword",
			Name:        "Iron Sword",
			Type:        entities.ItemTypeWeapon,
			Effect:      "strength:+5",
			Cost:        60,
			Description: "A plain blade.",
		},
		"oak_staff": {
			ID:          "oak_staff",
			Name:        "Oak Staff",
			Type:        entities.ItemTypeWeapon,
			Effect:      "magic:+4",
			Cost:        45,
			Description: "Hums faintly.",
		},
		"leather_armor": {
			ID:          "leather_armor",
			Name:        "Leather Armor",
			Type:        entities.ItemTypeArmor,
			Effect:      "health:+15",
			Cost:        40,
			Description: "Stiff but reliable.",
		},
		"cracked_gem": {
			ID:          "cracked_gem",
			Name:        "Cracked Gem",
			Type:        entities.ItemTypeConsumable,
			Effect:      "luck:+1",
			Cost:        5,
			Description: "Nobody knows what it does.",
		},
	}
}
