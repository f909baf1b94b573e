package entities_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/quest-chronicles/internal/entities"
	"github.com/KirkDiggler/quest-chronicles/internal/errors"
)

type CharacterTestSuite struct {
	suite.Suite
}

func TestCharacterSuite(t *testing.T) {
	suite.Run(t, new(CharacterTestSuite))
}

func (s *CharacterTestSuite) TestBaseStatsFor() {
	for _, class := range entities.Classes() {
		stats, ok := entities.BaseStatsFor(class)
		s.True(ok, "class %s should have stats", class)
		s.Positive(stats.Health)
	}

	warrior, _ := entities.BaseStatsFor(entities.ClassWarrior)
	s.Equal(entities.BaseStats{Health: 120, Strength: 15, Magic: 5}, warrior)

	_, ok := entities.BaseStatsFor("Bard")
	s.False(ok)
}

func (s *CharacterTestSuite) TestCloneIsDeep() {
	original := &entities.Character{
		Name:           "Hero",
		Inventory:      []string{"potion_small"},
		ActiveQuests:   []string{"start"},
		EquippedWeapon: &entities.EquippedItem{ItemID: "sword"},
	}

	clone := original.Clone()
	clone.Inventory[0] = "changed"
	clone.ActiveQuests = append(clone.ActiveQuests, "other")
	clone.EquippedWeapon.ItemID = "axe"

	s.Equal("potion_small", original.Inventory[0])
	s.Len(original.ActiveQuests, 1)
	s.Equal("sword", original.EquippedWeapon.ItemID)
}

func (s *CharacterTestSuite) TestDeadAndFight() {
	c := &entities.Character{Health: 0}
	s.True(c.IsDead())
	s.False(c.CanFight())

	c.Health = 1
	s.False(c.IsDead())
	s.True(c.CanFight())
}

func (s *CharacterTestSuite) TestQuestSets() {
	c := &entities.Character{
		ActiveQuests:    []string{"goblin_hunt"},
		CompletedQuests: []string{"start"},
	}

	s.True(c.HasActiveQuest("goblin_hunt"))
	s.False(c.HasActiveQuest("start"))
	s.True(c.HasCompletedQuest("start"))
	s.False(c.HasCompletedQuest("goblin_hunt"))
}

func (s *CharacterTestSuite) TestNewEnemy() {
	goblin, err := entities.NewEnemy(entities.EnemyGoblin)
	s.Require().NoError(err)
	s.Equal("Goblin", goblin.Name)
	s.Equal(50, goblin.Health)
	s.Equal(50, goblin.MaxHealth)
	s.Equal(8, goblin.Strength)
	s.Equal(entities.Reward{XP: 25, Gold: 10}, goblin.Reward())

	dragon, err := entities.NewEnemy(entities.EnemyDragon)
	s.Require().NoError(err)
	s.Equal("Dragon", dragon.Name)
	s.Equal(200, dragon.Health)

	_, err = entities.NewEnemy("troll")
	s.Require().Error(err)
	s.True(errors.IsInvalidTarget(err))
}

func (s *CharacterTestSuite) TestEnemyTypeForLevel() {
	s.Equal(entities.EnemyGoblin, entities.EnemyTypeForLevel(1))
	s.Equal(entities.EnemyGoblin, entities.EnemyTypeForLevel(2))
	s.Equal(entities.EnemyOrc, entities.EnemyTypeForLevel(3))
	s.Equal(entities.EnemyOrc, entities.EnemyTypeForLevel(5))
	s.Equal(entities.EnemyDragon, entities.EnemyTypeForLevel(6))
}

func (s *CharacterTestSuite) TestQuestCatalogIDsSorted() {
	catalog := entities.QuestCatalog{
		"b": {ID: "b"},
		"a": {ID: "a"},
		"c": {ID: "c"},
	}
	s.Equal([]string{"a", "b", "c"}, catalog.IDs())

	_, ok := catalog.Get("missing")
	s.False(ok)
}
