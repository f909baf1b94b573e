package savefile_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/quest-chronicles/internal/entities"
	"github.com/KirkDiggler/quest-chronicles/internal/errors"
	"github.com/KirkDiggler/quest-chronicles/internal/savefile"
)

type SaveFileTestSuite struct {
	suite.Suite
	character *entities.Character
	items     entities.ItemCatalog
}

func TestSaveFileSuite(t *testing.T) {
	suite.Run(t, new(SaveFileTestSuite))
}

func (s *SaveFileTestSuite) SetupTest() {
	s.character = &entities.Character{
		Name:            "Hero",
		Class:           entities.ClassWarrior,
		Level:           2,
		Health:          100,
		MaxHealth:       130,
		Strength:        22,
		Magic:           7,
		Experience:      150,
		Gold:            80,
		Inventory:       []string{"potion_small", "potion_small"},
		ActiveQuests:    []string{"goblin_hunt"},
		CompletedQuests: []string{"start"},
		EquippedWeapon: &entities.EquippedItem{
			ItemID: "iron_sword",
			Effect: entities.Effect{Stat: entities.StatStrength, Value: 5},
		},
	}
	s.items = entities.ItemCatalog{
		"iron_sword": {ID: "iron_sword", Type: entities.ItemTypeWeapon, Effect: "strength:+5"},
		"leather":    {ID: "leather", Type: entities.ItemTypeArmor, Effect: "health:10"},
	}
}

func (s *SaveFileTestSuite) TestEncode() {
	text := savefile.Encode(s.character)

	s.Contains(text, "NAME: Hero\n")
	s.Contains(text, "CLASS: Warrior\n")
	s.Contains(text, "INVENTORY: potion_small,potion_small\n")
	s.Contains(text, "ACTIVE_QUESTS: goblin_hunt\n")
	s.Contains(text, "EQUIPPED_WEAPON: iron_sword\n")
	s.Contains(text, "EQUIPPED_ARMOR: \n")
}

func (s *SaveFileTestSuite) TestRoundTrip() {
	decoded, err := savefile.Decode(savefile.Encode(s.character))
	s.Require().NoError(err)
	s.Require().NoError(savefile.Rehydrate(decoded, s.items))

	s.Equal(s.character, decoded)
}

func (s *SaveFileTestSuite) TestValidSavesRoundTrip() {
	s.character.Name = "Sir Reginald: the Bold"
	s.character.Inventory = []string{"potion_small", "iron_sword", "potion_small"}
	s.character.ActiveQuests = []string{"goblin_hunt", "herbalist"}
	s.character.CompletedQuests = []string{"start"}
	s.Require().NoError(savefile.Validate(s.character))

	decoded, err := savefile.Decode(savefile.Encode(s.character))
	s.Require().NoError(err)
	s.Require().NoError(savefile.Rehydrate(decoded, s.items))
	s.Equal(s.character, decoded)
}

func (s *SaveFileTestSuite) TestDecodeEmptyLists() {
	s.character.Inventory = []string{}
	s.character.ActiveQuests = []string{}
	s.character.CompletedQuests = []string{}
	s.character.EquippedWeapon = nil

	decoded, err := savefile.Decode(savefile.Encode(s.character))
	s.Require().NoError(err)
	s.Empty(decoded.Inventory)
	s.NotNil(decoded.Inventory)
	s.Nil(decoded.EquippedWeapon)
}

func (s *SaveFileTestSuite) TestDecodeWithoutEquipmentLines() {
	text := savefile.Encode(s.character)
	text = strings.Replace(text, "EQUIPPED_WEAPON: iron_sword\n", "", 1)
	text = strings.Replace(text, "EQUIPPED_ARMOR: \n", "", 1)

	decoded, err := savefile.Decode(text)
	s.Require().NoError(err)
	s.Nil(decoded.EquippedWeapon)
}

func (s *SaveFileTestSuite) TestDecodeErrors() {
	valid := savefile.Encode(s.character)

	testCases := []struct {
		name  string
		text  string
		check func(error) bool
	}{
		{
			name:  "missing field",
			text:  strings.Replace(valid, "GOLD: 80\n", "", 1),
			check: errors.IsInvalidSaveData,
		},
		{
			name:  "bad number",
			text:  strings.Replace(valid, "GOLD: 80", "GOLD: eighty", 1),
			check: errors.IsInvalidSaveData,
		},
		{
			name:  "line without colon",
			text:  valid + "garbage\n",
			check: errors.IsInvalidSaveData,
		},
		{
			name:  "unknown field",
			text:  valid + "CHARISMA: 9\n",
			check: errors.IsInvalidSaveData,
		},
		{
			name:  "repeated field",
			text:  valid + "NAME: Impostor\n",
			check: errors.IsInvalidSaveData,
		},
		{
			name:  "binary data",
			text:  "NAME: \xff\xfe\n",
			check: errors.IsCorrupted,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := savefile.Decode(tc.text)
			s.Require().Error(err)
			s.True(tc.check(err), "unexpected error: %v", err)
		})
	}
}

func (s *SaveFileTestSuite) TestRehydrateErrors() {
	s.Run("unknown item", func() {
		c := &entities.Character{EquippedArmor: &entities.EquippedItem{ItemID: "mithril"}}
		err := savefile.Rehydrate(c, s.items)
		s.True(errors.IsInvalidSaveData(err))
	})

	s.Run("wrong slot type", func() {
		c := &entities.Character{EquippedArmor: &entities.EquippedItem{ItemID: "iron_sword"}}
		err := savefile.Rehydrate(c, s.items)
		s.True(errors.IsInvalidSaveData(err))
	})

	s.Run("restores armor effect", func() {
		c := &entities.Character{EquippedArmor: &entities.EquippedItem{ItemID: "leather"}}
		s.Require().NoError(savefile.Rehydrate(c, s.items))
		s.Equal(entities.Effect{Stat: entities.StatHealth, Value: 10}, c.EquippedArmor.Effect)
	})
}

func (s *SaveFileTestSuite) TestValidate() {
	s.NoError(savefile.Validate(s.character))

	testCases := []struct {
		name   string
		mutate func(c *entities.Character)
	}{
		{"empty name", func(c *entities.Character) { c.Name = "" }},
		{"unknown class", func(c *entities.Character) { c.Class = "Bard" }},
		{"level zero", func(c *entities.Character) { c.Level = 0 }},
		{"health above max", func(c *entities.Character) { c.Health = c.MaxHealth + 1 }},
		{"negative gold", func(c *entities.Character) { c.Gold = -1 }},
		{"quest active and completed", func(c *entities.Character) {
			c.ActiveQuests = append(c.ActiveQuests, "start")
		}},
		{"name with line break", func(c *entities.Character) { c.Name = "Bob\nGOLD: 99999" }},
		{"name with surrounding space", func(c *entities.Character) { c.Name = " Bob" }},
		{"inventory id with comma", func(c *entities.Character) { c.Inventory = []string{"a,b"} }},
		{"empty inventory id", func(c *entities.Character) { c.Inventory = []string{""} }},
		{"quest id with line break", func(c *entities.Character) {
			c.CompletedQuests = []string{"start\nGOLD: 1"}
		}},
		{"empty equipped id", func(c *entities.Character) {
			c.EquippedArmor = &entities.EquippedItem{}
		}},
		{"inventory overflow", func(c *entities.Character) {
			c.Inventory = make([]string, entities.MaxInventorySize+1)
		}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			c := s.character.Clone()
			tc.mutate(c)
			err := savefile.Validate(c)
			s.Require().Error(err)
			s.True(errors.IsInvalidSaveData(err))
		})
	}
}
