package character_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/quest-chronicles/internal/entities"
	"github.com/KirkDiggler/quest-chronicles/internal/errors"
	"github.com/KirkDiggler/quest-chronicles/internal/orchestrators/character"
	characterrepo "github.com/KirkDiggler/quest-chronicles/internal/repositories/character"
	charactermock "github.com/KirkDiggler/quest-chronicles/internal/repositories/character/mock"
	"github.com/KirkDiggler/quest-chronicles/internal/testutils"
)

type OrchestratorTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockRepo     *charactermock.MockRepository
	orchestrator character.Service
	ctx          context.Context
}

func TestOrchestratorSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockRepo = charactermock.NewMockRepository(s.ctrl)
	s.ctx = context.Background()

	var err error
	s.orchestrator, err = character.NewOrchestrator(&character.Config{
		CharacterRepo: s.mockRepo,
	})
	s.Require().NoError(err)
}

func (s *OrchestratorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *OrchestratorTestSuite) TestNewOrchestratorRequiresRepo() {
	_, err := character.NewOrchestrator(&character.Config{})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestCreateCharacter() {
	testCases := []struct {
		class    entities.Class
		health   int
		strength int
		magic    int
	}{
		{entities.ClassWarrior, 120, 15, 5},
		{entities.ClassMage, 80, 8, 20},
		{entities.ClassRogue, 90, 12, 10},
		{entities.ClassCleric, 100, 10, 15},
	}

	for _, tc := range testCases {
		s.Run(string(tc.class), func() {
			out, err := s.orchestrator.CreateCharacter(s.ctx, &character.CreateCharacterInput{
				Name:  "Hero",
				Class: tc.class,
			})
			s.Require().NoError(err)

			c := out.Character
			s.Equal("Hero", c.Name)
			s.Equal(1, c.Level)
			s.Equal(tc.health, c.Health)
			s.Equal(tc.health, c.MaxHealth)
			s.Equal(tc.strength, c.Strength)
			s.Equal(tc.magic, c.Magic)
			s.Equal(0, c.Experience)
			s.Equal(100, c.Gold)
			s.Empty(c.Inventory)
			s.Empty(c.ActiveQuests)
			s.Empty(c.CompletedQuests)
			s.Nil(c.EquippedWeapon)
		})
	}
}

func (s *OrchestratorTestSuite) TestCreateCharacterInvalid() {
	_, err := s.orchestrator.CreateCharacter(s.ctx, &character.CreateCharacterInput{Name: "Hero", Class: "Bard"})
	s.True(errors.IsInvalidClass(err))

	_, err = s.orchestrator.CreateCharacter(s.ctx, &character.CreateCharacterInput{Name: " ", Class: entities.ClassMage})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.orchestrator.CreateCharacter(s.ctx, &character.CreateCharacterInput{
		Name:  "Bob\nGOLD: 99999",
		Class: entities.ClassMage,
	})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.orchestrator.CreateCharacter(s.ctx, nil)
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestGainExperienceSingleLevel() {
	c := testutils.NewTestCharacter(entities.ClassWarrior)

	out, err := s.orchestrator.GainExperience(s.ctx, &character.GainExperienceInput{Character: c, Amount: 250})
	s.Require().NoError(err)

	// 100 pays for level 2, the remaining 150 is short of the 200 level 2 needs
	s.Equal(2, out.Level)
	s.Equal(1, out.LevelsGained)
	s.Equal(150, c.Experience)
	s.Equal(130, c.MaxHealth)
	s.Equal(130, c.Health)
	s.Equal(17, c.Strength)
	s.Equal(7, c.Magic)
}

func (s *OrchestratorTestSuite) TestGainExperienceMultipleLevels() {
	c := testutils.NewTestCharacter(entities.ClassMage)
	c.Health = 10

	// 100 + 200 + 300 = 600 reaches level 4 exactly
	out, err := s.orchestrator.GainExperience(s.ctx, &character.GainExperienceInput{Character: c, Amount: 650})
	s.Require().NoError(err)

	s.Equal(4, out.Level)
	s.Equal(3, out.LevelsGained)
	s.Equal(50, c.Experience)
	s.Equal(110, c.MaxHealth)
	s.Equal(c.MaxHealth, c.Health)
	s.Equal(14, c.Strength)
	s.Equal(26, c.Magic)
}

func (s *OrchestratorTestSuite) TestGainExperienceZeroSettlesPendingLevels() {
	c := testutils.NewTestCharacter(entities.ClassRogue)
	c.Experience = 120

	out, err := s.orchestrator.GainExperience(s.ctx, &character.GainExperienceInput{Character: c})
	s.Require().NoError(err)
	s.Equal(2, out.Level)
	s.Equal(20, c.Experience)
}

func (s *OrchestratorTestSuite) TestGainExperienceDead() {
	c := testutils.NewTestCharacter(entities.ClassWarrior)
	c.Health = 0

	_, err := s.orchestrator.GainExperience(s.ctx, &character.GainExperienceInput{Character: c, Amount: 500})
	s.True(errors.IsCharacterDead(err))
	s.Equal(0, c.Experience)
	s.Equal(1, c.Level)
}

func (s *OrchestratorTestSuite) TestAddGold() {
	c := testutils.NewTestCharacter(entities.ClassWarrior)

	out, err := s.orchestrator.AddGold(s.ctx, &character.AddGoldInput{Character: c, Delta: 50})
	s.Require().NoError(err)
	s.Equal(150, out.Gold)

	out, err = s.orchestrator.AddGold(s.ctx, &character.AddGoldInput{Character: c, Delta: -150})
	s.Require().NoError(err)
	s.Equal(0, out.Gold)

	_, err = s.orchestrator.AddGold(s.ctx, &character.AddGoldInput{Character: c, Delta: -1})
	s.True(errors.IsInvalidAmount(err))
	s.Equal(0, c.Gold)
}

func (s *OrchestratorTestSuite) TestHeal() {
	c := testutils.NewTestCharacter(entities.ClassCleric)
	c.Health = 90

	out, err := s.orchestrator.Heal(s.ctx, &character.HealInput{Character: c, Amount: 30})
	s.Require().NoError(err)
	s.Equal(10, out.Healed)
	s.Equal(100, c.Health)

	out, err = s.orchestrator.Heal(s.ctx, &character.HealInput{Character: c, Amount: 30})
	s.Require().NoError(err)
	s.Equal(0, out.Healed)
	s.LessOrEqual(c.Health, c.MaxHealth)

	_, err = s.orchestrator.Heal(s.ctx, &character.HealInput{Character: c, Amount: -5})
	s.True(errors.IsInvalidAmount(err))
}

func (s *OrchestratorTestSuite) TestRevive() {
	c := testutils.NewTestCharacter(entities.ClassRogue)
	c.Health = 0

	out, err := s.orchestrator.Revive(s.ctx, &character.ReviveInput{Character: c})
	s.Require().NoError(err)
	s.Equal(45, out.Health)
	s.False(c.IsDead())

	tiny := testutils.NewTestCharacter(entities.ClassRogue)
	tiny.MaxHealth = 1
	tiny.Health = 0
	out, err = s.orchestrator.Revive(s.ctx, &character.ReviveInput{Character: tiny})
	s.Require().NoError(err)
	s.Equal(1, out.Health)
}

func (s *OrchestratorTestSuite) TestSaveCharacter() {
	c := testutils.NewTestCharacter(entities.ClassWarrior)
	savedAt := time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC)

	s.mockRepo.EXPECT().
		Save(s.ctx, &characterrepo.SaveInput{Character: c}).
		Return(&characterrepo.SaveOutput{Revision: "rev_1", SavedAt: savedAt}, nil)

	out, err := s.orchestrator.SaveCharacter(s.ctx, &character.SaveCharacterInput{Character: c})
	s.Require().NoError(err)
	s.Equal("rev_1", out.Revision)
	s.Equal(savedAt, out.SavedAt)
}

func (s *OrchestratorTestSuite) TestSaveCharacterRejectsInvalid() {
	c := testutils.NewTestCharacter(entities.ClassWarrior)
	c.Health = c.MaxHealth + 10

	_, err := s.orchestrator.SaveCharacter(s.ctx, &character.SaveCharacterInput{Character: c})
	s.True(errors.IsInvalidSaveData(err))
}

func (s *OrchestratorTestSuite) TestSaveCharacterRepoError() {
	c := testutils.NewTestCharacter(entities.ClassWarrior)

	s.mockRepo.EXPECT().
		Save(s.ctx, gomock.Any()).
		Return(nil, errors.Corrupted("disk full"))

	_, err := s.orchestrator.SaveCharacter(s.ctx, &character.SaveCharacterInput{Character: c})
	s.True(errors.IsCorrupted(err))
}

func (s *OrchestratorTestSuite) TestLoadCharacterRehydratesEquipment() {
	stored := testutils.NewTestCharacter(entities.ClassWarrior)
	stored.Strength += 5
	stored.EquippedWeapon = &entities.EquippedItem{ItemID: "iron_sword"}

	s.mockRepo.EXPECT().
		Load(s.ctx, &characterrepo.LoadInput{Name: "Hero"}).
		Return(&characterrepo.LoadOutput{Character: stored}, nil)

	out, err := s.orchestrator.LoadCharacter(s.ctx, &character.LoadCharacterInput{
		Name:  "Hero",
		Items: testutils.NewTestItemCatalog(),
	})
	s.Require().NoError(err)
	s.Equal(entities.Effect{Stat: entities.StatStrength, Value: 5}, out.Character.EquippedWeapon.Effect)
}

func (s *OrchestratorTestSuite) TestLoadCharacterErrors() {
	s.Run("not found", func() {
		s.mockRepo.EXPECT().
			Load(s.ctx, gomock.Any()).
			Return(nil, errors.CharacterNotFound("no save for Ghost"))

		_, err := s.orchestrator.LoadCharacter(s.ctx, &character.LoadCharacterInput{Name: "Ghost"})
		s.True(errors.IsCharacterNotFound(err))
	})

	s.Run("invariant broken", func() {
		stored := testutils.NewTestCharacter(entities.ClassWarrior)
		stored.Gold = -5
		s.mockRepo.EXPECT().
			Load(s.ctx, gomock.Any()).
			Return(&characterrepo.LoadOutput{Character: stored}, nil)

		_, err := s.orchestrator.LoadCharacter(s.ctx, &character.LoadCharacterInput{Name: "Hero"})
		s.True(errors.IsInvalidSaveData(err))
	})

	s.Run("equipped item unknown", func() {
		stored := testutils.NewTestCharacter(entities.ClassWarrior)
		stored.EquippedArmor = &entities.EquippedItem{ItemID: "dragon_scale"}
		s.mockRepo.EXPECT().
			Load(s.ctx, gomock.Any()).
			Return(&characterrepo.LoadOutput{Character: stored}, nil)

		_, err := s.orchestrator.LoadCharacter(s.ctx, &character.LoadCharacterInput{
			Name:  "Hero",
			Items: testutils.NewTestItemCatalog(),
		})
		s.True(errors.IsInvalidSaveData(err))
	})
}

func (s *OrchestratorTestSuite) TestListAndDelete() {
	s.mockRepo.EXPECT().
		List(s.ctx, gomock.Any()).
		Return(&characterrepo.ListOutput{Names: []string{"Alice", "Hero"}}, nil)

	list, err := s.orchestrator.ListSavedCharacters(s.ctx, &character.ListSavedCharactersInput{})
	s.Require().NoError(err)
	s.Equal([]string{"Alice", "Hero"}, list.Names)

	s.mockRepo.EXPECT().
		Delete(s.ctx, &characterrepo.DeleteInput{Name: "Alice"}).
		Return(&characterrepo.DeleteOutput{}, nil)

	_, err = s.orchestrator.DeleteCharacter(s.ctx, &character.DeleteCharacterInput{Name: "Alice"})
	s.Require().NoError(err)

	_, err = s.orchestrator.DeleteCharacter(s.ctx, &character.DeleteCharacterInput{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestValidateCharacter() {
	c := testutils.NewTestCharacter(entities.ClassMage)
	_, err := s.orchestrator.ValidateCharacter(s.ctx, &character.ValidateCharacterInput{Character: c})
	s.NoError(err)

	c.ActiveQuests = []string{"start"}
	c.CompletedQuests = []string{"start"}
	_, err = s.orchestrator.ValidateCharacter(s.ctx, &character.ValidateCharacterInput{Character: c})
	s.True(errors.IsInvalidSaveData(err))
}
