package game_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/quest-chronicles/internal/entities"
	"github.com/KirkDiggler/quest-chronicles/internal/errors"
	"github.com/KirkDiggler/quest-chronicles/internal/game"
	"github.com/KirkDiggler/quest-chronicles/internal/gamedata"
	"github.com/KirkDiggler/quest-chronicles/internal/orchestrators/character"
	"github.com/KirkDiggler/quest-chronicles/internal/orchestrators/combat"
	"github.com/KirkDiggler/quest-chronicles/internal/orchestrators/inventory"
	"github.com/KirkDiggler/quest-chronicles/internal/orchestrators/quest"
	"github.com/KirkDiggler/quest-chronicles/internal/pkg/clock"
	"github.com/KirkDiggler/quest-chronicles/internal/pkg/idgen"
	characterrepo "github.com/KirkDiggler/quest-chronicles/internal/repositories/character"
	"github.com/KirkDiggler/quest-chronicles/internal/testutils"
)

type SessionTestSuite struct {
	suite.Suite
	session  *game.Session
	catalogs *gamedata.Catalogs
	chars    character.Service
	roller   *testutils.ScriptedRoller
	ctx      context.Context
}

func TestSessionSuite(t *testing.T) {
	suite.Run(t, new(SessionTestSuite))
}

func (s *SessionTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.roller = testutils.NewScriptedRoller()
	s.catalogs = &gamedata.Catalogs{
		Quests: testutils.NewTestQuestCatalog(),
		Items:  testutils.NewTestItemCatalog(),
	}

	repo, err := characterrepo.NewFile(&characterrepo.FileConfig{
		Dir:   s.T().TempDir(),
		Clock: clock.New(),
	})
	s.Require().NoError(err)

	s.chars, err = character.NewOrchestrator(&character.Config{CharacterRepo: repo})
	s.Require().NoError(err)

	s.session, err = game.New(&game.Config{
		Catalogs:    s.catalogs,
		Characters:  s.chars,
		Roller:      s.roller,
		IDGenerator: idgen.NewSequential("battle"),
	})
	s.Require().NoError(err)
}

func (s *SessionTestSuite) newCharacter(class entities.Class) *entities.Character {
	c, err := s.session.NewCharacter(s.ctx, testutils.TestCharacterName, class)
	s.Require().NoError(err)
	return c
}

func (s *SessionTestSuite) TestNewValidation() {
	_, err := game.New(nil)
	s.True(errors.IsInvalidArgument(err))

	_, err = game.New(&game.Config{Catalogs: s.catalogs})
	s.True(errors.IsInvalidArgument(err))
}

func (s *SessionTestSuite) TestNewRejectsCyclicCatalog() {
	catalogs := &gamedata.Catalogs{
		Quests: entities.QuestCatalog{
			"a": {ID: "a", Title: "A", RequiredLevel: 1, Prerequisite: "b"},
			"b": {ID: "b", Title: "B", RequiredLevel: 1, Prerequisite: "a"},
		},
		Items: entities.ItemCatalog{},
	}

	_, err := game.New(&game.Config{
		Catalogs:    catalogs,
		Characters:  s.chars,
		Roller:      s.roller,
		IDGenerator: idgen.NewSequential("battle"),
	})
	s.True(errors.IsCyclicPrerequisite(err))
}

func (s *SessionTestSuite) TestNewCharacter() {
	c := s.newCharacter(entities.ClassWarrior)
	s.Equal(120, c.Health)

	loaded, err := s.session.Load(s.ctx, testutils.TestCharacterName)
	s.Require().NoError(err)
	s.Equal(c, loaded)

	_, err = s.session.NewCharacter(s.ctx, testutils.TestCharacterName, entities.ClassMage)
	s.True(errors.IsAlreadyExists(err))

	_, err = s.session.NewCharacter(s.ctx, "Other", entities.Class("Bard"))
	s.True(errors.IsInvalidClass(err))
}

func (s *SessionTestSuite) TestLoadMissing() {
	_, err := s.session.Load(s.ctx, "Nobody")
	s.True(errors.IsCharacterNotFound(err))
}

func (s *SessionTestSuite) TestPlaySavesOnSuccess() {
	s.newCharacter(entities.ClassWarrior)

	_, err := s.session.Play(s.ctx, testutils.TestCharacterName, func(ctx context.Context, c *entities.Character) error {
		if _, err := s.session.Inventory.PurchaseItem(ctx, &inventory.PurchaseItemInput{Character: c, ItemID: "iron_sword"}); err != nil {
			return err
		}
		_, err := s.session.Inventory.EquipWeapon(ctx, &inventory.EquipInput{Character: c, ItemID: "iron_sword"})
		return err
	})
	s.Require().NoError(err)

	loaded, err := s.session.Load(s.ctx, testutils.TestCharacterName)
	s.Require().NoError(err)
	s.Equal(40, loaded.Gold)
	s.Equal(20, loaded.Strength)
	s.Require().NotNil(loaded.EquippedWeapon)
	s.Equal(entities.Effect{Stat: entities.StatStrength, Value: 5}, loaded.EquippedWeapon.Effect)
}

func (s *SessionTestSuite) TestPlayDoesNotSaveOnFailure() {
	s.newCharacter(entities.ClassWarrior)

	_, err := s.session.Play(s.ctx, testutils.TestCharacterName, func(ctx context.Context, c *entities.Character) error {
		c.Gold = 5
		_, err := s.session.Inventory.SellItem(ctx, &inventory.SellItemInput{Character: c, ItemID: "iron_sword"})
		return err
	})
	s.True(errors.IsItemNotFound(err))

	loaded, err := s.session.Load(s.ctx, testutils.TestCharacterName)
	s.Require().NoError(err)
	s.Equal(entities.StartingGold, loaded.Gold)
}

func (s *SessionTestSuite) TestCompleteQuestSettlesLevels() {
	c := testutils.NewTestCharacter(entities.ClassWarrior)
	c.Experience = 90
	_, err := s.session.Quests.AcceptQuest(s.ctx, &quest.AcceptQuestInput{Character: c, QuestID: "start"})
	s.Require().NoError(err)

	out, err := s.session.CompleteQuest(s.ctx, c, "start")
	s.Require().NoError(err)
	s.Equal(entities.Reward{XP: 50, Gold: 20}, out.Reward)
	s.Equal(2, out.Level)
	s.Equal(1, out.LevelsGained)
	s.Equal(40, c.Experience)
	s.Equal(130, c.Health)
}

func (s *SessionTestSuite) TestCompleteQuestWhileDead() {
	c := testutils.NewTestCharacter(entities.ClassWarrior)
	c.Experience = 90
	c.Health = 0
	c.ActiveQuests = []string{"start"}

	out, err := s.session.CompleteQuest(s.ctx, c, "start")
	s.Require().NoError(err)
	s.Equal(1, out.Level)
	s.Equal(140, c.Experience)
}

func (s *SessionTestSuite) TestExploreWin() {
	c := testutils.NewTestCharacter(entities.ClassWarrior)

	out, err := s.session.Explore(s.ctx, &game.ExploreInput{Character: c, Action: combat.ActionSpecial})
	s.Require().NoError(err)

	s.Equal(combat.StatePlayerWon, out.State)
	s.Equal(entities.EnemyGoblin, out.Enemy.Type)
	s.Equal(2, out.Turns)
	s.Require().NotNil(out.Reward)
	s.Equal(25, c.Experience)
	s.Equal(110, c.Gold)
	s.Equal(115, c.Health)
	s.NotEmpty(out.Log)
	s.False(out.Abandoned)

	_, err = s.session.Combat.GetBattle(s.ctx, &combat.GetBattleInput{BattleID: out.BattleID})
	s.True(errors.IsNotFound(err))
}

func (s *SessionTestSuite) TestExploreLossRevives() {
	c := testutils.NewTestCharacter(entities.ClassMage)
	c.Health = 5

	out, err := s.session.Explore(s.ctx, &game.ExploreInput{
		Character: c,
		Action:    combat.ActionAttack,
		EnemyType: entities.EnemyDragon,
	})
	s.Require().NoError(err)
	s.Equal(combat.StateEnemyWon, out.State)
	s.True(out.Revived)
	s.Nil(out.Reward)
	s.Equal(40, c.Health)
	s.Equal(entities.StartingGold, c.Gold)
}

func (s *SessionTestSuite) TestExploreEscape() {
	s.roller.Queue(75, 20)
	c := testutils.NewTestCharacter(entities.ClassRogue)

	out, err := s.session.Explore(s.ctx, &game.ExploreInput{Character: c, Action: combat.ActionRun})
	s.Require().NoError(err)
	s.Equal(combat.StatePlayerEscaped, out.State)
	s.Equal(2, out.Turns)
	s.Nil(out.Reward)
	s.Equal(85, c.Health)
}

func (s *SessionTestSuite) TestExploreStopsAtTurnLimit() {
	c := testutils.NewTestCharacter(entities.ClassCleric)

	out, err := s.session.Explore(s.ctx, &game.ExploreInput{Character: c, Action: combat.ActionSpecial})
	s.Require().NoError(err)
	s.True(out.Abandoned)
	s.Equal(combat.StateActive, out.State)
	s.Equal(game.MaxExploreTurns, out.Turns)
	s.Equal(50, out.Enemy.Health)
	s.Positive(c.Health)
}

func (s *SessionTestSuite) TestExploreErrors() {
	c := testutils.NewTestCharacter(entities.ClassWarrior)

	_, err := s.session.Explore(s.ctx, &game.ExploreInput{Character: c, Action: "dance"})
	s.True(errors.IsInvalidArgument(err))

	c.Health = 0
	_, err = s.session.Explore(s.ctx, &game.ExploreInput{Character: c, Action: combat.ActionAttack})
	s.True(errors.IsCharacterDead(err))
}
