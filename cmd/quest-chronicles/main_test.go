package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/quest-chronicles/internal/config"
	"github.com/KirkDiggler/quest-chronicles/internal/entities"
	"github.com/KirkDiggler/quest-chronicles/internal/errors"
)

type CLITestSuite struct {
	suite.Suite
	dataDir string
	saveDir string
	out     *bytes.Buffer
}

func TestCLISuite(t *testing.T) {
	suite.Run(t, new(CLITestSuite))
}

func (s *CLITestSuite) SetupTest() {
	dir := s.T().TempDir()
	s.dataDir = filepath.Join(dir, "data")
	s.saveDir = filepath.Join(dir, "saves")
	s.out = &bytes.Buffer{}
	overrides = flagOverrides{}

	s.T().Setenv("QUEST_STORAGE", "file")
	s.T().Setenv("LOG_LEVEL", "error")
}

func (s *CLITestSuite) run(args ...string) error {
	s.out.Reset()
	rootCmd.SetOut(s.out)
	rootCmd.SetErr(s.out)
	rootCmd.SetArgs(append(args, "--data-dir", s.dataDir, "--save-dir", s.saveDir))
	return rootCmd.Execute()
}

func (s *CLITestSuite) TestNewAndStatus() {
	s.Require().NoError(s.run("new", "Hero", "warrior"))
	s.Contains(s.out.String(), "Hero the Warrior")

	_, err := os.Stat(filepath.Join(s.saveDir, "Hero_save.txt"))
	s.NoError(err)

	s.Require().NoError(s.run("status", "Hero"))
	s.Contains(s.out.String(), "120/120")

	err = s.run("new", "Hero", "mage")
	s.True(errors.IsAlreadyExists(err))
}

func (s *CLITestSuite) TestDefaultDataFilesAreCreated() {
	s.Require().NoError(s.run("shop", "list"))
	s.Contains(s.out.String(), "Small Potion")

	_, err := os.Stat(filepath.Join(s.dataDir, "quests.txt"))
	s.NoError(err)
}

func (s *CLITestSuite) TestQuestFlow() {
	s.Require().NoError(s.run("new", "Hero", "Rogue"))

	s.Require().NoError(s.run("quests", "Hero"))
	s.Contains(s.out.String(), "First Steps")

	s.Require().NoError(s.run("quest", "accept", "Hero", "start"))
	s.Require().NoError(s.run("quest", "complete", "Hero", "start"))
	s.Contains(s.out.String(), "50 XP and 20 gold")

	err := s.run("quest", "complete", "Hero", "start")
	s.True(errors.IsQuestNotActive(err))

	s.Require().NoError(s.run("quests", "Hero", "stats"))
	s.Contains(s.out.String(), "1 of 1")
}

func (s *CLITestSuite) TestShopFlow() {
	s.Require().NoError(s.run("new", "Hero", "Cleric"))

	s.Require().NoError(s.run("shop", "buy", "Hero", "potion_small"))
	s.Contains(s.out.String(), "75 gold left")

	s.Require().NoError(s.run("inventory", "Hero"))
	s.Contains(s.out.String(), "Small Potion")

	s.Require().NoError(s.run("shop", "sell", "Hero", "potion_small"))
	s.Contains(s.out.String(), "for 12 gold")

	err := s.run("inventory", "use", "Hero", "potion_small")
	s.True(errors.IsItemNotFound(err))
}

func (s *CLITestSuite) TestExplore() {
	s.Require().NoError(s.run("new", "Hero", "Warrior"))
	s.Require().NoError(s.run("explore", "Hero", "--action", "special"))
	s.Contains(s.out.String(), "Victory!")

	err := s.run("explore", "Hero", "--action", "dance")
	s.True(errors.IsInvalidArgument(err))
	exploreAction = "attack"
}

func (s *CLITestSuite) TestParseClass() {
	s.Equal(entities.ClassMage, parseClass("MAGE"))
	s.Equal(entities.Class("Bard"), parseClass("Bard"))
}

func (s *CLITestSuite) TestFlagOverrides() {
	cfg := &config.Config{Storage: config.StorageFile, SaveDir: "a"}
	f := flagOverrides{storage: config.StorageSQLite, sqlitePath: "x.db"}
	f.apply(cfg)

	s.Equal(config.StorageSQLite, cfg.Storage)
	s.Equal("x.db", cfg.SQLitePath)
	s.Equal("a", cfg.SaveDir)
}
