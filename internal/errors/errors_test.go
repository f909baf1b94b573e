package errors_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/quest-chronicles/internal/errors"
)

type ErrorsTestSuite struct {
	suite.Suite
}

func TestErrorsSuite(t *testing.T) {
	suite.Run(t, new(ErrorsTestSuite))
}

func (s *ErrorsTestSuite) TestNewError() {
	testCases := []struct {
		name     string
		code     errors.Code
		message  string
		expected string
	}{
		{
			name:     "inventory full error",
			code:     errors.CodeInventoryFull,
			message:  "inventory is full",
			expected: "INVENTORY_FULL: inventory is full",
		},
		{
			name:     "quest not active error",
			code:     errors.CodeQuestNotActive,
			message:  "quest start is not active",
			expected: "QUEST_NOT_ACTIVE: quest start is not active",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := errors.New(tc.code, tc.message)
			s.Assert().Equal(tc.expected, err.Error())
			s.Assert().Equal(tc.code, err.Code)
			s.Assert().Equal(tc.message, err.Message)
		})
	}
}

func (s *ErrorsTestSuite) TestErrorWithMeta() {
	err := errors.ItemNotFound("item not in inventory").
		WithMeta("item_id", "potion_small").
		WithMeta("character", "Hero")

	s.Assert().Equal("potion_small", err.Meta["item_id"])
	s.Assert().Equal("Hero", err.Meta["character"])

	err2 := errors.Internal("storage error").
		WithMetaMap(map[string]any{
			"backend": "redis",
			"key":     "character:Hero",
		})

	s.Assert().Equal("redis", err2.Meta["backend"])
	s.Assert().Equal("character:Hero", err2.Meta["key"])
}

func (s *ErrorsTestSuite) TestWrap() {
	baseErr := fmt.Errorf("disk unavailable")
	wrapped := errors.Wrap(baseErr, "failed to save character")

	s.Assert().Equal(errors.CodeInternal, wrapped.Code)
	s.Assert().Equal("failed to save character", wrapped.Message)
	s.Assert().Equal(baseErr, wrapped.Unwrap())
}

func (s *ErrorsTestSuite) TestWrapPreservesCode() {
	baseErr := errors.CharacterNotFound("no save for Hero")
	wrapped := errors.Wrap(baseErr, "failed to load character")

	s.Assert().Equal(errors.CodeCharacterNotFound, wrapped.Code)
	s.Assert().Equal("failed to load character", wrapped.Message)
	s.Assert().Equal(baseErr, wrapped.Unwrap())
}

func (s *ErrorsTestSuite) TestWrapWithCode() {
	baseErr := fmt.Errorf("permission denied")
	wrapped := errors.WrapWithCode(baseErr, errors.CodeCorrupted, "unable to read quest file")

	s.Assert().Equal(errors.CodeCorrupted, wrapped.Code)
	s.Assert().Equal("unable to read quest file", wrapped.Message)
	s.Assert().Equal(baseErr, wrapped.Unwrap())
}

func (s *ErrorsTestSuite) TestWrapWithCodeKeepsMeta() {
	baseErr := errors.NotFound("missing").WithMeta("path", "data/quests.txt")
	wrapped := errors.WrapWithCodef(baseErr, errors.CodeMissingDataFile, "quest file %s not found", "data/quests.txt")

	s.Assert().Equal(errors.CodeMissingDataFile, wrapped.Code)
	s.Assert().Equal("data/quests.txt", wrapped.Meta["path"])
}

func (s *ErrorsTestSuite) TestWrapNil() {
	s.Assert().Nil(errors.Wrap(nil, "should be nil"))
	s.Assert().Nil(errors.WrapWithCode(nil, errors.CodeNotFound, "should be nil"))
}

func (s *ErrorsTestSuite) TestConstructorFunctions() {
	testCases := []struct {
		name        string
		constructor func() *errors.Error
		code        errors.Code
	}{
		{"InvalidClass", func() *errors.Error { return errors.InvalidClass("test") }, errors.CodeInvalidClass},
		{"CharacterDead", func() *errors.Error { return errors.CharacterDead("test") }, errors.CodeCharacterDead},
		{"InsufficientGold", func() *errors.Error { return errors.InsufficientGold("test") }, errors.CodeInsufficientGold},
		{"InsufficientLevel", func() *errors.Error { return errors.InsufficientLevel("test") }, errors.CodeInsufficientLevel},
		{"InventoryFull", func() *errors.Error { return errors.InventoryFull("test") }, errors.CodeInventoryFull},
		{"ItemNotFound", func() *errors.Error { return errors.ItemNotFound("test") }, errors.CodeItemNotFound},
		{"InvalidItemType", func() *errors.Error { return errors.InvalidItemType("test") }, errors.CodeInvalidItemType},
		{"InvalidEffectFormat", func() *errors.Error { return errors.InvalidEffectFormat("test") }, errors.CodeInvalidEffectFormat},
		{"QuestNotFound", func() *errors.Error { return errors.QuestNotFound("test") }, errors.CodeQuestNotFound},
		{"PrerequisiteNotMet", func() *errors.Error { return errors.PrerequisiteNotMet("test") }, errors.CodePrerequisiteNotMet},
		{"AlreadyCompleted", func() *errors.Error { return errors.AlreadyCompleted("test") }, errors.CodeAlreadyCompleted},
		{"AlreadyActive", func() *errors.Error { return errors.AlreadyActive("test") }, errors.CodeAlreadyActive},
		{"QuestNotActive", func() *errors.Error { return errors.QuestNotActive("test") }, errors.CodeQuestNotActive},
		{"CyclicPrerequisite", func() *errors.Error { return errors.CyclicPrerequisite("test") }, errors.CodeCyclicPrerequisite},
		{"InvalidTarget", func() *errors.Error { return errors.InvalidTarget("test") }, errors.CodeInvalidTarget},
		{"InvalidDataFormat", func() *errors.Error { return errors.InvalidDataFormat("test") }, errors.CodeInvalidDataFormat},
		{"MissingDataFile", func() *errors.Error { return errors.MissingDataFile("test") }, errors.CodeMissingDataFile},
		{"Corrupted", func() *errors.Error { return errors.Corrupted("test") }, errors.CodeCorrupted},
		{"InvalidSaveData", func() *errors.Error { return errors.InvalidSaveData("test") }, errors.CodeInvalidSaveData},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := tc.constructor()
			s.Assert().Equal(tc.code, err.Code)
			s.Assert().Equal("test", err.Message)
		})
	}
}

func (s *ErrorsTestSuite) TestFormattedConstructors() {
	err := errors.QuestNotFoundf("quest %s not found", "dragon_slayer")
	s.Assert().Equal(errors.CodeQuestNotFound, err.Code)
	s.Assert().Equal("quest dragon_slayer not found", err.Message)

	err2 := errors.InsufficientGoldf("need %d gold, have %d", 30, 25)
	s.Assert().Equal(errors.CodeInsufficientGold, err2.Code)
	s.Assert().Equal("need 30 gold, have 25", err2.Message)
}

func (s *ErrorsTestSuite) TestErrorIs() {
	err1 := errors.InventoryFull("test")
	err2 := errors.InventoryFull("other message")
	err3 := errors.ItemNotFound("test")

	s.Assert().True(err1.Is(err2))
	s.Assert().False(err1.Is(err3))
	s.Assert().True(errors.Is(errors.Wrap(err1, "wrapped"), err2))
}

func (s *ErrorsTestSuite) TestHelperFunctions() {
	fullErr := errors.InventoryFull("test")
	deadErr := errors.CharacterDead("test")
	wrappedErr := errors.Wrap(fullErr, "wrapped")

	s.Assert().True(errors.IsInventoryFull(fullErr))
	s.Assert().True(errors.IsInventoryFull(wrappedErr))
	s.Assert().False(errors.IsInventoryFull(deadErr))

	s.Assert().True(errors.IsCharacterDead(deadErr))
	s.Assert().False(errors.IsCharacterDead(fullErr))
}

func (s *ErrorsTestSuite) TestGetCode() {
	err := errors.QuestNotActive("test")
	wrapped := errors.Wrap(err, "wrapped")

	s.Assert().Equal(errors.CodeQuestNotActive, errors.GetCode(err))
	s.Assert().Equal(errors.CodeQuestNotActive, errors.GetCode(wrapped))
	s.Assert().Equal(errors.CodeInternal, errors.GetCode(fmt.Errorf("standard error")))
	s.Assert().Equal(errors.CodeOK, errors.GetCode(nil))
}

func (s *ErrorsTestSuite) TestGetMeta() {
	err := errors.ItemNotFound("test").WithMeta("key", "value")
	wrapped := errors.Wrap(err, "wrapped")

	s.Assert().Equal("value", errors.GetMeta(err)["key"])
	s.Assert().Equal("value", errors.GetMeta(wrapped)["key"])
	s.Assert().Nil(errors.GetMeta(fmt.Errorf("standard error")))
	s.Assert().Nil(errors.GetMeta(nil))
}

func (s *ErrorsTestSuite) TestGetMessage() {
	err := errors.InvalidTarget("unknown enemy type: troll")
	wrapped := errors.Wrap(err, "wrapped message")
	stdErr := fmt.Errorf("standard error")

	s.Assert().Equal("unknown enemy type: troll", errors.GetMessage(err))
	s.Assert().Equal("wrapped message", errors.GetMessage(wrapped))
	s.Assert().Equal("standard error", errors.GetMessage(stdErr))
	s.Assert().Equal("", errors.GetMessage(nil))
}
