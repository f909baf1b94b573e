// Package quest implements the quest tracker: accepting, completing and
// abandoning quests, prerequisite chains and progress statistics.
package quest

import (
	"cmp"
	"context"
	"log/slog"
	"slices"

	"github.com/KirkDiggler/quest-chronicles/internal/entities"
	"github.com/KirkDiggler/quest-chronicles/internal/errors"
)

const errCharacterRequired = "character is required"

// Service defines the interface for quest operations
type Service interface {
	// State transitions
	AcceptQuest(ctx context.Context, input *AcceptQuestInput) (*AcceptQuestOutput, error)
	CompleteQuest(ctx context.Context, input *CompleteQuestInput) (*CompleteQuestOutput, error)
	AbandonQuest(ctx context.Context, input *AbandonQuestInput) (*AbandonQuestOutput, error)

	// Queries
	CanAccept(ctx context.Context, input *CanAcceptInput) (*CanAcceptOutput, error)
	GetPrerequisiteChain(ctx context.Context, input *GetPrerequisiteChainInput) (*GetPrerequisiteChainOutput, error)
	GetActiveQuests(ctx context.Context, input *ListQuestsInput) (*ListQuestsOutput, error)
	GetCompletedQuests(ctx context.Context, input *ListQuestsInput) (*ListQuestsOutput, error)
	GetAvailableQuests(ctx context.Context, input *ListQuestsInput) (*ListQuestsOutput, error)
	GetQuestsByLevel(ctx context.Context, input *GetQuestsByLevelInput) (*GetQuestsByLevelOutput, error)
	GetStatistics(ctx context.Context, input *GetStatisticsInput) (*GetStatisticsOutput, error)
}

// Config holds the dependencies for the quest orchestrator
type Config struct {
	Quests entities.QuestCatalog
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Quests == nil {
		vb.RequiredField("Quests")
	}

	return vb.Build()
}

type orchestrator struct {
	quests entities.QuestCatalog
}

// NewOrchestrator creates a new quest orchestrator. The catalog's
// prerequisite graph is validated up front.
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	if err := ValidatePrerequisites(cfg.Quests); err != nil {
		return nil, errors.Wrap(err, "invalid quest catalog")
	}

	return &orchestrator{quests: cfg.Quests}, nil
}

// AcceptQuest adds a quest to the character's active set
func (o *orchestrator) AcceptQuest(ctx context.Context, input *AcceptQuestInput) (*AcceptQuestOutput, error) {
	if input == nil || input.Character == nil {
		return nil, errors.InvalidArgument(errCharacterRequired)
	}
	c := input.Character

	q, err := o.checkAccept(c, input.QuestID)
	if err != nil {
		return nil, err
	}
	c.ActiveQuests = append(c.ActiveQuests, q.ID)

	slog.InfoContext(ctx, "Quest accepted",
		"name", c.Name,
		"quest_id", q.ID,
	)

	return &AcceptQuestOutput{Quest: q}, nil
}

// CompleteQuest moves an active quest to completed and pays its reward
func (o *orchestrator) CompleteQuest(ctx context.Context, input *CompleteQuestInput) (*CompleteQuestOutput, error) {
	if input == nil || input.Character == nil {
		return nil, errors.InvalidArgument(errCharacterRequired)
	}
	c := input.Character

	q, ok := o.quests.Get(input.QuestID)
	if !ok {
		return nil, errors.QuestNotFoundf("quest %s not found", input.QuestID)
	}
	i := slices.Index(c.ActiveQuests, q.ID)
	if i < 0 {
		return nil, errors.QuestNotActivef("quest %s is not active", q.ID)
	}

	c.ActiveQuests = slices.Delete(c.ActiveQuests, i, i+1)
	c.CompletedQuests = append(c.CompletedQuests, q.ID)
	c.Experience += q.RewardXP
	c.Gold += q.RewardGold

	slog.InfoContext(ctx, "Quest completed",
		"name", c.Name,
		"quest_id", q.ID,
		"xp", q.RewardXP,
		"gold", q.RewardGold,
	)

	return &CompleteQuestOutput{
		Quest:  q,
		Reward: entities.Reward{XP: q.RewardXP, Gold: q.RewardGold},
	}, nil
}

// AbandonQuest drops an active quest with no penalty
func (o *orchestrator) AbandonQuest(ctx context.Context, input *AbandonQuestInput) (*AbandonQuestOutput, error) {
	if input == nil || input.Character == nil {
		return nil, errors.InvalidArgument(errCharacterRequired)
	}
	c := input.Character

	i := slices.Index(c.ActiveQuests, input.QuestID)
	if i < 0 {
		return nil, errors.QuestNotActivef("quest %s is not active", input.QuestID)
	}
	c.ActiveQuests = slices.Delete(c.ActiveQuests, i, i+1)

	slog.InfoContext(ctx, "Quest abandoned",
		"name", c.Name,
		"quest_id", input.QuestID,
	)

	return &AbandonQuestOutput{}, nil
}

// CanAccept runs the AcceptQuest checks without changing anything
func (o *orchestrator) CanAccept(_ context.Context, input *CanAcceptInput) (*CanAcceptOutput, error) {
	if input == nil || input.Character == nil {
		return nil, errors.InvalidArgument(errCharacterRequired)
	}

	if _, err := o.checkAccept(input.Character, input.QuestID); err != nil {
		return &CanAcceptOutput{Reason: err}, nil
	}
	return &CanAcceptOutput{CanAccept: true}, nil
}

// GetPrerequisiteChain lists the quests leading to questID, root first
func (o *orchestrator) GetPrerequisiteChain(_ context.Context, input *GetPrerequisiteChainInput) (*GetPrerequisiteChainOutput, error) {
	if input == nil || input.QuestID == "" {
		return nil, errors.InvalidArgument("quest ID is required")
	}

	chain, err := PrerequisiteChain(o.quests, input.QuestID)
	if err != nil {
		return nil, err
	}

	return &GetPrerequisiteChainOutput{Chain: chain}, nil
}

// GetActiveQuests resolves the character's active quests
func (o *orchestrator) GetActiveQuests(_ context.Context, input *ListQuestsInput) (*ListQuestsOutput, error) {
	if input == nil || input.Character == nil {
		return nil, errors.InvalidArgument(errCharacterRequired)
	}
	return &ListQuestsOutput{Quests: o.resolve(input.Character.ActiveQuests)}, nil
}

// GetCompletedQuests resolves the character's completed quests
func (o *orchestrator) GetCompletedQuests(_ context.Context, input *ListQuestsInput) (*ListQuestsOutput, error) {
	if input == nil || input.Character == nil {
		return nil, errors.InvalidArgument(errCharacterRequired)
	}
	return &ListQuestsOutput{Quests: o.resolve(input.Character.CompletedQuests)}, nil
}

// GetAvailableQuests lists every quest the character could accept now, by ID
func (o *orchestrator) GetAvailableQuests(_ context.Context, input *ListQuestsInput) (*ListQuestsOutput, error) {
	if input == nil || input.Character == nil {
		return nil, errors.InvalidArgument(errCharacterRequired)
	}

	out := &ListQuestsOutput{}
	for _, id := range o.quests.IDs() {
		if q, err := o.checkAccept(input.Character, id); err == nil {
			out.Quests = append(out.Quests, q)
		}
	}
	return out, nil
}

// GetQuestsByLevel lists quests whose required level is in [MinLevel, MaxLevel]
func (o *orchestrator) GetQuestsByLevel(_ context.Context, input *GetQuestsByLevelInput) (*GetQuestsByLevelOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.MinLevel > input.MaxLevel {
		return nil, errors.InvalidArgumentf("min level %d is above max level %d", input.MinLevel, input.MaxLevel)
	}

	out := &GetQuestsByLevelOutput{}
	for _, id := range o.quests.IDs() {
		q := o.quests[id]
		if q.RequiredLevel >= input.MinLevel && q.RequiredLevel <= input.MaxLevel {
			out.Quests = append(out.Quests, q)
		}
	}
	slices.SortStableFunc(out.Quests, func(a, b *entities.Quest) int {
		return cmp.Compare(a.RequiredLevel, b.RequiredLevel)
	})

	return out, nil
}

// GetStatistics summarizes quest progress
func (o *orchestrator) GetStatistics(_ context.Context, input *GetStatisticsInput) (*GetStatisticsOutput, error) {
	if input == nil || input.Character == nil {
		return nil, errors.InvalidArgument(errCharacterRequired)
	}
	c := input.Character

	out := &GetStatisticsOutput{
		Active:    len(c.ActiveQuests),
		Completed: len(c.CompletedQuests),
		Total:     len(o.quests),
	}
	if out.Total > 0 {
		out.CompletionPercentage = float64(out.Completed) / float64(out.Total) * 100
	}
	for _, id := range c.CompletedQuests {
		// missing entries contribute zero
		if q, ok := o.quests.Get(id); ok {
			out.TotalRewards.XP += q.RewardXP
			out.TotalRewards.Gold += q.RewardGold
		}
	}

	return out, nil
}

// checkAccept applies the acceptance rules in order and returns the quest
func (o *orchestrator) checkAccept(c *entities.Character, questID string) (*entities.Quest, error) {
	q, ok := o.quests.Get(questID)
	if !ok {
		return nil, errors.QuestNotFoundf("quest %s not found", questID)
	}
	if c.Level < q.RequiredLevel {
		return nil, errors.InsufficientLevelf("%s requires level %d, you are level %d",
			q.Title, q.RequiredLevel, c.Level).
			WithMeta("required_level", q.RequiredLevel)
	}
	if q.HasPrerequisite() && !c.HasCompletedQuest(q.Prerequisite) {
		return nil, errors.PrerequisiteNotMetf("%s requires %s to be completed first", q.Title, q.Prerequisite).
			WithMeta("prerequisite", q.Prerequisite)
	}
	if c.HasCompletedQuest(q.ID) {
		return nil, errors.AlreadyCompletedf("%s is already completed", q.Title)
	}
	if c.HasActiveQuest(q.ID) {
		return nil, errors.AlreadyActivef("%s is already active", q.Title)
	}
	return q, nil
}

func (o *orchestrator) resolve(ids []string) []*entities.Quest {
	quests := make([]*entities.Quest, 0, len(ids))
	for _, id := range ids {
		if q, ok := o.quests.Get(id); ok {
			quests = append(quests, q)
		}
	}
	return quests
}
