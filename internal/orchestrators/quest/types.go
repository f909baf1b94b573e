package quest

import "github.com/KirkDiggler/quest-chronicles/internal/entities"

// AcceptQuestInput defines the request for accepting a quest
type AcceptQuestInput struct {
	Character *entities.Character
	QuestID   string
}

// AcceptQuestOutput defines the response for accepting a quest
type AcceptQuestOutput struct {
	Quest *entities.Quest
}

// CompleteQuestInput defines the request for completing a quest
type CompleteQuestInput struct {
	Character *entities.Character
	QuestID   string
}

// CompleteQuestOutput defines the response for completing a quest.
// The reward is added to experience without running level ups.
type CompleteQuestOutput struct {
	Quest  *entities.Quest
	Reward entities.Reward
}

// AbandonQuestInput defines the request for abandoning a quest
type AbandonQuestInput struct {
	Character *entities.Character
	QuestID   string
}

// AbandonQuestOutput defines the response for abandoning a quest
type AbandonQuestOutput struct{}

// CanAcceptInput defines the request for an eligibility check
type CanAcceptInput struct {
	Character *entities.Character
	QuestID   string
}

// CanAcceptOutput defines the response for an eligibility check.
// Reason is the error AcceptQuest would return, nil when accepted.
type CanAcceptOutput struct {
	CanAccept bool
	Reason    error
}

// GetPrerequisiteChainInput defines the request for a prerequisite chain
type GetPrerequisiteChainInput struct {
	QuestID string
}

// GetPrerequisiteChainOutput defines the response for a prerequisite chain,
// root first and ending with the requested quest
type GetPrerequisiteChainOutput struct {
	Chain []*entities.Quest
}

// ListQuestsInput defines the request for the character quest lists
type ListQuestsInput struct {
	Character *entities.Character
}

// ListQuestsOutput holds quests resolved from the catalog. IDs with no
// catalog entry are skipped.
type ListQuestsOutput struct {
	Quests []*entities.Quest
}

// GetQuestsByLevelInput defines the request for a level range query
type GetQuestsByLevelInput struct {
	MinLevel int
	MaxLevel int
}

// GetQuestsByLevelOutput defines the response for a level range query
type GetQuestsByLevelOutput struct {
	Quests []*entities.Quest
}

// GetStatisticsInput defines the request for quest statistics
type GetStatisticsInput struct {
	Character *entities.Character
}

// GetStatisticsOutput summarizes a character's quest progress. Completed
// IDs missing from the catalog count toward Completed but add no rewards.
type GetStatisticsOutput struct {
	Active               int
	Completed            int
	Total                int
	CompletionPercentage float64
	TotalRewards         entities.Reward
}
