package entities

// PrerequisiteNone marks a quest with no prerequisite
const PrerequisiteNone = "NONE"

// Quest is an immutable catalog entry
type Quest struct {
	ID            string
	Title         string
	Description   string
	RewardXP      int
	RewardGold    int
	RequiredLevel int
	Prerequisite  string
}

// HasPrerequisite reports whether another quest must be completed first
func (q *Quest) HasPrerequisite() bool {
	return q.Prerequisite != "" && q.Prerequisite != PrerequisiteNone
}

// Reward is experience and gold granted by a quest or a battle
type Reward struct {
	XP   int
	Gold int
}
