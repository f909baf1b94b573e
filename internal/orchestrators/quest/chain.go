package quest

import (
	"slices"
	"strings"

	"github.com/KirkDiggler/quest-chronicles/internal/entities"
	"github.com/KirkDiggler/quest-chronicles/internal/errors"
)

// PrerequisiteChain walks prerequisite links from questID back to a quest
// with none, returning the quests root first. A missing link fails with
// QuestNotFound and a loop with CyclicPrerequisite.
func PrerequisiteChain(catalog entities.QuestCatalog, questID string) ([]*entities.Quest, error) {
	var chain []*entities.Quest
	seen := make(map[string]bool)

	id := questID
	for {
		if seen[id] {
			path := make([]string, 0, len(chain)+1)
			for _, q := range chain {
				path = append(path, q.ID)
			}
			path = append(path, id)
			return nil, errors.CyclicPrerequisitef("prerequisite cycle: %s", strings.Join(path, " -> ")).
				WithMeta("quest_id", questID)
		}
		seen[id] = true

		q, ok := catalog.Get(id)
		if !ok {
			if id == questID {
				return nil, errors.QuestNotFoundf("quest %s not found", id)
			}
			return nil, errors.QuestNotFoundf("prerequisite %s of %s not found", id, questID).
				WithMeta("quest_id", questID)
		}
		chain = append(chain, q)

		if !q.HasPrerequisite() {
			break
		}
		id = q.Prerequisite
	}

	slices.Reverse(chain)
	return chain, nil
}

// ValidatePrerequisites checks every prerequisite exists and the
// prerequisite graph has no cycles.
func ValidatePrerequisites(catalog entities.QuestCatalog) error {
	// settled holds quests whose whole chain is known to be valid
	settled := make(map[string]bool, len(catalog))

	for _, id := range catalog.IDs() {
		if settled[id] {
			continue
		}
		chain, err := PrerequisiteChain(catalog, id)
		if err != nil {
			return err
		}
		for _, q := range chain {
			settled[q.ID] = true
		}
	}

	return nil
}
