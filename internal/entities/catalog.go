package entities

import (
	"maps"
	"slices"
	"strings"
)

// ValidID reports whether id can be stored in a comma-joined save list:
// non-empty, no surrounding space, no comma or line break.
func ValidID(id string) bool {
	return id != "" && id == strings.TrimSpace(id) && !strings.ContainsAny(id, ",\r\n")
}

// QuestCatalog maps quest IDs to quests
type QuestCatalog map[string]*Quest

// Get looks up a quest. Callers decide what a missing entry means.
func (c QuestCatalog) Get(id string) (*Quest, bool) {
	q, ok := c[id]
	return q, ok
}

// IDs returns the quest IDs in sorted order
func (c QuestCatalog) IDs() []string {
	return slices.Sorted(maps.Keys(c))
}

// ItemCatalog maps item IDs to items
type ItemCatalog map[string]*Item

// Get looks up an item
func (c ItemCatalog) Get(id string) (*Item, bool) {
	i, ok := c[id]
	return i, ok
}

// IDs returns the item IDs in sorted order
func (c ItemCatalog) IDs() []string {
	return slices.Sorted(maps.Keys(c))
}
