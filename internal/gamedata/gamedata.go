// Package gamedata loads the quest and item catalogs from their block files
package gamedata

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strconv"

	"github.com/KirkDiggler/quest-chronicles/internal/entities"
	"github.com/KirkDiggler/quest-chronicles/internal/errors"
	"github.com/KirkDiggler/quest-chronicles/internal/pkg/blocktext"
)

// Catalog file names inside the data directory
const (
	QuestsFile = "quests.txt"
	ItemsFile  = "items.txt"
)

// Quest block keys
const (
	keyQuestID       = "QUEST_ID"
	keyTitle         = "TITLE"
	keyDescription   = "DESCRIPTION"
	keyRewardXP      = "REWARD_XP"
	keyRewardGold    = "REWARD_GOLD"
	keyRequiredLevel = "REQUIRED_LEVEL"
	keyPrerequisite  = "PREREQUISITE"
)

// Item block keys
const (
	keyItemID = "ITEM_ID"
	keyName   = "NAME"
	keyType   = "TYPE"
	keyEffect = "EFFECT"
	keyCost   = "COST"
)

var questKeys = []string{
	keyQuestID, keyTitle, keyDescription, keyRewardXP, keyRewardGold, keyRequiredLevel, keyPrerequisite,
}

var itemKeys = []string{keyItemID, keyName, keyType, keyEffect, keyCost, keyDescription}

// Catalogs holds both read-only catalogs
type Catalogs struct {
	Quests entities.QuestCatalog
	Items  entities.ItemCatalog
}

// Load reads quests.txt and items.txt from dir
func Load(ctx context.Context, dir string) (*Catalogs, error) {
	quests, err := LoadQuests(ctx, filepath.Join(dir, QuestsFile))
	if err != nil {
		return nil, err
	}

	items, err := LoadItems(ctx, filepath.Join(dir, ItemsFile))
	if err != nil {
		return nil, err
	}

	return &Catalogs{Quests: quests, Items: items}, nil
}

// LoadQuests reads a quest catalog file
func LoadQuests(ctx context.Context, path string) (entities.QuestCatalog, error) {
	blocks, err := readFile(path)
	if err != nil {
		return nil, err
	}

	catalog, err := questsFromBlocks(blocks)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load quests from %s", path)
	}

	slog.DebugContext(ctx, "Loaded quest catalog",
		"path", path,
		"count", len(catalog),
	)
	return catalog, nil
}

// LoadItems reads an item catalog file
func LoadItems(ctx context.Context, path string) (entities.ItemCatalog, error) {
	blocks, err := readFile(path)
	if err != nil {
		return nil, err
	}

	catalog, err := itemsFromBlocks(blocks)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load items from %s", path)
	}

	slog.DebugContext(ctx, "Loaded item catalog",
		"path", path,
		"count", len(catalog),
	)
	return catalog, nil
}

// ParseQuests reads a quest catalog from r
func ParseQuests(r io.Reader) (entities.QuestCatalog, error) {
	blocks, err := readBlocks(r)
	if err != nil {
		return nil, err
	}
	return questsFromBlocks(blocks)
}

// ParseItems reads an item catalog from r
func ParseItems(r io.Reader) (entities.ItemCatalog, error) {
	blocks, err := readBlocks(r)
	if err != nil {
		return nil, err
	}
	return itemsFromBlocks(blocks)
}

func readFile(path string) ([]blocktext.Block, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.MissingDataFilef("data file not found: %s", path).
				WithMeta("path", path)
		}
		return nil, errors.WrapWithCodef(err, errors.CodeCorrupted, "unable to open %s", path)
	}
	defer func() {
		_ = f.Close()
	}()

	return readBlocks(f)
}

func readBlocks(r io.Reader) ([]blocktext.Block, error) {
	blocks, err := blocktext.ReadBlocks(r)
	if err != nil {
		if syntaxErr, ok := blocktext.AsSyntaxError(err); ok {
			return nil, errors.InvalidDataFormat(syntaxErr.Error()).WithMeta("line", syntaxErr.Line)
		}
		return nil, errors.WrapWithCode(err, errors.CodeCorrupted, "unable to read data file")
	}
	return blocks, nil
}

func questsFromBlocks(blocks []blocktext.Block) (entities.QuestCatalog, error) {
	catalog := make(entities.QuestCatalog, len(blocks))
	for _, block := range blocks {
		record, err := toRecord(block)
		if err != nil {
			return nil, err
		}
		quest, err := QuestFromRecord(record)
		if err != nil {
			return nil, err
		}
		if _, exists := catalog[quest.ID]; exists {
			return nil, errors.InvalidDataFormatf("duplicate quest id %s", quest.ID)
		}
		catalog[quest.ID] = quest
	}
	return catalog, nil
}

func itemsFromBlocks(blocks []blocktext.Block) (entities.ItemCatalog, error) {
	catalog := make(entities.ItemCatalog, len(blocks))
	for _, block := range blocks {
		record, err := toRecord(block)
		if err != nil {
			return nil, err
		}
		item, err := ItemFromRecord(record)
		if err != nil {
			return nil, err
		}
		if _, exists := catalog[item.ID]; exists {
			return nil, errors.InvalidDataFormatf("duplicate item id %s", item.ID)
		}
		catalog[item.ID] = item
	}
	return catalog, nil
}

func toRecord(block blocktext.Block) (map[string]string, error) {
	record := make(map[string]string, len(block))
	for _, f := range block {
		if _, seen := record[f.Key]; seen {
			return nil, errors.InvalidDataFormatf("field %s repeated", f.Key).WithMeta("line", f.Line)
		}
		record[f.Key] = f.Value
	}
	return record, nil
}

// QuestFromRecord validates a raw quest record keyed by file field name
func QuestFromRecord(record map[string]string) (*entities.Quest, error) {
	vb := errors.NewValidationBuilder()
	checkKeys(record, questKeys, vb)

	quest := &entities.Quest{
		ID:           record[keyQuestID],
		Title:        record[keyTitle],
		Description:  record[keyDescription],
		Prerequisite: record[keyPrerequisite],
	}
	checkID(record, keyQuestID, vb)
	if quest.HasPrerequisite() {
		checkID(record, keyPrerequisite, vb)
	}
	quest.RewardXP = intField(record, keyRewardXP, 0, vb)
	quest.RewardGold = intField(record, keyRewardGold, 0, vb)
	quest.RequiredLevel = intField(record, keyRequiredLevel, 1, vb)

	if err := vb.BuildWithCode(errors.CodeInvalidDataFormat); err != nil {
		return nil, errors.WrapWithCodef(err, errors.CodeInvalidDataFormat, "invalid quest %q", quest.ID)
	}
	return quest, nil
}

// ItemFromRecord validates a raw item record keyed by file field name
func ItemFromRecord(record map[string]string) (*entities.Item, error) {
	vb := errors.NewValidationBuilder()
	checkKeys(record, itemKeys, vb)

	item := &entities.Item{
		ID:          record[keyItemID],
		Name:        record[keyName],
		Type:        entities.ItemType(record[keyType]),
		Effect:      record[keyEffect],
		Description: record[keyDescription],
	}
	checkID(record, keyItemID, vb)
	if _, ok := record[keyType]; ok {
		errors.ValidateEnum(keyType, record[keyType], entities.ItemTypes(), vb)
	}
	if raw, ok := record[keyEffect]; ok {
		if _, err := entities.ParseEffect(raw); err != nil {
			vb.Field(keyEffect, errors.GetMessage(err))
		}
	}
	item.Cost = intField(record, keyCost, 0, vb)

	if err := vb.BuildWithCode(errors.CodeInvalidDataFormat); err != nil {
		return nil, errors.WrapWithCodef(err, errors.CodeInvalidDataFormat, "invalid item %q", item.ID)
	}
	return item, nil
}

func checkKeys(record map[string]string, allowed []string, vb *errors.ValidationBuilder) {
	for _, key := range allowed {
		if _, ok := record[key]; !ok {
			vb.RequiredField(key)
		}
	}
	for key := range record {
		if !slices.Contains(allowed, key) {
			vb.Field(key, "is not a known field")
		}
	}
}

// checkID rejects IDs that would not survive a save list round trip.
// A missing key is already reported by checkKeys.
func checkID(record map[string]string, key string, vb *errors.ValidationBuilder) {
	if id, ok := record[key]; ok && !entities.ValidID(id) {
		vb.Field(key, "must be non-empty without commas")
	}
}

func intField(record map[string]string, key string, minValue int, vb *errors.ValidationBuilder) int {
	raw, ok := record[key]
	if !ok {
		return 0
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		vb.Field(key, "must be a number")
		return 0
	}
	if n < minValue {
		vb.Fieldf(key, "must be at least %d", minValue)
	}
	return n
}
