// Package savefile converts characters to and from the save text format:
// one "KEY: value" line per field, lists joined with commas.
package savefile

import (
	"slices"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/KirkDiggler/quest-chronicles/internal/entities"
	"github.com/KirkDiggler/quest-chronicles/internal/errors"
	"github.com/KirkDiggler/quest-chronicles/internal/pkg/blocktext"
)

// Save file keys
const (
	KeyName            = "NAME"
	KeyClass           = "CLASS"
	KeyLevel           = "LEVEL"
	KeyHealth          = "HEALTH"
	KeyMaxHealth       = "MAX_HEALTH"
	KeyStrength        = "STRENGTH"
	KeyMagic           = "MAGIC"
	KeyExperience      = "EXPERIENCE"
	KeyGold            = "GOLD"
	KeyInventory       = "INVENTORY"
	KeyActiveQuests    = "ACTIVE_QUESTS"
	KeyCompletedQuests = "COMPLETED_QUESTS"
	KeyEquippedWeapon  = "EQUIPPED_WEAPON"
	KeyEquippedArmor   = "EQUIPPED_ARMOR"
)

var requiredKeys = []string{
	KeyName, KeyClass, KeyLevel, KeyHealth, KeyMaxHealth, KeyStrength, KeyMagic,
	KeyExperience, KeyGold, KeyInventory, KeyActiveQuests, KeyCompletedQuests,
}

var optionalKeys = []string{KeyEquippedWeapon, KeyEquippedArmor}

// Encode renders a character as save text. Equipped slots are written by
// item ID only; their effects are restored from the item catalog on load.
func Encode(c *entities.Character) string {
	var w blocktext.Writer
	w.Field(KeyName, c.Name)
	w.Field(KeyClass, string(c.Class))
	w.Int(KeyLevel, c.Level)
	w.Int(KeyHealth, c.Health)
	w.Int(KeyMaxHealth, c.MaxHealth)
	w.Int(KeyStrength, c.Strength)
	w.Int(KeyMagic, c.Magic)
	w.Int(KeyExperience, c.Experience)
	w.Int(KeyGold, c.Gold)
	w.List(KeyInventory, c.Inventory)
	w.List(KeyActiveQuests, c.ActiveQuests)
	w.List(KeyCompletedQuests, c.CompletedQuests)
	w.Field(KeyEquippedWeapon, slotID(c.EquippedWeapon))
	w.Field(KeyEquippedArmor, slotID(c.EquippedArmor))
	return w.String()
}

func slotID(slot *entities.EquippedItem) string {
	if slot == nil {
		return ""
	}
	return slot.ItemID
}

// Decode parses save text. Equipped slots come back holding only the item
// ID; use Rehydrate to restore their effects.
func Decode(text string) (*entities.Character, error) {
	if !utf8.ValidString(text) {
		return nil, errors.Corrupted("save data is not valid text")
	}

	blocks, err := blocktext.ReadBlocks(strings.NewReader(text))
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidSaveData, "malformed save line")
	}

	fields := make(map[string]string)
	for _, block := range blocks {
		for _, f := range block {
			if !slices.Contains(requiredKeys, f.Key) && !slices.Contains(optionalKeys, f.Key) {
				return nil, errors.InvalidSaveDataf("unknown save field %s", f.Key).
					WithMeta("line", f.Line)
			}
			if _, seen := fields[f.Key]; seen {
				return nil, errors.InvalidSaveDataf("save field %s repeated", f.Key).
					WithMeta("line", f.Line)
			}
			fields[f.Key] = f.Value
		}
	}

	for _, key := range requiredKeys {
		if _, ok := fields[key]; !ok {
			return nil, errors.InvalidSaveDataf("save missing field %s", key)
		}
	}

	c := &entities.Character{
		Name:            fields[KeyName],
		Class:           entities.Class(fields[KeyClass]),
		Inventory:       splitList(fields[KeyInventory]),
		ActiveQuests:    splitList(fields[KeyActiveQuests]),
		CompletedQuests: splitList(fields[KeyCompletedQuests]),
	}

	ints := []struct {
		key string
		dst *int
	}{
		{KeyLevel, &c.Level},
		{KeyHealth, &c.Health},
		{KeyMaxHealth, &c.MaxHealth},
		{KeyStrength, &c.Strength},
		{KeyMagic, &c.Magic},
		{KeyExperience, &c.Experience},
		{KeyGold, &c.Gold},
	}
	for _, field := range ints {
		n, err := strconv.Atoi(fields[field.key])
		if err != nil {
			return nil, errors.WrapWithCodef(err, errors.CodeInvalidSaveData,
				"invalid number for %s", field.key)
		}
		*field.dst = n
	}

	if id := fields[KeyEquippedWeapon]; id != "" {
		c.EquippedWeapon = &entities.EquippedItem{ItemID: id}
	}
	if id := fields[KeyEquippedArmor]; id != "" {
		c.EquippedArmor = &entities.EquippedItem{ItemID: id}
	}

	return c, nil
}

func splitList(value string) []string {
	if value == "" {
		return []string{}
	}
	return strings.Split(value, ",")
}

// Rehydrate fills in equipped slot effects from the item catalog
func Rehydrate(c *entities.Character, items entities.ItemCatalog) error {
	slots := []struct {
		slot     *entities.EquippedItem
		itemType entities.ItemType
	}{
		{c.EquippedWeapon, entities.ItemTypeWeapon},
		{c.EquippedArmor, entities.ItemTypeArmor},
	}

	for _, s := range slots {
		if s.slot == nil {
			continue
		}
		item, ok := items.Get(s.slot.ItemID)
		if !ok {
			return errors.InvalidSaveDataf("equipped item %s is not in the item catalog", s.slot.ItemID)
		}
		if item.Type != s.itemType {
			return errors.InvalidSaveDataf("equipped item %s is not a %s", item.ID, s.itemType)
		}
		effect, err := item.ParsedEffect()
		if err != nil {
			return errors.WrapWithCodef(err, errors.CodeInvalidSaveData,
				"equipped item %s has a bad effect", item.ID)
		}
		s.slot.Effect = effect
	}
	return nil
}

// Validate checks a character's fields and invariants
func Validate(c *entities.Character) error {
	if c == nil {
		return errors.InvalidSaveData("character is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("name", c.Name, vb)
	if c.Name != strings.TrimSpace(c.Name) || strings.ContainsAny(c.Name, "\r\n") {
		vb.Field("name", "must be a single line without surrounding space")
	}
	if _, ok := entities.BaseStatsFor(c.Class); !ok {
		vb.InvalidField("class", string(c.Class))
	}
	if c.Level < 1 {
		vb.Field("level", "must be at least 1")
	}
	if c.MaxHealth <= 0 {
		vb.Field("max_health", "must be positive")
	}
	if c.Health < 0 || c.Health > c.MaxHealth {
		vb.Fieldf("health", "must be between 0 and %d", c.MaxHealth)
	}
	if c.Strength < 0 {
		vb.Field("strength", "must not be negative")
	}
	if c.Magic < 0 {
		vb.Field("magic", "must not be negative")
	}
	if c.Experience < 0 {
		vb.Field("experience", "must not be negative")
	}
	if c.Gold < 0 {
		vb.Field("gold", "must not be negative")
	}
	if len(c.Inventory) > entities.MaxInventorySize {
		vb.Fieldf("inventory", "holds more than %d items", entities.MaxInventorySize)
	}
	checkIDs(vb, "inventory", c.Inventory)
	checkIDs(vb, "active_quests", c.ActiveQuests)
	checkIDs(vb, "completed_quests", c.CompletedQuests)
	if c.EquippedWeapon != nil {
		checkIDs(vb, "equipped_weapon", []string{c.EquippedWeapon.ItemID})
	}
	if c.EquippedArmor != nil {
		checkIDs(vb, "equipped_armor", []string{c.EquippedArmor.ItemID})
	}
	for _, id := range c.ActiveQuests {
		if c.HasCompletedQuest(id) {
			vb.Fieldf("active_quests", "%s is also completed", id)
		}
	}

	return vb.BuildWithCode(errors.CodeInvalidSaveData)
}

func checkIDs(vb *errors.ValidationBuilder, field string, ids []string) {
	for _, id := range ids {
		if !entities.ValidID(id) {
			vb.Fieldf(field, "invalid id %q", id)
		}
	}
}
