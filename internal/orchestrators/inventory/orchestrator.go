// Package inventory implements the inventory orchestrator: the bounded item
// list, consumables, equip slots and the shop.
package inventory

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/KirkDiggler/quest-chronicles/internal/entities"
	"github.com/KirkDiggler/quest-chronicles/internal/errors"
)

const errCharacterRequired = "character is required"

// Service defines the interface for inventory operations. Every mutating
// call either succeeds or leaves the character exactly as it was.
type Service interface {
	// Item list
	AddItem(ctx context.Context, input *AddItemInput) (*AddItemOutput, error)
	RemoveItem(ctx context.Context, input *RemoveItemInput) (*RemoveItemOutput, error)
	ClearInventory(ctx context.Context, input *ClearInventoryInput) (*ClearInventoryOutput, error)
	GetInventory(ctx context.Context, input *GetInventoryInput) (*GetInventoryOutput, error)

	// Consumables and equipment
	UseItem(ctx context.Context, input *UseItemInput) (*UseItemOutput, error)
	EquipWeapon(ctx context.Context, input *EquipInput) (*EquipOutput, error)
	EquipArmor(ctx context.Context, input *EquipInput) (*EquipOutput, error)
	UnequipWeapon(ctx context.Context, input *UnequipInput) (*UnequipOutput, error)
	UnequipArmor(ctx context.Context, input *UnequipInput) (*UnequipOutput, error)

	// Shop
	PurchaseItem(ctx context.Context, input *PurchaseItemInput) (*PurchaseItemOutput, error)
	SellItem(ctx context.Context, input *SellItemInput) (*SellItemOutput, error)
}

// Config holds the dependencies for the inventory orchestrator
type Config struct {
	Items entities.ItemCatalog
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Items == nil {
		vb.RequiredField("Items")
	}

	return vb.Build()
}

type orchestrator struct {
	items entities.ItemCatalog
}

// NewOrchestrator creates a new inventory orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{items: cfg.Items}, nil
}

// AddItem appends an item if there is room
func (o *orchestrator) AddItem(_ context.Context, input *AddItemInput) (*AddItemOutput, error) {
	if input == nil || input.Character == nil {
		return nil, errors.InvalidArgument(errCharacterRequired)
	}
	c := input.Character

	if len(c.Inventory) >= entities.MaxInventorySize {
		return nil, errors.InventoryFullf("inventory is full (%d items)", entities.MaxInventorySize)
	}
	c.Inventory = append(c.Inventory, input.ItemID)

	return &AddItemOutput{SpaceRemaining: spaceRemaining(c)}, nil
}

// RemoveItem removes one occurrence of an item
func (o *orchestrator) RemoveItem(_ context.Context, input *RemoveItemInput) (*RemoveItemOutput, error) {
	if input == nil || input.Character == nil {
		return nil, errors.InvalidArgument(errCharacterRequired)
	}

	if !removeOne(input.Character, input.ItemID) {
		return nil, errors.ItemNotFoundf("%s is not in the inventory", input.ItemID)
	}

	return &RemoveItemOutput{}, nil
}

// ClearInventory empties the item list and returns what was removed
func (o *orchestrator) ClearInventory(ctx context.Context, input *ClearInventoryInput) (*ClearInventoryOutput, error) {
	if input == nil || input.Character == nil {
		return nil, errors.InvalidArgument(errCharacterRequired)
	}
	c := input.Character

	removed := c.Inventory
	c.Inventory = []string{}

	slog.DebugContext(ctx, "Inventory cleared",
		"name", c.Name,
		"removed", len(removed),
	)

	return &ClearInventoryOutput{Removed: removed}, nil
}

// GetInventory reports the item list with counts and free space
func (o *orchestrator) GetInventory(_ context.Context, input *GetInventoryInput) (*GetInventoryOutput, error) {
	if input == nil || input.Character == nil {
		return nil, errors.InvalidArgument(errCharacterRequired)
	}
	c := input.Character

	out := &GetInventoryOutput{
		SpaceRemaining: spaceRemaining(c),
	}
	counts := make(map[string]int)
	for _, id := range c.Inventory {
		if counts[id] == 0 {
			out.Entries = append(out.Entries, &Entry{ItemID: id})
		}
		counts[id]++
	}
	for _, entry := range out.Entries {
		entry.Count = counts[entry.ItemID]
		if item, ok := o.items.Get(entry.ItemID); ok {
			entry.Item = item
		}
	}

	return out, nil
}

// UseItem consumes one consumable and applies its effect
func (o *orchestrator) UseItem(ctx context.Context, input *UseItemInput) (*UseItemOutput, error) {
	if input == nil || input.Character == nil {
		return nil, errors.InvalidArgument(errCharacterRequired)
	}
	c := input.Character

	item, err := o.heldItem(c, input.ItemID)
	if err != nil {
		return nil, err
	}
	if item.Type != entities.ItemTypeConsumable {
		return nil, errors.InvalidItemTypef("%s is not consumable", item.Name).
			WithMeta("item_type", string(item.Type))
	}
	effect, err := item.ParsedEffect()
	if err != nil {
		return nil, errors.Wrapf(err, "cannot use %s", item.ID)
	}

	applied := applyConsumable(c, effect)
	removeOne(c, item.ID)

	slog.DebugContext(ctx, "Item used",
		"name", c.Name,
		"item", item.ID,
		"effect", effect.String(),
		"applied", applied,
	)

	return &UseItemOutput{
		Effect:      effect,
		Applied:     applied,
		Description: fmt.Sprintf("Used %s (%+d %s)", item.Name, effect.Value, effect.Stat),
	}, nil
}

// EquipWeapon moves a weapon from the inventory into the weapon slot
func (o *orchestrator) EquipWeapon(ctx context.Context, input *EquipInput) (*EquipOutput, error) {
	return o.equip(ctx, input, entities.ItemTypeWeapon)
}

// EquipArmor moves armor from the inventory into the armor slot
func (o *orchestrator) EquipArmor(ctx context.Context, input *EquipInput) (*EquipOutput, error) {
	return o.equip(ctx, input, entities.ItemTypeArmor)
}

func (o *orchestrator) equip(ctx context.Context, input *EquipInput, slotType entities.ItemType) (*EquipOutput, error) {
	if input == nil || input.Character == nil {
		return nil, errors.InvalidArgument(errCharacterRequired)
	}
	c := input.Character

	item, err := o.heldItem(c, input.ItemID)
	if err != nil {
		return nil, err
	}
	if item.Type != slotType {
		return nil, errors.InvalidItemTypef("%s is not a %s", item.Name, slotType).
			WithMeta("item_type", string(item.Type))
	}
	effect, err := item.ParsedEffect()
	if err != nil {
		return nil, errors.Wrapf(err, "cannot equip %s", item.ID)
	}

	slot := slotFor(c, slotType)
	previous := *slot

	// Everything that can fail is checked before the character is touched
	if previous != nil && len(c.Inventory) >= entities.MaxInventorySize {
		return nil, errors.InventoryFullf("no room to return %s to the inventory", previous.ItemID)
	}
	if err := checkEquipEffect(c, previous, effect); err != nil {
		return nil, err
	}

	out := &EquipOutput{Description: fmt.Sprintf("Equipped %s: %s", slotType, item.Name)}
	if previous != nil {
		applyEquipment(c, previous.Effect.Inverse())
		c.Inventory = append(c.Inventory, previous.ItemID)
		out.Unequipped = previous.ItemID
	}

	applyEquipment(c, effect)
	*slot = &entities.EquippedItem{ItemID: item.ID, Effect: effect}
	removeOne(c, item.ID)

	slog.DebugContext(ctx, "Item equipped",
		"name", c.Name,
		"slot", slotType,
		"item", item.ID,
		"replaced", out.Unequipped,
	)

	return out, nil
}

// UnequipWeapon returns the equipped weapon to the inventory
func (o *orchestrator) UnequipWeapon(ctx context.Context, input *UnequipInput) (*UnequipOutput, error) {
	return o.unequip(ctx, input, entities.ItemTypeWeapon)
}

// UnequipArmor returns the equipped armor to the inventory
func (o *orchestrator) UnequipArmor(ctx context.Context, input *UnequipInput) (*UnequipOutput, error) {
	return o.unequip(ctx, input, entities.ItemTypeArmor)
}

func (o *orchestrator) unequip(ctx context.Context, input *UnequipInput, slotType entities.ItemType) (*UnequipOutput, error) {
	if input == nil || input.Character == nil {
		return nil, errors.InvalidArgument(errCharacterRequired)
	}
	c := input.Character

	slot := slotFor(c, slotType)
	current := *slot
	if current == nil {
		return &UnequipOutput{}, nil
	}
	if len(c.Inventory) >= entities.MaxInventorySize {
		return nil, errors.InventoryFullf("no room to unequip %s", current.ItemID)
	}

	applyEquipment(c, current.Effect.Inverse())
	c.Inventory = append(c.Inventory, current.ItemID)
	*slot = nil

	slog.DebugContext(ctx, "Item unequipped",
		"name", c.Name,
		"slot", slotType,
		"item", current.ItemID,
	)

	return &UnequipOutput{ItemID: current.ItemID}, nil
}

// PurchaseItem buys an item from the catalog
func (o *orchestrator) PurchaseItem(ctx context.Context, input *PurchaseItemInput) (*PurchaseItemOutput, error) {
	if input == nil || input.Character == nil {
		return nil, errors.InvalidArgument(errCharacterRequired)
	}
	c := input.Character

	item, ok := o.items.Get(input.ItemID)
	if !ok {
		return nil, errors.ItemNotFoundf("%s is not sold here", input.ItemID)
	}
	if c.Gold < item.Cost {
		return nil, errors.InsufficientGoldf("%s costs %d gold, you have %d", item.Name, item.Cost, c.Gold).
			WithMeta("cost", item.Cost)
	}
	if len(c.Inventory) >= entities.MaxInventorySize {
		return nil, errors.InventoryFullf("inventory is full (%d items)", entities.MaxInventorySize)
	}

	c.Gold -= item.Cost
	c.Inventory = append(c.Inventory, item.ID)

	slog.InfoContext(ctx, "Item purchased",
		"name", c.Name,
		"item", item.ID,
		"cost", item.Cost,
	)

	return &PurchaseItemOutput{Gold: c.Gold}, nil
}

// SellItem sells one held item for half its cost, rounded down
func (o *orchestrator) SellItem(ctx context.Context, input *SellItemInput) (*SellItemOutput, error) {
	if input == nil || input.Character == nil {
		return nil, errors.InvalidArgument(errCharacterRequired)
	}
	c := input.Character

	item, err := o.heldItem(c, input.ItemID)
	if err != nil {
		return nil, err
	}

	price := item.SellValue()
	removeOne(c, item.ID)
	c.Gold += price

	slog.InfoContext(ctx, "Item sold",
		"name", c.Name,
		"item", item.ID,
		"price", price,
	)

	return &SellItemOutput{Credited: price, Gold: c.Gold}, nil
}

// heldItem checks the character holds itemID and resolves its definition
func (o *orchestrator) heldItem(c *entities.Character, itemID string) (*entities.Item, error) {
	if !slices.Contains(c.Inventory, itemID) {
		return nil, errors.ItemNotFoundf("%s is not in the inventory", itemID)
	}
	item, ok := o.items.Get(itemID)
	if !ok {
		return nil, errors.ItemNotFoundf("no item definition for %s", itemID).
			WithMeta("item_id", itemID)
	}
	return item, nil
}

// HasItem reports whether the character holds at least one itemID
func HasItem(c *entities.Character, itemID string) bool {
	return slices.Contains(c.Inventory, itemID)
}

// CountItem counts how many of itemID the character holds
func CountItem(c *entities.Character, itemID string) int {
	n := 0
	for _, id := range c.Inventory {
		if id == itemID {
			n++
		}
	}
	return n
}

// SpaceRemaining is how many more items fit in the inventory
func SpaceRemaining(c *entities.Character) int {
	return spaceRemaining(c)
}

func spaceRemaining(c *entities.Character) int {
	return max(entities.MaxInventorySize-len(c.Inventory), 0)
}

func removeOne(c *entities.Character, itemID string) bool {
	i := slices.Index(c.Inventory, itemID)
	if i < 0 {
		return false
	}
	c.Inventory = slices.Delete(c.Inventory, i, i+1)
	return true
}

func slotFor(c *entities.Character, slotType entities.ItemType) **entities.EquippedItem {
	if slotType == entities.ItemTypeWeapon {
		return &c.EquippedWeapon
	}
	return &c.EquippedArmor
}
