package inventory

import "github.com/KirkDiggler/quest-chronicles/internal/entities"

// AddItemInput defines the request for adding an item
type AddItemInput struct {
	Character *entities.Character
	ItemID    string
}

// AddItemOutput defines the response for adding an item
type AddItemOutput struct {
	SpaceRemaining int
}

// RemoveItemInput defines the request for removing an item
type RemoveItemInput struct {
	Character *entities.Character
	ItemID    string
}

// RemoveItemOutput defines the response for removing an item
type RemoveItemOutput struct{}

// ClearInventoryInput defines the request for clearing the inventory
type ClearInventoryInput struct {
	Character *entities.Character
}

// ClearInventoryOutput defines the response for clearing the inventory
type ClearInventoryOutput struct {
	Removed []string
}

// GetInventoryInput defines the request for listing the inventory
type GetInventoryInput struct {
	Character *entities.Character
}

// Entry is one distinct item in the inventory. Item is nil when the ID has
// no catalog definition.
type Entry struct {
	ItemID string
	Count  int
	Item   *entities.Item
}

// GetInventoryOutput defines the response for listing the inventory.
// Entries are in first-acquired order.
type GetInventoryOutput struct {
	Entries        []*Entry
	SpaceRemaining int
}

// UseItemInput defines the request for using a consumable
type UseItemInput struct {
	Character *entities.Character
	ItemID    string
}

// UseItemOutput defines the response for using a consumable
type UseItemOutput struct {
	Effect      entities.Effect
	Applied     int
	Description string
}

// EquipInput defines the request for equipping a weapon or armor
type EquipInput struct {
	Character *entities.Character
	ItemID    string
}

// EquipOutput defines the response for equipping. Unequipped is the ID of
// the item that was returned to the inventory, if any.
type EquipOutput struct {
	Unequipped  string
	Description string
}

// UnequipInput defines the request for emptying an equip slot
type UnequipInput struct {
	Character *entities.Character
}

// UnequipOutput defines the response for emptying an equip slot. ItemID is
// empty when the slot was already empty.
type UnequipOutput struct {
	ItemID string
}

// PurchaseItemInput defines the request for buying an item
type PurchaseItemInput struct {
	Character *entities.Character
	ItemID    string
}

// PurchaseItemOutput defines the response for buying an item
type PurchaseItemOutput struct {
	Gold int
}

// SellItemInput defines the request for selling an item
type SellItemInput struct {
	Character *entities.Character
	ItemID    string
}

// SellItemOutput defines the response for selling an item
type SellItemOutput struct {
	Credited int
	Gold     int
}
