package entities

// ItemType classifies what an item can be used for
type ItemType string

// Item types
const (
	ItemTypeWeapon     ItemType = "weapon"
	ItemTypeArmor      ItemType = "armor"
	ItemTypeConsumable ItemType = "consumable"
)

// ItemTypes returns the valid item type values
func ItemTypes() []string {
	return []string{string(ItemTypeWeapon), string(ItemTypeArmor), string(ItemTypeConsumable)}
}

// Item is an immutable catalog entry
type Item struct {
	ID          string
	Name        string
	Type        ItemType
	Effect      string
	Cost        int
	Description string
}

// ParsedEffect parses the item's raw effect string
func (i *Item) ParsedEffect() (Effect, error) {
	return ParseEffect(i.Effect)
}

// SellValue is what a shop pays for the item
func (i *Item) SellValue() int {
	return i.Cost / 2
}
