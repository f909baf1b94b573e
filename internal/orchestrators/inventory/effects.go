package inventory

import (
	"github.com/KirkDiggler/quest-chronicles/internal/entities"
	"github.com/KirkDiggler/quest-chronicles/internal/errors"
)

// applyConsumable applies a one-shot effect and returns the delta actually
// applied. Health is clamped to [0, max_health]; other stats floor at 0.
func applyConsumable(c *entities.Character, e entities.Effect) int {
	switch e.Stat {
	case entities.StatHealth:
		before := c.Health
		c.Health = min(max(c.Health+e.Value, 0), c.MaxHealth)
		return c.Health - before
	case entities.StatStrength:
		before := c.Strength
		c.Strength = max(c.Strength+e.Value, 0)
		return c.Strength - before
	case entities.StatMagic:
		before := c.Magic
		c.Magic = max(c.Magic+e.Value, 0)
		return c.Magic - before
	}
	return 0
}

// applyEquipment applies (or, with an inverse effect, removes) a worn item's
// bonus. Health bonuses move max_health and current health together so that
// equip followed by unequip is exact. A living character never drops below
// 1 health from a gear change, and a dead one is not revived by one.
func applyEquipment(c *entities.Character, e entities.Effect) {
	switch e.Stat {
	case entities.StatHealth:
		alive := c.Health > 0
		c.MaxHealth += e.Value
		if alive {
			c.Health = max(min(c.Health+e.Value, c.MaxHealth), 1)
		} else {
			c.Health = 0
		}
	case entities.StatStrength:
		c.Strength += e.Value
	case entities.StatMagic:
		c.Magic += e.Value
	}
}

// checkEquipEffect rejects a swap that would push a stat below its floor
func checkEquipEffect(c *entities.Character, previous *entities.EquippedItem, effect entities.Effect) error {
	sim := c.Clone()
	if previous != nil {
		applyEquipment(sim, previous.Effect.Inverse())
	}
	applyEquipment(sim, effect)

	switch {
	case sim.MaxHealth <= 0:
		return errors.InvalidArgumentf("equipping would reduce max health to %d", sim.MaxHealth)
	case sim.Strength < 0:
		return errors.InvalidArgumentf("equipping would reduce strength to %d", sim.Strength)
	case sim.Magic < 0:
		return errors.InvalidArgumentf("equipping would reduce magic to %d", sim.Magic)
	}
	return nil
}
