package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/KirkDiggler/quest-chronicles/internal/entities"
	"github.com/KirkDiggler/quest-chronicles/internal/orchestrators/character"
)

const wrapWidth = 72

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")) // pink

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")) // dark grey

	goodStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86")) // green

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")) // yellow

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")) // red

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(0, 1)
)

func field(label string, value any) string {
	return labelStyle.Render(fmt.Sprintf("%-12s", label)) + fmt.Sprint(value)
}

func renderCharacter(c *entities.Character, items entities.ItemCatalog) string {
	slot := func(e *entities.EquippedItem) string {
		if e == nil {
			return "-"
		}
		name := e.ItemID
		if item, ok := items.Get(e.ItemID); ok {
			name = item.Name
		}
		return fmt.Sprintf("%s (%s)", name, e.Effect)
	}

	health := fmt.Sprintf("%d/%d", c.Health, c.MaxHealth)
	if c.IsDead() {
		health = errorStyle.Render(health + " (dead)")
	}

	lines := []string{
		titleStyle.Render(fmt.Sprintf("%s the %s", c.Name, c.Class)),
		field("Level", c.Level),
		field("Experience", fmt.Sprintf("%d/%d", c.Experience, c.Level*character.XPPerLevel)),
		field("Health", health),
		field("Strength", c.Strength),
		field("Magic", c.Magic),
		field("Gold", c.Gold),
		field("Weapon", slot(c.EquippedWeapon)),
		field("Armor", slot(c.EquippedArmor)),
		field("Inventory", fmt.Sprintf("%d/%d items", len(c.Inventory), entities.MaxInventorySize)),
		field("Quests", fmt.Sprintf("%d active, %d completed", len(c.ActiveQuests), len(c.CompletedQuests))),
	}

	return panelStyle.Render(strings.Join(lines, "\n"))
}

func renderQuest(q *entities.Quest) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(q.Title))
	b.WriteString(labelStyle.Render(fmt.Sprintf("  [%s] level %d", q.ID, q.RequiredLevel)))
	b.WriteString("\n")
	b.WriteString(wordwrap.String(q.Description, wrapWidth))
	b.WriteString("\n")
	b.WriteString(labelStyle.Render(fmt.Sprintf("Reward: %d XP, %d gold", q.RewardXP, q.RewardGold)))
	if q.HasPrerequisite() {
		b.WriteString(labelStyle.Render(fmt.Sprintf("  Requires: %s", q.Prerequisite)))
	}
	return b.String()
}

func renderItem(item *entities.Item) string {
	return fmt.Sprintf("%s %s\n%s",
		titleStyle.Render(item.Name),
		labelStyle.Render(fmt.Sprintf("[%s] %s %s, %d gold", item.ID, item.Type, item.Effect, item.Cost)),
		wordwrap.String(item.Description, wrapWidth),
	)
}
