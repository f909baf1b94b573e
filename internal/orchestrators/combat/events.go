package combat

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/events"
)

// Event types published on the bus
const (
	EventBattleStarted = "combat.battle_started"
	EventTurnResolved  = "combat.turn_resolved"
	EventBattleEnded   = "combat.battle_ended"
)

// Keys set on each event's context
const (
	KeyBattleID = "battle_id"
	KeyState    = "state"
	KeyTurn     = "turn"
	KeyMessages = "messages"
)

func (o *orchestrator) publish(ctx context.Context, eventType string, b *Battle, state State, turn int, messages []string) {
	event := events.NewGameEvent(eventType, b.Character, b.Enemy)
	event.Context().Set(KeyBattleID, b.ID)
	event.Context().Set(KeyState, string(state))
	event.Context().Set(KeyTurn, turn)
	event.Context().Set(KeyMessages, messages)

	// Subscribers are observers; a failing one does not undo the turn.
	if err := o.eventBus.Publish(ctx, event); err != nil {
		slog.WarnContext(ctx, "Failed to publish combat event",
			"event", eventType,
			"battle_id", b.ID,
			"error", err,
		)
	}
}
