package main

import (
	"context"
	"fmt"
	"io"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/quest-chronicles/internal/entities"
	"github.com/KirkDiggler/quest-chronicles/internal/game"
	"github.com/KirkDiggler/quest-chronicles/internal/orchestrators/combat"
)

var (
	exploreAction string
	exploreEnemy  string
)

var exploreCmd = &cobra.Command{
	Use:   "explore <name>",
	Short: "Wander until something attacks, then fight it out",
	Long: `Explore starts one encounter against an enemy picked for the character's
level and repeats the chosen action every turn until the battle ends.
Winning pays experience and gold; losing revives the character at half health.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		action, err := combat.ParseAction(exploreAction)
		if err != nil {
			return err
		}

		w := cmd.OutOrStdout()
		unsubscribe := subscribeBattleLog(session.EventBus(), w)
		defer unsubscribe()

		var result *game.ExploreResult
		c, err := session.Play(cmd.Context(), args[0], func(ctx context.Context, c *entities.Character) error {
			out, err := session.Explore(ctx, &game.ExploreInput{
				Character: c,
				Action:    action,
				EnemyType: entities.EnemyType(exploreEnemy),
			})
			result = out
			return err
		})
		if err != nil {
			return err
		}

		printExploreResult(w, c, result)
		return nil
	},
}

func init() {
	exploreCmd.Flags().StringVar(&exploreAction, "action", string(combat.ActionAttack), "attack, special or run")
	exploreCmd.Flags().StringVar(&exploreEnemy, "enemy", "", "goblin, orc or dragon (default: by level)")
}

// subscribeBattleLog prints each turn's messages as the battle publishes them
func subscribeBattleLog(bus events.EventBus, w io.Writer) func() {
	printer := func(_ context.Context, e events.Event) error {
		raw, ok := e.Context().Get(combat.KeyMessages)
		if !ok {
			return nil
		}
		messages, _ := raw.([]string)
		for _, msg := range messages {
			fmt.Fprintln(w, "  "+msg)
		}
		return nil
	}

	ids := []string{
		bus.SubscribeFunc(combat.EventBattleStarted, 0, printer),
		bus.SubscribeFunc(combat.EventTurnResolved, 0, printer),
	}
	return func() {
		for _, id := range ids {
			_ = bus.Unsubscribe(id)
		}
	}
}

func printExploreResult(w io.Writer, c *entities.Character, result *game.ExploreResult) {
	switch {
	case result.Abandoned:
		fmt.Fprintln(w, warnStyle.Render(fmt.Sprintf("After %d turns the %s loses interest and wanders off.", result.Turns, result.Enemy.Name)))
	case result.State == combat.StatePlayerWon:
		fmt.Fprintln(w, goodStyle.Render(fmt.Sprintf("Victory! +%d XP, +%d gold.", result.Reward.XP, result.Reward.Gold)))
		if result.LevelsGained > 0 {
			fmt.Fprintln(w, goodStyle.Render(fmt.Sprintf("Level up! You are now level %d.", c.Level)))
		}
	case result.State == combat.StatePlayerEscaped:
		fmt.Fprintln(w, warnStyle.Render("You got away."))
	case result.State == combat.StateEnemyWon:
		fmt.Fprintln(w, errorStyle.Render("You were defeated."))
		if result.Revived {
			fmt.Fprintf(w, "You wake up with %d health.\n", c.Health)
		}
	}
}
