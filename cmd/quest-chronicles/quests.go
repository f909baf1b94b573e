package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/quest-chronicles/internal/entities"
	"github.com/KirkDiggler/quest-chronicles/internal/errors"
	"github.com/KirkDiggler/quest-chronicles/internal/game"
	"github.com/KirkDiggler/quest-chronicles/internal/orchestrators/quest"
)

var questsCmd = &cobra.Command{
	Use:       "quests <name> [available|active|completed|stats]",
	Short:     "List a character's quests",
	Args:      cobra.RangeArgs(1, 2),
	ValidArgs: []string{"available", "active", "completed", "stats"},
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		c, err := session.Load(ctx, args[0])
		if err != nil {
			return err
		}

		view := "available"
		if len(args) == 2 {
			view = strings.ToLower(args[1])
		}

		input := &quest.ListQuestsInput{Character: c}
		var out *quest.ListQuestsOutput
		switch view {
		case "available":
			out, err = session.Quests.GetAvailableQuests(ctx, input)
		case "active":
			out, err = session.Quests.GetActiveQuests(ctx, input)
		case "completed":
			out, err = session.Quests.GetCompletedQuests(ctx, input)
		case "stats":
			return printQuestStats(cmd, c)
		default:
			return errors.InvalidArgumentf("unknown quest view %q", view)
		}
		if err != nil {
			return err
		}

		if len(out.Quests) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), labelStyle.Render(fmt.Sprintf("No %s quests.", view)))
			return nil
		}
		for _, q := range out.Quests {
			fmt.Fprintln(cmd.OutOrStdout(), renderQuest(q))
			fmt.Fprintln(cmd.OutOrStdout())
		}
		return nil
	},
}

func printQuestStats(cmd *cobra.Command, c *entities.Character) error {
	stats, err := session.Quests.GetStatistics(cmd.Context(), &quest.GetStatisticsInput{Character: c})
	if err != nil {
		return err
	}

	lines := []string{
		titleStyle.Render("Quest progress"),
		field("Active", stats.Active),
		field("Completed", fmt.Sprintf("%d of %d (%.1f%%)", stats.Completed, stats.Total, stats.CompletionPercentage)),
		field("Earned", fmt.Sprintf("%d XP, %d gold", stats.TotalRewards.XP, stats.TotalRewards.Gold)),
	}
	fmt.Fprintln(cmd.OutOrStdout(), panelStyle.Render(strings.Join(lines, "\n")))
	return nil
}

var questCmd = &cobra.Command{
	Use:   "quest",
	Short: "Accept, complete or abandon quests",
}

var questAcceptCmd = &cobra.Command{
	Use:   "accept <name> <quest>",
	Short: "Accept a quest",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		var accepted *entities.Quest
		_, err := session.Play(cmd.Context(), args[0], func(ctx context.Context, c *entities.Character) error {
			out, err := session.Quests.AcceptQuest(ctx, &quest.AcceptQuestInput{Character: c, QuestID: args[1]})
			if err != nil {
				return err
			}
			accepted = out.Quest
			return nil
		})
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), goodStyle.Render("Quest accepted: "+accepted.Title))
		return nil
	},
}

var questCompleteCmd = &cobra.Command{
	Use:   "complete <name> <quest>",
	Short: "Complete an active quest and collect the reward",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		var done *game.QuestCompletion
		_, err := session.Play(cmd.Context(), args[0], func(ctx context.Context, c *entities.Character) error {
			out, err := session.CompleteQuest(ctx, c, args[1])
			done = out
			return err
		})
		if err != nil {
			return err
		}

		w := cmd.OutOrStdout()
		fmt.Fprintln(w, goodStyle.Render("Quest complete: "+done.Quest.Title))
		fmt.Fprintf(w, "You earn %d XP and %d gold.\n", done.Reward.XP, done.Reward.Gold)
		if done.LevelsGained > 0 {
			fmt.Fprintln(w, goodStyle.Render(fmt.Sprintf("Level up! You are now level %d.", done.Level)))
		}
		return nil
	},
}

var questAbandonCmd = &cobra.Command{
	Use:   "abandon <name> <quest>",
	Short: "Abandon an active quest",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := session.Play(cmd.Context(), args[0], func(ctx context.Context, c *entities.Character) error {
			_, err := session.Quests.AbandonQuest(ctx, &quest.AbandonQuestInput{Character: c, QuestID: args[1]})
			return err
		})
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), warnStyle.Render("Quest abandoned: "+args[1]))
		return nil
	},
}

var questChainCmd = &cobra.Command{
	Use:   "chain <quest>",
	Short: "Show the quests that lead to a quest",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := session.Quests.GetPrerequisiteChain(cmd.Context(), &quest.GetPrerequisiteChainInput{QuestID: args[0]})
		if err != nil {
			return err
		}

		for i, q := range out.Chain {
			fmt.Fprintf(cmd.OutOrStdout(), "%d. %s %s\n", i+1, q.Title, labelStyle.Render("["+q.ID+"]"))
		}
		return nil
	},
}

func init() {
	questCmd.AddCommand(questAcceptCmd)
	questCmd.AddCommand(questCompleteCmd)
	questCmd.AddCommand(questAbandonCmd)
	questCmd.AddCommand(questChainCmd)
}
