package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/quest-chronicles/internal/entities"
	"github.com/KirkDiggler/quest-chronicles/internal/errors"
	"github.com/KirkDiggler/quest-chronicles/internal/orchestrators/character"
)

var newCmd = &cobra.Command{
	Use:   "new <name> <class>",
	Short: "Create a character (Warrior, Mage, Rogue or Cleric)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := session.NewCharacter(cmd.Context(), args[0], parseClass(args[1]))
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), goodStyle.Render("A new adventurer steps forward."))
		fmt.Fprintln(cmd.OutOrStdout(), renderCharacter(c, session.Catalogs().Items))
		return nil
	},
}

var statusCmd = &cobra.Command{
	Use:   "status <name>",
	Short: "Show a character",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := session.Load(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), renderCharacter(c, session.Catalogs().Items))
		return nil
	},
}

var reviveCmd = &cobra.Command{
	Use:   "revive <name>",
	Short: "Bring a fallen character back at half health",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := session.Play(cmd.Context(), args[0], func(ctx context.Context, c *entities.Character) error {
			if !c.IsDead() {
				return errors.InvalidArgumentf("%s is not dead", c.Name)
			}
			_, err := session.Characters.Revive(ctx, &character.ReviveInput{Character: c})
			return err
		})
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%s is revived with %d health.\n", c.Name, c.Health)
		return nil
	},
}

var savesCmd = &cobra.Command{
	Use:   "saves",
	Short: "Manage saved characters",
}

var savesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved characters",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		out, err := session.Characters.ListSavedCharacters(cmd.Context(), &character.ListSavedCharactersInput{})
		if err != nil {
			return err
		}

		if len(out.Names) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), labelStyle.Render("No saved characters."))
			return nil
		}
		for _, name := range out.Names {
			fmt.Fprintln(cmd.OutOrStdout(), name)
		}
		return nil
	},
}

var savesDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a saved character",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := session.Characters.DeleteCharacter(cmd.Context(), &character.DeleteCharacterInput{Name: args[0]}); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s.\n", args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(reviveCmd)

	savesCmd.AddCommand(savesListCmd)
	savesCmd.AddCommand(savesDeleteCmd)
}

// parseClass accepts class names in any case
func parseClass(raw string) entities.Class {
	for _, class := range entities.Classes() {
		if strings.EqualFold(string(class), raw) {
			return class
		}
	}
	return entities.Class(raw)
}
