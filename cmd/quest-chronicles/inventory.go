package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/quest-chronicles/internal/entities"
	"github.com/KirkDiggler/quest-chronicles/internal/errors"
	"github.com/KirkDiggler/quest-chronicles/internal/orchestrators/inventory"
)

var inventoryCmd = &cobra.Command{
	Use:   "inventory <name>",
	Short: "Show and manage a character's items",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		c, err := session.Load(ctx, args[0])
		if err != nil {
			return err
		}

		out, err := session.Inventory.GetInventory(ctx, &inventory.GetInventoryInput{Character: c})
		if err != nil {
			return err
		}

		w := cmd.OutOrStdout()
		fmt.Fprintln(w, titleStyle.Render(fmt.Sprintf("%s's pack", c.Name)))
		if len(out.Entries) == 0 {
			fmt.Fprintln(w, labelStyle.Render("Empty."))
		}
		for _, entry := range out.Entries {
			name := entry.ItemID
			detail := "unknown item"
			if entry.Item != nil {
				name = entry.Item.Name
				detail = fmt.Sprintf("%s %s", entry.Item.Type, entry.Item.Effect)
			}
			fmt.Fprintf(w, "%2dx %s %s\n", entry.Count, name, labelStyle.Render("["+entry.ItemID+"] "+detail))
		}
		fmt.Fprintln(w, labelStyle.Render(fmt.Sprintf("%d slots free", out.SpaceRemaining)))
		return nil
	},
}

var inventoryUseCmd = &cobra.Command{
	Use:   "use <name> <item>",
	Short: "Use a consumable",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		var description string
		_, err := session.Play(cmd.Context(), args[0], func(ctx context.Context, c *entities.Character) error {
			out, err := session.Inventory.UseItem(ctx, &inventory.UseItemInput{Character: c, ItemID: args[1]})
			if err != nil {
				return err
			}
			description = out.Description
			return nil
		})
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), goodStyle.Render(description))
		return nil
	},
}

var inventoryEquipCmd = &cobra.Command{
	Use:   "equip <name> <item>",
	Short: "Equip a weapon or armor",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		item, ok := session.Catalogs().Items.Get(args[1])
		if !ok {
			return errors.ItemNotFoundf("no item definition for %s", args[1])
		}

		var out *inventory.EquipOutput
		_, err := session.Play(cmd.Context(), args[0], func(ctx context.Context, c *entities.Character) error {
			input := &inventory.EquipInput{Character: c, ItemID: item.ID}
			var err error
			switch item.Type {
			case entities.ItemTypeWeapon:
				out, err = session.Inventory.EquipWeapon(ctx, input)
			case entities.ItemTypeArmor:
				out, err = session.Inventory.EquipArmor(ctx, input)
			default:
				err = errors.InvalidItemTypef("%s cannot be equipped", item.Name)
			}
			return err
		})
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), goodStyle.Render(out.Description))
		if out.Unequipped != "" {
			fmt.Fprintf(cmd.OutOrStdout(), "%s goes back in your pack.\n", out.Unequipped)
		}
		return nil
	},
}

var inventoryUnequipCmd = &cobra.Command{
	Use:       "unequip <name> weapon|armor",
	Short:     "Return equipped gear to the pack",
	Args:      cobra.ExactArgs(2),
	ValidArgs: []string{"weapon", "armor"},
	RunE: func(cmd *cobra.Command, args []string) error {
		var out *inventory.UnequipOutput
		_, err := session.Play(cmd.Context(), args[0], func(ctx context.Context, c *entities.Character) error {
			input := &inventory.UnequipInput{Character: c}
			var err error
			switch strings.ToLower(args[1]) {
			case string(entities.ItemTypeWeapon):
				out, err = session.Inventory.UnequipWeapon(ctx, input)
			case string(entities.ItemTypeArmor):
				out, err = session.Inventory.UnequipArmor(ctx, input)
			default:
				err = errors.InvalidArgumentf("unknown slot %q", args[1])
			}
			return err
		})
		if err != nil {
			return err
		}

		if out.ItemID == "" {
			fmt.Fprintln(cmd.OutOrStdout(), labelStyle.Render("Nothing equipped there."))
			return nil
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Unequipped %s.\n", out.ItemID)
		return nil
	},
}

var inventoryDropCmd = &cobra.Command{
	Use:   "drop <name> <item>",
	Short: "Throw away one item",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := session.Play(cmd.Context(), args[0], func(ctx context.Context, c *entities.Character) error {
			_, err := session.Inventory.RemoveItem(ctx, &inventory.RemoveItemInput{Character: c, ItemID: args[1]})
			return err
		})
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Dropped %s.\n", args[1])
		return nil
	},
}

func init() {
	inventoryCmd.AddCommand(inventoryUseCmd)
	inventoryCmd.AddCommand(inventoryEquipCmd)
	inventoryCmd.AddCommand(inventoryUnequipCmd)
	inventoryCmd.AddCommand(inventoryDropCmd)
}
