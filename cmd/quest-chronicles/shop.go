package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/quest-chronicles/internal/entities"
	"github.com/KirkDiggler/quest-chronicles/internal/orchestrators/inventory"
)

var shopCmd = &cobra.Command{
	Use:   "shop",
	Short: "Buy and sell items",
}

var shopListCmd = &cobra.Command{
	Use:   "list",
	Short: "List everything for sale",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		items := session.Catalogs().Items
		for _, id := range items.IDs() {
			fmt.Fprintln(cmd.OutOrStdout(), renderItem(items[id]))
			fmt.Fprintln(cmd.OutOrStdout())
		}
		return nil
	},
}

var shopBuyCmd = &cobra.Command{
	Use:   "buy <name> <item>",
	Short: "Buy an item",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		var gold int
		_, err := session.Play(cmd.Context(), args[0], func(ctx context.Context, c *entities.Character) error {
			out, err := session.Inventory.PurchaseItem(ctx, &inventory.PurchaseItemInput{Character: c, ItemID: args[1]})
			if err != nil {
				return err
			}
			gold = out.Gold
			return nil
		})
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Bought %s. %d gold left.\n", args[1], gold)
		return nil
	},
}

var shopSellCmd = &cobra.Command{
	Use:   "sell <name> <item>",
	Short: "Sell an item for half its price",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		var out *inventory.SellItemOutput
		_, err := session.Play(cmd.Context(), args[0], func(ctx context.Context, c *entities.Character) error {
			var err error
			out, err = session.Inventory.SellItem(ctx, &inventory.SellItemInput{Character: c, ItemID: args[1]})
			return err
		})
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Sold %s for %d gold. You have %d gold.\n", args[1], out.Credited, out.Gold)
		return nil
	},
}

func init() {
	shopCmd.AddCommand(shopListCmd)
	shopCmd.AddCommand(shopBuyCmd)
	shopCmd.AddCommand(shopSellCmd)
}
