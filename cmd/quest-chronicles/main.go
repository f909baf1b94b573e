// Package main is the entry point for the quest-chronicles command line game
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/quest-chronicles/internal/errors"
)

var rootCmd = &cobra.Command{
	Use:   "quest-chronicles",
	Short: "A single-player text RPG",
	Long: `Quest Chronicles is a text role-playing game. Create a character, take on
quests, fight enemies and trade gear. Progress is saved after every command.`,
	SilenceUsage:       true,
	SilenceErrors:      true,
	PersistentPreRunE:  setup,
	PersistentPostRunE: teardown,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		_ = teardown(rootCmd, nil)
		fmt.Fprintln(os.Stderr, errorStyle.Render("Error: "+errors.GetMessage(err)))
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&overrides.dataDir, "data-dir", "", "directory holding quests.txt and items.txt")
	flags.StringVar(&overrides.saveDir, "save-dir", "", "directory for file saves")
	flags.StringVar(&overrides.storage, "storage", "", "save backend: file, redis or sqlite")
	flags.StringVar(&overrides.redisAddr, "redis-addr", "", "redis address for the redis backend")
	flags.StringVar(&overrides.sqlitePath, "sqlite-path", "", "database file for the sqlite backend")
	flags.StringVar(&overrides.logLevel, "log-level", "", "debug, info, warn or error")
	flags.StringVar(&overrides.logFormat, "log-format", "", "text or json")

	rootCmd.AddCommand(newCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(savesCmd)
	rootCmd.AddCommand(questsCmd)
	rootCmd.AddCommand(questCmd)
	rootCmd.AddCommand(inventoryCmd)
	rootCmd.AddCommand(shopCmd)
	rootCmd.AddCommand(exploreCmd)
}
