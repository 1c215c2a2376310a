package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

func newHistoryCommand() *cobra.Command {
	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "Manage practice history",
	}

	historyCmd.AddCommand(
		newHistoryListCommand(),
		newHistoryFavoriteCommand(),
		newHistoryRemoveCommand(),
	)

	return historyCmd
}

func newHistoryListCommand() *cobra.Command {
	var favoritesOnly bool
	command := &cobra.Command{
		Use:   "list",
		Short: "List practice entries, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			ledger := newLedger(cfg)
			bold := color.New(color.Bold)
			for _, entry := range ledger.Entries() {
				if favoritesOnly && !entry.IsFavorite {
					continue
				}
				marker := " "
				if entry.IsFavorite {
					marker = "*"
				}
				fmt.Printf("%s %s  %s  %s\n", marker, entry.CreatedAt.Local().Format("2006-01-02 15:04"), entry.ID, entry.SourceText)
				if entry.TargetText != "" {
					bold.Printf("    %s\n", entry.TargetText)
				}
			}
			return nil
		},
	}
	command.Flags().BoolVar(&favoritesOnly, "favorites", false, "Show only favorite entries")
	return command
}

func newHistoryFavoriteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "favorite [entry id]",
		Short: "Toggle an entry's favorite flag",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			id, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid entry id %q: %w", args[0], err)
			}

			ledger := newLedger(cfg)
			favorite, ok := ledger.ToggleFavorite(id)
			if !ok {
				return fmt.Errorf("entry %s not found", id)
			}
			if favorite {
				fmt.Println("Marked as favorite.")
			} else {
				fmt.Println("Removed from favorites.")
			}
			return nil
		},
	}
}

func newHistoryRemoveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "remove [entry id]",
		Short: "Remove an entry from the history",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			id, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid entry id %q: %w", args[0], err)
			}

			ledger := newLedger(cfg)
			if _, ok := ledger.Find(id); !ok {
				return fmt.Errorf("entry %s not found", id)
			}
			ledger.Remove(id)
			fmt.Println("Removed.")
			return nil
		},
	}
}
