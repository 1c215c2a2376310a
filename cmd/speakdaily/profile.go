package main

import (
	"fmt"

	"github.com/kerwinzhai/speakdaily/internal/profile"
	"github.com/kerwinzhai/speakdaily/internal/progress"
	"github.com/spf13/cobra"
)

func newProfileCommand() *cobra.Command {
	profileCmd := &cobra.Command{
		Use:   "profile",
		Short: "Show and update learner settings",
	}

	profileCmd.AddCommand(
		newProfileShowCommand(),
		newProfileSetCommand(),
	)

	return profileCmd
}

func newProfileShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the current profile and today's progress",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			store := profile.NewStore(cfg.Data.ProfileFile())
			counter := progress.NewCounter(cfg.Data.ProgressFile())
			fmt.Printf("Name:        %s\n", store.DisplayName())
			fmt.Printf("Speech rate: %.2f\n", store.SpeechRate())
			fmt.Printf("Auto-speak:  %t\n", store.AutoSpeak())
			fmt.Printf("Today:       %d/%d attempts\n", counter.Count(), counter.Target())
			return nil
		},
	}
}

func newProfileSetCommand() *cobra.Command {
	var (
		name      string
		rate      float64
		autoSpeak bool
	)
	command := &cobra.Command{
		Use:   "set",
		Short: "Update learner settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			store := profile.NewStore(cfg.Data.ProfileFile())
			if cmd.Flags().Changed("name") {
				store.UpdateDisplayName(name)
			}
			if cmd.Flags().Changed("rate") {
				store.SetSpeechRate(rate)
			}
			if cmd.Flags().Changed("auto-speak") {
				store.SetAutoSpeak(autoSpeak)
			}
			fmt.Printf("Name:        %s\n", store.DisplayName())
			fmt.Printf("Speech rate: %.2f\n", store.SpeechRate())
			fmt.Printf("Auto-speak:  %t\n", store.AutoSpeak())
			return nil
		},
	}
	command.Flags().StringVar(&name, "name", "", "Display name")
	command.Flags().Float64Var(&rate, "rate", 0.5, "Speech rate between 0 and 1")
	command.Flags().BoolVar(&autoSpeak, "auto-speak", true, "Speak translations automatically")
	return command
}
