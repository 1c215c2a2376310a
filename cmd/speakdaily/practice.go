package main

import (
	"github.com/kerwinzhai/speakdaily/internal/audio"
	"github.com/kerwinzhai/speakdaily/internal/audio/system"
	"github.com/kerwinzhai/speakdaily/internal/cli"
	"github.com/kerwinzhai/speakdaily/internal/practice"
	"github.com/kerwinzhai/speakdaily/internal/profile"
	"github.com/kerwinzhai/speakdaily/internal/progress"
	"github.com/spf13/cobra"
)

func newPracticeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "practice",
		Short: "Run an interactive speaking practice session",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			profileStore := profile.NewStore(cfg.Data.ProfileFile())
			counter := progress.NewCounter(cfg.Data.ProgressFile())

			speechOptions := audio.SpeechOptions{
				VoiceID:       cfg.Speech.VoiceID,
				VoiceNameHint: cfg.Speech.VoiceNameHint,
				Rate:          profileStore.SpeechRate(),
				Pitch:         cfg.Speech.Pitch,
			}.Clamped()

			orchestrator := practice.NewOrchestrator(practice.Deps{
				Recorder:    system.NewRecorder(),
				Transcriber: system.NewTranscriber(cfg.Transcription.Command, cfg.Transcription.ModelPath, cfg.Transcription.Language),
				Speaker:     system.NewSpeaker(speechOptions),
				Client:      newDeepSeekClient(cfg),
				Ledger:      newLedger(cfg),
				Progress:    counter,
				Preferences: profileStore,
			})

			return cli.NewPracticeCLI(orchestrator, counter).Run(cmd.Context())
		},
	}
}
