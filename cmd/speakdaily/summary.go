package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/kerwinzhai/speakdaily/internal/cli"
	"github.com/kerwinzhai/speakdaily/internal/summary"
	"github.com/spf13/cobra"
)

func newSummaryCommand() *cobra.Command {
	summaryCmd := &cobra.Command{
		Use:   "summary",
		Short: "Generate and review daily study summaries",
	}

	summaryCmd.AddCommand(
		newSummaryListCommand(),
		newSummaryGenerateCommand(),
		newSummaryShowCommand(),
		newSummaryExportCommand(),
		newSummaryQuizCommand(),
	)

	return summaryCmd
}

func newSummaryListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List practice days, most recent first",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			aggregator := newAggregator(cfg)
			for _, bucket := range summary.GroupByDay(newLedger(cfg).Entries()) {
				cached := ""
				if _, ok := aggregator.SummaryFor(bucket.Key); ok {
					cached = "  (summary available)"
				}
				fmt.Printf("%s  %d entries%s\n", bucket.Key, len(bucket.Entries), cached)
			}
			return nil
		},
	}
}

// findBucket resolves a day key against the grouped history. An empty day
// means the most recent practice day.
func findBucket(buckets []summary.DayBucket, day string) (summary.DayBucket, error) {
	if len(buckets) == 0 {
		return summary.DayBucket{}, fmt.Errorf("no practice history yet")
	}
	if day == "" {
		return buckets[0], nil
	}
	for _, bucket := range buckets {
		if bucket.Key == day {
			return bucket, nil
		}
	}
	return summary.DayBucket{}, fmt.Errorf("no practice entries on %s", day)
}

func newSummaryGenerateCommand() *cobra.Command {
	var day string
	command := &cobra.Command{
		Use:   "generate",
		Short: "Generate (or regenerate) the study summary for a day",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			bucket, err := findBucket(summary.GroupByDay(newLedger(cfg).Entries()), day)
			if err != nil {
				return err
			}

			orchestrator := summary.NewOrchestrator(newAggregator(cfg), newDeepSeekClient(cfg))
			generated, err := orchestrator.GenerateOrRegenerate(cmd.Context(), bucket)
			if err != nil {
				return fmt.Errorf("orchestrator.GenerateOrRegenerate() > %w", err)
			}

			fmt.Print(summary.RenderMarkdown(bucket, generated))
			return nil
		},
	}
	command.Flags().StringVar(&day, "day", "", "Day to summarize, like 2026-08-30 (default: most recent practice day)")
	return command
}

func newSummaryShowCommand() *cobra.Command {
	var day string
	command := &cobra.Command{
		Use:   "show",
		Short: "Show the cached study summary for a day",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			bucket, err := findBucket(summary.GroupByDay(newLedger(cfg).Entries()), day)
			if err != nil {
				return err
			}

			cached, ok := newAggregator(cfg).SummaryFor(bucket.Key)
			if !ok {
				return fmt.Errorf("no summary generated for %s yet; run speakdaily summary generate", bucket.Key)
			}
			fmt.Print(summary.RenderMarkdown(bucket, cached))
			return nil
		},
	}
	command.Flags().StringVar(&day, "day", "", "Day to show (default: most recent practice day)")
	return command
}

func newSummaryExportCommand() *cobra.Command {
	var (
		day       string
		outputDir string
		toPDF     bool
	)
	command := &cobra.Command{
		Use:   "export",
		Short: "Export the cached study summary as markdown or PDF",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			bucket, err := findBucket(summary.GroupByDay(newLedger(cfg).Entries()), day)
			if err != nil {
				return err
			}
			cached, ok := newAggregator(cfg).SummaryFor(bucket.Key)
			if !ok {
				return fmt.Errorf("no summary generated for %s yet; run speakdaily summary generate", bucket.Key)
			}

			if outputDir == "" {
				outputDir = "."
			}
			markdownPath := filepath.Join(outputDir, fmt.Sprintf("summary-%s.md", bucket.Key))
			if err := os.WriteFile(markdownPath, []byte(summary.RenderMarkdown(bucket, cached)), 0o644); err != nil {
				return fmt.Errorf("os.WriteFile(%s) > %w", markdownPath, err)
			}
			fmt.Printf("Wrote %s\n", markdownPath)

			if toPDF {
				pdfPath, err := summary.ConvertMarkdownToPDF(markdownPath)
				if err != nil {
					return fmt.Errorf("summary.ConvertMarkdownToPDF() > %w", err)
				}
				fmt.Printf("Wrote %s\n", pdfPath)
			}
			return nil
		},
	}
	command.Flags().StringVar(&day, "day", "", "Day to export (default: most recent practice day)")
	command.Flags().StringVar(&outputDir, "output", "", "Directory to write the export into (default: current directory)")
	command.Flags().BoolVar(&toPDF, "pdf", false, "Also convert the markdown export to PDF")
	return command
}

func newSummaryQuizCommand() *cobra.Command {
	var day string
	command := &cobra.Command{
		Use:   "quiz",
		Short: "Take the quiz from a day's study summary",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			bucket, err := findBucket(summary.GroupByDay(newLedger(cfg).Entries()), day)
			if err != nil {
				return err
			}

			aggregator := newAggregator(cfg)
			cached, ok := aggregator.SummaryFor(bucket.Key)
			if !ok {
				return fmt.Errorf("no summary generated for %s yet; run speakdaily summary generate", bucket.Key)
			}

			return cli.NewQuizCLI(aggregator, bucket.Key, cached).Run(cmd.Context())
		},
	}
	command.Flags().StringVar(&day, "day", "", "Day to quiz on (default: most recent practice day)")
	return command
}
