package main

import (
	"fmt"

	"github.com/kerwinzhai/speakdaily/internal/config"
	"github.com/kerwinzhai/speakdaily/internal/history"
	"github.com/kerwinzhai/speakdaily/internal/inference/deepseek"
	"github.com/kerwinzhai/speakdaily/internal/summary"
)

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, fmt.Errorf("config.Load() > %w", err)
	}
	return cfg, nil
}

func newLedger(cfg *config.Config) *history.Ledger {
	return history.NewLedger(history.NewYamlStore(cfg.Data.HistoryFile()))
}

func newAggregator(cfg *config.Config) *summary.Aggregator {
	return summary.NewAggregator(summary.NewYamlStore(cfg.Data.SummaryFile()))
}

func newDeepSeekClient(cfg *config.Config) *deepseek.Client {
	return deepseek.NewClient(cfg.DeepSeek.APIKey, cfg.DeepSeek.Model)
}
