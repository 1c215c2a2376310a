// Package config loads and validates the application configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

type Config struct {
	Data          DataConfig          `mapstructure:"data"`
	DeepSeek      DeepSeekConfig      `mapstructure:"deepseek"`
	Speech        SpeechConfig        `mapstructure:"speech"`
	Transcription TranscriptionConfig `mapstructure:"transcription"`
}

type DataConfig struct {
	Directory string `mapstructure:"directory" validate:"required"`
}

type DeepSeekConfig struct {
	APIKey string `mapstructure:"api_key"`
	Model  string `mapstructure:"model" validate:"required"`
}

type SpeechConfig struct {
	VoiceID       string  `mapstructure:"voice_id"`
	VoiceNameHint string  `mapstructure:"voice_name_hint"`
	Rate          float64 `mapstructure:"rate" validate:"gte=0,lte=1"`
	Pitch         float64 `mapstructure:"pitch" validate:"gte=0.5,lte=2"`
}

type TranscriptionConfig struct {
	Command   string `mapstructure:"command"`
	ModelPath string `mapstructure:"model_path"`
	Language  string `mapstructure:"language"`
}

// HistoryFile is the path of the serialized practice history blob.
func (c DataConfig) HistoryFile() string {
	return filepath.Join(c.Directory, "history.yml")
}

// SummaryFile is the path of the serialized day-keyed summary blob.
func (c DataConfig) SummaryFile() string {
	return filepath.Join(c.Directory, "summaries.yml")
}

func (c DataConfig) ProfileFile() string {
	return filepath.Join(c.Directory, "profile.yml")
}

func (c DataConfig) ProgressFile() string {
	return filepath.Join(c.Directory, "progress.yml")
}

func Load(configFile string) (*Config, error) {
	v := viper.New()

	v.SetConfigType("yaml")

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/speakdaily")
	}

	v.SetDefault("data.directory", defaultDataDirectory())
	v.SetDefault("deepseek.model", "deepseek-chat")
	v.SetDefault("speech.rate", 0.5)
	v.SetDefault("speech.pitch", 1.0)
	v.SetDefault("transcription.language", "zh")

	// Bind DeepSeek credentials to environment variables only (not from config file)
	if err := v.BindEnv("deepseek.api_key", "DEEPSEEK_API_KEY"); err != nil {
		return nil, fmt.Errorf("failed to bind DEEPSEEK_API_KEY environment variable: %w", err)
	}
	if err := v.BindEnv("deepseek.model", "DEEPSEEK_MODEL"); err != nil {
		return nil, fmt.Errorf("failed to bind DEEPSEEK_MODEL environment variable: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("configuration file found but could not be read: %w. Please check the file format and permissions", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func defaultDataDirectory() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "data"
	}
	return filepath.Join(home, ".local", "share", "speakdaily")
}
