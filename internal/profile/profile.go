// Package profile stores the learner's preferences: display name, speech
// rate and the auto-speak toggle.
package profile

import (
	"log/slog"
	"strings"

	"github.com/kerwinzhai/speakdaily/internal/storage"
)

const (
	defaultDisplayName = "Kerwin"
	defaultSpeechRate  = 0.5
)

// storedSettings is the on-disk form. Pointers distinguish "never set" from
// an explicit zero so defaults only apply to absent fields.
type storedSettings struct {
	DisplayName string   `yaml:"display_name"`
	SpeechRate  *float64 `yaml:"speech_rate"`
	AutoSpeak   *bool    `yaml:"auto_speak"`
}

// Store owns the learner profile. Mutations flush synchronously; flush
// failures are logged and swallowed.
type Store struct {
	path        string
	displayName string
	speechRate  float64
	autoSpeak   bool
}

// NewStore loads the profile from path, applying defaults for absent fields.
func NewStore(path string) *Store {
	store := &Store{
		path:        path,
		displayName: defaultDisplayName,
		speechRate:  defaultSpeechRate,
		autoSpeak:   true,
	}

	settings, err := storage.ReadYamlFile[storedSettings](path)
	if err != nil {
		return store
	}

	if name := strings.TrimSpace(settings.DisplayName); name != "" {
		store.displayName = name
	}
	if settings.SpeechRate != nil {
		store.speechRate = *settings.SpeechRate
	}
	if settings.AutoSpeak != nil {
		store.autoSpeak = *settings.AutoSpeak
	}
	return store
}

func (s *Store) DisplayName() string { return s.displayName }
func (s *Store) SpeechRate() float64 { return s.speechRate }
func (s *Store) AutoSpeak() bool     { return s.autoSpeak }

// UpdateDisplayName trims the value and falls back to the default name when
// the result is empty.
func (s *Store) UpdateDisplayName(value string) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		trimmed = defaultDisplayName
	}
	s.displayName = trimmed
	s.flush()
}

// SetSpeechRate clamps the rate to [0,1].
func (s *Store) SetSpeechRate(rate float64) {
	s.speechRate = min(max(rate, 0), 1)
	s.flush()
}

func (s *Store) SetAutoSpeak(enabled bool) {
	s.autoSpeak = enabled
	s.flush()
}

func (s *Store) flush() {
	settings := storedSettings{
		DisplayName: s.displayName,
		SpeechRate:  &s.speechRate,
		AutoSpeak:   &s.autoSpeak,
	}
	if err := storage.WriteYamlFile(s.path, settings); err != nil {
		slog.Default().Warn("failed to persist profile", "error", err)
	}
}
