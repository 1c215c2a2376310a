package profile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_Defaults(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "profile.yml"))

	assert.Equal(t, "Kerwin", store.DisplayName())
	assert.InDelta(t, 0.5, store.SpeechRate(), 0.001)
	assert.True(t, store.AutoSpeak())
}

func TestStore_Reload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.yml")

	store := NewStore(path)
	store.UpdateDisplayName("Alex")
	store.SetSpeechRate(0.8)
	store.SetAutoSpeak(false)

	reloaded := NewStore(path)
	assert.Equal(t, "Alex", reloaded.DisplayName())
	assert.InDelta(t, 0.8, reloaded.SpeechRate(), 0.001)
	assert.False(t, reloaded.AutoSpeak())
}

func TestStore_ExplicitZeroRateSurvivesReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.yml")

	store := NewStore(path)
	store.SetSpeechRate(0)

	reloaded := NewStore(path)
	assert.InDelta(t, 0, reloaded.SpeechRate(), 0.001)
}

func TestStore_UpdateDisplayName(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "profile.yml"))

	store.UpdateDisplayName("  Alex  ")
	assert.Equal(t, "Alex", store.DisplayName())

	// blank input falls back to the default name
	store.UpdateDisplayName("   ")
	assert.Equal(t, "Kerwin", store.DisplayName())
}

func TestStore_SetSpeechRateClamps(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "profile.yml"))

	store.SetSpeechRate(1.7)
	assert.InDelta(t, 1.0, store.SpeechRate(), 0.001)

	store.SetSpeechRate(-0.3)
	assert.InDelta(t, 0, store.SpeechRate(), 0.001)
}

func TestStore_UndecodableFileFallsBackToDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.yml")
	require.NoError(t, os.WriteFile(path, []byte("{not yaml"), 0644))

	store := NewStore(path)
	assert.Equal(t, "Kerwin", store.DisplayName())
	assert.True(t, store.AutoSpeak())
}
