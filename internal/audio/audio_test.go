package audio

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpeechOptions_Clamped(t *testing.T) {
	tests := []struct {
		name string
		opts SpeechOptions
		want SpeechOptions
	}{
		{
			name: "values in range are untouched",
			opts: SpeechOptions{Rate: 0.5, Pitch: 1.0},
			want: SpeechOptions{Rate: 0.5, Pitch: 1.0},
		},
		{
			name: "rate above one is clamped",
			opts: SpeechOptions{Rate: 1.5, Pitch: 1.0},
			want: SpeechOptions{Rate: 1.0, Pitch: 1.0},
		},
		{
			name: "negative rate is clamped to zero",
			opts: SpeechOptions{Rate: -0.2, Pitch: 1.0},
			want: SpeechOptions{Rate: 0, Pitch: 1.0},
		},
		{
			name: "pitch below half is raised",
			opts: SpeechOptions{Rate: 0.5, Pitch: 0.1},
			want: SpeechOptions{Rate: 0.5, Pitch: 0.5},
		},
		{
			name: "pitch above two is lowered",
			opts: SpeechOptions{Rate: 0.5, Pitch: 3.0},
			want: SpeechOptions{Rate: 0.5, Pitch: 2.0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.opts.Clamped())
		})
	}
}

func TestSelectVoice(t *testing.T) {
	voices := []Voice{
		{ID: "com.voice.samantha", Name: "Samantha"},
		{ID: "com.voice.daniel", Name: "Daniel (Enhanced)"},
	}

	t.Run("exact id match wins", func(t *testing.T) {
		got, ok := SelectVoice(voices, SpeechOptions{VoiceID: "com.voice.daniel", VoiceNameHint: "samantha"})
		require.True(t, ok)
		assert.Equal(t, "com.voice.daniel", got.ID)
	})

	t.Run("name hint is a case-insensitive substring match", func(t *testing.T) {
		got, ok := SelectVoice(voices, SpeechOptions{VoiceNameHint: "enhanced"})
		require.True(t, ok)
		assert.Equal(t, "com.voice.daniel", got.ID)
	})

	t.Run("unknown id falls back to the name hint", func(t *testing.T) {
		got, ok := SelectVoice(voices, SpeechOptions{VoiceID: "com.voice.missing", VoiceNameHint: "samantha"})
		require.True(t, ok)
		assert.Equal(t, "com.voice.samantha", got.ID)
	})

	t.Run("no match", func(t *testing.T) {
		_, ok := SelectVoice(voices, SpeechOptions{VoiceNameHint: "alex"})
		assert.False(t, ok)
	})

	t.Run("empty options", func(t *testing.T) {
		_, ok := SelectVoice(voices, SpeechOptions{})
		assert.False(t, ok)
	})
}
