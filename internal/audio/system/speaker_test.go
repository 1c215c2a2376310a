package system

import (
	"context"
	"testing"

	"github.com/kerwinzhai/speakdaily/internal/audio"
	"github.com/stretchr/testify/assert"
)

func TestSpeaker_Args(t *testing.T) {
	tests := []struct {
		name   string
		binary string
		opts   audio.SpeechOptions
		want   []string
	}{
		{
			name:   "say maps rate onto words per minute",
			binary: "say",
			opts:   audio.SpeechOptions{Rate: 0.5, Pitch: 1.0},
			want:   []string{"-r", "195", "hello"},
		},
		{
			name:   "say passes the voice name hint",
			binary: "say",
			opts:   audio.SpeechOptions{Rate: 0, Pitch: 1.0, VoiceNameHint: "Samantha"},
			want:   []string{"-r", "90", "-v", "Samantha", "hello"},
		},
		{
			name:   "espeak maps rate and pitch",
			binary: "espeak",
			opts:   audio.SpeechOptions{Rate: 1.0, Pitch: 2.0},
			want:   []string{"-s", "300", "-p", "99", "hello"},
		},
		{
			name:   "espeak passes the voice id",
			binary: "espeak",
			opts:   audio.SpeechOptions{Rate: 0.5, Pitch: 0.5, VoiceID: "zh"},
			want:   []string{"-s", "195", "-p", "0", "-v", "zh", "hello"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			speaker := &Speaker{binary: tt.binary, opts: tt.opts.Clamped()}
			assert.Equal(t, tt.want, speaker.args("hello"))
		})
	}
}

func TestSpeaker_SpeakEmptyTextIsNoop(t *testing.T) {
	speaker := &Speaker{binary: "say"}
	called := false
	assert.NoError(t, speaker.Speak(context.Background(), "   ", func() { called = true }))
	assert.False(t, called)
	assert.False(t, speaker.IsSpeaking())
}
