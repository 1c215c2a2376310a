// Package audio defines the capture, transcription and playback contracts the
// practice orchestrator depends on. Implementations live in subpackages; the
// orchestrator only sees these narrow interfaces.
package audio

import (
	"context"
	"errors"
	"strings"
)

//go:generate mockgen -source=audio.go -destination=../mocks/audio/mock_audio.go -package=mock_audio

// Recorder captures one audio artifact per Start/Stop cycle.
type Recorder interface {
	// RequestPermission reports whether microphone capture is allowed.
	RequestPermission(ctx context.Context) (bool, error)
	// Start begins capturing. It fails when the capture backend cannot start.
	Start() error
	// Stop ends capturing and returns a reference to the recorded artifact,
	// or "" when no usable recording was produced.
	Stop() string
}

// AuthStatus is the result of a transcription authorization request.
type AuthStatus int

const (
	AuthStatusNotDetermined AuthStatus = iota
	AuthStatusAuthorized
	AuthStatusDenied
)

var (
	// ErrNotAuthorized is returned when transcription authorization was refused.
	ErrNotAuthorized = errors.New("transcription not authorized")
	// ErrUnavailable is returned when the transcription backend cannot run.
	ErrUnavailable = errors.New("transcription unavailable")
	// ErrEmptyResult is returned when transcription produced no text.
	ErrEmptyResult = errors.New("transcription produced no text")
)

// Transcriber turns a recorded artifact into text.
type Transcriber interface {
	RequestAuthorization(ctx context.Context) (AuthStatus, error)
	Transcribe(ctx context.Context, artifact string) (string, error)
}

// Speaker plays back text as speech. onFinished fires once playback
// completes or is cancelled.
type Speaker interface {
	Speak(ctx context.Context, text string, onFinished func()) error
	IsSpeaking() bool
}

// SpeechOptions configures playback voice and prosody.
type SpeechOptions struct {
	// VoiceID selects a voice by identifier. When it matches nothing,
	// VoiceNameHint falls back to a case-insensitive name substring search.
	VoiceID       string
	VoiceNameHint string
	Rate          float64
	Pitch         float64
}

// Clamped returns the options with rate clamped to [0,1] and pitch to
// [0.5,2.0].
func (o SpeechOptions) Clamped() SpeechOptions {
	o.Rate = min(max(o.Rate, 0), 1)
	o.Pitch = min(max(o.Pitch, 0.5), 2.0)
	return o
}

// Voice describes one playback voice offered by a speaker backend.
type Voice struct {
	ID   string
	Name string
}

// SelectVoice picks a voice for the given options: an exact ID match wins,
// then the first case-insensitive name substring match on VoiceNameHint.
func SelectVoice(voices []Voice, opts SpeechOptions) (Voice, bool) {
	if opts.VoiceID != "" {
		for _, voice := range voices {
			if voice.ID == opts.VoiceID {
				return voice, true
			}
		}
	}
	if opts.VoiceNameHint != "" {
		hint := strings.ToLower(opts.VoiceNameHint)
		for _, voice := range voices {
			if strings.Contains(strings.ToLower(voice.Name), hint) {
				return voice, true
			}
		}
	}
	return Voice{}, false
}
