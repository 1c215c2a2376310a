package system

import (
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
	"sync"

	"github.com/kerwinzhai/speakdaily/internal/audio"
)

// Speaker plays text as speech via a system synthesis command (macOS say or
// espeak). Playback runs in a background goroutine; onFinished fires when the
// command exits.
type Speaker struct {
	binary string
	opts   audio.SpeechOptions

	mu       sync.Mutex
	speaking bool
}

var _ audio.Speaker = (*Speaker)(nil)

// NewSpeaker picks the first available synthesis tool and clamps the given
// options.
func NewSpeaker(opts audio.SpeechOptions) *Speaker {
	binary := ""
	for _, candidate := range []string{"say", "espeak"} {
		if _, err := exec.LookPath(candidate); err == nil {
			binary = candidate
			break
		}
	}
	return &Speaker{
		binary: binary,
		opts:   opts.Clamped(),
	}
}

func (s *Speaker) IsSpeaking() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.speaking
}

// Speak synthesizes text asynchronously. Empty text is a no-op with no
// completion callback, matching a playback engine that never starts.
func (s *Speaker) Speak(ctx context.Context, text string, onFinished func()) error {
	clean := strings.TrimSpace(text)
	if clean == "" {
		return nil
	}
	if s.binary == "" {
		return fmt.Errorf("no speech synthesis tool found (tried say, espeak)")
	}

	cmd := exec.CommandContext(ctx, s.binary, s.args(clean)...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("cmd.Start(%s) > %w", s.binary, err)
	}

	s.mu.Lock()
	s.speaking = true
	s.mu.Unlock()

	go func() {
		_ = cmd.Wait()
		s.mu.Lock()
		s.speaking = false
		s.mu.Unlock()
		if onFinished != nil {
			onFinished()
		}
	}()
	return nil
}

func (s *Speaker) args(text string) []string {
	switch s.binary {
	case "say":
		// say rates are words per minute; map [0,1] onto a speakable range.
		args := []string{"-r", strconv.Itoa(90 + int(s.opts.Rate*210))}
		if s.opts.VoiceNameHint != "" {
			args = append(args, "-v", s.opts.VoiceNameHint)
		}
		return append(args, text)
	default:
		// espeak: -s words per minute, -p pitch 0..99.
		args := []string{
			"-s", strconv.Itoa(90 + int(s.opts.Rate*210)),
			"-p", strconv.Itoa(int((s.opts.Pitch - 0.5) / 1.5 * 99)),
		}
		if s.opts.VoiceID != "" {
			args = append(args, "-v", s.opts.VoiceID)
		}
		return append(args, text)
	}
}
