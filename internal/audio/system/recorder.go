// Package system provides exec-backed implementations of the audio contracts
// using common command-line tools (arecord/sox for capture, whisper-cli for
// transcription, say/espeak for playback).
package system

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/kerwinzhai/speakdaily/internal/audio"
)

// Recorder captures microphone audio by spawning a recording command and
// stopping it with an interrupt signal. One recording at a time.
type Recorder struct {
	binary string
	dir    string

	cmd  *exec.Cmd
	path string
}

var _ audio.Recorder = (*Recorder)(nil)

// NewRecorder picks the first available recording tool. Recordings are
// written to the system temporary directory.
func NewRecorder() *Recorder {
	binary := ""
	for _, candidate := range []string{"arecord", "rec", "sox"} {
		if _, err := exec.LookPath(candidate); err == nil {
			binary = candidate
			break
		}
	}
	return &Recorder{
		binary: binary,
		dir:    os.TempDir(),
	}
}

// RequestPermission reports whether a recording tool is present. Command-line
// capture has no OS permission dialog; a missing binary is the equivalent of
// a denied microphone.
func (r *Recorder) RequestPermission(ctx context.Context) (bool, error) {
	return r.binary != "", nil
}

func (r *Recorder) Start() error {
	if r.binary == "" {
		return fmt.Errorf("no recording tool found (tried arecord, rec, sox)")
	}
	if r.cmd != nil {
		return fmt.Errorf("recording already in progress")
	}

	path := filepath.Join(r.dir, "recording_"+uuid.NewString()+".wav")

	var cmd *exec.Cmd
	switch r.binary {
	case "arecord":
		cmd = exec.Command(r.binary, "-q", "-f", "cd", "-c", "1", path)
	default:
		cmd = exec.Command(r.binary, "-q", path)
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("cmd.Start(%s) > %w", r.binary, err)
	}

	r.cmd = cmd
	r.path = path
	return nil
}

func (r *Recorder) Stop() string {
	if r.cmd == nil {
		return ""
	}
	_ = r.cmd.Process.Signal(os.Interrupt)
	_ = r.cmd.Wait()
	r.cmd = nil

	info, err := os.Stat(r.path)
	if err != nil || info.Size() == 0 {
		return ""
	}
	return r.path
}
