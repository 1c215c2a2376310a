package system

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/kerwinzhai/speakdaily/internal/audio"
)

// Transcriber transcribes recorded audio by invoking a whisper.cpp
// command-line binary.
type Transcriber struct {
	binary    string
	modelPath string
	language  string
}

var _ audio.Transcriber = (*Transcriber)(nil)

// NewTranscriber creates a whisper-backed transcriber. modelPath points at a
// ggml model file; language is the spoken language hint (e.g. "zh").
func NewTranscriber(binary, modelPath, language string) *Transcriber {
	if binary == "" {
		binary = "whisper-cli"
	}
	return &Transcriber{
		binary:    binary,
		modelPath: modelPath,
		language:  language,
	}
}

func (t *Transcriber) RequestAuthorization(ctx context.Context) (audio.AuthStatus, error) {
	if _, err := exec.LookPath(t.binary); err != nil {
		return audio.AuthStatusDenied, nil
	}
	return audio.AuthStatusAuthorized, nil
}

func (t *Transcriber) Transcribe(ctx context.Context, artifact string) (string, error) {
	if _, err := exec.LookPath(t.binary); err != nil {
		return "", audio.ErrUnavailable
	}

	args := []string{"-nt", "-np", "-f", artifact}
	if t.modelPath != "" {
		args = append(args, "-m", t.modelPath)
	}
	if t.language != "" {
		args = append(args, "-l", t.language)
	}

	output, err := exec.CommandContext(ctx, t.binary, args...).Output()
	if err != nil {
		return "", fmt.Errorf("exec(%s) > %w", t.binary, err)
	}

	text := strings.TrimSpace(string(output))
	if text == "" {
		return "", audio.ErrEmptyResult
	}
	return text, nil
}
