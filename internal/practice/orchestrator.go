// Package practice drives one end-to-end practice attempt through
// capture, transcription, translation, persistence and playback.
package practice

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/kerwinzhai/speakdaily/internal/audio"
	"github.com/kerwinzhai/speakdaily/internal/history"
	"github.com/kerwinzhai/speakdaily/internal/inference"
)

// ErrNoRecording is returned by EndCapture when the recorder produced no
// usable artifact.
var ErrNoRecording = errors.New("no recording artifact was produced")

// ProgressCounter receives one increment per successfully completed attempt.
type ProgressCounter interface {
	Increment() int
}

// Preferences exposes the learner settings the orchestrator consults.
type Preferences interface {
	AutoSpeak() bool
}

// Deps are the collaborators a session orchestrator is composed from. All
// are constructed once at startup and passed in by reference; the
// orchestrator owns none of them except its own display state.
type Deps struct {
	Recorder    audio.Recorder
	Transcriber audio.Transcriber
	Speaker     audio.Speaker
	Client      inference.Client
	Ledger      *history.Ledger
	Progress    ProgressCounter
	Preferences Preferences
}

// checkpoint snapshots the display state before an optimistic mutation so a
// failed pipeline can restore what the learner was looking at.
type checkpoint struct {
	activeID     uuid.UUID
	sourceText   string
	targetText   string
	alternatives []string
	isFavorite   bool
}

// Snapshot is a copy of the orchestrator's display state for rendering.
type Snapshot struct {
	Status       Status
	SourceText   string
	TargetText   string
	Alternatives []string
	IsFavorite   bool
	ErrorMessage string
	ActiveID     uuid.UUID
}

// Orchestrator is the practice session state machine.
//
// Callers are expected to drive it from a single goroutine; the internal
// mutex exists because the transcribe/translate pipeline completes on a
// background goroutine. Every asynchronous completion carries the session it
// was issued for and no-ops once a newer capture has begun.
type Orchestrator struct {
	deps Deps

	mu sync.Mutex
	wg sync.WaitGroup

	status       Status
	sourceText   string
	targetText   string
	alternatives []string
	isFavorite   bool
	errorMessage string

	activeID   uuid.UUID
	pendingID  uuid.UUID
	checkpoint *checkpoint
	session    uint64
}

func NewOrchestrator(deps Deps) *Orchestrator {
	return &Orchestrator{
		deps:   deps,
		status: StatusIdle,
	}
}

// Snapshot returns a copy of the current display state.
func (o *Orchestrator) Snapshot() Snapshot {
	o.mu.Lock()
	defer o.mu.Unlock()
	return Snapshot{
		Status:       o.status,
		SourceText:   o.sourceText,
		TargetText:   o.targetText,
		Alternatives: append([]string(nil), o.alternatives...),
		IsFavorite:   o.isFavorite,
		ErrorMessage: o.errorMessage,
		ActiveID:     o.activeID,
	}
}

// Wait blocks until any in-flight pipeline goroutine has finished. Intended
// for the CLI loop and tests.
func (o *Orchestrator) Wait() {
	o.wg.Wait()
}

// RequestPermissions checks microphone and speech-recognition authorization.
// A refusal moves the machine to PermissionDenied with a user-facing message;
// it recovers on the next successful capture start after the learner grants
// access.
func (o *Orchestrator) RequestPermissions(ctx context.Context) error {
	granted, err := o.deps.Recorder.RequestPermission(ctx)
	if err != nil {
		return fmt.Errorf("recorder.RequestPermission() > %w", err)
	}
	auth, err := o.deps.Transcriber.RequestAuthorization(ctx)
	if err != nil {
		return fmt.Errorf("transcriber.RequestAuthorization() > %w", err)
	}

	o.mu.Lock()
	defer o.mu.Unlock()
	if !granted || auth != audio.AuthStatusAuthorized {
		o.status = StatusPermissionDenied
		o.errorMessage = "microphone or speech recognition permission is not granted"
	}
	return nil
}

// BeginCapture starts a new practice attempt. Allowed only from Idle, Ready
// or Error; any other state makes it a no-op.
//
// Unless a placeholder from a previous failed attempt is still tracked, the
// current display state is checkpointed and a placeholder ledger entry is
// created before capture starts. A capture-start failure rolls both back and
// returns the machine to Ready.
func (o *Orchestrator) BeginCapture(ctx context.Context) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	switch o.status {
	case StatusIdle, StatusReady, StatusError:
	default:
		return nil
	}

	if o.pendingID == uuid.Nil {
		o.checkpoint = &checkpoint{
			activeID:     o.activeID,
			sourceText:   o.sourceText,
			targetText:   o.targetText,
			alternatives: append([]string(nil), o.alternatives...),
			isFavorite:   o.isFavorite,
		}
		entry := o.deps.Ledger.StartPlaceholder()
		o.pendingID = entry.ID
		o.activeID = entry.ID
	}
	o.session++

	if err := o.deps.Recorder.Start(); err != nil {
		o.deps.Ledger.Remove(o.pendingID)
		o.pendingID = uuid.Nil
		o.restoreCheckpoint()
		o.status = StatusReady
		o.errorMessage = fmt.Sprintf("failed to start recording: %v", err)
		return fmt.Errorf("recorder.Start() > %w", err)
	}

	o.status = StatusRecording
	o.errorMessage = ""
	return nil
}

// EndCapture stops the recorder and, when an artifact was produced, runs the
// transcribe/translate pipeline on a background goroutine. Allowed only from
// Recording; any other state makes it a no-op.
//
// When no artifact was produced the machine moves to Error with the tracked
// placeholder kept, so the next BeginCapture reuses it instead of creating a
// second in-flight entry.
func (o *Orchestrator) EndCapture(ctx context.Context) error {
	o.mu.Lock()
	if o.status != StatusRecording {
		o.mu.Unlock()
		return nil
	}

	artifact := o.deps.Recorder.Stop()
	if artifact == "" {
		o.status = StatusError
		o.errorMessage = "no recording was captured"
		o.mu.Unlock()
		return ErrNoRecording
	}

	o.status = StatusTranscribing
	pendingID := o.pendingID
	session := o.session
	o.mu.Unlock()

	o.wg.Add(1)
	go func() {
		defer o.wg.Done()
		o.process(ctx, artifact, pendingID, session)
	}()
	return nil
}

// process is the pipeline: transcribe, then translate, then persist. It runs
// outside the synchronous transitions and may fail at any step; failure rolls
// the attempt back. Every mutation re-checks the session so a stale
// completion cannot corrupt a newer attempt.
func (o *Orchestrator) process(ctx context.Context, artifact string, pendingID uuid.UUID, session uint64) {
	transcript, err := o.deps.Transcriber.Transcribe(ctx, artifact)
	if err != nil {
		o.rollback(session, fmt.Sprintf("transcription failed: %v", err))
		return
	}

	o.mu.Lock()
	if o.session != session {
		o.mu.Unlock()
		return
	}
	o.sourceText = transcript
	o.deps.Ledger.AmendSource(pendingID, transcript)
	o.status = StatusTranslating
	o.mu.Unlock()

	result, err := o.deps.Client.Translate(ctx, transcript)
	if err != nil {
		o.rollback(session, fmt.Sprintf("translation failed: %v", err))
		return
	}

	o.mu.Lock()
	if o.session != session {
		o.mu.Unlock()
		return
	}
	o.targetText = result.Primary
	o.alternatives = append([]string(nil), result.Alternatives...)
	if o.activeID != uuid.Nil {
		o.deps.Ledger.AmendTarget(o.activeID, result.Primary)
	} else {
		entry := o.deps.Ledger.Append(transcript, result.Primary)
		o.activeID = entry.ID
	}
	if entry, ok := o.deps.Ledger.Find(o.activeID); ok {
		o.isFavorite = entry.IsFavorite
	}
	o.pendingID = uuid.Nil
	o.checkpoint = nil
	o.status = StatusReady
	o.errorMessage = ""
	autoSpeak := o.deps.Preferences.AutoSpeak()
	o.mu.Unlock()

	o.deps.Progress.Increment()

	if autoSpeak {
		_ = o.Speak(ctx)
	}
}

// rollback removes the pending placeholder, restores the pre-capture
// checkpoint and returns the machine to Ready with the failure surfaced as a
// message. A failed attempt must not leave a dangling empty entry or corrupt
// the previously displayed result.
func (o *Orchestrator) rollback(session uint64, message string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.session != session {
		return
	}
	if o.pendingID != uuid.Nil {
		o.deps.Ledger.Remove(o.pendingID)
		o.pendingID = uuid.Nil
	}
	o.restoreCheckpoint()
	o.status = StatusReady
	o.errorMessage = message
}

// restoreCheckpoint puts the checkpointed display state back. Callers hold
// the mutex.
func (o *Orchestrator) restoreCheckpoint() {
	if o.checkpoint == nil {
		return
	}
	o.activeID = o.checkpoint.activeID
	o.sourceText = o.checkpoint.sourceText
	o.targetText = o.checkpoint.targetText
	o.alternatives = o.checkpoint.alternatives
	o.isFavorite = o.checkpoint.isFavorite
	o.checkpoint = nil
}

// Speak plays the current target text. No-op when the target is empty. The
// completion callback returns the machine to Ready only when it is still in
// Speaking for the same session, guarding against a stale completion firing
// after the state has moved on.
func (o *Orchestrator) Speak(ctx context.Context) error {
	o.mu.Lock()
	text := o.targetText
	if strings.TrimSpace(text) == "" || (o.status != StatusReady && o.status != StatusSpeaking) {
		o.mu.Unlock()
		return nil
	}
	o.status = StatusSpeaking
	session := o.session
	o.mu.Unlock()

	err := o.deps.Speaker.Speak(ctx, text, func() {
		o.mu.Lock()
		defer o.mu.Unlock()
		if o.session == session && o.status == StatusSpeaking {
			o.status = StatusReady
		}
	})
	if err != nil {
		o.mu.Lock()
		if o.session == session && o.status == StatusSpeaking {
			o.status = StatusReady
		}
		o.errorMessage = fmt.Sprintf("playback failed: %v", err)
		o.mu.Unlock()
		return fmt.Errorf("speaker.Speak() > %w", err)
	}
	return nil
}

// SelectAlternative rewrites the displayed target text and the active ledger
// entry with one of the previously returned alternatives, then speaks it when
// auto-speak is enabled.
func (o *Orchestrator) SelectAlternative(ctx context.Context, text string) {
	o.mu.Lock()
	o.targetText = text
	if o.activeID != uuid.Nil {
		o.deps.Ledger.AmendTarget(o.activeID, text)
	}
	autoSpeak := o.deps.Preferences.AutoSpeak()
	o.mu.Unlock()

	if autoSpeak {
		_ = o.Speak(ctx)
	}
}

// ToggleFavorite flips the active entry's favorite flag and mirrors it into
// the display state. No-op without an active entry.
func (o *Orchestrator) ToggleFavorite() {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.activeID == uuid.Nil {
		return
	}
	if favorite, ok := o.deps.Ledger.ToggleFavorite(o.activeID); ok {
		o.isFavorite = favorite
	}
}
