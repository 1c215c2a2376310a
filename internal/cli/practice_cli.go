// Package cli implements the interactive terminal sessions.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/kerwinzhai/speakdaily/internal/practice"
)

// ProgressReader reports today's completed attempts for display.
type ProgressReader interface {
	Count() int
	Target() int
}

// PracticeCLI manages the interactive press-enter-to-record practice session.
type PracticeCLI struct {
	orchestrator *practice.Orchestrator
	progress     ProgressReader
	stdinReader  *bufio.Reader
	stdoutWriter io.Writer
	bold         *color.Color
	faint        *color.Color
	errColor     *color.Color
}

func NewPracticeCLI(orchestrator *practice.Orchestrator, progress ProgressReader) *PracticeCLI {
	return &PracticeCLI{
		orchestrator: orchestrator,
		progress:     progress,
		stdinReader:  bufio.NewReader(os.Stdin),
		stdoutWriter: os.Stdout,
		bold:         color.New(color.Bold),
		faint:        color.New(color.Faint),
		errColor:     color.New(color.FgRed),
	}
}

// Run drives practice attempts until the learner quits or the context is
// cancelled.
func (cli *PracticeCLI) Run(ctx context.Context) error {
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt)
	defer cancel()

	if err := cli.orchestrator.RequestPermissions(ctx); err != nil {
		return fmt.Errorf("orchestrator.RequestPermissions() > %w", err)
	}
	if snapshot := cli.orchestrator.Snapshot(); snapshot.Status == practice.StatusPermissionDenied {
		cli.errColor.Fprintln(cli.stdoutWriter, snapshot.ErrorMessage)
		return nil
	}

	for {
		if ctx.Err() != nil {
			return nil
		}

		fmt.Fprint(cli.stdoutWriter, "Press Enter to record (q to quit): ")
		line, err := cli.stdinReader.ReadString('\n')
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("error reading input: %w", err)
		}
		switch strings.TrimSpace(line) {
		case "q", "quit", "exit":
			fmt.Fprintln(cli.stdoutWriter, "Practice session ended.")
			return nil
		}

		if err := cli.orchestrator.BeginCapture(ctx); err != nil {
			cli.errColor.Fprintf(cli.stdoutWriter, "Could not start recording: %v\n", err)
			continue
		}

		fmt.Fprint(cli.stdoutWriter, "Recording... press Enter to stop: ")
		if _, err := cli.stdinReader.ReadString('\n'); err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("error reading input: %w", err)
		}

		if err := cli.orchestrator.EndCapture(ctx); err != nil {
			cli.errColor.Fprintf(cli.stdoutWriter, "%v\n", err)
			continue
		}
		fmt.Fprintln(cli.stdoutWriter, "Transcribing and translating...")
		cli.orchestrator.Wait()

		cli.render()

		if err := cli.actions(ctx); err != nil {
			return err
		}

		fmt.Fprintf(cli.stdoutWriter, "Today: %d/%d attempts\n\n", cli.progress.Count(), cli.progress.Target())
	}
}

func (cli *PracticeCLI) render() {
	snapshot := cli.orchestrator.Snapshot()

	if snapshot.ErrorMessage != "" {
		cli.errColor.Fprintln(cli.stdoutWriter, snapshot.ErrorMessage)
		return
	}

	fmt.Fprintln(cli.stdoutWriter)
	cli.faint.Fprintf(cli.stdoutWriter, "You said:  ")
	fmt.Fprintln(cli.stdoutWriter, snapshot.SourceText)
	cli.faint.Fprintf(cli.stdoutWriter, "English:   ")
	cli.bold.Fprintln(cli.stdoutWriter, snapshot.TargetText)
	for i, alternative := range snapshot.Alternatives {
		fmt.Fprintf(cli.stdoutWriter, "  %d. %s\n", i+1, alternative)
	}
	fmt.Fprintln(cli.stdoutWriter)
}

// actions lets the learner replay, favorite or pick an alternative before the
// next attempt.
func (cli *PracticeCLI) actions(ctx context.Context) error {
	for {
		snapshot := cli.orchestrator.Snapshot()
		if snapshot.TargetText == "" {
			return nil
		}

		fmt.Fprint(cli.stdoutWriter, "[s]peak, [f]avorite, number to pick an alternative, Enter to continue: ")
		line, err := cli.stdinReader.ReadString('\n')
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("error reading input: %w", err)
		}

		input := strings.TrimSpace(line)
		switch input {
		case "":
			return nil
		case "s":
			if err := cli.orchestrator.Speak(ctx); err != nil {
				cli.errColor.Fprintf(cli.stdoutWriter, "%v\n", err)
			}
		case "f":
			cli.orchestrator.ToggleFavorite()
			if cli.orchestrator.Snapshot().IsFavorite {
				fmt.Fprintln(cli.stdoutWriter, "Marked as favorite.")
			} else {
				fmt.Fprintln(cli.stdoutWriter, "Removed from favorites.")
			}
		default:
			index, err := strconv.Atoi(input)
			if err != nil || index < 1 || index > len(snapshot.Alternatives) {
				fmt.Fprintln(cli.stdoutWriter, "Unknown action.")
				continue
			}
			cli.orchestrator.SelectAlternative(ctx, snapshot.Alternatives[index-1])
			cli.render()
		}
	}
}
