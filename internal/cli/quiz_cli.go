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
	"github.com/kerwinzhai/speakdaily/internal/inference"
	"github.com/kerwinzhai/speakdaily/internal/summary"
)

// QuizCLI walks the learner through one day's quiz questions and records
// their answers.
type QuizCLI struct {
	aggregator   *summary.Aggregator
	dayKey       string
	studySummary inference.StudySummary
	stdinReader  *bufio.Reader
	stdoutWriter io.Writer
	bold         *color.Color
	correct      *color.Color
	incorrect    *color.Color
}

func NewQuizCLI(aggregator *summary.Aggregator, dayKey string, studySummary inference.StudySummary) *QuizCLI {
	return &QuizCLI{
		aggregator:   aggregator,
		dayKey:       dayKey,
		studySummary: studySummary,
		stdinReader:  bufio.NewReader(os.Stdin),
		stdoutWriter: os.Stdout,
		bold:         color.New(color.Bold),
		correct:      color.New(color.FgGreen),
		incorrect:    color.New(color.FgRed),
	}
}

func (cli *QuizCLI) Run(ctx context.Context) error {
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt)
	defer cancel()

	if len(cli.studySummary.Quiz) == 0 {
		fmt.Fprintln(cli.stdoutWriter, "No quiz questions for this day.")
		return nil
	}

	answers := cli.aggregator.AnswersFor(cli.dayKey)
	score := 0
	for i, item := range cli.studySummary.Quiz {
		if ctx.Err() != nil {
			return nil
		}

		cli.bold.Fprintf(cli.stdoutWriter, "%d. %s\n", i+1, item.Question)
		for j, option := range item.Options {
			fmt.Fprintf(cli.stdoutWriter, "   %c. %s\n", 'a'+j, option)
		}
		if previous, ok := answers[item.Question]; ok {
			fmt.Fprintf(cli.stdoutWriter, "   (previously answered %c)\n", 'a'+previous)
		}

		choice, err := cli.readChoice(len(item.Options))
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		cli.aggregator.RecordAnswer(cli.dayKey, item.Question, choice)
		if choice == item.AnswerIndex {
			score++
			cli.correct.Fprintln(cli.stdoutWriter, "Correct!")
		} else if item.AnswerIndex >= 0 && item.AnswerIndex < len(item.Options) {
			cli.incorrect.Fprintf(cli.stdoutWriter, "Incorrect. The answer is %c. %s\n", 'a'+item.AnswerIndex, item.Options[item.AnswerIndex])
		}
		fmt.Fprintln(cli.stdoutWriter)
	}

	fmt.Fprintf(cli.stdoutWriter, "Score: %d/%d\n", score, len(cli.studySummary.Quiz))
	return nil
}

// readChoice accepts either the option letter or its 1-based number.
func (cli *QuizCLI) readChoice(optionCount int) (int, error) {
	for {
		fmt.Fprint(cli.stdoutWriter, "Your answer: ")
		line, err := cli.stdinReader.ReadString('\n')
		if err != nil {
			return 0, err
		}

		input := strings.ToLower(strings.TrimSpace(line))
		if len(input) == 1 && input[0] >= 'a' && int(input[0]-'a') < optionCount {
			return int(input[0] - 'a'), nil
		}
		if number, err := strconv.Atoi(input); err == nil && number >= 1 && number <= optionCount {
			return number - 1, nil
		}
		fmt.Fprintln(cli.stdoutWriter, "Please answer with the option letter.")
	}
}
