// Package inference defines the structured completion contract shared by the
// practice and summary orchestrators: a single request/response round trip to
// a chat-completion endpoint that is expected to return a JSON-shaped payload
// embedded in free text.
package inference

import (
	"context"
	"errors"
	"fmt"
)

//go:generate mockgen -source=interface.go -destination=../mocks/inference/mock_client.go -package=mock_inference

// Client defines the inference operations used by orchestrators.
type Client interface {
	// Translate turns a Chinese utterance into an idiomatic spoken-English
	// phrase with alternatives, keywords and grammar notes.
	Translate(ctx context.Context, sourceText string) (TranslationResult, error)
	// Summarize distills a day's practice conversation into study material.
	Summarize(ctx context.Context, conversation []ConversationMessage) (StudySummary, error)
}

// TranslationResult is the decoded payload of a translation completion.
// It is transient: produced per request and never persisted directly.
type TranslationResult struct {
	Primary      string   `json:"english"`
	Alternatives []string `json:"alternatives"`
	Keywords     []string `json:"keywords"`
	GrammarNotes []string `json:"grammar"`
}

// Role identifies the speaker of a conversation message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// ConversationMessage is one turn of a practice conversation sent to Summarize.
type ConversationMessage struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// StudySummary is the decoded payload of a summary completion.
type StudySummary struct {
	Topic      string        `json:"topic" yaml:"topic"`
	Stats      SummaryStats  `json:"stats" yaml:"stats"`
	Vocabulary []VocabItem   `json:"vocab" yaml:"vocab"`
	Grammar    []GrammarItem `json:"grammar" yaml:"grammar"`
	Quiz       []QuizItem    `json:"quiz" yaml:"quiz"`
}

// SummaryStats reports item counts for a summary. VocabCount and GrammarCount
// are recomputed after clamping; ExpressionsCount is reported as-is from the
// model.
type SummaryStats struct {
	VocabCount       int `json:"vocabCount" yaml:"vocab_count"`
	GrammarCount     int `json:"grammarCount" yaml:"grammar_count"`
	ExpressionsCount int `json:"expressionsCount" yaml:"expressions_count"`
}

// VocabItem is one vocabulary entry of a study summary.
type VocabItem struct {
	Word    string `json:"word" yaml:"word"`
	Meaning string `json:"meaning" yaml:"meaning"`
	Example string `json:"example" yaml:"example"`
}

// GrammarItem is one grammar point of a study summary.
type GrammarItem struct {
	Title       string `json:"title" yaml:"title"`
	Explanation string `json:"explanation" yaml:"explanation"`
	Example     string `json:"example" yaml:"example"`
}

// QuizItem is one multiple-choice question of a study summary.
// AnswerIndex is zero-based into Options.
type QuizItem struct {
	Question    string   `json:"question" yaml:"question"`
	Options     []string `json:"options" yaml:"options"`
	AnswerIndex int      `json:"answerIndex" yaml:"answer_index"`
}

// ErrMissingCredential is returned when no API key is configured.
var ErrMissingCredential = errors.New("missing API credential")

// UpstreamError reports a failed round trip to the completion endpoint:
// a transport failure, a non-2xx status, or a 2xx response whose body does
// not carry a usable completion.
type UpstreamError struct {
	StatusCode int
	Detail     string
}

func (e *UpstreamError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("upstream error %d: %s", e.StatusCode, e.Detail)
	}
	return fmt.Sprintf("upstream error: %s", e.Detail)
}

// MalformedResponseError reports a completion that arrived but could not be
// turned into the expected shape, covering both JSON extraction and decoding
// failures.
type MalformedResponseError struct {
	Content string
	Err     error
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("malformed completion response: %v", e.Err)
}

func (e *MalformedResponseError) Unwrap() error {
	return e.Err
}
