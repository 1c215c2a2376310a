package summary

import (
	"context"
	"errors"
	"fmt"

	"github.com/kerwinzhai/speakdaily/internal/history"
	"github.com/kerwinzhai/speakdaily/internal/inference"
)

// ErrNothingToSummarize is returned when a day's entries produce an empty
// conversation.
var ErrNothingToSummarize = errors.New("no conversation to summarize")

// Summary sections are capped after generation so one day's review stays
// digestible.
const maxSectionItems = 10

// Orchestrator drives the generate-or-regenerate call for a day bucket
// against the inference client and stores the clamped result.
type Orchestrator struct {
	aggregator *Aggregator
	client     inference.Client
}

func NewOrchestrator(aggregator *Aggregator, client inference.Client) *Orchestrator {
	return &Orchestrator{
		aggregator: aggregator,
		client:     client,
	}
}

// GenerateOrRegenerate builds the day's conversation, requests a study
// summary, clamps it and replaces any prior summary for that day. Quiz
// answers already recorded for the day are preserved untouched.
func (o *Orchestrator) GenerateOrRegenerate(ctx context.Context, bucket DayBucket) (inference.StudySummary, error) {
	conversation := buildConversation(bucket.Entries)
	if len(conversation) == 0 {
		return inference.StudySummary{}, ErrNothingToSummarize
	}

	generated, err := o.client.Summarize(ctx, conversation)
	if err != nil {
		return inference.StudySummary{}, fmt.Errorf("client.Summarize() > %w", err)
	}

	clamped := clampSummary(generated)
	o.aggregator.SaveSummary(bucket.Key, clamped)
	return clamped, nil
}

// buildConversation turns a day's entries into alternating user/assistant
// messages. Empty sides contribute nothing.
func buildConversation(entries []history.Entry) []inference.ConversationMessage {
	var conversation []inference.ConversationMessage
	for _, entry := range entries {
		if entry.SourceText != "" {
			conversation = append(conversation, inference.ConversationMessage{
				Role:    inference.RoleUser,
				Content: entry.SourceText,
			})
		}
		if entry.TargetText != "" {
			conversation = append(conversation, inference.ConversationMessage{
				Role:    inference.RoleAssistant,
				Content: entry.TargetText,
			})
		}
	}
	return conversation
}

// clampSummary caps vocabulary/grammar/quiz at maxSectionItems and recomputes
// the vocab and grammar counts to match. ExpressionsCount is reported as-is
// from the model.
func clampSummary(s inference.StudySummary) inference.StudySummary {
	if len(s.Vocabulary) > maxSectionItems {
		s.Vocabulary = s.Vocabulary[:maxSectionItems]
	}
	if len(s.Grammar) > maxSectionItems {
		s.Grammar = s.Grammar[:maxSectionItems]
	}
	if len(s.Quiz) > maxSectionItems {
		s.Quiz = s.Quiz[:maxSectionItems]
	}
	s.Stats.VocabCount = len(s.Vocabulary)
	s.Stats.GrammarCount = len(s.Grammar)
	return s
}
