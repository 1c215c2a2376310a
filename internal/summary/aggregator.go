// Package summary groups practice history by calendar day and maintains the
// per-day cache of generated study material and quiz answers.
package summary

import (
	"log/slog"
	"sort"
	"time"

	"github.com/kerwinzhai/speakdaily/internal/history"
	"github.com/kerwinzhai/speakdaily/internal/inference"
)

const dayKeyLayout = "2006-01-02"

// DayKey returns the calendar-day key for t in the local time zone.
func DayKey(t time.Time) string {
	return t.Local().Format(dayKeyLayout)
}

// DayBucket is the grouping of history entries sharing a calendar day.
type DayBucket struct {
	Key     string
	Date    time.Time
	Entries []history.Entry
}

// GroupByDay buckets entries by local calendar day, most recent day first.
// Entries within a day are ordered oldest first so they read as a
// conversation. The result is a pure function of the input; buckets are
// recomputed on demand, not incrementally maintained.
func GroupByDay(entries []history.Entry) []DayBucket {
	grouped := make(map[string][]history.Entry)
	days := make(map[string]time.Time)
	for _, entry := range entries {
		day := entry.CreatedAt.Local()
		day = time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
		key := day.Format(dayKeyLayout)
		grouped[key] = append(grouped[key], entry)
		days[key] = day
	}

	buckets := make([]DayBucket, 0, len(grouped))
	for key, dayEntries := range grouped {
		sort.SliceStable(dayEntries, func(i, j int) bool {
			return dayEntries[i].CreatedAt.Before(dayEntries[j].CreatedAt)
		})
		buckets = append(buckets, DayBucket{
			Key:     key,
			Date:    days[key],
			Entries: dayEntries,
		})
	}
	sort.Slice(buckets, func(i, j int) bool {
		return buckets[i].Key > buckets[j].Key
	})
	return buckets
}

// StoredSummary pairs a generated study summary with the learner's recorded
// quiz answers for one day. Answers are keyed by question text so they
// survive regeneration.
type StoredSummary struct {
	Summary inference.StudySummary `yaml:"summary"`
	Answers map[string]int         `yaml:"answers"`
}

// Store persists the day-keyed summary map after every mutation.
type Store interface {
	Load() (map[string]StoredSummary, error)
	Save(summaries map[string]StoredSummary) error
}

// Aggregator owns the per-day study summaries and quiz answers. This state is
// independent of the ledger's lifecycle: it survives entry edits and
// deletions, and is only ever replaced by an explicit regeneration.
//
// Aggregator is not safe for concurrent use; callers serialize access.
type Aggregator struct {
	store Store
	byDay map[string]StoredSummary
}

// NewAggregator loads the persisted day map from store. An absent or
// undecodable blob means starting empty, never a failure.
func NewAggregator(store Store) *Aggregator {
	byDay, err := store.Load()
	if err != nil {
		slog.Default().Warn("failed to load summaries, starting empty", "error", err)
		byDay = nil
	}
	if byDay == nil {
		byDay = make(map[string]StoredSummary)
	}
	return &Aggregator{
		store: store,
		byDay: byDay,
	}
}

// SummaryFor returns the cached study summary for a day, if one exists.
func (a *Aggregator) SummaryFor(dayKey string) (inference.StudySummary, bool) {
	stored, ok := a.byDay[dayKey]
	return stored.Summary, ok
}

// AnswersFor returns a copy of the recorded quiz answers for a day.
func (a *Aggregator) AnswersFor(dayKey string) map[string]int {
	answers := make(map[string]int, len(a.byDay[dayKey].Answers))
	for question, index := range a.byDay[dayKey].Answers {
		answers[question] = index
	}
	return answers
}

// SaveSummary replaces the stored summary for a day while preserving any
// previously recorded quiz answers for that day.
func (a *Aggregator) SaveSummary(dayKey string, s inference.StudySummary) {
	answers := a.byDay[dayKey].Answers
	if answers == nil {
		answers = make(map[string]int)
	}
	a.byDay[dayKey] = StoredSummary{
		Summary: s,
		Answers: answers,
	}
	a.flush()
}

// RecordAnswer upserts the learner's chosen option for a quiz question.
// No-op (returning false) when no summary exists yet for that day.
func (a *Aggregator) RecordAnswer(dayKey, question string, optionIndex int) bool {
	stored, ok := a.byDay[dayKey]
	if !ok {
		return false
	}
	if stored.Answers == nil {
		stored.Answers = make(map[string]int)
	}
	stored.Answers[question] = optionIndex
	a.byDay[dayKey] = stored
	a.flush()
	return true
}

func (a *Aggregator) flush() {
	if err := a.store.Save(a.byDay); err != nil {
		slog.Default().Warn("failed to persist summaries", "error", err)
	}
}
