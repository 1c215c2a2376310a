package summary

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/kerwinzhai/speakdaily/internal/history"
	"github.com/kerwinzhai/speakdaily/internal/inference"
	"github.com/kerwinzhai/speakdaily/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupByDay(t *testing.T) {
	loc := time.Local
	day1Morning := time.Date(2026, 8, 28, 9, 0, 0, 0, loc)
	day1Evening := time.Date(2026, 8, 28, 21, 0, 0, 0, loc)
	day2 := time.Date(2026, 8, 29, 12, 0, 0, 0, loc)

	// ledger order is newest first
	newest := testutil.NewEntry(day2, "谢谢", "Thank you")
	older := testutil.NewEntry(day1Evening, "晚上好", "Good evening")
	oldest := testutil.NewEntry(day1Morning, "早上好", "Good morning")

	buckets := GroupByDay([]history.Entry{newest, older, oldest})
	require.Len(t, buckets, 2)

	assert.Equal(t, "2026-08-29", buckets[0].Key)
	require.Len(t, buckets[0].Entries, 1)

	assert.Equal(t, "2026-08-28", buckets[1].Key)
	require.Len(t, buckets[1].Entries, 2)
	// within a day, oldest first so it reads as a conversation
	assert.Equal(t, "早上好", buckets[1].Entries[0].SourceText)
	assert.Equal(t, "晚上好", buckets[1].Entries[1].SourceText)
}

func TestGroupByDay_Empty(t *testing.T) {
	assert.Empty(t, GroupByDay(nil))
}

func TestDayKey(t *testing.T) {
	assert.Equal(t, "2026-08-30", DayKey(time.Date(2026, 8, 30, 23, 59, 0, 0, time.Local)))
}

func TestAggregator_SaveSummaryPreservesAnswers(t *testing.T) {
	path := filepath.Join(t.TempDir(), "summaries.yml")
	aggregator := NewAggregator(NewYamlStore(path))

	first := inference.StudySummary{Topic: "greetings"}
	aggregator.SaveSummary("2026-08-30", first)
	require.True(t, aggregator.RecordAnswer("2026-08-30", "What does 你好 mean?", 1))

	regenerated := inference.StudySummary{Topic: "daily life"}
	aggregator.SaveSummary("2026-08-30", regenerated)

	got, ok := aggregator.SummaryFor("2026-08-30")
	require.True(t, ok)
	assert.Equal(t, "daily life", got.Topic)
	assert.Equal(t, map[string]int{"What does 你好 mean?": 1}, aggregator.AnswersFor("2026-08-30"))
}

func TestAggregator_RecordAnswerWithoutSummary(t *testing.T) {
	aggregator := NewAggregator(NewYamlStore(filepath.Join(t.TempDir(), "summaries.yml")))
	assert.False(t, aggregator.RecordAnswer("2026-08-30", "question", 0))
}

func TestAggregator_Reload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "summaries.yml")

	aggregator := NewAggregator(NewYamlStore(path))
	aggregator.SaveSummary("2026-08-30", inference.StudySummary{
		Topic: "greetings",
		Quiz: []inference.QuizItem{
			{Question: "What does 你好 mean?", Options: []string{"Hello", "Goodbye"}, AnswerIndex: 0},
		},
	})
	require.True(t, aggregator.RecordAnswer("2026-08-30", "What does 你好 mean?", 0))

	reloaded := NewAggregator(NewYamlStore(path))
	got, ok := reloaded.SummaryFor("2026-08-30")
	require.True(t, ok)
	assert.Equal(t, "greetings", got.Topic)
	require.Len(t, got.Quiz, 1)
	assert.Equal(t, map[string]int{"What does 你好 mean?": 0}, reloaded.AnswersFor("2026-08-30"))
}

func TestAggregator_AnswersForReturnsCopy(t *testing.T) {
	aggregator := NewAggregator(NewYamlStore(filepath.Join(t.TempDir(), "summaries.yml")))
	aggregator.SaveSummary("2026-08-30", inference.StudySummary{})
	require.True(t, aggregator.RecordAnswer("2026-08-30", "question", 1))

	answers := aggregator.AnswersFor("2026-08-30")
	answers["question"] = 99
	assert.Equal(t, map[string]int{"question": 1}, aggregator.AnswersFor("2026-08-30"))
}
