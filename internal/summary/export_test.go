package summary

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/kerwinzhai/speakdaily/internal/history"
	"github.com/kerwinzhai/speakdaily/internal/inference"
	"github.com/kerwinzhai/speakdaily/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderMarkdown(t *testing.T) {
	createdAt := time.Date(2026, 8, 30, 9, 0, 0, 0, time.Local)
	bucket := DayBucket{
		Key: "2026-08-30",
		Entries: []history.Entry{
			testutil.NewEntry(createdAt, "你好", "Hello"),
		},
	}
	studySummary := inference.StudySummary{
		Topic: "greetings",
		Stats: inference.SummaryStats{VocabCount: 1, GrammarCount: 1, ExpressionsCount: 2},
		Vocabulary: []inference.VocabItem{
			{Word: "hello", Meaning: "a greeting", Example: "Hello there."},
		},
		Grammar: []inference.GrammarItem{
			{Title: "Greetings", Explanation: "Common openers.", Example: "Hello."},
		},
		Quiz: []inference.QuizItem{
			{Question: "What does 你好 mean?", Options: []string{"Hello", "Goodbye"}, AnswerIndex: 0},
		},
	}

	got := RenderMarkdown(bucket, studySummary)

	assert.Contains(t, got, "# Study Summary — 2026-08-30")
	assert.Contains(t, got, "Topic: greetings")
	assert.Contains(t, got, "1 vocabulary items, 1 grammar points, 2 expressions")
	assert.Contains(t, got, "- 你好 — Hello")
	assert.Contains(t, got, "**hello**: a greeting")
	assert.Contains(t, got, "### Greetings")
	assert.Contains(t, got, "1. What does 你好 mean?")
	assert.Contains(t, got, "a. Hello")
	assert.Contains(t, got, "b. Goodbye")
}

func TestRenderMarkdown_SkipsEmptySections(t *testing.T) {
	got := RenderMarkdown(DayBucket{Key: "2026-08-30"}, inference.StudySummary{})

	assert.NotContains(t, got, "## Practice")
	assert.NotContains(t, got, "## Vocabulary")
	assert.NotContains(t, got, "## Grammar")
	assert.NotContains(t, got, "## Quiz")
}

func TestConvertMarkdownToPDF(t *testing.T) {
	t.Run("rejects non-markdown input", func(t *testing.T) {
		_, err := ConvertMarkdownToPDF(filepath.Join(t.TempDir(), "summary.txt"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), ".md extension")
	})

	t.Run("creates the PDF next to the markdown file", func(t *testing.T) {
		dir := t.TempDir()
		markdownPath := filepath.Join(dir, "summary-2026-08-30.md")
		require.NoError(t, os.WriteFile(markdownPath, []byte("# Study Summary\n\nHello.\n"), 0644))

		pdfPath, err := ConvertMarkdownToPDF(markdownPath)
		require.NoError(t, err)
		assert.Equal(t, ".pdf", filepath.Ext(pdfPath))

		info, err := os.Stat(filepath.Join(dir, "summary-2026-08-30.pdf"))
		require.NoError(t, err)
		assert.Greater(t, info.Size(), int64(0))
	})
}
